package sqlstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

func TestAuthorRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txm := NewTxManager(db)
	books := NewBookRepository(db, txm)
	authors := NewAuthorRepository(db, txm)

	a := author.NewAuthor("Jane", "Doe")
	require.NoError(t, authors.Save(ctx, a))
	require.NotZero(t, a.ID)

	b := book.NewBook("Foo", []book.Author{{ID: a.ID}})
	require.NoError(t, books.Save(ctx, b))

	t.Run("FindByID加载图书", func(t *testing.T) {
		found, err := authors.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", found.Name)
		assert.Equal(t, "Doe", found.Surname)
		assert.Equal(t, []author.BookRef{{ID: b.ID, Title: "Foo"}}, found.Books)
	})

	t.Run("更新姓名", func(t *testing.T) {
		a.Surname = "Smith"
		require.NoError(t, authors.Save(ctx, a))

		found, err := books.FindByID(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, found.Authors, 1)
		assert.Equal(t, "Smith", found.Authors[0].Surname)
	})

	t.Run("分页排序", func(t *testing.T) {
		require.NoError(t, authors.Save(ctx, author.NewAuthor("Adam", "Zed")))

		list, total, err := authors.FindAll(ctx, book.NewPageRequest(0, 10, "name", "asc"))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, list, 2)
		assert.Equal(t, "Adam", list[0].Name)

		_, _, err = authors.FindAll(ctx, book.NewPageRequest(0, 10, "title", ""))
		assert.ErrorIs(t, err, book.ErrInvalidSort)
	})

	t.Run("删除作者保留图书", func(t *testing.T) {
		require.NoError(t, authors.DeleteByID(ctx, a.ID))

		_, err := authors.FindByID(ctx, a.ID)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)

		found, err := books.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Authors)

		assert.ErrorIs(t, authors.DeleteByID(ctx, a.ID), author.ErrAuthorNotFound)
	})

	t.Run("更新不存在的作者", func(t *testing.T) {
		err := authors.Save(ctx, &author.Author{ID: 999, Name: "X"})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})
}

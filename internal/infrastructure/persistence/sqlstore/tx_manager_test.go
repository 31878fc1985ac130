package sqlstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

func TestTxManager_Transaction(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txm := NewTxManager(db)
	repo := NewAuthorRepository(db, txm)

	t.Run("返回错误时回滚", func(t *testing.T) {
		boom := errors.New("boom")
		err := txm.Transaction(ctx, func(ctx context.Context) error {
			require.NoError(t, repo.Save(ctx, author.NewAuthor("Jane", "Doe")))
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, total, err := repo.FindAll(ctx, defaultAuthorPage())
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("成功时提交", func(t *testing.T) {
		err := txm.Transaction(ctx, func(ctx context.Context) error {
			return repo.Save(ctx, author.NewAuthor("Jane", "Doe"))
		})
		require.NoError(t, err)

		_, total, err := repo.FindAll(ctx, defaultAuthorPage())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

func defaultAuthorPage() book.PageRequest {
	return book.NewPageRequest(book.DefaultPage, book.DefaultSize, "", "")
}

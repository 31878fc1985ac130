package author

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

type mockAuthorService struct {
	mock.Mock
}

func (m *mockAuthorService) GetAuthors(ctx context.Context, req book.PageRequest) ([]*author.Author, int64, error) {
	args := m.Called(ctx, req)
	list, _ := args.Get(0).([]*author.Author)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockAuthorService) GetAuthorByID(ctx context.Context, id uint) (*author.Author, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*author.Author)
	return a, args.Error(1)
}

func (m *mockAuthorService) DeleteAuthor(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestListAuthorsUseCase_Execute(t *testing.T) {
	svc := new(mockAuthorService)
	uc := NewListAuthorsUseCase(svc)

	svc.On("GetAuthors", mock.Anything, book.NewPageRequest(0, book.MaxSize, "surname", "desc")).
		Return([]*author.Author{{ID: 1, Name: "Jane", Surname: "Doe"}}, int64(1), nil).Once()

	resp, err := uc.Execute(context.Background(), ListAuthorsRequest{Size: 500, SortBy: "surname", Direction: "DESC"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, book.MaxSize, resp.Size)
	assert.Equal(t, []AuthorDTO{{ID: 1, Name: "Jane", Surname: "Doe"}}, resp.Items)
	svc.AssertExpectations(t)
}

func TestGetAuthorUseCase_Execute(t *testing.T) {
	svc := new(mockAuthorService)
	uc := NewGetAuthorUseCase(svc)

	svc.On("GetAuthorByID", mock.Anything, uint(1)).Return(&author.Author{
		ID: 1, Name: "Jane", Surname: "Doe",
		Books: []author.BookRef{{ID: 3, Title: "Foo"}},
	}, nil).Once()
	svc.On("GetAuthorByID", mock.Anything, uint(2)).Return(&author.Author{ID: 2, Name: "Solo"}, nil).Once()
	svc.On("GetAuthorByID", mock.Anything, uint(3)).Return(nil, author.ErrAuthorNotFound).Once()

	resp, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []BookRefDTO{{ID: 3, Title: "Foo"}}, resp.Books)

	resp, err = uc.Execute(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, resp.Books)
	assert.Empty(t, resp.Books)

	_, err = uc.Execute(context.Background(), 3)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestDeleteAuthorUseCase_Execute(t *testing.T) {
	svc := new(mockAuthorService)
	uc := NewDeleteAuthorUseCase(svc)

	svc.On("DeleteAuthor", mock.Anything, uint(1)).Return(nil).Once()
	svc.On("DeleteAuthor", mock.Anything, uint(2)).Return(author.ErrAuthorNotFound).Once()

	assert.NoError(t, uc.Execute(context.Background(), 1))
	assert.ErrorIs(t, uc.Execute(context.Background(), 2), author.ErrAuthorNotFound)
}

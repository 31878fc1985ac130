package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// mockBookService 领域服务Mock
type mockBookService struct {
	mock.Mock
}

func (m *mockBookService) GetBooks(ctx context.Context, req book.PageRequest) (*book.Page, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*book.Page)
	return p, args.Error(1)
}

func (m *mockBookService) GetBookByID(ctx context.Context, id uint) (*book.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*book.Book)
	return b, args.Error(1)
}

func (m *mockBookService) CreateBook(ctx context.Context, b *book.Book) (*book.Book, error) {
	args := m.Called(ctx, b)
	created, _ := args.Get(0).(*book.Book)
	return created, args.Error(1)
}

func (m *mockBookService) UpdateBook(ctx context.Context, id uint, patch *book.Book) (*book.Book, error) {
	args := m.Called(ctx, id, patch)
	updated, _ := args.Get(0).(*book.Book)
	return updated, args.Error(1)
}

func (m *mockBookService) DeleteBook(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// recordingPublisher 记录已发布的事件
type recordingPublisher struct {
	events []book.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e book.Event) error {
	p.events = append(p.events, e)
	return p.err
}

func TestListBooksUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("默认参数与DTO转换", func(t *testing.T) {
		svc := new(mockBookService)
		uc := NewListBooksUseCase(svc)

		want := book.NewPageRequest(0, 10, "", "")
		svc.On("GetBooks", mock.Anything, want).Return(&book.Page{
			Items:       []*book.Book{{ID: 1, Title: "Foo", Authors: []book.Author{{ID: 2, Name: "A", Surname: "B"}}}},
			Total:       11,
			PageRequest: want,
		}, nil).Once()

		resp, err := uc.Execute(ctx, ListBooksRequest{Page: 0, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.Total)
		assert.Equal(t, 10, resp.Size)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, BookDTO{ID: 1, Title: "Foo", Authors: []AuthorDTO{{ID: 2, Name: "A", Surname: "B"}}}, resp.Items[0])
		svc.AssertExpectations(t)
	})

	t.Run("size超过上限被截断", func(t *testing.T) {
		svc := new(mockBookService)
		uc := NewListBooksUseCase(svc)

		svc.On("GetBooks", mock.Anything, mock.MatchedBy(func(r book.PageRequest) bool {
			return r.Size == book.MaxSize
		})).Return(&book.Page{PageRequest: book.NewPageRequest(0, book.MaxSize, "", "")}, nil).Once()

		resp, err := uc.Execute(ctx, ListBooksRequest{Size: 1000})
		require.NoError(t, err)
		assert.Equal(t, book.MaxSize, resp.Size)
		assert.Empty(t, resp.Items)
	})

	t.Run("非法排序透传", func(t *testing.T) {
		svc := new(mockBookService)
		uc := NewListBooksUseCase(svc)
		svc.On("GetBooks", mock.Anything, mock.Anything).Return(nil, book.ErrInvalidSort).Once()

		_, err := uc.Execute(ctx, ListBooksRequest{Size: 10, SortBy: "price"})
		assert.ErrorIs(t, err, book.ErrInvalidSort)
	})
}

func TestCreateBookUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("创建成功并发布事件", func(t *testing.T) {
		svc := new(mockBookService)
		pub := &recordingPublisher{}
		uc := NewCreateBookUseCase(svc, pub)

		svc.On("CreateBook", mock.Anything, mock.MatchedBy(func(b *book.Book) bool {
			return b.Title == "Foo" && len(b.Authors) == 1 && b.Authors[0].Surname == "B"
		})).Return(&book.Book{ID: 5, Title: "Foo", Authors: []book.Author{{ID: 9, Name: "A", Surname: "B"}}}, nil).Once()

		resp, err := uc.Execute(ctx, CreateBookRequest{
			Title:   "Foo",
			Authors: []AuthorInput{{Name: "A", Surname: "B"}},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), resp.ID)

		require.Len(t, pub.events, 1)
		assert.Equal(t, book.EventCreated, pub.events[0].Type)
		assert.Equal(t, uint(5), pub.events[0].BookID)
		assert.Equal(t, []uint{9}, pub.events[0].AuthorIDs)
	})

	t.Run("书名重复不发布事件", func(t *testing.T) {
		svc := new(mockBookService)
		pub := &recordingPublisher{}
		uc := NewCreateBookUseCase(svc, pub)
		svc.On("CreateBook", mock.Anything, mock.Anything).Return(nil, book.ErrBookAlreadyExists).Once()

		_, err := uc.Execute(ctx, CreateBookRequest{Title: "Foo"})
		assert.ErrorIs(t, err, book.ErrBookAlreadyExists)
		assert.Empty(t, pub.events)
	})

	t.Run("事件发布失败不影响结果", func(t *testing.T) {
		svc := new(mockBookService)
		pub := &recordingPublisher{err: errors.New("broker down")}
		uc := NewCreateBookUseCase(svc, pub)
		svc.On("CreateBook", mock.Anything, mock.Anything).Return(&book.Book{ID: 1, Title: "Foo"}, nil).Once()

		resp, err := uc.Execute(ctx, CreateBookRequest{Title: "Foo"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), resp.ID)
	})
}

func TestUpdateBookUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	svc := new(mockBookService)
	pub := &recordingPublisher{}
	uc := NewUpdateBookUseCase(svc, pub)

	svc.On("UpdateBook", mock.Anything, uint(3), mock.MatchedBy(func(b *book.Book) bool {
		return b.Title == "Bar" && len(b.Authors) == 1 && b.Authors[0].ID == 4
	})).Return(&book.Book{ID: 3, Title: "Bar", Authors: []book.Author{{ID: 4}}}, nil).Once()
	svc.On("UpdateBook", mock.Anything, uint(99), mock.Anything).Return(nil, book.ErrBookNotFound).Once()

	resp, err := uc.Execute(ctx, UpdateBookRequest{ID: 3, Title: "Bar", Authors: []AuthorInput{{ID: 4}}})
	require.NoError(t, err)
	assert.Equal(t, "Bar", resp.Title)

	_, err = uc.Execute(ctx, UpdateBookRequest{ID: 99, Title: "Bar"})
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	require.Len(t, pub.events, 1)
	assert.Equal(t, book.EventUpdated, pub.events[0].Type)
}

func TestDeleteBookUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	svc := new(mockBookService)
	pub := &recordingPublisher{}
	uc := NewDeleteBookUseCase(svc, pub)

	svc.On("DeleteBook", mock.Anything, uint(3)).Return(nil).Once()
	svc.On("DeleteBook", mock.Anything, uint(4)).Return(book.ErrBookNotFound).Once()

	require.NoError(t, uc.Execute(ctx, 3))
	assert.ErrorIs(t, uc.Execute(ctx, 4), book.ErrBookNotFound)

	require.Len(t, pub.events, 1)
	assert.Equal(t, book.EventDeleted, pub.events[0].Type)
	assert.Equal(t, uint(3), pub.events[0].BookID)
}

func TestGetBookUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	svc := new(mockBookService)
	uc := NewGetBookUseCase(svc)

	svc.On("GetBookByID", mock.Anything, uint(1)).Return(&book.Book{ID: 1, Title: "Foo"}, nil).Once()
	svc.On("GetBookByID", mock.Anything, uint(2)).Return(nil, book.ErrBookNotFound).Once()

	resp, err := uc.Execute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Foo", resp.Title)
	assert.NotNil(t, resp.Authors, "无作者时输出空数组而不是null")

	_, err = uc.Execute(ctx, 2)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

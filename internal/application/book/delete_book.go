package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/application"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// DeleteBookUseCase 删除图书用例
type DeleteBookUseCase struct {
	bookService book.Service
	publisher   book.EventPublisher
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, publisher book.EventPublisher) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		publisher:   publisher,
	}
}

// Execute 执行删除图书用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (err error) {
	ctx, finish := application.StartOperation(ctx, "DeleteBook", "delete_book")
	defer func() { finish(err) }()

	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	publishEvent(ctx, uc.publisher, book.NewEvent(book.EventDeleted, &book.Book{ID: id}))
	return nil
}

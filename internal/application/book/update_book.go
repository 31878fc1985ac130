package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/application"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// UpdateBookUseCase 更新图书用例
// 以路径中的ID定位图书,整体替换书名和作者集合
type UpdateBookUseCase struct {
	bookService book.Service
	publisher   book.EventPublisher
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, publisher book.EventPublisher) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		publisher:   publisher,
	}
}

// UpdateBookRequest 更新图书请求DTO
type UpdateBookRequest struct {
	ID      uint          // 路径中的图书ID
	Title   string        // 新书名
	Authors []AuthorInput // 新作者集合(整体替换)
}

// Execute 执行更新图书用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (resp *BookDTO, err error) {
	ctx, finish := application.StartOperation(ctx, "UpdateBook", "update_book")
	defer func() { finish(err) }()

	b, err := uc.bookService.UpdateBook(ctx, req.ID, &book.Book{
		Title:   req.Title,
		Authors: toDomainAuthors(req.Authors),
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.publisher, book.NewEvent(book.EventUpdated, b))

	return toBookDTO(b), nil
}

package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/application"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 应用层负责用例编排,书名唯一性由领域服务保证
// 2. 创建成功后发布book.created事件,发布失败只记录日志,不影响创建结果
type CreateBookUseCase struct {
	bookService book.Service
	publisher   book.EventPublisher
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service, publisher book.EventPublisher) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		publisher:   publisher,
	}
}

// CreateBookRequest 创建图书请求DTO
type CreateBookRequest struct {
	Title   string        // 书名
	Authors []AuthorInput // 作者
}

// Execute 执行创建图书用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (resp *BookDTO, err error) {
	ctx, finish := application.StartOperation(ctx, "CreateBook", "create_book")
	defer func() { finish(err) }()

	// 1. 调用领域服务创建图书(ID由存储层分配)
	b, err := uc.bookService.CreateBook(ctx, &book.Book{
		Title:   req.Title,
		Authors: toDomainAuthors(req.Authors),
	})
	if err != nil {
		return nil, err
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("book.id", int64(b.ID)))

	// 2. 发布领域事件
	publishEvent(ctx, uc.publisher, book.NewEvent(book.EventCreated, b))

	return toBookDTO(b), nil
}

// publishEvent 发布事件,失败时记录告警日志
func publishEvent(ctx context.Context, publisher book.EventPublisher, event book.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn("发布图书事件失败",
			zap.String("type", event.Type),
			zap.Uint("book_id", event.BookID),
			zap.Error(err),
		)
	}
}

package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookshelf/internal/application"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 页码从0开始,默认page=0, size=10, 按id升序
// 2. size超过上限时截断为100,而不是报错
// 3. 排序字段非法由领域服务返回ErrInvalidSort
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page      int    // 页码(从0开始)
	Size      int    // 每页数量
	SortBy    string // 排序字段(id, title)
	Direction string // asc | desc
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	Items []BookDTO
	Total int64
	Page  int
	Size  int
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (resp *ListBooksResponse, err error) {
	ctx, finish := application.StartOperation(ctx, "ListBooks", "list_books")
	defer func() { finish(err) }()

	// 1. 参数范围限制
	if req.Size > book.MaxSize {
		req.Size = book.MaxSize
	}
	pageReq := book.NewPageRequest(req.Page, req.Size, req.SortBy, req.Direction)

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("page", pageReq.Page),
		attribute.Int("size", pageReq.Size),
		attribute.String("sort_by", pageReq.SortBy),
	)

	// 2. 调用领域服务查询
	page, err := uc.bookService.GetBooks(ctx, pageReq)
	if err != nil {
		return nil, err
	}

	// 3. 转换为DTO
	items := make([]BookDTO, len(page.Items))
	for i, b := range page.Items {
		items[i] = *toBookDTO(b)
	}

	return &ListBooksResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
	}, nil
}

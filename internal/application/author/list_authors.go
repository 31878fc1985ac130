package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/application"
	"github.com/xiebiao/bookshelf/internal/domain/author"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// ListAuthorsUseCase 作者列表查询用例(分页规则与图书列表一致)
type ListAuthorsUseCase struct {
	authorService author.Service
}

// NewListAuthorsUseCase 创建作者列表用例
func NewListAuthorsUseCase(authorService author.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorService: authorService}
}

// ListAuthorsRequest 作者列表请求DTO
type ListAuthorsRequest struct {
	Page      int
	Size      int
	SortBy    string // id, name, surname
	Direction string
}

// ListAuthorsResponse 作者列表响应DTO
type ListAuthorsResponse struct {
	Items []AuthorDTO
	Total int64
	Page  int
	Size  int
}

// Execute 执行作者列表查询
func (uc *ListAuthorsUseCase) Execute(ctx context.Context, req ListAuthorsRequest) (resp *ListAuthorsResponse, err error) {
	ctx, finish := application.StartOperation(ctx, "ListAuthors", "list_authors")
	defer func() { finish(err) }()

	if req.Size > book.MaxSize {
		req.Size = book.MaxSize
	}
	pageReq := book.NewPageRequest(req.Page, req.Size, req.SortBy, req.Direction)

	authors, total, err := uc.authorService.GetAuthors(ctx, pageReq)
	if err != nil {
		return nil, err
	}

	items := make([]AuthorDTO, len(authors))
	for i, a := range authors {
		items[i] = *toAuthorDTO(a)
	}
	return &ListAuthorsResponse{Items: items, Total: total, Page: pageReq.Page, Size: pageReq.Size}, nil
}

package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/application"
	"github.com/xiebiao/bookshelf/internal/domain/author"
)

// GetAuthorUseCase 作者详情用例(包含作者名下的图书)
type GetAuthorUseCase struct {
	authorService author.Service
}

// NewGetAuthorUseCase 创建作者详情用例
func NewGetAuthorUseCase(authorService author.Service) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorService: authorService}
}

// Execute 执行作者详情查询
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (resp *AuthorDTO, err error) {
	ctx, finish := application.StartOperation(ctx, "GetAuthor", "get_author")
	defer func() { finish(err) }()

	a, err := uc.authorService.GetAuthorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := toAuthorDTO(a)
	if dto.Books == nil {
		dto.Books = []BookRefDTO{}
	}
	return dto, nil
}

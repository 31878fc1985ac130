package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/application"
	"github.com/xiebiao/bookshelf/internal/domain/author"
)

// DeleteAuthorUseCase 删除作者用例
// 作者从所有图书中解除关联,图书本身保留
type DeleteAuthorUseCase struct {
	authorService author.Service
}

// NewDeleteAuthorUseCase 创建删除作者用例
func NewDeleteAuthorUseCase(authorService author.Service) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{authorService: authorService}
}

// Execute 执行删除作者
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) (err error) {
	ctx, finish := application.StartOperation(ctx, "DeleteAuthor", "delete_author")
	defer func() { finish(err) }()

	return uc.authorService.DeleteAuthor(ctx, id)
}

package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// Service 作者领域服务接口
type Service interface {
	// GetAuthors 分页查询作者列表
	GetAuthors(ctx context.Context, req book.PageRequest) ([]*Author, int64, error)

	// GetAuthorByID 获取作者及其图书
	GetAuthorByID(ctx context.Context, id uint) (*Author, error)

	// DeleteAuthor 删除作者
	// 业务规则:解除关联后删除,图书保留(即使图书因此没有作者)
	DeleteAuthor(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAuthors(ctx context.Context, req book.PageRequest) ([]*Author, int64, error) {
	if err := req.Validate(SortableFields); err != nil {
		return nil, 0, err
	}
	return s.repo.FindAll(ctx, req)
}

func (s *service) GetAuthorByID(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAuthorNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}

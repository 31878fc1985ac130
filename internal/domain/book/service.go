package book

import (
	"context"
	"errors"
	"strings"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务负责不变量校验:创建时书名唯一,读/改/删时记录必须存在
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// GetBooks 分页查询图书列表
	GetBooks(ctx context.Context, req PageRequest) (*Page, error)

	// GetBookByID 根据ID获取图书
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// CreateBook 创建图书
	// 业务规则:
	// - 书名不能为空
	// - 书名不能与已有图书重复(区分大小写),重复时不写入
	// - 传入的ID被忽略,由存储层分配
	CreateBook(ctx context.Context, book *Book) (*Book, error)

	// UpdateBook 整体替换书名和作者集合
	// 业务规则:
	// - 以路径中的id定位图书,请求体中的ID被忽略
	// - 更新时不重新校验书名唯一性
	UpdateBook(ctx context.Context, id uint, patch *Book) (*Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo   Repository
	locker TitleLocker
}

// NewService 创建图书领域服务
func NewService(repo Repository, locker TitleLocker) Service {
	if locker == nil {
		locker = NewLocalTitleLocker()
	}
	return &service{repo: repo, locker: locker}
}

// GetBooks 分页查询图书列表
func (s *service) GetBooks(ctx context.Context, req PageRequest) (*Page, error) {
	if err := req.Validate(SortableFields); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, req)
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, b *Book) (*Book, error) {
	// 1. 参数校验
	if strings.TrimSpace(b.Title) == "" {
		return nil, ErrEmptyTitle
	}

	// 2. 同一书名串行化,关闭"查重-插入"之间的竞态窗口
	unlock, err := s.locker.Lock(ctx, b.Title)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// 3. 检查书名是否已存在
	existing, err := s.repo.FindByTitle(ctx, b.Title)
	if err == nil && existing != nil {
		return nil, ErrBookAlreadyExists
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	// 4. 创建图书实体(忽略传入的ID)
	book := NewBook(b.Title, b.Authors)

	// 5. 持久化
	if err := s.repo.Save(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, patch *Book) (*Book, error) {
	if strings.TrimSpace(patch.Title) == "" {
		return nil, ErrEmptyTitle
	}

	// 1. 查询图书
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 整体替换
	book.Replace(patch.Title, patch.Authors)

	// 3. 持久化
	if err := s.repo.Save(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBookNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}

package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// FindByID 根据ID查找图书(包含作者)
	// 不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindAll 分页查询图书列表
	// 排序字段不在SortableFields中时返回ErrInvalidSort
	FindAll(ctx context.Context, req PageRequest) (*Page, error)

	// FindByTitle 根据书名精确查找(区分大小写)
	// 不存在时返回ErrBookNotFound
	FindByTitle(ctx context.Context, title string) (*Book, error)

	// ExistsByID 判断图书是否存在
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Save ID为0时插入(回填ID),否则整体更新并替换作者集合
	// 引用的作者ID不存在时返回ErrAuthorNotFound
	Save(ctx context.Context, book *Book) error

	// DeleteByID 删除图书及其作者关联(作者本身保留)
	// 不存在时返回ErrBookNotFound
	DeleteByID(ctx context.Context, id uint) error
}

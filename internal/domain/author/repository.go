package author

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// SortableFields 作者可排序字段(字段名 → 列名)
var SortableFields = map[string]string{
	"id":      "id",
	"name":    "name",
	"surname": "surname",
}

// Repository 作者仓储接口
// 作者没有唯一性规则,只需要通用的查询/保存/删除
type Repository interface {
	// FindByID 根据ID查找作者(包含反向关联的图书)
	// 不存在时返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindAll 分页查询作者列表(不加载图书)
	FindAll(ctx context.Context, req book.PageRequest) ([]*Author, int64, error)

	// ExistsByID 判断作者是否存在
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Save ID为0时插入,否则更新姓名
	Save(ctx context.Context, author *Author) error

	// DeleteByID 删除作者,并解除与所有图书的关联(图书保留)
	DeleteByID(ctx context.Context, id uint) error
}

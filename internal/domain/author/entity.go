package author

import (
	"time"
)

// Author 作者实体
// Books是从book_author关联表推导出的反向引用,不单独存储
type Author struct {
	ID        uint
	Name      string // 名
	Surname   string // 姓
	Books     []BookRef
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookRef 作者名下的图书摘要
type BookRef struct {
	ID    uint
	Title string
}

// NewAuthor 创建新作者(工厂方法)
func NewAuthor(name, surname string) *Author {
	now := time.Now()
	return &Author{
		Name:      name,
		Surname:   surname,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Title在所有图书中唯一(创建时由领域服务校验,存储层不建唯一索引)
// 2. ID由存储层在创建时分配,之后不再改变
// 3. Authors是多对多关系,顺序无意义
type Book struct {
	ID        uint
	Title     string   // 书名
	Authors   []Author // 作者集合
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Author 图书视角下的作者
// ID为0表示新作者(保存图书时一并创建),非0表示引用已有作者
type Author struct {
	ID      uint
	Name    string // 名
	Surname string // 姓
}

// NewBook 创建新图书(工厂方法)
func NewBook(title string, authors []Author) *Book {
	now := time.Now()
	return &Book{
		Title:     title,
		Authors:   authors,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Replace 整体替换书名与作者集合(领域行为)
// 不做部分字段合并:传入空作者列表即清空关联
func (b *Book) Replace(title string, authors []Author) {
	b.Title = title
	b.Authors = authors
	b.UpdatedAt = time.Now()
}

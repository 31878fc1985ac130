package sqlstore

import (
	"time"

	"gorm.io/gorm"
)

// BookModel GORM图书模型
// 设计说明:
// 1. title只建普通索引,不建唯一索引:唯一性只在创建时由领域服务校验
// 2. 与AuthorModel多对多,关联表为book_author(book_id, author_id)
type BookModel struct {
	ID        uint           `gorm:"primaryKey"`
	Title     string         `gorm:"index;size:255;not null"`
	Authors   []AuthorModel  `gorm:"many2many:book_author;joinForeignKey:BookID;joinReferences:AuthorID"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// AuthorModel GORM作者模型
// Books是book_author的反向引用
type AuthorModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:100;not null"`
	Surname   string         `gorm:"size:100"`
	Books     []BookModel    `gorm:"many2many:book_author;joinForeignKey:AuthorID;joinReferences:BookID"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

package book

import (
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// AuthorDTO 图书中的作者
type AuthorDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// BookDTO 图书输出DTO
type BookDTO struct {
	ID      uint        `json:"id"`
	Title   string      `json:"title"`
	Authors []AuthorDTO `json:"authors"`
}

// AuthorInput 创建/更新图书时的作者
// ID为0表示新建作者,否则引用已有作者
type AuthorInput struct {
	ID      uint
	Name    string
	Surname string
}

// toBookDTO 领域实体 → DTO
func toBookDTO(b *book.Book) *BookDTO {
	dto := &BookDTO{
		ID:      b.ID,
		Title:   b.Title,
		Authors: make([]AuthorDTO, len(b.Authors)),
	}
	for i, a := range b.Authors {
		dto.Authors[i] = AuthorDTO{ID: a.ID, Name: a.Name, Surname: a.Surname}
	}
	return dto
}

// toDomainAuthors 输入DTO → 领域值
func toDomainAuthors(in []AuthorInput) []book.Author {
	authors := make([]book.Author, len(in))
	for i, a := range in {
		authors[i] = book.Author{ID: a.ID, Name: a.Name, Surname: a.Surname}
	}
	return authors
}

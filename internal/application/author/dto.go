package author

import (
	"github.com/xiebiao/bookshelf/internal/domain/author"
)

// BookRefDTO 作者名下的图书
type BookRefDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// AuthorDTO 作者输出DTO
// 列表查询不加载图书,Books省略
type AuthorDTO struct {
	ID      uint         `json:"id"`
	Name    string       `json:"name"`
	Surname string       `json:"surname"`
	Books   []BookRefDTO `json:"books,omitempty"`
}

func toAuthorDTO(a *author.Author) *AuthorDTO {
	dto := &AuthorDTO{ID: a.ID, Name: a.Name, Surname: a.Surname}
	for _, b := range a.Books {
		dto.Books = append(dto.Books, BookRefDTO{ID: b.ID, Title: b.Title})
	}
	return dto
}

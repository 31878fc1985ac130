package dto

// BookRef 作者名下的图书
type BookRef struct {
	ID    uint   `json:"id" example:"1"`
	Title string `json:"title" example:"The Go Programming Language"`
}

// AuthorDetailResponse 作者详情
type AuthorDetailResponse struct {
	ID      uint      `json:"id" example:"1"`
	Name    string    `json:"name" example:"Alan"`
	Surname string    `json:"surname" example:"Donovan"`
	Books   []BookRef `json:"books"`
}

// AuthorPage 作者分页响应(用于文档)
// 列表不加载作者名下的图书
type AuthorPage struct {
	Content          []AuthorResponse `json:"content"`
	TotalElements    int64            `json:"totalElements" example:"3"`
	TotalPages       int              `json:"totalPages" example:"1"`
	Number           int              `json:"number" example:"0"`
	Size             int              `json:"size" example:"10"`
	NumberOfElements int              `json:"numberOfElements" example:"3"`
	First            bool             `json:"first" example:"true"`
	Last             bool             `json:"last" example:"true"`
	Empty            bool             `json:"empty" example:"false"`
}

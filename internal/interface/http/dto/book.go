package dto

// AuthorRequest 图书请求中的作者
// id为空表示新建作者,否则引用已有作者(name/surname被忽略)
type AuthorRequest struct {
	ID      uint   `json:"id,omitempty" example:"1"`
	Name    string `json:"name" binding:"max=255" example:"Alan"`
	Surname string `json:"surname" binding:"max=255" example:"Donovan"`
}

// BookRequest 创建/更新图书请求
// 更新时以路径中的id为准,请求体中的id被忽略
type BookRequest struct {
	ID      uint            `json:"id,omitempty" example:"1"`
	Title   string          `json:"title" binding:"required,max=255" example:"The Go Programming Language"`
	Authors []AuthorRequest `json:"authors" binding:"dive"`
}

// AuthorResponse 图书中的作者
type AuthorResponse struct {
	ID      uint   `json:"id" example:"1"`
	Name    string `json:"name" example:"Alan"`
	Surname string `json:"surname" example:"Donovan"`
}

// BookResponse 图书响应
type BookResponse struct {
	ID      uint             `json:"id" example:"1"`
	Title   string           `json:"title" example:"The Go Programming Language"`
	Authors []AuthorResponse `json:"authors"`
}

// PageQuery 分页查询参数
// 页码从0开始;size超过100时按100处理
type PageQuery struct {
	Page      int    `form:"page,default=0" binding:"min=0" example:"0"`
	Size      int    `form:"size,default=10" binding:"min=1" example:"10"`
	SortBy    string `form:"sortBy" example:"title"`
	SortField string `form:"sortField" example:"title"` // sortBy的别名
	Direction string `form:"direction" example:"asc"`
}

// Sort 排序字段,sortBy优先
func (q PageQuery) Sort() string {
	if q.SortBy != "" {
		return q.SortBy
	}
	return q.SortField
}

// BookPage 图书分页响应(用于文档)
type BookPage struct {
	Content          []BookResponse `json:"content"`
	TotalElements    int64          `json:"totalElements" example:"11"`
	TotalPages       int            `json:"totalPages" example:"2"`
	Number           int            `json:"number" example:"0"`
	Size             int            `json:"size" example:"10"`
	NumberOfElements int            `json:"numberOfElements" example:"10"`
	First            bool           `json:"first" example:"true"`
	Last             bool           `json:"last" example:"false"`
	Empty            bool           `json:"empty" example:"false"`
}

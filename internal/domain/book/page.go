package book

import (
	"math"
	"strings"
)

// 分页默认值
const (
	DefaultPage   = 0    // 页码从0开始
	DefaultSize   = 10   // 默认每页10条
	MaxSize       = 100  // 每页最多100条
	DefaultSortBy = "id" // 默认按ID排序
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// SortableFields 图书可排序字段(字段名 → 列名)
var SortableFields = map[string]string{
	"id":    "id",
	"title": "title",
}

// PageRequest 分页查询参数
// 页码从0开始;Size必须>=1
type PageRequest struct {
	Page      int    // 页码(从0开始)
	Size      int    // 每页数量
	SortBy    string // 排序字段
	Direction string // asc | desc
}

// NewPageRequest 创建分页参数,空值使用默认值
func NewPageRequest(page, size int, sortBy, direction string) PageRequest {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if direction == "" {
		direction = DirectionAsc
	}
	return PageRequest{
		Page:      page,
		Size:      size,
		SortBy:    sortBy,
		Direction: strings.ToLower(direction),
	}
}

// Offset 计算偏移量
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Desc 是否降序
func (p PageRequest) Desc() bool {
	return p.Direction == DirectionDesc
}

// Validate 校验分页参数
// fields为可排序字段集合,排序字段不在其中时返回ErrInvalidSort
// 页码上限保证Offset不溢出int
func (p PageRequest) Validate(fields map[string]string) error {
	if p.Page < 0 || p.Size < 1 || p.Size > MaxSize {
		return ErrInvalidPage
	}
	if p.Page > math.MaxInt/p.Size {
		return ErrInvalidPage
	}
	if p.Direction != DirectionAsc && p.Direction != DirectionDesc {
		return ErrInvalidSort
	}
	if _, ok := fields[p.SortBy]; !ok {
		return ErrInvalidSort
	}
	return nil
}

// SortColumn 排序字段对应的列名
func (p PageRequest) SortColumn(fields map[string]string) (string, error) {
	col, ok := fields[p.SortBy]
	if !ok {
		return "", ErrInvalidSort
	}
	return col, nil
}

// Page 分页结果
type Page struct {
	Items []*Book
	Total int64 // 不分页的总记录数
	PageRequest
}

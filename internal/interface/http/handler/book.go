package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	createBookUseCase *appbook.CreateBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	createBookUseCase *appbook.CreateBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		createBookUseCase: createBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// ListBooks 分页查询图书
// @Summary      图书列表
// @Description  分页查询图书,页码从0开始
// @Tags         图书
// @Produce      json
// @Param        page       query int    false "页码(从0开始)" default(0)
// @Param        size       query int    false "每页数量(最大100)" default(10)
// @Param        sortBy     query string false "排序字段(id, title)" default(id)
// @Param        sortField  query string false "sortBy的别名"
// @Param        direction  query string false "排序方向(asc, desc)" default(asc)
// @Success      200 {object} dto.BookPage
// @Failure      400 {object} response.ErrorBody "排序字段或分页参数非法"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	// 1. 参数绑定
	q, err := bindPageQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 2. 调用应用层用例
	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:      q.Page,
		Size:      q.Size,
		SortBy:    q.Sort(),
		Direction: q.Direction,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建分页响应
	content := make([]dto.BookResponse, len(result.Items))
	for i := range result.Items {
		content[i] = toBookResponse(&result.Items[i])
	}
	response.OK(c, response.NewPageData(content, len(content), result.Total, result.Page, result.Size))
}

// GetBook 获取图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id  path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "ID格式错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toBookResponse(result))
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  书名不能与已有图书重复(区分大小写);作者id为空时新建作者
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 {object} response.ErrorBody "引用的作者不存在"
// @Failure      409 {object} response.ErrorBody "同名图书已存在"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.WithDetail(apperrors.ErrBindError, err.Error()))
		return
	}

	// 2. 调用应用层用例(请求体中的id被忽略)
	result, err := h.createBookUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:   req.Title,
		Authors: toAuthorInputs(req.Authors),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "图书已添加", result.ID)
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  整体替换书名和作者;以路径id为准,不重新校验书名唯一性
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path int             true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.WithDetail(apperrors.ErrBindError, err.Error()))
		return
	}

	if _, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:      id,
		Title:   req.Title,
		Authors: toAuthorInputs(req.Authors),
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "图书已更新", 0)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  删除图书及其作者关联,作者本身保留
// @Tags         图书
// @Param        id  path int true "图书ID"
// @Success      204
// @Failure      400 {object} response.ErrorBody "ID格式错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func toAuthorInputs(in []dto.AuthorRequest) []appbook.AuthorInput {
	out := make([]appbook.AuthorInput, len(in))
	for i, a := range in {
		out[i] = appbook.AuthorInput{ID: a.ID, Name: a.Name, Surname: a.Surname}
	}
	return out
}

func toBookResponse(b *appbook.BookDTO) dto.BookResponse {
	resp := dto.BookResponse{
		ID:      b.ID,
		Title:   b.Title,
		Authors: make([]dto.AuthorResponse, len(b.Authors)),
	}
	for i, a := range b.Authors {
		resp.Authors[i] = dto.AuthorResponse{ID: a.ID, Name: a.Name, Surname: a.Surname}
	}
	return resp
}

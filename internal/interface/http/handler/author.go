package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookshelf/internal/application/author"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	listAuthorsUseCase  *appauthor.ListAuthorsUseCase
	getAuthorUseCase    *appauthor.GetAuthorUseCase
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	listAuthorsUseCase *appauthor.ListAuthorsUseCase,
	getAuthorUseCase *appauthor.GetAuthorUseCase,
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		listAuthorsUseCase:  listAuthorsUseCase,
		getAuthorUseCase:    getAuthorUseCase,
		deleteAuthorUseCase: deleteAuthorUseCase,
	}
}

// ListAuthors 分页查询作者
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Param        page       query int    false "页码(从0开始)" default(0)
// @Param        size       query int    false "每页数量(最大100)" default(10)
// @Param        sortBy     query string false "排序字段(id, name, surname)" default(id)
// @Param        direction  query string false "排序方向(asc, desc)" default(asc)
// @Success      200 {object} dto.AuthorPage
// @Failure      400 {object} response.ErrorBody
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	q, err := bindPageQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listAuthorsUseCase.Execute(c.Request.Context(), appauthor.ListAuthorsRequest{
		Page:      q.Page,
		Size:      q.Size,
		SortBy:    q.Sort(),
		Direction: q.Direction,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	content := make([]dto.AuthorResponse, len(result.Items))
	for i, a := range result.Items {
		content[i] = dto.AuthorResponse{ID: a.ID, Name: a.Name, Surname: a.Surname}
	}
	response.OK(c, response.NewPageData(content, len(content), result.Total, result.Page, result.Size))
}

// GetAuthor 获取作者及其图书
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id  path int true "作者ID"
// @Success      200 {object} dto.AuthorDetailResponse
// @Failure      404 {object} response.ErrorBody "作者不存在"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getAuthorUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAuthorDetail(result))
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  作者从所有图书中解除关联,图书保留
// @Tags         作者
// @Param        id  path int true "作者ID"
// @Success      204
// @Failure      404 {object} response.ErrorBody "作者不存在"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteAuthorUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func toAuthorDetail(a *appauthor.AuthorDTO) dto.AuthorDetailResponse {
	resp := dto.AuthorDetailResponse{
		ID:      a.ID,
		Name:    a.Name,
		Surname: a.Surname,
		Books:   make([]dto.BookRef, len(a.Books)),
	}
	for i, b := range a.Books {
		resp.Books[i] = dto.BookRef{ID: b.ID, Title: b.Title}
	}
	return resp
}

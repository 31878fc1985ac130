// Package handler HTTP处理器:参数解析、调用用例、输出响应
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// parseID 解析路径参数id,必须为正整数
func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.WithDetail(apperrors.ErrInvalidParams, "无效的ID "+strconv.Quote(raw))
	}
	return uint(id), nil
}

// bindPageQuery 绑定分页参数
func bindPageQuery(c *gin.Context) (dto.PageQuery, error) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, apperrors.WithDetail(apperrors.ErrBindError, err.Error())
	}
	return q, nil
}

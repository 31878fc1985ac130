package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// ErrorBody 错误响应结构
// 设计说明：
// 1. HTTP状态码表达错误类别（404、409、400、500）
// 2. Code是业务错误码，方便客户端区分同一状态码下的不同错误
// 3. 成功响应直接返回资源本身，不再包一层信封
type ErrorBody struct {
	Code    int    `json:"code" example:"40402"`
	Message string `json:"message" example:"图书不存在"`
}

// MessageBody 确认消息响应（创建、更新）
type MessageBody struct {
	Message string `json:"message" example:"图书已添加"`
	ID      uint   `json:"id,omitempty" example:"1"`
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应，携带确认消息
func Created(c *gin.Context, message string, id uint) {
	c.JSON(http.StatusCreated, MessageBody{Message: message, ID: id})
}

// NoContent 204响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := h.getBookUseCase.Execute(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	// 提取AppError
	appErr := apperrors.GetAppError(err)
	status := apperrors.HTTPStatus(appErr.Code)

	// 服务端错误记录详细原因（内部错误不返回给客户端）
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			zap.Int("code", appErr.Code),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	_ = c.Error(err)

	c.AbortWithStatusJSON(status, ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(apperrors.HTTPStatus(code), ErrorBody{
		Code:    code,
		Message: message,
	})
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
// 字段命名沿用前端已有的分页约定(content/totalElements/number...)
type PageData struct {
	Content          interface{} `json:"content"`          // 数据列表
	TotalElements    int64       `json:"totalElements"`    // 总记录数
	TotalPages       int         `json:"totalPages"`       // 总页数
	Number           int         `json:"number"`           // 当前页码(从0开始)
	Size             int         `json:"size"`             // 每页大小
	NumberOfElements int         `json:"numberOfElements"` // 当前页记录数
	First            bool        `json:"first"`
	Last             bool        `json:"last"`
	Empty            bool        `json:"empty"`
}

// NewPageData 创建分页数据
func NewPageData(content interface{}, count int, total int64, page, size int) *PageData {
	totalPages := 0
	if size > 0 {
		totalPages = int(total) / size
		if int(total)%size != 0 {
			totalPages++
		}
	}

	return &PageData{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Number:           page,
		Size:             size,
		NumberOfElements: count,
		First:            page == 0,
		Last:             page >= totalPages-1,
		Empty:            count == 0,
	}
}

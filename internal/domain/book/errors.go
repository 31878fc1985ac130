package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrBookAlreadyExists 同名图书已存在
	ErrBookAlreadyExists = apperrors.New(apperrors.ErrCodeDuplicateEntry, "同名图书已存在")

	// ErrInvalidSort 排序字段不是图书的合法字段
	ErrInvalidSort = apperrors.New(apperrors.ErrCodeInvalidSort, "无效的排序字段")

	// ErrInvalidPage 分页参数非法
	ErrInvalidPage = apperrors.New(apperrors.ErrCodeInvalidParams, "无效的分页参数")

	// ErrEmptyTitle 书名为空
	ErrEmptyTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrAuthorNotFound 引用的作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrTitleLockTimeout 等待书名锁超时
	ErrTitleLockTimeout = apperrors.New(apperrors.ErrCodeLockTimeout, "图书正在创建中,请稍后重试")
)

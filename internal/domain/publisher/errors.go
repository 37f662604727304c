package publisher

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 出版社领域错误定义
var (
	// ErrPublisherNotFound 出版社不存在
	ErrPublisherNotFound = apperrors.New(apperrors.ErrCodePublisherNotFound, "Publisher not found")

	// ErrBlankName 出版社名称为空
	ErrBlankName = apperrors.New(apperrors.ErrCodeBlankField, "publisher name must not be blank")
)

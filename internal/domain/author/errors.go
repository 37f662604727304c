package author

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "Author not found")

	// ErrBlankName 作者名称为空
	ErrBlankName = apperrors.New(apperrors.ErrCodeBlankField, "author name must not be blank")
)

package book

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrNoBooksFound 按作者/出版社查询没有结果
	ErrNoBooksFound = apperrors.New(apperrors.ErrCodeBookNotFound, "No books found")

	// ErrBookDuplicate 同一出版社下书名已存在
	ErrBookDuplicate = apperrors.New(apperrors.ErrCodeBookDuplicate, "Book already present")

	// ErrAuthorLinkDuplicate 同一作者重复关联到同一本书
	ErrAuthorLinkDuplicate = apperrors.New(apperrors.ErrCodeLinkDuplicate, "author already linked to this book")

	// ErrMissingField 缺少必填字段
	ErrMissingField = apperrors.New(apperrors.ErrCodeInvalidParams, "All fields must be filled")

	// ErrBlankField 字段为空或只有空白
	ErrBlankField = apperrors.New(apperrors.ErrCodeBlankField, "Please enter all field, white space not allowed")

	// ErrInvalidPrice 价格不是非负数
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidPrice, "Price must be a positive number")

	// ErrAuthorsNotArray authors字段不是数组
	ErrAuthorsNotArray = apperrors.New(apperrors.ErrCodeInvalidList, "Authors must be an array")

	// ErrTextField 书名或出版社不是字符串
	ErrTextField = apperrors.New(apperrors.ErrCodeInvalidText, "Title and publisher must be text")

	// ErrDuplicateAuthor 作者列表中有重复名称
	ErrDuplicateAuthor = apperrors.New(apperrors.ErrCodeInvalidList, "Authors must not contain duplicates")
)

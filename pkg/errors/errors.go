package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型，HTTP状态码由Code所属区间推导
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，便于errors.Is(err, ErrXxx)匹配包装后的错误
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// HTTPStatus 返回该错误对应的HTTP状态码
func (e *AppError) HTTPStatus() int {
	return HTTPStatus(e.Code)
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：错误码前三位即HTTP状态码
// - 400xx: 参数错误
// - 404xx: 资源不存在
// - 409xx: 资源冲突
// - 500xx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal = 50000 // 内部错误(数据库等)

	// 参数错误（40000-40099）
	ErrCodeInvalidParams = 40000 // 参数错误(通用)
	ErrCodeBindError     = 40001 // 参数绑定失败
	ErrCodeInvalidID     = 40002 // ID非法
	ErrCodeBlankField    = 40003 // 字段为空或只有空白
	ErrCodeInvalidPrice  = 40004 // 价格非法
	ErrCodeInvalidList   = 40005 // 作者列表非法
	ErrCodeInvalidText   = 40006 // 文本字段类型非法

	// 资源错误（40400-40499）
	ErrCodeBookNotFound      = 40401 // 图书不存在
	ErrCodeAuthorNotFound    = 40402 // 作者不存在
	ErrCodePublisherNotFound = 40403 // 出版社不存在

	// 冲突错误（40900-40999）
	ErrCodeBookDuplicate = 40901 // 图书已存在
	ErrCodeLinkDuplicate = 40902 // 作者关联重复
)

// HTTPStatus 错误码 → HTTP状态码
func HTTPStatus(code int) int {
	switch code / 100 {
	case 400:
		return http.StatusBadRequest
	case 404:
		return http.StatusNotFound
	case 409:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	ErrBindError = New(ErrCodeBindError, "malformed request body")
	ErrInvalidID = New(ErrCodeInvalidID, "id not valid")
)

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal server error")
}

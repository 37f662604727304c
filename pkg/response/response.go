package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Response 错误/确认响应结构
// 设计说明：
// 1. 数据接口直接返回资源JSON（对象或数组），浏览器页面按原样消费
// 2. 失败时返回Code+Message，HTTP状态码由Code推导（400/404/409/500）
// 3. Data只在确认类响应中携带少量信息（如新建图书的ID）
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON 成功响应，直接输出资源本身
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 成功确认响应（如"Book inserted"）
func Message(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := bookService.Delete(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	// 提取AppError
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 记录详细错误到日志（包含内部错误），调用方只看到通用提示
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("request_id"),
			"error", appErr.Error(),
		)
	}

	_ = c.Error(err)
	c.JSON(status, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

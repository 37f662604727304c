package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// parseID 解析路径参数id,必须是正整数
func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, apperrors.ErrInvalidID
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidID
	}
	return uint(id), nil
}

// MissingID 处理缺少id的路径(如/author/id/、DELETE /book)
func MissingID(c *gin.Context) {
	response.Error(c, apperrors.ErrInvalidID)
}

package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	apppublisher "github.com/xiebiao/bookcatalog/internal/application/publisher"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// PublisherHandler 出版社HTTP处理器
type PublisherHandler struct {
	getPublisherUseCase *apppublisher.GetPublisherUseCase
	listBooksUseCase    *appbook.ListBooksUseCase
}

// NewPublisherHandler 创建出版社处理器
func NewPublisherHandler(getPublisherUseCase *apppublisher.GetPublisherUseCase, listBooksUseCase *appbook.ListBooksUseCase) *PublisherHandler {
	return &PublisherHandler{
		getPublisherUseCase: getPublisherUseCase,
		listBooksUseCase:    listBooksUseCase,
	}
}

// GetPublisher 查询出版社名称
// @Summary      查询出版社
// @Tags         出版社
// @Produce      json
// @Param        id path int true "出版社ID"
// @Success      200 {object} dto.NameResponse
// @Failure      400 {object} response.Response "ID非法"
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /publisher/id/{id} [get]
func (h *PublisherHandler) GetPublisher(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getPublisherUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, dto.NameResponse{Name: result.Name})
}

// ListBooks 查询出版社的全部图书
// @Summary      出版社的图书
// @Tags         出版社
// @Produce      json
// @Param        id path int true "出版社ID"
// @Success      200 {array} dto.BookResponse
// @Failure      400 {object} response.Response "ID非法"
// @Failure      404 {object} response.Response "没有图书"
// @Router       /publisher/books/{id} [get]
func (h *PublisherHandler) ListBooks(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.listBooksUseCase.ByPublisher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, toBookResponses(items))
}

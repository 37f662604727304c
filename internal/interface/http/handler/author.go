package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	getAuthorUseCase *appauthor.GetAuthorUseCase
	listBooksUseCase *appbook.ListBooksUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(getAuthorUseCase *appauthor.GetAuthorUseCase, listBooksUseCase *appbook.ListBooksUseCase) *AuthorHandler {
	return &AuthorHandler{
		getAuthorUseCase: getAuthorUseCase,
		listBooksUseCase: listBooksUseCase,
	}
}

// GetAuthor 查询作者名称
// @Summary      查询作者
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} dto.NameResponse
// @Failure      400 {object} response.Response "ID非法"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /author/id/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getAuthorUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, dto.NameResponse{Name: result.Name})
}

// ListBooks 查询作者的全部图书
// @Summary      作者的图书
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {array} dto.BookResponse
// @Failure      400 {object} response.Response "ID非法"
// @Failure      404 {object} response.Response "没有图书"
// @Router       /author/books/{id} [get]
func (h *AuthorHandler) ListBooks(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.listBooksUseCase.ByAuthor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, toBookResponses(items))
}

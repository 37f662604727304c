package handler

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	publishBookUseCase *appbook.PublishBookUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	deleteBookUseCase  *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	publishBookUseCase *appbook.PublishBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		publishBookUseCase: publishBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		deleteBookUseCase:  deleteBookUseCase,
	}
}

// ListBooks 全部图书
// @Summary      图书列表
// @Description  返回全部图书,每本书带作者ID列表;没有图书时返回空数组
// @Tags         图书
// @Produce      json
// @Success      200 {array} dto.BookResponse
// @Failure      500 {object} response.Response
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	items, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, toBookResponses(items))
}

// PublishBook 新增图书
// @Summary      新增图书
// @Description  出版社和作者按名称给出,不存在时自动创建
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookCreatedResponse}
// @Failure      400 {object} response.Response "字段缺失/为空/类型错误"
// @Failure      409 {object} response.Response "同一出版社下书名已存在"
// @Router       /book [post]
func (h *BookHandler) PublishBook(c *gin.Context) {
	// 1. 参数绑定(缺失、类型错误在这里拦截)
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	// 2. 调用应用层用例(空白、负价格、重复作者由领域层校验)
	result, err := h.publishBookUseCase.Execute(c.Request.Context(), appbook.PublishBookRequest{
		Title:     *req.Title,
		Price:     *req.Price,
		Publisher: *req.Publisher,
		Authors:   *req.Authors,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Book inserted", dto.BookCreatedResponse{ID: result.ID})
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "ID非法"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /book/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Book deleted", nil)
}

// bindError 把绑定错误转换为对应的业务错误
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch {
		case strings.HasPrefix(typeErr.Field, "authors"):
			return book.ErrAuthorsNotArray
		case typeErr.Field == "price":
			return book.ErrInvalidPrice
		case typeErr.Field == "title", typeErr.Field == "publisher":
			return book.ErrTextField
		}
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return book.ErrMissingField
	}

	return apperrors.ErrBindError
}

func toBookResponses(items []appbook.BookListItem) []dto.BookResponse {
	out := make([]dto.BookResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.BookResponse{
			ID:          item.ID,
			Title:       item.Title,
			Price:       item.Price,
			PublisherID: item.PublisherID,
			Authors:     item.Authors,
		})
	}
	return out
}

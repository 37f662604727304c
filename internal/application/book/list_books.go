package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "catalog/application/book"

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 全量/按作者/按出版社三种查询,都不分页
// 2. 每本书都带上作者ID列表,浏览器页面再按ID取名称
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// BookListItem 列表项DTO
type BookListItem struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	PublisherID uint    `json:"publisher_id"`
	Authors     []uint  `json:"authors"`
}

// Execute 全部图书(没有图书时返回空数组)
func (uc *ListBooksUseCase) Execute(ctx context.Context) (items []BookListItem, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListBooks")
	defer func() { tracing.End(span, err) }()

	books, err := uc.bookService.List(ctx)
	if err != nil {
		return nil, err
	}
	return toListItems(books), nil
}

// ByAuthor 某作者的图书
func (uc *ListBooksUseCase) ByAuthor(ctx context.Context, authorID uint) (items []BookListItem, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListBooksByAuthor")
	defer func() { tracing.End(span, err) }()

	books, err := uc.bookService.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return toListItems(books), nil
}

// ByPublisher 某出版社的图书
func (uc *ListBooksUseCase) ByPublisher(ctx context.Context, publisherID uint) (items []BookListItem, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListBooksByPublisher")
	defer func() { tracing.End(span, err) }()

	books, err := uc.bookService.ListByPublisher(ctx, publisherID)
	if err != nil {
		return nil, err
	}
	return toListItems(books), nil
}

func toListItems(books []*book.Book) []BookListItem {
	items := make([]BookListItem, 0, len(books))
	for _, b := range books {
		authors := b.AuthorIDs
		if authors == nil {
			authors = []uint{}
		}
		items = append(items, BookListItem{
			ID:          b.ID,
			Title:       b.Title,
			Price:       b.Price,
			PublisherID: b.PublisherID,
			Authors:     authors,
		})
	}
	return items
}

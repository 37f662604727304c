package book

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// PublishBookUseCase 新增图书用例(POST /book)
// 设计说明:
// 1. 应用层负责用例编排:调用领域服务、记录指标、发布事件
// 2. 名称解析、重复检查等业务规则由领域服务负责
type PublishBookUseCase struct {
	bookService book.Service
	events      EventPublisher
}

// NewPublishBookUseCase 创建新增图书用例
func NewPublishBookUseCase(bookService book.Service, events EventPublisher) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService: bookService,
		events:      events,
	}
}

// PublishBookRequest 新增图书请求DTO
type PublishBookRequest struct {
	Title     string
	Price     float64
	Publisher string   // 出版社名称
	Authors   []string // 作者名称
}

// PublishBookResponse 新增图书响应DTO
type PublishBookResponse struct {
	ID uint `json:"id"`
}

// Execute 执行新增图书用例
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (resp *PublishBookResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PublishBook")
	defer func() { tracing.End(span, err) }()

	b, err := uc.bookService.Publish(ctx, book.Draft{
		Title:     req.Title,
		Price:     req.Price,
		Publisher: req.Publisher,
		Authors:   req.Authors,
	})
	if err != nil {
		if errors.Is(err, book.ErrBookDuplicate) {
			metrics.IncCounter(metrics.BookConflictsTotal)
		}
		return nil, err
	}

	metrics.IncCounter(metrics.BooksAddedTotal)
	slog.InfoContext(ctx, "book inserted",
		"book_id", b.ID,
		"publisher_id", b.PublisherID,
		"authors", len(b.AuthorIDs),
	)

	publishEvent(ctx, uc.events, RoutingKeyBookAdded, BookEvent{
		BookID:      b.ID,
		Title:       b.Title,
		PublisherID: b.PublisherID,
		AuthorIDs:   b.AuthorIDs,
		OccurredAt:  time.Now(),
	})

	return &PublishBookResponse{ID: b.ID}, nil
}

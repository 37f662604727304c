package book

import (
	"context"
	"log/slog"
	"time"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// Transactor 事务执行器(由store.TxManager实现)
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DeleteBookUseCase 删除图书用例
// 关联行和图书行在同一事务中删除,事件在提交之后发布
type DeleteBookUseCase struct {
	bookService book.Service
	txManager   Transactor
	events      EventPublisher
}

// NewDeleteBookUseCase 创建删除图书用例
func NewDeleteBookUseCase(bookService book.Service, txManager Transactor, events EventPublisher) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		txManager:   txManager,
		events:      events,
	}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "DeleteBook")
	defer func() { tracing.End(span, err) }()

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.bookService.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	metrics.IncCounter(metrics.BooksDeletedTotal)
	slog.InfoContext(ctx, "book deleted", "book_id", id)

	publishEvent(ctx, uc.events, RoutingKeyBookDeleted, BookEvent{
		BookID:     id,
		OccurredAt: time.Now(),
	})
	return nil
}

package book

import (
	"context"
	"log/slog"
	"time"

	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// 事件routing key
const (
	RoutingKeyBookAdded   = "book.added"
	RoutingKeyBookDeleted = "book.deleted"
)

// EventPublisher 图书事件发布者
// pkg/mq.Publisher满足该接口;未启用消息队列时使用NopPublisher
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// NopPublisher 丢弃所有事件
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// BookEvent 图书变更事件
type BookEvent struct {
	BookID      uint      `json:"book_id"`
	Title       string    `json:"title,omitempty"`
	PublisherID uint      `json:"publisher_id,omitempty"`
	AuthorIDs   []uint    `json:"author_ids,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// publishEvent 发布失败只记日志,不影响请求结果
func publishEvent(ctx context.Context, publisher EventPublisher, routingKey string, event BookEvent) {
	result := "ok"
	if err := publisher.Publish(ctx, routingKey, event); err != nil {
		result = "error"
		slog.WarnContext(ctx, "publish book event failed",
			"routing_key", routingKey,
			"book_id", event.BookID,
			"error", err,
		)
	}
	metrics.IncCounterVec(metrics.EventsPublishedTotal, map[string]string{"routing_key": routingKey, "result": result})
}

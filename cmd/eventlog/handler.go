package main

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// newEventHandler 把图书事件写入日志
// 无法解析的消息记录后直接确认,避免反复重新入队
func newEventHandler(log *zap.Logger) mq.Handler {
	return func(_ context.Context, routingKey string, body []byte) error {
		var event book.Event
		if err := json.Unmarshal(body, &event); err != nil {
			metrics.MessagesConsumedTotal.WithLabelValues(routingKey, metrics.ResultInvalid).Inc()
			log.Warn("丢弃无法解析的事件", zap.String("routing_key", routingKey), zap.Error(err))
			return nil
		}

		metrics.MessagesConsumedTotal.WithLabelValues(routingKey, metrics.ResultSuccess).Inc()
		log.Info("图书事件",
			zap.String("type", event.Type),
			zap.Uint("book_id", event.BookID),
			zap.String("title", event.Title),
			zap.Uints("author_ids", event.AuthorIDs),
			zap.Time("occurred_at", event.OccurredAt),
		)
		return nil
	}
}

package book

import (
	"context"
	"time"
)

// 图书事件类型(同时作为消息的routing key)
const (
	EventCreated = "book.created"
	EventUpdated = "book.updated"
	EventDeleted = "book.deleted"
)

// Event 图书领域事件
type Event struct {
	Type       string    `json:"type"`
	BookID     uint      `json:"book_id"`
	Title      string    `json:"title,omitempty"`
	AuthorIDs  []uint    `json:"author_ids,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent 根据图书快照生成事件;删除事件只有BookID
func NewEvent(eventType string, b *Book) Event {
	e := Event{
		Type:       eventType,
		BookID:     b.ID,
		OccurredAt: time.Now(),
	}
	if eventType != EventDeleted {
		e.Title = b.Title
		for _, a := range b.Authors {
			e.AuthorIDs = append(e.AuthorIDs, a.ID)
		}
	}
	return e
}

// EventPublisher 领域事件发布接口
// 由infrastructure/messaging实现(RabbitMQ或空实现)
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

package messaging

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/circuitbreaker"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// sender 消息发送抽象,*mq.Publisher实现了它
type sender interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// resultBreakerOpen 熔断期间被拒绝的发布
const resultBreakerOpen = "breaker_open"

// BookEventPublisher 把图书事件发布到RabbitMQ
// routing key即事件类型(book.created/book.updated/book.deleted)
type BookEventPublisher struct {
	sender  sender
	breaker *circuitbreaker.CircuitBreaker // 为nil时不做熔断
}

// NewBookEventPublisher 创建图书事件发布者
func NewBookEventPublisher(s sender, breaker *circuitbreaker.CircuitBreaker) *BookEventPublisher {
	return &BookEventPublisher{sender: s, breaker: breaker}
}

// Publish 发布图书事件
func (p *BookEventPublisher) Publish(ctx context.Context, event book.Event) error {
	send := func() error {
		return p.sender.Publish(ctx, event.Type, event)
	}

	var err error
	if p.breaker != nil {
		err = p.breaker.Execute(send)
	} else {
		err = send()
	}

	metrics.InitMetrics()
	metrics.MessagesPublishedTotal.WithLabelValues(event.Type, publishResult(err)).Inc()
	return err
}

func publishResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, circuitbreaker.ErrOpenState):
		return resultBreakerOpen
	default:
		return metrics.ResultError
	}
}

// NoopPublisher 未开启消息队列时使用,只记录调试日志
type NoopPublisher struct {
	log *zap.Logger
}

// NewNoopPublisher 创建空发布者
func NewNoopPublisher(log *zap.Logger) *NoopPublisher {
	return &NoopPublisher{log: log}
}

// Publish 丢弃事件
func (p *NoopPublisher) Publish(_ context.Context, event book.Event) error {
	p.log.Debug("消息队列未开启,丢弃事件", zap.String("type", event.Type), zap.Uint("book_id", event.BookID))
	return nil
}

// NewEventPublisher 按配置选择事件发布实现
// 返回的cleanup在程序退出时关闭连接
func NewEventPublisher(cfg *config.Config, log *zap.Logger) (book.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return NewNoopPublisher(log), func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Warn("关闭消息发布者失败", zap.Error(err))
		}
	}
	breaker := circuitbreaker.New("mq-publisher", circuitbreaker.Config{
		Timeout:     cfg.MQ.BreakerTimeout,
		ReadyToTrip: circuitbreaker.ConsecutiveFailures(cfg.MQ.BreakerFailures),
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn("消息发布熔断器状态变化",
				zap.String("name", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
		},
	})
	return NewBookEventPublisher(publisher, breaker), cleanup, nil
}

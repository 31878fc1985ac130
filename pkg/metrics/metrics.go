// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
//   - HTTP请求：请求数、耗时、处理中的请求数（由HTTP中间件记录）
//   - 图书业务：各操作的结果计数与耗时（由应用层用例记录）
//   - 消息队列：事件发布/消费计数
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds）。
// 标签只使用有限取值（method、route、operation、result），避免高基数。
//
// 使用示例：
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	done := metrics.TrackBookOperation("create")
//	book, err := svc.CreateBook(ctx, b)
//	done(err)
package metrics

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 操作结果标签
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultConflict = "conflict"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

var (
	// once 防止重复注册到默认Registry
	once sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、route（/api/v1/books/:id）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 图书业务指标

	// BookOperationsTotal 图书/作者操作总数（Counter）
	// 标签：operation（list/get/create/update/delete）、result（success/not_found/conflict/invalid/error）
	BookOperationsTotal *prometheus.CounterVec

	// BookOperationDuration 图书/作者操作耗时（Histogram）
	BookOperationDuration *prometheus.HistogramVec

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：routing_key（book.created等）、result（success/error）
	MessagesPublishedTotal *prometheus.CounterVec

	// MessagesConsumedTotal 消息消费总数（Counter）
	// 标签：routing_key、result（success/error）
	MessagesConsumedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标，可重复调用
func InitMetrics() {
	once.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	BookOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookshelf_operations_total",
			Help: "图书/作者操作总数",
		},
		[]string{"operation", "result"},
	)

	BookOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookshelf_operation_duration_seconds",
			Help:    "图书/作者操作耗时（秒）",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"routing_key", "result"},
	)

	MessagesConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_consumed_total",
			Help: "消息消费总数",
		},
		[]string{"routing_key", "result"},
	)
}

// TrackBookOperation 记录一次业务操作，返回的函数在操作结束时以结果错误调用
func TrackBookOperation(operation string) func(err error) {
	InitMetrics()
	start := time.Now()
	return func(err error) {
		BookOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		BookOperationsTotal.WithLabelValues(operation, ResultOf(err)).Inc()
	}
}

// ResultOf 把错误归类为结果标签
func ResultOf(err error) string {
	if err == nil {
		return ResultSuccess
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return ResultError
	}
	switch status := apperrors.HTTPStatus(appErr.Code); {
	case status == 404:
		return ResultNotFound
	case status == 409:
		return ResultConflict
	case status == 400:
		return ResultInvalid
	default:
		return ResultError
	}
}

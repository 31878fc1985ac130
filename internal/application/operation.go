// Package application 应用层公共设施
package application

import (
	"context"

	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// TracerName 应用层Span的Tracer名称
const TracerName = "bookshelf/application"

// StartOperation 开始一个用例:创建Span并开始计时
// 返回的finish在用例结束时以结果错误调用
//
//	ctx, finish := application.StartOperation(ctx, "CreateBook", "create_book")
//	defer func() { finish(err) }()
func StartOperation(ctx context.Context, spanName, metricName string) (context.Context, func(err error)) {
	ctx, span := tracing.StartSpan(ctx, TracerName, spanName)
	done := metrics.TrackBookOperation(metricName)
	return ctx, func(err error) {
		done(err)
		tracing.EndSpan(span, err)
	}
}

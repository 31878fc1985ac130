package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

func TestEventHandler(t *testing.T) {
	metrics.InitMetrics()
	core, logs := observer.New(zapcore.InfoLevel)
	handle := newEventHandler(zap.New(core))

	t.Run("记录事件", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.MessagesConsumedTotal.WithLabelValues(book.EventCreated, metrics.ResultSuccess))

		body, err := json.Marshal(book.Event{
			Type:       book.EventCreated,
			BookID:     7,
			Title:      "Foo",
			AuthorIDs:  []uint{1, 2},
			OccurredAt: time.Now(),
		})
		require.NoError(t, err)
		require.NoError(t, handle(context.Background(), book.EventCreated, body))

		entries := logs.FilterMessage("图书事件").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, book.EventCreated, fields["type"])
		assert.Equal(t, uint64(7), fields["book_id"])
		assert.Equal(t, "Foo", fields["title"])

		after := testutil.ToFloat64(metrics.MessagesConsumedTotal.WithLabelValues(book.EventCreated, metrics.ResultSuccess))
		assert.Equal(t, before+1, after)
	})

	t.Run("无法解析的消息直接确认", func(t *testing.T) {
		err := handle(context.Background(), book.EventDeleted, []byte("not json"))
		assert.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("丢弃无法解析的事件").Len())
	})
}

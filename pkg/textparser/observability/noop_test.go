package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics_RecordParse(t *testing.T) {
	m := NoopMetrics{}

	assert.NotPanics(t, func() {
		m.RecordParse(context.Background(), 3, 2, time.Millisecond, nil)
		m.RecordParse(context.Background(), 0, 0, 0, errors.New("test"))
	})
}

func TestNoopSpanManager(t *testing.T) {
	sm := NoopSpanManager{}
	ctx := context.Background()

	t.Run("returns context unchanged", func(t *testing.T) {
		got, span := sm.StartParseSpan(ctx, "run-1")
		assert.Equal(t, ctx, got)
		assert.NotNil(t, span)
		assert.False(t, span.IsRecording())
	})

	t.Run("end and events do not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			_, span := sm.StartParseSpan(ctx, "run-1")
			sm.AddSpanEvent(ctx, "token.skipped", attribute.String("token.key", "k"))
			sm.EndSpanWithError(span, errors.New("test"))
			sm.EndSpanWithError(nil, nil)
		})
	})
}

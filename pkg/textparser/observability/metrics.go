package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records textparser metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordParse records one parse with the number of tokens found,
	// how many distinct keys were substituted, and its error status.
	RecordParse(ctx context.Context, tokens, substituted int, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	runs          metric.Int64Counter
	latency       metric.Float64Histogram
	tokens        metric.Int64Counter
	substitutions metric.Int64Counter
	errors        metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("textparser")

	runs, err := meter.Int64Counter("textparser.parse.runs",
		metric.WithDescription("Number of parse calls"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("textparser.parse.latency_ms",
		metric.WithDescription("Parse latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	tokens, err := meter.Int64Counter("textparser.parse.tokens",
		metric.WithDescription("Number of tokens found in parsed texts"),
	)
	if err != nil {
		return nil, err
	}

	substitutions, err := meter.Int64Counter("textparser.parse.substitutions",
		metric.WithDescription("Number of keys substituted"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("textparser.parse.errors",
		metric.WithDescription("Number of failed parse calls"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		runs:          runs,
		latency:       latency,
		tokens:        tokens,
		substitutions: substitutions,
		errors:        errs,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordParse records a parse.
func (m *otelMetrics) RecordParse(ctx context.Context, tokens, substituted int, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.Bool("success", err == nil))

	m.runs.Add(ctx, 1, attrs)
	m.latency.Record(ctx, Milliseconds(duration), attrs)
	if err != nil {
		m.errors.Add(ctx, 1)
		return
	}
	m.tokens.Add(ctx, int64(tokens))
	m.substitutions.Add(ctx, int64(substituted))
}

// Milliseconds converts d to fractional milliseconds. Parses usually
// finish well under a millisecond, so whole milliseconds would read 0.
func Milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

package textparser

import (
	"log/slog"

	"github.com/randalmurphal/textparser/pkg/textparser/observability"
)

// Option configures the ambient behavior of a Parser.
// Options never change how tokens resolve.
type Option func(*Parser)

// WithLogger sets the logger used for debug output during Parse.
//
// Default: nil (no logging)
//
// Example:
//
//	p := textparser.Text("Hi [name]", textparser.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithMetrics sets the recorder that receives one measurement per Parse.
//
// Default: observability.NoopMetrics{}
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(p *Parser) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithSpanManager sets the span manager used by ParseContext.
//
// Default: observability.NoopSpanManager{}
//
// Example:
//
//	p := textparser.Text(body, textparser.WithSpanManager(observability.NewSpanManager()))
//	out, err := p.ParseContext(ctx)
func WithSpanManager(sm observability.SpanManager) Option {
	return func(p *Parser) {
		if sm != nil {
			p.spans = sm
		}
	}
}

// WithRunID fixes the identifier attached to log records and spans.
// By default each Parse call generates a fresh UUID.
func WithRunID(id string) Option {
	return func(p *Parser) {
		p.runID = id
	}
}

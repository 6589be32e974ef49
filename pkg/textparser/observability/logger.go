// Package observability provides opt-in logging, metrics and tracing
// for textparser.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Every feature is disabled by default and has a no-op implementation.
// A nil *slog.Logger is accepted everywhere and logs nothing. Callers
// attach the run_id once with EnrichLogger.
package observability

import (
	"log/slog"
)

// EnrichLogger returns logger with the run_id field attached.
// Returns nil if logger is nil.
//
// Example:
//
//	enriched := EnrichLogger(logger, "run-123")
//	enriched.Info("rendering") // includes run_id
func EnrichLogger(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("run_id", runID))
}

// LogParseStart logs the start of a parse.
func LogParseStart(logger *slog.Logger, tokens int) {
	if logger == nil {
		return
	}
	logger.Debug("parse starting",
		slog.Int("tokens", tokens),
	)
}

// LogParseComplete logs a successful parse.
func LogParseComplete(logger *slog.Logger, substituted int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("parse completed",
		slog.Int("substituted", substituted),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogParseError logs a parse that failed.
func LogParseError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("parse failed",
		slog.String("error", err.Error()),
	)
}

// LogTokenSkipped logs a token left unresolved and why.
func LogTokenSkipped(logger *slog.Logger, key, reason string) {
	if logger == nil {
		return
	}
	logger.Debug("token skipped",
		slog.String("key", key),
		slog.String("reason", reason),
	)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
)

// Ensure the logging decorators implement the t2e text interfaces.
var (
	_ t2e.TextSource = (*LoggingSource)(nil)
	_ t2e.TextSink   = (*LoggingSink)(nil)
)

// LoggingSource wraps a TextSource with logging.
type LoggingSource struct {
	next   t2e.TextSource
	name   string
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource. The name identifies the
// source in log records, e.g. "clipboard" or a file path.
func NewLoggingSource(next t2e.TextSource, name string, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, name: name, logger: logger}
}

// ReadText delegates to the wrapped source and logs the operation.
func (s *LoggingSource) ReadText(ctx context.Context) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read input",
			"source", s.name,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadText(ctx)
}

// LoggingSink wraps a TextSink with logging.
type LoggingSink struct {
	next   t2e.TextSink
	name   string
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next t2e.TextSink, name string, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, name: name, logger: logger}
}

// WriteText delegates to the wrapped sink and logs the operation.
func (s *LoggingSink) WriteText(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write output",
			"sink", s.name,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteText(ctx, text)
}

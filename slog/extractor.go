// Package slog provides logging decorators for the t2e interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
)

// Ensure LoggingExtractor implements t2e.Extractor.
var _ t2e.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   t2e.Extractor
	mode   t2e.Mode
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The mode is only
// used to label log records.
func NewLoggingExtractor(next t2e.Extractor, mode t2e.Mode, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, mode: mode, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
// Failures include the error code and input offset.
func (e *LoggingExtractor) Extract(input string) (items []string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("extract",
				"mode", e.mode.String(),
				"bytes", len(input),
				"code", t2e.ErrorCode(err),
				"offset", t2e.ErrorOffset(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Info("extract",
			"mode", e.mode.String(),
			"bytes", len(input),
			"count", len(items),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(input)
}

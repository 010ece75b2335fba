package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ktorrent"
)

// Ensure LoggingExtractor implements ktorrent.Extractor.
var _ ktorrent.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   ktorrent.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next ktorrent.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the rule and match count.
func (e *LoggingExtractor) Extract(html string, rule ktorrent.Rule) (values []string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"kind", string(rule.Kind),
			"count", len(values),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", ktorrent.ErrorCode(err), "err", err)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, rule)
}

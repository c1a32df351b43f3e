// Package slog provides logging decorators for distill services.
package slog

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/distill"
	"golang.org/x/net/html"
)

// Ensure LoggingExtractor implements distill.Extractor.
var _ distill.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging. Extraction runs
// per document parsed, so the log level is Debug rather than Info.
type LoggingExtractor struct {
	next   distill.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next distill.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(doc *html.Node, baseURL *url.URL) (article *distill.Article, err error) {
	defer func(begin time.Time) {
		title, length := "", 0
		if article != nil {
			title, length = article.Title, article.Length
		}
		e.logger.Debug("content extraction",
			"title", title,
			"length", length,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(doc, baseURL)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lumi"
)

// Ensure LoggingSearcher implements lumi.Searcher.
var _ lumi.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   lumi.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next lumi.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped Searcher and logs the query.
func (s *LoggingSearcher) Search(ctx context.Context, query string, maxResults int, sort lumi.SortMode) (results []*lumi.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"max", maxResults,
			"sort", sort.String(),
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, maxResults, sort)
}

package mock

import (
	"context"

	"github.com/fwojciec/lumi"
)

var _ lumi.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of lumi.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, maxResults int, sort lumi.SortMode) ([]*lumi.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, maxResults int, sort lumi.SortMode) ([]*lumi.SearchResult, error) {
	return s.SearchFn(ctx, query, maxResults, sort)
}

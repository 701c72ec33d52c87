package lumi

import (
	"context"
	"strconv"
)

// SortMode selects the ordering applied by the search index.
// Values match the sort constants of the Everything SDK.
type SortMode int

// SortMode constants.
const (
	SortDefault          SortMode = 0
	SortSizeDesc         SortMode = 6
	SortDateModifiedDesc SortMode = 14
)

// String returns the numeric tag, which is how sort modes are reported to users.
func (m SortMode) String() string {
	return strconv.Itoa(int(m))
}

// Valid reports whether m is one of the supported sort modes.
func (m SortMode) Valid() bool {
	switch m {
	case SortDefault, SortSizeDesc, SortDateModifiedDesc:
		return true
	}
	return false
}

// SearchResult is a single file or folder returned by the search index.
type SearchResult struct {
	// Name is the file or folder name.
	Name string `json:"name"`

	// Path is the containing directory.
	Path string `json:"path"`
}

// Searcher queries a file-search index using its native query syntax.
type Searcher interface {
	// Search runs query and returns at most maxResults results ordered by sort.
	// Returns EUNAVAILABLE if the index cannot be reached and EUPSTREAM if the
	// index rejects or fails the query.
	Search(ctx context.Context, query string, maxResults int, sort SortMode) ([]*SearchResult, error)
}

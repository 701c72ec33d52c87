// Package readability extracts the main content of saved HTML documents with
// go-readability. It serves as the fallback when trafilatura finds nothing.
package readability

import (
	"strings"

	"github.com/fwojciec/lumi"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements lumi.Extractor at compile time.
var _ lumi.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*lumi.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, lumi.Errorf(lumi.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, lumi.Errorf(lumi.EMALFORMED, "no readable content: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, lumi.Errorf(lumi.EMALFORMED, "no readable content")
	}

	return &lumi.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

package mock

import "github.com/fwojciec/lumi"

var _ lumi.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of lumi.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*lumi.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*lumi.ExtractResult, error) {
	return e.ExtractFn(html)
}

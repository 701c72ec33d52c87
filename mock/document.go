package mock

import (
	"context"

	"github.com/fwojciec/lumi"
)

var _ lumi.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of lumi.DocumentReader.
type DocumentReader struct {
	ReadDocumentFn func(ctx context.Context, path string) (*lumi.Document, error)
}

func (r *DocumentReader) ReadDocument(ctx context.Context, path string) (*lumi.Document, error) {
	return r.ReadDocumentFn(ctx, path)
}

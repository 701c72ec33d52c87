package mock

import (
	"context"

	"github.com/fwojciec/lumi"
)

var _ lumi.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of lumi.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *lumi.Document) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *lumi.Document) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}

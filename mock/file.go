package mock

import (
	"context"

	"github.com/fwojciec/lumi"
)

var _ lumi.FileIndex = (*FileIndex)(nil)

// FileIndex is a mock implementation of lumi.FileIndex.
type FileIndex struct {
	ReplaceFilesFn func(ctx context.Context, root string, entries []*lumi.FileEntry) error
	CountFilesFn   func(ctx context.Context) (int, error)
}

func (f *FileIndex) ReplaceFiles(ctx context.Context, root string, entries []*lumi.FileEntry) error {
	return f.ReplaceFilesFn(ctx, root, entries)
}

func (f *FileIndex) CountFiles(ctx context.Context) (int, error) {
	return f.CountFilesFn(ctx)
}

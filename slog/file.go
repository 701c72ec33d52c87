package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lumi"
)

// Ensure LoggingFileIndex implements lumi.FileIndex.
var _ lumi.FileIndex = (*LoggingFileIndex)(nil)

// LoggingFileIndex wraps a FileIndex with logging.
type LoggingFileIndex struct {
	next   lumi.FileIndex
	logger *slog.Logger
}

// NewLoggingFileIndex creates a new LoggingFileIndex.
func NewLoggingFileIndex(next lumi.FileIndex, logger *slog.Logger) *LoggingFileIndex {
	return &LoggingFileIndex{next: next, logger: logger}
}

// ReplaceFiles delegates to the wrapped index and logs the root.
func (f *LoggingFileIndex) ReplaceFiles(ctx context.Context, root string, entries []*lumi.FileEntry) (err error) {
	defer func(begin time.Time) {
		f.logger.Info("replace files",
			"root", root,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.ReplaceFiles(ctx, root, entries)
}

// CountFiles delegates without logging.
func (f *LoggingFileIndex) CountFiles(ctx context.Context) (int, error) {
	return f.next.CountFiles(ctx)
}

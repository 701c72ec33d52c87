package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lumi"
)

// Ensure LoggingDocumentReader implements lumi.DocumentReader.
var _ lumi.DocumentReader = (*LoggingDocumentReader)(nil)

// LoggingDocumentReader wraps a DocumentReader with logging.
type LoggingDocumentReader struct {
	next   lumi.DocumentReader
	logger *slog.Logger
}

// NewLoggingDocumentReader creates a new LoggingDocumentReader.
func NewLoggingDocumentReader(next lumi.DocumentReader, logger *slog.Logger) *LoggingDocumentReader {
	return &LoggingDocumentReader{next: next, logger: logger}
}

// ReadDocument delegates to the wrapped reader and logs the result size.
func (r *LoggingDocumentReader) ReadDocument(ctx context.Context, path string) (doc *lumi.Document, err error) {
	defer func(begin time.Time) {
		var format lumi.Format
		var size int
		if doc != nil {
			format, size = doc.Format, len(doc.Content)
		}
		r.logger.Info("read document",
			"path", path,
			"format", format,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadDocument(ctx, path)
}

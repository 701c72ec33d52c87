package lumi

import "context"

// Format tags the kind of text a DocumentReader produced.
type Format string

// Format constants.
const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Document is the text extracted from a file on disk.
type Document struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Format  Format `json:"format"`
}

// DocumentReader extracts text from a file.
type DocumentReader interface {
	// ReadDocument returns the text content of the file at path.
	// Returns EINVALID for an empty path, ENOTFOUND if the file does not exist
	// and EUNSUPPORTED if the file type cannot be read.
	ReadDocument(ctx context.Context, path string) (*Document, error)
}

// DocumentWriter saves extracted documents.
type DocumentWriter interface {
	// WriteDocument stores doc and returns where it was written.
	WriteDocument(ctx context.Context, doc *Document) (string, error)
}

// Package pdf reads the text layer of PDF documents with ledongthuc/pdf.
package pdf

import (
	"context"
	"errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/fwojciec/lumi"
	"github.com/ledongthuc/pdf"
)

// Ensure Reader implements lumi.DocumentReader at compile time.
var _ lumi.DocumentReader = (*Reader)(nil)

// Reader converts PDF files to Markdown, one section per page.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadDocument extracts the text of every page of the PDF at path.
// Pages without a text layer are skipped.
func (r *Reader) ReadDocument(ctx context.Context, path string) (doc *lumi.Document, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if p := recover(); p != nil {
			doc, err = nil, lumi.Errorf(lumi.EMALFORMED, "invalid PDF %s: %v", path, p)
		}
	}()

	f, rdr, err := pdf.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, lumi.Errorf(lumi.ENOTFOUND, "file not found: %s", path)
		}
		return nil, lumi.Errorf(lumi.EMALFORMED, "invalid PDF %s: %v", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= rdr.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := rdr.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("## Page " + strconv.Itoa(i) + "\n\n")
		sb.WriteString(text)
	}

	return &lumi.Document{
		Path:    path,
		Content: sb.String(),
		Format:  lumi.FormatMarkdown,
	}, nil
}

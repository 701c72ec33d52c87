// Package docx reads the body text of Word documents. A .docx file is a zip
// archive whose word/document.xml is parsed with etree.
package docx

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/lumi"
)

// documentPart is the archive member holding the main document body.
const documentPart = "word/document.xml"

// Ensure Reader implements lumi.DocumentReader at compile time.
var _ lumi.DocumentReader = (*Reader)(nil)

// Reader extracts paragraph text from .docx files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadDocument returns the document body as plain text, one line per paragraph.
func (r *Reader) ReadDocument(ctx context.Context, path string) (*lumi.Document, error) {
	zr, err := zip.OpenReader(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, lumi.Errorf(lumi.ENOTFOUND, "file not found: %s", path)
	case errors.Is(err, zip.ErrFormat):
		return nil, lumi.Errorf(lumi.EUNSUPPORTED, "%s is not an Office Open XML document", path)
	case err != nil:
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer zr.Close()

	part, err := zr.Open(documentPart)
	if err != nil {
		return nil, lumi.Errorf(lumi.EMALFORMED, "%s has no %s", path, documentPart)
	}
	defer part.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(part); err != nil {
		return nil, lumi.Errorf(lumi.EMALFORMED, "parsing %s: %v", documentPart, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, lumi.Errorf(lumi.EMALFORMED, "empty %s", documentPart)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var paragraphs []string
	collectParagraphs(root, &paragraphs)

	return &lumi.Document{
		Path:    path,
		Content: strings.Join(paragraphs, "\n"),
		Format:  lumi.FormatText,
	}, nil
}

// collectParagraphs appends the text of every w:p below el in document order.
func collectParagraphs(el *etree.Element, out *[]string) {
	for _, child := range el.ChildElements() {
		if child.Space == "w" && child.Tag == "p" {
			var sb strings.Builder
			paragraphText(child, &sb)
			if sb.Len() > 0 {
				*out = append(*out, sb.String())
			}
			continue
		}
		collectParagraphs(child, out)
	}
}

// paragraphText writes runs, tabs and breaks of a paragraph.
func paragraphText(el *etree.Element, sb *strings.Builder) {
	for _, child := range el.ChildElements() {
		if child.Space != "w" {
			paragraphText(child, sb)
			continue
		}
		switch child.Tag {
		case "t":
			sb.WriteString(child.Text())
		case "tab":
			sb.WriteByte('\t')
		case "br", "cr":
			sb.WriteByte('\n')
		default:
			paragraphText(child, sb)
		}
	}
}

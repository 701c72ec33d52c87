// Package fs provides file-system backed document readers, the directory
// indexer, and the writer for extracted documents.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/lumi"
)

// Ensure readers implement lumi.DocumentReader at compile time.
var (
	_ lumi.DocumentReader = (*DocumentReader)(nil)
	_ lumi.DocumentReader = (*TextReader)(nil)
	_ lumi.DocumentReader = (*HTMLReader)(nil)
)

// DocumentReader dispatches to a format reader by file extension.
type DocumentReader struct {
	readers map[string]lumi.DocumentReader
}

// NewDocumentReader creates a DocumentReader. Keys of readers are
// extensions including the dot, matched case-insensitively.
func NewDocumentReader(readers map[string]lumi.DocumentReader) *DocumentReader {
	m := make(map[string]lumi.DocumentReader, len(readers))
	for ext, r := range readers {
		m[strings.ToLower(ext)] = r
	}
	return &DocumentReader{readers: m}
}

// Extensions returns the registered extensions.
func (d *DocumentReader) Extensions() []string {
	exts := make([]string, 0, len(d.readers))
	for ext := range d.readers {
		exts = append(exts, ext)
	}
	return exts
}

// ReadDocument checks that path is a regular file and hands it to the reader
// registered for its extension.
func (d *DocumentReader) ReadDocument(ctx context.Context, path string) (*lumi.Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, lumi.Errorf(lumi.EINVALID, "file path required")
	}
	if err := checkFile(path); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	r, ok := d.readers[ext]
	if !ok {
		return nil, lumi.Errorf(lumi.EUNSUPPORTED, "unsupported file format: %q", ext)
	}
	return r.ReadDocument(ctx, path)
}

// TextReader returns plain-text and Markdown files as they are.
type TextReader struct {
	format lumi.Format
}

// NewTextReader creates a TextReader that labels content with format.
func NewTextReader(format lumi.Format) *TextReader {
	return &TextReader{format: format}
}

// ReadDocument reads the file. Invalid UTF-8 sequences are replaced.
func (r *TextReader) ReadDocument(ctx context.Context, path string) (*lumi.Document, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	content := string(b)
	if !utf8.Valid(b) {
		content = strings.ToValidUTF8(content, "\uFFFD")
	}
	return &lumi.Document{Path: path, Content: content, Format: r.format}, nil
}

// HTMLReader extracts the main content of a saved web page and renders it
// as Markdown. Extractors are tried in order until one yields content.
type HTMLReader struct {
	Extractors []lumi.Extractor
	Converter  lumi.Converter
}

// ReadDocument extracts and converts the page at path.
func (r *HTMLReader) ReadDocument(ctx context.Context, path string) (*lumi.Document, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var extracted *lumi.ExtractResult
	var lastErr error
	for _, e := range r.Extractors {
		res, err := e.Extract(string(b))
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(res.ContentHTML) == "" {
			continue
		}
		extracted = res
		break
	}
	if extracted == nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, lumi.Errorf(lumi.EMALFORMED, "no content found in %s", path)
	}

	markdown, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}
	if title := strings.TrimSpace(extracted.Title); title != "" && !strings.HasPrefix(markdown, "# ") {
		markdown = "# " + title + "\n\n" + markdown
	}

	return &lumi.Document{Path: path, Content: markdown, Format: lumi.FormatMarkdown}, nil
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return lumi.Errorf(lumi.ENOTFOUND, "file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return lumi.Errorf(lumi.EINVALID, "%s is a directory", path)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, lumi.Errorf(lumi.ENOTFOUND, "file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

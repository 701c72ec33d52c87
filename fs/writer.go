package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/lumi"
)

// OutputName returns the file name for an extracted document:
// the source base name with .md for Markdown and .txt for text.
// Example: C:\Docs\report.pdf → report.pdf.md
func OutputName(doc *lumi.Document) string {
	name := filepath.Base(filepath.FromSlash(strings.ReplaceAll(doc.Path, `\`, "/")))
	if doc.Format == lumi.FormatMarkdown {
		return name + ".md"
	}
	return name + ".txt"
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *lumi.Document, extracted time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.Path)
	b.WriteString("\nformat: ")
	b.WriteString(string(doc.Format))
	b.WriteString("\nextracted: ")
	b.WriteString(extracted.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Ensure Writer implements lumi.DocumentWriter at compile time.
var _ lumi.DocumentWriter = (*Writer)(nil)

// Writer writes extracted documents into a directory. Files are written to a
// temporary name and renamed into place so readers never see partial output.
type Writer struct {
	baseDir string

	// Now returns the current time. It stamps the frontmatter.
	Now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, Now: time.Now}
}

// WriteDocument writes doc to disk and returns the path written.
func (w *Writer) WriteDocument(ctx context.Context, doc *lumi.Document) (string, error) {
	if doc.Path == "" {
		return "", lumi.Errorf(lumi.EINVALID, "document path required")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, OutputName(doc))
	tmp, err := os.CreateTemp(w.baseDir, filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(FormatDocument(doc, w.Now())); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}

// Package trafilatura extracts the main content of saved HTML documents with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/lumi"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements lumi.Extractor at compile time.
var _ lumi.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Comments are dropped and links kept,
// which suits pages saved from a browser.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			IncludeLinks:    true,
		},
	}
}

// Extract processes raw HTML and returns the main content.
// The document <title> is used when no metadata title is found.
func (e *Extractor) Extract(rawHTML string) (*lumi.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, lumi.Errorf(lumi.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, lumi.Errorf(lumi.EMALFORMED, "no extractable content: %v", err)
	}
	if result.ContentNode == nil {
		return nil, lumi.Errorf(lumi.EMALFORMED, "no extractable content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	title := result.Metadata.Title
	if title == "" {
		title = documentTitle(rawHTML)
	}

	return &lumi.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// documentTitle returns the text of the first <title> element.
func documentTitle(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	for n := range doc.Descendants() {
		if n.Type == html.ElementNode && n.DataAtom == atom.Title && n.FirstChild != nil {
			return strings.TrimSpace(n.FirstChild.Data)
		}
	}
	return ""
}

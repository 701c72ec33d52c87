package lumi

// ExtractResult holds the readable part of an HTML document.
type ExtractResult struct {
	Title string

	// ContentHTML is the main content with navigation and other page chrome removed.
	ContentHTML string
}

// Extractor finds the main content of a saved HTML page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

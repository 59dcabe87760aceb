package docmirror

// ExtractResult contains content extracted from an HTML page.
type ExtractResult struct {
	// Title is the extracted page title.
	Title string

	// ContentHTML is the main content area as HTML, with navigation,
	// headers, footers, and other chrome removed.
	ContentHTML string
}

// Extractor identifies and extracts the main content from HTML pages.
// It is used on the fallback path when a page has no markdown variant.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

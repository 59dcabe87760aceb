package docmirror

// NavExtractor produces the ordered navigation structure from a rendered
// navigation page. Implementations hide the site-specific DOM selectors,
// which are brittle by design: an upstream layout change silently yields
// zero or partial categories, with no minimum-count assertion.
type NavExtractor interface {
	// ExtractCategories parses html and returns the sidebar groups in DOM
	// order. Groups with an empty or missing heading are skipped entirely.
	// Hrefs are resolved into absolute URLs against baseURL.
	ExtractCategories(html string, baseURL string) ([]Category, error)
}

// Framework identifies a documentation site generator.
type Framework string

// Supported documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
)

// FrameworkDetector identifies documentation frameworks from HTML content.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}

// NavExtractorRegistry selects a NavExtractor for a given page, falling back
// to a generic extractor when the framework is unknown.
type NavExtractorRegistry interface {
	// GetForHTML returns the extractor to use for the given page content.
	GetForHTML(html string) NavExtractor

	// Register adds an extractor for a framework, replacing any existing one.
	Register(framework Framework, extractor NavExtractor)
}

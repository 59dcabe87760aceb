package docmirror

import "time"

// Config is the immutable per-run configuration. It is built once by the
// caller, validated, and passed by value to each component; components never
// mutate it.
type Config struct {
	// SitemapURL is the XML sitemap to discover document URLs from.
	SitemapURL string

	// NavURL is the navigation page whose sidebar provides category and
	// ordering metadata.
	NavURL string

	// BaseURL is the site origin (scheme + host) used to resolve sidebar
	// hrefs into absolute URLs.
	BaseURL string

	// PathPrefix limits sitemap URLs to those whose string starts with it.
	PathPrefix string

	// OutputDir is the directory tree holding the mirrored documents.
	OutputDir string

	// IndexFile is the table-of-contents document written at the root,
	// next to OutputDir.
	IndexFile string

	// Title and Description head the generated index.
	Title       string
	Description string

	// Concurrency caps the number of in-flight document downloads.
	Concurrency int

	// Timeout bounds each individual document download.
	Timeout time.Duration
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.SitemapURL == "" {
		return Errorf(EINVALID, "sitemap URL required")
	}
	if c.NavURL == "" {
		return Errorf(EINVALID, "navigation page URL required")
	}
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if c.OutputDir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	if c.IndexFile == "" {
		return Errorf(EINVALID, "index file required")
	}
	return nil
}

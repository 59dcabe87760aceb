package docmirror

import "context"

// SitemapService discovers document URLs from a site's XML sitemap.
type SitemapService interface {
	// DiscoverURLs fetches and parses the sitemap at sitemapURL and returns
	// every <url><loc> entry whose string starts with pathPrefix, in sitemap
	// document order. Duplicates are not removed. Sitemap indexes are
	// resolved recursively.
	//
	// An empty pathPrefix returns all URLs.
	DiscoverURLs(ctx context.Context, sitemapURL string, pathPrefix string) ([]string, error)
}

package main

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/mirror"
)

// Run executes the mirror command.
func (c *MirrorCmd) Run(deps *Dependencies) error {
	if c.Preview {
		return c.runPreview(deps)
	}

	return c.runMirror(deps)
}

// runPreview plans the run and prints each discovered URL with its resolved
// category, without touching the filesystem.
func (c *MirrorCmd) runPreview(deps *Dependencies) error {
	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, deps.Config.SitemapURL, deps.Config.PathPrefix)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return err
	}

	navHTML, err := deps.Fetcher.Fetch(deps.Ctx, deps.Config.NavURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return err
	}
	categories, err := deps.Nav.GetForHTML(navHTML).ExtractCategories(navHTML, deps.Config.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return err
	}

	targets, _ := mirror.Categorize(urls, categories)
	for _, target := range targets {
		fmt.Fprintf(deps.Stdout, "%s/%s\t%s\n", target.CategorySlug, target.FileSlug, target.URL)
	}

	return nil
}

func (c *MirrorCmd) runMirror(deps *Dependencies) error {
	progress := func(p mirror.ProgressEvent) {
		switch p.Type {
		case mirror.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", p.URL, p.Error)
		case mirror.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", p.Completed, p.Total, truncateURL(p.URL, 40))
		case mirror.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
		}
	}

	result, err := deps.Mirror.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d of %d documents in %d categories", result.Saved, result.Discovered, result.Categories)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}

// truncateURL shortens a URL for display by showing only the path.
// This makes progress more useful when many URLs share the same host prefix.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		// Fallback to simple right-truncation
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	if len(path) <= maxLen {
		return path
	}

	// Truncate from the left to show the unique suffix
	return "..." + path[len(path)-maxLen+3:]
}

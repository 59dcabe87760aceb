// Package mirror orchestrates a single mirroring run: clean the output,
// discover document URLs from the sitemap, scrape the navigation structure,
// download every document into its category directory, and regenerate the
// index.
package mirror

import (
	"context"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency caps in-flight downloads when the config leaves the
// limit unset.
const DefaultConcurrency = 3

// ProgressType identifies the kind of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressCompleted ProgressType = iota
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports per-document progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called as documents are processed. It may be called from
// multiple goroutines.
type ProgressFunc func(ProgressEvent)

// Result summarizes a completed run.
type Result struct {
	Discovered int
	Categories int
	Saved      int
	Failed     int
	Others     int
	Bytes      int
}

// Mirror runs the download-and-categorize pipeline. All collaborators are
// injected; zero-value optional fields (Limiter, Logger, Now) get sensible
// defaults.
type Mirror struct {
	Config docmirror.Config

	Sitemaps  docmirror.SitemapService
	Nav       docmirror.NavExtractorRegistry
	Fetcher   docmirror.Fetcher
	Extractor docmirror.Extractor
	Converter docmirror.Converter
	Store     docmirror.Store

	// Limiter paces downloads per domain. Optional.
	Limiter docmirror.RateLimiter

	// Logger receives structured run logs. Defaults to slog.Default.
	Logger *slog.Logger

	// Now supplies the index timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Run executes one mirroring run. Setup failures (cleanup, sitemap,
// navigation page, index write) are fatal and returned; individual document
// failures are logged, counted in Result.Failed, and do not fail the run —
// a run with zero saved documents still succeeds.
func (m *Mirror) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	if err := m.Config.Validate(); err != nil {
		return nil, err
	}

	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", uuid.NewString())

	if err := m.Store.Clean(ctx); err != nil {
		return nil, err
	}

	urls, err := m.Sitemaps.DiscoverURLs(ctx, m.Config.SitemapURL, m.Config.PathPrefix)
	if err != nil {
		return nil, err
	}
	logger.Info("sitemap discovered", "url", m.Config.SitemapURL, "count", len(urls))

	navHTML, err := m.Fetcher.Fetch(ctx, m.Config.NavURL)
	if err != nil {
		return nil, err
	}
	categories, err := m.Nav.GetForHTML(navHTML).ExtractCategories(navHTML, m.Config.BaseURL)
	if err != nil {
		return nil, err
	}
	logger.Info("navigation extracted", "url", m.Config.NavURL, "categories", len(categories))

	targets, others := Categorize(urls, categories)

	// Directory setup is sequential and precedes all network I/O.
	for _, slug := range CategorySlugs(targets) {
		if err := m.Store.EnsureCategoryDir(slug); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Discovered: len(urls),
		Categories: len(categories),
		Others:     len(others),
	}

	var saved, failed, bytes, completed atomic.Int64

	concurrency := m.Config.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, target := range targets {
		g.Go(func() error {
			n, err := m.download(gctx, logger, target)
			done := int(completed.Add(1))

			if err != nil {
				failed.Add(1)
				logger.Error("download failed", "url", target.URL, "error", err)
				if progress != nil {
					progress(ProgressEvent{
						Type:      ProgressFailed,
						URL:       target.URL,
						Completed: done,
						Total:     len(targets),
						Error:     err,
					})
				}
				return nil
			}

			saved.Add(1)
			bytes.Add(int64(n))
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					URL:       target.URL,
					Completed: done,
					Total:     len(targets),
				})
			}
			return nil
		})
	}

	// Workers only return non-nil on context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := docmirror.FormatIndex(m.Config, categories, others, m.now())
	if err := m.Store.WriteIndex(ctx, index); err != nil {
		return nil, err
	}

	result.Saved = int(saved.Load())
	result.Failed = int(failed.Load())
	result.Bytes = int(bytes.Load())

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(targets), Total: len(targets)})
	}
	logger.Info("run finished",
		"discovered", result.Discovered,
		"saved", result.Saved,
		"failed", result.Failed,
		"others", result.Others,
	)

	return result, nil
}

// download fetches one document and writes it to the store. The markdown
// variant (<url>.md) is tried first; when it is unavailable the rendered
// HTML page is fetched instead and reduced to markdown through the
// extractor and converter.
func (m *Mirror) download(ctx context.Context, logger *slog.Logger, target Target) (int, error) {
	if m.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Config.Timeout)
		defer cancel()
	}

	if m.Limiter != nil {
		if err := m.Limiter.Wait(ctx, domainOf(target.URL)); err != nil {
			return 0, err
		}
	}

	content, err := m.Fetcher.Fetch(ctx, target.URL+".md")
	if err != nil {
		content, err = m.fetchViaHTML(ctx, target.URL)
		if err != nil {
			return 0, err
		}
	}

	hash := contentHash(content)
	err = m.Store.WriteDocument(ctx, &docmirror.Document{
		CategorySlug: target.CategorySlug,
		FileSlug:     target.FileSlug,
		Title:        target.Title,
		SourceURL:    target.URL,
		Content:      content,
		ContentHash:  hash,
	})
	if err != nil {
		return 0, err
	}

	logger.Info("document saved",
		"url", target.URL,
		"category", target.CategorySlug,
		"file", target.FileSlug,
		"content_hash", hash,
		"bytes", len(content),
	)

	return len(content), nil
}

// fetchViaHTML is the fallback path for pages without a markdown variant.
func (m *Mirror) fetchViaHTML(ctx context.Context, pageURL string) (string, error) {
	if m.Extractor == nil || m.Converter == nil {
		return "", docmirror.Errorf(docmirror.EUNAVAILABLE, "no markdown variant and no HTML fallback configured for %s", pageURL)
	}

	html, err := m.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	extracted, err := m.Extractor.Extract(html)
	if err != nil {
		return "", err
	}

	return m.Converter.Convert(extracted.ContentHTML)
}

func (m *Mirror) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// domainOf returns the host of a URL for rate-limiting purposes.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}

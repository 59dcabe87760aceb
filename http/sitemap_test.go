package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/docmirror"
	mirrorhttp "github.com/fwojciec/docmirror/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time verification that SitemapService implements docmirror.SitemapService.
var _ docmirror.SitemapService = (*mirrorhttp.SitemapService)(nil)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("returns loc entries in document order", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/docs/overview</loc></url>
  <url><loc>https://example.com/docs/quickstart</loc></url>
  <url><loc>https://example.com/blog/release-notes</loc></url>
</urlset>`))
		}))
		defer server.Close()

		svc := mirrorhttp.NewSitemapService(nil)

		urls, err := svc.DiscoverURLs(context.Background(), server.URL, "")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/overview",
			"https://example.com/docs/quickstart",
			"https://example.com/blog/release-notes",
		}, urls)
	})

	t.Run("filters by string prefix", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
  <url><loc>https://example.com/docs/overview</loc></url>
  <url><loc>https://example.com/blog/release-notes</loc></url>
  <url><loc>https://example.com/docs/quickstart</loc></url>
</urlset>`))
		}))
		defer server.Close()

		svc := mirrorhttp.NewSitemapService(nil)

		urls, err := svc.DiscoverURLs(context.Background(), server.URL, "https://example.com/docs")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/overview",
			"https://example.com/docs/quickstart",
		}, urls)
	})

	t.Run("keeps duplicate entries", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
  <url><loc>https://example.com/docs/overview</loc></url>
  <url><loc>https://example.com/docs/overview</loc></url>
</urlset>`))
		}))
		defer server.Close()

		svc := mirrorhttp.NewSitemapService(nil)

		urls, err := svc.DiscoverURLs(context.Background(), server.URL, "")
		require.NoError(t, err)
		assert.Len(t, urls, 2)
	})

	t.Run("resolves sitemap indexes recursively", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<sitemapindex>
  <sitemap><loc>` + server.URL + `/sitemap-docs.xml</loc></sitemap>
  <sitemap><loc>` + server.URL + `/sitemap-blog.xml</loc></sitemap>
</sitemapindex>`))
		})
		mux.HandleFunc("/sitemap-docs.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
  <url><loc>https://example.com/docs/overview</loc></url>
</urlset>`))
		})
		mux.HandleFunc("/sitemap-blog.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
  <url><loc>https://example.com/blog/post</loc></url>
</urlset>`))
		})

		svc := mirrorhttp.NewSitemapService(nil)

		urls, err := svc.DiscoverURLs(context.Background(), server.URL+"/sitemap.xml", "")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/overview",
			"https://example.com/blog/post",
		}, urls)
	})

	t.Run("returns error for malformed XML", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset><url><loc>not closed`))
		}))
		defer server.Close()

		svc := mirrorhttp.NewSitemapService(nil)

		_, err := svc.DiscoverURLs(context.Background(), server.URL, "")
		require.Error(t, err)
	})

	t.Run("returns error for non-200 response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := mirrorhttp.NewSitemapService(nil)

		_, err := svc.DiscoverURLs(context.Background(), server.URL, "")
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		svc := mirrorhttp.NewSitemapService(nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.DiscoverURLs(ctx, "https://example.com/sitemap.xml", "")
		require.Error(t, err)
	})
}

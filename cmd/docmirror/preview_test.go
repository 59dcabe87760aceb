package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docmirror"
	main "github.com/fwojciec/docmirror/cmd/docmirror"
	"github.com/fwojciec/docmirror/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previewDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	categories := []docmirror.Category{
		{
			Title: "Guides",
			Slug:  "guides",
			Files: []docmirror.FileRef{
				{Slug: "install", Title: "Install", Href: "https://example.com/docs/install"},
			},
		},
	}

	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Config: docmirror.Config{
			SitemapURL: "https://example.com/sitemap.xml",
			NavURL:     "https://example.com/docs",
			BaseURL:    "https://example.com",
			PathPrefix: "https://example.com/docs",
			OutputDir:  "docs",
			IndexFile:  "index.md",
		},
		Sitemaps: &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, sitemapURL string, pathPrefix string) ([]string, error) {
				return []string{
					"https://example.com/docs/install",
					"https://example.com/docs/changelog",
				}, nil
			},
		},
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><nav></nav></html>", nil
			},
		},
		Nav: &mock.NavExtractorRegistry{
			GetForHTMLFn: func(html string) docmirror.NavExtractor {
				return &mock.NavExtractor{
					ExtractCategoriesFn: func(html string, baseURL string) ([]docmirror.Category, error) {
						return categories, nil
					},
				}
			},
		},
	}
}

func TestMirrorCmd_Preview(t *testing.T) {
	t.Parallel()

	t.Run("prints each URL with its resolved category", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := previewDeps(&stdout, &stderr)

		cmd := &main.MirrorCmd{Preview: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "guides/install\thttps://example.com/docs/install")
		assert.Contains(t, stdout.String(), "others/changelog\thttps://example.com/docs/changelog")
	})

	t.Run("sitemap failure is reported on stderr", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := previewDeps(&stdout, &stderr)
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, sitemapURL string, pathPrefix string) ([]string, error) {
				return nil, errors.New("connection refused")
			},
		}

		cmd := &main.MirrorCmd{Preview: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "error:")
	})
}

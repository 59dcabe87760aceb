package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/docmirror"
	main "github.com/fwojciec/docmirror/cmd/docmirror"
	"github.com/fwojciec/docmirror/mirror"
	"github.com/fwojciec/docmirror/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirrorCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports the run summary", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := previewDeps(&stdout, &stderr)
		deps.Mirror = &mirror.Mirror{
			Config:   deps.Config,
			Sitemaps: deps.Sitemaps,
			Nav:      deps.Nav,
			Fetcher:  deps.Fetcher,
			Store: &mock.Store{
				CleanFn:             func(ctx context.Context) error { return nil },
				EnsureCategoryDirFn: func(slug string) error { return nil },
				WriteDocumentFn:     func(ctx context.Context, doc *docmirror.Document) error { return nil },
				WriteIndexFn:        func(ctx context.Context, content string) error { return nil },
			},
			Logger: slog.New(slog.DiscardHandler),
			Now:    func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) },
		}

		cmd := &main.MirrorCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 2 of 2 documents in 1 categories")
	})

	t.Run("failed downloads appear in the summary", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := previewDeps(&stdout, &stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://example.com/docs/changelog.md" {
					return "", docmirror.Errorf(docmirror.EUNAVAILABLE, "fetch failed")
				}
				return "content", nil
			},
		}
		deps.Mirror = &mirror.Mirror{
			Config:   deps.Config,
			Sitemaps: deps.Sitemaps,
			Nav:      deps.Nav,
			Fetcher:  deps.Fetcher,
			Store: &mock.Store{
				CleanFn:             func(ctx context.Context) error { return nil },
				EnsureCategoryDirFn: func(slug string) error { return nil },
				WriteDocumentFn:     func(ctx context.Context, doc *docmirror.Document) error { return nil },
				WriteIndexFn:        func(ctx context.Context, content string) error { return nil },
			},
			Logger: slog.New(slog.DiscardHandler),
		}

		cmd := &main.MirrorCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "(1 failed)")
		assert.Contains(t, stderr.String(), "skip https://example.com/docs/changelog")
	})
}

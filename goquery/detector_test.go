package goquery_test

import (
	"testing"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure Detector implements docmirror.FrameworkDetector at compile time.
var _ docmirror.FrameworkDetector = (*goquery.Detector)(nil)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("detects Docusaurus from skip-to-content element", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head><title>Docs</title></head>
<body>
<a id="__docusaurus_skipToContent_fallback" href="#__docusaurus_skipToContent_fallback">Skip to main content</a>
</body>
</html>`

		d := goquery.NewDetector()
		assert.Equal(t, docmirror.FrameworkDocusaurus, d.Detect(html))
	})

	t.Run("detects Docusaurus from sidebar container class", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="theme-doc-sidebar-container"></div></body></html>`

		d := goquery.NewDetector()
		assert.Equal(t, docmirror.FrameworkDocusaurus, d.Detect(html))
	})

	t.Run("detects MkDocs from data-md-color-scheme attribute", func(t *testing.T) {
		t.Parallel()

		html := `<html><body data-md-color-scheme="default"><nav class="md-nav"></nav></body></html>`

		d := goquery.NewDetector()
		assert.Equal(t, docmirror.FrameworkMkDocs, d.Detect(html))
	})

	t.Run("detects MkDocs from meta generator tag", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="generator" content="mkdocs-1.6.0, mkdocs-material-9.5.0"></head><body></body></html>`

		d := goquery.NewDetector()
		assert.Equal(t, docmirror.FrameworkMkDocs, d.Detect(html))
	})

	t.Run("meta generator wins over structural markers", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="generator" content="Docusaurus v3.1.0"></head>
<body data-md-color-scheme="default"></body></html>`

		d := goquery.NewDetector()
		assert.Equal(t, docmirror.FrameworkDocusaurus, d.Detect(html))
	})

	t.Run("returns unknown for unrecognized markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav><ul><li><a href="/docs">Docs</a></li></ul></nav></body></html>`

		d := goquery.NewDetector()
		assert.Equal(t, docmirror.FrameworkUnknown, d.Detect(html))
	})
}

package main

import (
	"context"
	"io"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/mirror"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config docmirror.Config

	// Sitemaps, Fetcher, and Nav serve preview mode, which plans a run
	// without writing anything.
	Sitemaps docmirror.SitemapService
	Fetcher  docmirror.Fetcher
	Nav      docmirror.NavExtractorRegistry

	// Mirror executes a full run. Unset in preview mode.
	Mirror *mirror.Mirror
}

// MirrorCmd handles the main mirror operation.
type MirrorCmd struct {
	Preview bool
}

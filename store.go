package docmirror

import "context"

// Store persists a run's output: the categorized document tree plus the
// generated index.
type Store interface {
	// Clean removes the output directory tree and the index file, tolerating
	// their absence, then recreates the empty output directory. Destructive:
	// previous output is gone before any new content is fetched.
	Clean(ctx context.Context) error

	// EnsureCategoryDir creates the directory for a category slug.
	// Idempotent; called sequentially before downloads begin.
	EnsureCategoryDir(slug string) error

	// WriteDocument writes the document body verbatim, overwriting any
	// existing file at the derived path.
	WriteDocument(ctx context.Context, doc *Document) error

	// WriteIndex overwrites the index file with the rendered table of
	// contents.
	WriteIndex(ctx context.Context, content string) error
}

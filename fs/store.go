// Package fs provides file-based storage for the mirrored documentation
// tree and its generated index.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docmirror"
)

// Ensure Store implements docmirror.Store at compile time.
var _ docmirror.Store = (*Store)(nil)

// Store writes mirrored documents under baseDir/outputDir and the index at
// baseDir/indexFile. Clean is destructive: previous output is removed
// before any new content has been fetched, so an aborted run leaves a
// partial tree.
type Store struct {
	baseDir   string
	outputDir string
	indexFile string
}

// NewStore creates a new Store. baseDir is the mirror root; outputDir and
// indexFile are relative to it.
func NewStore(baseDir, outputDir, indexFile string) *Store {
	return &Store{
		baseDir:   baseDir,
		outputDir: outputDir,
		indexFile: indexFile,
	}
}

func (s *Store) outputPath() string {
	return filepath.Join(s.baseDir, s.outputDir)
}

func (s *Store) indexPath() string {
	return filepath.Join(s.baseDir, s.indexFile)
}

// DocumentPath returns the path a document is written to, relative to
// baseDir: <output-dir>/<category-slug>/<file-slug>.md.
func (s *Store) DocumentPath(doc *docmirror.Document) string {
	return filepath.Join(s.outputDir, doc.CategorySlug, doc.FileSlug+".md")
}

// Clean removes the output tree and the index file, tolerating their
// absence, then recreates the empty output directory.
func (s *Store) Clean(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.RemoveAll(s.outputPath()); err != nil {
		return err
	}
	if err := os.Remove(s.indexPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return os.MkdirAll(s.outputPath(), 0755)
}

// EnsureCategoryDir creates the directory for a category slug. Idempotent.
func (s *Store) EnsureCategoryDir(slug string) error {
	return os.MkdirAll(filepath.Join(s.outputPath(), slug), 0755)
}

// WriteDocument writes the document body verbatim, overwriting any existing
// file at the derived path.
func (s *Store) WriteDocument(ctx context.Context, doc *docmirror.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.baseDir, s.DocumentPath(doc))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(doc.Content), 0644)
}

// WriteIndex overwrites the index file with the rendered table of contents.
func (s *Store) WriteIndex(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(s.indexPath(), []byte(content), 0644)
}

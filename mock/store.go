package mock

import (
	"context"

	"github.com/fwojciec/docmirror"
)

var _ docmirror.Store = (*Store)(nil)

// Store is a mock implementation of docmirror.Store.
type Store struct {
	CleanFn             func(ctx context.Context) error
	EnsureCategoryDirFn func(slug string) error
	WriteDocumentFn     func(ctx context.Context, doc *docmirror.Document) error
	WriteIndexFn        func(ctx context.Context, content string) error
}

func (s *Store) Clean(ctx context.Context) error {
	return s.CleanFn(ctx)
}

func (s *Store) EnsureCategoryDir(slug string) error {
	return s.EnsureCategoryDirFn(slug)
}

func (s *Store) WriteDocument(ctx context.Context, doc *docmirror.Document) error {
	return s.WriteDocumentFn(ctx, doc)
}

func (s *Store) WriteIndex(ctx context.Context, content string) error {
	return s.WriteIndexFn(ctx, content)
}

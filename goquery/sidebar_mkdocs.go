package goquery

import "github.com/fwojciec/docmirror"

var _ docmirror.NavExtractor = (*MkDocsExtractor)(nil)

// MkDocsExtractor extracts sidebar categories from MkDocs Material sites.
//
// It targets MkDocs Material navigation elements:
// - .md-nav--primary > .md-nav__list > .md-nav__item--nested for groups
// - label.md-nav__link for the category heading
// - a.md-nav__link entries for the document links
type MkDocsExtractor struct{}

// NewMkDocsExtractor creates a new MkDocsExtractor.
func NewMkDocsExtractor() *MkDocsExtractor {
	return &MkDocsExtractor{}
}

// ExtractCategories parses HTML and returns sidebar categories in DOM order.
func (e *MkDocsExtractor) ExtractCategories(html string, baseURL string) ([]docmirror.Category, error) {
	return ExtractCategoriesWithConfig(html, baseURL, SidebarConfig{
		Group:   ".md-nav--primary > .md-nav__list > .md-nav__item--nested",
		Heading: "label.md-nav__link",
		Link:    "a.md-nav__link[href]",
	})
}

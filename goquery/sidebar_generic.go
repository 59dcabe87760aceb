package goquery

import "github.com/fwojciec/docmirror"

var _ docmirror.NavExtractor = (*GenericExtractor)(nil)

// GenericExtractor extracts sidebar categories from conventional
// documentation layouts: list items inside a nav or aside element that carry
// their own heading and a nested link list. It is the registry fallback when
// no framework is detected.
type GenericExtractor struct{}

// NewGenericExtractor creates a new GenericExtractor.
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{}
}

// ExtractCategories parses HTML and returns sidebar categories in DOM order.
func (e *GenericExtractor) ExtractCategories(html string, baseURL string) ([]docmirror.Category, error) {
	return ExtractCategoriesWithConfig(html, baseURL, SidebarConfig{
		Group:   "aside li, aside section, nav.sidebar li, nav.sidebar section",
		Heading: "h2, h3, h4, .sidebar-heading",
		Link:    "ul a[href]",
	})
}

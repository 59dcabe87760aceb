package goquery

import "github.com/fwojciec/docmirror"

var _ docmirror.NavExtractor = (*DocusaurusExtractor)(nil)

// DocusaurusExtractor extracts sidebar categories from Docusaurus sites.
// Validated against Docusaurus v2.x and v3.x.
//
// It targets Docusaurus-specific navigation elements:
// - .theme-doc-sidebar-menu for the docs sidebar
// - .menu__list-item-collapsible for the category heading
// - nested .menu__list entries for the document links
type DocusaurusExtractor struct{}

// NewDocusaurusExtractor creates a new DocusaurusExtractor.
func NewDocusaurusExtractor() *DocusaurusExtractor {
	return &DocusaurusExtractor{}
}

// ExtractCategories parses HTML and returns sidebar categories in DOM order.
func (e *DocusaurusExtractor) ExtractCategories(html string, baseURL string) ([]docmirror.Category, error) {
	return ExtractCategoriesWithConfig(html, baseURL, SidebarConfig{
		Group:   ".theme-doc-sidebar-menu > li.theme-doc-sidebar-item-category",
		Heading: ".menu__list-item-collapsible .menu__link",
		Link:    "ul.menu__list a.menu__link[href]",
	})
}

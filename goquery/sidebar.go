// Package goquery provides DOM-based navigation extraction for docmirror.
// It scrapes a documentation site's sidebar into an ordered category
// structure using CSS selectors. The selectors are site-convention specific
// and therefore fragile: an upstream layout change yields zero or partial
// categories without error.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmirror"
)

// SidebarConfig describes where a framework keeps its sidebar structure.
type SidebarConfig struct {
	// Group selects the top-level sidebar groups, in DOM order.
	Group string

	// Heading selects the category title element within a group.
	Heading string

	// Link selects the document links within a group.
	Link string
}

// ExtractCategoriesWithConfig parses html and returns the sidebar groups
// matched by cfg, in DOM order. Groups whose heading is empty or missing are
// skipped entirely, their links included. Hrefs are resolved to absolute
// URLs against baseURL; links without an href are skipped.
func ExtractCategoriesWithConfig(html string, baseURL string, cfg SidebarConfig) ([]docmirror.Category, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "failed to parse HTML: %v", err)
	}

	var categories []docmirror.Category

	doc.Find(cfg.Group).Each(func(_ int, group *goquery.Selection) {
		title := strings.TrimSpace(group.Find(cfg.Heading).First().Text())
		if title == "" {
			return
		}

		cat := docmirror.Category{
			Title: title,
			Slug:  docmirror.Slugify(title),
		}

		group.Find(cfg.Link).Each(func(_ int, link *goquery.Selection) {
			href, exists := link.Attr("href")
			if !exists || href == "" {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}

			cat.Files = append(cat.Files, docmirror.FileRef{
				Slug:  docmirror.FileSlug(resolved),
				Title: strings.TrimSpace(link.Text()),
				Href:  resolved,
			})
		})

		categories = append(categories, cat)
	})

	return categories, nil
}

// resolveURL resolves a possibly relative href against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

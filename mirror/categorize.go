package mirror

import "github.com/fwojciec/docmirror"

// Target is one planned download: a sitemap URL resolved to its output
// location.
type Target struct {
	URL          string
	CategorySlug string
	FileSlug     string
	Title        string
}

// Categorize assigns every sitemap URL to a category by exact string match
// against the navigation hrefs, falling back to the "others" bucket.
// Matching is deliberately literal: a trailing-slash or encoding mismatch
// routes a page into "others" rather than its sidebar category.
//
// The returned targets preserve sitemap order, one per input URL including
// duplicates. The others list records one entry per distinct filename slug,
// in first-seen order, with the slug doubling as the title.
func Categorize(urls []string, categories []docmirror.Category) ([]Target, []docmirror.OtherFile) {
	targets := make([]Target, 0, len(urls))
	var others []docmirror.OtherFile
	otherSeen := make(map[string]bool)

	for _, u := range urls {
		if ref, cat, ok := lookup(u, categories); ok {
			targets = append(targets, Target{
				URL:          u,
				CategorySlug: cat.Slug,
				FileSlug:     ref.Slug,
				Title:        ref.Title,
			})
			continue
		}

		slug := docmirror.FileSlug(u)
		if !otherSeen[slug] {
			otherSeen[slug] = true
			others = append(others, docmirror.OtherFile{Slug: slug, Title: slug})
		}
		targets = append(targets, Target{
			URL:          u,
			CategorySlug: docmirror.OthersSlug,
			FileSlug:     slug,
			Title:        slug,
		})
	}

	return targets, others
}

// lookup scans all categories' file lists for an exact href match.
func lookup(url string, categories []docmirror.Category) (docmirror.FileRef, *docmirror.Category, bool) {
	for i := range categories {
		for _, ref := range categories[i].Files {
			if ref.Href == url {
				return ref, &categories[i], true
			}
		}
	}
	return docmirror.FileRef{}, nil, false
}

// CategorySlugs returns the distinct category slugs of the targets in first-
// seen order, for sequential directory setup before downloads begin.
func CategorySlugs(targets []Target) []string {
	var slugs []string
	seen := make(map[string]bool)
	for _, t := range targets {
		if !seen[t.CategorySlug] {
			seen[t.CategorySlug] = true
			slugs = append(slugs, t.CategorySlug)
		}
	}
	return slugs
}

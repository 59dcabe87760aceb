package docmirror

import (
	"net/url"
	"path"
	"strings"
	"unicode"
)

// Category is one sidebar group from the navigation page. Categories are
// built once per run and read-only afterward; their order and the order of
// their files mirror the DOM order of the navigation sidebar.
type Category struct {
	Title string
	Slug  string
	Files []FileRef
}

// FileRef is one document referenced by a navigation category.
type FileRef struct {
	// Slug is the filename-safe identifier, the last path segment of Href.
	Slug string

	// Title is the sidebar link text.
	Title string

	// Href is the absolute document URL. Category membership is decided by
	// exact string match of sitemap URLs against Href.
	Href string
}

// OtherFile is a FileRef-like record for sitemap URLs absent from every
// category. The filename slug doubles as the title since no human title is
// available without fetching the page.
type OtherFile struct {
	Slug  string
	Title string
}

// Slugify normalizes a display title into a URL- and filename-safe
// identifier: lowercased, runs of whitespace collapsed to a single hyphen,
// anything outside [a-z0-9-] removed.
//
// Slugify("Getting Started!") == "getting-started".
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsSpace(r) {
			pendingHyphen = b.Len() > 0
			continue
		}
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// FileSlug derives a filename slug from a document URL: the last segment of
// its path, ignoring query and fragment. Root or trailing-slash URLs yield
// "index".
func FileSlug(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Slugify(rawURL)
	}

	p := strings.TrimSuffix(u.Path, "/")
	if p == "" {
		return "index"
	}

	return path.Base(p)
}

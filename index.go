package docmirror

import (
	"strings"
	"time"
)

// OthersSlug is the fallback bucket for sitemap URLs absent from the
// navigation structure.
const OthersSlug = "others"

// indexTimeFormat is the "Last updated" stamp format (RFC 1123, UTC).
const indexTimeFormat = "Mon, 02 Jan 2006 15:04:05 MST"

// FormatIndex renders the table-of-contents document: a title and
// description header, a "Last updated" line, one level-2 section per
// category in navigation order, and a trailing "Others" section when the
// fallback bucket is non-empty. Link targets are relative paths under
// outputDir. Titles and slugs are written verbatim, no markdown escaping.
func FormatIndex(cfg Config, categories []Category, others []OtherFile, now time.Time) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(cfg.Title)
	b.WriteString("\n\n")
	if cfg.Description != "" {
		b.WriteString(cfg.Description)
		b.WriteString("\n\n")
	}
	b.WriteString("Last updated: ")
	b.WriteString(now.UTC().Format(indexTimeFormat))
	b.WriteString("\n")

	for _, cat := range categories {
		b.WriteString("\n## ")
		b.WriteString(cat.Title)
		b.WriteString("\n\n")
		for _, f := range cat.Files {
			writeIndexLink(&b, cfg.OutputDir, cat.Slug, f.Slug, f.Title)
		}
	}

	if len(others) > 0 {
		b.WriteString("\n## Others\n\n")
		for _, f := range others {
			writeIndexLink(&b, cfg.OutputDir, OthersSlug, f.Slug, f.Title)
		}
	}

	return b.String()
}

func writeIndexLink(b *strings.Builder, outputDir, categorySlug, fileSlug, title string) {
	b.WriteString("- [")
	b.WriteString(title)
	b.WriteString("](./")
	b.WriteString(outputDir)
	b.WriteString("/")
	b.WriteString(categorySlug)
	b.WriteString("/")
	b.WriteString(fileSlug)
	b.WriteString(".md)\n")
}

// Package docmirror mirrors a documentation site into a local directory of
// markdown files plus a generated table-of-contents index. It discovers pages
// from the site's sitemap, scrapes the navigation sidebar for category and
// ordering metadata, downloads each page's markdown representation, and
// regenerates the index on every run.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, fs/).
package docmirror

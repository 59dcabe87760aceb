package docmirror

// Document is a downloaded documentation page destined for disk. Its final
// location is <output-dir>/<CategorySlug>/<FileSlug>.md.
type Document struct {
	CategorySlug string
	FileSlug     string
	Title        string
	SourceURL    string
	Content      string

	// ContentHash is the xxhash64 of Content, logged when the document
	// is saved.
	ContentHash string
}

// Validate returns an error if the document cannot be written.
func (d *Document) Validate() error {
	if d.CategorySlug == "" {
		return Errorf(EINVALID, "document category slug required")
	}
	if d.FileSlug == "" {
		return Errorf(EINVALID, "document file slug required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

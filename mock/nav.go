package mock

import "github.com/fwojciec/docmirror"

var _ docmirror.NavExtractor = (*NavExtractor)(nil)

// NavExtractor is a mock implementation of docmirror.NavExtractor.
type NavExtractor struct {
	ExtractCategoriesFn func(html string, baseURL string) ([]docmirror.Category, error)
}

func (e *NavExtractor) ExtractCategories(html string, baseURL string) ([]docmirror.Category, error) {
	return e.ExtractCategoriesFn(html, baseURL)
}

var _ docmirror.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of docmirror.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) docmirror.Framework
}

func (d *FrameworkDetector) Detect(html string) docmirror.Framework {
	return d.DetectFn(html)
}

var _ docmirror.NavExtractorRegistry = (*NavExtractorRegistry)(nil)

// NavExtractorRegistry is a mock implementation of docmirror.NavExtractorRegistry.
type NavExtractorRegistry struct {
	GetForHTMLFn func(html string) docmirror.NavExtractor
	RegisterFn   func(framework docmirror.Framework, extractor docmirror.NavExtractor)
}

func (r *NavExtractorRegistry) GetForHTML(html string) docmirror.NavExtractor {
	return r.GetForHTMLFn(html)
}

func (r *NavExtractorRegistry) Register(framework docmirror.Framework, extractor docmirror.NavExtractor) {
	if r.RegisterFn != nil {
		r.RegisterFn(framework, extractor)
	}
}

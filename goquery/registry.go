package goquery

import "github.com/fwojciec/docmirror"

var _ docmirror.NavExtractorRegistry = (*Registry)(nil)

// Registry manages framework-specific navigation extractors and auto-detects
// frameworks from HTML content. It uses a FrameworkDetector to identify the
// documentation framework and returns the matching extractor, falling back
// to a generic extractor when the framework is unknown or no specific
// extractor is registered.
type Registry struct {
	detector   docmirror.FrameworkDetector
	fallback   docmirror.NavExtractor
	extractors map[docmirror.Framework]docmirror.NavExtractor
}

// NewRegistry creates a new Registry with the given detector and fallback
// extractor.
func NewRegistry(detector docmirror.FrameworkDetector, fallback docmirror.NavExtractor) *Registry {
	return &Registry{
		detector:   detector,
		fallback:   fallback,
		extractors: make(map[docmirror.Framework]docmirror.NavExtractor),
	}
}

// GetForHTML detects the framework from HTML and returns the appropriate
// extractor. Falls back to the fallback extractor if the framework is
// unknown or no extractor is registered for the detected framework.
func (r *Registry) GetForHTML(html string) docmirror.NavExtractor {
	framework := r.detector.Detect(html)
	if extractor, ok := r.extractors[framework]; ok {
		return extractor
	}
	return r.fallback
}

// Register adds an extractor for a framework.
// If an extractor is already registered for the framework, it is replaced.
func (r *Registry) Register(framework docmirror.Framework, extractor docmirror.NavExtractor) {
	r.extractors[framework] = extractor
}

// NewDefaultRegistry wires the detector, the generic fallback, and every
// framework-specific extractor this package ships.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), NewGenericExtractor())
	r.Register(docmirror.FrameworkDocusaurus, NewDocusaurusExtractor())
	r.Register(docmirror.FrameworkMkDocs, NewMkDocsExtractor())
	return r
}

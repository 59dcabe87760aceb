package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docmirror"
)

// Ensure LoggingRegistry implements docmirror.NavExtractorRegistry.
var _ docmirror.NavExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a NavExtractorRegistry with logging for framework
// detection.
type LoggingRegistry struct {
	next     docmirror.NavExtractorRegistry
	detector docmirror.FrameworkDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next docmirror.NavExtractorRegistry, detector docmirror.FrameworkDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// GetForHTML detects the framework, logs it, and returns the extractor from
// the wrapped registry.
func (r *LoggingRegistry) GetForHTML(html string) docmirror.NavExtractor {
	begin := time.Now()
	framework := r.detector.Detect(html)
	frameworkName := string(framework)
	if framework == docmirror.FrameworkUnknown {
		frameworkName = "(unknown)"
	}
	r.logger.Info("framework detection",
		"framework", frameworkName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(framework docmirror.Framework, extractor docmirror.NavExtractor) {
	r.next.Register(framework, extractor)
}

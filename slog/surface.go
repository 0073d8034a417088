package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/apicheck"
)

// Ensure LoggingParser implements apicheck.Parser.
var _ apicheck.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   apicheck.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next apicheck.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(markup string) (doc *apicheck.Node, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", len(markup),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(markup)
}

// Ensure LoggingExtractor implements apicheck.Extractor.
var _ apicheck.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   apicheck.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next apicheck.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the size of the
// extracted surface.
func (e *LoggingExtractor) Extract(doc *apicheck.Node) (surface *apicheck.Surface, err error) {
	defer func(begin time.Time) {
		var name string
		var impls, traits int
		if surface != nil {
			name = surface.Name
			impls = len(surface.Implementations)
			traits = len(surface.TraitImplementations)
		}
		e.logger.Info("extract",
			"name", name,
			"impls", impls,
			"traits", traits,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(doc)
}

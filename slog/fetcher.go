// Package slog provides log/slog decorators for apicheck services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/apicheck"
)

// Ensure LoggingFetcher implements apicheck.Fetcher.
var _ apicheck.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   apicheck.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next apicheck.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, location string) (markup string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"location", location,
			"bytes", len(markup),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, location)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

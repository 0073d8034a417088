package apicheck

import "context"

// Fetcher retrieves raw documentation markup from a location.
// The reference fetcher treats locations as URLs; the local fetcher treats
// them as paths below the crate's documentation directory.
type Fetcher interface {
	// Fetch returns the markup stored at location.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, location string) (markup string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// RateLimiter paces reference fetches.
type RateLimiter interface {
	// Wait blocks until a request to location is allowed.
	Wait(ctx context.Context, location string) error
}

package mock

import (
	"context"

	"github.com/fwojciec/apicheck"
)

var _ apicheck.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of apicheck.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, location string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	return f.FetchFn(ctx, location)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ apicheck.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of apicheck.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, location string) error
}

func (l *RateLimiter) Wait(ctx context.Context, location string) error {
	return l.WaitFn(ctx, location)
}

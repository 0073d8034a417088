package check

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/apicheck"
)

// DefaultRetryDelays returns the backoff delays for reference fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry fetches location, retrying transient failures after each of
// the given delays. Missing pages and invalid locations are not retried.
func fetchWithRetry(ctx context.Context, fetcher apicheck.Fetcher, location string, delays []time.Duration, logger *slog.Logger) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		markup, err := fetcher.Fetch(ctx, location)
		if err == nil {
			return markup, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger.Debug("retrying fetch", "location", location, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	switch apicheck.ErrorCode(err) {
	case apicheck.ENOTFOUND, apicheck.EINVALID:
		return false
	}
	return true
}

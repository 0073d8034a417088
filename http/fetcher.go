// Package http provides an HTTP-based implementation of apicheck.Fetcher
// for fetching reference documentation pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/apicheck"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies apicheck to documentation hosts.
const DefaultUserAgent = "apicheck/1.0 (+https://github.com/fwojciec/apicheck)"

// Ensure Fetcher implements apicheck.Fetcher at compile time.
var _ apicheck.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves reference documentation pages using HTTP GET requests.
// Locations are absolute URLs.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at the given URL.
// A 404 response is reported as ENOTFOUND; any other non-2xx status as
// EINTERNAL with the status code in the message.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", apicheck.Errorf(apicheck.EINVALID, "invalid reference URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", apicheck.Errorf(apicheck.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode/100 != 2:
		return "", apicheck.Errorf(apicheck.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

package check

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/apicheck"
	"golang.org/x/time/rate"
)

var _ apicheck.RateLimiter = (*HostLimiter)(nil)

// DefaultRequestsPerSecond is the reference fetch rate allowed per host.
const DefaultRequestsPerSecond = 2

// HostLimiter paces reference page requests with one token bucket per
// documentation host. Pages on doc.rust-lang.org share a bucket while a crate
// checked against docs.rs pages is paced independently.
type HostLimiter struct {
	mu    sync.Mutex
	hosts map[string]*rate.Limiter
	limit rate.Limit
}

// NewHostLimiter returns a limiter allowing rps requests per second to each
// host, with a burst of one. A non-positive rps disables limiting.
func NewHostLimiter(rps float64) *HostLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &HostLimiter{
		hosts: make(map[string]*rate.Limiter),
		limit: limit,
	}
}

// Wait blocks until a request to the host of location is allowed.
// Locations without a host, such as relative paths, are never delayed.
// Returns EINVALID if location is not a valid URL.
func (l *HostLimiter) Wait(ctx context.Context, location string) error {
	u, err := url.Parse(location)
	if err != nil {
		return apicheck.Errorf(apicheck.EINVALID, "invalid reference URL %q: %v", location, err)
	}
	if u.Host == "" {
		return nil
	}
	return l.bucket(strings.ToLower(u.Host)).Wait(ctx)
}

// Hosts returns the number of hosts requested so far.
func (l *HostLimiter) Hosts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hosts)
}

func (l *HostLimiter) bucket(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.hosts[host]
	if !ok {
		b = rate.NewLimiter(l.limit, 1)
		l.hosts[host] = b
	}
	return b
}

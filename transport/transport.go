// Package transport builds the HTTP client used to reach the Play Movies
// Partner API. It only decorates a RoundTripper; TLS and connection handling
// stay with net/http.
package transport

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds a single HTTP attempt when Options.Timeout is unset.
	DefaultTimeout = 30 * time.Second
	// DefaultBurst is the limiter bucket size used for a burst below one.
	DefaultBurst = 1
)

// RateLimited is a RoundTripper that waits for its limiter before each
// request. The wait honours the request context.
type RateLimited struct {
	Base    http.RoundTripper
	Limiter *rate.Limiter
}

// NewRateLimited limits base to rps requests per second with the given burst.
// A nil base uses http.DefaultTransport.
func NewRateLimited(base http.RoundTripper, rps float64, burst int) *RateLimited {
	if burst < 1 {
		burst = DefaultBurst
	}
	return &RateLimited{
		Base:    base,
		Limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// RoundTrip waits for a limiter token, then forwards req to the base transport.
func (t *RateLimited) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// Options configures NewClient.
type Options struct {
	// Timeout bounds a single HTTP attempt. Zero uses DefaultTimeout.
	Timeout time.Duration
	// RequestsPerSecond enables client-side rate limiting when positive.
	RequestsPerSecond float64
	// Burst is the limiter bucket size.
	Burst int
	// Base is the underlying transport. Nil uses http.DefaultTransport.
	Base http.RoundTripper
}

// NewClient returns an *http.Client suitable for playmovies.New.
func NewClient(opts Options) *http.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var rt http.RoundTripper = opts.Base
	if opts.RequestsPerSecond > 0 {
		rt = NewRateLimited(opts.Base, opts.RequestsPerSecond, opts.Burst)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: rt,
	}
}

package playmovies

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// DefaultMaxRetries is the retry budget of NewBackoffDelegate when given a
// negative value.
const DefaultMaxRetries = 3

// BackoffDelegate retries transport errors and transient status codes
// (408, 429, 500, 502, 503, 504) with exponential back-off, up to MaxRetries
// times per call. A Retry-After header longer than the computed wait wins.
//
// It keeps per-call state, so create one per call, typically through
// WithDefaultDelegate:
//
//	playmovies.WithDefaultDelegate(func() playmovies.Delegate {
//		return playmovies.NewBackoffDelegate(3)
//	})
type BackoffDelegate struct {
	DefaultDelegate

	// MaxRetries is the number of retries allowed after the first attempt.
	MaxRetries int
	// BackOff computes the wait between attempts.
	BackOff backoff.BackOff

	retries int
}

// NewBackoffDelegate returns a BackoffDelegate using exponential back-off
// with jitter.
func NewBackoffDelegate(maxRetries int) *BackoffDelegate {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second

	return &BackoffDelegate{
		MaxRetries: maxRetries,
		BackOff:    b,
	}
}

// Retries returns how many retries the delegate granted.
func (d *BackoffDelegate) Retries() int {
	return d.retries
}

func (d *BackoffDelegate) Begin(MethodInfo) {
	d.retries = 0
	if d.BackOff != nil {
		d.BackOff.Reset()
	}
}

func (d *BackoffDelegate) HTTPError(err error) Retry {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NoRetry
	}
	return d.next(0)
}

func (d *BackoffDelegate) HTTPFailure(res *http.Response, _ *APIError) Retry {
	if !retryableStatus(res.StatusCode) {
		return NoRetry
	}
	return d.next(retryAfter(res.Header.Get("Retry-After"), time.Now()))
}

func (d *BackoffDelegate) next(atLeast time.Duration) Retry {
	if d.retries >= d.MaxRetries {
		return NoRetry
	}

	var wait time.Duration
	if d.BackOff != nil {
		wait = d.BackOff.NextBackOff()
		if wait == backoff.Stop {
			return NoRetry
		}
	}
	if atLeast > wait {
		wait = atLeast
	}

	d.retries++
	return RetryAfter(wait)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryAfter parses a Retry-After value given in seconds or as an HTTP date.
func retryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := t.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

var _ Delegate = (*BackoffDelegate)(nil)

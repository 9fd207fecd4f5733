package playmovies

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffDelegate_HTTPFailure(t *testing.T) {
	tests := []struct {
		status int
		retry  bool
	}{
		{status: http.StatusRequestTimeout, retry: true},
		{status: http.StatusTooManyRequests, retry: true},
		{status: http.StatusInternalServerError, retry: true},
		{status: http.StatusBadGateway, retry: true},
		{status: http.StatusServiceUnavailable, retry: true},
		{status: http.StatusGatewayTimeout, retry: true},
		{status: http.StatusBadRequest, retry: false},
		{status: http.StatusUnauthorized, retry: false},
		{status: http.StatusNotFound, retry: false},
		{status: http.StatusNotImplemented, retry: false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			d := NewBackoffDelegate(1)
			d.Begin(MethodInfo{})

			r := d.HTTPFailure(&http.Response{StatusCode: tt.status, Header: http.Header{}}, nil)
			assert.Equal(t, tt.retry, r.Retry)
		})
	}
}

func TestBackoffDelegate_Budget(t *testing.T) {
	d := &BackoffDelegate{MaxRetries: 2, BackOff: &backoff.ConstantBackOff{Interval: 10 * time.Millisecond}}
	d.Begin(MethodInfo{})

	errReset := errors.New("connection reset")
	assert.Equal(t, RetryAfter(10*time.Millisecond), d.HTTPError(errReset))
	assert.Equal(t, RetryAfter(10*time.Millisecond), d.HTTPError(errReset))
	assert.Equal(t, NoRetry, d.HTTPError(errReset))
	assert.Equal(t, 2, d.Retries())

	d.Begin(MethodInfo{})
	assert.Zero(t, d.Retries())
	assert.True(t, d.HTTPError(errReset).Retry)
}

func TestBackoffDelegate_ContextErrors(t *testing.T) {
	d := NewBackoffDelegate(3)
	d.Begin(MethodInfo{})

	assert.Equal(t, NoRetry, d.HTTPError(context.Canceled))
	assert.Equal(t, NoRetry, d.HTTPError(context.DeadlineExceeded))
}

func TestBackoffDelegate_RetryAfterHeader(t *testing.T) {
	d := &BackoffDelegate{MaxRetries: 3, BackOff: &backoff.ConstantBackOff{Interval: time.Millisecond}}
	d.Begin(MethodInfo{})

	res := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{"Retry-After": []string{"7"}},
	}
	assert.Equal(t, RetryAfter(7*time.Second), d.HTTPFailure(res, nil))

	res.Header.Set("Retry-After", "garbage")
	assert.Equal(t, RetryAfter(time.Millisecond), d.HTTPFailure(res, nil))
}

func TestRetryAfter(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "empty", value: "", want: 0},
		{name: "seconds", value: "120", want: 2 * time.Minute},
		{name: "negative", value: "-5", want: 0},
		{name: "http date", value: now.Add(30 * time.Second).Format(http.TimeFormat), want: 30 * time.Second},
		{name: "past date", value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "invalid", value: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryAfter(tt.value, now))
		})
	}
}

func TestBackoffDelegate_WithService(t *testing.T) {
	var hits atomic.Int32
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, nil, WithDefaultDelegate(func() Delegate {
		return &BackoffDelegate{MaxRetries: 2, BackOff: &backoff.ZeroBackOff{}}
	}))

	_, err := s.Accounts().OrdersList("A1").Do(context.Background())

	var failure *FailureError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusServiceUnavailable, failure.StatusCode)
	assert.Equal(t, int32(3), hits.Load())
}

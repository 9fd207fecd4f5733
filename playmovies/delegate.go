package playmovies

import (
	"net/http"
	"time"
)

// MethodInfo identifies the API method a call executes.
type MethodInfo struct {
	// ID is the discovery method id, e.g. "playmoviespartner.accounts.orders.list".
	ID string
	// HTTPMethod is the HTTP verb used by the method.
	HTTPMethod string
}

// Retry is a delegate's decision after a retryable failure.
type Retry struct {
	// Retry requests another attempt.
	Retry bool
	// After is how long to wait before the next attempt.
	After time.Duration
}

// NoRetry aborts the call with the current error.
var NoRetry = Retry{}

// RetryAfter requests another attempt after d.
func RetryAfter(d time.Duration) Retry {
	return Retry{Retry: true, After: d}
}

// Delegate observes a call while it executes and decides whether failed
// attempts are retried. A delegate serves a single call at a time.
//
// Embed DefaultDelegate to implement only the hooks you need.
type Delegate interface {
	// Begin is called once before any other hook.
	Begin(info MethodInfo)

	// PreRequest is called before every HTTP attempt.
	PreRequest()

	// TokenError is called when the token provider fails. Returning ok
	// continues the attempt with token.
	TokenError(err error) (token string, ok bool)

	// HTTPError is called on transport failures.
	HTTPError(err error) Retry

	// HTTPFailure is called on non-2xx responses. The response body has
	// already been read and can be read again. apiErr is nil when the body
	// was not a structured error.
	HTTPFailure(res *http.Response, apiErr *APIError) Retry

	// DecodeError is called when a 2xx body could not be decoded.
	DecodeError(body string, err error)

	// Finished is called exactly once when the call ends.
	Finished(success bool)
}

// DefaultDelegate is a Delegate that never retries and ignores every event.
type DefaultDelegate struct{}

func (DefaultDelegate) Begin(MethodInfo) {}

func (DefaultDelegate) PreRequest() {}

func (DefaultDelegate) TokenError(error) (string, bool) { return "", false }

func (DefaultDelegate) HTTPError(error) Retry { return NoRetry }

func (DefaultDelegate) HTTPFailure(*http.Response, *APIError) Retry { return NoRetry }

func (DefaultDelegate) DecodeError(string, error) {}

func (DefaultDelegate) Finished(bool) {}

var _ Delegate = DefaultDelegate{}

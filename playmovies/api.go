package playmovies

import (
	"context"
)

// TokenProvider produces bearer tokens for a set of OAuth2 scopes.
type TokenProvider interface {
	// Token returns an access token valid for scopes. An empty token with a
	// nil error means the request is sent without an Authorization header.
	Token(ctx context.Context, scopes []string) (string, error)
}

// TokenProviderFunc adapts a function to TokenProvider.
type TokenProviderFunc func(ctx context.Context, scopes []string) (string, error)

// Token calls f(ctx, scopes).
func (f TokenProviderFunc) Token(ctx context.Context, scopes []string) (string, error) {
	return f(ctx, scopes)
}

type noTokenProvider struct{}

func (noTokenProvider) Token(context.Context, []string) (string, error) {
	return "", nil
}

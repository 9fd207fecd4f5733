// Package auth provides playmovies.TokenProvider implementations backed by
// golang.org/x/oauth2 token sources.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/sync/singleflight"

	"github.com/s0up4200/playmovies/playmovies"
)

// Static is a provider that returns the same token for every scope set.
type Static string

// Token returns s.
func (s Static) Token(context.Context, []string) (string, error) {
	return string(s), nil
}

// None sends every request without an Authorization header.
const None = Static("")

// SourceFactory creates a token source for a set of scopes.
// google.DefaultTokenSource has this signature.
type SourceFactory func(ctx context.Context, scopes ...string) (oauth2.TokenSource, error)

// TokenSourceProvider caches one token source per scope set. Concurrent
// first requests for the same scope set share a single source creation.
type TokenSourceProvider struct {
	newSource SourceFactory
	logger    zerolog.Logger

	group   singleflight.Group
	mu      sync.RWMutex
	sources map[string]oauth2.TokenSource
}

// NewTokenSourceProvider returns a provider creating sources with factory.
func NewTokenSourceProvider(factory SourceFactory, logger zerolog.Logger) *TokenSourceProvider {
	return &TokenSourceProvider{
		newSource: factory,
		logger:    logger,
		sources:   make(map[string]oauth2.TokenSource),
	}
}

// NewGoogleProvider uses Application Default Credentials.
func NewGoogleProvider(logger zerolog.Logger) *TokenSourceProvider {
	return NewTokenSourceProvider(google.DefaultTokenSource, logger)
}

// NewCredentialsFileProvider uses a service account or authorized user JSON
// key file.
func NewCredentialsFileProvider(path string, logger zerolog.Logger) (*TokenSourceProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	if _, err := google.CredentialsFromJSON(context.Background(), data); err != nil {
		return nil, fmt.Errorf("invalid credentials file %s: %w", path, err)
	}

	factory := func(ctx context.Context, scopes ...string) (oauth2.TokenSource, error) {
		creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
		if err != nil {
			return nil, err
		}
		return creds.TokenSource, nil
	}
	return NewTokenSourceProvider(factory, logger), nil
}

// RefreshTokenConfig holds an OAuth2 client and a long-lived refresh token.
type RefreshTokenConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	// TokenURL defaults to Google's token endpoint.
	TokenURL string
}

// NewRefreshTokenProvider exchanges a refresh token for access tokens.
func NewRefreshTokenProvider(cfg RefreshTokenConfig, logger zerolog.Logger) (*TokenSourceProvider, error) {
	if cfg.ClientID == "" || cfg.RefreshToken == "" {
		return nil, errors.New("client ID and refresh token are required")
	}

	endpoint := google.Endpoint
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	factory := func(ctx context.Context, scopes ...string) (oauth2.TokenSource, error) {
		conf := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			Scopes:       scopes,
		}
		return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken}), nil
	}
	return NewTokenSourceProvider(factory, logger), nil
}

// Token returns an access token for scopes. An empty scope set yields an
// empty token.
func (p *TokenSourceProvider) Token(ctx context.Context, scopes []string) (string, error) {
	if len(scopes) == 0 {
		return "", nil
	}

	sorted := slices.Clone(scopes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	src, err := p.source(ctx, sorted)
	if err != nil {
		return "", err
	}

	tok, err := src.Token()
	if err != nil {
		return "", fmt.Errorf("failed to fetch token: %w", err)
	}
	return tok.AccessToken, nil
}

func (p *TokenSourceProvider) source(ctx context.Context, scopes []string) (oauth2.TokenSource, error) {
	key := strings.Join(scopes, " ")

	p.mu.RLock()
	src, ok := p.sources[key]
	p.mu.RUnlock()
	if ok {
		return src, nil
	}

	v, err, _ := p.group.Do(key, func() (any, error) {
		p.mu.RLock()
		src, ok := p.sources[key]
		p.mu.RUnlock()
		if ok {
			return src, nil
		}

		// Sources outlive the request that created them.
		created, err := p.newSource(context.WithoutCancel(ctx), scopes...)
		if err != nil {
			return nil, fmt.Errorf("failed to create token source: %w", err)
		}
		src = oauth2.ReuseTokenSource(nil, created)

		p.mu.Lock()
		p.sources[key] = src
		p.mu.Unlock()

		p.logger.Debug().
			Strs("scopes", scopes).
			Msg("Created token source")

		return src, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(oauth2.TokenSource), nil
}

var (
	_ playmovies.TokenProvider = Static("")
	_ playmovies.TokenProvider = (*TokenSourceProvider)(nil)
)

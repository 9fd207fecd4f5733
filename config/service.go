package config

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/s0up4200/playmovies/auth"
	"github.com/s0up4200/playmovies/filter"
	"github.com/s0up4200/playmovies/playmovies"
	"github.com/s0up4200/playmovies/transport"
)

// NewTokenProvider returns the token provider selected by cfg.Mode.
func NewTokenProvider(cfg AuthConfig, logger zerolog.Logger) (playmovies.TokenProvider, error) {
	switch cfg.Mode {
	case AuthModeADC:
		return auth.NewGoogleProvider(logger), nil
	case AuthModeCredentialsFile:
		return auth.NewCredentialsFileProvider(cfg.CredentialsFile, logger)
	case AuthModeRefreshToken:
		return auth.NewRefreshTokenProvider(auth.RefreshTokenConfig{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RefreshToken: cfg.RefreshToken,
			TokenURL:     cfg.TokenURL,
		}, logger)
	case AuthModeStatic:
		return auth.Static(cfg.Token), nil
	case AuthModeNone:
		return auth.None, nil
	default:
		return nil, fmt.Errorf("invalid auth mode: %s", cfg.Mode)
	}
}

// NewService wires transport, auth, retry policy, metrics and logger into a
// Service. Metrics are registered with reg when enabled; a nil reg uses the
// Prometheus default registerer.
func NewService(cfg *Config, logger zerolog.Logger, reg prometheus.Registerer) (*playmovies.Service, error) {
	tokens, err := NewTokenProvider(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create token provider: %w", err)
	}

	client := transport.NewClient(transport.Options{
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})

	var newDelegate func() playmovies.Delegate
	if cfg.Retry.Enabled {
		maxRetries := cfg.Retry.MaxRetries
		newDelegate = func() playmovies.Delegate {
			return playmovies.NewBackoffDelegate(maxRetries)
		}
	}

	if cfg.Metrics.Enabled {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		metrics, err := playmovies.NewMetrics(reg)
		if err != nil {
			return nil, err
		}
		newDelegate = metrics.DelegateFactory(newDelegate)
	}

	opts := []playmovies.Option{
		playmovies.WithLogger(logger),
		playmovies.WithBasePath(cfg.API.BasePath),
		playmovies.WithUserAgent(cfg.API.UserAgent),
	}
	if newDelegate != nil {
		opts = append(opts, playmovies.WithDefaultDelegate(newDelegate))
	}

	svc, err := playmovies.New(client, tokens, opts...)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("base_path", svc.BasePath()).
		Str("auth_mode", cfg.Auth.Mode).
		Bool("retry", cfg.Retry.Enabled).
		Float64("rate_limit_rps", cfg.RateLimit.RequestsPerSecond).
		Msg("Play Movies Partner service configured")

	return svc, nil
}

// NewFilterSet compiles the named filters of cfg.
func NewFilterSet(cfg *Config) (*filter.Set, error) {
	return filter.NewSet(filter.NewCompiler(), cfg.Filters)
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/playmovies/playmovies"
)

// EnvPrefix prefixes environment overrides, e.g. PLAYMOVIES_AUTH_MODE.
const EnvPrefix = "PLAYMOVIES"

// Load loads the configuration. An explicit configPath must exist; otherwise
// playmovies.yaml is searched for in the standard locations and its absence
// leaves the defaults in place.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("playmovies")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".playmovies"))
		}

		v.AddConfigPath("/etc/playmovies/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key is given a
// default so that environment overrides are picked up by Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_path", playmovies.DefaultBasePath)
	v.SetDefault("api.user_agent", playmovies.DefaultUserAgent)
	v.SetDefault("api.timeout", "30s")

	v.SetDefault("auth.mode", AuthModeADC)
	v.SetDefault("auth.credentials_file", "")
	v.SetDefault("auth.token", "")
	v.SetDefault("auth.client_id", "")
	v.SetDefault("auth.client_secret", "")
	v.SetDefault("auth.refresh_token", "")
	v.SetDefault("auth.token_url", "")

	v.SetDefault("retry.enabled", true)
	v.SetDefault("retry.max_retries", playmovies.DefaultMaxRetries)

	v.SetDefault("rate_limit.requests_per_second", 0)
	v.SetDefault("rate_limit.burst", 1)

	v.SetDefault("metrics.enabled", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.BasePath)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_path must be an absolute URL: %q", cfg.API.BasePath)
	}
	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}

	switch cfg.Auth.Mode {
	case AuthModeADC, AuthModeNone:
	case AuthModeCredentialsFile:
		if cfg.Auth.CredentialsFile == "" {
			return fmt.Errorf("auth.credentials_file is required for auth mode %q", cfg.Auth.Mode)
		}
	case AuthModeRefreshToken:
		if cfg.Auth.ClientID == "" || cfg.Auth.RefreshToken == "" {
			return fmt.Errorf("auth.client_id and auth.refresh_token are required for auth mode %q", cfg.Auth.Mode)
		}
	case AuthModeStatic:
		if cfg.Auth.Token == "" {
			return fmt.Errorf("auth.token is required for auth mode %q", cfg.Auth.Mode)
		}
	default:
		return fmt.Errorf("invalid auth mode: %s", cfg.Auth.Mode)
	}

	if cfg.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative")
	}

	if cfg.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("rate_limit.requests_per_second must not be negative")
	}
	if cfg.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit.burst must not be negative")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

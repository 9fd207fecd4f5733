package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Retry     RetryConfig     `mapstructure:"retry"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Filters   FilterConfig    `mapstructure:"filters"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// APIConfig holds the endpoint and HTTP settings
type APIConfig struct {
	BasePath  string        `mapstructure:"base_path"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// Auth modes
const (
	AuthModeADC             = "adc"
	AuthModeCredentialsFile = "credentials_file"
	AuthModeRefreshToken    = "refresh_token"
	AuthModeStatic          = "static"
	AuthModeNone            = "none"
)

// AuthConfig selects how access tokens are obtained
type AuthConfig struct {
	Mode            string `mapstructure:"mode"`
	CredentialsFile string `mapstructure:"credentials_file"`
	Token           string `mapstructure:"token"`
	ClientID        string `mapstructure:"client_id"`
	ClientSecret    string `mapstructure:"client_secret"`
	RefreshToken    string `mapstructure:"refresh_token"`
	TokenURL        string `mapstructure:"token_url"`
}

// RetryConfig controls the back-off delegate installed on every call
type RetryConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxRetries int  `mapstructure:"max_retries"`
}

// RateLimitConfig contains client-side rate limiting settings
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// MetricsConfig toggles Prometheus instrumentation
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// FilterConfig contains named filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

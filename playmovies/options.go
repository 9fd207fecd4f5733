package playmovies

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracerProvider sets the provider used to trace each call.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// WithDefaultDelegate installs a factory whose delegate is used by every
// call that has no delegate of its own. The factory runs once per call.
func WithDefaultDelegate(factory func() Delegate) Option {
	return func(s *Service) {
		s.newDelegate = factory
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(s *Service) {
		if userAgent != "" {
			s.userAgent = userAgent
		}
	}
}

// WithBasePath overrides the API endpoint.
func WithBasePath(basePath string) Option {
	return func(s *Service) {
		if basePath != "" {
			s.basePath = basePath
		}
	}
}

package playmovies

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Version is the version of this client library.
	Version = "0.3.0"

	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "playmovies-go-client/" + Version

	// DefaultBasePath is the API endpoint.
	DefaultBasePath = "https://playmoviespartner.googleapis.com/"

	// DefaultRootPath is the service root.
	DefaultRootPath = "https://playmoviespartner.googleapis.com/"

	instrumentationName = "github.com/s0up4200/playmovies"
)

// Service is the entry point of the Play Movies Partner API. It is safe for
// concurrent use once configured; the setters are not synchronised and must
// be called before calls run concurrently.
type Service struct {
	client      *http.Client
	tokens      TokenProvider
	userAgent   string
	basePath    string
	rootPath    string
	logger      zerolog.Logger
	tracer      trace.Tracer
	newDelegate func() Delegate
}

// New creates a Service. client is required; a nil tokens provider sends
// every request without an Authorization header.
func New(client *http.Client, tokens TokenProvider, opts ...Option) (*Service, error) {
	if client == nil {
		return nil, errors.New("playmovies: http client is nil")
	}
	if tokens == nil {
		tokens = noTokenProvider{}
	}

	s := &Service{
		client:    client,
		tokens:    tokens,
		userAgent: DefaultUserAgent,
		basePath:  DefaultBasePath,
		rootPath:  DefaultRootPath,
		logger:    zerolog.Nop(),
		tracer:    otel.GetTracerProvider().Tracer(instrumentationName),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Accounts returns the factory for account-scoped API methods.
func (s *Service) Accounts() *AccountsService {
	return &AccountsService{s: s}
}

// UserAgent returns the User-Agent header value.
func (s *Service) UserAgent() string {
	return s.userAgent
}

// SetUserAgent replaces the User-Agent header value and returns the previous one.
func (s *Service) SetUserAgent(userAgent string) string {
	prev := s.userAgent
	s.userAgent = userAgent
	return prev
}

// BasePath returns the API endpoint.
func (s *Service) BasePath() string {
	return s.basePath
}

// SetBasePath replaces the API endpoint and returns the previous one.
func (s *Service) SetBasePath(basePath string) string {
	prev := s.basePath
	s.basePath = basePath
	return prev
}

// RootPath returns the service root.
func (s *Service) RootPath() string {
	return s.rootPath
}

// SetRootPath replaces the service root and returns the previous one.
func (s *Service) SetRootPath(rootPath string) string {
	prev := s.rootPath
	s.rootPath = rootPath
	return prev
}

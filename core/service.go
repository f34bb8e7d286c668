package core

import (
	"maps"
	"strings"

	"github.com/rs/zerolog"
)

// ServiceInfo is the static description of one Watson service.
type ServiceInfo struct {
	// Name is the credential prefix, e.g. "natural_language_understanding".
	Name string
	// HeaderName identifies the service in diagnostic headers.
	HeaderName string
	// APIVersion is the major API version in the URL path, e.g. "v1".
	APIVersion string
	DefaultURL string
	// Versioned services send version=<date> on every call.
	Versioned bool
	// Constructor names the client constructor in argument errors.
	Constructor string
}

type serviceSettings struct {
	url            string
	authFn         func(Transport) (Authenticator, error)
	transport      Transport
	headers        map[string]string
	logger         zerolog.Logger
	metrics        *Metrics
	headerProvider HeaderProvider
}

// ServiceOption configures a service client at construction.
type ServiceOption func(*serviceSettings)

// WithURL overrides the service endpoint.
func WithURL(url string) ServiceOption {
	return func(s *serviceSettings) {
		s.url = url
	}
}

// WithAuthenticator sets the authenticator directly.
func WithAuthenticator(a Authenticator) ServiceOption {
	return func(s *serviceSettings) {
		s.authFn = func(Transport) (Authenticator, error) {
			if a == nil {
				return nil, newArgumentError("authenticator", "WithAuthenticator")
			}
			return a, nil
		}
	}
}

// WithBasicAuth authenticates with a username and password.
func WithBasicAuth(username, password string) ServiceOption {
	return func(s *serviceSettings) {
		s.authFn = func(Transport) (Authenticator, error) {
			return NewBasicAuthenticator(username, password)
		}
	}
}

// WithIAMAPIKey authenticates with IAM tokens obtained for apiKey. Token
// requests go through the service transport unless an IAM option overrides it.
func WithIAMAPIKey(apiKey string, opts ...IAMOption) ServiceOption {
	return func(s *serviceSettings) {
		s.authFn = func(t Transport) (Authenticator, error) {
			tm, err := NewIAMTokenManager(apiKey, append([]IAMOption{WithIAMTransport(t)}, opts...)...)
			if err != nil {
				return nil, err
			}
			return NewBearerTokenAuthenticator(tm)
		}
	}
}

// WithBearerToken authenticates with a caller-managed access token.
func WithBearerToken(token string) ServiceOption {
	return func(s *serviceSettings) {
		s.authFn = func(Transport) (Authenticator, error) {
			return NewBearerTokenAuthenticator(StaticToken(token))
		}
	}
}

// WithTransport replaces the default net/http transport.
func WithTransport(t Transport) ServiceOption {
	return func(s *serviceSettings) {
		s.transport = t
	}
}

// WithHeaders sets headers sent on every call. Per-call headers from an
// operation's options take precedence.
func WithHeaders(headers map[string]string) ServiceOption {
	return func(s *serviceSettings) {
		s.headers = maps.Clone(headers)
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) ServiceOption {
	return func(s *serviceSettings) {
		s.logger = l
	}
}

// WithMetrics records request metrics on m.
func WithMetrics(m *Metrics) ServiceOption {
	return func(s *serviceSettings) {
		s.metrics = m
	}
}

// WithHeaderProvider replaces SDKHeaders as the source of diagnostic headers.
func WithHeaderProvider(p HeaderProvider) ServiceOption {
	return func(s *serviceSettings) {
		s.headerProvider = p
	}
}

// BaseService holds the connection settings shared by all calls of one
// client. It is immutable after construction and safe for concurrent use.
type BaseService struct {
	info           ServiceInfo
	url            string
	version        string
	auth           Authenticator
	transport      Transport
	headers        map[string]string
	logger         zerolog.Logger
	metrics        *Metrics
	headerProvider HeaderProvider
}

// NewBaseService validates the settings and creates a BaseService. When no
// authentication option is given, credentials are discovered with
// LoadCredentials(info.Name).
func NewBaseService(info ServiceInfo, version string, opts ...ServiceOption) (*BaseService, error) {
	s := &serviceSettings{
		logger:         zerolog.Nop(),
		headerProvider: SDKHeaders,
	}
	for _, opt := range opts {
		opt(s)
	}

	if info.Versioned && version == "" {
		return nil, newArgumentError("version", info.Constructor)
	}
	if s.transport == nil {
		s.transport = NewHTTPTransport()
	}
	if s.headerProvider == nil {
		s.headerProvider = SDKHeaders
	}

	url := s.url
	var creds *Credentials
	if s.authFn == nil || url == "" {
		var err error
		creds, err = LoadCredentials(info.Name)
		switch {
		case err == nil:
			if url == "" {
				url = creds.URL
			}
		case s.authFn == nil:
			return nil, err
		default:
			// Only the URL was wanted from the file; fall back to the default.
			s.logger.Warn().Err(err).Str("service", info.Name).Msg("ignoring unreadable credentials file")
		}
	}

	var auth Authenticator
	var err error
	if s.authFn != nil {
		auth, err = s.authFn(s.transport)
	} else {
		if creds.IsEmpty() {
			return nil, newArgumentError("credentials", info.Constructor)
		}
		auth, err = creds.Authenticator(s.transport)
	}
	if err != nil {
		return nil, err
	}
	if err := auth.Validate(); err != nil {
		return nil, err
	}

	if url == "" {
		url = info.DefaultURL
	}

	return &BaseService{
		info:           info,
		url:            strings.TrimRight(url, "/"),
		version:        version,
		auth:           auth,
		transport:      s.transport,
		headers:        s.headers,
		logger:         s.logger,
		metrics:        s.metrics,
		headerProvider: s.headerProvider,
	}, nil
}

// URL returns the service endpoint.
func (s *BaseService) URL() string { return s.url }

// Version returns the version date sent with every call.
func (s *BaseService) Version() string { return s.version }

// Authenticator returns the configured authenticator.
func (s *BaseService) Authenticator() Authenticator { return s.auth }

// Info returns the static service description.
func (s *BaseService) Info() ServiceInfo { return s.info }

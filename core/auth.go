package core

import (
	"context"
	"net/http"
	"strings"
)

// Authentication types, as spelled in credential files.
const (
	AuthTypeBasic       = "basic"
	AuthTypeIAM         = "iam"
	AuthTypeBearerToken = "bearerToken"
)

// Authenticator attaches credentials to an outgoing request. The only
// implementations are *BasicAuthenticator and *BearerTokenAuthenticator.
type Authenticator interface {
	AuthenticationType() string
	Authenticate(ctx context.Context, req *http.Request) error
	Validate() error

	sealed()
}

// TokenProvider hands out a currently valid bearer token. Implementations
// must be safe for concurrent use.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// BasicAuthenticator sends HTTP Basic credentials.
type BasicAuthenticator struct {
	Username string
	Password string
}

// NewBasicAuthenticator creates a validated BasicAuthenticator.
func NewBasicAuthenticator(username, password string) (*BasicAuthenticator, error) {
	a := &BasicAuthenticator{Username: username, Password: password}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *BasicAuthenticator) AuthenticationType() string { return AuthTypeBasic }

func (a *BasicAuthenticator) Authenticate(_ context.Context, req *http.Request) error {
	req.SetBasicAuth(a.Username, a.Password)
	return nil
}

func (a *BasicAuthenticator) Validate() error {
	if a.Username == "" {
		return newArgumentError("username", "BasicAuthenticator")
	}
	if a.Password == "" {
		return newArgumentError("password", "BasicAuthenticator")
	}
	if hasBraces(a.Username) || hasBraces(a.Password) {
		return &ArgumentError{
			SDKError:  SDKError{Message: "credentials must not be wrapped in {} or \"\"; remove the placeholder characters"},
			Parameter: "username",
			Operation: "BasicAuthenticator",
		}
	}
	return nil
}

func (*BasicAuthenticator) sealed() {}

// BearerTokenAuthenticator sends "Authorization: Bearer <token>" using the
// token returned by Provider.
type BearerTokenAuthenticator struct {
	Provider TokenProvider
}

// NewBearerTokenAuthenticator creates a validated BearerTokenAuthenticator.
func NewBearerTokenAuthenticator(provider TokenProvider) (*BearerTokenAuthenticator, error) {
	a := &BearerTokenAuthenticator{Provider: provider}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *BearerTokenAuthenticator) AuthenticationType() string {
	if _, ok := a.Provider.(*IAMTokenManager); ok {
		return AuthTypeIAM
	}
	return AuthTypeBearerToken
}

func (a *BearerTokenAuthenticator) Authenticate(ctx context.Context, req *http.Request) error {
	token, err := a.Provider.Token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (a *BearerTokenAuthenticator) Validate() error {
	if a.Provider == nil {
		return newArgumentError("token provider", "BearerTokenAuthenticator")
	}
	if st, ok := a.Provider.(StaticToken); ok && st == "" {
		return newArgumentError("bearer token", "BearerTokenAuthenticator")
	}
	return nil
}

func (*BearerTokenAuthenticator) sealed() {}

// StaticToken is a TokenProvider for a caller-managed access token. The
// caller is responsible for replacing it before it expires.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) { return string(t), nil }

// hasBraces reports whether a credential still carries template placeholder
// characters, e.g. "{apikey}" pasted from documentation.
func hasBraces(s string) bool {
	return strings.HasPrefix(s, "{") || strings.HasSuffix(s, "}") ||
		strings.HasPrefix(s, "\"") || strings.HasSuffix(s, "\"")
}

package core

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultIAMURL is the public IBM Cloud IAM endpoint.
const DefaultIAMURL = "https://iam.cloud.ibm.com"

const (
	iamTokenPath     = "/identity/token"
	iamGrantType     = "urn:ibm:params:oauth:grant-type:apikey"
	iamRefreshWindow = 0.2 // refresh once 80% of the lifetime has passed
)

// IAMTokenManager exchanges an IBM Cloud API key for IAM access tokens and
// caches them until they are due for refresh. It is safe for concurrent use:
// callers block on a single in-flight token request.
type IAMTokenManager struct {
	apiKey       string
	url          string
	clientID     string
	clientSecret string
	transport    Transport
	now          func() time.Time

	mu    sync.Mutex
	token *iamToken
}

type iamToken struct {
	accessToken string
	expiresAt   time.Time
	refreshAt   time.Time
}

type iamTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Expiration   int64  `json:"expiration"`
}

// IAMOption configures an IAMTokenManager.
type IAMOption func(*IAMTokenManager)

// WithIAMURL sets the IAM endpoint, with or without the /identity/token path.
func WithIAMURL(u string) IAMOption {
	return func(m *IAMTokenManager) {
		if u != "" {
			m.url = strings.TrimRight(u, "/")
		}
	}
}

// WithIAMClientCredentials sets the client id and secret sent as Basic auth
// to the token endpoint.
func WithIAMClientCredentials(clientID, clientSecret string) IAMOption {
	return func(m *IAMTokenManager) {
		m.clientID = clientID
		m.clientSecret = clientSecret
	}
}

// WithIAMTransport sets the Transport used for token requests.
func WithIAMTransport(t Transport) IAMOption {
	return func(m *IAMTokenManager) {
		m.transport = t
	}
}

// NewIAMTokenManager creates a token manager for apiKey.
func NewIAMTokenManager(apiKey string, opts ...IAMOption) (*IAMTokenManager, error) {
	if apiKey == "" {
		return nil, newArgumentError("apikey", "IAMTokenManager")
	}
	if hasBraces(apiKey) {
		return nil, &ArgumentError{
			SDKError:  SDKError{Message: "apikey must not be wrapped in {} or \"\"; remove the placeholder characters"},
			Parameter: "apikey",
			Operation: "IAMTokenManager",
		}
	}

	m := &IAMTokenManager{
		apiKey: apiKey,
		url:    DefaultIAMURL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if (m.clientID == "") != (m.clientSecret == "") {
		return nil, newArgumentError("client id and client secret", "IAMTokenManager")
	}
	if m.transport == nil {
		m.transport = NewHTTPTransport()
	}
	return m, nil
}

// Token returns a valid access token, requesting a new one when the cached
// token is missing or due for refresh.
func (m *IAMTokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.token != nil && now.Before(m.token.refreshAt) {
		return m.token.accessToken, nil
	}

	tok, err := m.requestToken(ctx)
	if err != nil {
		// A failed early refresh still leaves a usable token.
		if m.token != nil && now.Before(m.token.expiresAt) {
			return m.token.accessToken, nil
		}
		return "", err
	}
	m.token = tok
	return tok.accessToken, nil
}

func (m *IAMTokenManager) endpoint() string {
	if strings.HasSuffix(m.url, iamTokenPath) {
		return m.url
	}
	return m.url + iamTokenPath
}

func (m *IAMTokenManager) requestToken(ctx context.Context) (*iamToken, error) {
	form := url.Values{}
	form.Set("grant_type", iamGrantType)
	form.Set("apikey", m.apiKey)
	form.Set("response_type", "cloud_iam")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &TokenError{SDKError: SDKError{Message: "failed to create IAM token request", Cause: err}}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if m.clientID != "" {
		req.SetBasicAuth(m.clientID, m.clientSecret)
	}

	resp, err := m.transport.Do(req)
	if err != nil {
		return nil, &TokenError{SDKError: SDKError{Message: "IAM token request failed", Cause: firstCause(err)}}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TokenError{SDKError: SDKError{
			Message: "IAM token request failed",
			Cause:   buildErrorFromResponse(resp, "iam"),
		}}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TokenError{SDKError: SDKError{Message: "failed to read IAM token response", Cause: err}}
	}
	var tr iamTokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, &TokenError{SDKError: SDKError{Message: "failed to parse IAM token response", Cause: err}}
	}
	if tr.AccessToken == "" {
		return nil, &TokenError{SDKError: SDKError{Message: "IAM token response has no access_token"}}
	}

	return m.newToken(tr)
}

func (m *IAMTokenManager) newToken(tr iamTokenResponse) (*iamToken, error) {
	now := m.now()

	var expiresAt time.Time
	switch {
	case tr.Expiration > 0:
		expiresAt = time.Unix(tr.Expiration, 0)
	case tr.ExpiresIn > 0:
		expiresAt = now.Add(time.Duration(tr.ExpiresIn) * time.Second)
	default:
		exp, err := jwtExpiry(tr.AccessToken)
		if err != nil {
			return nil, &TokenError{SDKError: SDKError{Message: "cannot determine IAM token expiry", Cause: err}}
		}
		expiresAt = exp
	}

	lifetime := time.Duration(tr.ExpiresIn) * time.Second
	if lifetime <= 0 {
		lifetime = expiresAt.Sub(now)
	}
	refreshAt := expiresAt.Add(-time.Duration(float64(lifetime) * iamRefreshWindow))

	return &iamToken{
		accessToken: tr.AccessToken,
		expiresAt:   expiresAt,
		refreshAt:   refreshAt,
	}, nil
}

// jwtExpiry reads the exp claim of an access token without verifying its
// signature; IAM verifies the token, the SDK only schedules refreshes.
func jwtExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("access token has no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}

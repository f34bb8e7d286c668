package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// CredentialsFileEnv names the environment variable pointing at a
// credentials file.
const CredentialsFileEnv = "IBM_CREDENTIALS_FILE"

const credentialsFileName = "ibm-credentials.env"

// Credentials are the connection settings discovered for one service.
type Credentials struct {
	URL             string
	AuthType        string
	APIKey          string
	BearerToken     string
	Username        string
	Password        string
	IAMURL          string
	IAMClientID     string
	IAMClientSecret string
}

// IsEmpty reports whether no credential of any kind was found.
func (c *Credentials) IsEmpty() bool {
	return c.APIKey == "" && c.BearerToken == "" && c.Username == "" && c.Password == ""
}

// LoadCredentials reads the settings for serviceName (e.g. "assistant") from
// the credentials file and the environment. Keys are upper-cased and
// prefixed with the service name: ASSISTANT_APIKEY, ASSISTANT_URL, ...
// Environment variables take precedence over the file.
func LoadCredentials(serviceName string) (*Credentials, error) {
	v := viper.New()
	if path := credentialsFilePath(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, &SDKError{Message: "failed to read credentials file " + path, Cause: err}
		}
	}
	v.AutomaticEnv()

	prefix := strings.ToUpper(serviceName) + "_"
	get := func(keys ...string) string {
		for _, k := range keys {
			if s := v.GetString(prefix + k); s != "" {
				return s
			}
		}
		return ""
	}

	return &Credentials{
		URL:             get("URL"),
		AuthType:        get("AUTH_TYPE"),
		APIKey:          get("APIKEY", "IAM_APIKEY"),
		BearerToken:     get("BEARER_TOKEN"),
		Username:        get("USERNAME"),
		Password:        get("PASSWORD"),
		IAMURL:          get("IAM_URL", "AUTH_URL"),
		IAMClientID:     get("CLIENT_ID"),
		IAMClientSecret: get("CLIENT_SECRET"),
	}, nil
}

// credentialsFilePath returns the first credentials file found, or "".
func credentialsFilePath() string {
	if p := os.Getenv(CredentialsFileEnv); p != "" {
		return p
	}
	if wd, err := os.Getwd(); err == nil {
		if p := filepath.Join(wd, credentialsFileName); fileExists(p) {
			return p
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if p := filepath.Join(home, credentialsFileName); fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Authenticator builds the one Authenticator these credentials describe.
// Without an explicit AuthType the API key wins, then the bearer token, then
// username and password.
func (c *Credentials) Authenticator(transport Transport) (Authenticator, error) {
	authType := strings.ToLower(c.AuthType)
	if authType == "" {
		switch {
		case c.APIKey != "":
			authType = AuthTypeIAM
		case c.BearerToken != "":
			authType = strings.ToLower(AuthTypeBearerToken)
		case c.Username != "" || c.Password != "":
			authType = AuthTypeBasic
		default:
			return nil, newArgumentError("credentials", "Authenticator")
		}
	}

	switch authType {
	case AuthTypeIAM:
		tm, err := NewIAMTokenManager(c.APIKey,
			WithIAMURL(c.IAMURL),
			WithIAMClientCredentials(c.IAMClientID, c.IAMClientSecret),
			WithIAMTransport(transport),
		)
		if err != nil {
			return nil, err
		}
		return NewBearerTokenAuthenticator(tm)
	case strings.ToLower(AuthTypeBearerToken):
		return NewBearerTokenAuthenticator(StaticToken(c.BearerToken))
	case AuthTypeBasic:
		return NewBasicAuthenticator(c.Username, c.Password)
	default:
		return nil, &ArgumentError{
			SDKError:  SDKError{Message: "unsupported auth type " + c.AuthType},
			Parameter: "auth type",
			Operation: "Authenticator",
		}
	}
}

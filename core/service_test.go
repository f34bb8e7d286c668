package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoeZX/watson-go-sdk/internal/watsontest"
)

// isolateCredentials points credential discovery at an empty directory so
// the developer's own files and variables do not leak into tests.
func isolateCredentials(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(CredentialsFileEnv, "")
	t.Setenv("HOME", dir)
	for _, key := range []string{"URL", "APIKEY", "IAM_APIKEY", "BEARER_TOKEN", "USERNAME", "PASSWORD", "AUTH_TYPE", "IAM_URL", "AUTH_URL"} {
		t.Setenv("TEST_SERVICE_"+key, "")
	}
	return dir
}

func writeCredentialsFile(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, "ibm-credentials.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(CredentialsFileEnv, path)
}

func TestNewBaseServiceEmptyVersionFails(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	_, err := NewBaseService(testInfo, "", WithBasicAuth("u", "p"), WithTransport(transport))

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "version", argErr.Parameter)
	assert.Equal(t, "NewTestService", argErr.Operation)
	assert.Equal(t, 0, transport.Len())
}

func TestNewBaseServiceWithoutCredentialsFails(t *testing.T) {
	isolateCredentials(t)
	_, err := NewBaseService(testInfo, "2019-07-12", WithURL("https://example.com"))

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "credentials", argErr.Parameter)
}

func TestNewBaseServiceInvalidBasicCredentials(t *testing.T) {
	_, err := NewBaseService(testInfo, "2019-07-12", WithURL("https://example.com"), WithBasicAuth("user", ""))
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "password", argErr.Parameter)
}

func TestNewBaseServiceNilAuthenticator(t *testing.T) {
	_, err := NewBaseService(testInfo, "2019-07-12", WithURL("https://example.com"), WithAuthenticator(nil))
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestNewBaseServiceDefaults(t *testing.T) {
	isolateCredentials(t)
	s, err := NewBaseService(testInfo, "2019-07-12", WithBearerToken("tok"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api", s.URL())
	assert.Equal(t, "2019-07-12", s.Version())
	assert.Equal(t, AuthTypeBearerToken, s.Authenticator().AuthenticationType())
	assert.Equal(t, testInfo, s.Info())
}

func TestNewBaseServiceExplicitAuthIgnoresUnreadableFile(t *testing.T) {
	isolateCredentials(t)
	t.Setenv(CredentialsFileEnv, filepath.Join(t.TempDir(), "missing.env"))

	s, err := NewBaseService(testInfo, "2019-07-12", WithBasicAuth("u", "p"))
	require.NoError(t, err)
	assert.Equal(t, testInfo.DefaultURL, s.URL())
	assert.Equal(t, AuthTypeBasic, s.Authenticator().AuthenticationType())

	_, err = NewBaseService(testInfo, "2019-07-12")
	assert.Error(t, err)
}

func TestNewBaseServiceTrimsURL(t *testing.T) {
	s, err := NewBaseService(testInfo, "2019-07-12", WithURL("https://example.com/api/"), WithBasicAuth("u", "p"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api", s.URL())
}

func TestNewBaseServiceLastAuthOptionWins(t *testing.T) {
	s, err := NewBaseService(testInfo, "2019-07-12",
		WithURL("https://example.com"),
		WithBasicAuth("u", "p"),
		WithIAMAPIKey("key"),
	)
	require.NoError(t, err)
	assert.Equal(t, AuthTypeIAM, s.Authenticator().AuthenticationType())
}

func TestNewBaseServiceDiscoversCredentialsFile(t *testing.T) {
	dir := isolateCredentials(t)
	writeCredentialsFile(t, dir, "TEST_SERVICE_URL=https://file.example.com\nTEST_SERVICE_APIKEY=file-key\n")

	s, err := NewBaseService(testInfo, "2019-07-12")
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", s.URL())
	assert.Equal(t, AuthTypeIAM, s.Authenticator().AuthenticationType())
}

func TestNewBaseServiceExplicitURLBeatsDiscovered(t *testing.T) {
	dir := isolateCredentials(t)
	writeCredentialsFile(t, dir, "TEST_SERVICE_URL=https://file.example.com\nTEST_SERVICE_USERNAME=u\nTEST_SERVICE_PASSWORD=p\n")

	s, err := NewBaseService(testInfo, "2019-07-12", WithURL("https://explicit.example.com"))
	require.NoError(t, err)
	assert.Equal(t, "https://explicit.example.com", s.URL())
	assert.Equal(t, AuthTypeBasic, s.Authenticator().AuthenticationType())
}

func TestLoadCredentialsEnvironmentWins(t *testing.T) {
	dir := isolateCredentials(t)
	writeCredentialsFile(t, dir, "TEST_SERVICE_APIKEY=file-key\nTEST_SERVICE_IAM_URL=https://iam.test\n")
	t.Setenv("TEST_SERVICE_APIKEY", "env-key")

	creds, err := LoadCredentials("test_service")
	require.NoError(t, err)
	assert.Equal(t, "env-key", creds.APIKey)
	assert.Equal(t, "https://iam.test", creds.IAMURL)
}

func TestLoadCredentialsUnreadableFile(t *testing.T) {
	dir := isolateCredentials(t)
	t.Setenv(CredentialsFileEnv, dir) // a directory, not a file

	_, err := LoadCredentials("test_service")
	assert.Error(t, err)
}

func TestCredentialsAuthenticatorSelection(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  string
	}{
		{"apikey wins", Credentials{APIKey: "k", BearerToken: "t", Username: "u", Password: "p"}, AuthTypeIAM},
		{"bearer before basic", Credentials{BearerToken: "t", Username: "u", Password: "p"}, AuthTypeBearerToken},
		{"basic", Credentials{Username: "u", Password: "p"}, AuthTypeBasic},
		{"explicit type", Credentials{AuthType: "basic", APIKey: "k", Username: "u", Password: "p"}, AuthTypeBasic},
		{"explicit bearer", Credentials{AuthType: "bearerToken", BearerToken: "t"}, AuthTypeBearerToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.creds.Authenticator(nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.AuthenticationType())
		})
	}
}

func TestCredentialsAuthenticatorErrors(t *testing.T) {
	_, err := (&Credentials{}).Authenticator(nil)
	assert.Error(t, err)

	_, err = (&Credentials{AuthType: "kerberos", APIKey: "k"}).Authenticator(nil)
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "auth type", argErr.Parameter)
}

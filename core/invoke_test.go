package core

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoeZX/watson-go-sdk/internal/watsontest"
)

var testInfo = ServiceInfo{
	Name:        "test_service",
	HeaderName:  "test-service",
	APIVersion:  "v1",
	DefaultURL:  "https://example.com/api",
	Versioned:   true,
	Constructor: "NewTestService",
}

type testResult struct {
	Name  string `json:"name,omitempty"`
	Count *int64 `json:"count,omitempty"`
}

func newTestService(t *testing.T, transport Transport, opts ...ServiceOption) *BaseService {
	t.Helper()
	opts = append([]ServiceOption{
		WithURL("https://example.com/api"),
		WithBasicAuth("user", "pass"),
		WithTransport(transport),
	}, opts...)
	s, err := NewBaseService(testInfo, "2019-07-12", opts...)
	require.NoError(t, err)
	return s
}

func TestInvokeDecodesResult(t *testing.T) {
	transport := watsontest.NewRecordingTransport(
		watsontest.JSONReply(http.StatusOK, `{"name":"model","count":3}`),
	)
	s := newTestService(t, transport)

	b := NewRequestBuilder("GetThing", http.MethodGet)
	require.NoError(t, b.ResolvePath("/v1/things/{thing_id}", "t1"))

	resp, err := Invoke[testResult](context.Background(), s, b)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "model", resp.Result.Name)
	require.NotNil(t, resp.Result.Count)
	assert.Equal(t, int64(3), *resp.Result.Count)

	req := transport.Last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/v1/things/t1", req.URL.Path)
	assert.Equal(t, "2019-07-12", req.URL.Query().Get("version"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Empty(t, req.Header.Get("Content-Type"))
	assert.Equal(t, "service_name=test-service;service_version=v1;operation_id=GetThing", req.Header.Get("X-IBMCloud-SDK-Analytics"))
	assert.Contains(t, req.Header.Get("User-Agent"), "watson-apis-go-sdk/")
}

func TestInvokeUnversionedServiceOmitsVersion(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	info := testInfo
	info.Versioned = false
	s, err := NewBaseService(info, "", WithURL("https://example.com"), WithBasicAuth("u", "p"), WithTransport(transport))
	require.NoError(t, err)

	_, err = Invoke[testResult](context.Background(), s, NewRequestBuilder("Op", http.MethodGet))
	require.NoError(t, err)
	_, present := transport.Last().URL.Query()["version"]
	assert.False(t, present)
}

func TestInvokeEmptyBodyYieldsEmptyResult(t *testing.T) {
	transport := watsontest.NewRecordingTransport(watsontest.JSONReply(http.StatusNoContent, ""))
	s := newTestService(t, transport)

	resp, err := Invoke[testResult](context.Background(), s, NewRequestBuilder("DeleteThing", http.MethodDelete))
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Result)
	assert.Equal(t, testResult{}, *resp.Result)
}

func TestInvokeEmptyBodyYieldsEmptyMap(t *testing.T) {
	transport := watsontest.NewRecordingTransport(
		watsontest.JSONReply(http.StatusNoContent, ""),
		watsontest.JSONReply(http.StatusOK, `["not", "an", "object"]`),
	)
	s := newTestService(t, transport)

	for i := 0; i < 2; i++ {
		resp, err := Invoke[map[string]interface{}](context.Background(), s, NewRequestBuilder("DeleteThings", http.MethodDelete))
		require.NoError(t, err)
		require.NotNil(t, resp.Result)
		assert.NotNil(t, *resp.Result)
		assert.Empty(t, *resp.Result)
	}
}

func TestInvokeUndecodableBodyYieldsEmptyResult(t *testing.T) {
	transport := watsontest.NewRecordingTransport(
		watsontest.JSONReply(http.StatusOK, `{"name": 42, "count": "three"}`),
	)
	s := newTestService(t, transport)

	resp, err := Invoke[testResult](context.Background(), s, NewRequestBuilder("GetThing", http.MethodGet))
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.Equal(t, testResult{}, *resp.Result)
	assert.Equal(t, `{"name": 42, "count": "three"}`, string(resp.RawResult))
}

func TestInvokeNonSuccessIsNotMasked(t *testing.T) {
	transport := watsontest.NewRecordingTransport(
		watsontest.JSONReply(http.StatusInternalServerError, `<html>oops</html>`),
	)
	s := newTestService(t, transport)

	resp, err := Invoke[testResult](context.Background(), s, NewRequestBuilder("GetThing", http.MethodGet))
	assert.Nil(t, resp)
	var sErr *ServerError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, "test-service", sErr.Service)
}

func TestInvokeNotFound(t *testing.T) {
	transport := watsontest.NewRecordingTransport(
		watsontest.JSONReply(http.StatusNotFound, `{"code":404,"error":"Resource not found"}`),
	)
	s := newTestService(t, transport)

	_, err := Invoke[testResult](context.Background(), s, NewRequestBuilder("GetThing", http.MethodGet))
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Resource not found", nfErr.Message)
}

func TestInvokeNetworkErrorExposesFirstCause(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	transport.Err = errors.Join(syscall.ECONNREFUSED, errors.New("second"))
	s := newTestService(t, transport)

	_, err := Invoke[testResult](context.Background(), s, NewRequestBuilder("GetThing", http.MethodGet))
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, syscall.ECONNREFUSED, netErr.Cause)
	assert.True(t, errors.Is(err, syscall.ECONNREFUSED))
}

func TestInvokeContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s, err := NewBaseService(testInfo, "2019-07-12", WithURL(server.URL), WithBasicAuth("u", "p"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Invoke[testResult](ctx, s, NewRequestBuilder("GetThing", http.MethodGet))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestInvokeBasicAuthOnly(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	s := newTestService(t, transport)

	b := NewRequestBuilder("GetThing", http.MethodGet).
		WithHeaders(map[string]string{"Authorization": "Bearer sneaky"})
	_, err := Invoke[testResult](context.Background(), s, b)
	require.NoError(t, err)

	auth := transport.Last().Header.Values("Authorization")
	require.Len(t, auth, 1)
	assert.Equal(t, "Basic dXNlcjpwYXNz", auth[0])
}

func TestInvokeBearerAuthOnly(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	s := newTestService(t, transport, WithBearerToken("tok"))

	_, err := Invoke[testResult](context.Background(), s, NewRequestBuilder("GetThing", http.MethodGet))
	require.NoError(t, err)

	auth := transport.Last().Header.Values("Authorization")
	require.Len(t, auth, 1)
	assert.Equal(t, "Bearer tok", auth[0])
}

type failingProvider struct{}

func (failingProvider) Token(context.Context) (string, error) {
	return "", &TokenError{SDKError: SDKError{Message: "no token"}}
}

func TestInvokeTokenFailureSendsNothing(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	s := newTestService(t, transport, WithAuthenticator(&BearerTokenAuthenticator{Provider: failingProvider{}}))

	_, err := Invoke[testResult](context.Background(), s, NewRequestBuilder("GetThing", http.MethodGet))
	var tokErr *TokenError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, 0, transport.Len())
}

func TestInvokeHeaderPrecedence(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	s := newTestService(t, transport, WithHeaders(map[string]string{
		"X-Watson-Learning-Opt-Out": "true",
		"X-Default":                 "service",
	}))

	b := NewRequestBuilder("GetThing", http.MethodGet).WithHeaders(map[string]string{
		"X-Default":                "call",
		"X-IBMCloud-SDK-Analytics": "custom",
		"X-Watson-Test":            "1",
	})
	_, err := Invoke[testResult](context.Background(), s, b)
	require.NoError(t, err)

	h := transport.Last().Header
	assert.Equal(t, "true", h.Get("X-Watson-Learning-Opt-Out"))
	assert.Equal(t, "call", h.Get("X-Default"))
	assert.Equal(t, "custom", h.Get("X-IBMCloud-SDK-Analytics"))
	assert.Equal(t, "1", h.Get("X-Watson-Test"))
}

func TestInvokeCustomHeaderProvider(t *testing.T) {
	transport := watsontest.NewRecordingTransport()
	s := newTestService(t, transport, WithHeaderProvider(func(service, version, operation string) map[string]string {
		return map[string]string{"X-Op": service + "/" + version + "/" + operation}
	}))

	_, err := Invoke[testResult](context.Background(), s, NewRequestBuilder("GetThing", http.MethodGet))
	require.NoError(t, err)
	assert.Equal(t, "test-service/v1/GetThing", transport.Last().Header.Get("X-Op"))
	assert.Empty(t, transport.Last().Header.Get("X-IBMCloud-SDK-Analytics"))
}

func TestInvokeRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	transport := watsontest.NewRecordingTransport(
		watsontest.JSONReply(http.StatusOK, `{}`),
		watsontest.JSONReply(http.StatusNotFound, `{"error":"nope"}`),
	)
	s := newTestService(t, transport, WithMetrics(m))

	_, err = Invoke[testResult](context.Background(), s, NewRequestBuilder("GetThing", http.MethodGet))
	require.NoError(t, err)
	_, err = Invoke[testResult](context.Background(), s, NewRequestBuilder("GetThing", http.MethodGet))
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("test-service", "GetThing", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("test-service", "GetThing", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestNewMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

package core

import (
	"context"
	"io"
	"net/http"
	"reflect"
	"time"

	json "github.com/goccy/go-json"
)

// DetailedResponse wraps the decoded result of a call together with the HTTP
// status and headers. Result is never nil for a successful call.
type DetailedResponse[T any] struct {
	StatusCode int
	Headers    http.Header
	Result     *T
	RawResult  []byte
}

// TransactionID returns the Watson global transaction id of the call.
func (r *DetailedResponse[T]) TransactionID() string {
	return r.Headers.Get("X-Global-Transaction-Id")
}

// Invoke executes the call described by b against s and decodes a 2xx reply
// into T. An empty or undecodable 2xx body yields a zero-value result rather
// than an error; non-2xx replies are returned as typed service errors.
func Invoke[T any](ctx context.Context, s *BaseService, b *RequestBuilder) (*DetailedResponse[T], error) {
	if s.info.Versioned {
		b.query.Set("version", s.version)
	}

	req, err := b.build(ctx, s.url)
	if err != nil {
		return nil, err
	}

	for k, v := range s.headerProvider(s.info.HeaderName, s.info.APIVersion, b.operation) {
		req.Header.Set(k, v)
	}
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}
	for k, v := range b.overrides {
		req.Header.Set(k, v)
	}
	req.Header.Del("Authorization")

	start := time.Now()
	log := s.logger.With().
		Str("service", s.info.HeaderName).
		Str("operation", b.operation).
		Logger()

	if err := s.auth.Authenticate(ctx, req); err != nil {
		s.metrics.observe(s.info.HeaderName, b.operation, 0, time.Since(start))
		return nil, err
	}

	resp, err := s.transport.Do(req)
	if err != nil {
		cause := firstCause(err)
		s.metrics.observe(s.info.HeaderName, b.operation, 0, time.Since(start))
		log.Debug().Err(cause).Str("method", req.Method).Str("path", req.URL.Path).Msg("request failed")
		return nil, &NetworkError{SDKError: SDKError{Message: b.operation + " request failed", Cause: cause}}
	}
	defer resp.Body.Close()

	elapsed := time.Since(start)
	s.metrics.observe(s.info.HeaderName, b.operation, resp.StatusCode, elapsed)
	log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, buildErrorFromResponse(resp, s.info.HeaderName)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{SDKError: SDKError{Message: "failed to read response", Cause: firstCause(err)}}
	}

	result := emptyResult[T]()
	if len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			log.Warn().Err(err).Int("status", resp.StatusCode).Msg("response body did not match result type; returning empty result")
			result = emptyResult[T]()
		}
	}

	return &DetailedResponse[T]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Result:     result,
		RawResult:  body,
	}, nil
}

// emptyResult returns a zero T. Map results are allocated so callers can
// index them without a nil check.
func emptyResult[T any]() *T {
	result := new(T)
	if v := reflect.ValueOf(result).Elem(); v.Kind() == reflect.Map {
		v.Set(reflect.MakeMap(v.Type()))
	}
	return result
}

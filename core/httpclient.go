package core

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// Transport sends a single HTTP request. *http.Client satisfies it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPTransport creates a net/http based Transport with default timeouts.
func NewHTTPTransport() Transport {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second, // connect timeout
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 120 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   120 * time.Second, // request timeout
	}
}

// firstCause strips url.Error and joined-error wrappers down to the first
// concrete failure.
func firstCause(err error) error {
	for {
		switch e := err.(type) {
		case *url.Error:
			if e.Err == nil {
				return err
			}
			err = e.Err
		case interface{ Unwrap() []error }:
			errs := e.Unwrap()
			if len(errs) == 0 {
				return err
			}
			err = errs[0]
		default:
			return err
		}
	}
}

// parseRetryAfter parses a Retry-After header value.
// Supports both seconds and HTTP-date formats.
func parseRetryAfter(value string) *float64 {
	if value == "" {
		return nil
	}

	if seconds, err := strconv.ParseFloat(value, 64); err == nil {
		return &seconds
	}

	for _, layout := range []string{time.RFC1123, time.RFC850} {
		if t, err := time.Parse(layout, value); err == nil {
			seconds := time.Until(t).Seconds()
			if seconds < 0 {
				seconds = 0
			}
			return &seconds
		}
	}

	return nil
}

// errorMessagePaths lists where the Watson services put a human-readable
// message, in lookup order.
var errorMessagePaths = []string{
	"errors.0.message",
	"error.message",
	"error",
	"message",
	"errorMessage",
	"description",
}

// errorDetails pulls a message and error code out of a Watson error body.
func errorDetails(body []byte) (message, code string) {
	if !gjson.ValidBytes(body) {
		return "", ""
	}
	for _, path := range errorMessagePaths {
		if r := gjson.GetBytes(body, path); r.Type == gjson.String && r.Str != "" {
			message = r.Str
			break
		}
	}
	for _, path := range []string{"errors.0.code", "error.code", "code"} {
		if r := gjson.GetBytes(body, path); r.Exists() && r.Type != gjson.JSON {
			code = r.String()
			break
		}
	}
	return message, code
}

// buildErrorFromResponse creates an appropriate error from a non-2xx response.
func buildErrorFromResponse(resp *http.Response, service string) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{SDKError: SDKError{
			Message: "failed to read error response body",
			Cause:   err,
		}}
	}

	message, code := errorDetails(body)
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))

	return ErrorFromStatusCode(resp.StatusCode, message, service, code, resp.Header, body, retryAfter)
}

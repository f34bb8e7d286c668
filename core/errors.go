package core

import (
	"errors"
	"fmt"
	"net/http"
)

// SDKError is the base error type for all errors returned by this module.
type SDKError struct {
	Message string
	Cause   error
}

func (e *SDKError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *SDKError) Unwrap() error { return e.Cause }

// ArgumentError reports a missing or invalid argument. It is always returned
// before any network activity.
type ArgumentError struct {
	SDKError
	Parameter string
	Operation string
}

func newArgumentError(parameter, operation string) *ArgumentError {
	return &ArgumentError{
		SDKError:  SDKError{Message: fmt.Sprintf("%s is required for %s", parameter, operation)},
		Parameter: parameter,
		Operation: operation,
	}
}

// NetworkError reports a transport-level failure. Cause is the first concrete
// error the transport produced.
type NetworkError struct{ SDKError }

// TokenError reports a failure to obtain an access token.
type TokenError struct{ SDKError }

// ServiceError is returned for any non-2xx reply from a Watson service.
type ServiceError struct {
	SDKError
	Service       string
	StatusCode    int
	Code          string
	TransactionID string
	Headers       http.Header
	Raw           []byte
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Service, e.StatusCode, e.Message)
}

func (e *ServiceError) serviceError() *ServiceError { return e }

// AsServiceError finds the ServiceError carried by err, whichever
// status-specific wrapper holds it.
func AsServiceError(err error) (*ServiceError, bool) {
	var target interface{ serviceError() *ServiceError }
	if errors.As(err, &target) {
		return target.serviceError(), true
	}
	return nil, false
}

// InvalidRequestError is returned for HTTP 400.
type InvalidRequestError struct{ ServiceError }

// AuthenticationError is returned for HTTP 401.
type AuthenticationError struct{ ServiceError }

// AccessDeniedError is returned for HTTP 403.
type AccessDeniedError struct{ ServiceError }

// NotFoundError is returned for HTTP 404.
type NotFoundError struct{ ServiceError }

// ConflictError is returned for HTTP 409.
type ConflictError struct{ ServiceError }

// RequestTooLargeError is returned for HTTP 413.
type RequestTooLargeError struct{ ServiceError }

// RateLimitError is returned for HTTP 429. RetryAfter holds the server's
// Retry-After hint in seconds, when present.
type RateLimitError struct {
	ServiceError
	RetryAfter *float64
}

// ServerError is returned for HTTP 5xx.
type ServerError struct{ ServiceError }

// ErrorFromStatusCode builds the typed error matching statusCode.
func ErrorFromStatusCode(statusCode int, message, service, code string, headers http.Header, raw []byte, retryAfter *float64) error {
	base := ServiceError{
		SDKError:   SDKError{Message: message},
		Service:    service,
		StatusCode: statusCode,
		Code:       code,
		Headers:    headers,
		Raw:        raw,
	}
	if headers != nil {
		base.TransactionID = headers.Get("X-Global-Transaction-Id")
	}

	switch {
	case statusCode == http.StatusBadRequest:
		return &InvalidRequestError{ServiceError: base}
	case statusCode == http.StatusUnauthorized:
		return &AuthenticationError{ServiceError: base}
	case statusCode == http.StatusForbidden:
		return &AccessDeniedError{ServiceError: base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{ServiceError: base}
	case statusCode == http.StatusConflict:
		return &ConflictError{ServiceError: base}
	case statusCode == http.StatusRequestEntityTooLarge:
		return &RequestTooLargeError{ServiceError: base}
	case statusCode == http.StatusTooManyRequests:
		return &RateLimitError{ServiceError: base, RetryAfter: retryAfter}
	case statusCode >= 500:
		return &ServerError{ServiceError: base}
	default:
		return &base
	}
}

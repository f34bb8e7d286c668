package core

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateOptions checks an operation's options struct against its
// `validate` tags. The first failing field is reported as an ArgumentError
// naming that field and operation.
func ValidateOptions(operation string, opts interface{}) error {
	if opts == nil {
		return newArgumentError("options", operation)
	}
	if v := reflect.ValueOf(opts); v.Kind() == reflect.Ptr && v.IsNil() {
		return newArgumentError("options", operation)
	}

	if err := validate.Struct(opts); err != nil {
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) && len(valErrs) > 0 {
			return newArgumentError(valErrs[0].Field(), operation)
		}
		return &SDKError{Message: "invalid options for " + operation, Cause: err}
	}
	return nil
}

// RequireOneOf returns an ArgumentError unless at least one of set is true.
func RequireOneOf(operation, parameters string, set ...bool) error {
	for _, s := range set {
		if s {
			return nil
		}
	}
	return newArgumentError(parameters, operation)
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }

// Int64Ptr returns a pointer to i.
func Int64Ptr(i int64) *int64 { return &i }

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 { return &f }

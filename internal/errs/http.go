// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures..
// (e.g. FieldErrors for validation or HTTPError for API responses)..
// to ensure the client receive meaningful and consistent..
// error messages.
//
// - Return one consistent error shape to API clients: {"error": "<message>"}.
// - Keep field-level validation details for the operator logs.
// - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "name").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Only Message is serialized; the client always receives
//
//	{ "error": "Item not found." }
//
// Status and Code drive the response status and the logs, Errors carries
// field-level validation detail for the logs.
type HTTPError struct {
	Code    string `json:"-"`
	Message string `json:"error"`
	Status  int    `json:"-"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError with the same status.
//
// A zero-status target matches any *HTTPError.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}

	return t.Status == 0 || t.Status == e.Status
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

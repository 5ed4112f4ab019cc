package errs

import (
	"net/http"
)

// Client-facing messages. These strings are part of the public API.
const (
	MessageItemRequired   = "Name and description are required."
	MessageItemNotFound   = "Item not found."
	MessageRouteNotFound  = "Route not found."
	MessageRateLimited    = "Rate limit exceeded."
	MessageInternalServer = "Internal server error."
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// errors is optional field-level detail (logged, never sent to the client).
func NewBadRequestError(message string, errors []FieldError) *HTTPError {
	return &HTTPError{
		// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports an optional custom code (e.g. "ROUTE_NOT_FOUND").
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is always the generic one; the real cause only goes to logs.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: MessageInternalServer,
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError converts item payload validation failures into the 400
// every create/update caller receives.
func ValidationError(fieldErrors []FieldError) *HTTPError {
	return NewBadRequestError(MessageItemRequired, fieldErrors)
}

// ItemNotFound is returned for unknown ids on get/update/delete.
func ItemNotFound() *HTTPError {
	return NewNotFoundError(MessageItemNotFound, nil)
}

var routeNotFoundCode = "ROUTE_NOT_FOUND"

// RouteNotFound is returned for unregistered method/path combinations.
func RouteNotFound() *HTTPError {
	return NewNotFoundError(MessageRouteNotFound, &routeNotFoundCode)
}

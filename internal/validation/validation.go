package validation

import (
	"fmt"
	"mime"
	"strings"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required"`)
// - Implement Validate() error that runs validation.Struct(req)
type Validatable interface {
	Validate() error
}

var binder = &echo.DefaultBinder{}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. Path params (`param:"..."` tags) are bound.
//  2. The body is decoded only when it is declared as JSON; any other
//     content type leaves the payload fields empty.
//  3. payload.Validate() applies validation rules.
//
// A failed validation yields a 400 ValidationError carrying field-level
// detail. A body that does not decode is not a client error here: it comes
// back as a plain error and ends as the generic 500.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := binder.BindPathParams(c, payload); err != nil {
		return fmt.Errorf("failed to bind path params: %w", err)
	}

	if isJSON(c.Request().Header.Get(echo.HeaderContentType)) {
		if err := binder.BindBody(c, payload); err != nil {
			// %v drops Echo's 400 so the global error handler answers 500.
			return errors.Errorf("failed to decode JSON body: %v", err)
		}
	}

	if err := payload.Validate(); err != nil {
		fieldErrors, ok := extractValidationError(err)
		if !ok {
			return err
		}
		return errs.ValidationError(fieldErrors)
	}

	return nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == echo.MIMEApplicationJSON
}

// extractValidationError converts validator errors into field errors.
// ok is false for any other error.
func extractValidationError(err error) (fieldErrors []errs.FieldError, ok bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		var msg string

		switch e.Tag() {
		case "required":
			msg = "is required"
		case "text":
			msg = "must be a non-empty string"
		default:
			if e.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, e.Tag(), e.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, e.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors, true
}

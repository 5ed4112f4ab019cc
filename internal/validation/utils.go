// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields) defined in struct tags and extracts
// validation errors into a format that can be logged and
// reported to the client
package validation

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance with the custom tags
// registered. validator.Validate caches struct metadata and is safe for
// concurrent use.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// "text" accepts only non-empty strings. On free-form JSON fields
		// (any) "required" only rejects a missing or null value, so the
		// empty string is caught here.
		_ = validate.RegisterValidation("text", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			return field.Kind() == reflect.String && field.Len() > 0
		})
	})

	return validate
}

// Struct validates v against its `validate` tags using the shared validator.
func Struct(v any) error {
	return Validator().Struct(v)
}

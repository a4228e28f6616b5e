// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules (like required fields or
// email formats) defined in struct tags, and extracts validation errors
// into a format the client can understand.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/stafflane/employee-api/internal/errs"
)

// validate is the shared validator instance. validator.Validate caches
// struct metadata, so a single instance is reused across requests.
var validate = validator.New()

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - define a request struct with validator tags (`validate:"required,email"`)
//   - implement Validate() error that calls validation.Struct(req)
type Validatable interface {
	Validate() error
}

// Struct runs struct-tag validation against v.
// The returned error is validator.ValidationErrors on failure.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from path params, query, and body
//  2. payload.Validate() applies the validation rules
//  3. returns a 400 *errs.HTTPError with field-level errors on failure
//
// payload must be a pointer so echo's binder can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Malformed request payload", false, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError converts validator.ValidationErrors into
// user-friendly per-field messages.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a tag failure; report the whole payload as invalid.
		return "Validation failed", []errs.FieldError{
			{Field: "payload", Error: err.Error()},
		}
	}

	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		var msg string

		switch fieldErr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// For strings min constrains length, for numbers the value.
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fieldErr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fieldErr.Param())
			}

		case "max":
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fieldErr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fieldErr.Param())
			}

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", fieldErr.Param())

		case "email":
			msg = "must be a valid email address"

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fieldErr.Param())

		default:
			if fieldErr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fieldErr.Tag(), fieldErr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fieldErr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

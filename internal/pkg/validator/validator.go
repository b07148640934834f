// Package validator provides a thin wrapper around the go-playground/validator
// library, enabling declarative struct validation with standardized error
// formatting. Fields are validated via struct tags (e.g. `validate:"required"`)
// and violations are reported as a combined error chain.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain
// when validation fails. It lets callers detect validation failures with
// errors.Is even when multiple field errors are present.
var ErrValidationFailed = errors.New("struct validation failed")

// validate is the singleton go-playground validator instance.
var validate *gvalidator.Validate

// errStringFormat describes a single field violation.
//
// Example: "'Address': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError turns a raw validator error into a structured multi-error chain
// rooted at ErrValidationFailed. Non-validation errors pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks whether the given struct satisfies its validation tags.
// It returns nil on success, or a combined error including ErrValidationFailed
// and one formatted message per failing field.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}
	return nil
}

// Package validator adapts the profile validation rules to echo.
package validator

import (
	domainerrors "unifeast/internal/domain/errors"
	"unifeast/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the profile rules registered.
func New() *CustomValidator {
	return &CustomValidator{validate: usecase.NewValidator()}
}

// Validate reports every failing field in one VALIDATION_FAILED error.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(usecase.DescribeValidationError(err))
	}

	return nil
}

// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "medifinder/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request payloads.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates the request validator.
func New() *RequestValidator {
	return &RequestValidator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

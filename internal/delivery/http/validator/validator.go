// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates request structs by their `validate` tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates a RequestValidator.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

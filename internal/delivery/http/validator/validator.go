// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the request validator installed on the echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

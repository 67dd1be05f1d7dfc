// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request bodies.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a single validator instance; the instance caches
// struct metadata and is safe for concurrent use.
type Validator struct {
	validate *playground.Validate
}

// New creates the echo-compatible validator.
func New() *Validator {
	return &Validator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

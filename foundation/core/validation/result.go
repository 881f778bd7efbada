// File: result.go
// Title: Validation Result Types
// Description: ValidationResult and ValidationError with conversion to the
//              autonum error type.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial validation interfaces implementation
// - 2026-10-19 v0.2.0: Added warnings

package validation

import (
	"context"
	"fmt"
	"strings"

	anerror "github.com/msto63/autonum/foundation/core/error"
)

// Validator defines the interface for all validation rules
type Validator interface {
	Validate(value interface{}) ValidationResult
	ValidateWithContext(ctx context.Context, value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidateWithContext implements Validator. Function rules are not cancellable.
func (f ValidatorFunc) ValidateWithContext(_ context.Context, value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid    bool                   `json:"valid"`
	Errors   []ValidationError      `json:"errors,omitempty"`
	Warnings []string               `json:"warnings,omitempty"`
	Context  map[string]interface{} `json:"context,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Code     anerror.Code `json:"code"`
	Field    string       `json:"field,omitempty"`
	Message  string       `json:"message"`
	Value    interface{}  `json:"value,omitempty"`
	Expected interface{}  `json:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewFieldError creates a failed validation result for one field
func NewFieldError(field, message string, value interface{}) ValidationResult {
	r := NewValidationResult()
	r.AddFieldError(anerror.CodeValidationFailed, field, message, value)
	return r
}

// AddFieldError adds a field-specific error to the validation result
func (r *ValidationResult) AddFieldError(code anerror.Code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// AddWarning records a non-fatal finding. Warnings never invalidate a result.
func (r *ValidationResult) AddWarning(format string, args ...interface{}) *ValidationResult {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
	return r
}

// WithContext adds context information to the validation result
func (r *ValidationResult) WithContext(key string, value interface{}) *ValidationResult {
	if r.Context == nil {
		r.Context = make(map[string]interface{})
	}
	r.Context[key] = value
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// HasFieldError reports whether any error concerns field
func (r ValidationResult) HasFieldError(field string) bool {
	for _, err := range r.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// ToError converts the validation result to an autonum error.
// It returns nil if validation passed. The first error becomes the message,
// the rest are attached as details.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	if len(r.Errors) == 0 {
		return anerror.New("validation failed").
			WithCode(anerror.CodeValidationFailed).
			WithDetail("class", "ValidationError")
	}

	first := r.Errors[0]
	code := first.Code
	if code == "" {
		code = anerror.CodeValidationFailed
	}
	err := anerror.New(first.Message).
		WithCode(code).
		WithDetail("class", "ValidationError")

	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}

	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
		err = err.WithDetail("allMessages", r.ErrorMessages())
	}

	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return fmt.Sprintf("ValidationResult{valid: true, warnings: %d}", len(r.Warnings))
	}

	parts := []string{
		"ValidationResult{valid: false",
		fmt.Sprintf("errors: %d", len(r.Errors)),
	}
	if first := r.FirstError(); first != nil {
		parts = append(parts, fmt.Sprintf("first: %s", first.Message))
		if first.Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", first.Field))
		}
	}
	return strings.Join(parts, ", ") + "}"
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()

	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
		combined.Warnings = append(combined.Warnings, result.Warnings...)
		for key, value := range result.Context {
			combined.WithContext(key, value)
		}
	}

	return combined
}

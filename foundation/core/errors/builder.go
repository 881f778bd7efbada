// File: builder.go
// Title: Fluent Error Builder
// Description: ErrorBuilder assembles module errors step by step. It is used
//              where a failure carries a cause or several details.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-19 v0.2.0: Codes are now typed

package errors

import (
	"fmt"

	anerror "github.com/msto63/autonum/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	code      anerror.Code
	severity  *anerror.Severity
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    anerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code anerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity anerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Build creates the error
func (eb *ErrorBuilder) Build() *anerror.Error {
	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s failed", eb.module)
		}
	}

	var err *anerror.Error
	if eb.cause != nil {
		err = anerror.Wrap(eb.cause, message)
	} else {
		err = anerror.New(message)
	}

	if eb.code != anerror.CodeUnknown {
		err = err.WithCode(eb.code)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}

	err = err.WithDetail("module", eb.module).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithDetail("operation", eb.operation).WithOperation(eb.module + "." + eb.operation)
	}
	return err
}

// File: standards.go
// Title: Standard Error Classes
// Description: Constructors for the four failure classes of the numeric core
//              plus a fluent builder for the less common cases.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: Validation, OutOfRange, Parse and InvalidInput

package errors

import (
	"fmt"

	anerror "github.com/msto63/autonum/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleOptions   = "options"
	ModuleNormalize = "normalize"
	ModuleFormat    = "format"
	ModuleRounding  = "rounding"
	ModuleAutonum   = "autonum"
	ModuleConfig    = "config"
	ModuleMathx     = "mathx"
)

// Class names as reported in the "class" detail
const (
	ClassValidation = "ValidationError"
	ClassRange      = "RangeError"
	ClassParse      = "ParseError"
	ClassValue      = "ValueError"
)

// Validation creates a ValidationError for an option that failed its domain check.
func Validation(module, field string, value interface{}, message string) *anerror.Error {
	return anerror.New(message).
		WithCode(anerror.CodeValidationFailed).
		WithOperation(module + ".validate").
		WithDetails(map[string]interface{}{
			"module": module,
			"class":  ClassValidation,
			"field":  field,
			"value":  value,
		})
}

// UnknownOption creates a ValidationError for an option key that is not part of the schema.
func UnknownOption(module, key string) *anerror.Error {
	return anerror.New(fmt.Sprintf("option name '%s' is unknown", key)).
		WithCode(anerror.CodeUnknownOption).
		WithOperation(module + ".validate").
		WithDetails(map[string]interface{}{
			"module": module,
			"class":  ClassValidation,
			"field":  key,
		})
}

// OutOfRange creates a RangeError for a value outside [min, max].
func OutOfRange(module, value, min, max string) *anerror.Error {
	return anerror.New(fmt.Sprintf("the value [%s] is out of range [%s, %s]", value, min, max)).
		WithCode(anerror.CodeValueOutOfRange).
		WithOperation(module + ".range").
		WithDetails(map[string]interface{}{
			"module": module,
			"class":  ClassRange,
			"value":  value,
			"min":    min,
			"max":    max,
		})
}

// Parse creates a ParseError for input that cannot be read as a number.
func Parse(module string, input interface{}, reason string) *anerror.Error {
	return anerror.New(fmt.Sprintf("cannot parse %q: %s", fmt.Sprint(input), reason)).
		WithCode(anerror.CodeParseError).
		WithOperation(module + ".parse").
		WithDetails(map[string]interface{}{
			"module": module,
			"class":  ClassParse,
			"input":  input,
		})
}

// InvalidInput creates a ValueError for input of the wrong kind.
func InvalidInput(module, operation string, input interface{}, expected string) *anerror.Error {
	return anerror.New(fmt.Sprintf("invalid input for %s.%s: expected %s", module, operation, expected)).
		WithCode(anerror.CodeInvalidInput).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":   module,
			"class":    ClassValue,
			"input":    input,
			"expected": expected,
		})
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	return anerror.HasCode(err, anerror.CodeValidationFailed) ||
		anerror.HasCode(err, anerror.CodeUnknownOption)
}

// IsRange reports whether err is a RangeError
func IsRange(err error) bool {
	return anerror.HasCode(err, anerror.CodeValueOutOfRange)
}

// IsParse reports whether err is a ParseError
func IsParse(err error) bool {
	return anerror.HasCode(err, anerror.CodeParseError)
}

// IsValue reports whether err is a ValueError
func IsValue(err error) bool {
	return anerror.HasCode(err, anerror.CodeInvalidInput)
}

// ClassOf returns the failure class name of err, or "" for foreign errors.
func ClassOf(err error) string {
	switch {
	case IsValidation(err):
		return ClassValidation
	case IsRange(err):
		return ClassRange
	case IsParse(err):
		return ClassParse
	case IsValue(err):
		return ClassValue
	default:
		return ""
	}
}

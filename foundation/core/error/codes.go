// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across autonum. The numeric core
//              maps its failure classes onto these codes: ValidationError,
//              RangeError, ParseError and ValueError.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Added parse, unknown option and division codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Input classification
	CodeInvalidInput   Code = "INVALID_INPUT"
	CodeParseError     Code = "PARSE_ERROR"
	CodeInvalidFormat  Code = "INVALID_FORMAT"
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeUnknownOption    Code = "UNKNOWN_OPTION"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidInput, CodeParseError, CodeInvalidFormat, CodeDivisionByZero,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeUnknownOption, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeParseError, CodeInvalidFormat, CodeDivisionByZero:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeUnknownOption, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation":
		return 2
	case "input":
		return 3
	case "configuration":
		return 4
	default:
		return 1
	}
}

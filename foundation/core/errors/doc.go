// Package errors provides the standard error constructors for autonum.
//
// Package: errors
// Title: Standard Error Constructors for autonum
// Description: Every failure of the numeric core belongs to one of four
//              classes: ValidationError (bad option values), RangeError
//              (value outside minimumValue/maximumValue), ParseError
//              (unparseable or ambiguous input) and ValueError (wrong input
//              kind). This package builds those errors on top of the core
//              error type so that callers can classify them with IsValidation,
//              IsRange, IsParse and IsValue.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Reduced to the four numeric failure classes
//
// Usage:
//
//	err := errors.Validation(errors.ModuleOptions, "decimalCharacter", v,
//		"decimalCharacter must be one of '.', ',', '·', '٫'")
//	if errors.IsValidation(err) {
//		// report to the caller
//	}
package errors

// Package error provides structured error handling for the autonum foundation.
//
// Package: error
// Title: autonum Error Handling Framework
// Description: This package implements a structured error type with codes,
//              severity levels and contextual details. The numeric formatting
//              core reports its four failure classes (validation, range,
//              parse and value errors) through it so callers can branch on a
//              stable code instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Numeric formatting taxonomy (range, parse, value codes)
//
// Usage:
//
//	import anerror "github.com/msto63/autonum/foundation/core/error"
//
//	err := anerror.New("value is out of range").
//		WithCode(anerror.CodeValueOutOfRange).
//		WithOperation("rounding.CheckRange").
//		WithDetail("value", "1111111111111.111")
//
//	if anerror.HasCode(err, anerror.CodeValueOutOfRange) {
//		// keep the previous value
//	}
package error

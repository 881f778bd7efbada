// ============================================================================
// autonum - Locale-aware numeric formatting
// ============================================================================
//
// Package:     rounding
// Description: Decimal rounding and range enforcement on raw numeric strings
// Author:      Mike Stoffels
// Created:     2026-09-29
// License:     MIT
// ============================================================================

// Package rounding rounds raw numeric strings with the thirteen supported
// methods and enforces minimum/maximum limits.
//
// All arithmetic is done on digit strings or exact rationals, so the result
// never depends on binary floating point:
//
//	out, err := rounding.Round("1.005", 2, rounding.HalfUpSymmetric) // "1.01"
//
// An Engine bundles method, precision and limits for one settings value.
package rounding

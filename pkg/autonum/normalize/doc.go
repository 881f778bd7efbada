// ============================================================================
// autonum - Locale-aware numeric formatting
// ============================================================================
//
// Package:     normalize
// Description: Conversions between raw numeric strings and localized text
// Author:      Mike Stoffels
// Created:     2026-09-29
// License:     MIT
// ============================================================================

// Package normalize converts between the canonical raw numeric string
// (-?\d+(\.\d+)?) and localized digit, sign and decimal conventions.
//
// Raw values never leave string form here, so integers beyond 2^53 survive
// every conversion except an explicit request for a float64.
package normalize

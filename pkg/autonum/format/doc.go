// ============================================================================
// autonum - Locale-aware numeric formatting
// ============================================================================
//
// Package:     format
// Description: Formatter and unformatter between raw values and display text
// Author:      Mike Stoffels
// Created:     2026-09-30
// License:     MIT
// ============================================================================

// Package format renders raw numeric strings for display and parses display
// strings back into raw form, driven by a validated *options.Settings.
//
// Format rounds, range checks, groups, places the sign and currency, and
// appends the scale symbol and suffix text:
//
//	s, _ := options.Validate(options.Predefined()["euro"], nil)
//	out, _ := format.Format("-1234.567", s) // "-1.234,57\u202f€"
//
// Unformat reverses the rendering. It never guesses: residue that is not
// digits with at most one decimal point is a ParseError. UnformatLenient
// additionally drops currency symbols and whitespace it does not recognize.
package format

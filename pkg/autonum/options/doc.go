// ============================================================================
// autonum - Locale-aware numeric formatting
// ============================================================================
//
// Package:     options
// Description: Option schema, validation, legacy migration and presets
// Author:      Mike Stoffels
// Created:     2026-09-29
// License:     MIT
// ============================================================================

// Package options turns a loose option map into an immutable, typed Settings
// record.
//
// The pipeline is: defaults, merged user overrides, legacy key translation,
// per-key validation, cross-field validation and finally derivation of the
// effective decimal places and sign placement.
//
//	s, err := options.Validate(options.Options{
//		"digitGroupSeparator": ".",
//		"decimalCharacter":    ",",
//		"currencySymbol":      "\u202f€",
//		"currencySymbolPlacement": "s",
//	}, logger)
//
// Settings values are never mutated. Updates go through Merge, which runs the
// whole pipeline again and yields a new pointer, so readers need no locking.
//
// Warnings (legacy keys, unknown keys, suspicious precision combinations) go
// to the structured logger at warn level when showWarnings is true. They are
// never returned as errors.
package options

// ============================================================================
// autonum - Locale-aware numeric formatting
// ============================================================================
//
// Package:     autonum
// Description: Static API, formatter instances and instance groups
// Author:      Mike Stoffels
// Created:     2026-10-02
// License:     MIT
// ============================================================================

// Package autonum formats raw numeric strings for display and parses display
// strings back, following configurable grouping, decimal, currency, sign and
// rounding conventions.
//
// The static functions work on one value at a time:
//
//	out, err := autonum.Format(1234.56, options.Options{"currencySymbol": "$"})
//	// *out == "$1,234.56"
//
//	raw, err := autonum.Unformat("$1,234.56")
//	// raw == "1234.56"
//
// An Instance holds one value together with its settings and keeps the raw
// numeric string as the single source of truth:
//
//	n, err := autonum.New(6789.02, autonum.WithPreset("euro"))
//	n.GetFormatted()    // "6.789,02 €"
//	n.GetNumericString() // "6789.02"
//
// An Instance is single-writer. Reads may run concurrently, but interleaving
// Set and Update from several goroutines needs external ordering. Settings
// themselves are immutable; Update swaps in a new *options.Settings.
//
// A Group applies one operation to several instances in the order they
// joined and stops at the first failing member.
package autonum

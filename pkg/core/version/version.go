// ============================================================================
// autonum - Locale-aware numeric formatting
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-09-28
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Library version of pkg/autonum
	Library = "0.3.0"

	// CLI version of cmd/autonum
	CLI = "0.3.0"

	// OptionSchema is bumped whenever an option key or value domain changes
	OptionSchema = "4.6.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "autonum":
		return CLI
	case "options", "schema":
		return OptionSchema
	default:
		return Library
	}
}

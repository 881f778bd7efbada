// Package config loads option documents for autonum.
//
// Package: config
// Title: Option Document Loading
// Description: Reads TOML and YAML documents into a thread-safe key/value
//              store with dot-notation access, environment overrides and
//              discovery of well-known file names. The CLI uses it to read
//              option sets and named preset files, and to write presets back
//              out in either format.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Encode support, null-preserving Sub, removed file watching
//
// Usage:
//
//	import anconfig "github.com/msto63/autonum/foundation/core/config"
//
//	doc, err := anconfig.Load("options.toml")
//	if err != nil {
//		return err
//	}
//	opts := doc.Sub("presets.euro")
package config

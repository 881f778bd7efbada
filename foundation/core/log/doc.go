// Package log provides structured logging for autonum.
//
// Package: log
// Title: autonum Structured Logging
// Description: A small structured logger with levels, JSON, text and logfmt
//              output, persistent context fields and integration with the
//              autonum error type. The option validator reports its
//              non-fatal warnings through it, and the CLI logs command
//              timings at debug level.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Removed async delivery and request scoped identifiers
//
// Usage:
//
//	import anlog "github.com/msto63/autonum/foundation/core/log"
//
//	logger := anlog.NewWithConfig(anlog.Config{
//		Level:  anlog.LevelWarn,
//		Format: anlog.FormatText,
//		Output: os.Stderr,
//		Name:   "options",
//	})
//	logger.Warn("option renamed", anlog.Fields{"from": "aSep", "to": "digitGroupSeparator"})
package log

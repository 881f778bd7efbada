// ============================================================================
// autonum - Locale-aware numeric formatting
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers
// Author:      Mike Stoffels
// Created:     2026-09-28
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	anlog "github.com/msto63/autonum/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, e.g. "autonum.options"
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format: "json", "text" or "logfmt" (default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs written alongside Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns the library default: text warnings on stderr
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *anlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return anlog.NewWithConfig(anlog.Config{
		Level:  parseLevel(cfg.Level),
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.Name,
	})
}

// NewComponentLogger creates a logger for one library component with the
// default configuration
func NewComponentLogger(name string) *anlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// parseLevel converts a string level, falling back to warn
func parseLevel(level string) anlog.Level {
	l, err := anlog.ParseLevel(level)
	if err != nil {
		return anlog.LevelWarn
	}
	return l
}

func parseFormat(format string) anlog.Format {
	switch strings.ToLower(format) {
	case "json":
		return anlog.FormatJSON
	case "logfmt":
		return anlog.FormatLogfmt
	default:
		return anlog.FormatText
	}
}

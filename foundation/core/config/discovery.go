// File: discovery.go
// Title: Option Document Discovery
// Description: Finds an option document among well-known paths so the CLI
//              can pick up project defaults without a flag.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: Optional discovery returns an empty document

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	anerror "github.com/msto63/autonum/foundation/core/error"
)

// DiscoveryOptions defines options for automatic document discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // File extensions to try
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a document is required
}

// DefaultDiscoveryOptions looks for autonum.{toml,yaml,yml} and
// .autonum.{toml,yaml,yml} in the working directory
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{"."},
		Filenames:  []string{"autonum", ".autonum"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// candidates lists every path in search order
func (o DiscoveryOptions) candidates() []string {
	paths := make([]string, 0, len(o.Paths)*len(o.Filenames)*len(o.Extensions))
	for _, dir := range o.Paths {
		for _, name := range o.Filenames {
			for _, ext := range o.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, p := range options.candidates() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", anerror.New("configuration file not found").
		WithCode(anerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", options.candidates())
}

// Discover loads the first document found. When none exists and the
// document is optional, an empty document is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, anerror.New(fmt.Sprintf("no configuration file found in paths: %s",
				strings.Join(options.candidates(), ", "))).
				WithCode(anerror.CodeNotFound).
				WithOperation("config.Discover")
		}
		return New(nil), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix})
	if err != nil {
		return nil, anerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

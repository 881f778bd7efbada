// ============================================================================
// autonum - Locale-aware numeric formatting
// ============================================================================
//
// Package:     config
// Description: CLI application configuration loaded from TOML
// Author:      Mike Stoffels
// Created:     2026-09-28
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	anerror "github.com/msto63/autonum/foundation/core/error"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Format  FormatConfig  `toml:"format"`
	Cache   CacheConfig   `toml:"cache"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// FormatConfig holds the defaults applied to every format/unformat command
type FormatConfig struct {
	Preset       string `toml:"preset"`
	OptionsFile  string `toml:"options_file"`
	OutputFormat string `toml:"output_format"`
	Currency     string `toml:"currency"`
	Locale       string `toml:"locale"`
}

// CacheConfig sizes the validated-settings cache of the static API
type CacheConfig struct {
	MaxItems int      `toml:"max_items"`
	TTL      Duration `toml:"ttl"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, anerror.New("config file not found: " + path).
			WithCode(anerror.CodeNotFound).
			WithOperation("config.Load")
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, anerror.Wrap(err, "failed to parse config").
			WithCode(anerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from AUTONUM_CONFIG or a default
// location. A missing file yields the defaults.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv("AUTONUM_CONFIG"); path != "" {
		return Load(path)
	}

	defaultPaths := []string{
		"./autonum.config.toml",
		filepath.Join(os.Getenv("HOME"), ".config/autonum/config.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Cache.MaxItems == 0 {
		c.Cache.MaxItems = 256
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 10 * time.Minute
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Format.OptionsFile = os.ExpandEnv(c.Format.OptionsFile)
}

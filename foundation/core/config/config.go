// File: config.go
// Title: Option Document Implementation
// Description: Implements the Config type for loading, parsing and
//              accessing TOML and YAML documents with environment variable
//              overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Encode, Sub and Keys for option documents

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	anerror "github.com/msto63/autonum/foundation/core/error"
)

// Format represents the document format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "", "auto":
		return FormatAuto, nil
	default:
		return FormatAuto, anerror.New(fmt.Sprintf("unsupported format: %s", s)).
			WithCode(anerror.CodeInvalidConfig).
			WithOperation("config.ParseFormat")
	}
}

// Config represents a loaded document with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading a document
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values
}

// Load loads a document from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads a document from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, anerror.New("config file path cannot be empty").
			WithCode(anerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := anerror.CodeConfigError
		if os.IsNotExist(err) {
			code = anerror.CodeNotFound
		}
		return nil, anerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, anerror.Wrap(err, "failed to parse config file").
			WithCode(anerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads a document from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, anerror.Wrap(err, "failed to parse config from string").
			WithCode(anerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

// New wraps an in-memory map as a document
func New(data map[string]interface{}) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Config{data: deepCopyMap(data), format: FormatTOML}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, anerror.Wrap(err, "TOML parse error").
				WithCode(anerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, anerror.Wrap(err, "YAML parse error").
				WithCode(anerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, anerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(anerror.CodeInvalidConfig).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return data, nil
}

// Encode writes data in the given format. TOML cannot express null, so
// nil values are left out of TOML output.
func Encode(data map[string]interface{}, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return nil, anerror.Wrap(err, "YAML encode error").
				WithCode(anerror.CodeConfigError).
				WithOperation("config.Encode")
		}
		if err := enc.Close(); err != nil {
			return nil, anerror.Wrap(err, "YAML encode error").
				WithCode(anerror.CodeConfigError).
				WithOperation("config.Encode")
		}
	default:
		if err := toml.NewEncoder(&buf).Encode(dropNil(data)); err != nil {
			return nil, anerror.Wrap(err, "TOML encode error").
				WithCode(anerror.CodeConfigError).
				WithOperation("config.Encode")
		}
	}

	return buf.Bytes(), nil
}

func dropNil(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case nil:
			continue
		case map[string]interface{}:
			dst[k] = dropNil(val)
		default:
			dst[k] = v
		}
	}
	return dst
}

func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		result[k] = v
	}
	return result
}

// GetString returns a string value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Sub returns a copy of the table stored under key, or nil when key does
// not name a table. Explicit nulls inside the table are preserved.
func (c *Config) Sub(key string) map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var table map[string]interface{}
	if key == "" {
		table = c.data
	} else if m, ok := c.getValue(key).(map[string]interface{}); ok {
		table = m
	}
	if table == nil {
		return nil
	}
	return deepCopyMap(table)
}

// Keys returns the sorted keys of the table under key ("" for the root)
func (c *Config) Keys(key string) []string {
	table := c.Sub(key)
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// getValue resolves a dot-notation key
func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := strings.Split(key, ".")

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts a key to its environment variable name:
// presets.euro.decimalCharacter -> PREFIX_PRESETS_EURO_DECIMALCHARACTER
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(c.envPrefix) + "_" + envKey
}

// Has checks if a key exists, including keys explicitly set to null
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := strings.LastIndex(key, ".")
	parent := c.data
	if idx >= 0 {
		m, ok := c.getValue(key[:idx]).(map[string]interface{})
		if !ok {
			return false
		}
		parent = m
	}
	_, ok := parent[key[idx+1:]]
	return ok
}

// Set sets a value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// GetAll returns a deep copy of the document
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// FilePath returns the path the document was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the document format
func (c *Config) Format() Format {
	return c.format
}

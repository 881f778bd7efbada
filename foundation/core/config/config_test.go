// File: config_test.go
// Title: Option Document Tests
// Description: Tests for loading, accessing, encoding and discovering
//              TOML and YAML documents.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	anerror "github.com/msto63/autonum/foundation/core/error"
)

const tomlDoc = `
decimalCharacter = ","
digitGroupSeparator = "."
decimalPlaces = 2

[presets.swiss]
currencySymbol = " CHF"
currencySymbolPlacement = "s"
`

const yamlDoc = `
decimalCharacter: ","
digitGroupSeparator: "."
negativePositiveSignPlacement: ~
presets:
  swiss:
    currencySymbol: " CHF"
`

func TestLoadFromString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"toml", tomlDoc, FormatTOML},
		{"yaml", yamlDoc, FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, tt.format)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}
			if got := cfg.GetString("decimalCharacter"); got != "," {
				t.Errorf("decimalCharacter = %q", got)
			}
			if got := cfg.GetString("presets.swiss.currencySymbol"); got != " CHF" {
				t.Errorf("presets.swiss.currencySymbol = %q", got)
			}
		})
	}
}

func TestYAMLPreservesNull(t *testing.T) {
	cfg, err := LoadFromString(yamlDoc, FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if !cfg.Has("negativePositiveSignPlacement") {
		t.Error("Has() should report keys set to null")
	}
	sub := cfg.Sub("")
	if v, ok := sub["negativePositiveSignPlacement"]; !ok || v != nil {
		t.Errorf("Sub()[negativePositiveSignPlacement] = %v, %v", v, ok)
	}
}

func TestLoadFromStringInvalid(t *testing.T) {
	_, err := LoadFromString("decimalCharacter = ", FormatTOML)
	if err == nil {
		t.Fatal("LoadFromString() should fail on broken TOML")
	}
	if !anerror.HasCode(err, anerror.CodeInvalidConfig) {
		t.Errorf("error code = %v", anerror.GetCode(err))
	}
}

func TestSubAndKeys(t *testing.T) {
	cfg, _ := LoadFromString(tomlDoc, FormatTOML)

	swiss := cfg.Sub("presets.swiss")
	if swiss["currencySymbolPlacement"] != "s" {
		t.Errorf("Sub() = %v", swiss)
	}
	swiss["currencySymbol"] = "mutated"
	if cfg.GetString("presets.swiss.currencySymbol") != " CHF" {
		t.Error("Sub() must return a copy")
	}

	if keys := cfg.Keys("presets"); len(keys) != 1 || keys[0] != "swiss" {
		t.Errorf("Keys(presets) = %v", keys)
	}
	if cfg.Sub("decimalCharacter") != nil {
		t.Error("Sub() of a scalar should be nil")
	}
}

func TestEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.toml")
	if err := os.WriteFile(path, []byte(tomlDoc), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AUTONUM_DECIMALCHARACTER", ".")

	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: "autonum"})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	if got := cfg.GetString("decimalCharacter"); got != "." {
		t.Errorf("decimalCharacter = %q, want env override", got)
	}
	if cfg.FilePath() != path || cfg.Format() != FormatTOML {
		t.Errorf("FilePath() = %q, Format() = %v", cfg.FilePath(), cfg.Format())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !anerror.HasCode(err, anerror.CodeNotFound) {
		t.Errorf("Load() error = %v, want NOT_FOUND", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data := map[string]interface{}{
		"decimalCharacter":              ",",
		"negativePositiveSignPlacement": nil,
	}

	out, err := Encode(data, FormatTOML)
	if err != nil {
		t.Fatalf("Encode(toml) error = %v", err)
	}
	if strings.Contains(string(out), "negativePositiveSignPlacement") {
		t.Errorf("TOML output should omit nulls: %s", out)
	}

	out, err = Encode(data, FormatYAML)
	if err != nil {
		t.Fatalf("Encode(yaml) error = %v", err)
	}
	cfg, err := LoadFromString(string(out), FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if !cfg.Has("negativePositiveSignPlacement") || cfg.GetString("decimalCharacter") != "," {
		t.Errorf("YAML round trip lost data: %s", out)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultDiscoveryOptions()
	opts.Paths = []string{dir}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() optional error = %v", err)
	}
	if len(cfg.GetAll()) != 0 {
		t.Error("optional discovery without files should be empty")
	}

	opts.Required = true
	if _, err := Discover(opts); err == nil {
		t.Error("required discovery without files should fail")
	}

	if err := os.WriteFile(filepath.Join(dir, ".autonum.yaml"), []byte(yamlDoc), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %v", cfg.Format())
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("yml"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(yml) = %v, %v", f, err)
	}
	if _, err := ParseFormat("ini"); err == nil {
		t.Error("ParseFormat(ini) should fail")
	}
}

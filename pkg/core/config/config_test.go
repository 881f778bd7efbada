package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AUTONUM_TEST_DIR", dir)

	content := `
[general]
log_level = "debug"

[format]
preset = "euro"
options_file = "$AUTONUM_TEST_DIR/options.toml"

[cache]
ttl = "30s"
`
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want default text", cfg.General.LogFormat)
	}
	if cfg.Format.Preset != "euro" {
		t.Errorf("Preset = %q", cfg.Format.Preset)
	}
	if cfg.Format.OptionsFile != filepath.Join(dir, "options.toml") {
		t.Errorf("OptionsFile = %q, want expanded path", cfg.Format.OptionsFile)
	}
	if cfg.Cache.TTL.Duration != 30*time.Second || cfg.Cache.MaxItems != 256 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoad_NotFound(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for invalid TOML")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "c.toml")
		if err := os.WriteFile(path, []byte("[format]\nlocale = \"de-CH\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("AUTONUM_CONFIG", path)

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Format.Locale != "de-CH" {
			t.Errorf("Locale = %q", cfg.Format.Locale)
		}
	})

	t.Run("defaults when nothing exists", func(t *testing.T) {
		t.Setenv("AUTONUM_CONFIG", "")
		wd, _ := os.Getwd()
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		defer os.Chdir(wd)

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.General.LogLevel != "warn" {
			t.Errorf("LogLevel = %q, want warn", cfg.General.LogLevel)
		}
	})
}

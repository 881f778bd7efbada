package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	anlog "github.com/msto63/autonum/foundation/core/log"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LoggerConfig
		wantLevel anlog.Level
	}{
		{"defaults", DefaultLoggerConfig("autonum"), anlog.LevelWarn},
		{"debug", LoggerConfig{Name: "cli", Level: "debug"}, anlog.LevelDebug},
		{"invalid level falls back", LoggerConfig{Name: "cli", Level: "chatty"}, anlog.LevelWarn},
		{"off", LoggerConfig{Name: "cli", Level: "off"}, anlog.LevelOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.cfg)
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestNewLogger_JSONToBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Name: "autonum.options", Level: "warn", Format: "json", Output: &buf})

	logger.Info("hidden")
	logger.Warn("option renamed", anlog.Fields{"from": "aSep"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["logger"] != "autonum.options" || entry["from"] != "aSep" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "cli",
		Level:             "info",
		Format:            "logfmt",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("formatted", anlog.Fields{"count": 2})

	if !strings.Contains(primary.String(), "count=2") || primary.String() != extra.String() {
		t.Errorf("primary = %q, extra = %q", primary.String(), extra.String())
	}
}

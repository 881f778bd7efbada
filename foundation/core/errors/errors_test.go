// File: errors_test.go
// Title: Standard Error Constructor Tests
// Description: Tests for the four failure classes and the error builder.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	anerror "github.com/msto63/autonum/foundation/core/error"
)

func TestClasses(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		class string
	}{
		{"validation", Validation(ModuleOptions, "decimalCharacter", "foobar", "bad"), ClassValidation},
		{"unknown option", UnknownOption(ModuleOptions, "foo"), ClassValidation},
		{"range", OutOfRange(ModuleRounding, "1001", "0", "1000"), ClassRange},
		{"parse", Parse(ModuleFormat, "1,2,3", "ambiguous"), ClassParse},
		{"value", InvalidInput(ModuleAutonum, "Format", true, "number or string"), ClassValue},
		{"foreign", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassOf(tt.err); got != tt.class {
				t.Errorf("ClassOf() = %q, want %q", got, tt.class)
			}
		})
	}
}

func TestClassSurvivesWrapping(t *testing.T) {
	base := OutOfRange(ModuleRounding, "-1", "0", "10")
	wrapped := fmt.Errorf("set: %w", anerror.Wrap(base, "instance update"))

	if !IsRange(wrapped) {
		t.Error("IsRange(wrapped) = false, want true")
	}
	if IsParse(wrapped) {
		t.Error("IsParse(wrapped) = true, want false")
	}
}

func TestOutOfRangeMessage(t *testing.T) {
	err := OutOfRange(ModuleRounding, "1001", "0", "1000")
	if !strings.Contains(err.Error(), "[0, 1000]") {
		t.Errorf("Error() = %q, want the range in the message", err.Error())
	}
	if v, _ := err.Detail("max"); v != "1000" {
		t.Errorf("Detail(max) = %v, want 1000", v)
	}
	if err.Severity() != anerror.SeverityLow {
		t.Errorf("Severity() = %v, want low", err.Severity())
	}
}

func TestUnknownOptionMessage(t *testing.T) {
	err := UnknownOption(ModuleOptions, "decimalPlaces2")
	if err.Error() != "option name 'decimalPlaces2' is unknown" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != anerror.CodeUnknownOption {
		t.Errorf("Code() = %v", err.Code())
	}
}

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder(ModuleConfig).
			Operation("load").
			Message("cannot read options document").
			Detail("path", "presets.toml").
			Code(anerror.CodeConfigError).
			Build()

		details := err.Details()
		if details["module"] != ModuleConfig {
			t.Errorf("module = %v", details["module"])
		}
		if details["path"] != "presets.toml" {
			t.Errorf("path = %v", details["path"])
		}
		if err.Severity() != anerror.SeverityHigh {
			t.Errorf("Severity() = %v, want high", err.Severity())
		}
		if err.Operation() != "config.load" {
			t.Errorf("Operation() = %q", err.Operation())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder(ModuleConfig).Operation("load").Cause(cause).Build()

		if !errors.Is(err, cause) {
			t.Error("expected error to wrap the cause")
		}
		if !strings.HasPrefix(err.Error(), "config.load failed") {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("explicit severity", func(t *testing.T) {
		err := NewErrorBuilder(ModuleMathx).
			Code(anerror.CodeDivisionByZero).
			Severity(anerror.SeverityCritical).
			Build()
		if err.Severity() != anerror.SeverityCritical {
			t.Errorf("Severity() = %v, want critical", err.Severity())
		}
	})
}

// File: validation_test.go
// Title: Validation Tests
// Description: Tests for results, warnings, error conversion and chains.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19

package validation

import (
	"context"
	"strings"
	"testing"

	anerror "github.com/msto63/autonum/foundation/core/error"
)

func TestNewValidationResult(t *testing.T) {
	r := NewValidationResult()
	if !r.Valid || len(r.Errors) != 0 {
		t.Errorf("NewValidationResult() = %v", r)
	}
	if r.ToError() != nil {
		t.Error("ToError() on a valid result should be nil")
	}
}

func TestWarningsKeepResultValid(t *testing.T) {
	r := NewValidationResult()
	r.AddWarning("option %q is deprecated", "aSep")

	if !r.Valid {
		t.Error("a warning must not invalidate the result")
	}
	if len(r.Warnings) != 1 || r.Warnings[0] != `option "aSep" is deprecated` {
		t.Errorf("Warnings = %v", r.Warnings)
	}
}

func TestToError(t *testing.T) {
	r := NewFieldError("decimalCharacter", "decimalCharacter must be one of '.', ','", "foobar")
	r.AddFieldError(anerror.CodeUnknownOption, "foo", "option name 'foo' is unknown", nil)

	err := r.ToError()
	if err == nil {
		t.Fatal("ToError() = nil, want error")
	}

	anErr, ok := err.(*anerror.Error)
	if !ok {
		t.Fatalf("ToError() returned %T", err)
	}
	if anErr.Code() != anerror.CodeValidationFailed {
		t.Errorf("Code() = %v", anErr.Code())
	}
	if v, _ := anErr.Detail("field"); v != "decimalCharacter" {
		t.Errorf("field = %v", v)
	}
	if v, _ := anErr.Detail("totalErrors"); v != 2 {
		t.Errorf("totalErrors = %v", v)
	}
}

func TestCombine(t *testing.T) {
	a := NewValidationResult()
	a.AddWarning("w1")
	b := NewFieldError("min", "bad", "x")
	b.AddWarning("w2")

	c := Combine(a, b)
	if c.Valid {
		t.Error("Combine() should be invalid when any part is invalid")
	}
	if len(c.Warnings) != 2 {
		t.Errorf("Warnings = %v", c.Warnings)
	}
	if !c.HasFieldError("min") {
		t.Error("HasFieldError(min) = false")
	}
}

func TestValidatorChain(t *testing.T) {
	calls := 0
	failing := ValidatorFunc(func(v interface{}) ValidationResult {
		calls++
		return NewFieldError("value", "must be positive", v)
	})
	passing := ValidatorFunc(func(v interface{}) ValidationResult {
		calls++
		return NewValidationResult()
	})

	t.Run("collects all errors", func(t *testing.T) {
		calls = 0
		chain := NewValidatorChain("numbers").AddFunc(failing).AddFunc(failing).AddFunc(passing)
		r := chain.Validate(-1)
		if len(r.Errors) != 2 || calls != 3 {
			t.Errorf("errors = %d, calls = %d", len(r.Errors), calls)
		}
		if r.Context["validatorChain"] != "numbers" {
			t.Errorf("Context = %v", r.Context)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		calls = 0
		chain := NewValidatorChain().AddFunc(failing).AddFunc(passing).StopOnFirstError(true)
		r := chain.Validate(-1)
		if len(r.Errors) != 1 || calls != 1 {
			t.Errorf("errors = %d, calls = %d", len(r.Errors), calls)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := NewValidatorChain().AddFunc(passing).ValidateWithContext(ctx, 1)
		if r.Valid {
			t.Error("a cancelled chain must not report success")
		}
	})

	if s := NewValidatorChain().String(); !strings.Contains(s, "unnamed") {
		t.Errorf("String() = %q", s)
	}
}

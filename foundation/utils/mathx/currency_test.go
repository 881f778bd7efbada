// File: currency_test.go
// Title: Currency Data Tests
// Description: Tests for CLDR currency lookup and the runtime registry.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19

package mathx

import (
	"testing"

	"golang.org/x/text/language"
)

func TestLookupCurrency(t *testing.T) {
	tests := []struct {
		code       string
		tag        language.Tag
		wantSymbol string
		wantPlaces int
		wantCash   int
	}{
		{"EUR", language.French, "€", 2, 1},
		{"USD", language.AmericanEnglish, "$", 2, 1},
		{"JPY", language.Japanese, "", 0, 1},
		{"CHF", language.German, "", 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := LookupCurrency(tt.code, tt.tag)
			if err != nil {
				t.Fatalf("LookupCurrency() error = %v", err)
			}
			if c.Code != tt.code {
				t.Errorf("Code = %q", c.Code)
			}
			if tt.wantSymbol != "" && c.Symbol != tt.wantSymbol {
				t.Errorf("Symbol = %q, want %q", c.Symbol, tt.wantSymbol)
			}
			if c.Symbol == "" || c.NarrowSymbol == "" {
				t.Errorf("symbols must not be empty: %+v", c)
			}
			if c.DecimalPlaces != tt.wantPlaces {
				t.Errorf("DecimalPlaces = %d, want %d", c.DecimalPlaces, tt.wantPlaces)
			}
			if c.CashIncrement != tt.wantCash {
				t.Errorf("CashIncrement = %d, want %d", c.CashIncrement, tt.wantCash)
			}
		})
	}
}

func TestLookupCurrencyUnknown(t *testing.T) {
	if _, err := LookupCurrency("QQQ", language.English); err == nil {
		t.Error("LookupCurrency(QQQ) should fail")
	}
}

func TestCashStep(t *testing.T) {
	chf := Currency{Code: "CHF", DecimalPlaces: 2, CashIncrement: 5}
	if got := chf.CashStep().String(); got != "0.05" {
		t.Errorf("CashStep() = %s, want 0.05", got)
	}
	jpy := Currency{Code: "JPY", DecimalPlaces: 0, CashIncrement: 1}
	if got := jpy.CashStep().String(); got != "1" {
		t.Errorf("CashStep() = %s, want 1", got)
	}
}

func TestRegisterCurrency(t *testing.T) {
	RegisterCurrency(Currency{Code: "xbt", Symbol: "₿", NarrowSymbol: "₿", DecimalPlaces: 8, CashIncrement: 1})

	c, err := LookupCurrency("XBT", language.English)
	if err != nil {
		t.Fatalf("LookupCurrency() error = %v", err)
	}
	if c.Symbol != "₿" || c.DecimalPlaces != 8 {
		t.Errorf("registered currency = %+v", c)
	}
}

// File: currency.go
// Title: Currency Data
// Description: Looks up currency symbols and rounding rules from the CLDR
//              tables in golang.org/x/text. Entries registered at runtime
//              take precedence over CLDR data.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with a static registry
// - 2026-10-19 v0.2.0: CLDR backed lookup via x/text/currency

package mathx

import (
	"math/big"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/msto63/autonum/foundation/core/errors"
)

// Currency represents a currency with its display and rounding properties
type Currency struct {
	Code          string // ISO 4217 code (e.g., "USD", "EUR")
	Symbol        string // Locale symbol (e.g., "$", "€")
	NarrowSymbol  string // Narrow locale symbol
	DecimalPlaces int    // Standard number of fraction digits
	CashIncrement int    // Cash rounding increment in minor units (5 for CHF)
}

// CashStep returns the smallest cash amount, e.g. 0.05 for CHF
func (c Currency) CashStep() Decimal {
	den := new(big.Int).Exp(bigTen, big.NewInt(int64(c.DecimalPlaces)), nil)
	return Decimal{value: new(big.Rat).SetFrac(big.NewInt(int64(c.CashIncrement)), den)}
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Currency{}
)

// RegisterCurrency adds or replaces a currency, overriding CLDR data
func RegisterCurrency(c Currency) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToUpper(c.Code)] = c
}

// GetCurrency returns a registered currency
func GetCurrency(code string) (Currency, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[strings.ToUpper(code)]
	return c, ok
}

// LookupCurrency returns the currency data for an ISO 4217 code with
// symbols localized for tag
func LookupCurrency(code string, tag language.Tag) (Currency, error) {
	if c, ok := GetCurrency(code); ok {
		return c, nil
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, errors.InvalidInput(errors.ModuleMathx, "LookupCurrency", code, "an ISO 4217 currency code")
	}

	p := message.NewPrinter(tag)
	scale, _ := currency.Standard.Rounding(unit)
	_, cash := currency.Cash.Rounding(unit)

	return Currency{
		Code:          unit.String(),
		Symbol:        p.Sprint(currency.Symbol(unit)),
		NarrowSymbol:  p.Sprint(currency.NarrowSymbol(unit)),
		DecimalPlaces: scale,
		CashIncrement: cash,
	}, nil
}

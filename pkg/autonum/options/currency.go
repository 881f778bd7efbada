package options

import (
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/msto63/autonum/foundation/utils/mathx"
	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/rounding"
)

// fiveCents is the cash step rounded by the CHF method
var fiveCents = mathx.MustNewDecimal("0.05")

// CurrencyPreset derives an option set for an ISO 4217 currency as written
// in the given locale. Symbol, precision and cash rounding come from CLDR.
// Locales with a comma decimal put the symbol after the number.
func CurrencyPreset(iso string, tag language.Tag) (Options, error) {
	cur, err := mathx.LookupCurrency(iso, tag)
	if err != nil {
		return nil, err
	}
	group, decimal := LocaleSeparators(tag)

	symbol := cur.NarrowSymbol
	if symbol == "" {
		symbol = cur.Symbol
	}

	fraction := ""
	if cur.DecimalPlaces > 0 {
		fraction = "." + zeros(cur.DecimalPlaces)
	}

	o := Options{
		KeyDigitGroupSeparator: group,
		KeyDecimalCharacter:    decimal,
		KeyMinimumValue:        "-9999999999999" + fraction,
		KeyMaximumValue:        "9999999999999" + fraction,
	}
	if decimal == "," {
		o[KeyCurrencySymbol] = "\u202f" + symbol
		o[KeyCurrencySymbolPlacement] = string(CurrencySuffix)
		o[KeyDecimalCharacterAlternative] = "."
	} else {
		if last := []rune(symbol); unicode.IsLetter(last[len(last)-1]) {
			symbol += "\u00a0"
		}
		o[KeyCurrencySymbol] = symbol
		o[KeyCurrencySymbolPlacement] = string(CurrencyPrefix)
	}
	if cur.CashStep().Equal(fiveCents) {
		o[KeyRoundingMethod] = string(rounding.SwissFive)
	}
	return o, nil
}

// LocaleSeparators returns the digit group separator and decimal character
// CLDR uses for tag, limited to the characters the schema accepts.
func LocaleSeparators(tag language.Tag) (group, decimal string) {
	sample := message.NewPrinter(tag).Sprint(number.Decimal(1234567.5, number.MinFractionDigits(1)))
	sample = normalize.FoldDigits(sample)

	var seps []string
	for _, r := range sample {
		if unicode.IsDigit(r) || unicode.Is(unicode.Cf, r) {
			continue
		}
		seps = append(seps, string(r))
	}

	decimal, group = ".", ","
	if n := len(seps); n > 0 {
		decimal = seps[n-1]
		group = ""
		if n > 1 {
			group = seps[0]
		}
	}
	if group == "\u2019" {
		group = "'"
	}

	if !oneOf(decimal, decimalChars) {
		decimal = "."
	}
	if !oneOf(group, groupSeparators) || group == decimal {
		group = ","
		if decimal == "," {
			group = "."
		}
	}
	return group, decimal
}

package options

import (
	"github.com/msto63/autonum/foundation/utils/mapx"
)

// Preset names
const (
	PresetFrench        = "French"
	PresetNorthAmerican = "NorthAmerican"
	PresetBritish       = "British"
	PresetSwiss         = "Swiss"
	PresetJapanese      = "Japanese"
	PresetSpanish       = "Spanish"
	PresetChinese       = "Chinese"
)

func french() Options {
	return Options{
		KeySelectNumberOnly:              true,
		KeyDigitGroupSeparator:           ".",
		KeyDecimalCharacter:              ",",
		KeyDecimalCharacterAlternative:   ".",
		KeyCurrencySymbol:                "\u202f€",
		KeyCurrencySymbolPlacement:       string(CurrencySuffix),
		KeyNegativePositiveSignPlacement: string(SignPrefix),
		KeyRoundingMethod:                "U",
		KeyLeadingZero:                   string(LeadingZeroDeny),
		KeyMinimumValue:                  DefaultMinimumValue,
		KeyMaximumValue:                  DefaultMaximumValue,
	}
}

func northAmerican(symbol string) Options {
	return Options{
		KeySelectNumberOnly:              true,
		KeyDigitGroupSeparator:           ",",
		KeyDecimalCharacter:              ".",
		KeyCurrencySymbol:                symbol,
		KeyCurrencySymbolPlacement:       string(CurrencyPrefix),
		KeyNegativePositiveSignPlacement: string(SignRight),
		KeyRoundingMethod:                "U",
		KeyLeadingZero:                   string(LeadingZeroDeny),
		KeyMinimumValue:                  DefaultMinimumValue,
		KeyMaximumValue:                  DefaultMaximumValue,
	}
}

func swiss() Options {
	return Options{
		KeySelectNumberOnly:              true,
		KeyDigitGroupSeparator:           "'",
		KeyDecimalCharacter:              ".",
		KeyCurrencySymbol:                "\u202fCHF",
		KeyCurrencySymbolPlacement:       string(CurrencySuffix),
		KeyNegativePositiveSignPlacement: string(SignPrefix),
		KeyRoundingMethod:                "U",
		KeyLeadingZero:                   string(LeadingZeroDeny),
		KeyMinimumValue:                  DefaultMinimumValue,
		KeyMaximumValue:                  DefaultMaximumValue,
	}
}

// percentage presets are complete shapes, so switching to one from a
// currency preset drops the currency and its rounding
func percentage(eu bool, places int) Options {
	o := Options{
		KeyCurrencySymbol:      "",
		KeySuffixText:          "%",
		KeyRoundingMethod:      "S",
		KeyDigitGroupSeparator: ",",
		KeyDecimalCharacter:    ".",
		KeyMinimumValue:        "-1000." + zeros(places),
		KeyMaximumValue:        "1000." + zeros(places),
	}
	if eu {
		o[KeyDigitGroupSeparator] = "."
		o[KeyDecimalCharacter] = ","
		o[KeyDecimalCharacterAlternative] = "."
	}
	return o
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

// with returns a copy of o with one option replaced
func with(o Options, key string, value any) Options {
	return o.Merge(Options{key: value})
}

// Predefined returns every predefined option set. Each call builds fresh
// maps, so callers may modify the result.
func Predefined() map[string]Options {
	presets := map[string]Options{
		PresetFrench:        french(),
		PresetSpanish:       french(),
		PresetNorthAmerican: northAmerican("$"),
		PresetBritish:       northAmerican("£"),
		PresetSwiss:         swiss(),
		PresetJapanese:      northAmerican("¥"),
		PresetChinese:       northAmerican("¥RMB"),

		"dotDecimalCharCommaSeparator": {
			KeyDigitGroupSeparator: ",",
			KeyDecimalCharacter:    ".",
		},
		"commaDecimalCharDotSeparator": {
			KeyDigitGroupSeparator:         ".",
			KeyDecimalCharacter:            ",",
			KeyDecimalCharacterAlternative: ".",
		},

		"integer": {
			KeyMinimumValue: "-9999999999999",
			KeyMaximumValue: "9999999999999",
		},
		"float": {
			KeyAllowDecimalPadding: false,
		},
		"numeric": {
			KeyDigitGroupSeparator: "",
			KeyDecimalCharacter:    ".",
			KeyCurrencySymbol:      "",
		},
	}

	presets["euro"] = french()
	presets["euroSpace"] = with(french(), KeyDigitGroupSeparator, " ")
	presets["dollar"] = northAmerican("$")
	presets["percentageEU2dec"] = percentage(true, 2)
	presets["percentageUS2dec"] = percentage(false, 2)
	presets["percentageEU3dec"] = percentage(true, 3)
	presets["percentageUS3dec"] = percentage(false, 3)

	for _, name := range []string{
		"euro", "euroSpace", "dollar",
		"percentageEU2dec", "percentageUS2dec", "percentageEU3dec", "percentageUS3dec",
		"integer", "float", "numeric",
	} {
		base := presets[name]
		presets[name+"Pos"] = with(base, KeyMinimumValue, positiveMin(base))
		presets[name+"Neg"] = with(base, KeyMaximumValue, negativeMax(base))
	}
	return presets
}

// positiveMin is zero with the precision of the preset's lower limit
func positiveMin(o Options) any {
	min, ok := o[KeyMinimumValue].(string)
	if !ok {
		min = DefaultMinimumValue
	}
	return signedZero(min)
}

func negativeMax(o Options) any {
	max, ok := o[KeyMaximumValue].(string)
	if !ok {
		max = DefaultMaximumValue
	}
	return signedZero(max)
}

// signedZero keeps the fraction length of a limit so the implied precision
// of the preset does not change
func signedZero(limit string) string {
	for i := 0; i < len(limit); i++ {
		if limit[i] == '.' {
			return "0." + zeros(len(limit)-i-1)
		}
	}
	return "0"
}

// Preset returns a copy of one predefined option set
func Preset(name string) (Options, bool) {
	o, ok := Predefined()[name]
	return o, ok
}

// PresetNames returns the predefined option set names in sorted order
func PresetNames() []string {
	return mapx.SortedKeys(Predefined())
}

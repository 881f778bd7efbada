package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefined_Names(t *testing.T) {
	names := PresetNames()
	for _, want := range []string{
		"French", "NorthAmerican", "British", "Swiss", "Japanese", "Spanish", "Chinese",
		"dotDecimalCharCommaSeparator", "commaDecimalCharDotSeparator",
		"euro", "euroPos", "euroNeg", "euroSpace", "euroSpacePos", "euroSpaceNeg",
		"dollar", "dollarPos", "dollarNeg",
		"percentageEU2dec", "percentageEU2decPos", "percentageEU2decNeg",
		"percentageUS2dec", "percentageUS2decPos", "percentageUS2decNeg",
		"percentageEU3dec", "percentageEU3decPos", "percentageEU3decNeg",
		"percentageUS3dec", "percentageUS3decPos", "percentageUS3decNeg",
		"integer", "integerPos", "integerNeg",
		"float", "floatPos", "floatNeg",
		"numeric", "numericPos", "numericNeg",
	} {
		assert.Contains(t, names, want)
	}
}

func TestPredefined_French(t *testing.T) {
	french, ok := Preset(PresetFrench)
	require.True(t, ok)
	assert.Equal(t, Options{
		KeySelectNumberOnly:              true,
		KeyDigitGroupSeparator:           ".",
		KeyDecimalCharacter:              ",",
		KeyDecimalCharacterAlternative:   ".",
		KeyCurrencySymbol:                "\u202f€",
		KeyCurrencySymbolPlacement:       "s",
		KeyNegativePositiveSignPlacement: "p",
		KeyRoundingMethod:                "U",
		KeyLeadingZero:                   "deny",
		KeyMinimumValue:                  "-9999999999999.99",
		KeyMaximumValue:                  "9999999999999.99",
	}, french)
}

func TestPredefined_Limits(t *testing.T) {
	p := Predefined()
	assert.Equal(t, "0.00", p["euroPos"][KeyMinimumValue])
	assert.Equal(t, "0.00", p["euroNeg"][KeyMaximumValue])
	assert.Equal(t, "0.00", p["percentageEU2decPos"][KeyMinimumValue])
	assert.Equal(t, "0.000", p["percentageUS3decNeg"][KeyMaximumValue])
	assert.Equal(t, "0", p["integerPos"][KeyMinimumValue])
	assert.Equal(t, "0.00", p["floatPos"][KeyMinimumValue])
}

func TestPredefined_FreshCopies(t *testing.T) {
	a := Predefined()
	a["euro"][KeyCurrencySymbol] = "X"
	b := Predefined()
	assert.Equal(t, "\u202f€", b["euro"][KeyCurrencySymbol])
}

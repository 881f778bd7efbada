package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/autonum/foundation/core/errors"
	"github.com/msto63/autonum/pkg/autonum/options"
)

// settings validates o without logging the warnings
func settings(t *testing.T, o options.Options) *options.Settings {
	t.Helper()
	s, _, err := options.Inspect(o)
	require.NoError(t, err)
	return s
}

func TestFormat_Defaults(t *testing.T) {
	s := options.Defaults()
	tests := []struct {
		raw  string
		want string
	}{
		{"1234567.891", "1,234,567.89"},
		{"-1234.5", "-1,234.50"},
		{"0", "0.00"},
		{"-0.001", "0.00"},
		{"007.5", "7.50"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"0.125", "0.13"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Format(tt.raw, s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Rejects(t *testing.T) {
	s := options.Defaults()

	_, err := Format("1,234", s)
	assert.True(t, errors.IsParse(err))

	_, err = Format("99999999999999", s)
	assert.True(t, errors.IsRange(err))
}

func TestFormat_PrefixCurrency(t *testing.T) {
	tests := []struct {
		sign options.SignPlacement
		want string
	}{
		{options.SignUnset, "-$1,234.50"},
		{options.SignLeft, "-$1,234.50"},
		{options.SignPrefix, "-$1,234.50"},
		{options.SignRight, "$-1,234.50"},
		{options.SignSuffix, "$1,234.50-"},
	}
	for _, tt := range tests {
		t.Run(string(tt.sign), func(t *testing.T) {
			o := options.Options{options.KeyCurrencySymbol: "$"}
			if tt.sign != options.SignUnset {
				o[options.KeyNegativePositiveSignPlacement] = string(tt.sign)
			}
			got, err := Format("-1234.5", settings(t, o))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_SuffixCurrency(t *testing.T) {
	tests := []struct {
		sign options.SignPlacement
		want string
	}{
		{options.SignUnset, "-1.234,50\u202f€"},
		{options.SignPrefix, "-1.234,50\u202f€"},
		{options.SignLeft, "1.234,50-\u202f€"},
		{options.SignRight, "1.234,50\u202f€-"},
		{options.SignSuffix, "1.234,50\u202f€-"},
	}
	for _, tt := range tests {
		t.Run(string(tt.sign), func(t *testing.T) {
			o := options.Options{
				options.KeyDigitGroupSeparator:     ".",
				options.KeyDecimalCharacter:        ",",
				options.KeyCurrencySymbol:          "\u202f€",
				options.KeyCurrencySymbolPlacement: string(options.CurrencySuffix),
			}
			if tt.sign != options.SignUnset {
				o[options.KeyNegativePositiveSignPlacement] = string(tt.sign)
			}
			got, err := Format("-1234.5", settings(t, o))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Brackets(t *testing.T) {
	s := settings(t, options.Options{
		options.KeyCurrencySymbol:             "$",
		options.KeyNegativeBracketsTypeOnBlur: "(,)",
	})

	got, err := Format("-1234.5", s)
	require.NoError(t, err)
	assert.Equal(t, "($1,234.50)", got)

	got, err = Format("1234.5", s)
	require.NoError(t, err)
	assert.Equal(t, "$1,234.50", got)
}

func TestFormat_Grouping(t *testing.T) {
	tests := []struct {
		spacing options.GroupSpacing
		raw     string
		want    string
	}{
		{options.GroupThree, "1234567890", "1,234,567,890.00"},
		{options.GroupTwo, "1234567890", "1,23,45,67,890.00"},
		{options.GroupTwoScaled, "123456789012345", "1,23,45,678,90,12,345.00"},
		{options.GroupFour, "1234567890", "12,3456,7890.00"},
		{options.GroupTwo, "123", "123.00"},
	}
	for _, tt := range tests {
		t.Run(string(tt.spacing)+"/"+tt.raw, func(t *testing.T) {
			s := settings(t, options.Options{
				options.KeyDigitalGroupSpacing: string(tt.spacing),
				options.KeyMaximumValue:        "999999999999999.99",
				options.KeyMinimumValue:        "-999999999999999.99",
			})
			got, err := Format(tt.raw, s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_NoSeparator(t *testing.T) {
	s := settings(t, options.Options{options.KeyDigitGroupSeparator: ""})
	got, err := Format("-1234567.5", s)
	require.NoError(t, err)
	assert.Equal(t, "-1234567.50", got)
}

func TestFormat_PositiveSign(t *testing.T) {
	s := settings(t, options.Options{
		options.KeyShowPositiveSign: true,
		options.KeySuffixText:       " units",
	})

	got, err := Format("12", s)
	require.NoError(t, err)
	assert.Equal(t, "+12.00 units", got)

	// zero is unsigned
	got, err = Format("0", s)
	require.NoError(t, err)
	assert.Equal(t, "0.00 units", got)

	got, err = Format("-12", s)
	require.NoError(t, err)
	assert.Equal(t, "-12.00 units", got)
}

func TestFormat_Padding(t *testing.T) {
	s := settings(t, options.Options{options.KeyAllowDecimalPadding: false})

	for raw, want := range map[string]string{
		"15.001":    "15",
		"13256.678": "13,256.68",
		"-6.2":      "-6.2",
		"0.50":      "0.5",
	} {
		got, err := Format(raw, s)
		require.NoError(t, err)
		assert.Equal(t, want, got, raw)
	}
}

func TestFormat_LeadingZero(t *testing.T) {
	tests := []struct {
		policy options.LeadingZero
		raw    string
		want   string
	}{
		{options.LeadingZeroDeny, "007.5", "7.50"},
		{options.LeadingZeroAllow, "007.5", "7.50"},
		{options.LeadingZeroKeep, "007.5", "007.50"},
		{options.LeadingZeroKeep, "-0001234", "-0,001,234.00"},
		{options.LeadingZeroKeep, "0.5", "0.50"},
		{options.LeadingZeroDeny, "000", "0.00"},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy)+" "+tt.raw, func(t *testing.T) {
			s := settings(t, options.Options{options.KeyLeadingZero: string(tt.policy)})
			got, err := Format(tt.raw, s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Scale(t *testing.T) {
	s := settings(t, options.Options{
		options.KeyScaleDivisor:       "0.01",
		options.KeyScaleDecimalPlaces: 3,
		options.KeyScaleSymbol:        "%",
	})

	got, err := Format("0.0214", s)
	require.NoError(t, err)
	assert.Equal(t, "2.140%", got)

	raw, err := Unformat(got, s)
	require.NoError(t, err)
	assert.Equal(t, "0.0214", raw)
}

func TestFormat_ScaleThousands(t *testing.T) {
	s := settings(t, options.Options{
		options.KeyScaleDivisor:       1000,
		options.KeyScaleDecimalPlaces: 1,
		options.KeyScaleSymbol:        " K",
	})

	got, err := Format("1234567", s)
	require.NoError(t, err)
	assert.Equal(t, "1,234.6 K", got)
}

func TestFormat_Empty(t *testing.T) {
	tests := []struct {
		behavior options.EmptyInputBehavior
		want     string
	}{
		{options.EmptyFocus, ""},
		{options.EmptyPress, ""},
		{options.EmptyAlways, "$"},
		{options.EmptyZero, "$0.00"},
	}
	for _, tt := range tests {
		t.Run(string(tt.behavior), func(t *testing.T) {
			s := settings(t, options.Options{
				options.KeyCurrencySymbol:     "$",
				options.KeyEmptyInputBehavior: string(tt.behavior),
			})
			got, err := Format("", s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_FiveCent(t *testing.T) {
	s := settings(t, options.Options{options.KeyRoundingMethod: "CHF"})
	got, err := Format("1.23", s)
	require.NoError(t, err)
	assert.Equal(t, "1.25", got)

	got, err = Format("1.22", s)
	require.NoError(t, err)
	assert.Equal(t, "1.20", got)
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", groupDigits("0", ",", options.GroupThree))
	assert.Equal(t, "1\u202f000", groupDigits("1000", "\u202f", options.GroupThree))
	assert.Equal(t, "12,34,567", groupDigits("1234567", ",", options.GroupTwo))
}

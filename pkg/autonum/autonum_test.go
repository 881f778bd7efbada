package autonum

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/autonum/foundation/core/errors"
	anlog "github.com/msto63/autonum/foundation/core/log"
	"github.com/msto63/autonum/pkg/autonum/options"
)

// captureLogger installs a JSON package logger writing into the returned
// buffer and restores the previous one when the test ends
func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := defaultLogger()
	buf := &bytes.Buffer{}
	SetLogger(anlog.NewWithConfig(anlog.Config{Level: anlog.LevelWarn, Format: anlog.FormatJSON, Output: buf}))
	t.Cleanup(func() { SetLogger(prev) })
	return buf
}

func warnings(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["level"] == "warn" {
			out = append(out, entry)
		}
	}
	return out
}

func presetOptions(t *testing.T, name string) options.Options {
	t.Helper()
	o, ok := GetPredefinedOptions()[name]
	require.True(t, ok, name)
	return o
}

func TestValidate_LegacyKey(t *testing.T) {
	buf := captureLogger(t)

	opts := options.Options{"aSep": " "}
	s, err := Validate(opts)
	require.NoError(t, err)

	assert.Equal(t, options.Options{"digitGroupSeparator": " "}, opts)
	assert.Equal(t, " ", s.DigitGroupSeparator)
	assert.Len(t, warnings(t, buf), 1)
}

func TestValidate_Invalid(t *testing.T) {
	captureLogger(t)

	_, err := Validate(options.Options{"digitGroupSeparator": ".", "decimalCharacter": "."})
	assert.True(t, errors.IsValidation(err))

	_, err = Validate(options.Options{"minimumValue": "10", "maximumValue": "1"})
	assert.True(t, errors.IsValidation(err))
}

func TestFormat_Static(t *testing.T) {
	tests := []struct {
		name  string
		value any
		opts  []options.Options
		want  string
	}{
		{"number with prefix currency", 1234.56, []options.Options{{"currencySymbol": "$", "currencySymbolPlacement": "p"}}, "$1,234.56"},
		{"raw string", "-1234.5", nil, "-1,234.50"},
		{"grouped with defaults", "1234,56", nil, "123,456.00"},
		{"euro style with defaults", "1.234,56", nil, "1.23"},
		{"int", 42, nil, "42.00"},
		{"big raw string", "9999999999999.99", nil, "9,999,999,999,999.99"},
		{"localized euro", "1.234,56 €", []options.Options{presetOptions(t, "euro")}, "1.234,56\u202f€"},
		{"options merged left to right", 5, []options.Options{{"currencySymbol": "$"}, {"currencySymbol": "£"}}, "£5.00"},
		{"empty options", 5, []options.Options{{}}, "5.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.value, tt.opts...)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestFormat_StaticErrors(t *testing.T) {
	got, err := Format(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	for _, v := range []any{[]int{1}, map[string]int{"a": 1}, true, struct{}{}} {
		_, err := Format(v)
		assert.True(t, errors.IsValue(err), "%T", v)
	}

	_, err = Format("$1,234.56", presetOptions(t, "euro"))
	assert.True(t, errors.IsParse(err))

	_, err = Format("1.234,56 €", presetOptions(t, "dollar"))
	assert.True(t, errors.IsParse(err))

	_, err = Format("foobar")
	assert.True(t, errors.IsParse(err))

	_, err = Format(1e14)
	assert.True(t, errors.IsRange(err))

	captureLogger(t)
	_, err = Format(1, options.Options{"roundingMethod": "X"})
	assert.True(t, errors.IsValidation(err))
}

func TestUnformat_Static(t *testing.T) {
	got, err := Unformat("$1,234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", got)

	got, err = Unformat("$0.00")
	require.NoError(t, err)
	assert.Equal(t, "0.00", got)

	got, err = Unformat(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Unformat(42.5)
	require.NoError(t, err)
	assert.Equal(t, 42.5, got)

	got, err = Unformat("1.234,56 €", presetOptions(t, "euro"))
	require.NoError(t, err)
	assert.Equal(t, "1234.56", got)

	got, err = Unformat("-42", options.Options{"outputFormat": ",-"})
	require.NoError(t, err)
	assert.Equal(t, "42-", got)

	got, err = Unformat("-1,234.5", options.Options{"outputFormat": "number"})
	require.NoError(t, err)
	assert.Equal(t, -1234.5, got)

	// values beyond float64 precision stay exact
	got, err = Unformat("12,345,678,901,234,567.891")
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567.891", got)

	_, err = Unformat([]string{"1"})
	assert.True(t, errors.IsValue(err))

	_, err = Unformat("12abc")
	assert.True(t, errors.IsParse(err))
}

func TestGetDefaultConfig(t *testing.T) {
	s := GetDefaultConfig()
	assert.Equal(t, ",", s.DigitGroupSeparator)
	assert.Equal(t, ".", s.DecimalCharacter)
	assert.Equal(t, 2, s.DecimalPlaces)
	assert.Equal(t, GetDefaultConfig(), s)
}

func TestGetPredefinedOptions_Copies(t *testing.T) {
	first := GetPredefinedOptions()
	first["euro"]["currencySymbol"] = "X"
	delete(first, "dollar")

	second := GetPredefinedOptions()
	assert.Equal(t, "\u202f€", second["euro"]["currencySymbol"])
	assert.Contains(t, second, "dollar")
}

func TestSettingsCache(t *testing.T) {
	ConfigureCache(16, 0)
	t.Cleanup(func() { ConfigureCache(128, 0) })
	opts := options.Options{"currencySymbol": "¤"}

	a, err := settingsFor([]options.Options{opts})
	require.NoError(t, err)
	b, err := settingsFor([]options.Options{opts.Clone()})
	require.NoError(t, err)
	assert.Same(t, a, b)

	entries, hits, misses := CacheStats()
	assert.Equal(t, 1, entries)
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)

	// option sets with warnings are not cached
	buf := captureLogger(t)
	warned := options.Options{"decimalPlacesOverride": 4}
	_, err = settingsFor([]options.Options{warned})
	require.NoError(t, err)
	_, err = settingsFor([]options.Options{warned})
	require.NoError(t, err)
	assert.Len(t, warnings(t, buf), 2)
	_, cached := currentCache().Get(fingerprint(warned))
	assert.False(t, cached)
}

func TestConfigureCache_TTL(t *testing.T) {
	ConfigureCache(16, time.Millisecond)
	t.Cleanup(func() { ConfigureCache(128, 0) })
	opts := options.Options{"currencySymbol": "¤"}

	a, err := settingsFor([]options.Options{opts})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	b, err := settingsFor([]options.Options{opts})
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, a.CurrencySymbol, b.CurrencySymbol)
}

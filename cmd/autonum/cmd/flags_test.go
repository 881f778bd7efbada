package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/options"
)

func TestSetValue(t *testing.T) {
	v := setValue{}
	require.NoError(t, v.Set("currencySymbol=€"))
	require.NoError(t, v.Set("scaleDecimalPlaces=3"))
	require.NoError(t, v.Set("scaleSymbol=null"))
	require.NoError(t, v.Set(" suffixText = =x"))

	opts := v.Options()
	assert.Equal(t, "€", opts["currencySymbol"])
	assert.Equal(t, 3, opts["scaleDecimalPlaces"])
	assert.Nil(t, opts["scaleSymbol"])
	assert.Contains(t, opts, "scaleSymbol")
	assert.Equal(t, " =x", opts["suffixText"])
	assert.Equal(t, "currencySymbol=€,scaleDecimalPlaces=3,scaleSymbol=<nil>,suffixText= =x", v.String())

	opts["currencySymbol"] = "$"
	assert.Equal(t, "€", v.Options()["currencySymbol"], "Options returns a copy")

	assert.Error(t, v.Set("novalue"))
	assert.Error(t, v.Set("=x"))
}

func TestOutputFormatValue(t *testing.T) {
	var v outputFormatValue
	for _, f := range []string{"string", "number", ".", "-.", ",", "-,", ".-", ",-"} {
		require.NoError(t, v.Set(f), f)
		assert.Equal(t, f, v.String())
	}
	assert.Equal(t, normalize.OutputCommaNegative, v.format)

	assert.Error(t, v.Set(""))
	assert.Error(t, v.Set("json"))
	assert.Equal(t, ",-", v.String(), "a rejected value keeps the previous one")
}

func TestAddOptionFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	flags := AddOptionFlags(cmd, true)

	require.NoError(t, cmd.ParseFlags([]string{
		"-p", "euro", "--options", "doc.toml", "--currency", "CHF", "--locale", "de-CH",
		"--output-format", "number", "--set", "suffixText= pcs", "--set", "currencySymbol=¤",
	}))
	assert.Equal(t, "euro", flags.Preset)
	assert.Equal(t, "doc.toml", flags.OptionsFile)
	assert.Equal(t, "CHF", flags.Currency)
	assert.Equal(t, "de-CH", flags.Locale)
	assert.Equal(t, normalize.OutputNumber, flags.OutputFormat.format)
	assert.Equal(t, options.Options{"suffixText": " pcs", "currencySymbol": "¤"}, flags.Set.Options())

	plain := &cobra.Command{Use: "plain"}
	AddOptionFlags(plain, false)
	assert.Nil(t, plain.Flags().Lookup(flagOutputFormat))
}

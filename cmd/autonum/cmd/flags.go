package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msto63/autonum/foundation/utils/mapx"
	"github.com/msto63/autonum/pkg/autonum/normalize"
	"github.com/msto63/autonum/pkg/autonum/options"
)

// OptionFlags are the flags every format and unformat command shares.
// They are merged in field order, later sources win.
type OptionFlags struct {
	Preset       string
	OptionsFile  string
	Currency     string
	Locale       string
	OutputFormat outputFormatValue
	Set          setValue
}

// Flag names, also used as viper keys
const (
	flagPreset       = "preset"
	flagOptionsFile  = "options"
	flagCurrency     = "currency"
	flagLocale       = "locale"
	flagOutputFormat = "output-format"
	flagSet          = "set"
)

// AddOptionFlags registers the option flags on cmd
func AddOptionFlags(cmd *cobra.Command, withOutputFormat bool) *OptionFlags {
	flags := &OptionFlags{Set: setValue{}}

	cmd.Flags().StringVarP(&flags.Preset, flagPreset, "p", "", "predefined option set, or a preset of the options document")
	cmd.Flags().StringVarP(&flags.OptionsFile, flagOptionsFile, "o", "", "options document (TOML or YAML)")
	cmd.Flags().StringVar(&flags.Currency, flagCurrency, "", "ISO 4217 currency code, e.g. EUR")
	cmd.Flags().StringVar(&flags.Locale, flagLocale, "", "BCP 47 locale for --currency (default: en)")
	cmd.Flags().Var(&flags.Set, flagSet, "single option as key=value, repeatable")
	if withOutputFormat {
		cmd.Flags().Var(&flags.OutputFormat, flagOutputFormat, "output format: string, number, ., -., ,, -,, .- or ,-")
	}
	return flags
}

// outputFormatValue is a pflag.Value restricted to the known output formats
type outputFormatValue struct {
	format normalize.OutputFormat
}

var _ pflag.Value = (*outputFormatValue)(nil)

func (v *outputFormatValue) String() string { return string(v.format) }

func (v *outputFormatValue) Set(s string) error {
	f := normalize.OutputFormat(s)
	if f == normalize.OutputNone || !f.IsValid() {
		return fmt.Errorf("unknown output format %q", s)
	}
	v.format = f
	return nil
}

func (v *outputFormatValue) Type() string { return "format" }

// setValue collects repeated key=value pairs into an option set
type setValue options.Options

var _ pflag.Value = (*setValue)(nil)

func (v *setValue) String() string {
	keys := mapx.SortedKeys(*v)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, (*v)[k])
	}
	return strings.Join(parts, ",")
}

func (v *setValue) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	if *v == nil {
		*v = setValue{}
	}
	(*v)[key] = optionValue(key, value)
	return nil
}

func (v *setValue) Type() string { return "key=value" }

// Options returns the collected pairs
func (v setValue) Options() options.Options {
	return options.Options(v).Clone()
}

// optionValue types a command line value. Everything stays a string except
// null and the integer-only scaleDecimalPlaces.
func optionValue(key, value string) any {
	if value == "null" {
		return nil
	}
	if key == options.KeyScaleDecimalPlaces {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return value
}

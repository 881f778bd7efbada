// Package cmd implements the autonum command line tool.
//
// Settings are resolved from several sources, highest priority first:
//
//  1. command line flags (--preset, --output-format, --log-level, ...)
//  2. AUTONUM_* environment variables (AUTONUM_PRESET, AUTONUM_OUTPUT_FORMAT, ...)
//  3. the application config file (--config, AUTONUM_CONFIG,
//     ./autonum.config.toml or ~/.config/autonum/config.toml)
//  4. built-in defaults
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	anerror "github.com/msto63/autonum/foundation/core/error"
	anlog "github.com/msto63/autonum/foundation/core/log"
	"github.com/msto63/autonum/pkg/autonum"
	"github.com/msto63/autonum/pkg/core/config"
	"github.com/msto63/autonum/pkg/core/logging"
)

const envPrefix = "AUTONUM"

// Viper keys of the root flags
const (
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

// app carries the state shared by one command tree
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	conf    *config.Config
	logger  *anlog.Logger
}

// Execute runs the command line tool and reports the error, if any, on
// stderr. Use ExitCode for the process status.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return anerror.GetCode(err).ExitCode()
}

// NewRootCmd builds a fresh command tree
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "autonum",
		Short: "Locale-aware number formatting",
		Long: `autonum formats raw numbers for display and reads formatted
numbers back into their raw form.

Examples:
  autonum format --preset euro 1234.5          1.234,50 €
  autonum unformat --preset dollar '$1,234.56'  1234.56
  autonum format --currency CHF --locale de-CH 1.23
  autonum presets euro                         dump a preset as TOML
  autonum validate shop.toml                   check an options document`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: AUTONUM_CONFIG, ./autonum.config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().String(keyLogLevel, "", "log level (trace, debug, info, warn, error, off)")
	root.PersistentFlags().String(keyLogFormat, "", "log format (text, json, logfmt)")

	root.AddCommand(
		newFormatCmd(a),
		newUnformatCmd(a),
		newValidateCmd(a),
		newPresetsCmd(),
		newDefaultsCmd(),
		newVersionCmd(),
	)
	return root
}

// init loads the application config, binds the flags of the running command
// and installs the logger
func (a *app) init(cmd *cobra.Command) error {
	conf, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.conf = conf

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	a.v.SetDefault(keyLogLevel, conf.General.LogLevel)
	a.v.SetDefault(keyLogFormat, conf.General.LogFormat)
	a.v.SetDefault(flagPreset, conf.Format.Preset)
	a.v.SetDefault(flagOptionsFile, conf.Format.OptionsFile)
	a.v.SetDefault(flagOutputFormat, conf.Format.OutputFormat)
	a.v.SetDefault(flagCurrency, conf.Format.Currency)
	a.v.SetDefault(flagLocale, conf.Format.Locale)

	for _, key := range []string{keyLogLevel, keyLogFormat, flagPreset, flagOptionsFile, flagOutputFormat, flagCurrency, flagLocale} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	level := a.v.GetString(keyLogLevel)
	if a.verbose {
		level = "debug"
	}
	a.logger = logging.NewLogger(logging.LoggerConfig{
		Name:   autonum.LoggerName,
		Level:  level,
		Format: a.v.GetString(keyLogFormat),
		Output: cmd.ErrOrStderr(),
	})
	autonum.SetLogger(a.logger)
	autonum.ConfigureCache(conf.Cache.MaxItems, conf.Cache.TTL.Duration)

	a.logger.Debug("configuration loaded", anlog.Fields{
		"config":    a.cfgFile,
		"log_level": level,
		"cache":     conf.Cache.MaxItems,
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}
	return config.LoadFromEnv()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

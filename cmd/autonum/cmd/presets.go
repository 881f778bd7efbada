package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/autonum/foundation/core/config"
	"github.com/msto63/autonum/foundation/core/errors"
	"github.com/msto63/autonum/pkg/autonum"
	"github.com/msto63/autonum/pkg/autonum/options"
)

func newPresetsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "presets [NAME]",
		Short: "List the predefined option sets or show one",
		Long: `Without NAME, list the names of the predefined option sets. With NAME,
print that set as an options document, ready for --options.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range options.PresetNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			preset, ok := autonum.GetPredefinedOptions()[args[0]]
			if !ok {
				return errors.Validation(errors.ModuleConfig, "preset", args[0], "unknown preset")
			}
			return writeOptions(cmd, preset, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "document format (toml, yaml)")
	return cmd
}

func newDefaultsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default options",
		Long: `Print the default option set as a document. TOML cannot express null,
so options that default to null only appear in YAML output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOptions(cmd, options.DefaultOptions(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "document format (toml, yaml)")
	return cmd
}

func writeOptions(cmd *cobra.Command, opts options.Options, format string) error {
	f, err := config.ParseFormat(format)
	if err != nil {
		return err
	}
	if f == config.FormatAuto {
		f = config.FormatTOML
	}
	data, err := config.Encode(map[string]interface{}(opts), f)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

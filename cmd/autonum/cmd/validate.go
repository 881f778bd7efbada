package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/autonum/foundation/core/config"
	anerror "github.com/msto63/autonum/foundation/core/error"
	"github.com/msto63/autonum/pkg/autonum/options"
)

func newValidateCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check an options document",
		Long: `Validate the option set of FILE and every preset it defines.

A document is either a flat table of options, or an [options] table plus
any number of [presets.NAME] tables. Warnings are listed but only fail the
check with --strict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validate(cmd, args[0], strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	return cmd
}

type namedSet struct {
	name string
	opts options.Options
}

func (a *app) validate(cmd *cobra.Command, path string, strict bool) error {
	raw, err := config.Load(path)
	if err != nil {
		return err
	}
	doc, err := documentFrom(raw)
	if err != nil {
		return err
	}

	var sets []namedSet
	if len(doc.Options) > 0 {
		sets = append(sets, namedSet{tableOptions, doc.Options})
	}
	for _, name := range doc.PresetNames() {
		sets = append(sets, namedSet{tablePresets + "." + name, doc.Presets[name]})
	}
	if len(sets) == 0 {
		return anerror.New("the document defines no options").
			WithCode(anerror.CodeInvalidConfig).
			WithOperation("cmd.validate").
			WithDetail("path", path)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, set := range sets {
		_, warnings, err := options.Inspect(set.opts)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "%s: invalid: %v\n", set.name, err)
			continue
		case len(warnings) == 0:
			fmt.Fprintf(out, "%s: ok\n", set.name)
			continue
		}
		if strict {
			failed++
		}
		fmt.Fprintf(out, "%s: %d warning(s)\n", set.name, len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(out, "  %s: %s\n", w.Option, w.Message)
		}
	}

	if failed > 0 {
		return anerror.Newf("%d of %d option set(s) failed validation", failed, len(sets)).
			WithCode(anerror.CodeValidationFailed).
			WithOperation("cmd.validate").
			WithDetail("path", path)
	}
	return nil
}

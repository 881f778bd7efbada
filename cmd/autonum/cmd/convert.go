package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	anerror "github.com/msto63/autonum/foundation/core/error"
	anlog "github.com/msto63/autonum/foundation/core/log"
	"github.com/msto63/autonum/pkg/autonum"
	"github.com/msto63/autonum/pkg/autonum/options"
)

// converter turns one input value into one output line
type converter func(value string, sets []options.Options) (string, error)

func newFormatCmd(a *app) *cobra.Command {
	var flags *OptionFlags
	cmd := &cobra.Command{
		Use:   "format [VALUE...]",
		Short: "Format numbers for display",
		Long: `Format each VALUE, or each line of stdin when no VALUE is given.

Raw numbers like -1234.5 are used as they are. Any other input is first read
with the same options, so 1.234,5 with --preset euro is accepted too.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, flags, args, "format", formatValue)
		},
	}
	flags = AddOptionFlags(cmd, false)
	return cmd
}

func newUnformatCmd(a *app) *cobra.Command {
	var flags *OptionFlags
	cmd := &cobra.Command{
		Use:   "unformat [VALUE...]",
		Short: "Read formatted numbers back into raw form",
		Long: `Unformat each VALUE, or each line of stdin when no VALUE is given.

The result is the raw number, or the --output-format rendition of it.
Values are not padded or rounded: $0.00 gives 0.00.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, flags, args, "unformat", unformatValue)
		},
	}
	flags = AddOptionFlags(cmd, true)
	return cmd
}

func formatValue(value string, sets []options.Options) (string, error) {
	out, err := autonum.Format(value, sets...)
	if err != nil || out == nil {
		return "", err
	}
	return *out, nil
}

func unformatValue(value string, sets []options.Options) (string, error) {
	out, err := autonum.Unformat(value, sets...)
	if err != nil || out == nil {
		return "", err
	}
	return fmt.Sprint(out), nil
}

// convert applies fn to every value and stops at the first failure
func (a *app) convert(cmd *cobra.Command, flags *OptionFlags, args []string, operation string, fn converter) error {
	sets, err := a.optionSets(flags)
	if err != nil {
		return err
	}

	values := args
	if len(values) == 0 {
		if values, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	timer := a.logger.StartTimer(operation).WithField("values", len(values))
	defer timer.Stop()

	out := cmd.OutOrStdout()
	for i, value := range values {
		line, err := fn(value, sets)
		if err != nil {
			return anerror.Wrap(err, fmt.Sprintf("cannot %s %q", operation, value)).
				WithDetail("index", i)
		}
		fmt.Fprintln(out, line)
	}

	entries, hits, misses := autonum.CacheStats()
	a.logger.Debug("settings cache", anlog.Fields{"entries": entries, "hits": hits, "misses": misses})
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, anerror.Wrap(err, "failed to read stdin").
			WithCode(anerror.CodeInvalidInput).
			WithOperation("cmd.readLines")
	}
	return lines, nil
}

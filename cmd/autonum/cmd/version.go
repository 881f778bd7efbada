package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/autonum/pkg/core/version"
)

var (
	GitCommit = "development"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "autonum v%s\n", version.CLI)
			fmt.Fprintf(out, "  Library:       %s\n", version.ComponentVersion("library"))
			fmt.Fprintf(out, "  Option Schema: %s\n", version.ComponentVersion("options"))
			fmt.Fprintf(out, "  Git Commit:    %s\n", GitCommit)
			fmt.Fprintf(out, "  Build Date:    %s\n", BuildDate)
			fmt.Fprintf(out, "  Go Version:    %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

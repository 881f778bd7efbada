package main

import (
	"os"

	"github.com/msto63/autonum/cmd/autonum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}

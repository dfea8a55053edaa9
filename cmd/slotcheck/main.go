// Package main is the entry point for the slotcheck CLI.
package main

import (
	"os"

	"github.com/thoreinstein/slotcheck/cmd/slotcheck/commands"
	"github.com/thoreinstein/slotcheck/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}

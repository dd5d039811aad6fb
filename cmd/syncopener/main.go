// Package main is the entry point for the syncopener CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/syncopener/cmd/syncopener/commands"
	"github.com/thoreinstein/syncopener/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		err = exitErr
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if exitErr != nil && exitErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, exitErr.Suggestion)
	}
	os.Exit(errors.ExitCode(err))
}

// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/multierr"
)

// used to patch over calls to os.Exit() during test
var osExit = os.Exit

// printError reports an error, one line per combined error
func printError(w io.Writer, err error) {
	errs := multierr.Errors(err)
	if len(errs) == 1 {
		_, _ = fmt.Fprintln(w, color.RedString("Error: %v", err))
		return
	}
	_, _ = fmt.Fprintln(w, color.RedString("Error: %d problems", len(errs)))
	for _, e := range errs {
		_, _ = fmt.Fprintln(w, color.RedString("  - %v", e))
	}
}

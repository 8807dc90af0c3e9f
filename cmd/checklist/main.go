// Command checklist builds, exports and files inspection checklists.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/checklist/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Subcommands report their own errors; only flag and argument
		// errors from cobra itself reach here unprinted.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}

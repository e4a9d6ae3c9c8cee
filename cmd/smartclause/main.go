package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/clauselab/smartclause/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands render their own error output; anything reaching
		// here that isn't an ExitError is a usage-level failure.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}

// Command numtrait inspects and regenerates the numeric capability registry.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/numtrait/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands print their own errors; cobra errors (flags, args) do not.
		if _, ok := err.(*cli.ExitError); !ok {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}

// Command numtrait-gen writes the per-type registration of package numtrait
// from a CUE table. It imports only internal/typespec and internal/gen, so it
// builds when zz_generated.registry.go is missing or stale.
//
// Usage:
//
//	numtrait-gen [--spec table.cue] [-o zz_generated.registry.go]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/numtrait/internal/gen"
	"github.com/roach88/numtrait/internal/typespec"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "numtrait-gen:", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var spec, out string

	cmd := &cobra.Command{
		Use:           "numtrait-gen",
		Short:         "Generate the per-type registration of package numtrait",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(spec, out, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&spec, "spec", "", "CUE registration table (default: embedded primitives.cue)")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")

	return cmd
}

// run renders the table at spec to out. Nothing is written when the table is
// invalid.
func run(spec, out string, stdout io.Writer) error {
	var (
		table *typespec.Table
		err   error
	)
	if spec == "" {
		table, err = typespec.Load()
	} else {
		table, err = typespec.LoadFile(spec)
	}
	if err != nil {
		return err
	}

	src, err := gen.Render(table)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err := stdout.Write(src)
		return err
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

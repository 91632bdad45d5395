package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/numtrait/internal/gen"
	"github.com/roach88/numtrait/internal/typespec"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	Spec string // CUE table path; empty uses the embedded table
	Out  string // output path; "-" writes to stdout
}

// GenResult is the structured output of the gen command. Source is set only
// when writing to stdout.
type GenResult struct {
	Package string `json:"package" yaml:"package"`
	Types   int    `json:"types" yaml:"types"`
	Out     string `json:"out" yaml:"out"`
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the per-type registration",
		Long: `Render the per-type registration file from a CUE table.

The table is validated first; an invalid table produces no output.
With --format json or yaml the result is wrapped in the response envelope and
the rendered source, when written to stdout, is carried in data.source.
go:generate uses the standalone numtrait-gen command, which does not depend on
the generated registration.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "CUE registration table (default: embedded primitives.cue)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "-", "output file, - for stdout")

	return cmd
}

func runGen(rootOpts *RootOptions, opts *GenOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	log := rootOpts.log()

	table, err := loadTable(opts.Spec)
	if err != nil {
		return tableLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded %d primitive(s) from %s", len(table.Primitives), tableSource(opts.Spec))

	if errs := typespec.Validate(table); len(errs) > 0 {
		return outputValidationErrors(formatter, errs)
	}

	src, err := gen.Render(table)
	if err != nil {
		return commandError(formatter, ErrCodeGeneric, err.Error())
	}
	log.Debug("rendered registration",
		zap.String("package", table.Package),
		zap.Int("types", len(table.Primitives)),
		zap.Int("bytes", len(src)))

	result := GenResult{Package: table.Package, Types: len(table.Primitives), Out: opts.Out}

	if opts.Out == "-" {
		if formatter.structured() {
			result.Source = string(src)
			return formatter.Success(result)
		}
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}

	if err := os.WriteFile(opts.Out, src, 0644); err != nil {
		return commandError(formatter, ErrCodeWriteFailed, fmt.Sprintf("writing %s: %v", opts.Out, err))
	}
	formatter.VerboseLog("Wrote %s", opts.Out)
	if formatter.structured() {
		return formatter.Success(result)
	}
	return nil
}

// loadTable loads the table at path, or the embedded table when path is empty.
func loadTable(path string) (*typespec.Table, error) {
	if path == "" {
		return typespec.Load()
	}
	return typespec.LoadFile(path)
}

func tableSource(path string) string {
	if path == "" {
		return "embedded " + typespec.DefaultFilename
	}
	return path
}

// tableLoadError reports a load failure: missing files are command errors,
// CUE errors are build failures.
func tableLoadError(f *OutputFormatter, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return commandError(f, ErrCodeNotFound, err.Error())
	}
	return commandError(f, ErrCodeBuildFailed, err.Error())
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numtrait/internal/typespec"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid      bool                       `json:"valid" yaml:"valid"`
	Primitives int                        `json:"primitives" yaml:"primitives"`
	Errors     []typespec.ValidationError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [table.cue]",
		Short: "Validate a registration table",
		Long: `Validate a CUE registration table without generating code.

Checks the CUE schema, then the pairing invariants: every integer has exactly
one same-width counterpart of the opposite polarity that points back, floats
have none, and widths agree with the underlying builtins.
With no argument the embedded table is validated.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(rootOpts, path, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	table, err := loadTable(path)
	if err != nil {
		return tableLoadError(formatter, err)
	}
	formatter.VerboseLog("Validating %d primitive(s) from %s", len(table.Primitives), tableSource(path))

	if errs := typespec.Validate(table); len(errs) > 0 {
		return outputValidationErrors(formatter, errs)
	}

	// Output success
	if formatter.structured() {
		return formatter.Success(ValidationResult{Valid: true, Primitives: len(table.Primitives)})
	}
	fmt.Fprintf(formatter.Writer, "✓ Table valid (%d primitives)\n", len(table.Primitives))
	return nil
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, errs []typespec.ValidationError) error {
	// Validation failures = exit code 1 (check/validation failure)
	exitErr := NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))

	if formatter.structured() {
		result := ValidationResult{
			Valid:  false,
			Errors: errs,
		}
		if err := formatter.Failure(result, errs[0].Code, errs[0].Message); err != nil {
			return err
		}
		return exitErr
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		fmt.Fprintf(formatter.Writer, "  %s: %s: %s\n\n", err.Code, err.Field, err.Message)
	}

	return exitErr
}

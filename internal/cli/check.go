package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/numtrait/internal/laws"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return newCheckCommand(rootOpts, laws.CheckAll)
}

// newCheckCommand creates the check command over a report source.
func newCheckCommand(rootOpts *RootOptions, checkAll func() laws.Report) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the registration laws",
		Long: `Verify that every registered type holds its laws.

Checks bounds ordering, widths, ZERO/ONE identities, sign-pair round trips over
every bit pattern up to 16 bits (sampled above), bit-reinterpreting
conversions, and arithmetic versus logical right shifts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, checkAll(), cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, report laws.Report, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	log := opts.log()

	for _, res := range report.Results {
		formatter.VerboseLog("%-12s %-12s %d case(s)", res.Law, res.Type, res.Cases)
		if !res.OK {
			log.Debug("law failed",
				zap.String("law", res.Law),
				zap.String("type", res.Type),
				zap.String("detail", res.Detail))
		}
	}
	log.Debug("check complete", zap.Int("results", len(report.Results)), zap.Int("cases", report.Cases()))

	failures := report.Failures()
	if len(failures) == 0 {
		if formatter.structured() {
			return formatter.Success(report)
		}
		fmt.Fprintf(formatter.Writer, "✓ %d laws held (%d cases)\n", len(report.Results), report.Cases())
		return nil
	}

	msg := fmt.Sprintf("%d of %d laws failed", len(failures), len(report.Results))
	if err := formatter.Failure(report, ErrCodeLawFailed, msg); err != nil {
		return err
	}
	if !formatter.structured() {
		for _, res := range failures {
			fmt.Fprintf(formatter.Writer, "  ✗ %s %s: %s\n", res.Law, res.Type, res.Detail)
		}
	}
	return NewExitError(ExitFailure, msg)
}

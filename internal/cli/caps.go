package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/numtrait"
)

// CapsRow is one line of the capability matrix.
type CapsRow struct {
	Name        string   `json:"name" yaml:"name"`
	Underlying  string   `json:"underlying" yaml:"underlying"`
	Width       int      `json:"width" yaml:"width"`
	Caps        []string `json:"caps" yaml:"caps"`
	Counterpart string   `json:"counterpart,omitempty" yaml:"counterpart,omitempty"`
	Min         string   `json:"min,omitempty" yaml:"min,omitempty"`
	Max         string   `json:"max,omitempty" yaml:"max,omitempty"`

	min, max any // raw bounds for locale formatting
}

// NewCapsCommand creates the caps command.
func NewCapsCommand(rootOpts *RootOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "caps [type...]",
		Short: "Show the capability matrix",
		Long: `Show the capabilities held by each registered type.

Types may be named by registered name (I32) or builtin name (int32).
With no arguments every registered type is listed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaps(rootOpts, args, lang, cmd)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "BCP 47 language tag for number formatting in text output")

	return cmd
}

func runCaps(opts *RootOptions, names []string, lang string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	log := opts.log()

	tag, err := language.Parse(lang)
	if err != nil {
		return commandError(formatter, ErrCodeGeneric, fmt.Sprintf("invalid --lang %q: %v", lang, err))
	}

	infos, err := selectInfos(names)
	if err != nil {
		return commandError(formatter, ErrCodeUnknownType, err.Error())
	}
	log.Debug("selected types", zap.Int("count", len(infos)), zap.Strings("args", names))

	rows := make([]CapsRow, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, newCapsRow(info))
	}

	if formatter.structured() {
		return formatter.Success(rows)
	}
	return writeCapsTable(formatter.Writer, rows, message.NewPrinter(tag))
}

// selectInfos resolves type names; no names selects every registered type.
func selectInfos(names []string) ([]numtrait.Info, error) {
	if len(names) == 0 {
		return numtrait.Registered(), nil
	}
	infos := make([]numtrait.Info, 0, len(names))
	for _, name := range names {
		info, ok := numtrait.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("type %q is not registered", name)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func newCapsRow(info numtrait.Info) CapsRow {
	row := CapsRow{
		Name:       info.Name,
		Underlying: info.Underlying,
		Width:      info.Width,
		Caps:       info.Caps.Names(),
	}
	if info.Counterpart != numtrait.KindInvalid {
		row.Counterpart = info.Counterpart.String()
	}
	if lo, hi, ok := bounds(info.Kind); ok {
		row.min, row.max = lo, hi
		row.Min, row.Max = fmt.Sprint(lo), fmt.Sprint(hi)
	}
	return row
}

// bounds returns MIN and MAX of an integer kind as int64 or uint64.
func bounds(k numtrait.Kind) (lo, hi any, ok bool) {
	switch k {
	case numtrait.KindI8:
		return signedBounds[numtrait.I8]()
	case numtrait.KindI16:
		return signedBounds[numtrait.I16]()
	case numtrait.KindI32:
		return signedBounds[numtrait.I32]()
	case numtrait.KindI64:
		return signedBounds[numtrait.I64]()
	case numtrait.KindIsize:
		return signedBounds[numtrait.Isize]()
	case numtrait.KindU8:
		return unsignedBounds[numtrait.U8]()
	case numtrait.KindU16:
		return unsignedBounds[numtrait.U16]()
	case numtrait.KindU32:
		return unsignedBounds[numtrait.U32]()
	case numtrait.KindU64:
		return unsignedBounds[numtrait.U64]()
	case numtrait.KindUsize:
		return unsignedBounds[numtrait.Usize]()
	}
	return nil, nil, false
}

func signedBounds[T numtrait.ArithmeticShr[T]]() (any, any, bool) {
	return int64(numtrait.Min[T]()), int64(numtrait.Max[T]()), true
}

func unsignedBounds[T numtrait.LogicalShr[T]]() (any, any, bool) {
	return uint64(numtrait.Min[T]()), uint64(numtrait.Max[T]()), true
}

// capsHeaders are the columns of the text table.
var capsHeaders = []string{"TYPE", "BUILTIN", "WIDTH", "PAIR", "MIN", "MAX", "CAPABILITIES"}

// writeCapsTable renders rows as an aligned text table. Bounds are formatted
// for the printer's locale.
func writeCapsTable(w io.Writer, rows []CapsRow, p *message.Printer) error {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		lo, hi := "-", "-"
		if r.min != nil {
			lo, hi = p.Sprintf("%d", r.min), p.Sprintf("%d", r.max)
		}
		pair := r.Counterpart
		if pair == "" {
			pair = "-"
		}
		cells = append(cells, []string{
			r.Name, r.Underlying, fmt.Sprint(r.Width), pair, lo, hi, strings.Join(r.Caps, ","),
		})
	}
	_, err := io.WriteString(w, renderTable(capsHeaders, cells))
	return err
}

// renderTable lays out left-aligned columns separated by two spaces. The last
// column is not padded.
func renderTable(headers []string, rows [][]string) string {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], lipgloss.Width(cell))
			}
		}
	}

	// Width includes padding
	cellStyle := lipgloss.NewStyle().PaddingRight(2)

	var sb strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			if i == len(row)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(cellStyle.Width(colWidths[i] + 2).Render(cell))
		}
		sb.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

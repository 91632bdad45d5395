package typespec

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

//go:embed primitives.cue
var primitivesCUE []byte

// DefaultFilename is the name reported for the embedded table.
const DefaultFilename = "primitives.cue"

// Source returns the embedded registration table.
func Source() []byte {
	return primitivesCUE
}

// Load compiles the embedded registration table.
func Load() (*Table, error) {
	return CompileSource(DefaultFilename, primitivesCUE)
}

// LoadFile compiles a registration table from a CUE file on disk.
func LoadFile(path string) (*Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return CompileSource(path, src)
}

// CompileSource compiles CUE source text into a Table.
func CompileSource(filename string, src []byte) (*Table, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	return Compile(v)
}

// Compile parses a CUE value into a Table.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The value must be the document root:
//
//	goPackage: "numtrait"
//	primitives: [{name: "I8", underlying: "int8", class: "int", width: 8, pair: "U8"}, ...]
func Compile(v cue.Value) (*Table, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	table := &Table{}

	pkgVal := v.LookupPath(cue.ParsePath("goPackage"))
	if !pkgVal.Exists() {
		return nil, &CompileError{
			Field:   "goPackage",
			Message: "goPackage is required",
			Pos:     v.Pos(),
		}
	}
	pkg, err := pkgVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	table.Package = pkg

	listVal := v.LookupPath(cue.ParsePath("primitives"))
	if !listVal.Exists() {
		return nil, &CompileError{
			Field:   "primitives",
			Message: "primitives is required",
			Pos:     v.Pos(),
		}
	}
	iter, err := listVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		p, err := parsePrimitive(iter.Value())
		if err != nil {
			return nil, err
		}
		table.Primitives = append(table.Primitives, p)
	}
	if len(table.Primitives) == 0 {
		return nil, &CompileError{
			Field:   "primitives",
			Message: "at least one primitive is required",
			Pos:     listVal.Pos(),
		}
	}

	return table, nil
}

// parsePrimitive parses a single table row.
func parsePrimitive(v cue.Value) (Primitive, error) {
	var p Primitive
	var err error

	if p.Name, err = requiredString(v, "name"); err != nil {
		return p, err
	}
	if p.Underlying, err = requiredString(v, "underlying"); err != nil {
		return p, err
	}
	class, err := requiredString(v, "class")
	if err != nil {
		return p, err
	}
	p.Class = Class(class)

	p.Width, err = parseWidth(v)
	if err != nil {
		return p, err
	}

	pairVal := v.LookupPath(cue.ParsePath("pair"))
	if pairVal.Exists() {
		if p.Pair, err = pairVal.String(); err != nil {
			return p, formatCUEError(err)
		}
	}

	return p, nil
}

// parseWidth accepts a bit count or the string "ptr".
func parseWidth(v cue.Value) (int, error) {
	wv := v.LookupPath(cue.ParsePath("width"))
	if !wv.Exists() {
		return 0, &CompileError{
			Field:   "width",
			Message: "width is required",
			Pos:     v.Pos(),
		}
	}

	// Try as string first ("ptr")
	if s, err := wv.String(); err == nil {
		if s != "ptr" {
			return 0, &CompileError{
				Field:   "width",
				Message: fmt.Sprintf("width must be a bit count or \"ptr\", got %q", s),
				Pos:     wv.Pos(),
			}
		}
		return PointerWidth, nil
	}

	n, err := wv.Int64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	if n <= 0 {
		return 0, &CompileError{
			Field:   "width",
			Message: fmt.Sprintf("width must be positive, got %d", n),
			Pos:     wv.Pos(),
		}
	}
	return int(n), nil
}

func requiredString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", &CompileError{
			Field:   field,
			Message: field + " is required",
			Pos:     v.Pos(),
		}
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

// CompileError is a structural error in the table, with CUE position when known.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}

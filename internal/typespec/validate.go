package typespec

import (
	"fmt"
	"strings"
)

// Validation error codes (E200-E299)
const (
	ErrDuplicateName     = "E201" // two rows share a name
	ErrClassMismatch     = "E202" // class disagrees with the underlying builtin
	ErrPairMissing       = "E203" // integer without a counterpart, or unknown counterpart
	ErrPairNotSymmetric  = "E204" // counterpart does not point back
	ErrPairWidthMismatch = "E205" // counterpart has a different width
	ErrPairSamePolarity  = "E206" // counterpart has the same polarity
	ErrFloatWithPair     = "E207" // floats have no counterpart
	ErrWidthMismatch     = "E208" // width disagrees with the underlying builtin
)

// builtinWidth maps each builtin to its class and bit width.
var builtinWidth = map[string]struct {
	class Class
	width int
}{
	"int8":    {ClassInt, 8},
	"int16":   {ClassInt, 16},
	"int32":   {ClassInt, 32},
	"int64":   {ClassInt, 64},
	"int":     {ClassInt, PointerWidth},
	"uint8":   {ClassUint, 8},
	"uint16":  {ClassUint, 16},
	"uint32":  {ClassUint, 32},
	"uint64":  {ClassUint, 64},
	"uint":    {ClassUint, PointerWidth},
	"float32": {ClassFloat, 32},
	"float64": {ClassFloat, 64},
}

// ValidationError represents a table validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks the table against the registration invariants.
// Returns all errors found (does not fail-fast).
func Validate(t *Table) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(t.Primitives))
	for _, p := range t.Primitives {
		field := "primitives." + p.Name

		if seen[p.Name] {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("duplicate primitive name %q", p.Name),
				Code:    ErrDuplicateName,
			})
		}
		seen[p.Name] = true

		errs = append(errs, validateBuiltin(field, p)...)
		errs = append(errs, validatePair(t, field, p)...)
	}

	return errs
}

// validateBuiltin checks class and width against the underlying builtin.
func validateBuiltin(field string, p Primitive) []ValidationError {
	b, ok := builtinWidth[p.Underlying]
	if !ok {
		return []ValidationError{{
			Field:   field + ".underlying",
			Message: fmt.Sprintf("unknown builtin %q", p.Underlying),
			Code:    ErrClassMismatch,
		}}
	}

	var errs []ValidationError
	if b.class != p.Class {
		errs = append(errs, ValidationError{
			Field:   field + ".class",
			Message: fmt.Sprintf("%s is %s, not %s", p.Underlying, b.class, p.Class),
			Code:    ErrClassMismatch,
		})
	}
	if b.width != p.Width {
		errs = append(errs, ValidationError{
			Field:   field + ".width",
			Message: fmt.Sprintf("%s is %s bits, not %s", p.Underlying, widthString(b.width), widthString(p.Width)),
			Code:    ErrWidthMismatch,
		})
	}
	return errs
}

// validatePair checks the AddSign/DropSign pairing for one row.
func validatePair(t *Table, field string, p Primitive) []ValidationError {
	if p.Class == ClassFloat {
		if p.Pair != "" {
			return []ValidationError{{
				Field:   field + ".pair",
				Message: "floats have no sign counterpart",
				Code:    ErrFloatWithPair,
			}}
		}
		return nil
	}

	if strings.TrimSpace(p.Pair) == "" {
		return []ValidationError{{
			Field:   field + ".pair",
			Message: "integers require a same-width counterpart",
			Code:    ErrPairMissing,
		}}
	}
	q, ok := t.Lookup(p.Pair)
	if !ok {
		return []ValidationError{{
			Field:   field + ".pair",
			Message: fmt.Sprintf("counterpart %q is not registered", p.Pair),
			Code:    ErrPairMissing,
		}}
	}

	var errs []ValidationError
	if q.Pair != p.Name {
		errs = append(errs, ValidationError{
			Field:   field + ".pair",
			Message: fmt.Sprintf("%s pairs with %s but %s pairs with %q", p.Name, q.Name, q.Name, q.Pair),
			Code:    ErrPairNotSymmetric,
		})
	}
	if q.Width != p.Width {
		errs = append(errs, ValidationError{
			Field:   field + ".pair",
			Message: fmt.Sprintf("%s is %s bits but %s is %s bits", p.Name, widthString(p.Width), q.Name, widthString(q.Width)),
			Code:    ErrPairWidthMismatch,
		})
	}
	if q.Class == p.Class || q.Class == ClassFloat {
		errs = append(errs, ValidationError{
			Field:   field + ".pair",
			Message: fmt.Sprintf("%s (%s) cannot pair with %s (%s)", p.Name, p.Class, q.Name, q.Class),
			Code:    ErrPairSamePolarity,
		})
	}
	return errs
}

func widthString(w int) string {
	if w == PointerWidth {
		return "ptr"
	}
	return fmt.Sprint(w)
}

package typespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairTable(extra ...Primitive) *Table {
	t := &Table{
		Package: "p",
		Primitives: []Primitive{
			{Name: "I8", Underlying: "int8", Class: ClassInt, Width: 8, Pair: "U8"},
			{Name: "U8", Underlying: "uint8", Class: ClassUint, Width: 8, Pair: "I8"},
		},
	}
	t.Primitives = append(t.Primitives, extra...)
	return t
}

func codes(errs []ValidationError) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Code)
	}
	return out
}

func TestValidateValidPair(t *testing.T) {
	assert.Empty(t, Validate(pairTable()))
}

func TestValidateDuplicateName(t *testing.T) {
	errs := Validate(pairTable(Primitive{Name: "I8", Underlying: "int8", Class: ClassInt, Width: 8, Pair: "U8"}))
	assert.Contains(t, codes(errs), ErrDuplicateName)
}

func TestValidateClassMismatch(t *testing.T) {
	errs := Validate(pairTable(Primitive{Name: "X", Underlying: "float32", Class: ClassInt, Width: 32}))
	assert.Contains(t, codes(errs), ErrClassMismatch)
}

func TestValidateUnknownBuiltin(t *testing.T) {
	errs := Validate(pairTable(Primitive{Name: "C", Underlying: "complex64", Class: ClassFloat, Width: 64}))
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrClassMismatch, errs[0].Code)
	assert.Contains(t, errs[0].Message, "complex64")
}

// The 64-bit unsigned type must not claim 32 bits.
func TestValidateWidthMismatch(t *testing.T) {
	table := &Table{Primitives: []Primitive{
		{Name: "I64", Underlying: "int64", Class: ClassInt, Width: 64, Pair: "U64"},
		{Name: "U64", Underlying: "uint64", Class: ClassUint, Width: 32, Pair: "I64"},
	}}
	errs := Validate(table)
	assert.Contains(t, codes(errs), ErrWidthMismatch)
	assert.Contains(t, codes(errs), ErrPairWidthMismatch)
}

func TestValidatePairMissing(t *testing.T) {
	errs := Validate(pairTable(Primitive{Name: "I16", Underlying: "int16", Class: ClassInt, Width: 16}))
	assert.Equal(t, []string{ErrPairMissing}, codes(errs))
}

func TestValidatePairUnknown(t *testing.T) {
	errs := Validate(pairTable(Primitive{Name: "I16", Underlying: "int16", Class: ClassInt, Width: 16, Pair: "U16"}))
	require.Len(t, errs, 1)
	assert.Equal(t, ErrPairMissing, errs[0].Code)
	assert.Contains(t, errs[0].Message, "U16")
}

func TestValidatePairNotSymmetric(t *testing.T) {
	table := pairTable(
		Primitive{Name: "I16", Underlying: "int16", Class: ClassInt, Width: 16, Pair: "U8"},
	)
	errs := Validate(table)
	assert.Contains(t, codes(errs), ErrPairNotSymmetric)
	assert.Contains(t, codes(errs), ErrPairWidthMismatch)
}

func TestValidatePairSamePolarity(t *testing.T) {
	table := &Table{Primitives: []Primitive{
		{Name: "A", Underlying: "int32", Class: ClassInt, Width: 32, Pair: "B"},
		{Name: "B", Underlying: "int32", Class: ClassInt, Width: 32, Pair: "A"},
	}}
	errs := Validate(table)
	assert.Equal(t, []string{ErrPairSamePolarity, ErrPairSamePolarity}, codes(errs))
}

func TestValidateFloatWithPair(t *testing.T) {
	errs := Validate(pairTable(Primitive{Name: "F32", Underlying: "float32", Class: ClassFloat, Width: 32, Pair: "I8"}))
	assert.Equal(t, []string{ErrFloatWithPair}, codes(errs))
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Field: "primitives.U64.width", Message: "uint64 is 64 bits, not 32", Code: ErrWidthMismatch}
	assert.Equal(t, "[E208] primitives.U64.width: uint64 is 64 bits, not 32", e.Error())
}

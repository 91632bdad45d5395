// Package laws checks the algebraic properties every registered numeric type
// must hold: bounds ordering, widths, sign-pair round trips and shift
// semantics.
//
// The capability constraints already reject illegal combinations at build
// time. These checks cover what the compiler cannot see, namely that the
// registered constants and conversions have the right values.
package laws

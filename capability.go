package numtrait

import "golang.org/x/exp/constraints"

// Sized is implemented by every registered type. Width reports the number of
// bits in the type's representation.
type Sized interface {
	Width() int
}

// integers is the type set of integer primitives that have a same-width
// counterpart of the opposite polarity. uintptr is excluded.
type integers interface {
	constraints.Signed | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the capability of the IEEE floating-point primitives.
//
// The type set supplies + - * / and their compound forms. Go has no % on
// floats, so the remainder is the Rem method (math.Mod semantics).
type Float[T any] interface {
	constraints.Float
	Sized
	Rem(y T) T
}

// Integer is the capability of the fixed-width and pointer-width integer
// primitives.
//
// The type set supplies the arithmetic, bitwise and shift operators, total
// ordering and equality; integer values are valid map keys. The methods stand
// in for associated constants and are safe to call on the zero value.
type Integer[T any] interface {
	integers
	comparable
	Sized

	// Min reports the smallest representable value.
	Min() T
	// Max reports the largest representable value.
	Max() T
	// Zero reports the additive identity.
	Zero() T
	// One reports the multiplicative identity.
	One() T
}

// Signed marks types that represent negative values. Every member supports
// unary negation. Floats are Signed; there is no unsigned float.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Unsigned marks types that cannot represent negative values.
type Unsigned interface {
	constraints.Unsigned
}

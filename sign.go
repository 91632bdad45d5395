package numtrait

// AddSign is held by an unsigned Integer U whose same-width signed
// counterpart is S. AddSign reinterprets the two's-complement bits of the
// receiver as S; values above S's maximum wrap to negatives.
//
// Bind a pair together with its back-reference:
//
//	func F[U AddSign[U, S], S DropSign[S, U]](u U) { ... }
type AddSign[U, S any] interface {
	Integer[U]
	Unsigned
	AddSign() S
}

// DropSign is held by a signed Integer S whose same-width unsigned
// counterpart is U. DropSign reinterprets the two's-complement bits of the
// receiver as U; negative values wrap to the top half of U.
type DropSign[S, U any] interface {
	Integer[S]
	Signed
	DropSign() U
}

// ToSigned reinterprets u as its signed counterpart.
func ToSigned[U AddSign[U, S], S DropSign[S, U]](u U) S {
	return u.AddSign()
}

// ToUnsigned reinterprets s as its unsigned counterpart.
func ToUnsigned[S DropSign[S, U], U AddSign[U, S]](s S) U {
	return s.DropSign()
}

// RoundTripUnsigned converts u to its signed counterpart and back. The result
// always equals u.
func RoundTripUnsigned[U AddSign[U, S], S DropSign[S, U]](u U) U {
	return u.AddSign().DropSign()
}

// RoundTripSigned converts s to its unsigned counterpart and back. The result
// always equals s.
func RoundTripSigned[S DropSign[S, U], U AddSign[U, S]](s S) S {
	return s.DropSign().AddSign()
}

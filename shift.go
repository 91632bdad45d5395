package numtrait

// ArithmeticShr is held by every signed Integer. Its >> operator replicates
// the sign bit into the vacated high bits. No registration is needed.
type ArithmeticShr[T any] interface {
	Integer[T]
	Signed
}

// LogicalShr is held by every unsigned Integer. Its >> operator fills the
// vacated high bits with zero. No registration is needed.
type LogicalShr[T any] interface {
	Integer[T]
	Unsigned
}

// ShrArithmetic shifts x right by n, sign-extending.
func ShrArithmetic[T ArithmeticShr[T]](x T, n uint) T {
	return x >> n
}

// ShrLogical shifts x right by n, zero-filling.
func ShrLogical[T LogicalShr[T]](x T, n uint) T {
	return x >> n
}

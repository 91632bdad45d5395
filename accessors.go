package numtrait

// Width reports the bit width of T.
func Width[T Sized]() int {
	var z T
	return z.Width()
}

// Min reports the smallest value of T.
func Min[T Integer[T]]() T {
	var z T
	return z.Min()
}

// Max reports the largest value of T.
func Max[T Integer[T]]() T {
	var z T
	return z.Max()
}

// Zero reports the additive identity of T.
func Zero[T Integer[T]]() T {
	var z T
	return z.Zero()
}

// One reports the multiplicative identity of T.
func One[T Integer[T]]() T {
	var z T
	return z.One()
}

package laws

import (
	"fmt"
	"unsafe"

	"github.com/roach88/numtrait"
)

// Law names.
const (
	LawBounds    = "bounds"
	LawWidth     = "width"
	LawZeroPair  = "zero-pair"
	LawRoundTrip = "round-trip"
	LawReinterp  = "reinterpret"
	LawShift     = "shift"
)

// exhaustiveWidth is the widest pair whose bit patterns are all enumerated.
const exhaustiveWidth = 16

// Result is the outcome of one law applied to one type.
type Result struct {
	Law    string `json:"law" yaml:"law"`
	Type   string `json:"type" yaml:"type"`
	OK     bool   `json:"ok" yaml:"ok"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Cases  int    `json:"cases" yaml:"cases"`
}

type checker struct {
	law   string
	typ   string
	cases int
	fail  string
}

func newChecker(law, typ string) *checker {
	return &checker{law: law, typ: typ}
}

// expect records one case; only the first failure is kept.
func (c *checker) expect(ok bool, format string, args ...any) {
	c.cases++
	if !ok && c.fail == "" {
		c.fail = fmt.Sprintf(format, args...)
	}
}

func (c *checker) result() Result {
	return Result{Law: c.law, Type: c.typ, OK: c.fail == "", Detail: c.fail, Cases: c.cases}
}

func typeName[T numtrait.Described]() string {
	return numtrait.InfoOf[T]().Name
}

// Bounds checks MIN <= ZERO < ONE, MIN <= MAX and that MAX+1 wraps to MIN.
func Bounds[T interface {
	numtrait.Integer[T]
	numtrait.Described
}]() Result {
	c := newChecker(LawBounds, typeName[T]())
	lo, hi := numtrait.Min[T](), numtrait.Max[T]()
	zero, one := numtrait.Zero[T](), numtrait.One[T]()

	c.expect(lo <= zero, "MIN %v > ZERO %v", lo, zero)
	c.expect(zero < one, "ZERO %v >= ONE %v", zero, one)
	c.expect(lo <= hi, "MIN %v > MAX %v", lo, hi)
	c.expect(hi+one == lo, "MAX+1 = %v, want MIN %v", hi+one, lo)
	c.expect(zero*hi == zero, "ZERO*MAX = %v", zero*hi)
	c.expect(one*hi == hi, "ONE*MAX = %v", one*hi)
	return c.result()
}

// Width checks the reported width against the in-memory size of T.
func Width[T interface {
	numtrait.Sized
	numtrait.Described
}]() Result {
	c := newChecker(LawWidth, typeName[T]())
	var z T
	size := int(unsafe.Sizeof(z)) * 8
	c.expect(z.Width() == size, "Width() = %d, representation is %d bits", z.Width(), size)
	c.expect(numtrait.InfoOf[T]().Width == size, "descriptor width = %d, representation is %d bits", numtrait.InfoOf[T]().Width, size)
	return c.result()
}

type pairUnsigned[U, S any] interface {
	numtrait.AddSign[U, S]
	numtrait.Described
}

type pairSigned[S, U any] interface {
	numtrait.DropSign[S, U]
	numtrait.Described
}

// ZeroPair checks that ZERO maps to ZERO in both directions and that the pair
// has equal widths.
func ZeroPair[U pairUnsigned[U, S], S pairSigned[S, U]]() Result {
	c := newChecker(LawZeroPair, typeName[U]()+"/"+typeName[S]())
	c.expect(numtrait.Zero[U]().AddSign() == numtrait.Zero[S](), "U.ZERO.AddSign() = %v", numtrait.Zero[U]().AddSign())
	c.expect(numtrait.Zero[S]().DropSign() == numtrait.Zero[U](), "S.ZERO.DropSign() = %v", numtrait.Zero[S]().DropSign())
	c.expect(numtrait.Width[U]() == numtrait.Width[S](), "widths %d and %d differ", numtrait.Width[U](), numtrait.Width[S]())
	return c.result()
}

// Patterns returns the bit patterns checked for the unsigned type U: every
// pattern up to 16 bits, otherwise the edges plus a walking one and a walking
// zero.
func Patterns[U interface {
	numtrait.Integer[U]
	numtrait.Unsigned
}]() []U {
	w := numtrait.Width[U]()
	if w <= exhaustiveWidth {
		pats := make([]U, 0, 1<<w)
		u := numtrait.Zero[U]()
		for {
			pats = append(pats, u)
			if u == numtrait.Max[U]() {
				return pats
			}
			u++
		}
	}

	one, hi := numtrait.One[U](), numtrait.Max[U]()
	pats := []U{numtrait.Zero[U](), one, hi, hi >> 1, hi>>1 + one}
	for i := 0; i < w; i++ {
		pats = append(pats, one<<i, ^(one << i))
	}
	return pats
}

// RoundTrip checks u.AddSign().DropSign() == u and the signed mirror for
// every pattern from Patterns.
func RoundTrip[U pairUnsigned[U, S], S pairSigned[S, U]]() Result {
	c := newChecker(LawRoundTrip, typeName[U]()+"/"+typeName[S]())
	for _, u := range Patterns[U]() {
		got := u.AddSign().DropSign()
		c.expect(got == u, "%#x round-tripped to %#x", u, got)
		s := u.AddSign()
		back := s.DropSign().AddSign()
		c.expect(back == s, "%d round-tripped to %d", s, back)
	}
	return c.result()
}

// Reinterpret checks that the conversions wrap instead of clamping:
// MAX(U) becomes -1 and MIN(S) becomes 1<<(W-1).
func Reinterpret[U pairUnsigned[U, S], S pairSigned[S, U]]() Result {
	c := newChecker(LawReinterp, typeName[U]()+"/"+typeName[S]())
	w := numtrait.Width[U]()

	minusOne := numtrait.Zero[S]() - numtrait.One[S]()
	c.expect(numtrait.Max[U]().AddSign() == minusOne, "MAX.AddSign() = %v, want -1", numtrait.Max[U]().AddSign())

	signBit := numtrait.One[U]() << (w - 1)
	c.expect(numtrait.Min[S]().DropSign() == signBit, "MIN.DropSign() = %#x, want %#x", numtrait.Min[S]().DropSign(), signBit)

	c.expect(minusOne.DropSign() == numtrait.Max[U](), "(-1).DropSign() = %#x, want MAX", minusOne.DropSign())
	c.expect(numtrait.Max[S]().DropSign() == numtrait.Max[U]()>>1, "MAX(S).DropSign() = %#x", numtrait.Max[S]().DropSign())
	return c.result()
}

// ArithmeticShift checks that >> sign-extends on T.
func ArithmeticShift[T interface {
	numtrait.ArithmeticShr[T]
	numtrait.Described
}]() Result {
	c := newChecker(LawShift, typeName[T]())
	w := uint(numtrait.Width[T]())
	lo := numtrait.Min[T]()
	minusOne := numtrait.Zero[T]() - numtrait.One[T]()

	c.expect(numtrait.ShrArithmetic(lo, 1) < numtrait.Zero[T](), "MIN>>1 = %v, want negative", numtrait.ShrArithmetic(lo, 1))
	c.expect(numtrait.ShrArithmetic(lo, w-1) == minusOne, "MIN>>(W-1) = %v, want -1", numtrait.ShrArithmetic(lo, w-1))
	c.expect(numtrait.ShrArithmetic(minusOne, w) == minusOne, "-1>>W = %v, want -1", numtrait.ShrArithmetic(minusOne, w))
	c.expect(numtrait.ShrArithmetic(numtrait.Max[T](), w-2) == numtrait.One[T](), "MAX>>(W-2) = %v, want 1", numtrait.ShrArithmetic(numtrait.Max[T](), w-2))
	return c.result()
}

// LogicalShift checks that >> zero-fills on T.
func LogicalShift[T interface {
	numtrait.LogicalShr[T]
	numtrait.Described
}]() Result {
	c := newChecker(LawShift, typeName[T]())
	w := uint(numtrait.Width[T]())
	hi := numtrait.Max[T]()

	c.expect(numtrait.ShrLogical(hi, 1) == hi/2, "MAX>>1 = %v, want MAX/2", numtrait.ShrLogical(hi, 1))
	c.expect(numtrait.ShrLogical(hi, w-1) == numtrait.One[T](), "MAX>>(W-1) = %v, want 1", numtrait.ShrLogical(hi, w-1))
	c.expect(numtrait.ShrLogical(hi, w) == numtrait.Zero[T](), "MAX>>W = %v, want 0", numtrait.ShrLogical(hi, w))
	return c.result()
}

package laws

import "github.com/roach88/numtrait"

// Report collects the results of a full check.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
}

// OK reports whether every law held.
func (r Report) OK() bool {
	return len(r.Failures()) == 0
}

// Failures returns the results whose law did not hold.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK {
			out = append(out, res)
		}
	}
	return out
}

// Cases returns the total number of individual cases checked.
func (r Report) Cases() int {
	n := 0
	for _, res := range r.Results {
		n += res.Cases
	}
	return n
}

func (r *Report) add(results ...Result) {
	r.Results = append(r.Results, results...)
}

// CheckAll runs every law over every registered type and pair.
func CheckAll() Report {
	var r Report

	r.add(
		Width[numtrait.F32](),
		Width[numtrait.F64](),
	)

	r.add(
		Bounds[numtrait.I8](), Width[numtrait.I8](), ArithmeticShift[numtrait.I8](),
		Bounds[numtrait.I16](), Width[numtrait.I16](), ArithmeticShift[numtrait.I16](),
		Bounds[numtrait.I32](), Width[numtrait.I32](), ArithmeticShift[numtrait.I32](),
		Bounds[numtrait.I64](), Width[numtrait.I64](), ArithmeticShift[numtrait.I64](),
		Bounds[numtrait.Isize](), Width[numtrait.Isize](), ArithmeticShift[numtrait.Isize](),
	)

	r.add(
		Bounds[numtrait.U8](), Width[numtrait.U8](), LogicalShift[numtrait.U8](),
		Bounds[numtrait.U16](), Width[numtrait.U16](), LogicalShift[numtrait.U16](),
		Bounds[numtrait.U32](), Width[numtrait.U32](), LogicalShift[numtrait.U32](),
		Bounds[numtrait.U64](), Width[numtrait.U64](), LogicalShift[numtrait.U64](),
		Bounds[numtrait.Usize](), Width[numtrait.Usize](), LogicalShift[numtrait.Usize](),
	)

	r.add(pairLaws[numtrait.U8, numtrait.I8]()...)
	r.add(pairLaws[numtrait.U16, numtrait.I16]()...)
	r.add(pairLaws[numtrait.U32, numtrait.I32]()...)
	r.add(pairLaws[numtrait.U64, numtrait.I64]()...)
	r.add(pairLaws[numtrait.Usize, numtrait.Isize]()...)

	return r
}

func pairLaws[U pairUnsigned[U, S], S pairSigned[S, U]]() []Result {
	return []Result{
		ZeroPair[U, S](),
		RoundTrip[U, S](),
		Reinterpret[U, S](),
	}
}

// Package numtrait classifies Go's numeric primitives into a hierarchy of
// generic capabilities.
//
// Each capability is a constraint interface. Operators come from a type set,
// associated constants and conversions come from methods, so generic code can
// be written once against "is an integer", "is signed" or "shifts
// arithmetically" instead of against each concrete type:
//
//	func Clamp[T numtrait.Integer[T]](v T) T {
//		return max(numtrait.Zero[T](), min(v, numtrait.Max[T]()))
//	}
//
// Builtins cannot carry methods, so registration happens on named types over
// each builtin: I8, I16, I32, I64, Isize, U8, U16, U32, U64, Usize, F32 and F64.
// A type that is not registered does not satisfy any capability that carries
// methods, and a type registered against the wrong capability fails to build.
//
// Key design constraints:
//   - Signed and Unsigned have disjoint type sets; no type satisfies both
//   - AddSign and DropSign are declared in same-width pairs and are bit
//     reinterpretations, never clamping casts
//   - ArithmeticShr and LogicalShr are derived by embedding, never registered
//   - The per-type registration is generated from internal/typespec/primitives.cue
package numtrait

//go:generate go run ./cmd/numtrait-gen --out zz_generated.registry.go

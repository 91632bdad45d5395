// Package typespec loads the primitive registration table.
//
// The table is a CUE document (primitives.cue, embedded) listing every
// registered numeric type with its builtin, class, width and same-width
// counterpart. Compile turns the CUE value into a Table; Validate checks the
// pairing invariants the generated registration relies on.
//
// typespec imports nothing internal; internal/gen and internal/cli build on it.
package typespec

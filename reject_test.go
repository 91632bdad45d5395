package numtrait

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeCheck type-checks a one-line declaration against this package from
// source.
func typeCheck(t *testing.T, decl string) error {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)

	src := "package p\n\nimport \"github.com/roach88/numtrait\"\n\n" + decl + "\n"
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filepath.Join(wd, "p.go"), src, 0)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	_, err = conf.Check("p", fset, []*ast.File{f}, nil)
	return err
}

// Capabilities are enforced by the compiler: a Float-only type cannot be
// passed where an Integer is required, and polarity cannot be mixed up.
func TestBuildRejectsWrongCapability(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks from source")
	}
	if err := typeCheck(t, "var _ = numtrait.Max[numtrait.I32]()"); err != nil {
		t.Skipf("source importer unavailable: %v", err)
	}

	tests := []struct {
		name string
		decl string
	}{
		{"float as integer", "var _ = numtrait.Max[numtrait.F64]()"},
		{"builtin without registration", "var _ = numtrait.Max[int32]()"},
		{"signed as logical shift", "var _ = numtrait.ShrLogical[numtrait.I32]"},
		{"unsigned as arithmetic shift", "var _ = numtrait.ShrArithmetic[numtrait.U32]"},
		{"float as arithmetic shift", "var _ = numtrait.ShrArithmetic[numtrait.F32]"},
		{"mismatched width pair", "var _ = numtrait.ToSigned[numtrait.U8, numtrait.I16]"},
		{"reversed pair", "var _ = numtrait.ToSigned[numtrait.I8, numtrait.U8]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := typeCheck(t, tt.decl)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "does not satisfy")
		})
	}
}

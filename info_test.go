package numtrait

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredOrder(t *testing.T) {
	var names []string
	for _, info := range Registered() {
		names = append(names, info.Name)
	}
	want := []string{"F32", "F64", "I8", "I16", "I32", "I64", "Isize", "U8", "U16", "U32", "U64", "Usize"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Registered() names mismatch (-want +got):\n%s", diff)
	}
}

func TestKindMatchesIndex(t *testing.T) {
	for i, info := range Registered() {
		assert.Equal(t, Kind(i+1), info.Kind, info.Name)
		assert.Equal(t, info.Name, info.Kind.String())
	}
}

func TestDerivedShiftCapabilities(t *testing.T) {
	for _, info := range Registered() {
		t.Run(info.Name, func(t *testing.T) {
			c := info.Caps
			assert.False(t, c.Has(CapArithmeticShr|CapLogicalShr), "no type has both shift semantics")
			assert.False(t, c.Has(CapSigned|CapUnsigned), "polarity is exclusive")
			assert.Equal(t, c.Has(CapInteger|CapSigned), c.Has(CapArithmeticShr))
			assert.Equal(t, c.Has(CapInteger|CapUnsigned), c.Has(CapLogicalShr))
		})
	}
}

func TestFloatsAreSignedOnly(t *testing.T) {
	for _, name := range []string{"F32", "F64"} {
		info, ok := Lookup(name)
		require.True(t, ok)
		assert.Equal(t, CapFloat|CapSigned, info.Caps)
		assert.Equal(t, KindInvalid, info.Counterpart)
	}
}

func TestCounterpartsAreSymmetric(t *testing.T) {
	for _, info := range Registered() {
		if !info.Caps.Has(CapInteger) {
			continue
		}
		t.Run(info.Name, func(t *testing.T) {
			pair, ok := info.Counterpart.Info()
			require.True(t, ok)
			assert.Equal(t, info.Kind, pair.Counterpart)
			assert.Equal(t, info.Width, pair.Width)
			assert.NotEqual(t, info.Caps.Has(CapSigned), pair.Caps.Has(CapSigned))
			if info.Caps.Has(CapUnsigned) {
				assert.True(t, info.Caps.Has(CapAddSign))
				assert.True(t, pair.Caps.Has(CapDropSign))
			}
		})
	}
}

func TestLookupByBuiltinName(t *testing.T) {
	info, ok := Lookup("uint64")
	require.True(t, ok)
	assert.Equal(t, "U64", info.Name)
	assert.Equal(t, 64, info.Width)

	_, ok = Lookup("complex128")
	assert.False(t, ok)
}

func TestInfoOf(t *testing.T) {
	info := InfoOf[I32]()
	assert.Equal(t, KindI32, info.Kind)
	assert.Equal(t, 32, info.Width)
	assert.Equal(t, KindU32, info.Counterpart)
	assert.True(t, info.Caps.Has(CapArithmeticShr))

	assert.Equal(t, "float64", InfoOf[F64]().Underlying)
}

func TestKindInfoOutOfRange(t *testing.T) {
	_, ok := KindInvalid.Info()
	assert.False(t, ok)
	_, ok = Kind(len(Registered()) + 1).Info()
	assert.False(t, ok)
	assert.Equal(t, "invalid", Kind(-1).String())
}

func TestCapString(t *testing.T) {
	assert.Equal(t, "none", Cap(0).String())
	assert.Equal(t, "Float|Signed", (CapFloat | CapSigned).String())
	assert.Equal(t, []string{"Integer", "Unsigned", "AddSign", "LogicalShr"},
		InfoOf[U8]().Caps.Names())
}

func TestInfoJSON(t *testing.T) {
	data, err := json.Marshal(InfoOf[U16]())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "U16",
		"name": "U16",
		"underlying": "uint16",
		"width": 16,
		"caps": "Integer|Unsigned|AddSign|LogicalShr",
		"counterpart": "I16"
	}`, string(data))
}

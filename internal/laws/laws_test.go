package laws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numtrait"
)

// lyingU16 claims the wrong width and the wrong maximum.
type lyingU16 uint16

func (lyingU16) Kind() numtrait.Kind { return numtrait.KindU16 }
func (lyingU16) Width() int { return 32 }
func (lyingU16) Min() lyingU16 { return 0 }
func (lyingU16) Max() lyingU16 { return 1000 }
func (lyingU16) Zero() lyingU16 { return 0 }
func (lyingU16) One() lyingU16 { return 1 }

// clampU8 and clampI8 convert by clamping instead of reinterpreting bits.
type clampU8 uint8
type clampI8 int8

func (clampU8) Kind() numtrait.Kind { return numtrait.KindU8 }
func (clampU8) Width() int { return 8 }
func (clampU8) Min() clampU8 { return 0 }
func (clampU8) Max() clampU8 { return 255 }
func (clampU8) Zero() clampU8 { return 0 }
func (clampU8) One() clampU8 { return 1 }
func (u clampU8) AddSign() clampI8 {
	if u > 127 {
		return 127
	}
	return clampI8(u)
}

func (clampI8) Kind() numtrait.Kind { return numtrait.KindI8 }
func (clampI8) Width() int { return 8 }
func (clampI8) Min() clampI8 { return -128 }
func (clampI8) Max() clampI8 { return 127 }
func (clampI8) Zero() clampI8 { return 0 }
func (clampI8) One() clampI8 { return 1 }
func (s clampI8) DropSign() clampU8 {
	if s < 0 {
		return 0
	}
	return clampU8(s)
}

func TestCheckAllHolds(t *testing.T) {
	report := CheckAll()

	require.Len(t, report.Results, 47)
	for _, res := range report.Failures() {
		t.Errorf("%s %s: %s", res.Law, res.Type, res.Detail)
	}
	assert.True(t, report.OK())
	assert.Greater(t, report.Cases(), 1<<16, "16-bit pairs are checked exhaustively")
}

func TestCheckAllCoversEveryRegisteredType(t *testing.T) {
	seen := map[string]bool{}
	for _, res := range CheckAll().Results {
		seen[res.Law+" "+res.Type] = true
	}

	for _, info := range numtrait.Registered() {
		assert.True(t, seen[LawWidth+" "+info.Name], "%s has no width check", info.Name)
		if !info.Caps.Has(numtrait.CapInteger) {
			continue
		}
		assert.True(t, seen[LawBounds+" "+info.Name], "%s has no bounds check", info.Name)
		assert.True(t, seen[LawShift+" "+info.Name], "%s has no shift check", info.Name)

		if info.Caps.Has(numtrait.CapAddSign) {
			pair := info.Name + "/" + info.Counterpart.String()
			for _, law := range []string{LawZeroPair, LawRoundTrip, LawReinterp} {
				assert.True(t, seen[law+" "+pair], "%s has no %s check", pair, law)
			}
		}
	}
}

func TestPatternsExhaustiveForNarrowTypes(t *testing.T) {
	assert.Len(t, Patterns[numtrait.U8](), 256)
	assert.Len(t, Patterns[numtrait.U16](), 1<<16)
}

func TestPatternsSampledForWideTypes(t *testing.T) {
	pats := Patterns[numtrait.U64]()
	assert.Len(t, pats, 5+2*64)
	assert.Contains(t, pats, numtrait.U64(1<<63))
	assert.Contains(t, pats, numtrait.Max[numtrait.U64]())
	assert.Contains(t, pats, ^numtrait.U64(1))
}

func TestBoundsDetectsWrongMax(t *testing.T) {
	res := Bounds[lyingU16]()
	assert.False(t, res.OK)
	assert.Equal(t, LawBounds, res.Law)
	assert.Equal(t, "U16", res.Type)
	assert.Contains(t, res.Detail, "MAX+1")
}

func TestWidthDetectsWrongWidth(t *testing.T) {
	res := Width[lyingU16]()
	assert.False(t, res.OK)
	assert.Contains(t, res.Detail, "Width() = 32")
}

func TestLogicalShiftDetectsWrongWidth(t *testing.T) {
	res := LogicalShift[lyingU16]()
	assert.False(t, res.OK)
}

func TestRoundTripDetectsClamping(t *testing.T) {
	res := RoundTrip[clampU8, clampI8]()
	assert.False(t, res.OK)
	assert.Equal(t, "U8/I8", res.Type)
	assert.Equal(t, 512, res.Cases)
}

func TestReinterpretDetectsClamping(t *testing.T) {
	res := Reinterpret[clampU8, clampI8]()
	assert.False(t, res.OK)
	assert.Contains(t, res.Detail, "want -1")
}

func TestZeroPairHoldsEvenWhenClamping(t *testing.T) {
	assert.True(t, ZeroPair[clampU8, clampI8]().OK)
}

func TestReportFailures(t *testing.T) {
	r := Report{Results: []Result{
		{Law: LawBounds, Type: "A", OK: true, Cases: 3},
		{Law: LawWidth, Type: "B", OK: false, Detail: "x", Cases: 2},
	}}
	assert.False(t, r.OK())
	assert.Equal(t, 5, r.Cases())
	require.Len(t, r.Failures(), 1)
	assert.Equal(t, "B", r.Failures()[0].Type)
}

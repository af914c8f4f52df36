package interval

import (
	"math"
	"testing"
)

func TestULPPositive(t *testing.T) {
	f := Float32Format()

	for _, x := range []float64{0, 1, 0.1, 1e-20, 1e20, -3.25, math.Pi} {
		if ulp := f.ULP(x, 1); !(ulp > 0) {
			t.Errorf("ULP(%v) = %v, want > 0", x, ulp)
		}
	}
}

func TestULPMonotonic(t *testing.T) {
	f := Float32Format()

	// Spacing never shrinks as magnitude grows, within a binade and
	// across binades.
	values := []float64{1.0, 1.125, 1.25, 1.5, 1.75, 1.9999, 2.0, 3.0, 4.0, 1e10}
	prev := f.ULP(values[0], 1)
	for _, x := range values[1:] {
		cur := f.ULP(x, 1)
		if cur < prev {
			t.Errorf("ULP(%v) = %v smaller than ULP at lower magnitude (%v)", x, cur, prev)
		}
		prev = cur
	}

	// Sign does not matter.
	if f.ULP(-1.5, 1) != f.ULP(1.5, 1) {
		t.Errorf("ULP(-1.5) = %v, ULP(1.5) = %v", f.ULP(-1.5, 1), f.ULP(1.5, 1))
	}
}

func TestULPPowerOfTwoBoundary(t *testing.T) {
	f := Float64Format()

	// Below a power of two the spacing halves.
	above := f.ULP(1.0, 1)
	below := f.ULP(math.Nextafter(1.0, 0), 1)
	if below >= above {
		t.Errorf("ULP below 1.0 (%v) not smaller than at 1.0 (%v)", below, above)
	}
}

func TestRoundDirections(t *testing.T) {
	f := Float16Format()
	d := 0.1 // not representable in half precision

	down := f.Round(d, false)
	up := f.Round(d, true)

	if !(down < d && d < up) {
		t.Fatalf("Round(0.1): down=%v up=%v do not bracket", down, up)
	}
	if f.Round(0.5, false) != 0.5 || f.Round(0.5, true) != 0.5 {
		t.Error("Round moved an exactly representable value")
	}
}

func TestRoundOutContainsInput(t *testing.T) {
	f := Float16Format()

	x := NewInterval(0.1, 0.3)
	out := f.RoundOut(x, false)

	if !out.Contains(x) {
		t.Errorf("RoundOut(%v) = %v does not contain input", x, out)
	}
}

func TestConvertExactValueIsTight(t *testing.T) {
	f := Float32Format()

	x := Exactly(0.5)
	c := f.Convert(x)
	if c.Lo() != 0.5 || c.Hi() != 0.5 {
		t.Errorf("Convert(0.5) = %v, want [0.5, 0.5]", c)
	}
}

// A half precision profile with every capability left undecided must
// produce outward-rounded bounds that still bracket the value.
func TestConvertRelaxedHalfProfile(t *testing.T) {
	f := NewFloatFormat(-14, 15, 10, true, Maybe, Maybe, Maybe)

	c := f.Convert(Exactly(0.1))
	if c.IsEmpty() {
		t.Fatal("Convert(0.1) is empty")
	}
	if !(c.Lo() < 0.1 && 0.1 < c.Hi()) {
		t.Errorf("Convert(0.1) = %v does not bracket 0.1", c)
	}
	if c.HasNaN() {
		t.Error("Convert(0.1) produced a NaN part")
	}
}

func TestConvertNaN(t *testing.T) {
	withNaN := Float32Format()
	c := withNaN.Convert(NaN())
	if !c.HasNaN() {
		t.Error("format with NaN dropped the NaN part")
	}

	noNaN := NewFloatFormat(-126, 127, 23, true, Yes, Yes, No)
	c = noNaN.Convert(NaN())
	if c.HasNaN() {
		t.Error("format without NaN kept the NaN part")
	}
	// NaN may decay to any value when the format cannot represent it.
	if c.NumberPart().IsEmpty() {
		t.Error("format without NaN produced no fallback values")
	}
}

func TestClampValueOverflow(t *testing.T) {
	f := Float16Format() // hasInf = Yes

	c := f.ClampValue(1e10)
	if !c.ContainsValue(math.Inf(1)) {
		t.Errorf("overflow with Inf support = %v, want +Inf included", c)
	}

	noInf := NewFloatFormat(-14, 15, 10, true, Yes, No, No)
	c = noInf.ClampValue(1e10)
	if c.ContainsValue(math.Inf(1)) {
		t.Errorf("overflow without Inf support includes +Inf: %v", c)
	}
	if !c.ContainsValue(noInf.MaxValue()) {
		t.Errorf("overflow without Inf support misses maxValue: %v", c)
	}
}

func TestClampValueUnderflow(t *testing.T) {
	noSub := NewFloatFormat(-14, 15, 10, true, No, Yes, Yes)

	tiny := math.Ldexp(1, -20) // below the normal range
	c := noSub.ClampValue(tiny)
	if !c.ContainsValue(0) {
		t.Errorf("underflow without subnormals misses zero: %v", c)
	}
}

func TestConvertIntervalSoundness(t *testing.T) {
	f := Float16Format()

	tests := []struct {
		name string
		in   Interval
	}{
		{"fraction", NewInterval(0.1, 0.2)},
		{"spanning zero", NewInterval(-1.5, 2.5)},
		{"tiny", NewInterval(1e-9, 2e-9)},
		{"large", NewInterval(1e4, 7e4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := f.Convert(tt.in)
			if !out.Contains(tt.in) {
				t.Errorf("Convert(%v) = %v does not contain input", tt.in, out)
			}
		})
	}
}

package texture

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		mode WrapMode
		c    int
		size int
		want int
	}{
		{ClampToEdge, -3, 4, 0},
		{ClampToEdge, 7, 4, 3},
		{ClampToEdge, 2, 4, 2},

		{ClampToBorder, -3, 4, -1},
		{ClampToBorder, 9, 4, 4},
		{ClampToBorder, 1, 4, 1},

		{Repeat, -1, 4, 3},
		{Repeat, 4, 4, 0},
		{Repeat, 6, 4, 2},

		{MirroredRepeat, -1, 4, 0},
		{MirroredRepeat, 4, 4, 3},
		{MirroredRepeat, 5, 4, 2},
		{MirroredRepeat, 7, 4, 0},
		{MirroredRepeat, 8, 4, 0},

		{MirroredRepeatCL, -2, 4, 0},
		{MirroredRepeatCL, 5, 4, 3},
	}

	for _, tt := range tests {
		if got := Wrap(tt.mode, tt.c, tt.size); got != tt.want {
			t.Errorf("Wrap(%v, %d, %d) = %d, want %d", tt.mode, tt.c, tt.size, got, tt.want)
		}
	}
}

func TestWrapRepeatIdempotent(t *testing.T) {
	for c := -16; c <= 16; c++ {
		once := Wrap(Repeat, c, 4)
		if twice := Wrap(Repeat, once, 4); twice != once {
			t.Errorf("Repeat not idempotent at %d: %d then %d", c, once, twice)
		}
		if once < 0 || once >= 4 {
			t.Errorf("Repeat(%d) = %d out of range", c, once)
		}
	}
}

func TestUnnormalize(t *testing.T) {
	tests := []struct {
		mode WrapMode
		c    float32
		size int
		want float32
	}{
		{ClampToEdge, 0.5, 8, 4},
		{Repeat, 1.25, 8, 10},
		{RepeatCL, 1.25, 8, 2},
		{MirroredRepeatCL, -0.25, 8, 2},
		{MirroredRepeatCL, 1.25, 8, 6},
	}

	for _, tt := range tests {
		if got := Unnormalize(tt.mode, tt.c, tt.size); absf(got-tt.want) > 1e-5 {
			t.Errorf("Unnormalize(%v, %v, %d) = %v, want %v", tt.mode, tt.c, tt.size, got, tt.want)
		}
	}
}

func checkerboard2D(t *testing.T, w, h int, a, b Vec4) Access {
	t.Helper()
	acc := newTestAccess(t, NewFormat(RGBA, Float), w, h, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				acc.SetPixel(a, x, y, 0)
			} else {
				acc.SetPixel(b, x, y, 0)
			}
		}
	}
	return acc
}

func TestSampleNearest2D(t *testing.T) {
	black := Vec4{0, 0, 0, 1}
	white := Vec4{1, 1, 1, 1}
	acc := checkerboard2D(t, 4, 4, black, white)
	s := NewSampler(ClampToEdge, ClampToEdge, ClampToEdge, Nearest, Nearest)

	// Texel centers.
	if got := SampleNearest2D(acc.ConstAccess, s, 0.5, 0.5, 0); got != black {
		t.Errorf("texel (0,0) = %v, want black", got)
	}
	if got := SampleNearest2D(acc.ConstAccess, s, 1.5, 0.5, 0); got != white {
		t.Errorf("texel (1,0) = %v, want white", got)
	}
}

func TestSampleLinear2DMidpoint(t *testing.T) {
	black := Vec4{0, 0, 0, 1}
	white := Vec4{1, 1, 1, 1}
	acc := checkerboard2D(t, 2, 2, black, white)
	s := NewSampler(ClampToEdge, ClampToEdge, ClampToEdge, Linear, Linear)

	// Center of the texture: equal blend of all four texels.
	got := SampleLinear2D(acc.ConstAccess, s, 1.0, 1.0, 0)
	want := Vec4{0.5, 0.5, 0.5, 1}
	for i := range got {
		if absf(got[i]-want[i]) > 1e-6 {
			t.Fatalf("center blend = %v, want %v", got, want)
		}
	}
}

func TestSampleLinearBorder(t *testing.T) {
	acc := newTestAccess(t, NewFormat(RGBA, Float), 2, 2, 1)
	acc.Clear(Vec4{1, 1, 1, 1})

	s := NewSampler(ClampToBorder, ClampToBorder, ClampToBorder, Linear, Linear)
	s.BorderColor = Vec4{0, 0, 0, 0}

	// Exactly on the left edge: half texel, half border.
	got := SampleLinear2D(acc.ConstAccess, s, 0, 1, 0)
	if absf(got[0]-0.5) > 1e-6 {
		t.Errorf("edge blend = %v, want red 0.5", got)
	}
}

func TestExecCompareModes(t *testing.T) {
	s := NewSampler(ClampToEdge, ClampToEdge, ClampToEdge, Nearest, Nearest)

	tests := []struct {
		mode       CompareMode
		depth, ref float32
		want       float32
	}{
		{CompareLess, 0.6, 0.5, 1},
		{CompareLess, 0.4, 0.5, 0},
		{CompareLessOrEqual, 0.5, 0.5, 1},
		{CompareGreater, 0.4, 0.5, 1},
		{CompareGreaterOrEqual, 0.5, 0.5, 1},
		{CompareEqual, 0.5, 0.5, 1},
		{CompareNotEqual, 0.5, 0.5, 0},
		{CompareAlways, 0, 1, 1},
		{CompareNever, 0, 1, 0},
	}

	for _, tt := range tests {
		s.Compare = tt.mode
		if got := execCompare(s, tt.depth, tt.ref, false); got != tt.want {
			t.Errorf("execCompare(%v, depth=%v, ref=%v) = %v, want %v", tt.mode, tt.depth, tt.ref, got, tt.want)
		}
	}
}

func TestExecCompareFixedPointClamps(t *testing.T) {
	s := NewSampler(ClampToEdge, ClampToEdge, ClampToEdge, Nearest, Nearest)
	s.Compare = CompareLess

	// Reference 1.5 clamps to 1.0 for fixed point depth, making the
	// comparison against depth 1.0 false.
	if got := execCompare(s, 1.0, 1.5, true); got != 0 {
		t.Errorf("fixed point compare = %v, want 0", got)
	}
	if got := execCompare(s, 1.0, 1.5, false); got != 1 {
		t.Errorf("float compare = %v, want 1", got)
	}
}

func TestSampleLinear2DCompare(t *testing.T) {
	acc := newTestAccess(t, NewFormat(D, Float), 2, 2, 1)
	acc.SetPixDepth(0.0, 0, 0, 0)
	acc.SetPixDepth(1.0, 1, 0, 0)
	acc.SetPixDepth(0.0, 0, 1, 0)
	acc.SetPixDepth(1.0, 1, 1, 0)

	s := NewSampler(ClampToEdge, ClampToEdge, ClampToEdge, Linear, Linear)
	s.Compare = CompareLess

	// Reference 0.5 passes against the 1.0 texels only; at the center
	// the PCF blend is 0.5.
	got := SampleLinear2DCompare(acc.ConstAccess, s, 0.5, 1.0, 1.0, 0)
	if absf(got-0.5) > 1e-6 {
		t.Errorf("PCF blend = %v, want 0.5", got)
	}
}

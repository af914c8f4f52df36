package texture

import (
	"math"
	"testing"
)

func TestUnormRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.25, 0.5, 0.75, 1} {
		var buf [1]byte
		floatToChannel(buf[:], v, UnormInt8)
		got := channelToFloat(buf[:], UnormInt8)
		if absf(got-v) > 1.0/255/2 {
			t.Errorf("unorm8 round trip %v -> %v", v, got)
		}
	}
}

func TestUnormClamps(t *testing.T) {
	var buf [1]byte
	floatToChannel(buf[:], 2.0, UnormInt8)
	if got := channelToFloat(buf[:], UnormInt8); got != 1 {
		t.Errorf("unorm8 over-range encoded to %v, want 1", got)
	}
	floatToChannel(buf[:], -1.0, UnormInt8)
	if got := channelToFloat(buf[:], UnormInt8); got != 0 {
		t.Errorf("unorm8 under-range encoded to %v, want 0", got)
	}
}

func TestSnormMostNegative(t *testing.T) {
	// Both most-negative codes decode to exactly -1.
	buf := []byte{0x80}
	if got := channelToFloat(buf, SnormInt8); got != -1 {
		t.Errorf("snorm8 0x80 = %v, want -1", got)
	}
	buf[0] = 0x81
	if got := channelToFloat(buf, SnormInt8); got != -1 {
		t.Errorf("snorm8 0x81 = %v, want -1", got)
	}
}

func TestHalfFloatChannel(t *testing.T) {
	var buf [2]byte
	for _, v := range []float32{0, 1, -2.5, 0.333251953125, 65504} {
		floatToChannel(buf[:], v, HalfFloat)
		got := channelToFloat(buf[:], HalfFloat)
		rel := absf(got-v) / maxAbs(absf(v), 1)
		if rel > 1.0/1024 {
			t.Errorf("half round trip %v -> %v", v, got)
		}
	}
}

func maxAbs(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func TestUnsignedF11F10(t *testing.T) {
	tests := []struct {
		in   float32
		mant int
	}{
		{0, 6}, {1, 6}, {0.5, 6}, {1024, 6},
		{0, 5}, {1, 5}, {3.5, 5},
	}

	for _, tt := range tests {
		bits := floatToUnsignedF(tt.in, tt.mant)
		got := unsignedFToFloat(bits, tt.mant)
		if got != tt.in {
			t.Errorf("UF%d round trip %v -> %v", 5+tt.mant, tt.in, got)
		}
	}

	// Negative values clamp to zero.
	if got := unsignedFToFloat(floatToUnsignedF(-1, 6), 6); got != 0 {
		t.Errorf("UF11(-1) = %v, want 0", got)
	}
	// NaN encodes to a NaN pattern.
	if got := unsignedFToFloat(floatToUnsignedF(float32(math.NaN()), 6), 6); !math.IsNaN(float64(got)) {
		t.Error("UF11(NaN) did not stay NaN")
	}
}

func TestRGB9E5(t *testing.T) {
	tests := [][3]float32{
		{0, 0, 0},
		{1, 1, 1},
		{0.5, 0.25, 0.125},
		{100, 1, 0.01},
	}

	for _, rgb := range tests {
		bits := floatToRGB9E5(rgb[0], rgb[1], rgb[2])
		r, g, b := rgb9e5ToFloat(bits)

		for i, got := range []float32{r, g, b} {
			want := rgb[i]
			// Shared exponent quantization: 9-bit mantissa relative to
			// the largest component.
			maxC := maxAbs(maxAbs(rgb[0], rgb[1]), rgb[2])
			tol := maxAbs(maxC/256, 1e-6)
			if absf(got-want) > tol {
				t.Errorf("rgb9e5 %v: channel %d = %v, want ~%v", rgb, i, got, want)
			}
		}
	}
}

func TestConvertSatRte(t *testing.T) {
	tests := []struct {
		in     float32
		lo, hi float64
		want   int64
	}{
		{0.5, 0, 255, 0},   // ties to even
		{1.5, 0, 255, 2},   // ties to even
		{2.4, 0, 255, 2},   // rounds down
		{300, 0, 255, 255}, // saturates high
		{-10, 0, 255, 0},   // saturates low
		{float32(math.NaN()), 0, 255, 0},
	}

	for _, tt := range tests {
		if got := convertSatRte(tt.in, tt.lo, tt.hi); got != tt.want {
			t.Errorf("convertSatRte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

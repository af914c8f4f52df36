package texverify

import (
	"math"
	"testing"

	"github.com/gogpu/texverify/interval"
	"github.com/gogpu/texverify/texture"
)

func TestComputeFixedPointError(t *testing.T) {
	// The error of an n-bit fixed point value is just under 2^-n.
	for _, bits := range []int{4, 8, 16} {
		err := float64(ComputeFixedPointError(bits))
		hi := math.Ldexp(1, -bits)
		if err <= hi/2 || err >= hi {
			t.Errorf("ComputeFixedPointError(%d) = %v, want in (2^-%d, 2^-%d)", bits, err, bits+1, bits)
		}
	}
	if ComputeFixedPointError(23) != 0 {
		t.Error("23 accurate bits must give zero error")
	}
}

func TestComputeFloatingPointErrorScales(t *testing.T) {
	// The error tracks the value's exponent: doubling the value doubles
	// the error.
	e1 := ComputeFloatingPointError(1.0, 8)
	e2 := ComputeFloatingPointError(2.0, 8)
	if e2 != 2*e1 {
		t.Errorf("error at 2.0 = %v, want %v", e2, 2*e1)
	}

	// Zero sits at the minimum exponent.
	e0 := ComputeFloatingPointError(0, 8)
	if e0 <= 0 || e0 >= e1 {
		t.Errorf("error at 0 = %v, want positive and below %v", e0, e1)
	}

	if ComputeFloatingPointError(1.0, 23) != 0 || ComputeFloatingPointError(1.0, 30) != 0 {
		t.Error("full mantissa precision must give zero error")
	}
}

func TestComputeNonNormalizedCoordBounds(t *testing.T) {
	// Exact precision: normalized 0.5 over 8 texels pins the coordinate
	// at 4.
	minC, maxC := ComputeNonNormalizedCoordBounds(true, 8, 0.5, 30, 30)
	if minC != 4 || maxC != 4 {
		t.Errorf("exact bounds = [%v, %v], want [4, 4]", minC, maxC)
	}

	// Finite precision widens symmetrically around the exact value.
	minC, maxC = ComputeNonNormalizedCoordBounds(true, 8, 0.5, 10, 8)
	if !(minC < 4 && 4 < maxC) {
		t.Errorf("bounds = [%v, %v] do not contain 4", minC, maxC)
	}

	// Unnormalized coordinates skip the scale.
	minC, maxC = ComputeNonNormalizedCoordBounds(false, 8, 3.25, 30, 30)
	if minC != 3.25 || maxC != 3.25 {
		t.Errorf("unnormalized bounds = [%v, %v], want [3.25, 3.25]", minC, maxC)
	}
}

func TestPossibleCubeFaces(t *testing.T) {
	bits := CoordBits{10, 10, 10}

	// Clearly dominant axis.
	faces := PossibleCubeFaces([3]float32{1, 0.1, 0.1}, bits)
	if len(faces) != 1 || faces[0] != texture.CubeFacePosX {
		t.Errorf("dominant +x faces = %v, want [PosX]", faces)
	}
	faces = PossibleCubeFaces([3]float32{0.1, -1, 0.1}, bits)
	if len(faces) != 1 || faces[0] != texture.CubeFaceNegY {
		t.Errorf("dominant -y faces = %v, want [NegY]", faces)
	}

	// A tie between two axes admits both axis pairs.
	faces = PossibleCubeFaces([3]float32{1, 1, 0}, bits)
	if len(faces) != 4 {
		t.Errorf("tied axes gave %d faces, want 4", len(faces))
	}
	seen := map[texture.CubeFace]bool{}
	for _, f := range faces {
		seen[f] = true
	}
	for _, f := range []texture.CubeFace{texture.CubeFacePosX, texture.CubeFaceNegX, texture.CubeFacePosY, texture.CubeFaceNegY} {
		if !seen[f] {
			t.Errorf("tied axes missing face %v", f)
		}
	}

	// A zero vector rules nothing in.
	if faces = PossibleCubeFaces([3]float32{0, 0, 0}, bits); faces != nil {
		t.Errorf("zero direction faces = %v, want nil", faces)
	}
}

func TestComputeLayerRange(t *testing.T) {
	tests := []struct {
		coord    float32
		min, max int
	}{
		{-5, 0, 0},
		{0, 0, 0},
		{1.6, 2, 2},
		{1.5, 1, 2}, // rounding boundary straddles two layers
		{9, 3, 3},
	}

	for _, tt := range tests {
		lo, hi := ComputeLayerRange(4, 10, tt.coord)
		if lo != tt.min || hi != tt.max {
			t.Errorf("ComputeLayerRange(4, 10, %v) = [%d, %d], want [%d, %d]", tt.coord, lo, hi, tt.min, tt.max)
		}
	}
}

func TestComputeLodBoundsFromDerivates(t *testing.T) {
	prec := NewLodPrecision(22, 16)

	// dx moves 4 texels in u, dy moves 4 texels in v: the max-axis rule
	// gives lod 2, the sum rule lod 3.
	lod := ComputeLodBoundsFromDerivates2D(4, 0, 0, 4, prec)
	if !(lod.Lo() <= 2 && 3 <= lod.Hi()) {
		t.Errorf("lod bounds %v do not contain [2, 3]", lod)
	}
	if lod.Lo() < 1.9 || lod.Hi() > 3.1 {
		t.Errorf("lod bounds %v wider than precision warrants", lod)
	}

	// Isotropic derivatives pin both rules to the same value.
	lod = ComputeLodBoundsFromDerivates1D(8, 8, prec)
	if !(lod.Lo() <= 3 && 3 <= lod.Hi()) {
		t.Errorf("isotropic lod bounds %v do not contain 3", lod)
	}
}

func TestComputeCubeLodBoundsFromDerivates(t *testing.T) {
	prec := NewLodPrecision(22, 16)

	// Looking down +x with derivatives of 1/64 per pixel in each face
	// axis on a 64 texel face: du and dv are 0.5, so lod sits in [-1, 0].
	coord := [3]float32{1, 0, 0}
	dx := [3]float32{0, 1.0 / 64, 0}
	dy := [3]float32{0, 0, 1.0 / 64}

	lod := ComputeCubeLodBoundsFromDerivates(coord, dx, dy, 64, prec)
	if !(lod.Lo() <= -1 && 0 <= lod.Hi()) {
		t.Errorf("cube lod bounds %v do not contain [-1, 0]", lod)
	}
	if lod.Lo() < -1.1 || lod.Hi() > 0.1 {
		t.Errorf("cube lod bounds %v wider than precision warrants", lod)
	}
}

func TestClampLodBounds(t *testing.T) {
	prec := NewLodPrecision(22, 8)

	got := ClampLodBounds(interval.NewInterval(-5, 10), 0, 4, prec)
	if got.Lo() > 0 || got.Lo() < -0.01 {
		t.Errorf("clamped lo = %v, want just below 0", got.Lo())
	}
	if got.Hi() < 4 || got.Hi() > 4.01 {
		t.Errorf("clamped hi = %v, want just above 4", got.Hi())
	}

	// Bounds already inside the range pass through.
	got = ClampLodBounds(interval.NewInterval(1, 2), 0, 4, prec)
	if got.Lo() != 1 || got.Hi() != 2 {
		t.Errorf("inside bounds changed to %v", got)
	}
}

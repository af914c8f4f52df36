package texverify

import (
	"testing"
	"time"

	"github.com/gogpu/texverify/interval"
	"github.com/gogpu/texverify/texture"
)

func lookupPrec() LookupPrecision {
	return NewLookupPrecision(
		CoordBits{20, 20, 20},
		CoordBits{16, 16, 16},
		texture.Vec4{0.01, 0.01, 0.01, 0.01},
	)
}

func gradient2D(t *testing.T, w, h int) *texture.Texture2D {
	t.Helper()
	tex := texture.NewTexture2D(texture.NewFormat(texture.RGBA, texture.Float), w, h)
	a := tex.AllocLevel(0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a.SetPixel(texture.Vec4{
				float32(x) / float32(w),
				float32(y) / float32(h),
				float32(x+y) / float32(w+h),
				1,
			}, x, y, 0)
		}
	}
	return tex
}

func TestLookup2DAcceptsReference(t *testing.T) {
	view := gradient2D(t, 8, 8).View()
	prec := lookupPrec()
	lod := interval.Exactly(0)

	filters := []texture.FilterMode{texture.Nearest, texture.Linear}
	coords := [][2]float32{
		{0.5, 0.5},
		{0.1, 0.9},
		{0.33, 0.77},
		{0, 0},
		{1, 1},
		{-0.25, 1.5}, // wrapped
	}

	for _, filter := range filters {
		s := texture.NewSampler(texture.Repeat, texture.Repeat, texture.Repeat, filter, filter)
		for _, c := range coords {
			result := view.Sample(s, c[0], c[1], 0)
			if !IsLookup2DResultValid(view, s, prec, c, lod, result) {
				t.Errorf("filter %v coord %v: reference result %v rejected", filter, c, result)
			}
		}
	}
}

func TestLookup2DRejectsGrossError(t *testing.T) {
	view := gradient2D(t, 8, 8).View()
	prec := lookupPrec()
	lod := interval.Exactly(0)

	s := texture.NewSampler(texture.ClampToEdge, texture.ClampToEdge, texture.ClampToEdge, texture.Linear, texture.Linear)

	coord := [2]float32{0.4, 0.6}
	result := view.Sample(s, coord[0], coord[1], 0)
	result[0] += 0.5

	if IsLookup2DResultValid(view, s, prec, coord, lod, result) {
		t.Errorf("perturbed result %v accepted", result)
	}
}

func TestLookup2DColorMask(t *testing.T) {
	view := gradient2D(t, 8, 8).View()
	prec := lookupPrec()
	lod := interval.Exactly(0)

	s := texture.NewSampler(texture.ClampToEdge, texture.ClampToEdge, texture.ClampToEdge, texture.Nearest, texture.Nearest)

	coord := [2]float32{0.4, 0.6}
	result := view.Sample(s, coord[0], coord[1], 0)
	result[0] += 0.5

	if IsLookup2DResultValid(view, s, prec, coord, lod, result) {
		t.Fatal("red error accepted with full mask")
	}
	prec.ColorMask[0] = false
	if !IsLookup2DResultValid(view, s, prec, coord, lod, result) {
		t.Error("red error rejected with red masked off")
	}
}

func TestLookup2DBilinearMidpoint(t *testing.T) {
	tex := texture.NewTexture2D(texture.NewFormat(texture.RGBA, texture.Float), 2, 2)
	a := tex.AllocLevel(0)
	a.SetPixel(texture.Vec4{0, 0, 0, 1}, 0, 0, 0)
	a.SetPixel(texture.Vec4{1, 1, 1, 1}, 1, 0, 0)
	a.SetPixel(texture.Vec4{1, 1, 1, 1}, 0, 1, 0)
	a.SetPixel(texture.Vec4{0, 0, 0, 1}, 1, 1, 0)
	view := tex.View()

	prec := lookupPrec()
	lod := interval.Exactly(0)
	s := texture.NewSampler(texture.ClampToEdge, texture.ClampToEdge, texture.ClampToEdge, texture.Linear, texture.Linear)

	// The center of the quad blends all four texels equally.
	if !IsLookup2DResultValid(view, s, prec, [2]float32{0.5, 0.5}, lod, texture.Vec4{0.5, 0.5, 0.5, 1}) {
		t.Error("center blend 0.5 rejected")
	}
	if IsLookup2DResultValid(view, s, prec, [2]float32{0.5, 0.5}, lod, texture.Vec4{0.9, 0.9, 0.9, 1}) {
		t.Error("off-blend 0.9 accepted at the center")
	}
}

func TestLookup2DZeroThresholdTerminates(t *testing.T) {
	// A zero color threshold must not stall the fixed point weight
	// search; the step is floored instead.
	tex := texture.NewTexture2D(texture.NewFormat(texture.RGBA, texture.UnormInt8), 2, 2)
	a := tex.AllocLevel(0)
	a.SetPixel(texture.Vec4{0, 0, 0, 1}, 0, 0, 0)
	a.SetPixel(texture.Vec4{1, 1, 1, 1}, 1, 0, 0)
	a.SetPixel(texture.Vec4{1, 1, 1, 1}, 0, 1, 0)
	a.SetPixel(texture.Vec4{0, 0, 0, 1}, 1, 1, 0)
	view := tex.View()

	prec := NewLookupPrecision(CoordBits{20, 20, 20}, CoordBits{16, 16, 16}, texture.Vec4{})
	s := texture.NewSampler(texture.ClampToEdge, texture.ClampToEdge, texture.ClampToEdge, texture.Linear, texture.Linear)

	// 0.9 sits inside the footprint's corner bounds but far from any
	// value the center blend can reach.
	done := make(chan bool, 1)
	go func() {
		done <- IsLookup2DResultValid(view, s, prec, [2]float32{0.5, 0.5}, interval.Exactly(0), texture.Vec4{0.9, 0.9, 0.9, 1})
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("unreachable blend accepted with zero threshold")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("verification did not terminate")
	}
}

func mipColors2D(t *testing.T, size int, colors []texture.Vec4) *texture.Texture2D {
	t.Helper()
	tex := texture.NewTexture2D(texture.NewFormat(texture.RGBA, texture.Float), size, size)
	for i, c := range colors {
		tex.AllocLevel(i).Clear(c)
	}
	return tex
}

func TestLookup2DNearestMipmapRoundingRules(t *testing.T) {
	red := texture.Vec4{1, 0, 0, 1}
	green := texture.Vec4{0, 1, 0, 1}
	blue := texture.Vec4{0, 0, 1, 1}
	view := mipColors2D(t, 4, []texture.Vec4{red, green, blue}).View()

	prec := lookupPrec()
	s := texture.NewSampler(texture.ClampToEdge, texture.ClampToEdge, texture.ClampToEdge, texture.NearestMipmapNearest, texture.Nearest)

	// At lod 0.5 the two rounding conventions select different levels;
	// both results must be admissible.
	coord := [2]float32{0.5, 0.5}
	lod := interval.Exactly(0.5)

	if !IsLookup2DResultValid(view, s, prec, coord, lod, red) {
		t.Error("level 0 color rejected at lod 0.5")
	}
	if !IsLookup2DResultValid(view, s, prec, coord, lod, green) {
		t.Error("level 1 color rejected at lod 0.5")
	}
	if IsLookup2DResultValid(view, s, prec, coord, lod, blue) {
		t.Error("level 2 color accepted at lod 0.5")
	}
}

func TestLookup2DMipmapLinearAcceptsReference(t *testing.T) {
	red := texture.Vec4{1, 0, 0, 1}
	green := texture.Vec4{0, 1, 0, 1}
	view := mipColors2D(t, 2, []texture.Vec4{red, green}).View()

	prec := lookupPrec()
	s := texture.NewSampler(texture.ClampToEdge, texture.ClampToEdge, texture.ClampToEdge, texture.LinearMipmapLinear, texture.Linear)

	coord := [2]float32{0.5, 0.5}
	for _, lod := range []float32{0.1, 0.25, 0.5, 0.9} {
		result := view.Sample(s, coord[0], coord[1], lod)
		if !IsLookup2DResultValid(view, s, prec, coord, interval.Exactly(float64(lod)), result) {
			t.Errorf("lod %v: reference blend %v rejected", lod, result)
		}
	}

	// A blend far outside the lod window is rejected.
	if IsLookup2DResultValid(view, s, prec, coord, interval.Exactly(0.1), green) {
		t.Error("level 1 color accepted at lod 0.1")
	}
}

func TestLookup2DArrayAcceptsReference(t *testing.T) {
	tex := texture.NewTexture2DArray(texture.NewFormat(texture.RGBA, texture.Float), 2, 2, 3)
	a := tex.AllocLevel(0)
	layers := []texture.Vec4{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}}
	for z, c := range layers {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				a.SetPixel(c, x, y, z)
			}
		}
	}
	view := tex.View()

	prec := lookupPrec()
	lod := interval.Exactly(0)
	s := texture.NewSampler(texture.ClampToEdge, texture.ClampToEdge, texture.ClampToEdge, texture.Nearest, texture.Nearest)

	for z, want := range layers {
		coord := [3]float32{0.5, 0.5, float32(z)}
		if !IsLookup2DArrayResultValid(view, s, prec, coord, lod, want) {
			t.Errorf("layer %d color rejected", z)
		}
	}
	if IsLookup2DArrayResultValid(view, s, prec, [3]float32{0.5, 0.5, 0}, lod, layers[2]) {
		t.Error("layer 2 color accepted at layer 0")
	}
}

func TestLookup3DAcceptsReference(t *testing.T) {
	tex := texture.NewTexture3D(texture.NewFormat(texture.RGBA, texture.Float), 4, 4, 4)
	a := tex.AllocLevel(0)
	for z := 0; z < 4; z++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				a.SetPixel(texture.Vec4{
					float32(x) / 4,
					float32(y) / 4,
					float32(z) / 4,
					1,
				}, x, y, z)
			}
		}
	}
	view := tex.View()

	prec := lookupPrec()
	lod := interval.Exactly(0)

	for _, filter := range []texture.FilterMode{texture.Nearest, texture.Linear} {
		s := texture.NewSampler(texture.ClampToEdge, texture.ClampToEdge, texture.ClampToEdge, filter, filter)
		coords := [][3]float32{
			{0.5, 0.5, 0.5},
			{0.1, 0.9, 0.3},
			{0.77, 0.25, 0.6},
		}
		for _, c := range coords {
			result := view.Sample(s, c[0], c[1], c[2], 0)
			if !IsLookup3DResultValid(view, s, prec, c, lod, result) {
				t.Errorf("filter %v coord %v: reference result %v rejected", filter, c, result)
			}
			bad := result
			bad[1] += 0.5
			if IsLookup3DResultValid(view, s, prec, c, lod, bad) {
				t.Errorf("filter %v coord %v: perturbed result accepted", filter, c)
			}
		}
	}
}

func solidCubeView(t *testing.T, size int, colors [texture.NumCubeFaces]texture.Vec4) texture.TextureCubeView {
	t.Helper()
	tex := texture.NewTextureCube(texture.NewFormat(texture.RGBA, texture.Float), size)
	for face := texture.CubeFace(0); face < texture.NumCubeFaces; face++ {
		tex.AllocLevel(face, 0).Clear(colors[face])
	}
	return tex.View()
}

func TestLookupCubeAcceptsReference(t *testing.T) {
	var colors [texture.NumCubeFaces]texture.Vec4
	for i := range colors {
		colors[i] = texture.Vec4{float32(i) / 8, float32(5-i) / 8, 0, 1}
	}
	view := solidCubeView(t, 4, colors)

	prec := lookupPrec()
	lod := interval.Exactly(0)
	s := texture.NewSampler(texture.ClampToEdge, texture.ClampToEdge, texture.ClampToEdge, texture.Nearest, texture.Nearest)
	s.SeamlessCubeMap = true

	dirs := [][3]float32{
		{1, 0.2, -0.3},
		{-0.9, 0.1, 0.1},
		{0.2, 1, 0.3},
		{0.1, -1, 0.2},
		{0.3, 0.2, 1},
		{-0.1, 0.2, -1},
	}

	for _, d := range dirs {
		result := view.Sample(s, d[0], d[1], d[2], 0)
		if !IsLookupCubeResultValid(view, s, prec, d, lod, result) {
			t.Errorf("direction %v: reference result %v rejected", d, result)
		}
		bad := result
		bad[3] -= 0.5
		if IsLookupCubeResultValid(view, s, prec, d, lod, bad) {
			t.Errorf("direction %v: perturbed result accepted", d)
		}
	}
}

func TestLookupCubeUndefinedDirection(t *testing.T) {
	var colors [texture.NumCubeFaces]texture.Vec4
	view := solidCubeView(t, 4, colors)

	prec := lookupPrec()
	s := texture.NewSampler(texture.ClampToEdge, texture.ClampToEdge, texture.ClampToEdge, texture.Nearest, texture.Nearest)

	// A zero direction selects no face; any result is admissible.
	if !IsLookupCubeResultValid(view, s, prec, [3]float32{0, 0, 0}, interval.Exactly(0), texture.Vec4{9, 9, 9, 9}) {
		t.Error("undefined direction rejected a result")
	}
}

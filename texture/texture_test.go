package texture

import "testing"

func TestMipPyramidLevels(t *testing.T) {
	tests := []struct{ dim, want int }{
		{1, 1}, {2, 2}, {3, 2}, {4, 3}, {64, 7}, {100, 7}, {128, 8},
	}
	for _, tt := range tests {
		if got := MipPyramidLevels(tt.dim); got != tt.want {
			t.Errorf("MipPyramidLevels(%d) = %d, want %d", tt.dim, got, tt.want)
		}
	}
}

func TestTexture2DLevels(t *testing.T) {
	tex := NewTexture2D(NewFormat(RGBA, UnormInt8), 16, 8)

	if tex.NumLevels() != 5 {
		t.Fatalf("NumLevels = %d, want 5", tex.NumLevels())
	}
	if !tex.IsLevelEmpty(0) {
		t.Error("fresh texture has a non-empty level")
	}

	tex.AllocLevel(0)
	tex.AllocLevel(1)

	l1 := tex.Level(1)
	if l1.Width() != 8 || l1.Height() != 4 {
		t.Errorf("level 1 size = %dx%d, want 8x4", l1.Width(), l1.Height())
	}

	// Level 4 of a 16x8 texture is 1x1.
	tex.AllocLevel(4)
	l4 := tex.Level(4)
	if l4.Width() != 1 || l4.Height() != 1 {
		t.Errorf("level 4 size = %dx%d, want 1x1", l4.Width(), l4.Height())
	}

	// The view stops at the first unallocated level.
	if n := tex.View().NumLevels(); n != 2 {
		t.Errorf("view levels = %d, want 2", n)
	}
}

func levelColors2D(t *testing.T, size int, colors []Vec4) *Texture2D {
	t.Helper()
	tex := NewTexture2D(NewFormat(RGBA, Float), size, size)
	for i, c := range colors {
		tex.AllocLevel(i).Clear(c)
	}
	return tex
}

func TestSampleMipLevelSelection(t *testing.T) {
	red := Vec4{1, 0, 0, 1}
	green := Vec4{0, 1, 0, 1}
	blue := Vec4{0, 0, 1, 1}
	tex := levelColors2D(t, 4, []Vec4{red, green, blue})
	view := tex.View()

	s := NewSampler(ClampToEdge, ClampToEdge, ClampToEdge, NearestMipmapNearest, Nearest)

	tests := []struct {
		lod  float32
		want Vec4
	}{
		{-1, red},  // magnified
		{0.2, red}, // rounds to level 0
		{0.8, green},
		{1.3, green},
		{1.8, blue},
		{5, blue}, // clamped to max level
	}

	for _, tt := range tests {
		if got := view.Sample(s, 0.5, 0.5, tt.lod); got != tt.want {
			t.Errorf("Sample(lod=%v) = %v, want %v", tt.lod, got, tt.want)
		}
	}
}

func TestSampleMipmapLinearBlend(t *testing.T) {
	c0 := Vec4{1, 0, 0, 1}
	c1 := Vec4{0, 1, 0, 1}
	tex := levelColors2D(t, 2, []Vec4{c0, c1})
	view := tex.View()

	s := NewSampler(ClampToEdge, ClampToEdge, ClampToEdge, NearestMipmapLinear, Nearest)

	got := view.Sample(s, 0.5, 0.5, 0.25)
	want := c0.Lerp(c1, 0.25)
	for i := range got {
		if absf(got[i]-want[i]) > 1e-6 {
			t.Fatalf("blend at lod 0.25 = %v, want %v", got, want)
		}
	}
}

func TestTexture2DArraySampleLayer(t *testing.T) {
	tex := NewTexture2DArray(NewFormat(RGBA, Float), 2, 2, 3)
	a := tex.AllocLevel(0)

	layers := []Vec4{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}}
	for z, c := range layers {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				a.SetPixel(c, x, y, z)
			}
		}
	}

	view := tex.View()
	s := NewSampler(ClampToEdge, ClampToEdge, ClampToEdge, Nearest, Nearest)

	tests := []struct {
		r    float32
		want Vec4
	}{
		{-1, layers[0]}, // clamped
		{0, layers[0]},
		{1.2, layers[1]},
		{2, layers[2]},
		{7, layers[2]}, // clamped
	}

	for _, tt := range tests {
		if got := view.Sample(s, 0.5, 0.5, tt.r, 0); got != tt.want {
			t.Errorf("Sample(layer=%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func newSolidCube(t *testing.T, size int, faceColors [NumCubeFaces]Vec4) *TextureCube {
	t.Helper()
	tex := NewTextureCube(NewFormat(RGBA, Float), size)
	for face := CubeFace(0); face < NumCubeFaces; face++ {
		tex.AllocLevel(face, 0).Clear(faceColors[face])
	}
	return tex
}

func TestCubeSampleFaceSelection(t *testing.T) {
	var colors [NumCubeFaces]Vec4
	for i := range colors {
		colors[i] = Vec4{float32(i) / 8, 0, 0, 1}
	}
	view := newSolidCube(t, 4, colors).View()

	s := NewSampler(ClampToEdge, ClampToEdge, ClampToEdge, Nearest, Nearest)

	dirs := map[CubeFace][3]float32{
		CubeFacePosX: {1, 0.1, 0.1},
		CubeFaceNegX: {-1, 0.1, 0.1},
		CubeFacePosY: {0.1, 1, 0.1},
		CubeFaceNegY: {0.1, -1, 0.1},
		CubeFacePosZ: {0.1, 0.1, 1},
		CubeFaceNegZ: {0.1, 0.1, -1},
	}

	for face, d := range dirs {
		if got := view.Sample(s, d[0], d[1], d[2], 0); got != colors[face] {
			t.Errorf("direction %v sampled %v, want face %v color %v", d, got, face, colors[face])
		}
	}
}

func TestCubeSeamlessEdgeBlend(t *testing.T) {
	// Two adjacent faces with different colors: sampling exactly on the
	// shared edge with seamless linear filtering blends them equally.
	var colors [NumCubeFaces]Vec4
	for i := range colors {
		colors[i] = Vec4{0, 0, 0, 1}
	}
	colors[CubeFacePosX] = Vec4{1, 0, 0, 1}
	colors[CubeFacePosZ] = Vec4{0, 0, 1, 1}
	view := newSolidCube(t, 4, colors).View()

	s := NewSampler(ClampToEdge, ClampToEdge, ClampToEdge, Linear, Linear)
	s.SeamlessCubeMap = true

	// Direction along the +X/+Z edge.
	got := view.Sample(s, 1, 0, 1, 0)
	if absf(got[0]-0.5) > 1e-6 || absf(got[2]-0.5) > 1e-6 {
		t.Errorf("edge sample = %v, want equal red/blue blend", got)
	}
}

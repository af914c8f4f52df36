package texverify

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texverify/texture"
)

func TestFormatFromGPU(t *testing.T) {
	tests := []struct {
		in   gputypes.TextureFormat
		want texture.Format
	}{
		{gputypes.TextureFormatRGBA8Unorm, texture.NewFormat(texture.RGBA, texture.UnormInt8)},
		{gputypes.TextureFormatBGRA8Unorm, texture.NewFormat(texture.BGRA, texture.UnormInt8)},
		{gputypes.TextureFormatR8Unorm, texture.NewFormat(texture.R, texture.UnormInt8)},
		{gputypes.TextureFormatDepth24PlusStencil8, texture.NewFormat(texture.DS, texture.UnsignedInt248)},
	}

	for _, tt := range tests {
		got, err := FormatFromGPU(tt.in)
		if err != nil {
			t.Errorf("FormatFromGPU(%v): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromGPU(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := FormatFromGPU(gputypes.TextureFormatUndefined); err == nil {
		t.Error("undefined format did not error")
	}
}

func TestWrapModeFromGPU(t *testing.T) {
	tests := []struct {
		in   gputypes.AddressMode
		want texture.WrapMode
	}{
		{gputypes.AddressModeClampToEdge, texture.ClampToEdge},
		{gputypes.AddressModeRepeat, texture.Repeat},
		{gputypes.AddressModeMirrorRepeat, texture.MirroredRepeat},
	}

	for _, tt := range tests {
		got, err := WrapModeFromGPU(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("WrapModeFromGPU(%v) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestFilterModeFromGPU(t *testing.T) {
	tests := []struct {
		filter, mip gputypes.FilterMode
		mipmapped   bool
		want        texture.FilterMode
	}{
		{gputypes.FilterModeNearest, gputypes.FilterModeNearest, false, texture.Nearest},
		{gputypes.FilterModeLinear, gputypes.FilterModeNearest, false, texture.Linear},
		{gputypes.FilterModeNearest, gputypes.FilterModeNearest, true, texture.NearestMipmapNearest},
		{gputypes.FilterModeNearest, gputypes.FilterModeLinear, true, texture.NearestMipmapLinear},
		{gputypes.FilterModeLinear, gputypes.FilterModeNearest, true, texture.LinearMipmapNearest},
		{gputypes.FilterModeLinear, gputypes.FilterModeLinear, true, texture.LinearMipmapLinear},
	}

	for _, tt := range tests {
		got, err := FilterModeFromGPU(tt.filter, tt.mip, tt.mipmapped)
		if err != nil || got != tt.want {
			t.Errorf("FilterModeFromGPU(%v, %v, %v) = %v, %v; want %v", tt.filter, tt.mip, tt.mipmapped, got, err, tt.want)
		}
	}
}

func TestCompareModeFromGPU(t *testing.T) {
	tests := []struct {
		in   gputypes.CompareFunction
		want texture.CompareMode
	}{
		{gputypes.CompareFunctionUndefined, texture.CompareNone},
		{gputypes.CompareFunctionNever, texture.CompareNever},
		{gputypes.CompareFunctionLess, texture.CompareLess},
		{gputypes.CompareFunctionLessEqual, texture.CompareLessOrEqual},
		{gputypes.CompareFunctionGreater, texture.CompareGreater},
		{gputypes.CompareFunctionGreaterEqual, texture.CompareGreaterOrEqual},
		{gputypes.CompareFunctionEqual, texture.CompareEqual},
		{gputypes.CompareFunctionNotEqual, texture.CompareNotEqual},
		{gputypes.CompareFunctionAlways, texture.CompareAlways},
	}

	for _, tt := range tests {
		got, err := CompareModeFromGPU(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("CompareModeFromGPU(%v) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestSamplerFromGPU(t *testing.T) {
	s, err := SamplerFromGPU(
		gputypes.AddressModeRepeat, gputypes.AddressModeClampToEdge, gputypes.AddressModeRepeat,
		gputypes.FilterModeLinear, gputypes.FilterModeLinear, gputypes.FilterModeLinear,
		gputypes.CompareFunctionUndefined, true)
	if err != nil {
		t.Fatalf("SamplerFromGPU: %v", err)
	}

	if s.WrapS != texture.Repeat || s.WrapT != texture.ClampToEdge || s.WrapR != texture.Repeat {
		t.Errorf("wrap modes = %v/%v/%v", s.WrapS, s.WrapT, s.WrapR)
	}
	if s.MinFilter != texture.LinearMipmapLinear || s.MagFilter != texture.Linear {
		t.Errorf("filters = %v/%v", s.MinFilter, s.MagFilter)
	}
	if s.Compare != texture.CompareNone {
		t.Errorf("compare = %v, want none", s.Compare)
	}
	if !s.NormalizedCoords || !s.SeamlessCubeMap {
		t.Error("sampler must use normalized coordinates and seamless cube filtering")
	}
}

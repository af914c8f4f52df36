package texverify

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texverify/texture"
)

// ErrUnsupportedFormat is wrapped by conversion failures from GPU
// descriptor enums.
var errUnsupportedGPUEnum = fmt.Errorf("texverify: unsupported GPU enum")

// FormatFromGPU maps a WebGPU texture format to the verifier's format
// descriptor. Only formats the verifiers can read are supported.
func FormatFromGPU(f gputypes.TextureFormat) (texture.Format, error) {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return texture.NewFormat(texture.RGBA, texture.UnormInt8), nil
	case gputypes.TextureFormatBGRA8Unorm:
		return texture.NewFormat(texture.BGRA, texture.UnormInt8), nil
	case gputypes.TextureFormatR8Unorm:
		return texture.NewFormat(texture.R, texture.UnormInt8), nil
	case gputypes.TextureFormatDepth24PlusStencil8:
		return texture.NewFormat(texture.DS, texture.UnsignedInt248), nil
	default:
		return texture.Format{}, fmt.Errorf("%w: texture format %v", errUnsupportedGPUEnum, f)
	}
}

// WrapModeFromGPU maps a WebGPU address mode to a wrap mode. WebGPU has
// no border clamp or CL-style modes.
func WrapModeFromGPU(m gputypes.AddressMode) (texture.WrapMode, error) {
	switch m {
	case gputypes.AddressModeClampToEdge:
		return texture.ClampToEdge, nil
	case gputypes.AddressModeRepeat:
		return texture.Repeat, nil
	case gputypes.AddressModeMirrorRepeat:
		return texture.MirroredRepeat, nil
	default:
		return 0, fmt.Errorf("%w: address mode %v", errUnsupportedGPUEnum, m)
	}
}

// FilterModeFromGPU combines a WebGPU texel filter and mip filter into
// a single filter mode. mipmapped selects between the plain and the
// mipmap variants.
func FilterModeFromGPU(filter, mipFilter gputypes.FilterMode, mipmapped bool) (texture.FilterMode, error) {
	linearTexel := filter == gputypes.FilterModeLinear
	if !linearTexel && filter != gputypes.FilterModeNearest {
		return 0, fmt.Errorf("%w: filter mode %v", errUnsupportedGPUEnum, filter)
	}

	if !mipmapped {
		if linearTexel {
			return texture.Linear, nil
		}
		return texture.Nearest, nil
	}

	switch mipFilter {
	case gputypes.FilterModeNearest:
		if linearTexel {
			return texture.LinearMipmapNearest, nil
		}
		return texture.NearestMipmapNearest, nil
	case gputypes.FilterModeLinear:
		if linearTexel {
			return texture.LinearMipmapLinear, nil
		}
		return texture.NearestMipmapLinear, nil
	default:
		return 0, fmt.Errorf("%w: mipmap filter mode %v", errUnsupportedGPUEnum, mipFilter)
	}
}

// CompareModeFromGPU maps a WebGPU compare function to a compare mode.
func CompareModeFromGPU(f gputypes.CompareFunction) (texture.CompareMode, error) {
	switch f {
	case gputypes.CompareFunctionUndefined:
		return texture.CompareNone, nil
	case gputypes.CompareFunctionNever:
		return texture.CompareNever, nil
	case gputypes.CompareFunctionLess:
		return texture.CompareLess, nil
	case gputypes.CompareFunctionLessEqual:
		return texture.CompareLessOrEqual, nil
	case gputypes.CompareFunctionGreater:
		return texture.CompareGreater, nil
	case gputypes.CompareFunctionGreaterEqual:
		return texture.CompareGreaterOrEqual, nil
	case gputypes.CompareFunctionEqual:
		return texture.CompareEqual, nil
	case gputypes.CompareFunctionNotEqual:
		return texture.CompareNotEqual, nil
	case gputypes.CompareFunctionAlways:
		return texture.CompareAlways, nil
	default:
		return 0, fmt.Errorf("%w: compare function %v", errUnsupportedGPUEnum, f)
	}
}

// SamplerFromGPU builds a sampler from WebGPU sampler state. WebGPU
// samplers always use normalized coordinates and seamless cube
// filtering.
func SamplerFromGPU(addressU, addressV, addressW gputypes.AddressMode, magFilter, minFilter, mipFilter gputypes.FilterMode, compare gputypes.CompareFunction, mipmapped bool) (texture.Sampler, error) {
	wrapS, err := WrapModeFromGPU(addressU)
	if err != nil {
		return texture.Sampler{}, err
	}
	wrapT, err := WrapModeFromGPU(addressV)
	if err != nil {
		return texture.Sampler{}, err
	}
	wrapR, err := WrapModeFromGPU(addressW)
	if err != nil {
		return texture.Sampler{}, err
	}
	minF, err := FilterModeFromGPU(minFilter, mipFilter, mipmapped)
	if err != nil {
		return texture.Sampler{}, err
	}
	magF, err := FilterModeFromGPU(magFilter, mipFilter, false)
	if err != nil {
		return texture.Sampler{}, err
	}
	cmp, err := CompareModeFromGPU(compare)
	if err != nil {
		return texture.Sampler{}, err
	}

	s := texture.NewSampler(wrapS, wrapT, wrapR, minF, magF)
	s.Compare = cmp
	s.SeamlessCubeMap = true
	return s, nil
}

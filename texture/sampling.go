package texture

import (
	"fmt"
	"math"
)

// imod returns a mod b with the result in [0, b).
func imod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// mirror maps ...-2,-1,0,1... to ...1,0,0,1... (reflection at -0.5).
func mirror(a int) int {
	if a >= 0 {
		return a
	}
	return -(1 + a)
}

// Wrap applies a wrap mode to an integer texel coordinate for a
// dimension of the given size. ClampToBorder intentionally admits the
// out-of-range coordinates -1 and size, which lookup resolves to the
// border color.
func Wrap(mode WrapMode, c, size int) int {
	switch mode {
	case ClampToBorder:
		return clampInt(c, -1, size)
	case ClampToEdge:
		return clampInt(c, 0, size-1)
	case Repeat, RepeatCL:
		return imod(c, size)
	case MirroredRepeat:
		return (size - 1) - mirror(imod(c, 2*size)-size)
	case MirroredRepeatCL:
		// Mirroring happens during unnormalization; only clamp here.
		return clampInt(c, 0, size-1)
	default:
		panic(fmt.Sprintf("texture: invalid wrap mode %d", mode))
	}
}

// Unnormalize converts a normalized coordinate to texture space for a
// dimension of the given size. The CL repeat modes fold the coordinate
// before scaling; the GL modes scale directly and wrap per texel.
func Unnormalize(mode WrapMode, c float32, size int) float32 {
	switch mode {
	case ClampToEdge, ClampToBorder, Repeat, MirroredRepeat:
		return c * float32(size)
	case RepeatCL:
		return (c - floorf(c)) * float32(size)
	case MirroredRepeatCL:
		return absf(c-2*rintf(0.5*c)) * float32(size)
	default:
		panic(fmt.Sprintf("texture: invalid wrap mode %d", mode))
	}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func floorf(v float32) float32 { return float32(math.Floor(float64(v))) }

func absf(v float32) float32 { return float32(math.Abs(float64(v))) }

func rintf(v float32) float32 { return float32(math.RoundToEven(float64(v))) }

// fracf returns v - floor(v).
func fracf(v float32) float32 { return v - floorf(v) }

// floorToInt converts with floor semantics for negative values.
func floorToInt(v float32) int { return int(math.Floor(float64(v))) }

func inBounds(x, lo, hi int) bool { return x >= lo && x < hi }

// SRGBToLinear decodes one sRGB-encoded channel to linear.
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64(s+0.055)/1.055, 2.4))
}

// LinearToSRGB encodes one linear channel to sRGB.
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// SRGBToLinearVec decodes the RGB channels of c, leaving alpha linear.
func SRGBToLinearVec(c Vec4) Vec4 {
	return Vec4{SRGBToLinear(c[0]), SRGBToLinear(c[1]), SRGBToLinear(c[2]), c[3]}
}

// lookup reads the texel (i, j, k), substituting the border color for
// coordinates left out of range by ClampToBorder, and decoding sRGB to
// linear. This is the read every filter path goes through.
func lookup(access ConstAccess, sampler Sampler, i, j, k int) Vec4 {
	if !inBounds(i, 0, access.Width()) || !inBounds(j, 0, access.Height()) || !inBounds(k, 0, access.Depth()) {
		return sampler.BorderColor
	}
	p := access.Pixel(i, j, k)
	if access.Format().IsSRGB() {
		return SRGBToLinearVec(p)
	}
	return p
}

// Lookup is the exported form of the texel read used by the lookup
// verifier.
func Lookup(access ConstAccess, sampler Sampler, i, j, k int) Vec4 {
	return lookup(access, sampler, i, j, k)
}

// lookupDepth reads the depth texel (i, j, k) with border substitution.
func lookupDepth(access ConstAccess, sampler Sampler, i, j, k int) float32 {
	if !inBounds(i, 0, access.Width()) || !inBounds(j, 0, access.Height()) || !inBounds(k, 0, access.Depth()) {
		return sampler.BorderColor[0]
	}
	return access.PixDepth(i, j, k)
}

// LookupDepth is the exported form of the depth texel read used by the
// compare verifier.
func LookupDepth(access ConstAccess, sampler Sampler, i, j, k int) float32 {
	return lookupDepth(access, sampler, i, j, k)
}

// execCompare evaluates the sampler's compare predicate on a sampled
// depth value, returning 1 for pass and 0 for fail. Fixed-point depth
// formats clamp both operands to [0, 1] first.
func execCompare(sampler Sampler, depth, ref float32, isFixedPoint bool) float32 {
	if isFixedPoint {
		depth = clampF(depth, 0, 1)
		ref = clampF(ref, 0, 1)
	}

	var res bool
	switch sampler.Compare {
	case CompareLess:
		res = ref < depth
	case CompareLessOrEqual:
		res = ref <= depth
	case CompareGreater:
		res = ref > depth
	case CompareGreaterOrEqual:
		res = ref >= depth
	case CompareEqual:
		res = ref == depth
	case CompareNotEqual:
		res = ref != depth
	case CompareAlways:
		res = true
	case CompareNever:
		res = false
	default:
		panic(fmt.Sprintf("texture: invalid compare mode %v", sampler.Compare))
	}
	if res {
		return 1
	}
	return 0
}

// SampleNearest1D samples one texel along a single axis. Used for layer
// rows of array textures and as the 1D reference function.
func SampleNearest1D(access ConstAccess, sampler Sampler, u float32, j, k int) Vec4 {
	x := Wrap(sampler.WrapS, floorToInt(u), access.Width())
	return lookup(access, sampler, x, j, k)
}

// SampleLinear1D blends the two texels surrounding u.
func SampleLinear1D(access ConstAccess, sampler Sampler, u float32, j, k int) Vec4 {
	w := access.Width()
	x0 := floorToInt(u - 0.5)
	x1 := x0 + 1
	a := fracf(u - 0.5)

	p0 := lookup(access, sampler, Wrap(sampler.WrapS, x0, w), j, k)
	p1 := lookup(access, sampler, Wrap(sampler.WrapS, x1, w), j, k)

	return p0.Lerp(p1, a)
}

// SampleNearest2D samples the nearest texel to (u, v) on slice k.
func SampleNearest2D(access ConstAccess, sampler Sampler, u, v float32, k int) Vec4 {
	x := Wrap(sampler.WrapS, floorToInt(u), access.Width())
	y := Wrap(sampler.WrapT, floorToInt(v), access.Height())
	return lookup(access, sampler, x, y, k)
}

// SampleLinear2D bilinearly blends the 2x2 quad around (u, v) on slice k.
func SampleLinear2D(access ConstAccess, sampler Sampler, u, v float32, k int) Vec4 {
	w, h := access.Width(), access.Height()

	x0 := floorToInt(u - 0.5)
	x1 := x0 + 1
	y0 := floorToInt(v - 0.5)
	y1 := y0 + 1

	a := fracf(u - 0.5)
	b := fracf(v - 0.5)

	p00 := lookup(access, sampler, Wrap(sampler.WrapS, x0, w), Wrap(sampler.WrapT, y0, h), k)
	p10 := lookup(access, sampler, Wrap(sampler.WrapS, x1, w), Wrap(sampler.WrapT, y0, h), k)
	p01 := lookup(access, sampler, Wrap(sampler.WrapS, x0, w), Wrap(sampler.WrapT, y1, h), k)
	p11 := lookup(access, sampler, Wrap(sampler.WrapS, x1, w), Wrap(sampler.WrapT, y1, h), k)

	return p00.Lerp(p10, a).Lerp(p01.Lerp(p11, a), b)
}

// SampleNearest3D samples the nearest texel to (u, v, w).
func SampleNearest3D(access ConstAccess, sampler Sampler, u, v, w float32) Vec4 {
	x := Wrap(sampler.WrapS, floorToInt(u), access.Width())
	y := Wrap(sampler.WrapT, floorToInt(v), access.Height())
	z := Wrap(sampler.WrapR, floorToInt(w), access.Depth())
	return lookup(access, sampler, x, y, z)
}

// SampleLinear3D trilinearly blends the 2x2x2 cell around (u, v, w).
func SampleLinear3D(access ConstAccess, sampler Sampler, u, v, w float32) Vec4 {
	width, height, depth := access.Width(), access.Height(), access.Depth()

	x0 := floorToInt(u - 0.5)
	y0 := floorToInt(v - 0.5)
	z0 := floorToInt(w - 0.5)

	a := fracf(u - 0.5)
	b := fracf(v - 0.5)
	c := fracf(w - 0.5)

	var corners [2][2][2]Vec4
	for dz := range 2 {
		for dy := range 2 {
			for dx := range 2 {
				corners[dz][dy][dx] = lookup(access, sampler,
					Wrap(sampler.WrapS, x0+dx, width),
					Wrap(sampler.WrapT, y0+dy, height),
					Wrap(sampler.WrapR, z0+dz, depth))
			}
		}
	}

	front := corners[0][0][0].Lerp(corners[0][0][1], a).Lerp(corners[0][1][0].Lerp(corners[0][1][1], a), b)
	back := corners[1][0][0].Lerp(corners[1][0][1], a).Lerp(corners[1][1][0].Lerp(corners[1][1][1], a), b)
	return front.Lerp(back, c)
}

// SampleNearest2DCompare applies the compare predicate to the nearest
// texel's depth.
func SampleNearest2DCompare(access ConstAccess, sampler Sampler, ref, u, v float32, k int) float32 {
	x := Wrap(sampler.WrapS, floorToInt(u), access.Width())
	y := Wrap(sampler.WrapT, floorToInt(v), access.Height())
	depth := lookupDepth(access, sampler, x, y, k)
	return execCompare(sampler, depth, ref, isFixedPointDepth(access.Format()))
}

// SampleLinear2DCompare applies the compare predicate to each texel of
// the surrounding quad and bilinearly blends the boolean results (PCF).
func SampleLinear2DCompare(access ConstAccess, sampler Sampler, ref, u, v float32, k int) float32 {
	w, h := access.Width(), access.Height()

	x0 := floorToInt(u - 0.5)
	x1 := x0 + 1
	y0 := floorToInt(v - 0.5)
	y1 := y0 + 1

	a := fracf(u - 0.5)
	b := fracf(v - 0.5)

	fixed := isFixedPointDepth(access.Format())

	c00 := execCompare(sampler, lookupDepth(access, sampler, Wrap(sampler.WrapS, x0, w), Wrap(sampler.WrapT, y0, h), k), ref, fixed)
	c10 := execCompare(sampler, lookupDepth(access, sampler, Wrap(sampler.WrapS, x1, w), Wrap(sampler.WrapT, y0, h), k), ref, fixed)
	c01 := execCompare(sampler, lookupDepth(access, sampler, Wrap(sampler.WrapS, x0, w), Wrap(sampler.WrapT, y1, h), k), ref, fixed)
	c11 := execCompare(sampler, lookupDepth(access, sampler, Wrap(sampler.WrapS, x1, w), Wrap(sampler.WrapT, y1, h), k), ref, fixed)

	c0 := c00*(1-a) + c10*a
	c1 := c01*(1-a) + c11*a
	return c0*(1-b) + c1*b
}

// isFixedPointDepth reports whether the format's depth channel is fixed
// point, which makes depth comparison clamp its operands.
func isFixedPointDepth(f Format) bool {
	switch f.Type {
	case Float, HalfFloat, Float32UnsignedInt248Rev:
		return false
	default:
		return true
	}
}

// IsFixedPointDepth is the exported form used by the compare verifier.
func IsFixedPointDepth(f Format) bool { return isFixedPointDepth(f) }

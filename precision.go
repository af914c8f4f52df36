package texverify

import (
	"github.com/gogpu/texverify/texture"
)

// CoordBits declares per-axis fixed or floating point coordinate
// precision in bits.
type CoordBits [3]int

// LookupPrecision bounds the error a lookup verification tolerates.
type LookupPrecision struct {
	// CoordBits is the floating point mantissa precision of each input
	// coordinate axis.
	CoordBits CoordBits

	// UVWBits is the fixed point precision of each unnormalized
	// coordinate axis.
	UVWBits CoordBits

	// ColorThreshold is the per-channel tolerance added on top of the
	// filtering envelope.
	ColorThreshold texture.Vec4

	// ColorMask disables verification of individual channels.
	ColorMask [4]bool
}

// NewLookupPrecision returns a precision with all channels verified and
// zero tolerance beyond the coordinate envelope.
func NewLookupPrecision(coordBits, uvwBits CoordBits, threshold texture.Vec4) LookupPrecision {
	return LookupPrecision{
		CoordBits:      coordBits,
		UVWBits:        uvwBits,
		ColorThreshold: threshold,
		ColorMask:      [4]bool{true, true, true, true},
	}
}

// TexComparePrecision bounds the error a depth-compare verification
// tolerates.
type TexComparePrecision struct {
	CoordBits CoordBits
	UVWBits   CoordBits

	// PCFBits is the fixed point precision of the filter weights used
	// to blend per-texel comparison results. Zero selects the relaxed
	// model where any convex combination of the per-texel results is
	// admissible.
	PCFBits int

	// ReferenceBits is the fixed point precision of the reference value
	// quantization.
	ReferenceBits int

	// ResultBits is the fixed point precision of the [0, 1] result.
	ResultBits int
}

// LodPrecision bounds the error tolerated when verifying level of
// detail computation.
type LodPrecision struct {
	// DerivateBits is the floating point precision of screen-space
	// derivatives.
	DerivateBits int

	// LodBits is the fixed point fractional precision of the computed
	// level of detail.
	LodBits int
}

// NewLodPrecision returns a LodPrecision with the given bit counts.
func NewLodPrecision(derivateBits, lodBits int) LodPrecision {
	return LodPrecision{DerivateBits: derivateBits, LodBits: lodBits}
}

package texture

// WrapMode controls how out-of-range texture coordinates are handled.
// The GL and CL repeat variants differ only in where mirroring and
// wrapping are applied relative to unnormalization.
type WrapMode uint8

const (
	// ClampToEdge clamps coordinates to the edge texels.
	ClampToEdge WrapMode = iota

	// ClampToBorder substitutes the sampler border color outside the
	// texture.
	ClampToBorder

	// Repeat wraps coordinates with GL semantics.
	Repeat

	// RepeatCL wraps coordinates with CL semantics (wrap applied to the
	// normalized coordinate before unnormalization).
	RepeatCL

	// MirroredRepeat mirrors alternate repetitions, GL semantics.
	MirroredRepeat

	// MirroredRepeatCL mirrors with CL semantics.
	MirroredRepeatCL
)

// String returns a string representation of the wrap mode.
func (w WrapMode) String() string {
	switch w {
	case ClampToEdge:
		return "ClampToEdge"
	case ClampToBorder:
		return "ClampToBorder"
	case Repeat:
		return "Repeat"
	case RepeatCL:
		return "RepeatCL"
	case MirroredRepeat:
		return "MirroredRepeat"
	case MirroredRepeatCL:
		return "MirroredRepeatCL"
	default:
		return "Unknown"
	}
}

// FilterMode selects the texel filter, including the mipmap variants
// used for minification.
type FilterMode uint8

const (
	// Nearest picks the closest texel.
	Nearest FilterMode = iota

	// Linear blends the surrounding texel quad.
	Linear

	// NearestMipmapNearest picks the closest texel on the closest level.
	NearestMipmapNearest

	// NearestMipmapLinear blends the closest texels of two adjacent levels.
	NearestMipmapLinear

	// LinearMipmapNearest blends a quad on the closest level.
	LinearMipmapNearest

	// LinearMipmapLinear blends quads on two adjacent levels (trilinear).
	LinearMipmapLinear
)

// String returns a string representation of the filter mode.
func (f FilterMode) String() string {
	switch f {
	case Nearest:
		return "Nearest"
	case Linear:
		return "Linear"
	case NearestMipmapNearest:
		return "NearestMipmapNearest"
	case NearestMipmapLinear:
		return "NearestMipmapLinear"
	case LinearMipmapNearest:
		return "LinearMipmapNearest"
	case LinearMipmapLinear:
		return "LinearMipmapLinear"
	default:
		return "Unknown"
	}
}

// IsMipmap reports whether the filter selects between mip levels.
func (f FilterMode) IsMipmap() bool {
	return f != Nearest && f != Linear
}

// IsNearestMipmap reports whether the filter snaps to a single level.
func (f FilterMode) IsNearestMipmap() bool {
	return f == NearestMipmapNearest || f == LinearMipmapNearest
}

// IsLinearMipmap reports whether the filter blends two adjacent levels.
func (f FilterMode) IsLinearMipmap() bool {
	return f == NearestMipmapLinear || f == LinearMipmapLinear
}

// LevelFilter returns the per-level filter of a mipmap filter: Nearest
// for the Nearest* variants, Linear for the Linear* variants.
func (f FilterMode) LevelFilter() FilterMode {
	switch f {
	case Nearest, NearestMipmapNearest, NearestMipmapLinear:
		return Nearest
	case Linear, LinearMipmapNearest, LinearMipmapLinear:
		return Linear
	default:
		panic("texture: invalid filter mode")
	}
}

// CompareMode selects the depth-compare predicate applied by shadow
// samplers. CompareNone disables comparison.
type CompareMode uint8

const (
	// CompareNone disables depth comparison.
	CompareNone CompareMode = iota

	// CompareLess passes when the sampled value is less than the reference.
	CompareLess

	// CompareLessOrEqual passes on less-than-or-equal.
	CompareLessOrEqual

	// CompareGreater passes on greater-than.
	CompareGreater

	// CompareGreaterOrEqual passes on greater-than-or-equal.
	CompareGreaterOrEqual

	// CompareEqual passes on equality.
	CompareEqual

	// CompareNotEqual passes on inequality.
	CompareNotEqual

	// CompareAlways always passes.
	CompareAlways

	// CompareNever never passes.
	CompareNever
)

// String returns a string representation of the compare mode.
func (c CompareMode) String() string {
	switch c {
	case CompareNone:
		return "None"
	case CompareLess:
		return "Less"
	case CompareLessOrEqual:
		return "LessOrEqual"
	case CompareGreater:
		return "Greater"
	case CompareGreaterOrEqual:
		return "GreaterOrEqual"
	case CompareEqual:
		return "Equal"
	case CompareNotEqual:
		return "NotEqual"
	case CompareAlways:
		return "Always"
	case CompareNever:
		return "Never"
	default:
		return "Unknown"
	}
}

// Sampler is an immutable description of one lookup's sampling state.
type Sampler struct {
	WrapS WrapMode
	WrapT WrapMode
	WrapR WrapMode

	MinFilter FilterMode
	MagFilter FilterMode

	// LodThreshold is the LOD value at which the sampler switches from
	// magnification to minification.
	LodThreshold float32

	// NormalizedCoords selects [0,1] coordinates; unnormalized
	// coordinates address texels directly.
	NormalizedCoords bool

	Compare        CompareMode
	CompareChannel int

	// BorderColor substitutes for out-of-range reads under ClampToBorder.
	BorderColor Vec4

	// SeamlessCubeMap enables filtering across cube face edges.
	SeamlessCubeMap bool
}

// NewSampler returns a sampler with the given wrap and filter modes,
// normalized coordinates, no comparison and an opaque black border.
func NewSampler(wrapS, wrapT, wrapR WrapMode, minFilter, magFilter FilterMode) Sampler {
	return Sampler{
		WrapS:            wrapS,
		WrapT:            wrapT,
		WrapR:            wrapR,
		MinFilter:        minFilter,
		MagFilter:        magFilter,
		LodThreshold:     0,
		NormalizedCoords: true,
		Compare:          CompareNone,
		BorderColor:      Vec4{0, 0, 0, 1},
	}
}

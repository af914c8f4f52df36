// Package texture implements the texture data model of the sampling
// verifier: pixel formats, raw pixel storage with non-owning views, mip
// pyramids for 2D, 3D, array and cube textures, samplers, and the
// reference (scalar) sampling functions the verifiers use for ground
// truth. All encode and decode paths are bit-exact with the abstract
// sampling specification; the verifiers rely on that to re-derive the
// set of legal outputs.
package texture

import "fmt"

// ChannelOrder identifies the channel layout of a texture format.
type ChannelOrder uint8

const (
	// R is a single red channel.
	R ChannelOrder = iota

	// A is a single alpha channel.
	A

	// L is a single luminance channel replicated to RGB.
	L

	// LA is luminance plus alpha.
	LA

	// RG is red and green.
	RG

	// RA is red plus alpha stored in the second channel.
	RA

	// RGB is red, green and blue.
	RGB

	// RGBA is red, green, blue and alpha.
	RGBA

	// ARGB stores alpha first.
	ARGB

	// BGRA stores blue first.
	BGRA

	// SR is sRGB-encoded red.
	SR

	// SRG is sRGB-encoded red and green.
	SRG

	// SRGB is sRGB-encoded red, green and blue.
	SRGB

	// SRGBA is sRGB-encoded RGB with linear alpha.
	SRGBA

	// D is a depth channel.
	D

	// S is a stencil channel.
	S

	// DS is combined depth and stencil.
	DS

	channelOrderCount
)

// String returns a string representation of the channel order.
func (o ChannelOrder) String() string {
	switch o {
	case R:
		return "R"
	case A:
		return "A"
	case L:
		return "L"
	case LA:
		return "LA"
	case RG:
		return "RG"
	case RA:
		return "RA"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case ARGB:
		return "ARGB"
	case BGRA:
		return "BGRA"
	case SR:
		return "sR"
	case SRG:
		return "sRG"
	case SRGB:
		return "sRGB"
	case SRGBA:
		return "sRGBA"
	case D:
		return "D"
	case S:
		return "S"
	case DS:
		return "DS"
	default:
		return "Unknown"
	}
}

// ChannelType identifies the per-channel numeric encoding.
type ChannelType uint8

const (
	// SnormInt8 is a signed normalized 8-bit integer.
	SnormInt8 ChannelType = iota

	// SnormInt16 is a signed normalized 16-bit integer.
	SnormInt16

	// SnormInt32 is a signed normalized 32-bit integer.
	SnormInt32

	// UnormInt8 is an unsigned normalized 8-bit integer.
	UnormInt8

	// UnormInt16 is an unsigned normalized 16-bit integer.
	UnormInt16

	// UnormInt32 is an unsigned normalized 32-bit integer.
	UnormInt32

	// UnormShort565 packs RGB into 5+6+5 bits.
	UnormShort565

	// UnormShort555 packs RGB into 5+5+5 bits (top bit unused).
	UnormShort555

	// UnormShort4444 packs RGBA into 4 bits per channel.
	UnormShort4444

	// UnormShort5551 packs RGBA into 5+5+5+1 bits.
	UnormShort5551

	// UnormInt101010 packs RGB into 10 bits per channel (top bits unused).
	UnormInt101010

	// UnormInt1010102Rev packs RGBA into 10+10+10+2 bits, red in the low bits.
	UnormInt1010102Rev

	// UnsignedInt1010102Rev is the pure-integer variant of 10+10+10+2.
	UnsignedInt1010102Rev

	// UnsignedInt11F11F10FRev packs two 11-bit and one 10-bit unsigned floats.
	UnsignedInt11F11F10FRev

	// UnsignedInt999E5Rev is shared-exponent RGB9E5.
	UnsignedInt999E5Rev

	// UnsignedInt248 packs 24-bit depth with 8-bit stencil.
	UnsignedInt248

	// SignedInt8 is a signed 8-bit integer (no normalization).
	SignedInt8

	// SignedInt16 is a signed 16-bit integer.
	SignedInt16

	// SignedInt32 is a signed 32-bit integer.
	SignedInt32

	// UnsignedInt8 is an unsigned 8-bit integer.
	UnsignedInt8

	// UnsignedInt16 is an unsigned 16-bit integer.
	UnsignedInt16

	// UnsignedInt32 is an unsigned 32-bit integer.
	UnsignedInt32

	// HalfFloat is an IEEE 754 binary16 float.
	HalfFloat

	// Float is an IEEE 754 binary32 float.
	Float

	// Float32UnsignedInt248Rev is 32-bit float depth with 8-bit stencil
	// in a second 32-bit word.
	Float32UnsignedInt248Rev

	channelTypeCount
)

// String returns a string representation of the channel type.
func (t ChannelType) String() string {
	switch t {
	case SnormInt8:
		return "SnormInt8"
	case SnormInt16:
		return "SnormInt16"
	case SnormInt32:
		return "SnormInt32"
	case UnormInt8:
		return "UnormInt8"
	case UnormInt16:
		return "UnormInt16"
	case UnormInt32:
		return "UnormInt32"
	case UnormShort565:
		return "UnormShort565"
	case UnormShort555:
		return "UnormShort555"
	case UnormShort4444:
		return "UnormShort4444"
	case UnormShort5551:
		return "UnormShort5551"
	case UnormInt101010:
		return "UnormInt101010"
	case UnormInt1010102Rev:
		return "UnormInt1010102Rev"
	case UnsignedInt1010102Rev:
		return "UnsignedInt1010102Rev"
	case UnsignedInt11F11F10FRev:
		return "UnsignedInt11F11F10FRev"
	case UnsignedInt999E5Rev:
		return "UnsignedInt999E5Rev"
	case UnsignedInt248:
		return "UnsignedInt248"
	case SignedInt8:
		return "SignedInt8"
	case SignedInt16:
		return "SignedInt16"
	case SignedInt32:
		return "SignedInt32"
	case UnsignedInt8:
		return "UnsignedInt8"
	case UnsignedInt16:
		return "UnsignedInt16"
	case UnsignedInt32:
		return "UnsignedInt32"
	case HalfFloat:
		return "HalfFloat"
	case Float:
		return "Float"
	case Float32UnsignedInt248Rev:
		return "Float32UnsignedInt248Rev"
	default:
		return "Unknown"
	}
}

// ChannelClass groups channel types by the comparison and tolerance
// strategy a verifier has to apply to them.
type ChannelClass uint8

const (
	// ClassSignedFixedPoint covers the snorm types.
	ClassSignedFixedPoint ChannelClass = iota

	// ClassUnsignedFixedPoint covers the unorm and packed-unorm types.
	ClassUnsignedFixedPoint

	// ClassSignedInteger covers the non-normalized signed integer types.
	ClassSignedInteger

	// ClassUnsignedInteger covers the non-normalized unsigned integer types.
	ClassUnsignedInteger

	// ClassFloatingPoint covers half, float and packed float types.
	ClassFloatingPoint
)

// String returns a string representation of the channel class.
func (c ChannelClass) String() string {
	switch c {
	case ClassSignedFixedPoint:
		return "SignedFixedPoint"
	case ClassUnsignedFixedPoint:
		return "UnsignedFixedPoint"
	case ClassSignedInteger:
		return "SignedInteger"
	case ClassUnsignedInteger:
		return "UnsignedInteger"
	case ClassFloatingPoint:
		return "FloatingPoint"
	default:
		return "Unknown"
	}
}

// Class returns the channel class of the type. Panics on an invalid
// type: an unclassifiable format is a programming error.
func (t ChannelType) Class() ChannelClass {
	switch t {
	case SnormInt8, SnormInt16, SnormInt32:
		return ClassSignedFixedPoint
	case UnormInt8, UnormInt16, UnormInt32,
		UnormShort565, UnormShort555, UnormShort4444, UnormShort5551,
		UnormInt101010, UnormInt1010102Rev, UnsignedInt248:
		return ClassUnsignedFixedPoint
	case SignedInt8, SignedInt16, SignedInt32:
		return ClassSignedInteger
	case UnsignedInt8, UnsignedInt16, UnsignedInt32, UnsignedInt1010102Rev:
		return ClassUnsignedInteger
	case HalfFloat, Float, UnsignedInt11F11F10FRev, UnsignedInt999E5Rev,
		Float32UnsignedInt248Rev:
		return ClassFloatingPoint
	default:
		panic(fmt.Sprintf("texture: invalid channel type %d", t))
	}
}

// channelSize returns the byte size of a single (non-packed) channel.
func channelSize(t ChannelType) int {
	switch t {
	case SnormInt8, UnormInt8, SignedInt8, UnsignedInt8:
		return 1
	case SnormInt16, UnormInt16, SignedInt16, UnsignedInt16, HalfFloat:
		return 2
	case SnormInt32, UnormInt32, SignedInt32, UnsignedInt32, Float:
		return 4
	default:
		panic(fmt.Sprintf("texture: channel type %v is not per-channel addressable", t))
	}
}

// isPacked reports whether the type stores all channels in one word.
func isPacked(t ChannelType) bool {
	switch t {
	case UnormShort565, UnormShort555, UnormShort4444, UnormShort5551,
		UnormInt101010, UnormInt1010102Rev, UnsignedInt1010102Rev,
		UnsignedInt11F11F10FRev, UnsignedInt999E5Rev, UnsignedInt248,
		Float32UnsignedInt248Rev:
		return true
	default:
		return false
	}
}

// Format identifies a complete texture format as a channel order plus a
// channel type.
type Format struct {
	Order ChannelOrder
	Type  ChannelType
}

// NewFormat returns the format {order, type}. Panics if the combination
// is not supported (for example a packed RGB type with a non-RGB order).
func NewFormat(order ChannelOrder, typ ChannelType) Format {
	f := Format{Order: order, Type: typ}
	if !f.isValidCombination() {
		panic(fmt.Sprintf("texture: invalid format %v/%v", order, typ))
	}
	return f
}

func (f Format) isValidCombination() bool {
	switch f.Type {
	case UnormShort565, UnormShort555, UnormInt101010:
		return f.Order == RGB || f.Order == SRGB
	case UnormShort4444, UnormShort5551, UnormInt1010102Rev, UnsignedInt1010102Rev:
		return f.Order == RGBA || f.Order == SRGBA
	case UnsignedInt11F11F10FRev, UnsignedInt999E5Rev:
		return f.Order == RGB
	case UnsignedInt248, Float32UnsignedInt248Rev:
		return f.Order == DS
	default:
		return f.Order < channelOrderCount && f.Type < channelTypeCount
	}
}

// String returns a representation such as "RGBA/UnormInt8".
func (f Format) String() string {
	return f.Order.String() + "/" + f.Type.String()
}

// NumChannels returns the number of stored channels for the order.
func (o ChannelOrder) NumChannels() int {
	switch o {
	case R, A, L, D, S:
		return 1
	case LA, RG, RA, DS:
		return 2
	case RGB, SRGB:
		return 3
	case RGBA, ARGB, BGRA, SRGBA:
		return 4
	case SR:
		return 1
	case SRG:
		return 2
	default:
		panic(fmt.Sprintf("texture: invalid channel order %d", o))
	}
}

// PixelSize returns the byte size of one pixel in this format.
func (f Format) PixelSize() int {
	switch f.Type {
	case UnormShort565, UnormShort555, UnormShort4444, UnormShort5551:
		return 2
	case UnormInt101010, UnormInt1010102Rev, UnsignedInt1010102Rev,
		UnsignedInt11F11F10FRev, UnsignedInt999E5Rev, UnsignedInt248:
		return 4
	case Float32UnsignedInt248Rev:
		return 8
	default:
		return f.Order.NumChannels() * channelSize(f.Type)
	}
}

// IsSRGB reports whether the format's color channels are sRGB-encoded.
func (f Format) IsSRGB() bool {
	switch f.Order {
	case SR, SRG, SRGB, SRGBA:
		return true
	default:
		return false
	}
}

// HasDepth reports whether the format carries a depth channel.
func (f Format) HasDepth() bool {
	return f.Order == D || f.Order == DS
}

// HasStencil reports whether the format carries a stencil channel.
func (f Format) HasStencil() bool {
	return f.Order == S || f.Order == DS
}

// swizzle elements for mapping stored channels to RGBA.
type swz uint8

const (
	swzZero swz = iota
	swzOne
	swz0
	swz1
	swz2
	swz3
)

// readSwizzle returns, for each RGBA result channel, which stored
// channel (or constant) supplies it.
func (o ChannelOrder) readSwizzle() [4]swz {
	switch o {
	case R, SR:
		return [4]swz{swz0, swzZero, swzZero, swzOne}
	case A:
		return [4]swz{swzZero, swzZero, swzZero, swz0}
	case L:
		return [4]swz{swz0, swz0, swz0, swzOne}
	case LA:
		return [4]swz{swz0, swz0, swz0, swz1}
	case RG, SRG:
		return [4]swz{swz0, swz1, swzZero, swzOne}
	case RA:
		return [4]swz{swz0, swzZero, swzZero, swz1}
	case RGB, SRGB:
		return [4]swz{swz0, swz1, swz2, swzOne}
	case RGBA, SRGBA:
		return [4]swz{swz0, swz1, swz2, swz3}
	case ARGB:
		return [4]swz{swz1, swz2, swz3, swz0}
	case BGRA:
		return [4]swz{swz2, swz1, swz0, swz3}
	case D:
		return [4]swz{swz0, swzZero, swzZero, swzOne}
	case S:
		return [4]swz{swz0, swzZero, swzZero, swzOne}
	case DS:
		// Depth in the first result channel; stencil is accessed through
		// the dedicated stencil path.
		return [4]swz{swz0, swzZero, swzZero, swzOne}
	default:
		panic(fmt.Sprintf("texture: invalid channel order %d", o))
	}
}

// writeSwizzle returns, for each stored channel, which RGBA input
// channel supplies it.
func (o ChannelOrder) writeSwizzle() []int {
	switch o {
	case R, SR, L, D, S:
		return []int{0}
	case A:
		return []int{3}
	case LA, RA:
		return []int{0, 3}
	case RG, SRG:
		return []int{0, 1}
	case RGB, SRGB:
		return []int{0, 1, 2}
	case RGBA, SRGBA:
		return []int{0, 1, 2, 3}
	case ARGB:
		return []int{3, 0, 1, 2}
	case BGRA:
		return []int{2, 1, 0, 3}
	case DS:
		return []int{0, 3}
	default:
		panic(fmt.Sprintf("texture: invalid channel order %d", o))
	}
}

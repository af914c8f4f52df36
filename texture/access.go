package texture

import (
	"errors"
	"fmt"
	"math"
)

// Common errors for access construction.
var (
	// ErrInvalidDimensions is returned when a dimension is non-positive.
	ErrInvalidDimensions = errors.New("texture: invalid dimensions")

	// ErrInvalidPitch is returned when a pitch is smaller than a packed row
	// or slice requires.
	ErrInvalidPitch = errors.New("texture: pitch too small")

	// ErrDataTooSmall is returned when the backing buffer cannot hold the
	// described access window.
	ErrDataTooSmall = errors.New("texture: data buffer too small")
)

// ConstAccess is a read-only, non-owning view over raw pixel storage:
// a format plus (width, height, depth) and byte pitches into a backing
// buffer. Many views may alias one buffer; no view owns memory.
//
// The access window is validated at construction, so pixel reads inside
// the declared bounds can never escape the buffer.
type ConstAccess struct {
	format     Format
	width      int
	height     int
	depth      int
	rowPitch   int
	slicePitch int
	data       []byte
}

// NewConstAccess creates a tightly packed read-only view of a
// width x height x depth region in the given format.
func NewConstAccess(format Format, width, height, depth int, data []byte) (ConstAccess, error) {
	pixelSize := format.PixelSize()
	return NewConstAccessWithPitch(format, width, height, depth,
		width*pixelSize, width*pixelSize*height, data)
}

// NewConstAccessWithPitch creates a read-only view with explicit row and
// slice pitches in bytes.
func NewConstAccessWithPitch(format Format, width, height, depth, rowPitch, slicePitch int, data []byte) (ConstAccess, error) {
	pixelSize := format.PixelSize()
	switch {
	case width <= 0 || height <= 0 || depth <= 0:
		return ConstAccess{}, ErrInvalidDimensions
	case rowPitch < width*pixelSize || slicePitch < rowPitch*height:
		return ConstAccess{}, ErrInvalidPitch
	case len(data) < (depth-1)*slicePitch+(height-1)*rowPitch+width*pixelSize:
		return ConstAccess{}, ErrDataTooSmall
	}
	return ConstAccess{
		format:     format,
		width:      width,
		height:     height,
		depth:      depth,
		rowPitch:   rowPitch,
		slicePitch: slicePitch,
		data:       data,
	}, nil
}

// Format returns the pixel format of the view.
func (a ConstAccess) Format() Format { return a.format }

// Width returns the width in pixels.
func (a ConstAccess) Width() int { return a.width }

// Height returns the height in pixels.
func (a ConstAccess) Height() int { return a.height }

// Depth returns the depth in pixels.
func (a ConstAccess) Depth() int { return a.depth }

// RowPitch returns the row pitch in bytes.
func (a ConstAccess) RowPitch() int { return a.rowPitch }

// SlicePitch returns the slice pitch in bytes.
func (a ConstAccess) SlicePitch() int { return a.slicePitch }

// IsEmpty reports whether the view has been default-constructed.
func (a ConstAccess) IsEmpty() bool { return a.data == nil }

// pixelPtr returns the byte slice starting at pixel (x, y, z). Panics on
// out-of-bounds coordinates: the callers (sampling, verifiers) wrap or
// clamp before reading, so an out-of-range index is a programming error.
func (a ConstAccess) pixelPtr(x, y, z int) []byte {
	if x < 0 || x >= a.width || y < 0 || y >= a.height || z < 0 || z >= a.depth {
		panic(fmt.Sprintf("texture: pixel (%d, %d, %d) outside %dx%dx%d", x, y, z, a.width, a.height, a.depth))
	}
	off := z*a.slicePitch + y*a.rowPitch + x*a.format.PixelSize()
	return a.data[off:]
}

// Pixel decodes the pixel at (x, y, z) to RGBA floats. sRGB formats are
// returned as stored, without linearization; filtering code decodes
// sRGB explicitly. Depth formats return depth in the first channel.
func (a ConstAccess) Pixel(x, y, z int) Vec4 {
	p := a.pixelPtr(x, y, z)

	// Fast paths for the two most common layouts. These must produce
	// exactly the same results as the generic path below.
	switch {
	case a.format.Order == RGBA && a.format.Type == UnormInt8:
		return Vec4{
			unormToFloat(uint64(p[0]), 8),
			unormToFloat(uint64(p[1]), 8),
			unormToFloat(uint64(p[2]), 8),
			unormToFloat(uint64(p[3]), 8),
		}
	case a.format.Order == RGB && a.format.Type == UnormInt8:
		return Vec4{
			unormToFloat(uint64(p[0]), 8),
			unormToFloat(uint64(p[1]), 8),
			unormToFloat(uint64(p[2]), 8),
			1,
		}
	}

	if isPacked(a.format.Type) {
		return a.packedPixel(p)
	}

	var stored [4]float32
	size := channelSize(a.format.Type)
	for c := range a.format.Order.NumChannels() {
		stored[c] = channelToFloat(p[c*size:], a.format.Type)
	}
	return swizzleFloat(stored, a.format.Order)
}

func (a ConstAccess) packedPixel(p []byte) Vec4 {
	switch a.format.Type {
	case UnormShort565:
		v := readUint16(p)
		return Vec4{
			unormToFloat(uint64(v>>11&0x1F), 5),
			unormToFloat(uint64(v>>5&0x3F), 6),
			unormToFloat(uint64(v&0x1F), 5),
			1,
		}
	case UnormShort555:
		v := readUint16(p)
		return Vec4{
			unormToFloat(uint64(v>>10&0x1F), 5),
			unormToFloat(uint64(v>>5&0x1F), 5),
			unormToFloat(uint64(v&0x1F), 5),
			1,
		}
	case UnormShort4444:
		v := readUint16(p)
		return Vec4{
			unormToFloat(uint64(v>>12&0xF), 4),
			unormToFloat(uint64(v>>8&0xF), 4),
			unormToFloat(uint64(v>>4&0xF), 4),
			unormToFloat(uint64(v&0xF), 4),
		}
	case UnormShort5551:
		v := readUint16(p)
		return Vec4{
			unormToFloat(uint64(v>>11&0x1F), 5),
			unormToFloat(uint64(v>>6&0x1F), 5),
			unormToFloat(uint64(v>>1&0x1F), 5),
			unormToFloat(uint64(v&0x1), 1),
		}
	case UnormInt101010:
		v := readUint32(p)
		return Vec4{
			unormToFloat(uint64(v>>22&0x3FF), 10),
			unormToFloat(uint64(v>>12&0x3FF), 10),
			unormToFloat(uint64(v>>2&0x3FF), 10),
			1,
		}
	case UnormInt1010102Rev:
		v := readUint32(p)
		return Vec4{
			unormToFloat(uint64(v&0x3FF), 10),
			unormToFloat(uint64(v>>10&0x3FF), 10),
			unormToFloat(uint64(v>>20&0x3FF), 10),
			unormToFloat(uint64(v>>30&0x3), 2),
		}
	case UnsignedInt1010102Rev:
		v := readUint32(p)
		return Vec4{
			float32(v & 0x3FF),
			float32(v >> 10 & 0x3FF),
			float32(v >> 20 & 0x3FF),
			float32(v >> 30 & 0x3),
		}
	case UnsignedInt11F11F10FRev:
		v := readUint32(p)
		return Vec4{
			unsignedFToFloat(v&0x7FF, 6),
			unsignedFToFloat(v>>11&0x7FF, 6),
			unsignedFToFloat(v>>22&0x3FF, 5),
			1,
		}
	case UnsignedInt999E5Rev:
		r, g, b := rgb9e5ToFloat(readUint32(p))
		return Vec4{r, g, b, 1}
	case UnsignedInt248:
		v := readUint32(p)
		return Vec4{unormToFloat(uint64(v>>8), 24), 0, 0, 1}
	case Float32UnsignedInt248Rev:
		return Vec4{math.Float32frombits(readUint32(p)), 0, 0, 1}
	default:
		panic(fmt.Sprintf("texture: unhandled packed type %v", a.format.Type))
	}
}

// PixelInt decodes the pixel at (x, y, z) as raw integer channels.
func (a ConstAccess) PixelInt(x, y, z int) IVec4 {
	p := a.pixelPtr(x, y, z)

	if isPacked(a.format.Type) {
		return a.packedPixelInt(p)
	}

	var stored [4]int32
	size := channelSize(a.format.Type)
	for c := range a.format.Order.NumChannels() {
		stored[c] = channelToInt(p[c*size:], a.format.Type)
	}
	return swizzleInt(stored, a.format.Order)
}

func (a ConstAccess) packedPixelInt(p []byte) IVec4 {
	switch a.format.Type {
	case UnormShort565:
		v := readUint16(p)
		return IVec4{int32(v >> 11 & 0x1F), int32(v >> 5 & 0x3F), int32(v & 0x1F), 1}
	case UnormShort555:
		v := readUint16(p)
		return IVec4{int32(v >> 10 & 0x1F), int32(v >> 5 & 0x1F), int32(v & 0x1F), 1}
	case UnormShort4444:
		v := readUint16(p)
		return IVec4{int32(v >> 12 & 0xF), int32(v >> 8 & 0xF), int32(v >> 4 & 0xF), int32(v & 0xF)}
	case UnormShort5551:
		v := readUint16(p)
		return IVec4{int32(v >> 11 & 0x1F), int32(v >> 6 & 0x1F), int32(v >> 1 & 0x1F), int32(v & 0x1)}
	case UnormInt101010:
		v := readUint32(p)
		return IVec4{int32(v >> 22 & 0x3FF), int32(v >> 12 & 0x3FF), int32(v >> 2 & 0x3FF), 1}
	case UnormInt1010102Rev, UnsignedInt1010102Rev:
		v := readUint32(p)
		return IVec4{int32(v & 0x3FF), int32(v >> 10 & 0x3FF), int32(v >> 20 & 0x3FF), int32(v >> 30 & 0x3)}
	case UnsignedInt248:
		v := readUint32(p)
		return IVec4{int32(v >> 8), int32(v & 0xFF), 0, 1}
	case Float32UnsignedInt248Rev:
		return IVec4{int32(math.Float32frombits(readUint32(p))), int32(readUint32(p[4:]) & 0xFF), 0, 1}
	default:
		panic(fmt.Sprintf("texture: unhandled packed type %v", a.format.Type))
	}
}

// PixDepth returns the depth value at (x, y, z). Panics if the format
// has no depth channel.
func (a ConstAccess) PixDepth(x, y, z int) float32 {
	if !a.format.HasDepth() {
		panic(fmt.Sprintf("texture: format %v has no depth channel", a.format))
	}
	p := a.pixelPtr(x, y, z)
	switch a.format.Type {
	case UnsignedInt248:
		return unormToFloat(uint64(readUint32(p)>>8), 24)
	case Float32UnsignedInt248Rev:
		return math.Float32frombits(readUint32(p))
	default:
		return channelToFloat(p, a.format.Type)
	}
}

// PixStencil returns the stencil value at (x, y, z). Panics if the
// format has no stencil channel.
func (a ConstAccess) PixStencil(x, y, z int) int32 {
	if !a.format.HasStencil() {
		panic(fmt.Sprintf("texture: format %v has no stencil channel", a.format))
	}
	p := a.pixelPtr(x, y, z)
	switch a.format.Type {
	case UnsignedInt248:
		return int32(readUint32(p) & 0xFF)
	case Float32UnsignedInt248Rev:
		return int32(readUint32(p[4:]) & 0xFF)
	default:
		return channelToInt(p, a.format.Type)
	}
}

func swizzleFloat(stored [4]float32, order ChannelOrder) Vec4 {
	sw := order.readSwizzle()
	var out Vec4
	for i, s := range sw {
		switch s {
		case swzZero:
			out[i] = 0
		case swzOne:
			out[i] = 1
		default:
			out[i] = stored[s-swz0]
		}
	}
	return out
}

func swizzleInt(stored [4]int32, order ChannelOrder) IVec4 {
	sw := order.readSwizzle()
	var out IVec4
	for i, s := range sw {
		switch s {
		case swzZero:
			out[i] = 0
		case swzOne:
			out[i] = 1
		default:
			out[i] = stored[s-swz0]
		}
	}
	return out
}

// Access is a mutable pixel buffer view. It extends ConstAccess with
// per-pixel and whole-surface write operations.
type Access struct {
	ConstAccess
}

// NewAccess creates a tightly packed mutable view.
func NewAccess(format Format, width, height, depth int, data []byte) (Access, error) {
	c, err := NewConstAccess(format, width, height, depth, data)
	return Access{c}, err
}

// NewAccessWithPitch creates a mutable view with explicit pitches.
func NewAccessWithPitch(format Format, width, height, depth, rowPitch, slicePitch int, data []byte) (Access, error) {
	c, err := NewConstAccessWithPitch(format, width, height, depth, rowPitch, slicePitch, data)
	return Access{c}, err
}

// SetPixel encodes color into the pixel at (x, y, z).
func (a Access) SetPixel(color Vec4, x, y, z int) {
	p := a.pixelPtr(x, y, z)

	if isPacked(a.format.Type) {
		a.setPackedPixel(p, color)
		return
	}

	sw := a.format.Order.writeSwizzle()
	size := channelSize(a.format.Type)
	for c, src := range sw {
		floatToChannel(p[c*size:], color[src], a.format.Type)
	}
}

func (a Access) setPackedPixel(p []byte, color Vec4) {
	switch a.format.Type {
	case UnormShort565:
		v := uint16(floatToUnorm(color[0], 5))<<11 |
			uint16(floatToUnorm(color[1], 6))<<5 |
			uint16(floatToUnorm(color[2], 5))
		writeUint16(p, v)
	case UnormShort555:
		v := uint16(floatToUnorm(color[0], 5))<<10 |
			uint16(floatToUnorm(color[1], 5))<<5 |
			uint16(floatToUnorm(color[2], 5))
		writeUint16(p, v)
	case UnormShort4444:
		v := uint16(floatToUnorm(color[0], 4))<<12 |
			uint16(floatToUnorm(color[1], 4))<<8 |
			uint16(floatToUnorm(color[2], 4))<<4 |
			uint16(floatToUnorm(color[3], 4))
		writeUint16(p, v)
	case UnormShort5551:
		v := uint16(floatToUnorm(color[0], 5))<<11 |
			uint16(floatToUnorm(color[1], 5))<<6 |
			uint16(floatToUnorm(color[2], 5))<<1 |
			uint16(floatToUnorm(color[3], 1))
		writeUint16(p, v)
	case UnormInt101010:
		v := uint32(floatToUnorm(color[0], 10))<<22 |
			uint32(floatToUnorm(color[1], 10))<<12 |
			uint32(floatToUnorm(color[2], 10))<<2
		writeUint32(p, v)
	case UnormInt1010102Rev:
		v := uint32(floatToUnorm(color[0], 10)) |
			uint32(floatToUnorm(color[1], 10))<<10 |
			uint32(floatToUnorm(color[2], 10))<<20 |
			uint32(floatToUnorm(color[3], 2))<<30
		writeUint32(p, v)
	case UnsignedInt1010102Rev:
		v := uint32(convertSatRte(color[0], 0, 1023)) |
			uint32(convertSatRte(color[1], 0, 1023))<<10 |
			uint32(convertSatRte(color[2], 0, 1023))<<20 |
			uint32(convertSatRte(color[3], 0, 3))<<30
		writeUint32(p, v)
	case UnsignedInt11F11F10FRev:
		v := floatToUnsignedF(color[0], 6) |
			floatToUnsignedF(color[1], 6)<<11 |
			floatToUnsignedF(color[2], 5)<<22
		writeUint32(p, v)
	case UnsignedInt999E5Rev:
		writeUint32(p, floatToRGB9E5(color[0], color[1], color[2]))
	case UnsignedInt248:
		v := uint32(floatToUnorm(color[0], 24))<<8 | uint32(readUint32(p))&0xFF
		writeUint32(p, v)
	case Float32UnsignedInt248Rev:
		writeUint32(p, math.Float32bits(color[0]))
	default:
		panic(fmt.Sprintf("texture: unhandled packed type %v", a.format.Type))
	}
}

// SetPixelInt encodes raw integer channels into the pixel at (x, y, z).
func (a Access) SetPixelInt(color IVec4, x, y, z int) {
	p := a.pixelPtr(x, y, z)

	if isPacked(a.format.Type) {
		switch a.format.Type {
		case UnormInt1010102Rev, UnsignedInt1010102Rev:
			v := uint32(clampI(color[0], 0, 1023)) |
				uint32(clampI(color[1], 0, 1023))<<10 |
				uint32(clampI(color[2], 0, 1023))<<20 |
				uint32(clampI(color[3], 0, 3))<<30
			writeUint32(p, v)
			return
		case UnsignedInt248:
			v := uint32(color[0])<<8 | uint32(color[1])&0xFF
			writeUint32(p, v)
			return
		default:
			panic(fmt.Sprintf("texture: integer write not supported for %v", a.format.Type))
		}
	}

	sw := a.format.Order.writeSwizzle()
	size := channelSize(a.format.Type)
	for c, src := range sw {
		intToChannel(p[c*size:], color[src], a.format.Type)
	}
}

// SetPixDepth writes the depth channel at (x, y, z), leaving stencil
// untouched for combined formats.
func (a Access) SetPixDepth(depth float32, x, y, z int) {
	if !a.format.HasDepth() {
		panic(fmt.Sprintf("texture: format %v has no depth channel", a.format))
	}
	p := a.pixelPtr(x, y, z)
	switch a.format.Type {
	case UnsignedInt248:
		v := uint32(floatToUnorm(depth, 24))<<8 | readUint32(p)&0xFF
		writeUint32(p, v)
	case Float32UnsignedInt248Rev:
		writeUint32(p, math.Float32bits(depth))
	default:
		floatToChannel(p, depth, a.format.Type)
	}
}

// SetPixStencil writes the stencil channel at (x, y, z).
func (a Access) SetPixStencil(stencil int32, x, y, z int) {
	if !a.format.HasStencil() {
		panic(fmt.Sprintf("texture: format %v has no stencil channel", a.format))
	}
	p := a.pixelPtr(x, y, z)
	switch a.format.Type {
	case UnsignedInt248:
		v := readUint32(p)&0xFFFFFF00 | uint32(stencil)&0xFF
		writeUint32(p, v)
	case Float32UnsignedInt248Rev:
		writeUint32(p[4:], uint32(stencil)&0xFF)
	default:
		intToChannel(p, stencil, a.format.Type)
	}
}

// Clear writes color into every pixel of the view.
func (a Access) Clear(color Vec4) {
	for z := range a.depth {
		for y := range a.height {
			for x := range a.width {
				a.SetPixel(color, x, y, z)
			}
		}
	}
}

// ClearDepth writes depth into every pixel of a depth view.
func (a Access) ClearDepth(depth float32) {
	for z := range a.depth {
		for y := range a.height {
			for x := range a.width {
				a.SetPixDepth(depth, x, y, z)
			}
		}
	}
}

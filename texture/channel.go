package texture

import (
	"fmt"
	"math"

	"github.com/shogo82148/float16"
)

// The per-channel codecs below are the ground truth the verifiers rely
// on. Normalized and integer writes use convert-saturate-round-to-even;
// reads reproduce the exact quantization of each encoding.

func clampF(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

func clampI(v, lo, hi int32) int32 {
	return min(max(v, lo), hi)
}

// rte rounds to the nearest integer, ties to even.
func rte(v float64) float64 {
	return math.RoundToEven(v)
}

// convertSatRte converts a float to an integer of the given range by
// saturating first and rounding ties to even.
func convertSatRte(v float32, lo, hi float64) int64 {
	d := float64(v)
	if d != d {
		// NaN saturates to the low end of the range.
		return int64(lo)
	}
	d = math.Min(math.Max(d, lo), hi)
	return int64(rte(d))
}

// snormToFloat decodes a signed normalized value of the given bit width.
// The most negative code clamps to -1 so the range is symmetric.
func snormToFloat(v int64, bits int) float32 {
	scale := float64(int64(1)<<(bits-1)) - 1
	return float32(math.Max(float64(v)/scale, -1))
}

// unormToFloat decodes an unsigned normalized value of the given width.
func unormToFloat(v uint64, bits int) float32 {
	scale := float64(uint64(1)<<bits) - 1
	return float32(float64(v) / scale)
}

// floatToSnorm encodes with saturation and round-to-even.
func floatToSnorm(v float32, bits int) int64 {
	scale := float64(int64(1)<<(bits-1)) - 1
	return convertSatRte(v*float32(scale), -scale-1, scale)
}

// floatToUnorm encodes with saturation and round-to-even.
func floatToUnorm(v float32, bits int) uint64 {
	scale := float64(uint64(1)<<bits) - 1
	return uint64(convertSatRte(v*float32(scale), 0, scale))
}

// channelToFloat decodes one stored channel starting at data[0].
func channelToFloat(data []byte, t ChannelType) float32 {
	switch t {
	case SnormInt8:
		return snormToFloat(int64(int8(data[0])), 8)
	case SnormInt16:
		return snormToFloat(int64(int16(readUint16(data))), 16)
	case SnormInt32:
		return snormToFloat(int64(int32(readUint32(data))), 32)
	case UnormInt8:
		return unormToFloat(uint64(data[0]), 8)
	case UnormInt16:
		return unormToFloat(uint64(readUint16(data)), 16)
	case UnormInt32:
		return unormToFloat(uint64(readUint32(data)), 32)
	case SignedInt8:
		return float32(int8(data[0]))
	case SignedInt16:
		return float32(int16(readUint16(data)))
	case SignedInt32:
		return float32(int32(readUint32(data)))
	case UnsignedInt8:
		return float32(data[0])
	case UnsignedInt16:
		return float32(readUint16(data))
	case UnsignedInt32:
		return float32(readUint32(data))
	case HalfFloat:
		return float16.Float16(readUint16(data)).Float32()
	case Float:
		return math.Float32frombits(readUint32(data))
	default:
		panic(fmt.Sprintf("texture: channel type %v is not per-channel decodable", t))
	}
}

// floatToChannel encodes v into data[0:channelSize(t)].
func floatToChannel(data []byte, v float32, t ChannelType) {
	switch t {
	case SnormInt8:
		data[0] = byte(int8(floatToSnorm(v, 8)))
	case SnormInt16:
		writeUint16(data, uint16(int16(floatToSnorm(v, 16))))
	case SnormInt32:
		writeUint32(data, uint32(int32(floatToSnorm(v, 32))))
	case UnormInt8:
		data[0] = byte(floatToUnorm(v, 8))
	case UnormInt16:
		writeUint16(data, uint16(floatToUnorm(v, 16)))
	case UnormInt32:
		writeUint32(data, uint32(floatToUnorm(v, 32)))
	case SignedInt8:
		data[0] = byte(int8(convertSatRte(v, math.MinInt8, math.MaxInt8)))
	case SignedInt16:
		writeUint16(data, uint16(int16(convertSatRte(v, math.MinInt16, math.MaxInt16))))
	case SignedInt32:
		writeUint32(data, uint32(int32(convertSatRte(v, math.MinInt32, math.MaxInt32))))
	case UnsignedInt8:
		data[0] = byte(convertSatRte(v, 0, math.MaxUint8))
	case UnsignedInt16:
		writeUint16(data, uint16(convertSatRte(v, 0, math.MaxUint16)))
	case UnsignedInt32:
		writeUint32(data, uint32(uint64(convertSatRte(v, 0, math.MaxUint32))))
	case HalfFloat:
		writeUint16(data, uint16(float16.FromFloat32(v)))
	case Float:
		writeUint32(data, math.Float32bits(v))
	default:
		panic(fmt.Sprintf("texture: channel type %v is not per-channel encodable", t))
	}
}

// channelToInt decodes one stored channel as a raw integer.
func channelToInt(data []byte, t ChannelType) int32 {
	switch t {
	case SnormInt8, SignedInt8:
		return int32(int8(data[0]))
	case SnormInt16, SignedInt16:
		return int32(int16(readUint16(data)))
	case SnormInt32, SignedInt32:
		return int32(readUint32(data))
	case UnormInt8, UnsignedInt8:
		return int32(data[0])
	case UnormInt16, UnsignedInt16:
		return int32(readUint16(data))
	case UnormInt32, UnsignedInt32:
		return int32(readUint32(data))
	case HalfFloat:
		return int32(float16.Float16(readUint16(data)).Float32())
	case Float:
		return int32(math.Float32frombits(readUint32(data)))
	default:
		panic(fmt.Sprintf("texture: channel type %v is not per-channel decodable", t))
	}
}

// intToChannel encodes a raw integer into one stored channel.
func intToChannel(data []byte, v int32, t ChannelType) {
	switch t {
	case SnormInt8, SignedInt8:
		data[0] = byte(int8(clampI(v, math.MinInt8, math.MaxInt8)))
	case SnormInt16, SignedInt16:
		writeUint16(data, uint16(int16(clampI(v, math.MinInt16, math.MaxInt16))))
	case SnormInt32, SignedInt32:
		writeUint32(data, uint32(v))
	case UnormInt8, UnsignedInt8:
		data[0] = byte(clampI(v, 0, math.MaxUint8))
	case UnormInt16, UnsignedInt16:
		writeUint16(data, uint16(clampI(v, 0, math.MaxUint16)))
	case UnormInt32, UnsignedInt32:
		writeUint32(data, uint32(v))
	case HalfFloat:
		writeUint16(data, uint16(float16.FromFloat32(float32(v))))
	case Float:
		writeUint32(data, math.Float32bits(float32(v)))
	default:
		panic(fmt.Sprintf("texture: channel type %v is not per-channel encodable", t))
	}
}

// Little-endian raw accessors. Texture storage is defined little-endian
// regardless of host order.

func readUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func readUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func writeUint16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func writeUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func readUint64(b []byte) uint64 {
	return uint64(readUint32(b)) | uint64(readUint32(b[4:]))<<32
}

func writeUint64(b []byte, v uint64) {
	writeUint32(b, uint32(v))
	writeUint32(b[4:], uint32(v>>32))
}

// Unsigned small floats (shared 5-bit exponent, bias 15, no sign).
// Used by the packed UnsignedInt11F11F10FRev format.

// unsignedFToFloat decodes an unsigned float with the given mantissa
// width from its raw bits.
func unsignedFToFloat(bits uint32, mBits int) float32 {
	exp := int(bits>>uint(mBits)) & 0x1F
	man := bits & (1<<uint(mBits) - 1)

	switch {
	case exp == 0x1F:
		if man == 0 {
			return float32(math.Inf(1))
		}
		return float32(math.NaN())
	case exp == 0:
		// Subnormal range.
		return float32(float64(man) * math.Ldexp(1, -14-mBits))
	default:
		return float32((1 + float64(man)*math.Ldexp(1, -mBits)) * math.Ldexp(1, exp-15))
	}
}

// floatToUnsignedF encodes v as an unsigned float with the given
// mantissa width, rounding ties to even. Negative values and negative
// zero clamp to zero; NaN encodes as NaN.
func floatToUnsignedF(v float32, mBits int) uint32 {
	expMask := uint32(0x1F) << uint(mBits)

	switch {
	case v != v:
		return expMask | 1
	case v <= 0:
		return 0
	case math.IsInf(float64(v), 1):
		return expMask
	}

	bits := math.Float32bits(v)
	exp := int(bits>>23)&0xFF - 127
	man := bits & 0x7FFFFF

	if exp < -14 {
		// Subnormal target range: quantize against the subnormal quantum.
		q := rte(float64(v) * math.Ldexp(1, 14+mBits))
		return uint32(q)
	}

	// Round the 23-bit mantissa down to mBits, ties to even, with
	// carry into the exponent.
	shift := uint(23 - mBits)
	half := uint32(1) << (shift - 1)
	m := man >> shift
	rem := man & (1<<shift - 1)
	if rem > half || (rem == half && m&1 == 1) {
		m++
		if m == 1<<uint(mBits) {
			m = 0
			exp++
		}
	}
	if exp > 15 {
		return expMask // overflow to +Inf
	}
	return uint32(exp+15)<<uint(mBits) | m
}

// Shared-exponent RGB9E5 (three 9-bit mantissas, one 5-bit exponent,
// bias 15).

const (
	rgb9e5MantissaBits = 9
	rgb9e5ExpBias      = 15
	rgb9e5MaxExp       = 31
)

// rgb9e5ToFloat decodes the packed shared-exponent word to RGB.
func rgb9e5ToFloat(bits uint32) (r, g, b float32) {
	exp := int(bits >> 27)
	scale := math.Ldexp(1, exp-rgb9e5ExpBias-rgb9e5MantissaBits)
	r = float32(float64(bits&0x1FF) * scale)
	g = float32(float64(bits>>9&0x1FF) * scale)
	b = float32(float64(bits>>18&0x1FF) * scale)
	return r, g, b
}

// floatToRGB9E5 encodes RGB with a shared exponent, following the
// standard shared-exponent algorithm: clamp, take the largest component,
// derive the exponent, then quantize all three mantissas to it.
func floatToRGB9E5(r, g, b float32) uint32 {
	maxVal := float64(uint64(1)<<rgb9e5MantissaBits-1) / float64(uint64(1)<<rgb9e5MantissaBits) *
		math.Ldexp(1, rgb9e5MaxExp-rgb9e5ExpBias)

	clamp := func(v float32) float64 {
		d := float64(v)
		if d != d || d < 0 {
			return 0
		}
		return math.Min(d, maxVal)
	}

	rc, gc, bc := clamp(r), clamp(g), clamp(b)
	maxC := math.Max(rc, math.Max(gc, bc))

	expP := max(-rgb9e5ExpBias-1, int(math.Floor(math.Log2(maxC)))) + 1 + rgb9e5ExpBias
	if maxC == 0 {
		expP = 0
	}
	maxS := int(rte(maxC / math.Ldexp(1, expP-rgb9e5ExpBias-rgb9e5MantissaBits)))
	if maxS == 1<<rgb9e5MantissaBits {
		expP++
	}

	scale := math.Ldexp(1, expP-rgb9e5ExpBias-rgb9e5MantissaBits)
	rs := uint32(rte(rc / scale))
	gs := uint32(rte(gc / scale))
	bs := uint32(rte(bc / scale))

	return uint32(expP)<<27 | bs<<18 | gs<<9 | rs
}

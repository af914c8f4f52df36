package texture

// Vec4 is a 4-component float vector holding one RGBA (or depth/stencil
// swizzled) texel value.
type Vec4 [4]float32

// IVec4 is a 4-component integer vector for integer-format texels.
type IVec4 [4]int32

// UVec4 is a 4-component unsigned vector.
type UVec4 [4]uint32

// Add returns the component-wise sum v + w.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns the component-wise difference v - w.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Scale returns v scaled by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Mul returns the component-wise product v * w.
func (v Vec4) Mul(w Vec4) Vec4 {
	return Vec4{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// Min returns the component-wise minimum of v and w.
func (v Vec4) Min(w Vec4) Vec4 {
	return Vec4{min(v[0], w[0]), min(v[1], w[1]), min(v[2], w[2]), min(v[3], w[3])}
}

// Max returns the component-wise maximum of v and w.
func (v Vec4) Max(w Vec4) Vec4 {
	return Vec4{max(v[0], w[0]), max(v[1], w[1]), max(v[2], w[2]), max(v[3], w[3])}
}

// MinComp returns the smallest component.
func (v Vec4) MinComp() float32 {
	return min(min(v[0], v[1]), min(v[2], v[3]))
}

// MaxComp returns the largest component.
func (v Vec4) MaxComp() float32 {
	return max(max(v[0], v[1]), max(v[2], v[3]))
}

// Lerp returns v*(1-t) + w*t component-wise.
func (v Vec4) Lerp(w Vec4, t float32) Vec4 {
	return Vec4{
		v[0]*(1-t) + w[0]*t,
		v[1]*(1-t) + w[1]*t,
		v[2]*(1-t) + w[2]*t,
		v[3]*(1-t) + w[3]*t,
	}
}

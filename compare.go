package texverify

import (
	"fmt"

	"github.com/gogpu/texverify/interval"
	"github.com/gogpu/texverify/texture"
)

// CmpResultSet is the set of boolean outcomes a depth comparison can
// produce once the reference value's quantization error is taken into
// account. At least one member is always true.
type CmpResultSet struct {
	IsTrue  bool
	IsFalse bool
}

// ExecCompare evaluates a compare predicate against a sampled depth
// value with the reference quantized to referenceBits. Fixed point
// depth clamps both operands to [0, 1]. The result set is never empty;
// an empty set indicates a broken predicate and panics.
func ExecCompare(mode texture.CompareMode, cmpValue, cmpReference float32, referenceBits int, isFixedPoint bool) CmpResultSet {
	if isFixedPoint {
		cmpValue = clampF32(cmpValue, 0, 1)
		cmpReference = clampF32(cmpReference, 0, 1)
	}

	err := ComputeFixedPointError(referenceBits)
	var res CmpResultSet

	switch mode {
	case texture.CompareLess:
		res.IsTrue = cmpReference-err < cmpValue
		res.IsFalse = cmpReference+err >= cmpValue
	case texture.CompareLessOrEqual:
		res.IsTrue = cmpReference-err <= cmpValue
		res.IsFalse = cmpReference+err > cmpValue
	case texture.CompareGreater:
		res.IsTrue = cmpReference+err > cmpValue
		res.IsFalse = cmpReference-err <= cmpValue
	case texture.CompareGreaterOrEqual:
		res.IsTrue = cmpReference+err >= cmpValue
		res.IsFalse = cmpReference-err < cmpValue
	case texture.CompareEqual:
		res.IsTrue = cmpReference-err <= cmpValue && cmpValue <= cmpReference+err
		res.IsFalse = err != 0 || cmpValue != cmpReference
	case texture.CompareNotEqual:
		res.IsTrue = err != 0 || cmpValue != cmpReference
		res.IsFalse = cmpReference-err <= cmpValue && cmpValue <= cmpReference+err
	case texture.CompareAlways:
		res.IsTrue = true
	case texture.CompareNever:
		res.IsFalse = true
	default:
		panic(fmt.Sprintf("texverify: invalid compare mode %v", mode))
	}

	if !res.IsTrue && !res.IsFalse {
		panic("texverify: compare produced an empty result set")
	}
	return res
}

// isResultInSet accepts result when it is within resultBits error of an
// outcome in the set.
func isResultInSet(set CmpResultSet, result float32, resultBits int) bool {
	err := ComputeFixedPointError(resultBits)
	return (set.IsTrue && result-err <= 1 && 1 <= result+err) ||
		(set.IsFalse && result-err <= 0 && 0 <= result+err)
}

func inRangeF32(v, lo, hi float32) bool { return lo <= v && v <= hi }

// depthQuad holds the four depth texels of one bilinear footprint in
// (x0,y0), (x1,y0), (x0,y1), (x1,y1) order.
type depthQuad [4]float32

func lookupDepthQuad(access texture.ConstAccess, sampler texture.Sampler, x0, x1, y0, y1, z int) depthQuad {
	return depthQuad{
		texture.LookupDepth(access, sampler, x0, y0, z),
		texture.LookupDepth(access, sampler, x1, y0, z),
		texture.LookupDepth(access, sampler, x0, y1, z),
		texture.LookupDepth(access, sampler, x1, y1, z),
	}
}

func bilinearScalar(v00, v10, v01, v11, a, b float32) float32 {
	return v00*(1-a)*(1-b) + v10*a*(1-b) + v01*(1-a)*b + v11*a*b
}

// isBilinearAnyCompareValid is the relaxed PCF model: the result may be
// any convex combination of per-texel outcomes.
func isBilinearAnyCompareValid(mode texture.CompareMode, prec TexComparePrecision, depths depthQuad, cmpReference, result float32, isFixedPointDepth bool) bool {
	var canBeTrue, canBeFalse bool
	for _, d := range depths {
		set := ExecCompare(mode, d, cmpReference, prec.ReferenceBits, isFixedPointDepth)
		canBeTrue = canBeTrue || set.IsTrue
		canBeFalse = canBeFalse || set.IsFalse
	}

	resErr := ComputeFixedPointError(prec.ResultBits)
	minOk := float32(1) - resErr
	if canBeFalse {
		minOk = -resErr
	}
	maxOk := resErr
	if canBeTrue {
		maxOk = 1 + resErr
	}
	return inRangeF32(result, minOk, maxOk)
}

// isBilinearPCFCompareValid enumerates every assignment of boolean
// outcomes consistent with the per-texel result sets and bounds the
// interpolated value over the filter weight box. The interpolant is
// bilinear in the weights, so its extremes sit at the box corners.
func isBilinearPCFCompareValid(mode texture.CompareMode, prec TexComparePrecision, depths depthQuad, xLo, xHi, yLo, yHi, cmpReference, result float32, isFixedPointDepth bool) bool {
	var isTrue, isFalse uint32
	for i, d := range depths {
		set := ExecCompare(mode, d, cmpReference, prec.ReferenceBits, isFixedPointDepth)
		if set.IsTrue {
			isTrue |= 1 << uint(i)
		}
		if set.IsFalse {
			isFalse |= 1 << uint(i)
		}
	}

	pcfErr := ComputeFixedPointError(prec.PCFBits)
	resErr := ComputeFixedPointError(prec.ResultBits)
	totalErr := pcfErr + resErr

	for comb := uint32(0); comb < 1<<4; comb++ {
		if (comb&isTrue)|(^comb&isFalse)&0xF != 0xF {
			continue
		}

		var ref [4]float32
		for i := range ref {
			if comb&(1<<uint(i)) != 0 {
				ref[i] = 1
			}
		}

		v00 := bilinearScalar(ref[0], ref[1], ref[2], ref[3], xLo, yLo)
		v10 := bilinearScalar(ref[0], ref[1], ref[2], ref[3], xHi, yLo)
		v01 := bilinearScalar(ref[0], ref[1], ref[2], ref[3], xLo, yHi)
		v11 := bilinearScalar(ref[0], ref[1], ref[2], ref[3], xHi, yHi)

		minV := minf(minf(v00, v10), minf(v01, v11))
		maxV := maxf(maxf(v00, v10), maxf(v01, v11))

		if inRangeF32(result, minV-totalErr, maxV+totalErr) {
			return true
		}
	}
	return false
}

func isBilinearCompareValid(mode texture.CompareMode, prec TexComparePrecision, depths depthQuad, xLo, xHi, yLo, yHi, cmpReference, result float32, isFixedPointDepth bool) bool {
	if prec.PCFBits > 0 {
		return isBilinearPCFCompareValid(mode, prec, depths, xLo, xHi, yLo, yHi, cmpReference, result, isFixedPointDepth)
	}
	return isBilinearAnyCompareValid(mode, prec, depths, cmpReference, result, isFixedPointDepth)
}

// isLinearCompareValid handles a 1D blend of two comparison outcomes,
// used for the level blend of nearest-filtered mipmap lookups.
func isLinearCompareValid(mode texture.CompareMode, prec TexComparePrecision, d0, d1, fLo, fHi, cmpReference, result float32, isFixedPointDepth bool) bool {
	set0 := ExecCompare(mode, d0, cmpReference, prec.ReferenceBits, isFixedPointDepth)
	set1 := ExecCompare(mode, d1, cmpReference, prec.ReferenceBits, isFixedPointDepth)

	if prec.PCFBits == 0 {
		canBeTrue := set0.IsTrue || set1.IsTrue
		canBeFalse := set0.IsFalse || set1.IsFalse
		resErr := ComputeFixedPointError(prec.ResultBits)
		minOk := float32(1) - resErr
		if canBeFalse {
			minOk = -resErr
		}
		maxOk := resErr
		if canBeTrue {
			maxOk = 1 + resErr
		}
		return inRangeF32(result, minOk, maxOk)
	}

	pcfErr := ComputeFixedPointError(prec.PCFBits)
	resErr := ComputeFixedPointError(prec.ResultBits)
	totalErr := pcfErr + resErr

	for comb := uint32(0); comb < 1<<2; comb++ {
		b0 := comb&1 != 0
		b1 := comb&2 != 0
		if (b0 && !set0.IsTrue) || (!b0 && !set0.IsFalse) || (b1 && !set1.IsTrue) || (!b1 && !set1.IsFalse) {
			continue
		}

		r0, r1 := float32(0), float32(0)
		if b0 {
			r0 = 1
		}
		if b1 {
			r1 = 1
		}

		vLo := r0*(1-fLo) + r1*fLo
		vHi := r0*(1-fHi) + r1*fHi

		if inRangeF32(result, minf(vLo, vHi)-totalErr, maxf(vLo, vHi)+totalErr) {
			return true
		}
	}
	return false
}

// isTrilinearCompareValid handles two bilinear footprints blended by a
// level weight, enumerating all 256 consistent outcome assignments.
func isTrilinearCompareValid(mode texture.CompareMode, prec TexComparePrecision, depths0, depths1 depthQuad,
	xLo0, xHi0, yLo0, yHi0, xLo1, xHi1, yLo1, yHi1, fLo, fHi, cmpReference, result float32, isFixedPointDepth bool) bool {

	if prec.PCFBits == 0 {
		var canBeTrue, canBeFalse bool
		for _, d := range append(depths0[:], depths1[:]...) {
			set := ExecCompare(mode, d, cmpReference, prec.ReferenceBits, isFixedPointDepth)
			canBeTrue = canBeTrue || set.IsTrue
			canBeFalse = canBeFalse || set.IsFalse
		}
		resErr := ComputeFixedPointError(prec.ResultBits)
		minOk := float32(1) - resErr
		if canBeFalse {
			minOk = -resErr
		}
		maxOk := resErr
		if canBeTrue {
			maxOk = 1 + resErr
		}
		return inRangeF32(result, minOk, maxOk)
	}

	var isTrue, isFalse uint32
	for i := 0; i < 4; i++ {
		set := ExecCompare(mode, depths0[i], cmpReference, prec.ReferenceBits, isFixedPointDepth)
		if set.IsTrue {
			isTrue |= 1 << uint(i)
		}
		if set.IsFalse {
			isFalse |= 1 << uint(i)
		}
	}
	for i := 0; i < 4; i++ {
		set := ExecCompare(mode, depths1[i], cmpReference, prec.ReferenceBits, isFixedPointDepth)
		if set.IsTrue {
			isTrue |= 1 << uint(i+4)
		}
		if set.IsFalse {
			isFalse |= 1 << uint(i+4)
		}
	}

	pcfErr := ComputeFixedPointError(prec.PCFBits)
	resErr := ComputeFixedPointError(prec.ResultBits)
	totalErr := pcfErr + resErr

	for comb := uint32(0); comb < 1<<8; comb++ {
		if (comb&isTrue)|(^comb&isFalse)&0xFF != 0xFF {
			continue
		}

		var ref0, ref1 [4]float32
		for i := 0; i < 4; i++ {
			if comb&(1<<uint(i)) != 0 {
				ref0[i] = 1
			}
			if comb&(1<<uint(i+4)) != 0 {
				ref1[i] = 1
			}
		}

		quadRange := func(ref [4]float32, xLo, xHi, yLo, yHi float32) (float32, float32) {
			v00 := bilinearScalar(ref[0], ref[1], ref[2], ref[3], xLo, yLo)
			v10 := bilinearScalar(ref[0], ref[1], ref[2], ref[3], xHi, yLo)
			v01 := bilinearScalar(ref[0], ref[1], ref[2], ref[3], xLo, yHi)
			v11 := bilinearScalar(ref[0], ref[1], ref[2], ref[3], xHi, yHi)
			return minf(minf(v00, v10), minf(v01, v11)), maxf(maxf(v00, v10), maxf(v01, v11))
		}

		min0, max0 := quadRange(ref0, xLo0, xHi0, yLo0, yHi0)
		min1, max1 := quadRange(ref1, xLo1, xHi1, yLo1, yHi1)

		// The blended value is linear in the level weight, so extremes
		// sit at the weight bounds.
		minV := minf(min0*(1-fLo)+min1*fLo, min0*(1-fHi)+min1*fHi)
		maxV := maxf(max0*(1-fLo)+max1*fLo, max0*(1-fHi)+max1*fHi)

		if inRangeF32(result, minV-totalErr, maxV+totalErr) {
			return true
		}
	}
	return false
}

// isNearestCompareResultValid tries every texel reachable under the
// coordinate error.
func isNearestCompareResultValid(level texture.ConstAccess, sampler texture.Sampler, prec TexComparePrecision, coordX, coordY float32, coordZ int, cmpReference, result float32) bool {
	w, h := level.Width(), level.Height()
	fixed := texture.IsFixedPointDepth(level.Format())

	uMin, uMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin, vMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h, coordY, prec.CoordBits[1], prec.UVWBits[1])

	for j := floorToInt(vMin); j <= floorToInt(vMax); j++ {
		for i := floorToInt(uMin); i <= floorToInt(uMax); i++ {
			x := texture.Wrap(sampler.WrapS, i, w)
			y := texture.Wrap(sampler.WrapT, j, h)
			depth := texture.LookupDepth(level, sampler, x, y, coordZ)

			set := ExecCompare(sampler.Compare, depth, cmpReference, prec.ReferenceBits, fixed)
			if isResultInSet(set, result, prec.ResultBits) {
				return true
			}
		}
	}
	return false
}

// isLinearCompareResultValid tries every bilinear footprint reachable
// under the coordinate error.
func isLinearCompareResultValid(level texture.ConstAccess, sampler texture.Sampler, prec TexComparePrecision, coordX, coordY float32, coordZ int, cmpReference, result float32) bool {
	w, h := level.Width(), level.Height()
	fixed := texture.IsFixedPointDepth(level.Format())

	uMin, uMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin, vMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h, coordY, prec.CoordBits[1], prec.UVWBits[1])

	for j := floorToInt(vMin - 0.5); j <= floorToInt(vMax-0.5); j++ {
		for i := floorToInt(uMin - 0.5); i <= floorToInt(uMax-0.5); i++ {
			x0 := texture.Wrap(sampler.WrapS, i, w)
			x1 := texture.Wrap(sampler.WrapS, i+1, w)
			y0 := texture.Wrap(sampler.WrapT, j, h)
			y1 := texture.Wrap(sampler.WrapT, j+1, h)
			depths := lookupDepthQuad(level, sampler, x0, x1, y0, y1, coordZ)

			minA := clampF32((uMin-0.5)-float32(i), 0, 1)
			maxA := clampF32((uMax-0.5)-float32(i), 0, 1)
			minB := clampF32((vMin-0.5)-float32(j), 0, 1)
			maxB := clampF32((vMax-0.5)-float32(j), 0, 1)

			if isBilinearCompareValid(sampler.Compare, prec, depths, minA, maxA, minB, maxB, cmpReference, result, fixed) {
				return true
			}
		}
	}
	return false
}

func isLevelCompareResultValid(level texture.ConstAccess, sampler texture.Sampler, filter texture.FilterMode, prec TexComparePrecision, coordX, coordY float32, coordZ int, cmpReference, result float32) bool {
	if filter == texture.Linear {
		return isLinearCompareResultValid(level, sampler, prec, coordX, coordY, coordZ, cmpReference, result)
	}
	return isNearestCompareResultValid(level, sampler, prec, coordX, coordY, coordZ, cmpReference, result)
}

// isNearestMipmapLinearCompareResultValid pairs nearest texels of two
// adjacent levels blended by the level weight.
func isNearestMipmapLinearCompareResultValid(level0, level1 texture.ConstAccess, sampler texture.Sampler, prec TexComparePrecision, coordX, coordY float32, coordZ int, fLo, fHi, cmpReference, result float32) bool {
	fixed := texture.IsFixedPointDepth(level0.Format())

	w0, h0 := level0.Width(), level0.Height()
	w1, h1 := level1.Width(), level1.Height()

	uMin0, uMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w0, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin0, vMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h0, coordY, prec.CoordBits[1], prec.UVWBits[1])
	uMin1, uMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w1, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin1, vMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h1, coordY, prec.CoordBits[1], prec.UVWBits[1])

	for j0 := floorToInt(vMin0); j0 <= floorToInt(vMax0); j0++ {
		for i0 := floorToInt(uMin0); i0 <= floorToInt(uMax0); i0++ {
			d0 := texture.LookupDepth(level0, sampler, texture.Wrap(sampler.WrapS, i0, w0), texture.Wrap(sampler.WrapT, j0, h0), coordZ)

			for j1 := floorToInt(vMin1); j1 <= floorToInt(vMax1); j1++ {
				for i1 := floorToInt(uMin1); i1 <= floorToInt(uMax1); i1++ {
					d1 := texture.LookupDepth(level1, sampler, texture.Wrap(sampler.WrapS, i1, w1), texture.Wrap(sampler.WrapT, j1, h1), coordZ)

					if isLinearCompareValid(sampler.Compare, prec, d0, d1, fLo, fHi, cmpReference, result, fixed) {
						return true
					}
				}
			}
		}
	}
	return false
}

// isLinearMipmapLinearCompareResultValid pairs bilinear footprints of
// two adjacent levels blended by the level weight.
func isLinearMipmapLinearCompareResultValid(level0, level1 texture.ConstAccess, sampler texture.Sampler, prec TexComparePrecision, coordX, coordY float32, coordZ int, fLo, fHi, cmpReference, result float32) bool {
	fixed := texture.IsFixedPointDepth(level0.Format())

	w0, h0 := level0.Width(), level0.Height()
	w1, h1 := level1.Width(), level1.Height()

	uMin0, uMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w0, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin0, vMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h0, coordY, prec.CoordBits[1], prec.UVWBits[1])
	uMin1, uMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w1, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin1, vMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h1, coordY, prec.CoordBits[1], prec.UVWBits[1])

	for j0 := floorToInt(vMin0 - 0.5); j0 <= floorToInt(vMax0-0.5); j0++ {
		for i0 := floorToInt(uMin0 - 0.5); i0 <= floorToInt(uMax0-0.5); i0++ {
			depths0 := lookupDepthQuad(level0, sampler,
				texture.Wrap(sampler.WrapS, i0, w0), texture.Wrap(sampler.WrapS, i0+1, w0),
				texture.Wrap(sampler.WrapT, j0, h0), texture.Wrap(sampler.WrapT, j0+1, h0), coordZ)

			minA0 := clampF32((uMin0-0.5)-float32(i0), 0, 1)
			maxA0 := clampF32((uMax0-0.5)-float32(i0), 0, 1)
			minB0 := clampF32((vMin0-0.5)-float32(j0), 0, 1)
			maxB0 := clampF32((vMax0-0.5)-float32(j0), 0, 1)

			for j1 := floorToInt(vMin1 - 0.5); j1 <= floorToInt(vMax1-0.5); j1++ {
				for i1 := floorToInt(uMin1 - 0.5); i1 <= floorToInt(uMax1-0.5); i1++ {
					depths1 := lookupDepthQuad(level1, sampler,
						texture.Wrap(sampler.WrapS, i1, w1), texture.Wrap(sampler.WrapS, i1+1, w1),
						texture.Wrap(sampler.WrapT, j1, h1), texture.Wrap(sampler.WrapT, j1+1, h1), coordZ)

					minA1 := clampF32((uMin1-0.5)-float32(i1), 0, 1)
					maxA1 := clampF32((uMax1-0.5)-float32(i1), 0, 1)
					minB1 := clampF32((vMin1-0.5)-float32(j1), 0, 1)
					maxB1 := clampF32((vMax1-0.5)-float32(j1), 0, 1)

					if isTrilinearCompareValid(sampler.Compare, prec, depths0, depths1,
						minA0, maxA0, minB0, maxB0,
						minA1, maxA1, minB1, maxB1,
						fLo, fHi, cmpReference, result, fixed) {
						return true
					}
				}
			}
		}
	}
	return false
}

func checkCompareSampler(sampler texture.Sampler) {
	if sampler.Compare == texture.CompareNone {
		panic("texverify: compare verification without a compare mode")
	}
}

// levelsCompareResultValid runs the shared mip selection structure for
// depth-compare lookups.
func levelsCompareResultValid(levels levels2D, sampler texture.Sampler, prec TexComparePrecision, coordX, coordY float32, coordZ int, lodBounds interval.Interval, cmpReference, result float32) bool {
	minLod := float32(lodBounds.Lo())
	maxLod := float32(lodBounds.Hi())
	canBeMagnified := minLod <= sampler.LodThreshold
	canBeMinified := maxLod > sampler.LodThreshold

	if canBeMagnified {
		if isLevelCompareResultValid(levels.level(0), sampler, sampler.MagFilter, prec, coordX, coordY, coordZ, cmpReference, result) {
			return true
		}
	}

	if canBeMinified {
		maxTexLevel := levels.numLevels() - 1

		switch {
		case sampler.MinFilter.IsLinearMipmap() && maxTexLevel > 0:
			minLevel := clampInt(floorToInt(minLod), 0, maxTexLevel-1)
			maxLevel := clampInt(floorToInt(maxLod), 0, maxTexLevel-1)

			for level := minLevel; level <= maxLevel; level++ {
				fLo := clampF32(minLod-float32(level), 0, 1)
				fHi := clampF32(maxLod-float32(level), 0, 1)

				var ok bool
				if sampler.MinFilter.LevelFilter() == texture.Linear {
					ok = isLinearMipmapLinearCompareResultValid(levels.level(level), levels.level(level+1), sampler, prec, coordX, coordY, coordZ, fLo, fHi, cmpReference, result)
				} else {
					ok = isNearestMipmapLinearCompareResultValid(levels.level(level), levels.level(level+1), sampler, prec, coordX, coordY, coordZ, fLo, fHi, cmpReference, result)
				}
				if ok {
					return true
				}
			}

		case sampler.MinFilter.IsNearestMipmap():
			minLevel := clampInt(ceilToInt(minLod+0.5)-1, 0, maxTexLevel)
			maxLevel := clampInt(floorToInt(maxLod+0.5), 0, maxTexLevel)

			for level := minLevel; level <= maxLevel; level++ {
				if isLevelCompareResultValid(levels.level(level), sampler, sampler.MinFilter.LevelFilter(), prec, coordX, coordY, coordZ, cmpReference, result) {
					return true
				}
			}

		default:
			if isLevelCompareResultValid(levels.level(0), sampler, sampler.MinFilter, prec, coordX, coordY, coordZ, cmpReference, result) {
				return true
			}
		}
	}

	return false
}

// IsTexCompare2DResultValid reports whether a depth-compare result is
// admissible for a 2D lookup at coord.
func IsTexCompare2DResultValid(view texture.Texture2DView, sampler texture.Sampler, prec TexComparePrecision, coord [2]float32, lodBounds interval.Interval, cmpReference, result float32) bool {
	checkCompareSampler(sampler)
	return levelsCompareResultValid(viewLevels2D{view}, sampler, prec, coord[0], coord[1], 0, lodBounds, cmpReference, result)
}

// IsTexCompare2DArrayResultValid reports whether a depth-compare result
// is admissible for a 2D array lookup; every reachable layer is tried.
func IsTexCompare2DArrayResultValid(view texture.Texture2DArrayView, sampler texture.Sampler, prec TexComparePrecision, coord [3]float32, lodBounds interval.Interval, cmpReference, result float32) bool {
	checkCompareSampler(sampler)

	minLayer, maxLayer := ComputeLayerRange(view.NumLayers(), prec.CoordBits[2], coord[2])
	for layer := minLayer; layer <= maxLayer; layer++ {
		if levelsCompareResultValid(viewLevelsArray{view}, sampler, prec, coord[0], coord[1], layer, lodBounds, cmpReference, result) {
			return true
		}
	}
	return false
}

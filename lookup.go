package texverify

import (
	"fmt"

	"github.com/gogpu/texverify/interval"
	"github.com/gogpu/texverify/texture"
)

// colorQuad holds the four texels of one bilinear footprint.
type colorQuad struct {
	p00, p10, p01, p11 texture.Vec4
}

func lookupQuad(access texture.ConstAccess, sampler texture.Sampler, x0, x1, y0, y1, z int) colorQuad {
	return colorQuad{
		p00: texture.Lookup(access, sampler, x0, y0, z),
		p10: texture.Lookup(access, sampler, x1, y0, z),
		p01: texture.Lookup(access, sampler, x0, y1, z),
		p11: texture.Lookup(access, sampler, x1, y1, z),
	}
}

func (q colorQuad) min() texture.Vec4 { return q.p00.Min(q.p10).Min(q.p01.Min(q.p11)) }
func (q colorQuad) max() texture.Vec4 { return q.p00.Max(q.p10).Max(q.p01.Max(q.p11)) }

// bilinear evaluates the quad at filter weights (a, b).
func (q colorQuad) bilinear(a, b float32) texture.Vec4 {
	return q.p00.Lerp(q.p10, a).Lerp(q.p01.Lerp(q.p11, a), b)
}

// isColorValid accepts result when every unmasked channel is within the
// threshold of ref.
func isColorValid(prec LookupPrecision, ref, result texture.Vec4) bool {
	for c := 0; c < 4; c++ {
		if !prec.ColorMask[c] {
			continue
		}
		if absf32(ref[c]-result[c]) > prec.ColorThreshold[c] {
			return false
		}
	}
	return true
}

// isInColorBounds is the coarse rejection test: result must be within
// the quad's channel extremes widened by the threshold.
func isInColorBounds(prec LookupPrecision, result texture.Vec4, quads ...colorQuad) bool {
	lo := quads[0].min()
	hi := quads[0].max()
	for _, q := range quads[1:] {
		lo = lo.Min(q.min())
		hi = hi.Max(q.max())
	}
	for c := 0; c < 4; c++ {
		if !prec.ColorMask[c] {
			continue
		}
		if result[c] < lo[c]-prec.ColorThreshold[c] || result[c] > hi[c]+prec.ColorThreshold[c] {
			return false
		}
	}
	return true
}

// Search steps bound how finely filter weight space is scanned. For
// fixed point formats a single step suffices for the whole format; for
// floating point the step depends on the values in the footprint. Every
// step is floored at 1/maxSearchSteps so a zero threshold cannot stall
// the weight loops.
const maxSearchSteps = 1 << 16

func computeBilinearSearchStepForUnorm(prec LookupPrecision) float32 {
	var minStep texture.Vec4
	for c := 0; c < 4; c++ {
		stepCount := 1.0 / prec.ColorThreshold[c]
		minStep[c] = 1.0 / (stepCount + 1.0)
	}
	return maxf(minStep.MinComp(), 1.0/float32(maxSearchSteps))
}

func computeBilinearSearchStepForSnorm(prec LookupPrecision) float32 {
	var minStep texture.Vec4
	for c := 0; c < 4; c++ {
		stepCount := 2.0 / prec.ColorThreshold[c]
		minStep[c] = 1.0 / (stepCount + 1.0)
	}
	return maxf(minStep.MinComp(), 1.0/float32(maxSearchSteps))
}

func computeBilinearSearchStepFromFloatQuad(prec LookupPrecision, quad colorQuad) float32 {
	d := quad.max().Sub(quad.min())
	var minStep texture.Vec4
	for c := 0; c < 4; c++ {
		stepCount := d[c] / prec.ColorThreshold[c]
		minStep[c] = 1.0 / (stepCount + 1.0)
	}
	return maxf(minStep.MinComp(), 1.0/float32(maxSearchSteps))
}

// searchStepForClass picks the fixed search step for a channel class,
// or 0 when the step must be derived per footprint.
func searchStepForClass(class texture.ChannelClass, prec LookupPrecision) float32 {
	switch class {
	case texture.ClassUnsignedFixedPoint:
		return computeBilinearSearchStepForUnorm(prec)
	case texture.ClassSignedFixedPoint:
		return computeBilinearSearchStepForSnorm(prec)
	default:
		return 0
	}
}

func quadSearchStep(class texture.ChannelClass, prec LookupPrecision, fixedStep float32, quad colorQuad) float32 {
	if class == texture.ClassFloatingPoint {
		return computeBilinearSearchStepFromFloatQuad(prec, quad)
	}
	return fixedStep
}

// isLinearRangeValid performs the line segment against box intersection
// test: result must lie within threshold of some point on the segment
// from lerp(c0,c1,fBounds lo) to lerp(c0,c1,fBounds hi), channel-wise.
func isLinearRangeValid(prec LookupPrecision, c0, c1 texture.Vec4, fLo, fHi float32, result texture.Vec4) bool {
	i0 := c0.Lerp(c1, fLo)
	i1 := c0.Lerp(c1, fHi)

	for c := 0; c < 4; c++ {
		if !prec.ColorMask[c] {
			continue
		}
		minVal := minf(i0[c], i1[c]) - prec.ColorThreshold[c]
		maxVal := maxf(i0[c], i1[c]) + prec.ColorThreshold[c]
		if result[c] < minVal || result[c] > maxVal {
			return false
		}
	}
	return true
}

// isBilinearRangeValid steps the x weight and solves the y weight
// exactly per step.
func isBilinearRangeValid(prec LookupPrecision, quad colorQuad, xLo, xHi, yLo, yHi, searchStep float32, result texture.Vec4) bool {
	if !isInColorBounds(prec, result, quad) {
		return false
	}

	for x := xLo; x < xHi+searchStep; x += searchStep {
		a := minf(x, xHi)
		c0 := quad.p00.Lerp(quad.p10, a)
		c1 := quad.p01.Lerp(quad.p11, a)

		if isLinearRangeValid(prec, c0, c1, yLo, yHi, result) {
			return true
		}
	}
	return false
}

// isTrilinearRangeValid steps the x and y weights and solves the z
// weight exactly. quad0 and quad1 are the two slices of a 2x2x2 cell.
func isTrilinearRangeValid(prec LookupPrecision, quad0, quad1 colorQuad, xLo, xHi, yLo, yHi, zLo, zHi, searchStep float32, result texture.Vec4) bool {
	if !isInColorBounds(prec, result, quad0, quad1) {
		return false
	}

	for x := xLo; x < xHi+searchStep; x += searchStep {
		a := minf(x, xHi)
		for y := yLo; y < yHi+searchStep; y += searchStep {
			b := minf(y, yHi)
			c0 := quad0.bilinear(a, b)
			c1 := quad1.bilinear(a, b)

			if isLinearRangeValid(prec, c0, c1, zLo, zHi, result) {
				return true
			}
		}
	}
	return false
}

// is2DTrilinearFilterResultValid steps the filter weights of a bilinear
// footprint on each of two mip levels and solves the level blend weight
// exactly.
func is2DTrilinearFilterResultValid(prec LookupPrecision, quad0, quad1 colorQuad,
	xLo0, xHi0, yLo0, yHi0, xLo1, xHi1, yLo1, yHi1, fLo, fHi, searchStep float32, result texture.Vec4) bool {

	if !isInColorBounds(prec, result, quad0, quad1) {
		return false
	}

	for x0 := xLo0; x0 < xHi0+searchStep; x0 += searchStep {
		a0 := minf(x0, xHi0)
		for y0 := yLo0; y0 < yHi0+searchStep; y0 += searchStep {
			b0 := minf(y0, yHi0)
			c0 := quad0.bilinear(a0, b0)

			for x1 := xLo1; x1 < xHi1+searchStep; x1 += searchStep {
				a1 := minf(x1, xHi1)
				c10 := quad1.p00.Lerp(quad1.p10, a1)
				c11 := quad1.p01.Lerp(quad1.p11, a1)

				// Remaining free weights are the y weight of the upper
				// level and the level blend; the value is bilinear in
				// them.
				blend := colorQuad{p00: c0, p10: c0, p01: c10, p11: c11}
				if isBilinearRangeValid(prec, blend, yLo1, yHi1, fLo, fHi, searchStep, result) {
					return true
				}
			}
		}
	}
	return false
}

// isNearestSampleResultValid2D accepts result when any texel reachable
// under the coordinate error bounds matches within threshold.
func isNearestSampleResultValid2D(level texture.ConstAccess, sampler texture.Sampler, prec LookupPrecision, coordX, coordY float32, coordZ int, result texture.Vec4) bool {
	w, h := level.Width(), level.Height()

	uMin, uMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin, vMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h, coordY, prec.CoordBits[1], prec.UVWBits[1])

	minI, maxI := floorToInt(uMin), floorToInt(uMax)
	minJ, maxJ := floorToInt(vMin), floorToInt(vMax)

	for j := minJ; j <= maxJ; j++ {
		for i := minI; i <= maxI; i++ {
			x := texture.Wrap(sampler.WrapS, i, w)
			y := texture.Wrap(sampler.WrapT, j, h)
			if isColorValid(prec, texture.Lookup(level, sampler, x, y, coordZ), result) {
				return true
			}
		}
	}
	return false
}

func isNearestSampleResultValid3D(level texture.ConstAccess, sampler texture.Sampler, prec LookupPrecision, coord [3]float32, result texture.Vec4) bool {
	w, h, d := level.Width(), level.Height(), level.Depth()

	uMin, uMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w, coord[0], prec.CoordBits[0], prec.UVWBits[0])
	vMin, vMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h, coord[1], prec.CoordBits[1], prec.UVWBits[1])
	wMin, wMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, d, coord[2], prec.CoordBits[2], prec.UVWBits[2])

	for k := floorToInt(wMin); k <= floorToInt(wMax); k++ {
		for j := floorToInt(vMin); j <= floorToInt(vMax); j++ {
			for i := floorToInt(uMin); i <= floorToInt(uMax); i++ {
				x := texture.Wrap(sampler.WrapS, i, w)
				y := texture.Wrap(sampler.WrapT, j, h)
				z := texture.Wrap(sampler.WrapR, k, d)
				if isColorValid(prec, texture.Lookup(level, sampler, x, y, z), result) {
					return true
				}
			}
		}
	}
	return false
}

func isLinearSampleResultValid2D(level texture.ConstAccess, sampler texture.Sampler, prec LookupPrecision, coordX, coordY float32, coordZ int, result texture.Vec4) bool {
	w, h := level.Width(), level.Height()

	uMin, uMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin, vMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h, coordY, prec.CoordBits[1], prec.UVWBits[1])

	// Footprint cell indices before wrapping.
	minI, maxI := floorToInt(uMin-0.5), floorToInt(uMax-0.5)
	minJ, maxJ := floorToInt(vMin-0.5), floorToInt(vMax-0.5)

	class := level.Format().Type.Class()
	fixedStep := searchStepForClass(class, prec)

	for j := minJ; j <= maxJ; j++ {
		for i := minI; i <= maxI; i++ {
			x0 := texture.Wrap(sampler.WrapS, i, w)
			x1 := texture.Wrap(sampler.WrapS, i+1, w)
			y0 := texture.Wrap(sampler.WrapT, j, h)
			y1 := texture.Wrap(sampler.WrapT, j+1, h)
			quad := lookupQuad(level, sampler, x0, x1, y0, y1, coordZ)

			step := quadSearchStep(class, prec, fixedStep, quad)

			minA := clampF32((uMin-0.5)-float32(i), 0, 1)
			maxA := clampF32((uMax-0.5)-float32(i), 0, 1)
			minB := clampF32((vMin-0.5)-float32(j), 0, 1)
			maxB := clampF32((vMax-0.5)-float32(j), 0, 1)

			if isBilinearRangeValid(prec, quad, minA, maxA, minB, maxB, step, result) {
				return true
			}
		}
	}
	return false
}

func isLinearSampleResultValid3D(level texture.ConstAccess, sampler texture.Sampler, prec LookupPrecision, coord [3]float32, result texture.Vec4) bool {
	w, h, d := level.Width(), level.Height(), level.Depth()

	uMin, uMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w, coord[0], prec.CoordBits[0], prec.UVWBits[0])
	vMin, vMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h, coord[1], prec.CoordBits[1], prec.UVWBits[1])
	wMin, wMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, d, coord[2], prec.CoordBits[2], prec.UVWBits[2])

	class := level.Format().Type.Class()
	fixedStep := searchStepForClass(class, prec)

	for k := floorToInt(wMin - 0.5); k <= floorToInt(wMax-0.5); k++ {
		for j := floorToInt(vMin - 0.5); j <= floorToInt(vMax-0.5); j++ {
			for i := floorToInt(uMin - 0.5); i <= floorToInt(uMax-0.5); i++ {
				x0 := texture.Wrap(sampler.WrapS, i, w)
				x1 := texture.Wrap(sampler.WrapS, i+1, w)
				y0 := texture.Wrap(sampler.WrapT, j, h)
				y1 := texture.Wrap(sampler.WrapT, j+1, h)
				z0 := texture.Wrap(sampler.WrapR, k, d)
				z1 := texture.Wrap(sampler.WrapR, k+1, d)

				quad0 := lookupQuad(level, sampler, x0, x1, y0, y1, z0)
				quad1 := lookupQuad(level, sampler, x0, x1, y0, y1, z1)

				step := minf(quadSearchStep(class, prec, fixedStep, quad0), quadSearchStep(class, prec, fixedStep, quad1))

				minA := clampF32((uMin-0.5)-float32(i), 0, 1)
				maxA := clampF32((uMax-0.5)-float32(i), 0, 1)
				minB := clampF32((vMin-0.5)-float32(j), 0, 1)
				maxB := clampF32((vMax-0.5)-float32(j), 0, 1)
				minC := clampF32((wMin-0.5)-float32(k), 0, 1)
				maxC := clampF32((wMax-0.5)-float32(k), 0, 1)

				if isTrilinearRangeValid(prec, quad0, quad1, minA, maxA, minB, maxB, minC, maxC, step, result) {
					return true
				}
			}
		}
	}
	return false
}

// isNearestMipmapLinearSampleResultValid2D pairs nearest texels of two
// adjacent levels and solves the blend weight exactly. Level candidates
// are searched independently, which admits some pairings a conforming
// implementation would never produce.
func isNearestMipmapLinearSampleResultValid2D(level0, level1 texture.ConstAccess, sampler texture.Sampler, prec LookupPrecision, coordX, coordY float32, coordZ int, fLo, fHi float32, result texture.Vec4) bool {
	w0, h0 := level0.Width(), level0.Height()
	w1, h1 := level1.Width(), level1.Height()

	uMin0, uMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w0, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin0, vMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h0, coordY, prec.CoordBits[1], prec.UVWBits[1])
	uMin1, uMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w1, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin1, vMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h1, coordY, prec.CoordBits[1], prec.UVWBits[1])

	for j0 := floorToInt(vMin0); j0 <= floorToInt(vMax0); j0++ {
		for i0 := floorToInt(uMin0); i0 <= floorToInt(uMax0); i0++ {
			c0 := texture.Lookup(level0, sampler, texture.Wrap(sampler.WrapS, i0, w0), texture.Wrap(sampler.WrapT, j0, h0), coordZ)

			for j1 := floorToInt(vMin1); j1 <= floorToInt(vMax1); j1++ {
				for i1 := floorToInt(uMin1); i1 <= floorToInt(uMax1); i1++ {
					c1 := texture.Lookup(level1, sampler, texture.Wrap(sampler.WrapS, i1, w1), texture.Wrap(sampler.WrapT, j1, h1), coordZ)

					if isLinearRangeValid(prec, c0, c1, fLo, fHi, result) {
						return true
					}
				}
			}
		}
	}
	return false
}

// isLinearMipmapLinearSampleResultValid2D pairs bilinear footprints of
// two adjacent levels. Candidate footprints are searched independently
// per level.
func isLinearMipmapLinearSampleResultValid2D(level0, level1 texture.ConstAccess, sampler texture.Sampler, prec LookupPrecision, coordX, coordY float32, coordZ int, fLo, fHi float32, result texture.Vec4) bool {
	w0, h0 := level0.Width(), level0.Height()
	w1, h1 := level1.Width(), level1.Height()

	uMin0, uMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w0, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin0, vMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h0, coordY, prec.CoordBits[1], prec.UVWBits[1])
	uMin1, uMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, w1, coordX, prec.CoordBits[0], prec.UVWBits[0])
	vMin1, vMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, h1, coordY, prec.CoordBits[1], prec.UVWBits[1])

	class := level0.Format().Type.Class()
	fixedStep := searchStepForClass(class, prec)

	for j0 := floorToInt(vMin0 - 0.5); j0 <= floorToInt(vMax0-0.5); j0++ {
		for i0 := floorToInt(uMin0 - 0.5); i0 <= floorToInt(uMax0-0.5); i0++ {
			quad0 := lookupQuad(level0, sampler,
				texture.Wrap(sampler.WrapS, i0, w0), texture.Wrap(sampler.WrapS, i0+1, w0),
				texture.Wrap(sampler.WrapT, j0, h0), texture.Wrap(sampler.WrapT, j0+1, h0), coordZ)
			step0 := quadSearchStep(class, prec, fixedStep, quad0)

			minA0 := clampF32((uMin0-0.5)-float32(i0), 0, 1)
			maxA0 := clampF32((uMax0-0.5)-float32(i0), 0, 1)
			minB0 := clampF32((vMin0-0.5)-float32(j0), 0, 1)
			maxB0 := clampF32((vMax0-0.5)-float32(j0), 0, 1)

			for j1 := floorToInt(vMin1 - 0.5); j1 <= floorToInt(vMax1-0.5); j1++ {
				for i1 := floorToInt(uMin1 - 0.5); i1 <= floorToInt(uMax1-0.5); i1++ {
					quad1 := lookupQuad(level1, sampler,
						texture.Wrap(sampler.WrapS, i1, w1), texture.Wrap(sampler.WrapS, i1+1, w1),
						texture.Wrap(sampler.WrapT, j1, h1), texture.Wrap(sampler.WrapT, j1+1, h1), coordZ)
					step1 := quadSearchStep(class, prec, fixedStep, quad1)

					minA1 := clampF32((uMin1-0.5)-float32(i1), 0, 1)
					maxA1 := clampF32((uMax1-0.5)-float32(i1), 0, 1)
					minB1 := clampF32((vMin1-0.5)-float32(j1), 0, 1)
					maxB1 := clampF32((vMax1-0.5)-float32(j1), 0, 1)

					if is2DTrilinearFilterResultValid(prec, quad0, quad1,
						minA0, maxA0, minB0, maxB0,
						minA1, maxA1, minB1, maxB1,
						fLo, fHi, minf(step0, step1), result) {
						return true
					}
				}
			}
		}
	}
	return false
}

// isNearestMipmapLinearSampleResultValid3D is the 3D form of the
// nearest-within-level, linear-between-levels case.
func isNearestMipmapLinearSampleResultValid3D(level0, level1 texture.ConstAccess, sampler texture.Sampler, prec LookupPrecision, coord [3]float32, fLo, fHi float32, result texture.Vec4) bool {
	type bounds struct{ uMin, uMax, vMin, vMax, wMin, wMax float32 }

	boundsFor := func(level texture.ConstAccess) bounds {
		var b bounds
		b.uMin, b.uMax = ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, level.Width(), coord[0], prec.CoordBits[0], prec.UVWBits[0])
		b.vMin, b.vMax = ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, level.Height(), coord[1], prec.CoordBits[1], prec.UVWBits[1])
		b.wMin, b.wMax = ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, level.Depth(), coord[2], prec.CoordBits[2], prec.UVWBits[2])
		return b
	}

	b0 := boundsFor(level0)
	b1 := boundsFor(level1)

	for k0 := floorToInt(b0.wMin); k0 <= floorToInt(b0.wMax); k0++ {
		for j0 := floorToInt(b0.vMin); j0 <= floorToInt(b0.vMax); j0++ {
			for i0 := floorToInt(b0.uMin); i0 <= floorToInt(b0.uMax); i0++ {
				c0 := texture.Lookup(level0, sampler,
					texture.Wrap(sampler.WrapS, i0, level0.Width()),
					texture.Wrap(sampler.WrapT, j0, level0.Height()),
					texture.Wrap(sampler.WrapR, k0, level0.Depth()))

				for k1 := floorToInt(b1.wMin); k1 <= floorToInt(b1.wMax); k1++ {
					for j1 := floorToInt(b1.vMin); j1 <= floorToInt(b1.vMax); j1++ {
						for i1 := floorToInt(b1.uMin); i1 <= floorToInt(b1.uMax); i1++ {
							c1 := texture.Lookup(level1, sampler,
								texture.Wrap(sampler.WrapS, i1, level1.Width()),
								texture.Wrap(sampler.WrapT, j1, level1.Height()),
								texture.Wrap(sampler.WrapR, k1, level1.Depth()))

							if isLinearRangeValid(prec, c0, c1, fLo, fHi, result) {
								return true
							}
						}
					}
				}
			}
		}
	}
	return false
}

// isLinearMipmapLinearSampleResultValid3D pairs trilinear cells of two
// adjacent 3D levels. For a candidate weight assignment on the lower
// level the remaining z weight of the upper level and the level blend
// form a bilinear system solved by isBilinearRangeValid.
func isLinearMipmapLinearSampleResultValid3D(level0, level1 texture.ConstAccess, sampler texture.Sampler, prec LookupPrecision, coord [3]float32, fLo, fHi float32, result texture.Vec4) bool {
	class := level0.Format().Type.Class()
	fixedStep := searchStepForClass(class, prec)

	type cellBounds struct {
		uMin, uMax, vMin, vMax, wMin, wMax float32
	}
	boundsFor := func(level texture.ConstAccess) cellBounds {
		var b cellBounds
		b.uMin, b.uMax = ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, level.Width(), coord[0], prec.CoordBits[0], prec.UVWBits[0])
		b.vMin, b.vMax = ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, level.Height(), coord[1], prec.CoordBits[1], prec.UVWBits[1])
		b.wMin, b.wMax = ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, level.Depth(), coord[2], prec.CoordBits[2], prec.UVWBits[2])
		return b
	}

	b0 := boundsFor(level0)
	b1 := boundsFor(level1)

	for k0 := floorToInt(b0.wMin - 0.5); k0 <= floorToInt(b0.wMax-0.5); k0++ {
		for j0 := floorToInt(b0.vMin - 0.5); j0 <= floorToInt(b0.vMax-0.5); j0++ {
			for i0 := floorToInt(b0.uMin - 0.5); i0 <= floorToInt(b0.uMax-0.5); i0++ {
				x00 := texture.Wrap(sampler.WrapS, i0, level0.Width())
				x01 := texture.Wrap(sampler.WrapS, i0+1, level0.Width())
				y00 := texture.Wrap(sampler.WrapT, j0, level0.Height())
				y01 := texture.Wrap(sampler.WrapT, j0+1, level0.Height())
				z00 := texture.Wrap(sampler.WrapR, k0, level0.Depth())
				z01 := texture.Wrap(sampler.WrapR, k0+1, level0.Depth())

				cell0a := lookupQuad(level0, sampler, x00, x01, y00, y01, z00)
				cell0b := lookupQuad(level0, sampler, x00, x01, y00, y01, z01)
				step0 := minf(quadSearchStep(class, prec, fixedStep, cell0a), quadSearchStep(class, prec, fixedStep, cell0b))

				minA0 := clampF32((b0.uMin-0.5)-float32(i0), 0, 1)
				maxA0 := clampF32((b0.uMax-0.5)-float32(i0), 0, 1)
				minB0 := clampF32((b0.vMin-0.5)-float32(j0), 0, 1)
				maxB0 := clampF32((b0.vMax-0.5)-float32(j0), 0, 1)
				minC0 := clampF32((b0.wMin-0.5)-float32(k0), 0, 1)
				maxC0 := clampF32((b0.wMax-0.5)-float32(k0), 0, 1)

				for k1 := floorToInt(b1.wMin - 0.5); k1 <= floorToInt(b1.wMax-0.5); k1++ {
					for j1 := floorToInt(b1.vMin - 0.5); j1 <= floorToInt(b1.vMax-0.5); j1++ {
						for i1 := floorToInt(b1.uMin - 0.5); i1 <= floorToInt(b1.uMax-0.5); i1++ {
							x10 := texture.Wrap(sampler.WrapS, i1, level1.Width())
							x11 := texture.Wrap(sampler.WrapS, i1+1, level1.Width())
							y10 := texture.Wrap(sampler.WrapT, j1, level1.Height())
							y11 := texture.Wrap(sampler.WrapT, j1+1, level1.Height())
							z10 := texture.Wrap(sampler.WrapR, k1, level1.Depth())
							z11 := texture.Wrap(sampler.WrapR, k1+1, level1.Depth())

							cell1a := lookupQuad(level1, sampler, x10, x11, y10, y11, z10)
							cell1b := lookupQuad(level1, sampler, x10, x11, y10, y11, z11)
							step := minf(step0, minf(quadSearchStep(class, prec, fixedStep, cell1a), quadSearchStep(class, prec, fixedStep, cell1b)))

							minA1 := clampF32((b1.uMin-0.5)-float32(i1), 0, 1)
							maxA1 := clampF32((b1.uMax-0.5)-float32(i1), 0, 1)
							minB1 := clampF32((b1.vMin-0.5)-float32(j1), 0, 1)
							maxB1 := clampF32((b1.vMax-0.5)-float32(j1), 0, 1)
							minC1 := clampF32((b1.wMin-0.5)-float32(k1), 0, 1)
							maxC1 := clampF32((b1.wMax-0.5)-float32(k1), 0, 1)

							if is3DTrilinearFilterResultValid(prec, cell0a, cell0b, cell1a, cell1b,
								minA0, maxA0, minB0, maxB0, minC0, maxC0,
								minA1, maxA1, minB1, maxB1, minC1, maxC1,
								fLo, fHi, step, result) {
								return true
							}
						}
					}
				}
			}
		}
	}
	return false
}

func is3DTrilinearFilterResultValid(prec LookupPrecision, cell0a, cell0b, cell1a, cell1b colorQuad,
	xLo0, xHi0, yLo0, yHi0, zLo0, zHi0,
	xLo1, xHi1, yLo1, yHi1, zLo1, zHi1,
	fLo, fHi, searchStep float32, result texture.Vec4) bool {

	if !isInColorBounds(prec, result, cell0a, cell0b, cell1a, cell1b) {
		return false
	}

	for x0 := xLo0; x0 < xHi0+searchStep; x0 += searchStep {
		a0 := minf(x0, xHi0)
		for y0 := yLo0; y0 < yHi0+searchStep; y0 += searchStep {
			b0 := minf(y0, yHi0)
			for z0 := zLo0; z0 < zHi0+searchStep; z0 += searchStep {
				g0 := minf(z0, zHi0)
				c0 := cell0a.bilinear(a0, b0).Lerp(cell0b.bilinear(a0, b0), g0)

				for x1 := xLo1; x1 < xHi1+searchStep; x1 += searchStep {
					a1 := minf(x1, xHi1)
					for y1 := yLo1; y1 < yHi1+searchStep; y1 += searchStep {
						b1 := minf(y1, yHi1)
						e0 := cell1a.bilinear(a1, b1)
						e1 := cell1b.bilinear(a1, b1)

						// Value is bilinear in the upper level's z
						// weight and the level blend weight.
						blend := colorQuad{p00: c0, p10: c0, p01: e0, p11: e1}
						if isBilinearRangeValid(prec, blend, zLo1, zHi1, fLo, fHi, searchStep, result) {
							return true
						}
					}
				}
			}
		}
	}
	return false
}

// isLevelSampleResultValid2D dispatches one level's filter.
func isLevelSampleResultValid2D(level texture.ConstAccess, sampler texture.Sampler, filter texture.FilterMode, prec LookupPrecision, coordX, coordY float32, coordZ int, result texture.Vec4) bool {
	if filter == texture.Linear {
		return isLinearSampleResultValid2D(level, sampler, prec, coordX, coordY, coordZ, result)
	}
	return isNearestSampleResultValid2D(level, sampler, prec, coordX, coordY, coordZ, result)
}

func isLevelSampleResultValid3D(level texture.ConstAccess, sampler texture.Sampler, filter texture.FilterMode, prec LookupPrecision, coord [3]float32, result texture.Vec4) bool {
	if filter == texture.Linear {
		return isLinearSampleResultValid3D(level, sampler, prec, coord, result)
	}
	return isNearestSampleResultValid3D(level, sampler, prec, coord, result)
}

func checkLookupSampler(sampler texture.Sampler) {
	if sampler.Compare != texture.CompareNone {
		panic(fmt.Sprintf("texverify: lookup verification with compare mode %v", sampler.Compare))
	}
}

// IsLookup2DResultValid reports whether result is admissible for a 2D
// lookup at coord given the level of detail bounds. Both accepted
// nearest-mip level rules, ceil(lod+0.5)-1 and floor(lod+0.5), are
// admitted.
func IsLookup2DResultValid(view texture.Texture2DView, sampler texture.Sampler, prec LookupPrecision, coord [2]float32, lodBounds interval.Interval, result texture.Vec4) bool {
	checkLookupSampler(sampler)
	return isLookupLevels2DResultValid(viewLevels2D{view}, sampler, prec, coord[0], coord[1], 0, lodBounds, result)
}

// IsLookup2DArrayResultValid reports whether result is admissible for a
// 2D array lookup; every layer reachable within the layer coordinate
// error is tried.
func IsLookup2DArrayResultValid(view texture.Texture2DArrayView, sampler texture.Sampler, prec LookupPrecision, coord [3]float32, lodBounds interval.Interval, result texture.Vec4) bool {
	checkLookupSampler(sampler)

	minLayer, maxLayer := ComputeLayerRange(view.NumLayers(), prec.CoordBits[2], coord[2])
	for layer := minLayer; layer <= maxLayer; layer++ {
		if isLookupLevels2DResultValid(viewLevelsArray{view}, sampler, prec, coord[0], coord[1], layer, lodBounds, result) {
			return true
		}
	}
	return false
}

// levels2D abstracts the per-level access of 2D and 2D array views so
// the mip selection logic is shared.
type levels2D interface {
	numLevels() int
	level(i int) texture.ConstAccess
}

type viewLevels2D struct{ v texture.Texture2DView }

func (l viewLevels2D) numLevels() int                  { return l.v.NumLevels() }
func (l viewLevels2D) level(i int) texture.ConstAccess { return l.v.Level(i) }

type viewLevelsArray struct{ v texture.Texture2DArrayView }

func (l viewLevelsArray) numLevels() int                  { return l.v.NumLevels() }
func (l viewLevelsArray) level(i int) texture.ConstAccess { return l.v.Level(i) }

func isLookupLevels2DResultValid(levels levels2D, sampler texture.Sampler, prec LookupPrecision, coordX, coordY float32, coordZ int, lodBounds interval.Interval, result texture.Vec4) bool {
	minLod := float32(lodBounds.Lo())
	maxLod := float32(lodBounds.Hi())
	canBeMagnified := minLod <= sampler.LodThreshold
	canBeMinified := maxLod > sampler.LodThreshold

	if canBeMagnified {
		if isLevelSampleResultValid2D(levels.level(0), sampler, sampler.MagFilter, prec, coordX, coordY, coordZ, result) {
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
					ok = isLinearMipmapLinearSampleResultValid2D(levels.level(level), levels.level(level+1), sampler, prec, coordX, coordY, coordZ, fLo, fHi, result)
				} else {
					ok = isNearestMipmapLinearSampleResultValid2D(levels.level(level), levels.level(level+1), sampler, prec, coordX, coordY, coordZ, fLo, fHi, result)
				}
				if ok {
					return true
				}
			}

		case sampler.MinFilter.IsNearestMipmap():
			minLevel := clampInt(ceilToInt(minLod+0.5)-1, 0, maxTexLevel)
			maxLevel := clampInt(floorToInt(maxLod+0.5), 0, maxTexLevel)

			for level := minLevel; level <= maxLevel; level++ {
				if isLevelSampleResultValid2D(levels.level(level), sampler, sampler.MinFilter.LevelFilter(), prec, coordX, coordY, coordZ, result) {
					return true
				}
			}

		default:
			if isLevelSampleResultValid2D(levels.level(0), sampler, sampler.MinFilter, prec, coordX, coordY, coordZ, result) {
				return true
			}
		}
	}

	return false
}

// IsLookup3DResultValid reports whether result is admissible for a 3D
// lookup at coord given the level of detail bounds.
func IsLookup3DResultValid(view texture.Texture3DView, sampler texture.Sampler, prec LookupPrecision, coord [3]float32, lodBounds interval.Interval, result texture.Vec4) bool {
	checkLookupSampler(sampler)

	minLod := float32(lodBounds.Lo())
	maxLod := float32(lodBounds.Hi())
	canBeMagnified := minLod <= sampler.LodThreshold
	canBeMinified := maxLod > sampler.LodThreshold

	if canBeMagnified {
		if isLevelSampleResultValid3D(view.Level(0), sampler, sampler.MagFilter, prec, coord, result) {
			return true
		}
	}

	if canBeMinified {
		maxTexLevel := view.NumLevels() - 1

		switch {
		case sampler.MinFilter.IsLinearMipmap() && maxTexLevel > 0:
			minLevel := clampInt(floorToInt(minLod), 0, maxTexLevel-1)
			maxLevel := clampInt(floorToInt(maxLod), 0, maxTexLevel-1)

			for level := minLevel; level <= maxLevel; level++ {
				fLo := clampF32(minLod-float32(level), 0, 1)
				fHi := clampF32(maxLod-float32(level), 0, 1)

				var ok bool
				if sampler.MinFilter.LevelFilter() == texture.Linear {
					ok = isLinearMipmapLinearSampleResultValid3D(view.Level(level), view.Level(level+1), sampler, prec, coord, fLo, fHi, result)
				} else {
					ok = isNearestMipmapLinearSampleResultValid3D(view.Level(level), view.Level(level+1), sampler, prec, coord, fLo, fHi, result)
				}
				if ok {
					return true
				}
			}

		case sampler.MinFilter.IsNearestMipmap():
			minLevel := clampInt(ceilToInt(minLod+0.5)-1, 0, maxTexLevel)
			maxLevel := clampInt(floorToInt(maxLod+0.5), 0, maxTexLevel)

			for level := minLevel; level <= maxLevel; level++ {
				if isLevelSampleResultValid3D(view.Level(level), sampler, sampler.MinFilter.LevelFilter(), prec, coord, result) {
					return true
				}
			}

		default:
			if isLevelSampleResultValid3D(view.Level(0), sampler, sampler.MinFilter, prec, coord, result) {
				return true
			}
		}
	}

	return false
}

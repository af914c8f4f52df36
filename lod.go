package texverify

import (
	"math"

	"github.com/gogpu/texverify/interval"
	"github.com/gogpu/texverify/texture"
)

// ComputeFixedPointError returns the worst-case absolute error of a
// fixed point value with the given fractional bits.
func ComputeFixedPointError(numBits int) float32 {
	return ComputeFloatingPointError(1.0, numBits)
}

// ComputeFloatingPointError returns the worst-case absolute error of a
// single precision value whose mantissa is accurate to numAccurateBits.
// The remaining low mantissa bits at the value's exponent are treated
// as garbage.
func ComputeFloatingPointError(value float32, numAccurateBits int) float32 {
	if numAccurateBits >= 23 {
		return 0
	}
	numGarbageBits := uint(23 - numAccurateBits)
	mask := (uint64(1) << numGarbageBits) - 1

	// Exponent of the single precision representation; zero and
	// subnormal values sit at the minimum exponent.
	exp := -126
	if v := math.Abs(float64(value)); v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
		if _, e := math.Frexp(v); e-1 > -126 {
			exp = e - 1
		}
	}

	return float32(math.Ldexp(float64(mask), exp-23))
}

// ComputeNonNormalizedCoordBounds bounds the unnormalized coordinate
// reachable from coord given coordinate and fixed point precision. For
// normalized coordinates the floating point error applies before
// scaling by dim; the fixed point error expands the scaled range.
func ComputeNonNormalizedCoordBounds(normalizedCoords bool, dim int, coord float32, coordBits, uvBits int) (minC, maxC float32) {
	coordErr := ComputeFloatingPointError(coord, coordBits)

	if normalizedCoords {
		minC = (coord - coordErr) * float32(dim)
		maxC = (coord + coordErr) * float32(dim)
	} else {
		minC = coord - coordErr
		maxC = coord + coordErr
	}

	pixelErr := ComputeFixedPointError(uvBits)
	return minC - pixelErr, maxC + pixelErr
}

// PossibleCubeFaces returns the cube faces a direction could select
// given per-axis coordinate precision. A nil result means no face can
// be ruled out and the caller must consider all six.
func PossibleCubeFaces(coord [3]float32, bits CoordBits) []texture.CubeFace {
	x, y, z := coord[0], coord[1], coord[2]
	ax := float32(math.Abs(float64(x)))
	ay := float32(math.Abs(float64(y)))
	az := float32(math.Abs(float64(z)))
	ex := ComputeFloatingPointError(x, bits[0])
	ey := ComputeFloatingPointError(y, bits[1])
	ez := ComputeFloatingPointError(z, bits[2])

	sel := func(pos bool, p, n texture.CubeFace) texture.CubeFace {
		if pos {
			return p
		}
		return n
	}

	switch {
	case ay+ey < ax-ex && az+ez < ax-ex:
		return []texture.CubeFace{sel(x >= 0, texture.CubeFacePosX, texture.CubeFaceNegX)}
	case ax+ex < ay-ey && az+ez < ay-ey:
		return []texture.CubeFace{sel(y >= 0, texture.CubeFacePosY, texture.CubeFaceNegY)}
	case ax+ex < az-ez && ay+ey < az-ez:
		return []texture.CubeFace{sel(z >= 0, texture.CubeFacePosZ, texture.CubeFaceNegZ)}
	}

	// Dominant axis is ambiguous within error bounds. Any axis whose
	// magnitude clears its own error may end up selected.
	var faces []texture.CubeFace
	if ax > ex {
		faces = append(faces, texture.CubeFaceNegX, texture.CubeFacePosX)
	}
	if ay > ey {
		faces = append(faces, texture.CubeFaceNegY, texture.CubeFacePosY)
	}
	if az > ez {
		faces = append(faces, texture.CubeFaceNegZ, texture.CubeFacePosZ)
	}
	return faces
}

// ComputeLayerRange bounds the array layers reachable from a layer
// coordinate with the given precision.
func ComputeLayerRange(numLayers, numCoordBits int, layerCoord float32) (minLayer, maxLayer int) {
	err := ComputeFloatingPointError(layerCoord, numCoordBits)
	minLayer = clampInt(floorToInt(layerCoord-err+0.5), 0, numLayers-1)
	maxLayer = clampInt(floorToInt(layerCoord+err+0.5), 0, numLayers-1)
	return minLayer, maxLayer
}

// ComputeLodBoundsFromDerivates bounds the level of detail computed
// from screen-space derivatives of a 3D coordinate. The lower bound
// follows the max-axis rule and the upper bound the sum-of-axes rule,
// both widened by derivative and LOD precision.
func ComputeLodBoundsFromDerivates(dudx, dvdx, dwdx, dudy, dvdy, dwdy float32, prec LodPrecision) interval.Interval {
	mu := maxf(absf32(dudx), absf32(dudy))
	mv := maxf(absf32(dvdx), absf32(dvdy))
	mw := maxf(absf32(dwdx), absf32(dwdy))

	minDBound := maxf(maxf(mu, mv), mw)
	maxDBound := mu + mv + mw

	minDErr := ComputeFloatingPointError(minDBound, prec.DerivateBits)
	maxDErr := ComputeFloatingPointError(maxDBound, prec.DerivateBits)

	minLod := log2f(minDBound - minDErr)
	maxLod := log2f(maxDBound + maxDErr)
	lodErr := ComputeFixedPointError(prec.LodBits)

	return interval.NewInterval(float64(minLod-lodErr), float64(maxLod+lodErr))
}

// ComputeLodBoundsFromDerivates2D is the two-axis form used by 2D and
// array lookups.
func ComputeLodBoundsFromDerivates2D(dudx, dvdx, dudy, dvdy float32, prec LodPrecision) interval.Interval {
	return ComputeLodBoundsFromDerivates(dudx, dvdx, 0, dudy, dvdy, 0, prec)
}

// ComputeLodBoundsFromDerivates1D is the single-axis form.
func ComputeLodBoundsFromDerivates1D(dudx, dudy float32, prec LodPrecision) interval.Interval {
	return ComputeLodBoundsFromDerivates(dudx, 0, 0, dudy, 0, 0, prec)
}

// ComputeCubeLodBoundsFromDerivates bounds the level of detail of a
// cube lookup by projecting the direction derivatives onto the selected
// face.
func ComputeCubeLodBoundsFromDerivates(coord, coordDx, coordDy [3]float32, faceSize int, prec LodPrecision) interval.Interval {
	face := texture.SelectCubeFace(coord[0], coord[1], coord[2])

	// Derivative signs do not matter for LOD.
	var maNdx, sNdx, tNdx int
	switch face {
	case texture.CubeFaceNegX, texture.CubeFacePosX:
		maNdx, sNdx, tNdx = 0, 2, 1
	case texture.CubeFaceNegY, texture.CubeFacePosY:
		maNdx, sNdx, tNdx = 1, 0, 2
	case texture.CubeFaceNegZ, texture.CubeFacePosZ:
		maNdx, sNdx, tNdx = 2, 0, 1
	}

	sc, tc := coord[sNdx], coord[tNdx]
	ma := absf32(coord[maNdx])
	scdx, tcdx := coordDx[sNdx], coordDx[tNdx]
	madx := absf32(coordDx[maNdx])
	scdy, tcdy := coordDy[sNdx], coordDy[tNdx]
	mady := absf32(coordDy[maNdx])

	dudx := float32(faceSize) * 0.5 * (scdx*ma - sc*madx) / (ma * ma)
	dvdx := float32(faceSize) * 0.5 * (tcdx*ma - tc*madx) / (ma * ma)
	dudy := float32(faceSize) * 0.5 * (scdy*ma - sc*mady) / (ma * ma)
	dvdy := float32(faceSize) * 0.5 * (tcdy*ma - tc*mady) / (ma * ma)

	return ComputeLodBoundsFromDerivates2D(dudx, dvdx, dudy, dvdy, prec)
}

// ClampLodBounds clamps both LOD bounds to a sampler's LOD range
// widened by the fixed point LOD error.
func ClampLodBounds(lodBounds interval.Interval, minLod, maxLod float32, prec LodPrecision) interval.Interval {
	lodErr := ComputeFixedPointError(prec.LodBits)
	a := float64(minLod - lodErr)
	b := float64(maxLod + lodErr)
	return interval.NewInterval(
		clampF64(lodBounds.Lo(), a, b),
		clampF64(lodBounds.Hi(), a, b),
	)
}

func clampInt(v, lo, hi int) int { return min(max(v, lo), hi) }

func clampF64(v, lo, hi float64) float64 { return math.Min(math.Max(v, lo), hi) }

func clampF32(v, lo, hi float32) float32 {
	return minf(maxf(v, lo), hi)
}

func floorToInt(v float32) int { return int(math.Floor(float64(v))) }

func ceilToInt(v float32) int { return int(math.Ceil(float64(v))) }

func absf32(v float32) float32 { return float32(math.Abs(float64(v))) }

func log2f(v float32) float32 { return float32(math.Log2(float64(v))) }

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

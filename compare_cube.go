package texverify

import (
	"github.com/gogpu/texverify/interval"
	"github.com/gogpu/texverify/texture"
)

// isSeamlessLinearCompareResultValid checks PCF footprints that may
// cross cube face edges. A footprint past a corner has no defined
// source texel and any result is admissible for it.
func isSeamlessLinearCompareResultValid(faces [texture.NumCubeFaces]texture.ConstAccess, sampler texture.Sampler, prec TexComparePrecision, face texture.CubeFace, s, t, cmpReference, result float32) bool {
	size := faces[face].Width()
	fixed := texture.IsFixedPointDepth(faces[face].Format())

	uMin, uMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size, s, prec.CoordBits[0], prec.UVWBits[0])
	vMin, vMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size, t, prec.CoordBits[1], prec.UVWBits[1])

	for j := floorToInt(vMin - 0.5); j <= floorToInt(vMax-0.5); j++ {
		for i := floorToInt(uMin - 0.5); i <= floorToInt(uMax-0.5); i++ {
			depths, ok := remapDepthQuad(faces, sampler, face, size, i, j)
			if !ok {
				return true
			}

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

func remapDepthQuad(faces [texture.NumCubeFaces]texture.ConstAccess, sampler texture.Sampler, face texture.CubeFace, size, i, j int) (depthQuad, bool) {
	c00, ok00 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i, T: j}, size)
	c10, ok10 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i + 1, T: j}, size)
	c01, ok01 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i, T: j + 1}, size)
	c11, ok11 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i + 1, T: j + 1}, size)
	if !ok00 || !ok10 || !ok01 || !ok11 {
		return depthQuad{}, false
	}
	return depthQuad{
		texture.LookupDepth(faces[c00.Face], sampler, c00.S, c00.T, 0),
		texture.LookupDepth(faces[c10.Face], sampler, c10.S, c10.T, 0),
		texture.LookupDepth(faces[c01.Face], sampler, c01.S, c01.T, 0),
		texture.LookupDepth(faces[c11.Face], sampler, c11.S, c11.T, 0),
	}, true
}

// isSeamlessLinearMipmapLinearCompareResultValid pairs seamless PCF
// footprints of two adjacent cube levels.
func isSeamlessLinearMipmapLinearCompareResultValid(faces0, faces1 [texture.NumCubeFaces]texture.ConstAccess, sampler texture.Sampler, prec TexComparePrecision, face texture.CubeFace, s, t, fLo, fHi, cmpReference, result float32) bool {
	size0 := faces0[face].Width()
	size1 := faces1[face].Width()
	fixed := texture.IsFixedPointDepth(faces0[face].Format())

	uMin0, uMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size0, s, prec.CoordBits[0], prec.UVWBits[0])
	vMin0, vMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size0, t, prec.CoordBits[1], prec.UVWBits[1])
	uMin1, uMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size1, s, prec.CoordBits[0], prec.UVWBits[0])
	vMin1, vMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size1, t, prec.CoordBits[1], prec.UVWBits[1])

	for j0 := floorToInt(vMin0 - 0.5); j0 <= floorToInt(vMax0-0.5); j0++ {
		for i0 := floorToInt(uMin0 - 0.5); i0 <= floorToInt(uMax0-0.5); i0++ {
			depths0, ok := remapDepthQuad(faces0, sampler, face, size0, i0, j0)
			if !ok {
				return true
			}

			minA0 := clampF32((uMin0-0.5)-float32(i0), 0, 1)
			maxA0 := clampF32((uMax0-0.5)-float32(i0), 0, 1)
			minB0 := clampF32((vMin0-0.5)-float32(j0), 0, 1)
			maxB0 := clampF32((vMax0-0.5)-float32(j0), 0, 1)

			for j1 := floorToInt(vMin1 - 0.5); j1 <= floorToInt(vMax1-0.5); j1++ {
				for i1 := floorToInt(uMin1 - 0.5); i1 <= floorToInt(uMax1-0.5); i1++ {
					depths1, ok := remapDepthQuad(faces1, sampler, face, size1, i1, j1)
					if !ok {
						return true
					}

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

func isCubeLevelCompareResultValid(faces [texture.NumCubeFaces]texture.ConstAccess, sampler texture.Sampler, filter texture.FilterMode, prec TexComparePrecision, face texture.CubeFace, s, t, cmpReference, result float32) bool {
	if filter == texture.Linear {
		if sampler.SeamlessCubeMap {
			return isSeamlessLinearCompareResultValid(faces, sampler, prec, face, s, t, cmpReference, result)
		}
		return isLinearCompareResultValid(faces[face], sampler, prec, s, t, 0, cmpReference, result)
	}
	return isNearestCompareResultValid(faces[face], sampler, prec, s, t, 0, cmpReference, result)
}

func isCubeMipmapLinearCompareResultValid(faces0, faces1 [texture.NumCubeFaces]texture.ConstAccess, sampler texture.Sampler, levelFilter texture.FilterMode, prec TexComparePrecision, face texture.CubeFace, s, t, fLo, fHi, cmpReference, result float32) bool {
	if levelFilter == texture.Linear {
		if sampler.SeamlessCubeMap {
			return isSeamlessLinearMipmapLinearCompareResultValid(faces0, faces1, sampler, prec, face, s, t, fLo, fHi, cmpReference, result)
		}
		return isLinearMipmapLinearCompareResultValid(faces0[face], faces1[face], sampler, prec, s, t, 0, fLo, fHi, cmpReference, result)
	}
	return isNearestMipmapLinearCompareResultValid(faces0[face], faces1[face], sampler, prec, s, t, 0, fLo, fHi, cmpReference, result)
}

// IsTexCompareCubeResultValid reports whether a depth-compare result is
// admissible for a cube lookup in direction coord.
func IsTexCompareCubeResultValid(view texture.TextureCubeView, sampler texture.Sampler, prec TexComparePrecision, coord [3]float32, lodBounds interval.Interval, cmpReference, result float32) bool {
	checkCompareSampler(sampler)

	possibleFaces := PossibleCubeFaces(coord, prec.CoordBits)
	if possibleFaces == nil {
		return true
	}

	for _, face := range possibleFaces {
		s, t := texture.ProjectToFace(face, coord[0], coord[1], coord[2])

		if isCompareCubeFaceResultValid(view, sampler, prec, face, s, t, lodBounds, cmpReference, result) {
			return true
		}
	}
	return false
}

func isCompareCubeFaceResultValid(view texture.TextureCubeView, sampler texture.Sampler, prec TexComparePrecision, face texture.CubeFace, s, t float32, lodBounds interval.Interval, cmpReference, result float32) bool {
	minLod := float32(lodBounds.Lo())
	maxLod := float32(lodBounds.Hi())
	canBeMagnified := minLod <= sampler.LodThreshold
	canBeMinified := maxLod > sampler.LodThreshold

	if canBeMagnified {
		if isCubeLevelCompareResultValid(view.Faces(0), sampler, sampler.MagFilter, prec, face, s, t, cmpReference, result) {
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

				if isCubeMipmapLinearCompareResultValid(view.Faces(level), view.Faces(level+1), sampler, sampler.MinFilter.LevelFilter(), prec, face, s, t, fLo, fHi, cmpReference, result) {
					return true
				}
			}

		case sampler.MinFilter.IsNearestMipmap():
			minLevel := clampInt(ceilToInt(minLod+0.5)-1, 0, maxTexLevel)
			maxLevel := clampInt(floorToInt(maxLod+0.5), 0, maxTexLevel)

			for level := minLevel; level <= maxLevel; level++ {
				if isCubeLevelCompareResultValid(view.Faces(level), sampler, sampler.MinFilter.LevelFilter(), prec, face, s, t, cmpReference, result) {
					return true
				}
			}

		default:
			if isCubeLevelCompareResultValid(view.Faces(0), sampler, sampler.MinFilter, prec, face, s, t, cmpReference, result) {
				return true
			}
		}
	}

	return false
}

package texverify

import (
	"github.com/gogpu/texverify/interval"
	"github.com/gogpu/texverify/texture"
)

// isSeamlessLinearSampleResultValid checks one bilinear footprint that
// may cross cube face edges. A footprint texel past a corner has no
// defined source texel, so any result is admissible for that footprint.
func isSeamlessLinearSampleResultValid(faces [texture.NumCubeFaces]texture.ConstAccess, sampler texture.Sampler, prec LookupPrecision, face texture.CubeFace, s, t float32, result texture.Vec4) bool {
	size := faces[face].Width()

	uMin, uMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size, s, prec.CoordBits[0], prec.UVWBits[0])
	vMin, vMax := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size, t, prec.CoordBits[1], prec.UVWBits[1])

	class := faces[face].Format().Type.Class()
	fixedStep := searchStepForClass(class, prec)

	for j := floorToInt(vMin - 0.5); j <= floorToInt(vMax-0.5); j++ {
		for i := floorToInt(uMin - 0.5); i <= floorToInt(uMax-0.5); i++ {
			c00, ok00 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i, T: j}, size)
			c10, ok10 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i + 1, T: j}, size)
			c01, ok01 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i, T: j + 1}, size)
			c11, ok11 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i + 1, T: j + 1}, size)

			if !ok00 || !ok10 || !ok01 || !ok11 {
				return true
			}

			quad := colorQuad{
				p00: texture.Lookup(faces[c00.Face], sampler, c00.S, c00.T, 0),
				p10: texture.Lookup(faces[c10.Face], sampler, c10.S, c10.T, 0),
				p01: texture.Lookup(faces[c01.Face], sampler, c01.S, c01.T, 0),
				p11: texture.Lookup(faces[c11.Face], sampler, c11.S, c11.T, 0),
			}
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

// isSeamlessLinearMipmapLinearSampleResultValid pairs seamless bilinear
// footprints of two adjacent cube levels.
func isSeamlessLinearMipmapLinearSampleResultValid(faces0, faces1 [texture.NumCubeFaces]texture.ConstAccess, sampler texture.Sampler, prec LookupPrecision, face texture.CubeFace, s, t, fLo, fHi float32, result texture.Vec4) bool {
	size0 := faces0[face].Width()
	size1 := faces1[face].Width()

	uMin0, uMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size0, s, prec.CoordBits[0], prec.UVWBits[0])
	vMin0, vMax0 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size0, t, prec.CoordBits[1], prec.UVWBits[1])
	uMin1, uMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size1, s, prec.CoordBits[0], prec.UVWBits[0])
	vMin1, vMax1 := ComputeNonNormalizedCoordBounds(sampler.NormalizedCoords, size1, t, prec.CoordBits[1], prec.UVWBits[1])

	class := faces0[face].Format().Type.Class()
	fixedStep := searchStepForClass(class, prec)

	remapQuad := func(faces *[texture.NumCubeFaces]texture.ConstAccess, size, i, j int) (colorQuad, bool) {
		c00, ok00 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i, T: j}, size)
		c10, ok10 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i + 1, T: j}, size)
		c01, ok01 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i, T: j + 1}, size)
		c11, ok11 := texture.RemapCubeEdgeCoords(texture.CubeFaceIntCoords{Face: face, S: i + 1, T: j + 1}, size)
		if !ok00 || !ok10 || !ok01 || !ok11 {
			return colorQuad{}, false
		}
		return colorQuad{
			p00: texture.Lookup(faces[c00.Face], sampler, c00.S, c00.T, 0),
			p10: texture.Lookup(faces[c10.Face], sampler, c10.S, c10.T, 0),
			p01: texture.Lookup(faces[c01.Face], sampler, c01.S, c01.T, 0),
			p11: texture.Lookup(faces[c11.Face], sampler, c11.S, c11.T, 0),
		}, true
	}

	for j0 := floorToInt(vMin0 - 0.5); j0 <= floorToInt(vMax0-0.5); j0++ {
		for i0 := floorToInt(uMin0 - 0.5); i0 <= floorToInt(uMax0-0.5); i0++ {
			quad0, ok := remapQuad(&faces0, size0, i0, j0)
			if !ok {
				return true
			}
			step0 := quadSearchStep(class, prec, fixedStep, quad0)

			minA0 := clampF32((uMin0-0.5)-float32(i0), 0, 1)
			maxA0 := clampF32((uMax0-0.5)-float32(i0), 0, 1)
			minB0 := clampF32((vMin0-0.5)-float32(j0), 0, 1)
			maxB0 := clampF32((vMax0-0.5)-float32(j0), 0, 1)

			for j1 := floorToInt(vMin1 - 0.5); j1 <= floorToInt(vMax1-0.5); j1++ {
				for i1 := floorToInt(uMin1 - 0.5); i1 <= floorToInt(uMax1-0.5); i1++ {
					quad1, ok := remapQuad(&faces1, size1, i1, j1)
					if !ok {
						return true
					}
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

// isCubeLevelSampleResultValid checks one cube level; only the linear
// filter with seamless filtering enabled crosses face edges.
func isCubeLevelSampleResultValid(faces [texture.NumCubeFaces]texture.ConstAccess, sampler texture.Sampler, filter texture.FilterMode, prec LookupPrecision, face texture.CubeFace, s, t float32, result texture.Vec4) bool {
	if filter == texture.Linear {
		if sampler.SeamlessCubeMap {
			return isSeamlessLinearSampleResultValid(faces, sampler, prec, face, s, t, result)
		}
		return isLinearSampleResultValid2D(faces[face], sampler, prec, s, t, 0, result)
	}
	return isNearestSampleResultValid2D(faces[face], sampler, prec, s, t, 0, result)
}

func isCubeMipmapLinearSampleResultValid(faces0, faces1 [texture.NumCubeFaces]texture.ConstAccess, sampler texture.Sampler, levelFilter texture.FilterMode, prec LookupPrecision, face texture.CubeFace, s, t, fLo, fHi float32, result texture.Vec4) bool {
	if levelFilter == texture.Linear {
		if sampler.SeamlessCubeMap {
			return isSeamlessLinearMipmapLinearSampleResultValid(faces0, faces1, sampler, prec, face, s, t, fLo, fHi, result)
		}
		return isLinearMipmapLinearSampleResultValid2D(faces0[face], faces1[face], sampler, prec, s, t, 0, fLo, fHi, result)
	}
	return isNearestMipmapLinearSampleResultValid2D(faces0[face], faces1[face], sampler, prec, s, t, 0, fLo, fHi, result)
}

// IsLookupCubeResultValid reports whether result is admissible for a
// cube lookup in direction coord. Every face the direction could select
// under the coordinate error is tried; when no face can be determined
// at all the result is undefined and accepted.
func IsLookupCubeResultValid(view texture.TextureCubeView, sampler texture.Sampler, prec LookupPrecision, coord [3]float32, lodBounds interval.Interval, result texture.Vec4) bool {
	checkLookupSampler(sampler)

	possibleFaces := PossibleCubeFaces(coord, prec.CoordBits)
	if possibleFaces == nil {
		return true
	}

	for _, face := range possibleFaces {
		s, t := texture.ProjectToFace(face, coord[0], coord[1], coord[2])

		if isLookupCubeFaceResultValid(view, sampler, prec, face, s, t, lodBounds, result) {
			return true
		}
	}
	return false
}

func isLookupCubeFaceResultValid(view texture.TextureCubeView, sampler texture.Sampler, prec LookupPrecision, face texture.CubeFace, s, t float32, lodBounds interval.Interval, result texture.Vec4) bool {
	minLod := float32(lodBounds.Lo())
	maxLod := float32(lodBounds.Hi())
	canBeMagnified := minLod <= sampler.LodThreshold
	canBeMinified := maxLod > sampler.LodThreshold

	if canBeMagnified {
		if isCubeLevelSampleResultValid(view.Faces(0), sampler, sampler.MagFilter, prec, face, s, t, result) {
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

				if isCubeMipmapLinearSampleResultValid(view.Faces(level), view.Faces(level+1), sampler, sampler.MinFilter.LevelFilter(), prec, face, s, t, fLo, fHi, result) {
					return true
				}
			}

		case sampler.MinFilter.IsNearestMipmap():
			minLevel := clampInt(ceilToInt(minLod+0.5)-1, 0, maxTexLevel)
			maxLevel := clampInt(floorToInt(maxLod+0.5), 0, maxTexLevel)

			for level := minLevel; level <= maxLevel; level++ {
				if isCubeLevelSampleResultValid(view.Faces(level), sampler, sampler.MinFilter.LevelFilter(), prec, face, s, t, result) {
					return true
				}
			}

		default:
			if isCubeLevelSampleResultValid(view.Faces(0), sampler, sampler.MinFilter, prec, face, s, t, result) {
				return true
			}
		}
	}

	return false
}

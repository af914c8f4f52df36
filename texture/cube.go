package texture

import "fmt"

// CubeFace identifies one face of a cube map.
type CubeFace uint8

const (
	// CubeFaceNegX is the -X face.
	CubeFaceNegX CubeFace = iota

	// CubeFacePosX is the +X face.
	CubeFacePosX

	// CubeFaceNegY is the -Y face.
	CubeFaceNegY

	// CubeFacePosY is the +Y face.
	CubeFacePosY

	// CubeFaceNegZ is the -Z face.
	CubeFaceNegZ

	// CubeFacePosZ is the +Z face.
	CubeFacePosZ

	// NumCubeFaces is the face count.
	NumCubeFaces = 6
)

// String returns a string representation of the face.
func (f CubeFace) String() string {
	switch f {
	case CubeFaceNegX:
		return "-X"
	case CubeFacePosX:
		return "+X"
	case CubeFaceNegY:
		return "-Y"
	case CubeFacePosY:
		return "+Y"
	case CubeFaceNegZ:
		return "-Z"
	case CubeFacePosZ:
		return "+Z"
	default:
		return "Unknown"
	}
}

// SelectCubeFace returns the face a direction vector samples, using the
// dominant axis with a deterministic tie-break when magnitudes match.
func SelectCubeFace(x, y, z float32) CubeFace {
	ax, ay, az := absf(x), absf(y), absf(z)

	sel := func(pos bool, p, n CubeFace) CubeFace {
		if pos {
			return p
		}
		return n
	}

	switch {
	case ay < ax && az < ax:
		return sel(x > 0, CubeFacePosX, CubeFaceNegX)
	case ax < ay && az < ay:
		return sel(y > 0, CubeFacePosY, CubeFaceNegY)
	case ax < az && ay < az:
		return sel(z > 0, CubeFacePosZ, CubeFaceNegZ)
	}

	// Tie-break between equal dominant magnitudes: X beats Y beats Z.
	switch {
	case ax == ay:
		if ax < az {
			return sel(z > 0, CubeFacePosZ, CubeFaceNegZ)
		}
		return sel(x > 0, CubeFacePosX, CubeFaceNegX)
	case ax == az:
		if az < ay {
			return sel(y > 0, CubeFacePosY, CubeFaceNegY)
		}
		return sel(z > 0, CubeFacePosZ, CubeFaceNegZ)
	default:
		if ay < ax {
			return sel(x > 0, CubeFacePosX, CubeFaceNegX)
		}
		return sel(y > 0, CubeFacePosY, CubeFaceNegY)
	}
}

// ProjectToFace projects a direction onto a face, returning (s, t) in
// [0, 1] for directions whose dominant axis matches the face.
func ProjectToFace(face CubeFace, x, y, z float32) (s, t float32) {
	var sc, tc, ma float32

	switch face {
	case CubeFaceNegX:
		sc, tc, ma = +z, -y, -x
	case CubeFacePosX:
		sc, tc, ma = -z, -y, +x
	case CubeFaceNegY:
		sc, tc, ma = +x, -z, -y
	case CubeFacePosY:
		sc, tc, ma = +x, +z, +y
	case CubeFaceNegZ:
		sc, tc, ma = -x, -y, -z
	case CubeFacePosZ:
		sc, tc, ma = +x, -y, +z
	default:
		panic(fmt.Sprintf("texture: invalid cube face %d", face))
	}

	s = (sc/ma + 1) / 2
	t = (tc/ma + 1) / 2
	return s, t
}

// CubeFaceIntCoords is an integer texel coordinate on a specific face.
// Either index may be out of [0, size) before remapping.
type CubeFaceIntCoords struct {
	Face CubeFace
	S, T int
}

// RemapCubeEdgeCoords folds a texel coordinate that crossed one face
// edge onto the neighboring face with the correct orientation, for a
// face of the given size. Coordinates inside the face are returned
// unchanged. When the coordinate is outside on both axes it lies past a
// cube corner where no single neighbor exists; ok is false and the
// caller decides (the seamless filter averages the remaining corners).
func RemapCubeEdgeCoords(c CubeFaceIntCoords, size int) (CubeFaceIntCoords, bool) {
	sIn := inBounds(c.S, 0, size)
	tIn := inBounds(c.T, 0, size)

	if sIn && tIn {
		return c, true
	}
	if !sIn && !tIn {
		return CubeFaceIntCoords{}, false
	}

	i, j, n := c.S, c.T, size

	switch c.Face {
	case CubeFacePosX:
		switch {
		case i < 0:
			return CubeFaceIntCoords{CubeFacePosZ, i + n, j}, true
		case i >= n:
			return CubeFaceIntCoords{CubeFaceNegZ, i - n, j}, true
		case j < 0:
			return CubeFaceIntCoords{CubeFacePosY, j + n, n - 1 - i}, true
		default:
			return CubeFaceIntCoords{CubeFaceNegY, 2*n - 1 - j, i}, true
		}
	case CubeFaceNegX:
		switch {
		case i < 0:
			return CubeFaceIntCoords{CubeFaceNegZ, i + n, j}, true
		case i >= n:
			return CubeFaceIntCoords{CubeFacePosZ, i - n, j}, true
		case j < 0:
			return CubeFaceIntCoords{CubeFacePosY, -1 - j, i}, true
		default:
			return CubeFaceIntCoords{CubeFaceNegY, j - n, n - 1 - i}, true
		}
	case CubeFacePosY:
		switch {
		case i < 0:
			return CubeFaceIntCoords{CubeFaceNegX, j, -1 - i}, true
		case i >= n:
			return CubeFaceIntCoords{CubeFacePosX, n - 1 - j, i - n}, true
		case j < 0:
			return CubeFaceIntCoords{CubeFaceNegZ, n - 1 - i, -1 - j}, true
		default:
			return CubeFaceIntCoords{CubeFacePosZ, i, j - n}, true
		}
	case CubeFaceNegY:
		switch {
		case i < 0:
			return CubeFaceIntCoords{CubeFaceNegX, n - 1 - j, i + n}, true
		case i >= n:
			return CubeFaceIntCoords{CubeFacePosX, j, 2*n - 1 - i}, true
		case j < 0:
			return CubeFaceIntCoords{CubeFacePosZ, i, j + n}, true
		default:
			return CubeFaceIntCoords{CubeFaceNegZ, n - 1 - i, 2*n - 1 - j}, true
		}
	case CubeFacePosZ:
		switch {
		case i < 0:
			return CubeFaceIntCoords{CubeFaceNegX, i + n, j}, true
		case i >= n:
			return CubeFaceIntCoords{CubeFacePosX, i - n, j}, true
		case j < 0:
			return CubeFaceIntCoords{CubeFacePosY, i, j + n}, true
		default:
			return CubeFaceIntCoords{CubeFaceNegY, i, j - n}, true
		}
	case CubeFaceNegZ:
		switch {
		case i < 0:
			return CubeFaceIntCoords{CubeFacePosX, i + n, j}, true
		case i >= n:
			return CubeFaceIntCoords{CubeFaceNegX, i - n, j}, true
		case j < 0:
			return CubeFaceIntCoords{CubeFacePosY, n - 1 - i, -1 - j}, true
		default:
			return CubeFaceIntCoords{CubeFaceNegY, n - 1 - i, 2*n - 1 - j}, true
		}
	default:
		panic(fmt.Sprintf("texture: invalid cube face %d", c.Face))
	}
}

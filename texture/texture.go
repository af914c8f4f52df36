package texture

import (
	"fmt"
	"math"
)

// Level owns the storage of a single mip level.
type Level struct {
	format Format
	width  int
	height int
	depth  int
	data   []byte
}

// NewLevel allocates storage for a width x height x depth level.
func NewLevel(format Format, width, height, depth int) *Level {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic(fmt.Sprintf("texture: invalid level size %dx%dx%d", width, height, depth))
	}
	return &Level{
		format: format,
		width:  width,
		height: height,
		depth:  depth,
		data:   make([]byte, width*height*depth*format.PixelSize()),
	}
}

// Access returns a mutable view of the level.
func (l *Level) Access() Access {
	a, err := NewAccess(l.format, l.width, l.height, l.depth, l.data)
	if err != nil {
		panic("texture: level storage inconsistent: " + err.Error())
	}
	return a
}

// ConstAccess returns a read-only view of the level.
func (l *Level) ConstAccess() ConstAccess {
	return l.Access().ConstAccess
}

// MipPyramidLevels returns the number of levels in a full mip pyramid
// whose base has the given maximum dimension.
func MipPyramidLevels(maxDim int) int {
	return 1 + int(math.Floor(math.Log2(float64(maxDim))))
}

// mipLevelSize halves a base dimension for the given level, stopping
// at 1.
func mipLevelSize(baseSize, level int) int {
	return max(baseSize>>uint(level), 1)
}

// Texture2D owns a mip pyramid of 2D levels. Levels are allocated on
// demand so partially populated pyramids can be represented.
type Texture2D struct {
	format Format
	width  int
	height int
	levels []*Level
}

// NewTexture2D creates an empty 2D texture with a full mip pyramid's
// worth of level slots.
func NewTexture2D(format Format, width, height int) *Texture2D {
	return &Texture2D{
		format: format,
		width:  width,
		height: height,
		levels: make([]*Level, MipPyramidLevels(max(width, height))),
	}
}

// Format returns the texture format.
func (t *Texture2D) Format() Format { return t.format }

// Width returns the base level width.
func (t *Texture2D) Width() int { return t.width }

// Height returns the base level height.
func (t *Texture2D) Height() int { return t.height }

// NumLevels returns the number of level slots.
func (t *Texture2D) NumLevels() int { return len(t.levels) }

// AllocLevel allocates storage for the given level and returns a
// mutable view of it.
func (t *Texture2D) AllocLevel(level int) Access {
	t.checkLevel(level)
	t.levels[level] = NewLevel(t.format, mipLevelSize(t.width, level), mipLevelSize(t.height, level), 1)
	return t.levels[level].Access()
}

// Level returns a mutable view of an allocated level.
func (t *Texture2D) Level(level int) Access {
	t.checkLevel(level)
	if t.levels[level] == nil {
		panic(fmt.Sprintf("texture: level %d not allocated", level))
	}
	return t.levels[level].Access()
}

// IsLevelEmpty reports whether the level has no storage.
func (t *Texture2D) IsLevelEmpty(level int) bool {
	t.checkLevel(level)
	return t.levels[level] == nil
}

func (t *Texture2D) checkLevel(level int) {
	if level < 0 || level >= len(t.levels) {
		panic(fmt.Sprintf("texture: level %d outside [0, %d)", level, len(t.levels)))
	}
}

// View returns a read-only view over the contiguous run of allocated
// levels starting at the base.
func (t *Texture2D) View() Texture2DView {
	return Texture2DView{levels: collectLevels(t.levels)}
}

func collectLevels(levels []*Level) []ConstAccess {
	var out []ConstAccess
	for _, l := range levels {
		if l == nil {
			break
		}
		out = append(out, l.ConstAccess())
	}
	return out
}

// Texture2DView is a non-owning handle over the levels of a 2D texture.
type Texture2DView struct {
	levels []ConstAccess
}

// NewTexture2DView wraps pre-built level accesses.
func NewTexture2DView(levels []ConstAccess) Texture2DView {
	return Texture2DView{levels: levels}
}

// NumLevels returns the level count.
func (v Texture2DView) NumLevels() int { return len(v.levels) }

// Level returns the access for one level.
func (v Texture2DView) Level(level int) ConstAccess { return v.levels[level] }

// Sample runs the reference (non-interval) sampling function at (s, t)
// with the given level of detail.
func (v Texture2DView) Sample(sampler Sampler, s, t, lod float32) Vec4 {
	return sampleLevels2D(v.levels, sampler, s, t, 0, lod)
}

// SampleCompare runs the reference depth-compare sampling at (s, t).
func (v Texture2DView) SampleCompare(sampler Sampler, ref, s, t, lod float32) float32 {
	return sampleLevels2DCompare(v.levels, sampler, ref, s, t, 0, lod)
}

// sample2D applies one non-mipmap filter on a single level.
func sample2D(access ConstAccess, sampler Sampler, filter FilterMode, s, t float32, depth int) Vec4 {
	u := Unnormalize(sampler.WrapS, s, access.Width())
	v := Unnormalize(sampler.WrapT, t, access.Height())
	if filter == Nearest {
		return SampleNearest2D(access, sampler, u, v, depth)
	}
	return SampleLinear2D(access, sampler, u, v, depth)
}

func sample2DCompare(access ConstAccess, sampler Sampler, filter FilterMode, ref, s, t float32, depth int) float32 {
	u := Unnormalize(sampler.WrapS, s, access.Width())
	v := Unnormalize(sampler.WrapT, t, access.Height())
	if filter == Nearest {
		return SampleNearest2DCompare(access, sampler, ref, u, v, depth)
	}
	return SampleLinear2DCompare(access, sampler, ref, u, v, depth)
}

// sampleLevels2D implements mip level selection over a level array.
// Nearest-mip selection uses ceil(lod + 0.5) - 1; the verifier accepts
// the floor(lod + 0.5) rule as well.
func sampleLevels2D(levels []ConstAccess, sampler Sampler, s, t float32, depth int, lod float32) Vec4 {
	filter := sampler.MinFilter
	if lod <= sampler.LodThreshold {
		filter = sampler.MagFilter
	}

	switch filter {
	case Nearest, Linear:
		return sample2D(levels[0], sampler, filter, s, t, depth)

	case NearestMipmapNearest, LinearMipmapNearest:
		maxLevel := len(levels) - 1
		level := clampInt(int(math.Ceil(float64(lod)+0.5))-1, 0, maxLevel)
		return sample2D(levels[level], sampler, filter.LevelFilter(), s, t, depth)

	case NearestMipmapLinear, LinearMipmapLinear:
		maxLevel := len(levels) - 1
		level0 := clampInt(floorToInt(lod), 0, maxLevel)
		level1 := min(maxLevel, level0+1)
		f := fracf(lod)
		c0 := sample2D(levels[level0], sampler, filter.LevelFilter(), s, t, depth)
		c1 := sample2D(levels[level1], sampler, filter.LevelFilter(), s, t, depth)
		return c0.Lerp(c1, f)

	default:
		panic(fmt.Sprintf("texture: invalid filter mode %v", filter))
	}
}

func sampleLevels2DCompare(levels []ConstAccess, sampler Sampler, ref, s, t float32, depth int, lod float32) float32 {
	filter := sampler.MinFilter
	if lod <= sampler.LodThreshold {
		filter = sampler.MagFilter
	}

	switch filter {
	case Nearest, Linear:
		return sample2DCompare(levels[0], sampler, filter, ref, s, t, depth)

	case NearestMipmapNearest, LinearMipmapNearest:
		maxLevel := len(levels) - 1
		level := clampInt(int(math.Ceil(float64(lod)+0.5))-1, 0, maxLevel)
		return sample2DCompare(levels[level], sampler, filter.LevelFilter(), ref, s, t, depth)

	case NearestMipmapLinear, LinearMipmapLinear:
		maxLevel := len(levels) - 1
		level0 := clampInt(floorToInt(lod), 0, maxLevel)
		level1 := min(maxLevel, level0+1)
		f := fracf(lod)
		c0 := sample2DCompare(levels[level0], sampler, filter.LevelFilter(), ref, s, t, depth)
		c1 := sample2DCompare(levels[level1], sampler, filter.LevelFilter(), ref, s, t, depth)
		return c0*(1-f) + c1*f

	default:
		panic(fmt.Sprintf("texture: invalid filter mode %v", filter))
	}
}

// Texture3D owns a mip pyramid of 3D levels.
type Texture3D struct {
	format Format
	width  int
	height int
	depth  int
	levels []*Level
}

// NewTexture3D creates an empty 3D texture.
func NewTexture3D(format Format, width, height, depth int) *Texture3D {
	return &Texture3D{
		format: format,
		width:  width,
		height: height,
		depth:  depth,
		levels: make([]*Level, MipPyramidLevels(max(width, height, depth))),
	}
}

// Format returns the texture format.
func (t *Texture3D) Format() Format { return t.format }

// NumLevels returns the number of level slots.
func (t *Texture3D) NumLevels() int { return len(t.levels) }

// AllocLevel allocates storage for the given level.
func (t *Texture3D) AllocLevel(level int) Access {
	if level < 0 || level >= len(t.levels) {
		panic(fmt.Sprintf("texture: level %d outside [0, %d)", level, len(t.levels)))
	}
	t.levels[level] = NewLevel(t.format,
		mipLevelSize(t.width, level),
		mipLevelSize(t.height, level),
		mipLevelSize(t.depth, level))
	return t.levels[level].Access()
}

// View returns a read-only view over the allocated levels.
func (t *Texture3D) View() Texture3DView {
	return Texture3DView{levels: collectLevels(t.levels)}
}

// Texture3DView is a non-owning handle over the levels of a 3D texture.
type Texture3DView struct {
	levels []ConstAccess
}

// NewTexture3DView wraps pre-built level accesses.
func NewTexture3DView(levels []ConstAccess) Texture3DView {
	return Texture3DView{levels: levels}
}

// NumLevels returns the level count.
func (v Texture3DView) NumLevels() int { return len(v.levels) }

// Level returns the access for one level.
func (v Texture3DView) Level(level int) ConstAccess { return v.levels[level] }

// Sample runs the reference sampling function at (s, t, r).
func (v Texture3DView) Sample(sampler Sampler, s, t, r, lod float32) Vec4 {
	filter := sampler.MinFilter
	if lod <= sampler.LodThreshold {
		filter = sampler.MagFilter
	}

	sampleLevel := func(access ConstAccess, fm FilterMode) Vec4 {
		u := Unnormalize(sampler.WrapS, s, access.Width())
		vv := Unnormalize(sampler.WrapT, t, access.Height())
		w := Unnormalize(sampler.WrapR, r, access.Depth())
		if fm == Nearest {
			return SampleNearest3D(access, sampler, u, vv, w)
		}
		return SampleLinear3D(access, sampler, u, vv, w)
	}

	switch filter {
	case Nearest, Linear:
		return sampleLevel(v.levels[0], filter)
	case NearestMipmapNearest, LinearMipmapNearest:
		maxLevel := len(v.levels) - 1
		level := clampInt(int(math.Ceil(float64(lod)+0.5))-1, 0, maxLevel)
		return sampleLevel(v.levels[level], filter.LevelFilter())
	case NearestMipmapLinear, LinearMipmapLinear:
		maxLevel := len(v.levels) - 1
		level0 := clampInt(floorToInt(lod), 0, maxLevel)
		level1 := min(maxLevel, level0+1)
		f := fracf(lod)
		c0 := sampleLevel(v.levels[level0], filter.LevelFilter())
		c1 := sampleLevel(v.levels[level1], filter.LevelFilter())
		return c0.Lerp(c1, f)
	default:
		panic(fmt.Sprintf("texture: invalid filter mode %v", filter))
	}
}

// Texture2DArray owns a mip pyramid of layered 2D levels; layers are
// stored as depth slices of each level.
type Texture2DArray struct {
	format    Format
	width     int
	height    int
	numLayers int
	levels    []*Level
}

// NewTexture2DArray creates an empty 2D array texture.
func NewTexture2DArray(format Format, width, height, numLayers int) *Texture2DArray {
	return &Texture2DArray{
		format:    format,
		width:     width,
		height:    height,
		numLayers: numLayers,
		levels:    make([]*Level, MipPyramidLevels(max(width, height))),
	}
}

// Format returns the texture format.
func (t *Texture2DArray) Format() Format { return t.format }

// NumLayers returns the layer count.
func (t *Texture2DArray) NumLayers() int { return t.numLayers }

// NumLevels returns the number of level slots.
func (t *Texture2DArray) NumLevels() int { return len(t.levels) }

// AllocLevel allocates storage for the given level across all layers.
func (t *Texture2DArray) AllocLevel(level int) Access {
	if level < 0 || level >= len(t.levels) {
		panic(fmt.Sprintf("texture: level %d outside [0, %d)", level, len(t.levels)))
	}
	t.levels[level] = NewLevel(t.format,
		mipLevelSize(t.width, level),
		mipLevelSize(t.height, level),
		t.numLayers)
	return t.levels[level].Access()
}

// View returns a read-only view over the allocated levels.
func (t *Texture2DArray) View() Texture2DArrayView {
	return Texture2DArrayView{levels: collectLevels(t.levels)}
}

// Texture2DArrayView is a non-owning handle over a 2D array texture.
type Texture2DArrayView struct {
	levels []ConstAccess
}

// NewTexture2DArrayView wraps pre-built level accesses.
func NewTexture2DArrayView(levels []ConstAccess) Texture2DArrayView {
	return Texture2DArrayView{levels: levels}
}

// NumLevels returns the level count.
func (v Texture2DArrayView) NumLevels() int { return len(v.levels) }

// NumLayers returns the layer count.
func (v Texture2DArrayView) NumLayers() int { return v.levels[0].Depth() }

// Level returns the access for one level.
func (v Texture2DArrayView) Level(level int) ConstAccess { return v.levels[level] }

// selectLayer maps the layer coordinate to a concrete layer index.
func (v Texture2DArrayView) selectLayer(r float32) int {
	return clampInt(int(rintf(r)), 0, v.NumLayers()-1)
}

// Sample runs the reference sampling function at (s, t) on the layer
// nearest to r.
func (v Texture2DArrayView) Sample(sampler Sampler, s, t, r, lod float32) Vec4 {
	return sampleLevels2D(v.levels, sampler, s, t, v.selectLayer(r), lod)
}

// SampleCompare runs the reference depth-compare sampling on the layer
// nearest to r.
func (v Texture2DArrayView) SampleCompare(sampler Sampler, ref, s, t, r, lod float32) float32 {
	return sampleLevels2DCompare(v.levels, sampler, ref, s, t, v.selectLayer(r), lod)
}

// TextureCube owns six mip pyramids, one per face. Every face level is
// square.
type TextureCube struct {
	format Format
	size   int
	levels [NumCubeFaces][]*Level
}

// NewTextureCube creates an empty cube texture with the given edge size.
func NewTextureCube(format Format, size int) *TextureCube {
	t := &TextureCube{format: format, size: size}
	n := MipPyramidLevels(size)
	for face := range t.levels {
		t.levels[face] = make([]*Level, n)
	}
	return t
}

// Format returns the texture format.
func (t *TextureCube) Format() Format { return t.format }

// Size returns the base level edge size.
func (t *TextureCube) Size() int { return t.size }

// NumLevels returns the number of level slots per face.
func (t *TextureCube) NumLevels() int { return len(t.levels[0]) }

// AllocLevel allocates storage for one face level.
func (t *TextureCube) AllocLevel(face CubeFace, level int) Access {
	if level < 0 || level >= t.NumLevels() {
		panic(fmt.Sprintf("texture: level %d outside [0, %d)", level, t.NumLevels()))
	}
	s := mipLevelSize(t.size, level)
	t.levels[face][level] = NewLevel(t.format, s, s, 1)
	return t.levels[face][level].Access()
}

// View returns a read-only view over the allocated levels of all faces.
func (t *TextureCube) View() TextureCubeView {
	var v TextureCubeView
	n := t.NumLevels()
	for level := 0; level < n; level++ {
		var faces [NumCubeFaces]ConstAccess
		complete := true
		for face := range t.levels {
			if t.levels[face][level] == nil {
				complete = false
				break
			}
			faces[face] = t.levels[face][level].ConstAccess()
		}
		if !complete {
			break
		}
		v.levels = append(v.levels, faces)
	}
	return v
}

// TextureCubeView is a non-owning handle over the face levels of a cube
// texture. levels[i][face] is face's access at level i.
type TextureCubeView struct {
	levels [][NumCubeFaces]ConstAccess
}

// NewTextureCubeView wraps pre-built per-level face accesses.
func NewTextureCubeView(levels [][NumCubeFaces]ConstAccess) TextureCubeView {
	return TextureCubeView{levels: levels}
}

// NumLevels returns the level count.
func (v TextureCubeView) NumLevels() int { return len(v.levels) }

// FaceLevel returns the access of one face at one level.
func (v TextureCubeView) FaceLevel(level int, face CubeFace) ConstAccess {
	return v.levels[level][face]
}

// Faces returns all face accesses of one level.
func (v TextureCubeView) Faces(level int) [NumCubeFaces]ConstAccess {
	return v.levels[level]
}

// Sample runs the reference cube sampling function for direction
// (s, t, r). Seamless filtering folds edge-crossing taps onto neighbor
// faces; a tap past a corner averages the remaining three taps.
func (v TextureCubeView) Sample(sampler Sampler, s, t, r, lod float32) Vec4 {
	face := SelectCubeFace(s, t, r)
	u, w := ProjectToFace(face, s, t, r)

	filter := sampler.MinFilter
	if lod <= sampler.LodThreshold {
		filter = sampler.MagFilter
	}

	sampleLevel := func(level int, fm FilterMode) Vec4 {
		faces := v.levels[level]
		size := faces[face].Width()
		cu := Unnormalize(ClampToEdge, u, size)
		cv := Unnormalize(ClampToEdge, w, size)
		if fm == Linear && sampler.SeamlessCubeMap {
			return sampleCubeSeamlessLinear(faces, face, sampler, cu, cv)
		}
		if fm == Nearest {
			return SampleNearest2D(faces[face], sampler, cu, cv, 0)
		}
		return SampleLinear2D(faces[face], sampler, cu, cv, 0)
	}

	switch filter {
	case Nearest, Linear:
		return sampleLevel(0, filter)
	case NearestMipmapNearest, LinearMipmapNearest:
		maxLevel := len(v.levels) - 1
		level := clampInt(int(math.Ceil(float64(lod)+0.5))-1, 0, maxLevel)
		return sampleLevel(level, filter.LevelFilter())
	case NearestMipmapLinear, LinearMipmapLinear:
		maxLevel := len(v.levels) - 1
		level0 := clampInt(floorToInt(lod), 0, maxLevel)
		level1 := min(maxLevel, level0+1)
		f := fracf(lod)
		return sampleLevel(level0, filter.LevelFilter()).Lerp(sampleLevel(level1, filter.LevelFilter()), f)
	default:
		panic(fmt.Sprintf("texture: invalid filter mode %v", filter))
	}
}

// sampleCubeSeamlessLinear bilinearly filters four taps that may fold
// onto neighboring faces.
func sampleCubeSeamlessLinear(faces [NumCubeFaces]ConstAccess, baseFace CubeFace, sampler Sampler, u, v float32) Vec4 {
	size := faces[baseFace].Width()

	x0 := floorToInt(u - 0.5)
	x1 := x0 + 1
	y0 := floorToInt(v - 0.5)
	y1 := y0 + 1

	a := fracf(u - 0.5)
	b := fracf(v - 0.5)

	coords := [4]CubeFaceIntCoords{
		{baseFace, x0, y0},
		{baseFace, x1, y0},
		{baseFace, x0, y1},
		{baseFace, x1, y1},
	}

	var samples [4]Vec4
	var corner [4]bool
	for i, c := range coords {
		remapped, ok := RemapCubeEdgeCoords(c, size)
		if !ok {
			corner[i] = true
			continue
		}
		samples[i] = lookup(faces[remapped.Face], sampler, remapped.S, remapped.T, 0)
	}

	// A corner tap has no well-defined face; average the other three.
	for i := range samples {
		if !corner[i] {
			continue
		}
		var sum Vec4
		for j := range samples {
			if j != i {
				sum = sum.Add(samples[j])
			}
		}
		samples[i] = sum.Scale(1.0 / 3.0)
	}

	return samples[0].Lerp(samples[1], a).Lerp(samples[2].Lerp(samples[3], a), b)
}

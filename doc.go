// Package texverify decides whether GPU texture sampling results are
// admissible under declared hardware precision.
//
// # Overview
//
// GPUs are allowed considerable slack when sampling textures: coordinate
// arithmetic is done in reduced fixed point precision, filtering weights
// are quantized, and the level of detail may land anywhere inside a
// specified window. A bit-exact reference image is therefore useless for
// conformance checking. texverify instead answers the question "could a
// conforming implementation have produced this value?" by searching the
// whole envelope of results reachable within the declared precision.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/texverify"
//		"github.com/gogpu/texverify/texture"
//	)
//
//	tex := texture.NewTexture2D(texture.NewFormat(texture.RGBA, texture.UnormInt8), 64, 64)
//	tex.AllocLevel(0).Clear(texture.Vec4{0.5, 0.5, 0.5, 1})
//
//	sampler := texture.NewSampler(texture.Repeat, texture.Repeat, texture.Repeat,
//		texture.Linear, texture.Linear)
//	prec := texverify.NewLookupPrecision(
//		texverify.CoordBits{20, 20, 20},
//		texverify.CoordBits{7, 7, 7},
//		texture.Vec4{0.01, 0.01, 0.01, 0.01})
//
//	ok := texverify.IsLookup2DResultValid(tex.View(), sampler, prec,
//		[2]float32{0.5, 0.5}, lodBounds, observed)
//
// # Architecture
//
// The module is organized into:
//   - Public API: lookup and depth-compare verifiers, precision types,
//     LOD bound computation, batch running
//   - interval: interval arithmetic with configurable float formats
//   - texture: texture data model, formats and reference sampling
//
// # Verification Model
//
// Every verifier is one-sided: acceptance means some parameter
// assignment inside the precision envelope reproduces the result, so a
// pass never certifies exactness, while a failure always indicates a
// result no conforming implementation may produce. Mip level candidates
// are searched independently per level, which errs on the permissive
// side.
package texverify

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

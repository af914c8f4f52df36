// Command texverify checks recorded texture sampling results against
// the reference verifier. It reads a JSON case list, loads the texture
// image of each case, and reports which results are inadmissible under
// the declared precision.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/gogpu/texverify"
	"github.com/gogpu/texverify/interval"
	"github.com/gogpu/texverify/texture"
)

type caseFile struct {
	Cases []caseSpec `json:"cases"`
}

type caseSpec struct {
	Name  string `json:"name"`
	Image string `json:"image"`

	MinFilter string `json:"minFilter"`
	MagFilter string `json:"magFilter"`
	WrapS     string `json:"wrapS"`
	WrapT     string `json:"wrapT"`

	Coord     [2]float32 `json:"coord"`
	LodBounds [2]float64 `json:"lodBounds"`
	Result    [4]float32 `json:"result"`

	CoordBits      [3]int     `json:"coordBits"`
	UVWBits        [3]int     `json:"uvwBits"`
	ColorThreshold [4]float32 `json:"colorThreshold"`
}

func main() {
	var (
		casePath = flag.String("cases", "cases.json", "JSON case list")
		workers  = flag.Int("workers", 0, "worker count (0 = GOMAXPROCS)")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		texverify.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cases, err := loadCases(*casePath)
	if err != nil {
		log.Fatalf("Failed to load cases: %v", err)
	}

	results := texverify.VerifyBatch(*workers, cases)

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
			fmt.Printf("FAIL %s\n", r.Name)
		}
	}
	fmt.Printf("%d/%d cases passed\n", len(results)-failed, len(results))

	if failed > 0 {
		os.Exit(1)
	}
}

func loadCases(path string) ([]texverify.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file caseFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	cases := make([]texverify.Case, 0, len(file.Cases))

	for _, spec := range file.Cases {
		spec := spec

		view, err := loadTexture(filepath.Join(dir, spec.Image))
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", spec.Name, err)
		}

		sampler, err := buildSampler(spec)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", spec.Name, err)
		}

		prec := texverify.NewLookupPrecision(spec.CoordBits, spec.UVWBits, texture.Vec4(spec.ColorThreshold))
		lodBounds := interval.NewInterval(spec.LodBounds[0], spec.LodBounds[1])

		cases = append(cases, texverify.Case{
			Name: spec.Name,
			Verify: func() bool {
				return texverify.IsLookup2DResultValid(view, sampler, prec, spec.Coord, lodBounds, texture.Vec4(spec.Result))
			},
		})
	}
	return cases, nil
}

// loadTexture decodes an image file into an RGBA8 texture with a full
// box-filtered mip pyramid.
func loadTexture(path string) (texture.Texture2DView, error) {
	f, err := os.Open(path)
	if err != nil {
		return texture.Texture2DView{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return texture.Texture2DView{}, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	tex := texture.NewTexture2D(texture.NewFormat(texture.RGBA, texture.UnormInt8), w, h)

	base := tex.AllocLevel(0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			base.SetPixel(texture.Vec4{
				float32(r) / 0xFFFF,
				float32(g) / 0xFFFF,
				float32(b) / 0xFFFF,
				float32(a) / 0xFFFF,
			}, x, y, 0)
		}
	}

	for level := 1; level < tex.NumLevels(); level++ {
		downsample(tex.Level(level-1).ConstAccess, tex.AllocLevel(level))
	}

	return tex.View(), nil
}

// downsample box-filters src into dst, which has half (or same, for
// odd-sized axes at size 1) dimensions.
func downsample(src texture.ConstAccess, dst texture.Access) {
	sw, sh := src.Width(), src.Height()
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			x0, y0 := min(2*x, sw-1), min(2*y, sh-1)
			x1, y1 := min(2*x+1, sw-1), min(2*y+1, sh-1)

			sum := src.Pixel(x0, y0, 0).
				Add(src.Pixel(x1, y0, 0)).
				Add(src.Pixel(x0, y1, 0)).
				Add(src.Pixel(x1, y1, 0))
			dst.SetPixel(sum.Scale(0.25), x, y, 0)
		}
	}
}

func buildSampler(spec caseSpec) (texture.Sampler, error) {
	wrapS, err := parseWrap(spec.WrapS)
	if err != nil {
		return texture.Sampler{}, err
	}
	wrapT, err := parseWrap(spec.WrapT)
	if err != nil {
		return texture.Sampler{}, err
	}
	minF, err := parseFilter(spec.MinFilter)
	if err != nil {
		return texture.Sampler{}, err
	}
	magF, err := parseFilter(spec.MagFilter)
	if err != nil {
		return texture.Sampler{}, err
	}
	if magF.IsMipmap() {
		return texture.Sampler{}, fmt.Errorf("magFilter %q must not be a mipmap filter", spec.MagFilter)
	}
	return texture.NewSampler(wrapS, wrapT, wrapS, minF, magF), nil
}

func parseWrap(s string) (texture.WrapMode, error) {
	switch strings.ToLower(s) {
	case "", "clamp", "clamptoedge":
		return texture.ClampToEdge, nil
	case "border", "clamptoborder":
		return texture.ClampToBorder, nil
	case "repeat":
		return texture.Repeat, nil
	case "mirror", "mirroredrepeat":
		return texture.MirroredRepeat, nil
	default:
		return 0, fmt.Errorf("unknown wrap mode %q", s)
	}
}

func parseFilter(s string) (texture.FilterMode, error) {
	switch strings.ToLower(s) {
	case "", "nearest":
		return texture.Nearest, nil
	case "linear":
		return texture.Linear, nil
	case "nearest_mipmap_nearest":
		return texture.NearestMipmapNearest, nil
	case "nearest_mipmap_linear":
		return texture.NearestMipmapLinear, nil
	case "linear_mipmap_nearest":
		return texture.LinearMipmapNearest, nil
	case "linear_mipmap_linear":
		return texture.LinearMipmapLinear, nil
	default:
		return 0, fmt.Errorf("unknown filter mode %q", s)
	}
}

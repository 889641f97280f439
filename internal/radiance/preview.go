package radiance

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/backmassage/ies2hdr/internal/project"
)

// WritePreviewPNG writes an 8-bit grayscale-looking PNG of r for quick
// visual inspection. Values are clamped to [0,1], gamma-mapped for
// display, and upscaled by scale with nearest-neighbor so individual
// texels stay visible.
func WritePreviewPNG(w io.Writer, r *project.Raster, scale int, gamma float64) error {
	if scale < 1 {
		return fmt.Errorf("radiance: preview scale must be at least 1 (got %d)", scale)
	}

	src := image.NewRGBA(image.Rect(0, 0, r.Spec.Width, r.Spec.Height))
	for y := 0; y < r.Spec.Height; y++ {
		for x := 0; x < r.Spec.Width; x++ {
			g := toDisplay(r.At(x, y, 0), gamma)
			src.SetRGBA(x, y, color.RGBA{R: g, G: g, B: g, A: 0xff})
		}
	}

	if scale == 1 {
		return png.Encode(w, src)
	}

	dst := image.NewRGBA(image.Rect(0, 0, r.Spec.Width*scale, r.Spec.Height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return png.Encode(w, dst)
}

// toDisplay maps a linear radiance value to an 8-bit display value.
func toDisplay(v, gamma float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v > 1 {
		v = 1
	}
	if gamma != 1 {
		v = math.Pow(v, 1/gamma)
	}
	return uint8(math.Round(v * 255))
}

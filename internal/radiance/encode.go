// Package radiance writes projection rasters as Radiance RGBE images
// (the .hdr family: "#?RADIANCE" header plus run-length encoded pixels)
// and as optional 8-bit PNG previews.
package radiance

import (
	"fmt"
	"image"
	"io"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/backmassage/ies2hdr/internal/project"
)

// WriteHDR encodes r to w in the Radiance RGBE format. Radiance readers
// treat the absent GAMMA and EXPOSURE headers as 1.0, which matches the
// linear, unit-exposure data the projectors produce.
func WriteHDR(w io.Writer, r *project.Raster) error {
	img, err := toImage(r)
	if err != nil {
		return err
	}
	if err := rgbe.Encode(w, img); err != nil {
		return fmt.Errorf("radiance: encode: %w", err)
	}
	return nil
}

// toImage copies the raster into the encoder's HDR image type.
func toImage(r *project.Raster) (*hdr.RGB, error) {
	if r.Spec.Channels != 3 {
		return nil, fmt.Errorf("radiance: need 3 channels, got %d", r.Spec.Channels)
	}
	img := hdr.NewRGB(image.Rect(0, 0, r.Spec.Width, r.Spec.Height))
	for y := 0; y < r.Spec.Height; y++ {
		for x := 0; x < r.Spec.Width; x++ {
			img.SetRGB(x, y, hdrcolor.RGB{
				R: r.At(x, y, 0),
				G: r.At(x, y, 1),
				B: r.At(x, y, 2),
			})
		}
	}
	return img, nil
}

package project

import (
	"github.com/backmassage/ies2hdr/internal/ies"
)

// Project2D renders the full angular map: the x axis spans the measured
// horizontal-angle range, the y axis the vertical-angle range, with
// bilinear interpolation between grid samples. Values are normalized so
// the grid's peak intensity maps to 1.0.
func Project2D(ph *ies.Photometry, spec Spec) *Raster {
	r := NewRaster(spec)
	scale := normScale(ph)
	hMin, hMax := ph.HorizontalRange()
	vMin, vMax := ph.VerticalRange()

	for y := 0; y < spec.Height; y++ {
		vAngle := axisAngle(vMin, vMax, y, spec.Height)
		for x := 0; x < spec.Width; x++ {
			hAngle := axisAngle(hMin, hMax, x, spec.Width)
			r.setScalar(x, y, sampleBilinear(ph, hAngle, vAngle)*scale)
		}
	}
	return r
}

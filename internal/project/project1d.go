package project

import (
	"github.com/backmassage/ies2hdr/internal/ies"
)

// Project1D renders the distribution as a vertical-angle falloff. The x
// axis spans the measured vertical-angle range; every row is identical
// because the azimuthal dimension is treated as symmetric. Values are
// normalized so the grid's peak intensity maps to 1.0.
func Project1D(ph *ies.Photometry, spec Spec) *Raster {
	r := NewRaster(spec)
	scale := normScale(ph)
	vMin, vMax := ph.VerticalRange()

	for x := 0; x < spec.Width; x++ {
		angle := axisAngle(vMin, vMax, x, spec.Width)
		val := azimuthalMean(ph, angle) * scale
		for y := 0; y < spec.Height; y++ {
			r.setScalar(x, y, val)
		}
	}
	return r
}

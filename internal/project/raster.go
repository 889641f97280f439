// Package project resamples an angular candela grid into a dense raster.
// Two routines exist: Project1D for rotationally symmetric distributions
// (intensity as a function of vertical angle only) and Project2D for
// azimuth-dependent ones. Both fill the whole buffer, never fail for a
// grid satisfying the loader invariants, and are deterministic, which is
// what makes repeated conversions byte-identical downstream.
package project

// Spec is the raster shape. The CLI always uses 128x128x3, but the shape
// stays configurable so the projection contract can be exercised with
// small buffers in tests.
type Spec struct {
	Width    int
	Height   int
	Channels int
}

// DefaultSpec is the fixed shape of production profile textures.
func DefaultSpec() Spec {
	return Spec{Width: 128, Height: 128, Channels: 3}
}

// Raster is a dense row-major, channel-interleaved buffer of non-negative
// radiance values. Output is achromatic: every channel of a pixel holds the
// same scalar.
type Raster struct {
	Spec Spec
	Pix  []float64
}

// NewRaster allocates a zeroed raster of the given shape.
func NewRaster(spec Spec) *Raster {
	return &Raster{
		Spec: spec,
		Pix:  make([]float64, spec.Width*spec.Height*spec.Channels),
	}
}

// At returns the value of channel c at pixel (x, y).
func (r *Raster) At(x, y, c int) float64 {
	return r.Pix[(y*r.Spec.Width+x)*r.Spec.Channels+c]
}

// setScalar writes v to every channel of pixel (x, y).
func (r *Raster) setScalar(x, y int, v float64) {
	base := (y*r.Spec.Width + x) * r.Spec.Channels
	for c := 0; c < r.Spec.Channels; c++ {
		r.Pix[base+c] = v
	}
}

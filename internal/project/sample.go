package project

import (
	"sort"

	"github.com/backmassage/ies2hdr/internal/ies"
)

// normScale returns the factor that maps the grid's peak intensity to 1.0.
// An all-zero grid maps to an all-zero raster.
func normScale(ph *ies.Photometry) float64 {
	max := ph.MaxCandela()
	if max <= 0 {
		return 0
	}
	return 1 / max
}

// axisAngle maps raster coordinate i of an n-texel axis onto [min, max].
func axisAngle(min, max float64, i, n int) float64 {
	if n <= 1 {
		return min
	}
	return min + (max-min)*float64(i)/float64(n-1)
}

// interpolate linearly interpolates value across the sorted angles slice.
// Angles outside the sampled range clamp to the nearest endpoint; repeated
// angles resolve to the lower sample.
func interpolate(angles []float64, value func(i int) float64, angle float64) float64 {
	n := len(angles)
	if n == 1 || angle <= angles[0] {
		return value(0)
	}
	if angle >= angles[n-1] {
		return value(n - 1)
	}
	hi := sort.SearchFloat64s(angles, angle)
	lo := hi - 1
	span := angles[hi] - angles[lo]
	if span <= 0 {
		return value(lo)
	}
	t := (angle - angles[lo]) / span
	return value(lo)*(1-t) + value(hi)*t
}

// sampleVertical interpolates the intensity at vAngle along the vertical
// angle axis for the horizontal sample h.
func sampleVertical(ph *ies.Photometry, h int, vAngle float64) float64 {
	return interpolate(ph.VerticalAngles, func(v int) float64 {
		return ph.CandelaAt(h, v)
	}, vAngle)
}

// sampleBilinear interpolates the intensity at (hAngle, vAngle) across
// both angular axes.
func sampleBilinear(ph *ies.Photometry, hAngle, vAngle float64) float64 {
	return interpolate(ph.HorizontalAngles, func(h int) float64 {
		return sampleVertical(ph, h, vAngle)
	}, hAngle)
}

// azimuthalMean averages the intensity at vAngle over all horizontal
// samples. Used by the 1-D projector, where the distribution has already
// been judged effectively symmetric.
func azimuthalMean(ph *ies.Photometry, vAngle float64) float64 {
	n := ph.HorizontalCount()
	var sum float64
	for h := 0; h < n; h++ {
		sum += sampleVertical(ph, h, vAngle)
	}
	return sum / float64(n)
}

// Package planner decides how a photometric distribution is rasterized:
// collapsed to a 1-D vertical falloff when the distribution is effectively
// rotationally symmetric, or kept as a full 2-D angular map when the
// intensity genuinely varies with azimuth.
package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/backmassage/ies2hdr/internal/ies"
)

// Mode selects the projection routine.
type Mode int

const (
	Mode1D Mode = iota // Vertical falloff only; azimuth treated as symmetric.
	Mode2D             // Full horizontal x vertical angular map.
)

func (m Mode) String() string {
	if m == Mode1D {
		return "1D"
	}
	return "2D"
}

// Heuristic constants carried over unchanged from the shipped converter.
// The penalty term compensates for sharp localized peaks that the
// coefficient of variation alone under-reports. The tuning of all three
// values is empirical; do not adjust them without re-validating against
// the existing texture corpus.
const (
	variationThreshold = 0.15
	peakRatioLimit     = 1.2
	peakPenalty        = 0.5
)

// ErrEmptyGrid is returned when the angular grid has a zero angle count.
// The loader guarantees counts of at least 1, so hitting this means a
// loader-contract violation rather than a bad input file.
var ErrEmptyGrid = errors.New("planner: empty angular grid")

// Plan is the immutable projection decision for one photometric grid.
type Plan struct {
	Mode Mode

	// AvgVariation is the per-vertical-angle average of the azimuthal
	// coefficient of variation plus peak penalties. Zero when only one
	// horizontal angle exists.
	AvgVariation float64

	// Note is a human-readable account of the decision for operator logs.
	Note string
}

// BuildPlan classifies the distribution. For each vertical angle it
// measures the dispersion of the candela values across all horizontal
// angles: the coefficient of variation (population standard deviation over
// mean), plus a fixed penalty when the max/min ratio exceeds peakRatioLimit.
// All-zero slices contribute nothing but stay in the averaging denominator.
// The mean of these per-slice scores must stay below variationThreshold
// (strictly) for the distribution to collapse to 1-D.
func BuildPlan(ph *ies.Photometry) (Plan, error) {
	verticals := ph.VerticalCount()
	horizontals := ph.HorizontalCount()
	if verticals == 0 || horizontals == 0 {
		return Plan{}, ErrEmptyGrid
	}

	if horizontals <= 1 {
		// A single azimuthal sample cannot express azimuthal variation.
		return Plan{Mode: Mode1D, Note: "only one horizontal angle"}, nil
	}

	var total float64
	for v := 0; v < verticals; v++ {
		minVal := math.Inf(1)
		maxVal := math.Inf(-1)
		var sum, sumSq float64

		for h := 0; h < horizontals; h++ {
			val := ph.CandelaAt(h, v)
			if val < minVal {
				minVal = val
			}
			if val > maxVal {
				maxVal = val
			}
			sum += val
			sumSq += val * val
		}

		if sum <= 0 {
			// All-zero slice: contributes 0 but still counts toward
			// the averaging denominator below.
			continue
		}

		mean := sum / float64(horizontals)
		variance := sumSq/float64(horizontals) - mean*mean
		if variance < 0 {
			variance = 0
		}
		total += math.Sqrt(variance) / mean

		if minVal > 0 && maxVal/minVal > peakRatioLimit {
			total += peakPenalty
		}
	}

	avg := total / float64(verticals)
	plan := Plan{AvgVariation: avg}
	if avg < variationThreshold {
		plan.Mode = Mode1D
		plan.Note = fmt.Sprintf("minimal horizontal variation (%.4f)", avg)
	} else {
		plan.Mode = Mode2D
		plan.Note = fmt.Sprintf("significant horizontal variation (%.4f)", avg)
	}
	return plan, nil
}

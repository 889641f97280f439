// Package ies parses IESNA LM-63 photometric files into an angular candela
// grid plus luminaire metadata. The grid is the read-only input to the
// projection pipeline; nothing in this package depends on how the grid is
// later rasterized.
package ies

// PhotometricType is the LM-63 goniometer coordinate system.
type PhotometricType int

const (
	TypeC PhotometricType = 1 // Most architectural luminaires.
	TypeB PhotometricType = 2 // Floodlights.
	TypeA PhotometricType = 3 // Automotive.
)

func (t PhotometricType) String() string {
	switch t {
	case TypeC:
		return "Type C"
	case TypeB:
		return "Type B"
	case TypeA:
		return "Type A"
	}
	return "unknown"
}

// UnitsType is the unit system of the luminaire dimensions.
type UnitsType int

const (
	UnitsFeet   UnitsType = 1
	UnitsMeters UnitsType = 2
)

// Photometry is a parsed LM-63 file: the angular candela grid plus the
// metadata block preceding it.
type Photometry struct {
	// Format is the version line (e.g. "IESNA:LM-63-2002"), empty for
	// 1986-era files that start directly with keyword lines.
	Format string

	// Keywords holds the [KEYWORD] header lines, keyed without brackets.
	Keywords map[string]string

	// TiltMode is "NONE" or "INCLUDE". Tilt factors from INCLUDE blocks
	// are parsed but not applied to the candela values.
	TiltMode string

	LampCount         int
	LumensPerLamp     float64
	CandelaMultiplier float64
	Photometric       PhotometricType
	Units             UnitsType
	Width             float64
	Length            float64
	Height            float64
	BallastFactor     float64
	InputWatts        float64

	// VerticalAngles and HorizontalAngles are the sampled polar and
	// azimuthal angles in degrees, non-decreasing.
	VerticalAngles   []float64
	HorizontalAngles []float64

	// Candela holds physical intensities with the candela multiplier and
	// ballast factor already applied. Layout is horizontal-major:
	// index = h*len(VerticalAngles) + v.
	Candela []float64
}

// VerticalCount returns the number of sampled vertical angles.
func (p *Photometry) VerticalCount() int { return len(p.VerticalAngles) }

// HorizontalCount returns the number of sampled horizontal angles.
func (p *Photometry) HorizontalCount() int { return len(p.HorizontalAngles) }

// CandelaAt returns the intensity at horizontal index h and vertical index v.
func (p *Photometry) CandelaAt(h, v int) float64 {
	return p.Candela[h*len(p.VerticalAngles)+v]
}

// MaxCandela returns the peak intensity of the grid, 0 for an all-zero grid.
func (p *Photometry) MaxCandela() float64 {
	var max float64
	for _, c := range p.Candela {
		if c > max {
			max = c
		}
	}
	return max
}

// VerticalRange returns the first and last sampled vertical angles.
func (p *Photometry) VerticalRange() (min, max float64) {
	return p.VerticalAngles[0], p.VerticalAngles[len(p.VerticalAngles)-1]
}

// HorizontalRange returns the first and last sampled horizontal angles.
func (p *Photometry) HorizontalRange() (min, max float64) {
	return p.HorizontalAngles[0], p.HorizontalAngles[len(p.HorizontalAngles)-1]
}

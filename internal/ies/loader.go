package ies

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors wrapped by Parse failures; match with errors.Is.
var (
	// ErrTruncated means the numeric block ended before all declared
	// angles or candela values were read.
	ErrTruncated = errors.New("ies: unexpected end of file")

	// ErrUnsupportedTilt means the TILT directive references an external
	// tilt file, which this loader does not resolve.
	ErrUnsupportedTilt = errors.New("ies: unsupported TILT mode")
)

// Parse reads an LM-63 photometric file into a Photometry. It accepts the
// 1986, 1991, 1995 and 2002 dialects: an optional IESNA version line,
// [KEYWORD] header lines, a TILT= directive, then the free-form numeric
// block. The candela multiplier and ballast factor are applied while
// loading, so Photometry.Candela holds physical intensities.
func Parse(data []byte) (*Photometry, error) {
	header, numeric, err := splitAtTilt(string(data))
	if err != nil {
		return nil, err
	}

	p := &Photometry{Keywords: map[string]string{}}
	parseHeader(header, p)

	r := &tokenReader{toks: strings.Fields(numeric)}

	tilt, err := r.next("TILT value")
	if err != nil {
		return nil, err
	}
	p.TiltMode = strings.ToUpper(tilt)
	switch p.TiltMode {
	case "NONE":
	case "INCLUDE":
		if err := skipTiltBlock(r); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: TILT=%s", ErrUnsupportedTilt, tilt)
	}

	if err := parseCounts(r, p); err != nil {
		return nil, err
	}
	if err := parseGrid(r, p); err != nil {
		return nil, err
	}
	return p, nil
}

// splitAtTilt separates the keyword header from everything starting at the
// TILT= directive. The TILT value itself is folded into the numeric stream
// so the token reader sees one uniform sequence.
func splitAtTilt(s string) (header []string, numeric string, err error) {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "TILT=") {
			value := strings.TrimSpace(strings.TrimPrefix(trimmed, "TILT="))
			rest := strings.Join(lines[i+1:], "\n")
			return header, value + "\n" + rest, nil
		}
		header = append(header, trimmed)
	}
	return nil, "", errors.New("ies: missing TILT directive")
}

// parseHeader records the version line and [KEYWORD] lines. Unrecognized
// free-text lines (legal in the 1986 dialect) are ignored.
func parseHeader(lines []string, p *Photometry) {
	for _, line := range lines {
		if line == "" {
			continue
		}
		if p.Format == "" && strings.HasPrefix(line, "IESNA") {
			p.Format = line
			continue
		}
		if !strings.HasPrefix(line, "[") {
			continue
		}
		end := strings.Index(line, "]")
		if end <= 1 {
			continue
		}
		key := line[1:end]
		value := strings.TrimSpace(line[end+1:])
		if prev, ok := p.Keywords[key]; ok && prev != "" {
			// [MORE] style continuations append to the previous value.
			value = prev + " " + value
		}
		p.Keywords[key] = value
	}
}

// skipTiltBlock consumes a TILT=INCLUDE block: lamp-to-luminaire geometry,
// the pair count, then that many angles and multiplying factors. The
// factors are validated as numbers but not applied.
func skipTiltBlock(r *tokenReader) error {
	if _, err := r.int("tilt lamp-to-luminaire geometry"); err != nil {
		return err
	}
	pairs, err := r.int("tilt pair count")
	if err != nil {
		return err
	}
	if pairs < 0 {
		return fmt.Errorf("ies: negative tilt pair count %d", pairs)
	}
	for i := 0; i < 2*pairs; i++ {
		if _, err := r.float("tilt table value"); err != nil {
			return err
		}
	}
	return nil
}

// parseCounts reads the two fixed parameter lines that precede the angle
// tables: 10 values (lamps through luminaire height) and 3 values
// (ballast factor, future use, input watts).
func parseCounts(r *tokenReader, p *Photometry) error {
	var err error
	if p.LampCount, err = r.int("lamp count"); err != nil {
		return err
	}
	if p.LumensPerLamp, err = r.float("lumens per lamp"); err != nil {
		return err
	}
	if p.CandelaMultiplier, err = r.float("candela multiplier"); err != nil {
		return err
	}
	if p.CandelaMultiplier <= 0 {
		return fmt.Errorf("ies: candela multiplier must be positive (got %g)", p.CandelaMultiplier)
	}

	nV, err := r.int("vertical angle count")
	if err != nil {
		return err
	}
	nH, err := r.int("horizontal angle count")
	if err != nil {
		return err
	}
	if nV < 1 {
		return fmt.Errorf("ies: vertical angle count must be at least 1 (got %d)", nV)
	}
	if nH < 1 {
		return fmt.Errorf("ies: horizontal angle count must be at least 1 (got %d)", nH)
	}
	p.VerticalAngles = make([]float64, nV)
	p.HorizontalAngles = make([]float64, nH)

	pt, err := r.int("photometric type")
	if err != nil {
		return err
	}
	p.Photometric = PhotometricType(pt)
	ut, err := r.int("units type")
	if err != nil {
		return err
	}
	p.Units = UnitsType(ut)

	if p.Width, err = r.float("luminaire width"); err != nil {
		return err
	}
	if p.Length, err = r.float("luminaire length"); err != nil {
		return err
	}
	if p.Height, err = r.float("luminaire height"); err != nil {
		return err
	}

	if p.BallastFactor, err = r.float("ballast factor"); err != nil {
		return err
	}
	if p.BallastFactor <= 0 {
		return fmt.Errorf("ies: ballast factor must be positive (got %g)", p.BallastFactor)
	}
	if _, err = r.float("future use factor"); err != nil {
		return err
	}
	if p.InputWatts, err = r.float("input watts"); err != nil {
		return err
	}
	return nil
}

// parseGrid reads the vertical angles, horizontal angles, and the
// horizontal-major candela table, scaling values into physical intensities.
func parseGrid(r *tokenReader, p *Photometry) error {
	if err := readAngles(r, p.VerticalAngles, "vertical angle"); err != nil {
		return err
	}
	if err := readAngles(r, p.HorizontalAngles, "horizontal angle"); err != nil {
		return err
	}

	scale := p.CandelaMultiplier * p.BallastFactor
	n := len(p.HorizontalAngles) * len(p.VerticalAngles)
	p.Candela = make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := r.float("candela value")
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("ies: negative candela value %g at index %d", v, i)
		}
		p.Candela[i] = v * scale
	}
	return nil
}

func readAngles(r *tokenReader, dst []float64, what string) error {
	for i := range dst {
		a, err := r.float(what)
		if err != nil {
			return err
		}
		if i > 0 && a < dst[i-1] {
			return fmt.Errorf("ies: %ss must be non-decreasing (%g after %g)", what, a, dst[i-1])
		}
		dst[i] = a
	}
	return nil
}

// tokenReader walks the whitespace-separated numeric block. LM-63 places no
// meaning on line boundaries there, so a flat token stream suffices.
type tokenReader struct {
	toks []string
	pos  int
}

func (r *tokenReader) next(what string) (string, error) {
	if r.pos >= len(r.toks) {
		return "", fmt.Errorf("%w (reading %s)", ErrTruncated, what)
	}
	t := r.toks[r.pos]
	r.pos++
	return t, nil
}

func (r *tokenReader) float(what string) (float64, error) {
	t, err := r.next(what)
	if err != nil {
		return 0, err
	}
	// Some exporters emit comma separators between candela values.
	t = strings.TrimSuffix(t, ",")
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("ies: %s: invalid number %q", what, t)
	}
	return f, nil
}

func (r *tokenReader) int(what string) (int, error) {
	f, err := r.float(what)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

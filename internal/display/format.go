package display

import (
	"fmt"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatAngleSpan returns a compact label for an angle range in degrees,
// e.g. "0-180 deg". Whole-degree bounds are printed without decimals.
func FormatAngleSpan(min, max float64) string {
	return fmt.Sprintf("%s-%s deg", formatAngle(min), formatAngle(max))
}

func formatAngle(a float64) string {
	if a == float64(int64(a)) {
		return fmt.Sprintf("%d", int64(a))
	}
	return fmt.Sprintf("%.1f", a)
}

// FormatCandela returns a compact peak-intensity label, e.g. "1250 cd".
func FormatCandela(cd float64) string {
	if cd >= 10 || cd == 0 {
		return fmt.Sprintf("%.0f cd", cd)
	}
	return fmt.Sprintf("%.2f cd", cd)
}

// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the legacy ies2hdr converter so existing asset
// pipelines keep producing the same 128x128 profile textures.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths. InputPath is the positional argument: a .ies file or a
	// directory of them. OutputDir is optional; when empty each image is
	// written alongside its input.
	InputPath string
	OutputDir string

	// Raster shape. Size is the edge length of the square output image.
	// The channel count is fixed at 3 by the Radiance RGBE format and is
	// not user-configurable.
	Size int // Default: 128.

	// Behavior flags.
	DryRun       bool
	SkipExisting bool    // Skip inputs whose output image already exists.
	Preview      bool    // Also write an 8-bit PNG preview per image.
	PreviewScale int     // Preview upscale factor. Default: 2.
	PreviewGamma float64 // Display gamma applied to previews. Default: 2.2.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Validate inputs and exit without writing images.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// converter. Used as the base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Size:         128,
		PreviewScale: 2,
		PreviewGamma: 2.2,
		ColorMode:    ColorAuto,
	}
}

// NormalizePathArg strips trailing slashes from a path argument.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizePathArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and numeric ranges, and requires the
// positional input path.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Size < 2 {
		return fmt.Errorf("image size must be at least 2 (got %d)", c.Size)
	}
	if c.PreviewScale < 1 {
		return fmt.Errorf("preview scale must be at least 1 (got %d)", c.PreviewScale)
	}
	if c.PreviewGamma <= 0 {
		return fmt.Errorf("preview gamma must be positive (got %g)", c.PreviewGamma)
	}

	if c.InputPath == "" {
		return errors.New("need a path to a .ies file or directory")
	}
	return nil
}

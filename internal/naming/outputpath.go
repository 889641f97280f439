// Package naming derives output image paths from input photometric paths
// and resolves name collisions when multiple inputs land in one output
// directory.
package naming

import (
	"path/filepath"
	"strings"
)

// SplitPath decomposes a path into its directory, base name without
// extension, and extension (with leading dot, possibly empty).
func SplitPath(path string) (dir, base, ext string) {
	dir = filepath.Dir(path)
	ext = filepath.Ext(path)
	base = strings.TrimSuffix(filepath.Base(path), ext)
	return dir, base, ext
}

// OutputPath returns the .hdr path for input: same directory and base name
// with the photometric extension replaced. A non-empty outputDir rebases
// the image into that directory instead.
func OutputPath(input, outputDir string) string {
	dir, base, _ := SplitPath(input)
	if outputDir != "" {
		dir = outputDir
	}
	return filepath.Join(dir, base+".hdr")
}

// PreviewPath returns the PNG preview path for an output image path.
func PreviewPath(outputPath string) string {
	dir, base, _ := SplitPath(outputPath)
	return filepath.Join(dir, base+".png")
}

package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const photometricExt = ".ies"

// IsPhotometricFile reports whether path names a photometric file by
// extension (case-insensitive). The CLI dispatches on this: a .ies
// argument is converted directly, anything else is treated as a directory.
func IsPhotometricFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), photometricExt)
}

// Discover lists the photometric files directly inside dir. Enumeration is
// non-recursive and the result is sorted lexicographically for
// deterministic processing order.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsPhotometricFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

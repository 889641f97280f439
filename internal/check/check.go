// Package check implements the --check validation mode: every input is
// parsed and analyzed, and a photometry summary is reported, but no image
// is written. Useful for vetting a directory of vendor files before a
// batch conversion.
package check

import (
	"os"
	"path/filepath"

	"github.com/backmassage/ies2hdr/internal/config"
	"github.com/backmassage/ies2hdr/internal/display"
	"github.com/backmassage/ies2hdr/internal/ies"
	"github.com/backmassage/ies2hdr/internal/pipeline"
	"github.com/backmassage/ies2hdr/internal/planner"
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck parses each photometric file reachable from cfg.InputPath and
// logs its photometry and the projection mode it would get. Returns false
// when any file fails to parse.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Photometric Check ===")

	var files []string
	if pipeline.IsPhotometricFile(cfg.InputPath) {
		files = []string{cfg.InputPath}
	} else {
		var err error
		files, err = pipeline.Discover(cfg.InputPath)
		if err != nil {
			log.Error("File discovery failed: %v", err)
			return false
		}
		if len(files) == 0 {
			log.Warn("No .ies files found in %s", cfg.InputPath)
			return true
		}
	}

	ok := true
	for _, path := range files {
		if !checkFile(cfg, log, path) {
			ok = false
		}
	}
	return ok
}

// checkFile validates one file and logs a one-line summary.
func checkFile(cfg *config.Config, log Logger, path string) bool {
	basename := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("%s: %v", basename, err)
		return false
	}

	ph, err := ies.Parse(data)
	if err != nil {
		log.Error("%s: %v", basename, err)
		return false
	}

	plan, err := planner.BuildPlan(ph)
	if err != nil {
		log.Error("%s: %v", basename, err)
		return false
	}

	vMin, vMax := ph.VerticalRange()
	log.Success("%s: %s, %dx%d grid, vertical %s, peak %s -> %s",
		basename, ph.Photometric,
		ph.HorizontalCount(), ph.VerticalCount(),
		display.FormatAngleSpan(vMin, vMax),
		display.FormatCandela(ph.MaxCandela()),
		plan.Mode)
	log.Debug(cfg.Verbose, "  %s", plan.Note)
	return true
}

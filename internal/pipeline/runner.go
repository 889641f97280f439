// Package pipeline orchestrates file discovery, per-file conversion, and
// batch summary reporting. Conversion of one file is atomic from the
// caller's perspective: every stage succeeds, or the file is skipped with
// a logged reason and the batch moves on.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/ies2hdr/internal/config"
	"github.com/backmassage/ies2hdr/internal/display"
	"github.com/backmassage/ies2hdr/internal/ies"
	"github.com/backmassage/ies2hdr/internal/naming"
	"github.com/backmassage/ies2hdr/internal/planner"
	"github.com/backmassage/ies2hdr/internal/project"
	"github.com/backmassage/ies2hdr/internal/radiance"
)

// Logger is the minimal logging interface the pipeline needs.
// *logging.Logger satisfies it; tests supply a recorder so decision and
// error reporting can be asserted without capturing process output.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Result carries the outcome of one successful (or dry-run) conversion.
type Result struct {
	Plan        planner.Plan
	OutputPath  string
	OutputBytes int64
}

// Run is the top-level batch entry point. The positional path is
// dispatched by extension: a .ies file is converted alone, anything else
// is treated as a directory whose photometric files are converted
// sequentially. Per-file failures are isolated; the batch always runs to
// completion.
func Run(cfg *config.Config, log Logger) RunStats {
	var stats RunStats

	var files []string
	if IsPhotometricFile(cfg.InputPath) {
		files = []string{cfg.InputPath}
	} else {
		var err error
		files, err = Discover(cfg.InputPath)
		if err != nil {
			log.Error("File discovery failed: %v", err)
			return stats
		}
		if len(files) == 0 {
			log.Warn("No %s files found in %s", photometricExt, cfg.InputPath)
			return stats
		}
	}

	stats.Total = len(files)
	resolver := naming.NewCollisionResolver()

	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1
		processFile(cfg, log, path, &stats, resolver)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one photometric file: resolve output path, honor
// skip-existing, convert, and update stats.
func processFile(cfg *config.Config, log Logger, path string, stats *RunStats, resolver *naming.CollisionResolver) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	outputPath := naming.OutputPath(path, cfg.OutputDir)
	if cfg.OutputDir != "" {
		outputPath = resolver.Resolve(path, outputPath)
	}

	if cfg.SkipExisting {
		if _, err := os.Stat(outputPath); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(outputPath))
			stats.Skipped++
			return
		}
	}

	result, err := ConvertFile(cfg, log, path, outputPath)
	if err != nil {
		log.Error("%v", err)
		stats.Failed++
		return
	}

	stats.Converted++
	switch result.Plan.Mode {
	case planner.Mode1D:
		stats.OneD++
	default:
		stats.TwoD++
	}

	if fi, err := os.Stat(path); err == nil {
		stats.TotalInputBytes += fi.Size()
	}
	stats.TotalOutputBytes += result.OutputBytes

	if cfg.DryRun {
		log.Success("[DRY] Would write %s (%s)", filepath.Base(outputPath), result.Plan.Mode)
		return
	}
	log.Success("Wrote %s (%s, %s)", filepath.Base(outputPath), result.Plan.Mode, display.FormatBytes(result.OutputBytes))
}

// ConvertFile converts one photometric file end to end:
// read -> parse -> plan -> project -> encode. The output file handle is
// released on every path; a failed encode removes the partial image. The
// whole sequence is synchronous and allocates its own grid and raster, so
// nothing is shared between files in a batch.
func ConvertFile(cfg *config.Config, log Logger, inputPath, outputPath string) (Result, error) {
	basename := filepath.Base(inputPath)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", basename, err)
	}

	ph, err := ies.Parse(data)
	if err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", basename, err)
	}

	plan, err := planner.BuildPlan(ph)
	if err != nil {
		return Result{}, fmt.Errorf("analyze %s: %w", basename, err)
	}
	log.Info("  Mode: %s (%s)", plan.Mode, plan.Note)

	result := Result{Plan: plan, OutputPath: outputPath}
	if cfg.DryRun {
		return result, nil
	}

	spec := project.Spec{Width: cfg.Size, Height: cfg.Size, Channels: 3}
	var raster *project.Raster
	if plan.Mode == planner.Mode1D {
		raster = project.Project1D(ph, spec)
	} else {
		raster = project.Project2D(ph, spec)
	}

	if err := writeImage(outputPath, raster); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", filepath.Base(outputPath), err)
	}

	if fi, err := os.Stat(outputPath); err == nil {
		result.OutputBytes = fi.Size()
	}

	if cfg.Preview {
		previewPath := naming.PreviewPath(outputPath)
		if err := writePreview(previewPath, raster, cfg.PreviewScale, cfg.PreviewGamma); err != nil {
			// Previews are a convenience; a failure never fails the conversion.
			log.Warn("Preview failed: %v", err)
		} else {
			log.Debug(cfg.Verbose, "  Preview: %s", filepath.Base(previewPath))
		}
	}

	return result, nil
}

// writeImage encodes the raster into outputPath, removing the partial file
// on encode failure so no inconsistent artifact is left behind.
func writeImage(path string, raster *project.Raster) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := radiance.WriteHDR(out, raster); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func writePreview(path string, raster *project.Raster, scale int, gamma float64) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := radiance.WritePreviewPNG(out, raster, scale, gamma); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log Logger, stats *RunStats) {
	log.Info("Found %d file(s)", stats.Total)
	log.Info("Output: %dx%d Radiance HDR (linear, unit exposure)", cfg.Size, cfg.Size)
	if cfg.OutputDir != "" {
		log.Info("Output directory: %s", cfg.OutputDir)
	}
	if cfg.Preview {
		log.Info("Previews: PNG at %dx scale, gamma %.1f", cfg.PreviewScale, cfg.PreviewGamma)
	}
	if cfg.SkipExisting {
		log.Info("Existing outputs are skipped")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be written")
	}
	log.Info("")
}

func logSummary(cfg *config.Config, log Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d converted, %d skipped, %d failed", stats.Converted, stats.Skipped, stats.Failed)
	if stats.Converted > 0 {
		log.Info("  Modes: %d x 1D, %d x 2D", stats.OneD, stats.TwoD)
	}
	if cfg.DryRun {
		return
	}
	if stats.TotalOutputBytes > 0 {
		log.Info("  Output total: %s", display.FormatBytes(stats.TotalOutputBytes))
	}
}

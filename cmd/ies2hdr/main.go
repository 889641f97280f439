// Command ies2hdr converts IES photometric files into Radiance HDR
// profile textures.
//
// It parses flags, validates configuration, and either validates inputs
// (--check) or runs the conversion pipeline over a single file or a
// directory of files.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/ies2hdr/internal/check"
	"github.com/backmassage/ies2hdr/internal/config"
	"github.com/backmassage/ies2hdr/internal/display"
	"github.com/backmassage/ies2hdr/internal/logging"
	"github.com/backmassage/ies2hdr/internal/pipeline"
)

// version is injected at build time via -ldflags. When built with plain
// "go build" it retains its default.
var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr. Only usage and configuration errors produce a failure exit
	// code; per-file conversion failures are reported and leave the
	// process exit status at 0.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "ies2hdr: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ies2hdr: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ies2hdr: %v\n", err)
		return 1
	}
	defer log.Close()

	// Any fault that escapes the pipeline is reported here and the
	// process still exits cleanly.
	defer func() {
		if r := recover(); r != nil {
			log.Error("Unexpected fault: %v", r)
		}
	}()

	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			log.Error("Cannot create output directory: %s", cfg.OutputDir)
			return 1
		}
	}

	log.Info("=== ies2hdr v%s ===", version)
	log.Info("In: %s", cfg.InputPath)
	log.Info("")

	pipeline.Run(&cfg, log)
	return 0
}

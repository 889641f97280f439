package config

// This file implements CLI flag parsing and help text. The converter keeps
// the legacy single-positional-argument interface; flags only tune output
// placement, preview generation, and display behavior.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing path).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("ies2hdr", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Exit-triggering and color-override flags are captured first and
	// applied after Parse, so Config defaults hold unless the user passes
	// the flag.
	var overrides overrideFlags

	fs.StringVar(&cfg.OutputDir, "o", "", "Output directory (default: alongside each input)")
	fs.StringVar(&cfg.OutputDir, "out", "", "Same as -o")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "Edge length of the square output image")

	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Report decisions only; do not write images")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", false, "Skip inputs whose output image already exists")
	fs.BoolVar(&cfg.Preview, "preview", false, "Also write an 8-bit PNG preview per image")
	fs.IntVar(&cfg.PreviewScale, "preview-scale", cfg.PreviewScale, "Preview upscale factor")
	fs.Float64Var(&cfg.PreviewGamma, "preview-gamma", cfg.PreviewGamma, "Display gamma applied to previews")

	fs.BoolVar(&overrides.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&overrides.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Validate photometric files and exit without converting")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")

	fs.BoolVar(&overrides.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&overrides.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&overrides.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&overrides.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if overrides.noColor {
		cfg.ColorMode = ColorNever
	} else if overrides.forceColor {
		cfg.ColorMode = ColorAlways
	}

	if overrides.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if overrides.showVersion {
		fmt.Fprintln(os.Stdout, "ies2hdr v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// overrideFlags holds boolean flags that are applied after Parse. These
// either override a default (color mode) or trigger exit (help, version).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// parsePositionalArgs sets InputPath from the single positional argument.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) != 1 {
		return fmt.Errorf("need exactly one path to a .ies file or directory")
	}
	cfg.InputPath = NormalizePathArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "ies2hdr v" + version + " - IES photometric to Radiance HDR converter"},
		{"", ""},
		{"  ies2hdr [OPTIONS] <file.ies | directory>", ""},
		{"", ""},
		{"Output", ""},
		{"  -o, --out <dir>", "Output directory (default: alongside each input)"},
		{"  --size <n>", "Edge length of the square output image (default: 128)"},
		{"  --skip-existing", "Skip inputs whose output image already exists"},
		{"  -d, --dry-run", "Report decisions only; do not write images"},
		{"", ""},
		{"Preview", ""},
		{"  --preview", "Also write an 8-bit PNG preview per image"},
		{"  --preview-scale <n>", "Preview upscale factor (default: 2)"},
		{"  --preview-gamma <g>", "Display gamma applied to previews (default: 2.2)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Validate photometric files without converting"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

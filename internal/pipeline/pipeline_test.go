package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/ies2hdr/internal/config"
	"github.com/backmassage/ies2hdr/internal/planner"
)

// Rotationally symmetric file: one horizontal angle, collapses to 1D.
const sampleSymmetric = `IESNA:LM-63-2002
[TEST] SYM-1
TILT=NONE
1 5000 1 5 1 1 2 0.30 0.30 0.15
1.0 1.0 100
0 22.5 45 67.5 90
0
1000 800 500 200 0
`

// Strongly azimuth-dependent file: alternating bright/dim azimuths.
const sampleAsymmetric = `IESNA:LM-63-2002
[TEST] ASYM-1
TILT=NONE
1 1000 1 3 4 1 2 0.30 0.30 0.15
1.0 1.0 50
0 45 90
0 90 180 270
100 80 20
10 8 2
100 80 20
10 8 2
`

const sampleMalformed = `IESNA:LM-63-2002
[TEST] BAD-1
TILT=NONE
1 1000 1 5 1 1 2 0.30 0.30 0.15
1.0 1.0 100
0 22.5 45 67.5 90
0
1000 800
`

// recordingLogger captures log lines so decision and error reporting can
// be asserted without process output.
type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+": "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Info(f string, a ...interface{})    { r.add("INFO", f, a...) }
func (r *recordingLogger) Success(f string, a ...interface{}) { r.add("SUCCESS", f, a...) }
func (r *recordingLogger) Warn(f string, a ...interface{})    { r.add("WARN", f, a...) }
func (r *recordingLogger) Error(f string, a ...interface{})   { r.add("ERROR", f, a...) }

func (r *recordingLogger) Debug(verbose bool, f string, a ...interface{}) {
	if verbose {
		r.add("DEBUG", f, a...)
	}
}

func (r *recordingLogger) contains(substr string) bool {
	for _, l := range r.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(input string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.InputPath = input
	cfg.ColorMode = config.ColorNever
	return &cfg
}

func TestIsPhotometricFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"lamp.ies", true},
		{"LAMP.IES", true},
		{"dir/lamp.Ies", true},
		{"lamp.txt", false},
		{"lamp", false},
		{"fixtures", false},
	}
	for _, tt := range tests {
		if got := IsPhotometricFile(tt.path); got != tt.want {
			t.Errorf("IsPhotometricFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "b.ies", sampleSymmetric)
	writeFixture(t, dir, "A.IES", sampleSymmetric)
	writeFixture(t, dir, "notes.txt", "not photometric")
	if err := os.Mkdir(filepath.Join(dir, "nested.ies"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFixture(t, filepath.Join(dir, "nested.ies"), "c.ies", sampleSymmetric)

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{filepath.Join(dir, "A.IES"), filepath.Join(dir, "b.ies")}
	if len(files) != len(want) {
		t.Fatalf("Discover = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nowhere")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestConvertFile_Symmetric(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "lamp.ies", sampleSymmetric)
	output := filepath.Join(dir, "lamp.hdr")
	log := &recordingLogger{}

	result, err := ConvertFile(testConfig(input), log, input, output)
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}

	if result.Plan.Mode != planner.Mode1D {
		t.Errorf("Mode = %s, want 1D", result.Plan.Mode)
	}
	if result.OutputBytes <= 0 {
		t.Errorf("OutputBytes = %d, want > 0", result.OutputBytes)
	}
	if !log.contains("Mode: 1D") {
		t.Errorf("missing decision line in logs: %v", log.lines)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("#?")) {
		t.Errorf("output is not a Radiance file, starts with %q", data[:2])
	}
}

func TestConvertFile_AsymmetricGoes2D(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "flood.ies", sampleAsymmetric)
	log := &recordingLogger{}

	result, err := ConvertFile(testConfig(input), log, input, filepath.Join(dir, "flood.hdr"))
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if result.Plan.Mode != planner.Mode2D {
		t.Errorf("Mode = %s, want 2D (avg %g)", result.Plan.Mode, result.Plan.AvgVariation)
	}
}

func TestConvertFile_Deterministic(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "lamp.ies", sampleAsymmetric)
	log := &recordingLogger{}
	cfg := testConfig(input)

	outA := filepath.Join(dir, "a.hdr")
	outB := filepath.Join(dir, "b.hdr")
	if _, err := ConvertFile(cfg, log, input, outA); err != nil {
		t.Fatal(err)
	}
	if _, err := ConvertFile(cfg, log, input, outB); err != nil {
		t.Fatal(err)
	}

	a, _ := os.ReadFile(outA)
	b, _ := os.ReadFile(outB)
	if len(a) == 0 || !bytes.Equal(a, b) {
		t.Errorf("repeated conversions differ: %d vs %d bytes", len(a), len(b))
	}
}

func TestConvertFile_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "lamp.ies", sampleSymmetric)
	output := filepath.Join(dir, "lamp.hdr")
	cfg := testConfig(input)
	cfg.DryRun = true

	result, err := ConvertFile(cfg, &recordingLogger{}, input, output)
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if result.Plan.Mode != planner.Mode1D {
		t.Errorf("dry run still plans: Mode = %s", result.Plan.Mode)
	}
	if result.OutputBytes != 0 {
		t.Errorf("OutputBytes = %d, want 0", result.OutputBytes)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("dry run must not write the output file")
	}
}

func TestConvertFile_Preview(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "lamp.ies", sampleSymmetric)
	output := filepath.Join(dir, "lamp.hdr")
	cfg := testConfig(input)
	cfg.Preview = true

	if _, err := ConvertFile(cfg, &recordingLogger{}, input, output); err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "lamp.png")); err != nil {
		t.Errorf("preview not written: %v", err)
	}
}

func TestConvertFile_ParseFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "bad.ies", sampleMalformed)
	output := filepath.Join(dir, "bad.hdr")

	_, err := ConvertFile(testConfig(input), &recordingLogger{}, input, output)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "bad.ies") {
		t.Errorf("error should name the input file: %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("failed conversion must not leave an output file")
	}
}

func TestConvertFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := ConvertFile(testConfig("gone.ies"), &recordingLogger{},
		filepath.Join(dir, "gone.ies"), filepath.Join(dir, "gone.hdr"))
	if err == nil {
		t.Fatal("expected read error")
	}
}

func TestRun_BatchIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a-good.ies", sampleSymmetric)
	writeFixture(t, dir, "b-bad.ies", sampleMalformed)
	writeFixture(t, dir, "c-good.ies", sampleAsymmetric)

	log := &recordingLogger{}
	stats := Run(testConfig(dir), log)

	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Converted != 2 {
		t.Errorf("Converted = %d, want 2", stats.Converted)
	}
	if stats.Failed != 1 {
		t.Errorf("Failed = %d, want 1", stats.Failed)
	}
	if stats.OneD != 1 || stats.TwoD != 1 {
		t.Errorf("mode tallies = %d x 1D, %d x 2D, want 1 each", stats.OneD, stats.TwoD)
	}

	// Both good conversions happened despite the failure between them.
	for _, name := range []string{"a-good.hdr", "c-good.hdr"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if !log.contains("b-bad.ies") {
		t.Errorf("failure not logged: %v", log.lines)
	}
}

func TestRun_SingleFileArgument(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "solo.ies", sampleSymmetric)

	stats := Run(testConfig(input), &recordingLogger{})
	if stats.Total != 1 || stats.Converted != 1 {
		t.Errorf("stats = %+v, want one converted file", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "solo.hdr")); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRun_OutputDirWithCollision(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "in")
	outDir := filepath.Join(dir, "out")
	for _, d := range []string{inDir, outDir} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	// Extension case differs but the base name does not, so both inputs
	// request out/lamp.hdr once rebased.
	writeFixture(t, inDir, "lamp.IES", sampleSymmetric)
	writeFixture(t, inDir, "lamp.ies", sampleAsymmetric)

	cfg := testConfig(inDir)
	cfg.OutputDir = outDir
	stats := Run(cfg, &recordingLogger{})

	if stats.Converted != 2 {
		t.Fatalf("Converted = %d, want 2", stats.Converted)
	}
	for _, name := range []string{"lamp.hdr", "lamp - dup1.hdr"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestRun_SkipExisting(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "lamp.ies", sampleSymmetric)
	writeFixture(t, dir, "lamp.hdr", "pre-existing")

	cfg := testConfig(input)
	cfg.SkipExisting = true
	log := &recordingLogger{}
	stats := Run(cfg, log)

	if stats.Skipped != 1 || stats.Converted != 0 {
		t.Errorf("stats = %+v, want one skipped", stats)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "lamp.hdr"))
	if string(data) != "pre-existing" {
		t.Error("skip-existing must not overwrite the output")
	}
}

func TestRun_DryRunBatch(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.ies", sampleSymmetric)
	writeFixture(t, dir, "b.ies", sampleAsymmetric)

	cfg := testConfig(dir)
	cfg.DryRun = true
	log := &recordingLogger{}
	stats := Run(cfg, log)

	if stats.Converted != 2 {
		t.Errorf("Converted = %d, want 2", stats.Converted)
	}
	if !log.contains("[DRY]") {
		t.Errorf("missing dry-run marker: %v", log.lines)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("dry run wrote files: %d entries", len(entries))
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	log := &recordingLogger{}
	stats := Run(testConfig(t.TempDir()), log)

	if stats.Total != 0 {
		t.Errorf("Total = %d, want 0", stats.Total)
	}
	if !log.contains("No .ies files") {
		t.Errorf("missing empty-directory warning: %v", log.lines)
	}
}

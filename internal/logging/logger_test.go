package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/ies2hdr/internal/config"
)

func newTestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	return &cfg
}

func TestNewLogger_NoFile(t *testing.T) {
	log, err := NewLogger(newTestConfig())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer log.Close()

	if log.file != nil {
		t.Error("expected no log file to be opened")
	}

	// All levels must be safe without a file sink.
	log.Info("info %d", 1)
	log.Success("done")
	log.Warn("careful")
	log.Error("broken")
	log.Debug(false, "hidden")
	log.Debug(true, "shown")
}

func TestNewLogger_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")
	cfg := newTestConfig()
	cfg.LogFile = path

	log, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	log.Info("converted %s", "lamp.ies")
	log.Error("failed %s", "broken.ies")
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "[INFO] converted lamp.ies") {
		t.Errorf("log file missing INFO line:\n%s", content)
	}
	if !strings.Contains(content, "[ERROR] failed broken.ies") {
		t.Errorf("log file missing ERROR line:\n%s", content)
	}
	if strings.Contains(content, "\033[") {
		t.Error("log file must never contain ANSI escapes")
	}
}

func TestNewLogger_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	cfg := newTestConfig()
	cfg.LogFile = path

	for i := 0; i < 2; i++ {
		log, err := NewLogger(cfg)
		if err != nil {
			t.Fatalf("NewLogger: %v", err)
		}
		log.Info("run %d", i)
		log.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "run 0") || !strings.Contains(string(data), "run 1") {
		t.Errorf("expected both runs in log file:\n%s", data)
	}
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	log := &Logger{}
	if err := log.Close(); err != nil {
		t.Errorf("Close on fileless logger: %v", err)
	}
	// Double close is also a no-op.
	if err := log.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

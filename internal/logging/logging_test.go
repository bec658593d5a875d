package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_NoPathIsNop(t *testing.T) {
	log, err := New(Config{Level: "debug"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if log.Core().Enabled(0) {
		t.Error("expected a disabled no-op core")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noteworthy.log")

	log, err := New(Config{Level: "debug", OutputPath: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Debug("index built")
	log.Sync()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(content), "index built") {
		t.Errorf("log does not contain message: %q", content)
	}
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noteworthy.log")

	log, err := New(Config{Level: "chatty", OutputPath: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Debug("hidden")
	log.Info("shown")
	log.Sync()

	content, _ := os.ReadFile(path)
	if strings.Contains(string(content), "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if !strings.Contains(string(content), "shown") {
		t.Error("info entry should be written")
	}
}

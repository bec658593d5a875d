package transport

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"noteworthy/internal/domain"
)

func TestCommandSyncer_Unavailable(t *testing.T) {
	for _, line := range []string{"", "   "} {
		s := NewCommandSyncer(line)
		if s.IsAvailable() {
			t.Errorf("%q should not be available", line)
		}
		if err := s.Sync(context.Background()); !errors.Is(err, domain.ErrSyncUnavailable) {
			t.Errorf("expected ErrSyncUnavailable, got %v", err)
		}
	}
}

func TestCommandSyncer_RunsInWorkDir(t *testing.T) {
	if _, err := exec.LookPath("touch"); err != nil {
		t.Skip("touch not available")
	}

	dir := t.TempDir()
	s := NewCommandSyncer("touch synced.metadata", WithWorkDir(dir))

	if err := s.Sync(context.Background()); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "synced.metadata")); err != nil {
		t.Errorf("expected command to run in work dir: %v", err)
	}
}

func TestCommandSyncer_Failure(t *testing.T) {
	if _, err := exec.LookPath("ls"); err != nil {
		t.Skip("ls not available")
	}

	s := NewCommandSyncer("ls " + filepath.Join(t.TempDir(), "does-not-exist"))
	err := s.Sync(context.Background())
	if err == nil {
		t.Fatal("expected error from failing command")
	}
	if !strings.HasPrefix(err.Error(), "ls:") {
		t.Errorf("expected error to name the command, got %v", err)
	}
}

func TestCommandSyncer_MissingBinary(t *testing.T) {
	s := NewCommandSyncer("noteworthy-no-such-binary --flag")
	if err := s.Sync(context.Background()); !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected exec.ErrNotFound, got %v", err)
	}
}

func TestCommandSyncer_Timeout(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	s := NewCommandSyncer("sleep 5", WithTimeout(50*time.Millisecond))
	start := time.Now()
	if err := s.Sync(context.Background()); err == nil {
		t.Fatal("expected timeout error")
	}
	if time.Since(start) > 3*time.Second {
		t.Error("timeout did not stop the command")
	}
}

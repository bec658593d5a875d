package config

import (
	"os"
	"path/filepath"
	"testing"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	s := FromLookup(lookupFrom(nil))

	if s.DescriptorDir != DefaultDescriptorDir {
		t.Errorf("expected default descriptor dir, got %q", s.DescriptorDir)
	}
	if s.ShowHiddenFiles {
		t.Error("hidden files should be off by default")
	}
	if s.SyncCommand != "" {
		t.Errorf("expected no sync command, got %q", s.SyncCommand)
	}
	if s.Theme != DefaultTheme() {
		t.Errorf("expected default theme, got %+v", s.Theme)
	}
	if s.LogLevel != DefaultLogLevel {
		t.Errorf("expected default log level, got %q", s.LogLevel)
	}
}

func TestFromLookup_Overrides(t *testing.T) {
	s := FromLookup(lookupFrom(map[string]string{
		EnvLocalRoot:                "/srv/notes",
		EnvDescriptorDir:            "/tmp/xochitl",
		EnvShowHidden:               "true",
		EnvSyncCommand:              "rsync -a tablet:/x /tmp/xochitl",
		EnvThemePrefix + "HIGHLIGHT": "#00FF00",
	}))

	if s.LocalRoot != "/srv/notes" {
		t.Errorf("LocalRoot = %q", s.LocalRoot)
	}
	if s.DescriptorDir != "/tmp/xochitl" {
		t.Errorf("DescriptorDir = %q", s.DescriptorDir)
	}
	if !s.ShowHiddenFiles {
		t.Error("expected hidden files on")
	}
	if s.SyncCommand != "rsync -a tablet:/x /tmp/xochitl" {
		t.Errorf("SyncCommand = %q", s.SyncCommand)
	}
	if s.Theme.Highlight != "#00FF00" {
		t.Errorf("Highlight = %q", s.Theme.Highlight)
	}
}

func TestFromLookup_BadBoolKeepsDefault(t *testing.T) {
	s := FromLookup(lookupFrom(map[string]string{EnvShowHidden: "sometimes"}))
	if s.ShowHiddenFiles {
		t.Error("unparseable flag should leave hidden files off")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	if got := ExpandHome("~/docs"); got != filepath.Join(home, "docs") {
		t.Errorf("got %q", got)
	}
	if got := ExpandHome("~"); got != home {
		t.Errorf("got %q", got)
	}
	if got := ExpandHome("/abs/~x"); got != "/abs/~x" {
		t.Errorf("got %q", got)
	}
	if got := ExpandHome("~user/x"); got != "~user/x" {
		t.Errorf("got %q", got)
	}
}

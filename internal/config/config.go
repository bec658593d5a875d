package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultDescriptorDir = "./raw-files"
	DefaultLogLevel      = "info"
)

// Environment variables read by Load
const (
	EnvLocalRoot     = "NOTEWORTHY_LOCAL_ROOT"
	EnvDescriptorDir = "NOTEWORTHY_DESCRIPTORS"
	EnvShowHidden    = "NOTEWORTHY_SHOW_HIDDEN"
	EnvSyncCommand   = "NOTEWORTHY_SYNC_CMD"
	EnvLogPath       = "NOTEWORTHY_LOG"
	EnvLogLevel      = "NOTEWORTHY_LOG_LEVEL"
	EnvThemePrefix   = "NOTEWORTHY_THEME_"
)

// Theme holds the colors used by the panes and notifications, as hex strings
type Theme struct {
	Foreground string
	Background string
	Highlight  string
	Success    string
	Alert      string
}

// DefaultTheme returns the built-in colors
func DefaultTheme() Theme {
	return Theme{
		Foreground: "#FFFFFF",
		Background: "#1F2937",
		Highlight:  "#F59E0B",
		Success:    "#10B981",
		Alert:      "#EF4444",
	}
}

// Settings is the read-only configuration threaded through the application
type Settings struct {
	LocalRoot       string
	DescriptorDir   string
	ShowHiddenFiles bool
	SyncCommand     string
	LogPath         string
	LogLevel        string
	Theme           Theme
}

// Load reads settings from the environment, falling back to defaults
func Load() Settings {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds settings from an environment lookup function
func FromLookup(lookup func(string) (string, bool)) Settings {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	s := Settings{
		LocalRoot:     ExpandHome(get(EnvLocalRoot, defaultLocalRoot())),
		DescriptorDir: ExpandHome(get(EnvDescriptorDir, DefaultDescriptorDir)),
		SyncCommand:   get(EnvSyncCommand, ""),
		LogPath:       ExpandHome(get(EnvLogPath, "")),
		LogLevel:      get(EnvLogLevel, DefaultLogLevel),
		Theme:         DefaultTheme(),
	}

	if show, err := strconv.ParseBool(get(EnvShowHidden, "false")); err == nil {
		s.ShowHiddenFiles = show
	}

	s.Theme.Foreground = get(EnvThemePrefix+"FOREGROUND", s.Theme.Foreground)
	s.Theme.Background = get(EnvThemePrefix+"BACKGROUND", s.Theme.Background)
	s.Theme.Highlight = get(EnvThemePrefix+"HIGHLIGHT", s.Theme.Highlight)
	s.Theme.Success = get(EnvThemePrefix+"SUCCESS", s.Theme.Success)
	s.Theme.Alert = get(EnvThemePrefix+"ALERT", s.Theme.Alert)

	return s
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func defaultLocalRoot() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return string(filepath.Separator)
}

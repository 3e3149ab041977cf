// Package prefs handles foyer user preferences persistence.
// Preferences are stored in ~/.config/foyer/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for foyer. Theme is always one of
// "dark" or "light"; anything else found on disk is coerced to dark.
type Prefs struct {
	Theme           string `toml:"theme"`
	NoticeDismissed bool   `toml:"notice_dismissed"`
}

const (
	defaultPrefsPath = "~/.config/foyer/prefs.toml"

	// ThemeDark and ThemeLight are the only valid theme values.
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// NormalizeTheme coerces any stored theme value to one of the two
// valid themes. Unknown or empty values become dark.
func NormalizeTheme(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeLight:
		return ThemeLight
	default:
		return ThemeDark
	}
}

// Load reads preferences from the given path. Any storage failure
// (missing file, unreadable file, malformed TOML) degrades to defaults
// rather than erroring: preferences are best-effort.
func Load(path string) Prefs {
	defaults := Prefs{Theme: ThemeDark}

	resolved, err := resolvePath(path)
	if err != nil {
		return defaults
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults
		}
		return defaults // storage blocked; session-only prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return defaults
	}

	p := defaults
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return defaults
	}

	p.Theme = NormalizeTheme(p.Theme)
	return p
}

// Save writes preferences to the given path, creating directories as
// needed. Callers treat a failed save as session-only persistence.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	p.Theme = NormalizeTheme(p.Theme)

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

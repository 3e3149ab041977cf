package ui

import (
	"testing"

	"github.com/softglow/foyer/internal/prefs"
)

func TestGetTheme(t *testing.T) {
	if got := GetTheme(prefs.ThemeDark); got.Name != prefs.ThemeDark {
		t.Errorf("GetTheme(dark).Name = %q, want %q", got.Name, prefs.ThemeDark)
	}
	if got := GetTheme(prefs.ThemeLight); got.Name != prefs.ThemeLight {
		t.Errorf("GetTheme(light).Name = %q, want %q", got.Name, prefs.ThemeLight)
	}
}

func TestGetThemeUnknownFallsBackToDark(t *testing.T) {
	got := GetTheme("solarized")
	if got.Name != prefs.ThemeDark {
		t.Errorf("GetTheme(unknown).Name = %q, want %q", got.Name, prefs.ThemeDark)
	}
}

func TestNextThemeToggles(t *testing.T) {
	if got := NextTheme(prefs.ThemeDark); got != prefs.ThemeLight {
		t.Errorf("NextTheme(dark) = %q, want %q", got, prefs.ThemeLight)
	}
	if got := NextTheme(prefs.ThemeLight); got != prefs.ThemeDark {
		t.Errorf("NextTheme(light) = %q, want %q", got, prefs.ThemeDark)
	}
	// Toggling twice always returns to the starting theme.
	if got := NextTheme(NextTheme(prefs.ThemeDark)); got != prefs.ThemeDark {
		t.Errorf("NextTheme twice = %q, want %q", got, prefs.ThemeDark)
	}
}

func TestNextThemeFromUnknown(t *testing.T) {
	// An unrecognized current theme toggles to dark, never a third state.
	if got := NextTheme("solarized"); got != prefs.ThemeDark {
		t.Errorf("NextTheme(unknown) = %q, want %q", got, prefs.ThemeDark)
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("len(ThemeNames()) = %d, want 2", len(names))
	}
	for _, name := range names {
		if _, ok := themes[name]; !ok {
			t.Errorf("ThemeNames() includes %q with no theme definition", name)
		}
	}
}

package ui

import (
	"log"

	"github.com/charmbracelet/lipgloss"

	"github.com/softglow/foyer/internal/prefs"
)

// Theme defines colors for the page. Exactly two themes exist, dark
// and light; the toggle alternates between them and nothing else.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string

	// Text colors
	Text   string
	Muted  string
	Faint  string
	Accent string
	Link   string
	Danger string

	// Border colors
	Border      string
	BorderFocus string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Link)).
			Underline(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),

		SectionTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		ItemHeading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FocusedFrame: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		ImageFrame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Faint)).
			Foreground(lipgloss.Color(t.Faint)).
			Padding(0, 1),

		ModalFrame: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(1, 2),

		Banner: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style
	Link       lipgloss.Style

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	SectionTitle lipgloss.Style
	ItemHeading  lipgloss.Style

	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	ImageFrame   lipgloss.Style
	ModalFrame   lipgloss.Style

	Banner    lipgloss.Style
	StatusBar lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	prefs.ThemeDark:  darkTheme(),
	prefs.ThemeLight: lightTheme(),
}

var themeOrder = []string{prefs.ThemeDark, prefs.ThemeLight}

// GetTheme returns a theme by name. Unknown names coerce to dark with
// a warning; there is never a third state.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	log.Printf("theme %q not recognized, using dark", name)
	return themes[prefs.ThemeDark]
}

// NextTheme returns the other theme's name. Toggling twice always
// returns to the starting theme.
func NextTheme(current string) string {
	if current == prefs.ThemeDark {
		return prefs.ThemeLight
	}
	return prefs.ThemeDark
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func darkTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: prefs.ThemeDark,

		Background: "#020617", // slate-950
		Surface:    "#1e293b", // slate-800

		Text:   "#f1f5f9", // slate-100
		Muted:  "#94a3b8", // slate-400
		Faint:  "#64748b", // slate-500
		Accent: "#38bdf8", // sky-400
		Link:   "#7dd3fc", // sky-300
		Danger: "#ef4444", // red-500

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400
	}
}

func lightTheme() Theme {
	return Theme{
		Name: prefs.ThemeLight,

		Background: "#f8fafc", // slate-50
		Surface:    "#e2e8f0", // slate-200

		Text:   "#0f172a", // slate-900
		Muted:  "#475569", // slate-600
		Faint:  "#94a3b8", // slate-400
		Accent: "#0284c7", // sky-600
		Link:   "#0369a1", // sky-700
		Danger: "#dc2626", // red-600

		Border:      "#cbd5e1", // slate-300
		BorderFocus: "#0284c7", // sky-600
	}
}

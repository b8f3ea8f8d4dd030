package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Bead      lipgloss.Color
	Highlight lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:      "neon",
		Bead:      lipgloss.Color("#00ffff"),
		Highlight: lipgloss.Color("#ff00ff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#00ff88"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Bead:      lipgloss.Color("#cccccc"),
		Highlight: lipgloss.Color("#ffffff"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
	}

	ThemeAmber = Theme{
		Name:      "amber",
		Bead:      lipgloss.Color("#ffb000"), // Amber phosphor
		Highlight: lipgloss.Color("#ffe08a"),
		Accent:    lipgloss.Color("#ff6b00"),
		Text:      lipgloss.Color("#ffb000"),
		Muted:     lipgloss.Color("#664400"),
		Success:   lipgloss.Color("#ffe08a"),
	}

	CurrentTheme = ThemeNeon

	Themes = []Theme{
		ThemeNeon,
		ThemeMono,
		ThemeAmber,
	}
)

// GetTheme returns a theme by name, falling back to neon.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}

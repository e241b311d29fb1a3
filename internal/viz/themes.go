package viz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/atomviz/internal/scene"
)

// Theme defines the colour scheme for the terminal player
type Theme struct {
	Name string
	// Paper is the canvas background.
	Paper colorful.Color
	// Ink replaces black shapes so they stay visible on dark paper.
	Ink colorful.Color

	Title lipgloss.Color
	Text  lipgloss.Color
	Muted lipgloss.Color
	Bar   lipgloss.Color
}

// Available themes
var (
	ThemePaper = Theme{
		Name:  "paper",
		Paper: scene.Background,
		Ink:   scene.Negative,
		Title: lipgloss.Color("#ffffff"),
		Text:  lipgloss.Color("#d0d0d0"),
		Muted: lipgloss.Color("#808080"),
		Bar:   lipgloss.Color("#4292c6"),
	}

	ThemeChalkboard = Theme{
		Name:  "chalkboard",
		Paper: colorful.Color{R: 0.10, G: 0.20, B: 0.14},
		Ink:   colorful.Color{R: 0.95, G: 0.95, B: 0.92},
		Title: lipgloss.Color("#f2f2eb"),
		Text:  lipgloss.Color("#c8d8c8"),
		Muted: lipgloss.Color("#5f7f6a"),
		Bar:   lipgloss.Color("#ffd966"),
	}

	ThemeBlueprint = Theme{
		Name:  "blueprint",
		Paper: colorful.Color{R: 0.05, G: 0.16, B: 0.36},
		Ink:   colorful.Color{R: 1, G: 1, B: 1},
		Title: lipgloss.Color("#ffffff"),
		Text:  lipgloss.Color("#b8cce4"),
		Muted: lipgloss.Color("#5b7bb0"),
		Bar:   lipgloss.Color("#9ecae1"),
	}

	// All available themes
	Themes = []Theme{
		ThemePaper,
		ThemeChalkboard,
		ThemeBlueprint,
	}
)

// ErrUnknownTheme is returned for a theme name not in Themes.
var ErrUnknownTheme = errors.New("viz: unknown theme")

// LookupTheme returns a theme by name
func LookupTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownTheme, name, strings.Join(ThemeNames(), ", "))
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color maps a scene colour onto the theme.
func (t Theme) Color(c colorful.Color) colorful.Color {
	if c == scene.Negative {
		return t.Ink
	}
	return c
}

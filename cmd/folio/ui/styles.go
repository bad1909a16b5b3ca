// Package ui holds the folio terminal look: themes, styles, layout sizes and
// the small helpers the interactive model leans on.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors. The accent purple is also the particle color.
var (
	Brand = lipgloss.Color("#8261D0")

	LightBackground = lipgloss.Color("#faf9fc")
	LightForeground = lipgloss.Color("#1f1633")
	LightMuted      = lipgloss.Color("#6b6280")
	LightBorder     = lipgloss.Color("#ddd6ee")
	LightCard       = lipgloss.Color("#ffffff")
	LightParticle   = lipgloss.Color("#b5a3e6")

	DarkBackground = lipgloss.Color("#0f0b1a")
	DarkForeground = lipgloss.Color("#ece8f6")
	DarkMuted      = lipgloss.Color("#8e86a6")
	DarkBorder     = lipgloss.Color("#2e2547")
	DarkCard       = lipgloss.Color("#181226")
	DarkParticle   = lipgloss.Color("#5b4696")

	Destructive = lipgloss.Color("#e5484d")
	Success     = lipgloss.Color("#46a758")
)

// Theme is one color scheme.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	Particle   lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light scheme.
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    Brand,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		Particle:   LightParticle,
	}
}

// DarkTheme returns the dark scheme.
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    Brand,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		Particle:   DarkParticle,
		IsDark:     true,
	}
}

// Toggle returns the opposite scheme.
func (t Theme) Toggle() Theme {
	if t.IsDark {
		return LightTheme()
	}
	return DarkTheme()
}

// GlamourStyle names the glamour standard style matching t.
func (t Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// ThemeByName resolves "light" or "dark". Anything else detects.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses from the terminal. FOLIO_DARK_MODE=1 forces dark;
// otherwise a dark COLORFGBG background selects dark, and the default is
// dark because the backdrop reads best on it.
func DetectTheme() Theme {
	if v := os.Getenv("FOLIO_DARK_MODE"); v != "" {
		if v == "1" || strings.EqualFold(v, "true") {
			return DarkTheme()
		}
		return LightTheme()
	}

	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			if (bg >= 0 && bg <= 6) || bg == 8 {
				return DarkTheme()
			}
			return LightTheme()
		}
	}
	return DarkTheme()
}

// Styles are the rendered pieces of the screen.
type Styles struct {
	Theme Theme

	Header         lipgloss.Style
	HeaderScrolled lipgloss.Style
	Brand          lipgloss.Style
	NavItem        lipgloss.Style
	NavActive      lipgloss.Style
	Footer         lipgloss.Style
	ScrollTop      lipgloss.Style

	Body  lipgloss.Style
	Muted lipgloss.Style
	Title lipgloss.Style

	Overlay      lipgloss.Style
	Query        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Shortcut     lipgloss.Style

	Label      lipgloss.Style
	FieldError lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style

	ParticleDim    lipgloss.Style
	ParticleStrong lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 2),

		HeaderScrolled: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Card).
			Padding(0, 2),

		Brand: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		NavItem: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		ScrollTop: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Overlay: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Query: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Item: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1),

		ItemSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Primary).
			Padding(0, 1),

		Shortcut: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true),

		FieldError: lipgloss.NewStyle().
			Foreground(Destructive),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		ParticleDim: lipgloss.NewStyle().
			Foreground(theme.Particle),

		ParticleStrong: lipgloss.NewStyle().
			Foreground(theme.Primary),
	}
}

// RenderDivider returns a horizontal rule width cells wide.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Muted.Render(strings.Repeat("─", width))
}

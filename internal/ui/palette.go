package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mosbasik/linearclock/internal/bar"
)

// Palette builds the bar's decision-table styles: a plain foreground style
// per phase, plus an inverted variant (dark ink on the phase color) that
// keeps embedded label text legible over the filled portion of the bar.
func Palette() bar.StyleSet {
	return bar.StyleSet{
		Day:      lipgloss.NewStyle().Foreground(ColorDay),
		Night:    lipgloss.NewStyle().Foreground(ColorNight),
		Twilight: lipgloss.NewStyle().Foreground(ColorTwilight),

		DayLabel:      lipgloss.NewStyle().Foreground(ColorInk).Background(ColorDay),
		NightLabel:    lipgloss.NewStyle().Foreground(ColorInk).Background(ColorNight),
		TwilightLabel: lipgloss.NewStyle().Foreground(ColorInk).Background(ColorTwilight),
	}
}

// Glyphs returns the bar glyph pair, honoring config overrides when the
// override is a single printable rune.
func Glyphs(filled, empty string) bar.Glyphs {
	g := bar.Glyphs{Filled: CharFilled, Empty: CharEmpty}
	if r := singleRune(filled); r != 0 {
		g.Filled = r
	}
	if r := singleRune(empty); r != 0 {
		g.Empty = r
	}
	return g
}

func singleRune(s string) rune {
	rs := []rune(s)
	if len(rs) != 1 {
		return 0
	}
	return rs[0]
}

// MutedStyle styles chrome around the bar (caps, markers, scale digits).
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// ErrorStyle styles fatal error text.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// ConfigureColorProfile pins lipgloss to the detected terminal color
// profile, or to plain ASCII when noColor is set (or NO_COLOR convention is
// honored upstream). Called once at startup.
func ConfigureColorProfile(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

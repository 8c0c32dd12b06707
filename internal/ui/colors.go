package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for the three solar phases. ANSI-256 codes keep the bar
// readable on terminals without truecolor support:
//   214 -> orange (daylight)
//   135 -> purple (twilight at the bar's edges and at sunset)
//   33  -> blue   (night)
const (
	ColorDay      lipgloss.Color = "214"
	ColorTwilight lipgloss.Color = "135"
	ColorNight    lipgloss.Color = "33"
)

// ColorInk is the dark foreground used when label text is drawn inverted
// over a phase-colored background.
const ColorInk lipgloss.Color = "0"

// Supporting colors for chrome around the bar
const (
	ColorMuted lipgloss.Color = "8" // Gray (bright black): caps, markers, scale
	ColorError lipgloss.Color = "1" // Red: fatal error messages
)

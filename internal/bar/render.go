package bar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mosbasik/linearclock/internal/errors"
)

// Phase is the solar classification of a single character position.
type Phase int

const (
	PhaseDay Phase = iota
	PhaseNight
	PhaseTwilight
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDay:
		return "day"
	case PhaseNight:
		return "night"
	case PhaseTwilight:
		return "twilight"
	default:
		return "unknown"
	}
}

// StyleSet holds the styles for the phase × label × elapsed decision table.
// The three plain styles color the bar glyphs; the three Label styles are
// their inverted counterparts (dark text on a phase-colored background) so
// label text stays legible over the filled portion of the bar.
// Opaque to this package: styles are passed through, never interpreted.
type StyleSet struct {
	Day      lipgloss.Style
	Night    lipgloss.Style
	Twilight lipgloss.Style

	DayLabel      lipgloss.Style
	NightLabel    lipgloss.Style
	TwilightLabel lipgloss.Style
}

// Glyphs are the characters drawn for elapsed and unelapsed slots.
type Glyphs struct {
	Filled rune
	Empty  rune
}

// overlay pairs label text with its computed start offset, so both exist or
// neither does.
type overlay struct {
	text  []rune
	start int
}

// overlayFor right-anchors the label so its last character lands at now.
// A label too wide to fit before now is pinned to column 0 instead (clipped
// on the left rather than pushed off the right edge).
func overlayFor(label string, now Offset) *overlay {
	if label == "" {
		return nil
	}
	text := []rune(label)
	start := 0
	if int(now) >= len(text) {
		start = int(now) - len(text) + 1
	}
	return &overlay{text: text, start: start}
}

// phaseAt classifies slot i. Slot 0 is always twilight: it starts exactly at
// the sunrise-equivalent instant, whatever the actual illumination.
func phaseAt(i int, sunsetOffset *Offset, visible bool) Phase {
	switch {
	case i == 0:
		return PhaseTwilight
	case sunsetOffset != nil:
		switch {
		case i < int(*sunsetOffset):
			return PhaseDay
		case i == int(*sunsetOffset):
			return PhaseTwilight
		default:
			return PhaseNight
		}
	case visible:
		return PhaseDay
	default:
		return PhaseNight
	}
}

// styleFor selects a style from the decision table. The style is inverted
// iff a label character sits on an elapsed slot; every other combination
// uses the plain phase color. A phase outside the closed set is a logic
// defect, never a silent default.
func styleFor(styles StyleSet, phase Phase, hasLabelChar, hasPassed bool) (lipgloss.Style, error) {
	inverted := hasLabelChar && hasPassed
	switch phase {
	case PhaseDay:
		if inverted {
			return styles.DayLabel, nil
		}
		return styles.Day, nil
	case PhaseTwilight:
		if inverted {
			return styles.TwilightLabel, nil
		}
		return styles.Twilight, nil
	case PhaseNight:
		if inverted {
			return styles.NightLabel, nil
		}
		return styles.Night, nil
	}
	return lipgloss.Style{}, errors.New(errors.ErrInternal,
		fmt.Sprintf("No style for phase=%v labelChar=%t passed=%t", phase, hasLabelChar, hasPassed),
		"This is a bug; please report it")
}

// Render draws the bar as a single styled string: one styled character per
// slot, in slot order. now marks the boundary of the elapsed portion
// (slot i has passed once now >= i); label, when non-empty, is embedded in
// the bar ending at now. Pure: identical arguments yield byte-identical
// output.
func Render(b *Bar, now Offset, label string, styles StyleSet, glyphs Glyphs) (string, error) {
	var sunsetOffset *Offset
	if b.Cycle.Sunset != nil {
		so, err := OffsetFromInstant(b, *b.Cycle.Sunset)
		if err != nil {
			return "", err
		}
		sunsetOffset = &so
	}

	lbl := overlayFor(label, now)

	var sb strings.Builder
	for i := range b.Slots {
		phase := phaseAt(i, sunsetOffset, b.Cycle.Visible)

		var labelChar rune
		hasLabelChar := false
		if lbl != nil {
			if j := i - lbl.start; j >= 0 && j < len(lbl.text) {
				labelChar = lbl.text[j]
				hasLabelChar = true
			}
		}

		hasPassed := int(now) >= i

		style, err := styleFor(styles, phase, hasLabelChar, hasPassed)
		if err != nil {
			return "", err
		}

		ch := glyphs.Empty
		switch {
		case hasLabelChar:
			ch = labelChar
		case hasPassed:
			ch = glyphs.Filled
		}

		// Each slot renders as its own styled cell; the style's trailing
		// reset keeps an inverted label background from bleeding into the
		// next character.
		sb.WriteString(style.Render(string(ch)))
	}

	return sb.String(), nil
}

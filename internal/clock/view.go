package clock

import (
	"fmt"
	"strings"
	"time"

	"github.com/mosbasik/linearclock/internal/astro"
	"github.com/mosbasik/linearclock/internal/bar"
	"github.com/mosbasik/linearclock/internal/config"
	"github.com/mosbasik/linearclock/internal/errors"
	"github.com/mosbasik/linearclock/internal/ui"
)

// Frame renders one complete clock frame at the given terminal width:
//
//	      06:42        18:03        06:43
//	      |            |            |
//	  [████████████████░░░░░░░░░░12:15░░]
//	   0    10   20   30 ...
//
// A text row and a marker row annotate sunrise, sunset, and the next
// sunrise; the bar itself carries the embedded now label; the percentage
// scale sits underneath. The caller handles vertical placement.
func Frame(engine *bar.Engine, cfg *config.Config, cycle astro.Cycle, now time.Time, width int) (string, error) {
	margin := cfg.Margin
	length := width - 2*margin - 2
	if length < 1 {
		return "", errors.New(errors.ErrArgument,
			fmt.Sprintf("Terminal is too narrow for the bar (%d columns)", width),
			"Widen the terminal or lower the margin in .lc.yaml.")
	}

	b, err := engine.Bar(cycle, length)
	if err != nil {
		return "", err
	}

	nowOffset, err := engine.OffsetFromInstant(b, now)
	if err != nil {
		return "", err
	}

	barLine, err := engine.Render(b, nowOffset, nowLabel(cfg.Labels.Now, now))
	if err != nil {
		return "", err
	}

	anns, err := annotations(engine, cfg, b)
	if err != nil {
		return "", err
	}
	textRow, markerRow := annotationRows(anns, width, margin)

	muted := ui.MutedStyle()
	pad := strings.Repeat(" ", margin)

	var sb strings.Builder
	sb.WriteString(textRow)
	sb.WriteByte('\n')
	sb.WriteString(muted.Render(markerRow))
	sb.WriteByte('\n')

	sb.WriteString(pad)
	sb.WriteString(muted.Render(string(capGlyph(cfg.Glyphs.Begin, ui.CharBegin))))
	sb.WriteString(barLine)
	sb.WriteString(muted.Render(string(capGlyph(cfg.Glyphs.End, ui.CharEnd))))

	if scale, ok := engine.Scale(b); ok {
		sb.WriteByte('\n')
		sb.WriteString(pad)
		sb.WriteByte(' ')
		sb.WriteString(muted.Render(scale))
	}

	return sb.String(), nil
}

// annotation is a text label pointing at one bar column.
type annotation struct {
	col  int
	text string
}

// annotations collects the labeled events of the cycle: the bounding
// sunrises (or the darkest/lightest instants in polar cycles) and the
// sunset when there is one.
func annotations(engine *bar.Engine, cfg *config.Config, b *bar.Bar) ([]annotation, error) {
	cycle := b.Cycle
	length := b.Length()

	riseShort, riseLong := "rise", "sunrise"
	if cycle.Sunset == nil {
		if cycle.Visible {
			riseShort, riseLong = "dark", "darkest"
		} else {
			riseShort, riseLong = "light", "lightest"
		}
	}

	var anns []annotation
	add := func(offset bar.Offset, text string) {
		if text == "" {
			return
		}
		anns = append(anns, annotation{col: barColumn(offset, cfg.Margin), text: text})
	}

	add(0, labelText(cfg.Labels.Rise, cycle.Start, riseShort, riseLong))

	if cycle.Sunset != nil {
		offset, err := engine.OffsetFromInstant(b, *cycle.Sunset)
		if err != nil {
			return nil, err
		}
		add(offset, labelText(cfg.Labels.Set, *cycle.Sunset, "set", "sunset"))
	}

	add(bar.Offset(length), labelText(cfg.Labels.NextRise, cycle.End, riseShort, riseLong))

	return anns, nil
}

// barColumn maps a bar offset to a terminal column. Offset 0 sits just
// after the begin cap; offset length lands on the end cap.
func barColumn(offset bar.Offset, margin int) int {
	return margin + 1 + int(offset)
}

// annotationRows lays the annotations out as a centered-text row over a
// marker row. Text is centered on its marker and clamped to the line; a
// label that would overwrite an earlier one is dropped.
func annotationRows(anns []annotation, width, margin int) (string, string) {
	textRow := blankRow(width)
	markerRow := blankRow(width)

	for _, a := range anns {
		if a.col < 0 || a.col >= width {
			continue
		}
		markerRow[a.col] = ui.CharMarker
		placeCentered(textRow, a.text, a.col)
	}

	return strings.TrimRight(string(textRow), " "), strings.TrimRight(string(markerRow), " ")
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

func placeCentered(row []rune, text string, col int) {
	rs := []rune(text)
	if len(rs) > len(row) {
		return
	}

	start := col - len(rs)/2
	if start < 0 {
		start = 0
	}
	if start+len(rs) > len(row) {
		start = len(row) - len(rs)
	}

	for i := range rs {
		if row[start+i] != ' ' {
			return
		}
	}
	copy(row[start:], rs)
}

// labelText renders an event label in the configured mode. Times use the
// event's own zone.
func labelText(mode config.LabelMode, at time.Time, short, long string) string {
	switch mode {
	case config.LabelNone:
		return ""
	case config.LabelShort:
		return short
	case config.LabelLong:
		return long
	default:
		return at.Format("15:04")
	}
}

// nowLabel renders the embedded now label. Long mode adds seconds, which
// makes the label visibly tick.
func nowLabel(mode config.LabelMode, now time.Time) string {
	switch mode {
	case config.LabelNone:
		return ""
	case config.LabelShort:
		return "now"
	case config.LabelLong:
		return now.Format("15:04:05")
	default:
		return now.Format("15:04")
	}
}

// capGlyph picks the configured cap character, falling back to the default.
// Config validation has already pinned overrides to a single rune.
func capGlyph(override string, def rune) rune {
	if override == "" {
		return def
	}
	return []rune(override)[0]
}

package bar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosbasik/linearclock/internal/astro"
	"github.com/mosbasik/linearclock/internal/errors"
)

// plainStyles render characters without any styling, so test assertions can
// compare raw output.
func plainStyles() StyleSet {
	s := lipgloss.NewStyle()
	return StyleSet{
		Day: s, Night: s, Twilight: s,
		DayLabel: s, NightLabel: s, TwilightLabel: s,
	}
}

// coloredStyles assigns every decision-table entry a distinct foreground so
// style selection can be verified by inspection.
func coloredStyles() StyleSet {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return StyleSet{
		Day:           fg("1"),
		Night:         fg("2"),
		Twilight:      fg("3"),
		DayLabel:      fg("4"),
		NightLabel:    fg("5"),
		TwilightLabel: fg("6"),
	}
}

func testGlyphs() Glyphs {
	return Glyphs{Filled: '█', Empty: '░'}
}

func TestPhaseAt_WithSunset(t *testing.T) {
	// Sunset at offset 5 on a 10-slot bar: slot 0 twilight, 1-4 day,
	// 5 twilight, 6-9 night.
	sunset := Offset(5)
	want := []Phase{
		PhaseTwilight,
		PhaseDay, PhaseDay, PhaseDay, PhaseDay,
		PhaseTwilight,
		PhaseNight, PhaseNight, PhaseNight, PhaseNight,
	}

	for i, expected := range want {
		assert.Equal(t, expected, phaseAt(i, &sunset, false), "slot %d", i)
	}
}

func TestPhaseAt_PolarNight(t *testing.T) {
	// No sunset, not visible: everything is night except the leading edge.
	for i := 0; i < 10; i++ {
		want := PhaseNight
		if i == 0 {
			want = PhaseTwilight
		}
		assert.Equal(t, want, phaseAt(i, nil, false), "slot %d", i)
	}
}

func TestPhaseAt_PolarDay(t *testing.T) {
	for i := 0; i < 10; i++ {
		want := PhaseDay
		if i == 0 {
			want = PhaseTwilight
		}
		assert.Equal(t, want, phaseAt(i, nil, true), "slot %d", i)
	}
}

func TestStyleFor_DecisionTable(t *testing.T) {
	styles := coloredStyles()

	tests := []struct {
		name      string
		phase     Phase
		hasLabel  bool
		hasPassed bool
		want      lipgloss.Style
	}{
		{"day plain", PhaseDay, false, false, styles.Day},
		{"day passed", PhaseDay, false, true, styles.Day},
		{"day label unelapsed", PhaseDay, true, false, styles.Day},
		{"day label elapsed inverts", PhaseDay, true, true, styles.DayLabel},
		{"twilight plain", PhaseTwilight, false, false, styles.Twilight},
		{"twilight passed", PhaseTwilight, false, true, styles.Twilight},
		{"twilight label unelapsed", PhaseTwilight, true, false, styles.Twilight},
		{"twilight label elapsed inverts", PhaseTwilight, true, true, styles.TwilightLabel},
		{"night plain", PhaseNight, false, false, styles.Night},
		{"night passed", PhaseNight, false, true, styles.Night},
		{"night label unelapsed", PhaseNight, true, false, styles.Night},
		{"night label elapsed inverts", PhaseNight, true, true, styles.NightLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := styleFor(styles, tt.phase, tt.hasLabel, tt.hasPassed)
			require.NoError(t, err)
			assert.Equal(t, tt.want.GetForeground(), got.GetForeground())
		})
	}
}

func TestStyleFor_UnknownPhaseIsInternalError(t *testing.T) {
	_, err := styleFor(coloredStyles(), Phase(42), false, false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInternal))
}

func TestRender_FillProgress(t *testing.T) {
	b, err := Build(dayCycle(t), 10)
	require.NoError(t, err)

	tests := []struct {
		now  Offset
		want string
	}{
		{0, "█░░░░░░░░░"},
		{3, "████░░░░░░"},
		{9, "██████████"},
		{10, "██████████"}, // flush with the closing cap
	}

	for _, tt := range tests {
		got, err := Render(b, tt.now, "", plainStyles(), testGlyphs())
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "now=%d", tt.now)
	}
}

func TestRender_MonotonicFill(t *testing.T) {
	b, err := Build(dayCycle(t), 24)
	require.NoError(t, err)

	// Progress never retreats: filled positions at k are a subset of those
	// at k+1.
	prev := ""
	for k := Offset(0); k <= 24; k++ {
		got, err := Render(b, k, "", plainStyles(), testGlyphs())
		require.NoError(t, err)

		if prev != "" {
			prevRunes := []rune(prev)
			gotRunes := []rune(got)
			for i, r := range prevRunes {
				if r == '█' {
					assert.Equal(t, '█', gotRunes[i], "position %d unfilled at now=%d", i, k)
				}
			}
		}
		prev = got
	}
}

func TestRender_Idempotent(t *testing.T) {
	b, err := Build(dayCycle(t), 40)
	require.NoError(t, err)

	a, err := Render(b, 17, "12:34", plainStyles(), testGlyphs())
	require.NoError(t, err)
	c, err := Render(b, 17, "12:34", plainStyles(), testGlyphs())
	require.NoError(t, err)

	assert.Equal(t, a, c, "identical arguments must yield byte-identical output")
}

func TestRender_LabelRightAnchored(t *testing.T) {
	b, err := Build(dayCycle(t), 10)
	require.NoError(t, err)

	// 5-rune label ending at now=7: slots 0-2 filled, 3-7 label, 8-9 empty.
	got, err := Render(b, 7, "07:12", plainStyles(), testGlyphs())
	require.NoError(t, err)
	assert.Equal(t, "███07:12░░", got)
}

func TestRender_LabelTooWideStartsAtZero(t *testing.T) {
	b, err := Build(dayCycle(t), 10)
	require.NoError(t, err)

	// A label wider than now+1 pins to column 0 instead of hanging off the
	// left edge.
	got, err := Render(b, 2, "06:30", plainStyles(), testGlyphs())
	require.NoError(t, err)
	assert.Equal(t, "06:30░░░░░", got)
}

func TestRender_LabelExactFit(t *testing.T) {
	b, err := Build(dayCycle(t), 10)
	require.NoError(t, err)

	// len(label) == now+1: last char at now, first char at 0.
	got, err := Render(b, 4, "08:24", plainStyles(), testGlyphs())
	require.NoError(t, err)
	assert.Equal(t, "08:24░░░░░", got)
}

func TestRender_PolarCycles(t *testing.T) {
	for _, visible := range []bool{true, false} {
		b, err := Build(polarCycle(t, visible), 10)
		require.NoError(t, err)

		got, err := Render(b, 5, "", plainStyles(), testGlyphs())
		require.NoError(t, err)
		assert.Equal(t, "██████░░░░", got, "visible=%t", visible)
	}
}

func TestRender_SunsetOutsideCycleFails(t *testing.T) {
	// A corrupt cycle whose sunset precedes its own start cannot be
	// rendered; the range error surfaces instead of a bogus bar.
	start := time.Date(2022, time.March, 12, 6, 0, 0, 0, time.UTC)
	bad := start.Add(-time.Hour)
	cycle := astro.Cycle{Start: start, End: start.Add(24 * time.Hour), Sunset: &bad}

	b, err := Build(cycle, 10)
	require.NoError(t, err)

	_, err = Render(b, 3, "", plainStyles(), testGlyphs())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRange))
}

func TestOverlayFor(t *testing.T) {
	t.Run("absent label yields no overlay", func(t *testing.T) {
		assert.Nil(t, overlayFor("", 5))
	})

	t.Run("right anchored when it fits", func(t *testing.T) {
		o := overlayFor("12:34", 9)
		require.NotNil(t, o)
		assert.Equal(t, 5, o.start)
		assert.Equal(t, "12:34", string(o.text))
	})

	t.Run("pinned to zero when too wide", func(t *testing.T) {
		o := overlayFor("12:34", 3)
		require.NotNil(t, o)
		assert.Equal(t, 0, o.start)
	})

	t.Run("boundary: label length equals now+1", func(t *testing.T) {
		o := overlayFor("12:34", 4)
		require.NotNil(t, o)
		assert.Equal(t, 0, o.start)
	})
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "day", PhaseDay.String())
	assert.Equal(t, "night", PhaseNight.String())
	assert.Equal(t, "twilight", PhaseTwilight.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestRender_OutputLengthMatchesBar(t *testing.T) {
	b, err := Build(dayCycle(t), 30)
	require.NoError(t, err)

	got, err := Render(b, 12, "", plainStyles(), testGlyphs())
	require.NoError(t, err)
	assert.Equal(t, 30, len([]rune(got)))
	assert.Equal(t, 13, strings.Count(got, "█"))
}

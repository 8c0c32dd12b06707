package clock

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosbasik/linearclock/internal/config"
	"github.com/mosbasik/linearclock/internal/logger"
)

// fixedSource always reports the same instant.
type fixedSource struct {
	at time.Time
}

func (f fixedSource) Now() time.Time {
	return f.at
}

func testModelConfig() *config.Config {
	cfg := config.DefaultConfig()
	// Manhattan
	cfg.Latitude = 40.7128
	cfg.Longitude = -74.0060
	return cfg
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tickMsg(time.Now()))
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func resize(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestModel_InitSendsImmediateTick(t *testing.T) {
	at := time.Date(2022, 3, 12, 15, 0, 0, 0, time.UTC)
	m := NewModel(testModelConfig(), plainEngine(), fixedSource{at: at}, 0)

	cmd := m.Init()
	require.NotNil(t, cmd)
	_, isTick := cmd().(tickMsg)
	assert.True(t, isTick)
}

func TestModel_TickComputesCycle(t *testing.T) {
	at := time.Date(2022, 3, 12, 15, 0, 0, 0, time.UTC)
	m := NewModel(testModelConfig(), plainEngine(), fixedSource{at: at}, 0)

	m = tick(t, m)

	assert.Equal(t, at, m.Now())
	cycle, ok := m.Cycle()
	require.True(t, ok)
	assert.True(t, cycle.Contains(at))
	assert.NotNil(t, cycle.Sunset, "mid-latitude March day has a sunset")
}

func TestModel_TickSchedulesNext(t *testing.T) {
	m := NewModel(testModelConfig(), plainEngine(), SystemTime{}, time.Second)

	updated, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd, "each tick schedules the next")
	_, ok := updated.(Model)
	assert.True(t, ok)
}

func TestModel_CycleRollsOverWithSimulatedTime(t *testing.T) {
	start := time.Date(2022, 3, 12, 12, 0, 0, 0, time.UTC)
	source := NewSimulated(start, start.Add(72*time.Hour), 12*time.Hour)
	m := NewModel(testModelConfig(), plainEngine(), source, 0)

	m = tick(t, m)
	first, ok := m.Cycle()
	require.True(t, ok)

	// Two 12h steps later, now has left the first cycle.
	m = tick(t, m)
	m = tick(t, m)

	second, ok := m.Cycle()
	require.True(t, ok)
	assert.True(t, second.Contains(m.Now()))
	assert.True(t, second.Start.After(first.Start), "cycle advanced with simulated time")
}

func TestModel_ViewEmptyBeforeSizing(t *testing.T) {
	m := NewModel(testModelConfig(), plainEngine(), SystemTime{}, 0)
	assert.Empty(t, m.View(), "nothing to draw before the first WindowSizeMsg")
}

func TestModel_ViewRendersBar(t *testing.T) {
	at := time.Date(2022, 3, 12, 15, 0, 0, 0, time.UTC)
	m := NewModel(testModelConfig(), plainEngine(), fixedSource{at: at}, 0)

	m = resize(t, m, 60, 12)
	m = tick(t, m)

	view := m.View()
	assert.Contains(t, view, "[")
	assert.Contains(t, view, "]")
	assert.Contains(t, view, "#", "elapsed cells drawn with the filled glyph")
	assert.Greater(t, strings.Count(view, "\n"), 4, "vertically centered within 12 rows")
}

func TestModel_QuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m := NewModel(testModelConfig(), plainEngine(), SystemTime{}, 0)
		updated, cmd := m.Update(k)
		require.NotNil(t, cmd, "quit key produces a command")
		assert.Equal(t, tea.Quit(), cmd())
		assert.Empty(t, updated.(Model).View())
	}
}

func TestModel_RefreshKeyRecomputes(t *testing.T) {
	at := time.Date(2022, 3, 12, 15, 0, 0, 0, time.UTC)
	m := NewModel(testModelConfig(), plainEngine(), fixedSource{at: at}, 0)
	m = tick(t, m)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Nil(t, cmd)

	m = updated.(Model)
	cycle, ok := m.Cycle()
	require.True(t, ok)
	assert.True(t, cycle.Contains(at))
}

func TestModel_RefreshKeyLeavesSimulatedTimeAlone(t *testing.T) {
	start := time.Date(2022, 3, 12, 12, 0, 0, 0, time.UTC)
	source := NewSimulated(start, start.Add(24*time.Hour), 10*time.Minute)
	m := NewModel(testModelConfig(), plainEngine(), source, 0)

	m = tick(t, m)
	require.Equal(t, start, m.Now())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	_, ok := m.Cycle()
	require.True(t, ok)

	// The next tick sees the second simulation step, not the third.
	m = tick(t, m)
	assert.Equal(t, start.Add(10*time.Minute), m.Now())
}

func TestModel_AdvanceLogsCycleChanges(t *testing.T) {
	at := time.Date(2022, 3, 12, 15, 0, 0, 0, time.UTC)
	m := NewModel(testModelConfig(), plainEngine(), fixedSource{at: at}, 0)

	buf := logger.NewBufferLogger()
	m.log = buf

	m = tick(t, m)
	assert.True(t, buf.HasLevel("debug"), "recomputation is logged")
	logged := len(buf.Messages)

	// A tick inside the same cycle recomputes nothing and logs nothing.
	m = tick(t, m)
	assert.Len(t, buf.Messages, logged)
}

func TestModel_RefreshOverride(t *testing.T) {
	cfg := testModelConfig()
	cfg.Refresh = time.Minute

	m := NewModel(cfg, plainEngine(), SystemTime{}, 50*time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, m.refresh)

	m = NewModel(cfg, plainEngine(), SystemTime{}, 0)
	assert.Equal(t, time.Minute, m.refresh, "falls back to the config interval")
}

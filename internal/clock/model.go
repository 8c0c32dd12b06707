package clock

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mosbasik/linearclock/internal/astro"
	"github.com/mosbasik/linearclock/internal/bar"
	"github.com/mosbasik/linearclock/internal/config"
	"github.com/mosbasik/linearclock/internal/logger"
	"github.com/mosbasik/linearclock/internal/ui"
)

// tickMsg signals a periodic redraw.
type tickMsg time.Time

// Model is the Bubble Tea model for the clock. Each tick reads the time
// source, recomputes the day cycle when the current instant falls off it,
// and redraws the bar.
type Model struct {
	cfg     *config.Config
	engine  *bar.Engine
	source  TimeSource
	refresh time.Duration
	keys    keyMap
	log     logger.Logger

	cycle    astro.Cycle
	hasCycle bool
	now      time.Time
	err      error

	width    int
	height   int
	quitting bool
}

// NewModel creates a clock model. refresh overrides the config interval when
// positive; the simulate command uses that to run faster than wall time.
func NewModel(cfg *config.Config, engine *bar.Engine, source TimeSource, refresh time.Duration) Model {
	if refresh <= 0 {
		refresh = cfg.Refresh
	}
	return Model{
		cfg:     cfg,
		engine:  engine,
		source:  source,
		refresh: refresh,
		keys:    defaultKeyMap(),
		log:     logger.NewEnvLogger("[clock]"),
	}
}

// Init fires an immediate first tick so the bar appears before the refresh
// interval elapses.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			// Rebuild around the last-read instant rather than reading the
			// source again: a manual refresh must not consume a simulation
			// step.
			m.hasCycle = false
			if !m.now.IsZero() {
				m.recompute()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.advance()
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the current frame, vertically centered.
func (m Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}

	if m.err != nil {
		return m.centered(ui.ErrorStyle().Render(m.err.Error()))
	}
	if !m.hasCycle {
		return ""
	}

	frame, err := Frame(m.engine, m.cfg, m.cycle, m.now, m.width)
	if err != nil {
		return m.centered(ui.ErrorStyle().Render(err.Error()))
	}
	return lipgloss.PlaceVertical(m.height, lipgloss.Center, frame)
}

// Now returns the instant the model last read from its time source.
func (m Model) Now() time.Time {
	return m.now
}

// Cycle returns the current day cycle and whether one has been computed.
func (m Model) Cycle() (astro.Cycle, bool) {
	return m.cycle, m.hasCycle
}

// advance reads the time source and refreshes the cycle when now has left
// it. Simulated sources can jump arbitrarily far, so the containment check
// covers both rollover and wrap-around.
func (m *Model) advance() {
	m.now = m.source.Now()

	if m.hasCycle && m.cycle.Contains(m.now) {
		return
	}
	m.recompute()
}

// recompute rebuilds the cycle around the last-read instant.
func (m *Model) recompute() {
	cycle, err := astro.CycleSpanning(m.now, m.cfg.Latitude, m.cfg.Longitude)
	if err != nil {
		m.log.Error("cycle computation failed at %s: %v", m.now.Format(time.RFC3339), err)
		m.err = err
		m.hasCycle = false
		return
	}

	m.log.Debug("cycle recomputed: [%s, %s) sunset=%t visible=%t",
		cycle.Start.Format(time.RFC3339), cycle.End.Format(time.RFC3339),
		cycle.Sunset != nil, cycle.Visible)
	m.cycle = cycle
	m.hasCycle = true
	m.err = nil
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

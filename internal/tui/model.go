// Package tui renders the agent dashboard. The TUI doubles as the
// recorder's signal source: key and mouse input counts as interaction,
// and terminal focus reports drive the recorder's visibility state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Prtik12/FocusUp/internal/tracker"
)

const refreshInterval = time.Second

type tickMsg time.Time

// Model is the bubbletea model for `focusup run`.
type Model struct {
	recorder   *tracker.Recorder
	aggregator *tracker.Aggregator

	snapshot tracker.Snapshot
	minutes  float64
	focused  bool
	width    int
	height   int
	quitting bool
}

// NewModel builds the dashboard. Both tracker components must already be
// started; the program stops them on quit.
func NewModel(recorder *tracker.Recorder, aggregator *tracker.Aggregator) Model {
	return Model{
		recorder:   recorder,
		aggregator: aggregator,
		snapshot:   aggregator.Snapshot(),
		minutes:    recorder.TodayMinutes(),
		focused:    true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.recorder.Stop()
			m.aggregator.Stop()
			return m, tea.Quit
		}
		m.recorder.RecordInteraction()

	case tea.MouseMsg:
		m.recorder.RecordInteraction()

	case tea.FocusMsg:
		m.focused = true
		m.recorder.SetVisible(true)

	case tea.BlurMsg:
		m.focused = false
		m.recorder.SetVisible(false)

	case tickMsg:
		m.snapshot = m.aggregator.Snapshot()
		m.minutes = m.recorder.TodayMinutes()
		return m, tick()
	}

	return m, nil
}

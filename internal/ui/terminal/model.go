// Package terminal renders the interval timer as a full-screen terminal UI.
package terminal

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pulsetimer/internal/core/interval"
	"pulsetimer/internal/core/model"
	"pulsetimer/internal/ui/display"
)

// Controller receives the intents forwarded by the terminal UI.
type Controller interface {
	Snapshot() interval.Session
	ToggleRunning() interval.Session
	Reset() interval.Session
	OpenSettings() interval.Session
	CloseSettings() interval.Session
	SetWorkDuration(delta int) interval.Session
	SetBreakDuration(delta int) interval.Session
}

// Messages
type sessionChangedMsg struct{}

type eventsClosedMsg struct{}

// Model is the bubbletea model for the timer.
type Model struct {
	controller Controller
	events     <-chan interval.Event
	session    interval.Session
	keys       KeyMap
	help       help.Model
	width      int
	height     int
}

// NewModel creates a terminal model. events may be nil when the caller renders manually.
func NewModel(controller Controller, events <-chan interval.Event) Model {
	return Model{
		controller: controller,
		events:     events,
		session:    controller.Snapshot(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// Init starts listening for machine events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan interval.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return eventsClosedMsg{}
		}
		return sessionChangedMsg{}
	}
}

// Update handles key presses and machine events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case sessionChangedMsg:
		// Events may queue behind direct intents, so re-read rather than trusting the event copy.
		m.session = m.controller.Snapshot()
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	step := model.DurationStepSeconds
	if m.session.SettingsOpen {
		switch {
		case key.Matches(msg, m.keys.WorkUp):
			m.session = m.controller.SetWorkDuration(step)
		case key.Matches(msg, m.keys.WorkDown):
			m.session = m.controller.SetWorkDuration(-step)
		case key.Matches(msg, m.keys.BreakUp):
			m.session = m.controller.SetBreakDuration(step)
		case key.Matches(msg, m.keys.BreakDown):
			m.session = m.controller.SetBreakDuration(-step)
		case key.Matches(msg, m.keys.Back):
			m.session = m.controller.CloseSettings()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.session = m.controller.ToggleRunning()
	case key.Matches(msg, m.keys.Reset):
		m.session = m.controller.Reset()
	case key.Matches(msg, m.keys.Settings):
		m.session = m.controller.OpenSettings()
	}
	return m, nil
}

// View renders the active screen centered in the terminal.
func (m Model) View() string {
	var face, helpView string
	if m.session.SettingsOpen {
		face = m.settingsView()
		helpView = m.help.View(settingsKeys{m.keys})
	} else {
		face = m.timerView()
		helpView = m.help.View(timerKeys{m.keys})
	}

	content := lipgloss.JoinVertical(lipgloss.Center, FaceStyle.Render(face), helpView)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) timerView() string {
	phaseStyle := WorkStyle
	if m.session.Phase == interval.PhaseBreak {
		phaseStyle = BreakStyle
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		phaseStyle.Render(display.PhaseLabel(m.session.Phase)),
		ClockStyle.Render(display.FormatClock(m.session.RemainingSeconds)),
		MutedStyle.Render("["+display.ToggleLabel(m.session.Running)+"]  [Reset]  [Settings]"),
		MutedStyle.Render(display.CompletedLabel(m.session.CompletedCycles)),
	)
}

func (m Model) settingsView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render("Set Durations"),
		WorkStyle.Render(display.DurationLabel(interval.PhaseWork, m.session.WorkDurationSeconds)),
		BreakStyle.Render(display.DurationLabel(interval.PhaseBreak, m.session.BreakDurationSeconds)),
		MutedStyle.Render("[Back]"),
	)
}

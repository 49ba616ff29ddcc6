package terminal

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pulsetimer/internal/core/interval"
	"pulsetimer/internal/core/model"
)

func createTestModel() (Model, *interval.Machine) {
	machine := interval.New(model.DefaultTimerConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	m := NewModel(machine, nil)
	m.width = 80
	m.height = 24
	return m, machine
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestTimerKeys(t *testing.T) {
	tests := []struct {
		name        string
		keys        []tea.KeyMsg
		wantRunning bool
		wantOpen    bool
	}{
		{name: "space pauses", keys: []tea.KeyMsg{runes(" ")}, wantRunning: false},
		{name: "p toggles twice", keys: []tea.KeyMsg{runes("p"), runes("p")}, wantRunning: true},
		{name: "r resets", keys: []tea.KeyMsg{runes("r")}, wantRunning: false},
		{name: "s opens settings", keys: []tea.KeyMsg{runes("s")}, wantRunning: true, wantOpen: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, machine := createTestModel()
			for _, msg := range tt.keys {
				m, _ = send(m, msg)
			}

			if m.session.Running != tt.wantRunning {
				t.Errorf("running = %v want %v", m.session.Running, tt.wantRunning)
			}
			if m.session.SettingsOpen != tt.wantOpen {
				t.Errorf("settings open = %v want %v", m.session.SettingsOpen, tt.wantOpen)
			}
			if m.session != machine.Snapshot() {
				t.Errorf("model session %+v out of sync with machine %+v", m.session, machine.Snapshot())
			}
		})
	}
}

func TestSettingsKeys(t *testing.T) {
	m, machine := createTestModel()
	for i := 0; i < 10; i++ {
		machine.Tick()
	}

	m, _ = send(m, runes("s"))
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(m, runes("l"))
	m, _ = send(m, runes("l"))
	m, _ = send(m, runes("h"))

	if m.session.WorkDurationSeconds != 25 || m.session.BreakDurationSeconds != 10 {
		t.Fatalf("durations = %d/%d want 25/10", m.session.WorkDurationSeconds, m.session.BreakDurationSeconds)
	}
	if m.session.RemainingSeconds != 10 {
		t.Fatalf("remaining = %d want 10 while settings open", m.session.RemainingSeconds)
	}

	m, _ = send(m, runes("r"))
	if m.session.Phase != interval.PhaseWork || !m.session.Running {
		t.Fatalf("timer keys must be ignored in settings: %+v", m.session)
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.session.SettingsOpen || m.session.RemainingSeconds != 25 {
		t.Fatalf("after back = %+v want closed with 25s", m.session)
	}
}

func TestWorkDurationFloorFromKeys(t *testing.T) {
	m, _ := createTestModel()
	m, _ = send(m, runes("s"))
	for i := 0; i < 10; i++ {
		m, _ = send(m, runes("j"))
	}
	if m.session.WorkDurationSeconds != 5 {
		t.Fatalf("work = %d want 5", m.session.WorkDurationSeconds)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := createTestModel()
	_, cmd := send(m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestSessionChangedReadsSnapshot(t *testing.T) {
	machine := interval.New(model.DefaultTimerConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	events := machine.Subscribe(8)
	m := NewModel(machine, events)

	machine.Tick()
	machine.Tick()

	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("expected event listener command")
	}
	msg := cmd()
	if _, ok := msg.(sessionChangedMsg); !ok {
		t.Fatalf("msg = %T want sessionChangedMsg", msg)
	}
	m, next := send(m, msg)
	if m.session.RemainingSeconds != 18 {
		t.Fatalf("remaining = %d want 18", m.session.RemainingSeconds)
	}
	if next == nil {
		t.Fatalf("expected listener to be re-armed")
	}

	machine.Close()
	for len(events) > 0 {
		<-events
	}
	if _, ok := next().(eventsClosedMsg); !ok {
		t.Fatalf("expected eventsClosedMsg after close")
	}
}

func TestView(t *testing.T) {
	m, machine := createTestModel()

	view := m.View()
	for _, want := range []string{"Work", "00:20", "Pause", "Completed: 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("timer view missing %q", want)
		}
	}

	for i := 0; i < 20; i++ {
		machine.Tick()
	}
	m, _ = send(m, sessionChangedMsg{})
	view = m.View()
	for _, want := range []string{"Break", "00:05", "Completed: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("break view missing %q", want)
		}
	}

	m, _ = send(m, runes("s"))
	view = m.View()
	for _, want := range []string{"Set Durations", "Work: 20 sec", "Break: 5 sec", "Back"} {
		if !strings.Contains(view, want) {
			t.Errorf("settings view missing %q", want)
		}
	}
}

func TestWindowSize(t *testing.T) {
	m, _ := createTestModel()
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 100 || m.height != 30 || m.help.Width != 100 {
		t.Fatalf("size = %dx%d help %d", m.width, m.height, m.help.Width)
	}
}

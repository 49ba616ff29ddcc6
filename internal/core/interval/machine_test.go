package interval

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pulsetimer/internal/core/model"
)

type recordingNotifier struct {
	mu     sync.Mutex
	pulses []time.Duration
	err    error
}

func (notifier *recordingNotifier) Pulse(duration time.Duration) error {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.pulses = append(notifier.pulses, duration)
	return notifier.err
}

func (notifier *recordingNotifier) count() int {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return len(notifier.pulses)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMachine(workSeconds, breakSeconds int) (*Machine, *recordingNotifier) {
	config := model.DefaultTimerConfig()
	config.WorkDurationSeconds = workSeconds
	config.BreakDurationSeconds = breakSeconds
	machine := New(config, testLogger())
	notifier := &recordingNotifier{}
	machine.SetHapticNotifier(notifier)
	return machine, notifier
}

func TestMachineFullCycleScenario(t *testing.T) {
	machine, notifier := newTestMachine(20, 5)

	var session Session
	for i := 0; i < 20; i++ {
		session = machine.Tick()
	}
	if session.Phase != PhaseBreak || session.RemainingSeconds != 5 || session.CompletedCycles != 1 {
		t.Fatalf("after 20 ticks = %+v want break, 5s, 1 cycle", session)
	}
	if notifier.count() != 1 {
		t.Fatalf("pulses = %d want 1", notifier.count())
	}

	for i := 0; i < 5; i++ {
		session = machine.Tick()
	}
	if session.Phase != PhaseWork || session.RemainingSeconds != 20 || session.CompletedCycles != 1 {
		t.Fatalf("after 25 ticks = %+v want work, 20s, 1 cycle", session)
	}
	if notifier.count() != 1 {
		t.Fatalf("pulses = %d want 1", notifier.count())
	}
}

func TestMachineTickCountdownNeverShowsZero(t *testing.T) {
	machine, _ := newTestMachine(5, 5)

	for i := 0; i < 40; i++ {
		session := machine.Tick()
		if session.RemainingSeconds == 0 {
			t.Fatalf("tick %d settled on zero: %+v", i, session)
		}
	}
}

func TestMachinePulseUsesConfiguredDuration(t *testing.T) {
	config := model.DefaultTimerConfig()
	config.WorkDurationSeconds = 5
	config.PulseDuration = 250 * time.Millisecond
	machine := New(config, testLogger())
	notifier := &recordingNotifier{}
	machine.SetHapticNotifier(notifier)

	for i := 0; i < 5; i++ {
		machine.Tick()
	}

	if notifier.count() != 1 || notifier.pulses[0] != 250*time.Millisecond {
		t.Fatalf("pulses = %v want [250ms]", notifier.pulses)
	}
}

func TestMachineNotifierErrorDoesNotAffectSession(t *testing.T) {
	machine, notifier := newTestMachine(5, 5)
	notifier.err = errors.New("motor offline")

	var session Session
	for i := 0; i < 5; i++ {
		session = machine.Tick()
	}

	if session.Phase != PhaseBreak || session.CompletedCycles != 1 {
		t.Fatalf("session = %+v want break after failed pulse", session)
	}
}

func TestMachineTickNoOpWhilePausedOrInSettings(t *testing.T) {
	machine, _ := newTestMachine(20, 5)

	machine.ToggleRunning()
	if got := machine.Tick(); got.RemainingSeconds != 20 {
		t.Fatalf("paused tick remaining = %d want 20", got.RemainingSeconds)
	}

	machine.ToggleRunning()
	machine.OpenSettings()
	if got := machine.Tick(); got.RemainingSeconds != 20 {
		t.Fatalf("settings tick remaining = %d want 20", got.RemainingSeconds)
	}
}

func TestMachineSettingsScenario(t *testing.T) {
	machine, _ := newTestMachine(20, 5)
	for i := 0; i < 10; i++ {
		machine.Tick()
	}
	if got := machine.Snapshot().RemainingSeconds; got != 10 {
		t.Fatalf("remaining = %d want 10", got)
	}

	machine.OpenSettings()
	machine.SetWorkDuration(5)
	session := machine.CloseSettings()

	if session.WorkDurationSeconds != 25 || session.RemainingSeconds != 25 {
		t.Fatalf("session = %+v want work 25 remaining 25", session)
	}
}

func TestMachineWorkDurationFloor(t *testing.T) {
	machine, _ := newTestMachine(20, 5)

	var session Session
	for i := 0; i < 10; i++ {
		session = machine.SetWorkDuration(-5)
	}
	if session.WorkDurationSeconds != 5 {
		t.Fatalf("work = %d want 5", session.WorkDurationSeconds)
	}
	if session = machine.SetBreakDuration(-5); session.BreakDurationSeconds != 5 {
		t.Fatalf("break = %d want 5", session.BreakDurationSeconds)
	}
}

func TestMachineReset(t *testing.T) {
	machine, _ := newTestMachine(5, 5)
	for i := 0; i < 7; i++ {
		machine.Tick()
	}

	session := machine.Reset()

	want := Session{Phase: PhaseWork, RemainingSeconds: 5, WorkDurationSeconds: 5, BreakDurationSeconds: 5}
	if session != want {
		t.Fatalf("reset = %+v want %+v", session, want)
	}
}

func TestMachineEvents(t *testing.T) {
	machine, _ := newTestMachine(5, 5)
	events := machine.Subscribe(32)

	for i := 0; i < 5; i++ {
		machine.Tick()
	}
	machine.ToggleRunning()
	machine.Tick()
	machine.Close()

	var types []EventType
	for event := range events {
		types = append(types, event.Type)
	}

	want := []EventType{EventTick, EventTick, EventTick, EventTick, EventTick, EventPhaseChange, EventControl}
	if len(types) != len(want) {
		t.Fatalf("events = %v want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("event %d = %s want %s", i, types[i], want[i])
		}
	}
}

func TestMachinePhaseChangeEventCarriesSession(t *testing.T) {
	machine, _ := newTestMachine(5, 10)
	events := machine.Subscribe(16)

	for i := 0; i < 5; i++ {
		machine.Tick()
	}

	var last Event
	for len(events) > 0 {
		last = <-events
	}
	if last.Type != EventPhaseChange || last.Session.Phase != PhaseBreak || last.Session.RemainingSeconds != 10 {
		t.Fatalf("last event = %+v want phase change into 10s break", last)
	}
	if last.At.IsZero() {
		t.Fatalf("event timestamp not set")
	}
}

func TestMachineSubscribeAfterClose(t *testing.T) {
	machine, _ := newTestMachine(20, 5)
	machine.Close()
	machine.Close()

	if _, ok := <-machine.Subscribe(1); ok {
		t.Fatalf("expected closed channel")
	}
	if got := machine.Tick(); got.RemainingSeconds != 19 {
		t.Fatalf("tick after close remaining = %d want 19", got.RemainingSeconds)
	}
}

func TestMachineSlowSubscriberDoesNotBlock(t *testing.T) {
	machine, _ := newTestMachine(20, 5)
	_ = machine.Subscribe(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			machine.Tick()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticks blocked on a full subscriber")
	}
}

package interval

import (
	"log/slog"
	"sync"
	"time"

	"pulsetimer/internal/core/model"
)

// HapticNotifier emits a single vibration-style pulse.
type HapticNotifier interface {
	Pulse(duration time.Duration) error
}

// Machine owns one Session and serializes every intent applied to it.
type Machine struct {
	mu       sync.Mutex
	session  Session
	pulse    time.Duration
	notifier HapticNotifier
	logger   *slog.Logger
	events   []chan Event
	wake     chan struct{}
	closed   bool
}

// New creates a Machine in the initial Work/Running/SettingsClosed state.
func New(config model.TimerConfig, logger *slog.Logger) *Machine {
	config = config.Normalized()
	if logger == nil {
		logger = slog.Default()
	}
	return &Machine{
		session: NewSession(config),
		pulse:   config.PulseDuration,
		logger:  logger,
		wake:    make(chan struct{}, 1),
	}
}

// SetHapticNotifier injects the pulse output.
func (machine *Machine) SetHapticNotifier(notifier HapticNotifier) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	machine.notifier = notifier
}

// Subscribe registers a new observer channel.
func (machine *Machine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.closed {
		close(ch)
		return ch
	}
	machine.events = append(machine.events, ch)
	return ch
}

// Close closes all observer channels. Intents applied afterwards still update the session.
func (machine *Machine) Close() {
	machine.mu.Lock()
	if machine.closed {
		machine.mu.Unlock()
		return
	}
	machine.closed = true
	events := machine.events
	machine.events = nil
	machine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns a copy of the current session.
func (machine *Machine) Snapshot() Session {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.session
}

// Active reports whether the countdown currently advances on ticks.
func (machine *Machine) Active() bool {
	return machine.Snapshot().Active()
}

// Tick advances the countdown by one second. A countdown that lands on zero
// switches phase within the same tick, so 00:00 is never held for a full second.
func (machine *Machine) Tick() Session {
	session := machine.Dispatch(Intent{Kind: IntentTick})
	if session.Active() && session.RemainingSeconds == 0 {
		session = machine.Dispatch(Intent{Kind: IntentTick})
	}
	return session
}

// ToggleRunning flips between running and paused.
func (machine *Machine) ToggleRunning() Session {
	return machine.Dispatch(Intent{Kind: IntentToggleRunning})
}

// Reset pauses and restarts the Work phase with zero completed cycles.
func (machine *Machine) Reset() Session {
	return machine.Dispatch(Intent{Kind: IntentReset})
}

// OpenSettings suspends the countdown.
func (machine *Machine) OpenSettings() Session {
	return machine.Dispatch(Intent{Kind: IntentOpenSettings})
}

// CloseSettings resumes the countdown from the full length of the current phase.
func (machine *Machine) CloseSettings() Session {
	return machine.Dispatch(Intent{Kind: IntentCloseSettings})
}

// SetWorkDuration adjusts the work length by delta seconds, floored at five.
func (machine *Machine) SetWorkDuration(delta int) Session {
	return machine.Dispatch(Intent{Kind: IntentAdjustWork, Delta: delta})
}

// SetBreakDuration adjusts the break length by delta seconds, floored at five.
func (machine *Machine) SetBreakDuration(delta int) Session {
	return machine.Dispatch(Intent{Kind: IntentAdjustBreak, Delta: delta})
}

// Dispatch applies one intent, notifies observers and runs requested effects.
func (machine *Machine) Dispatch(intent Intent) Session {
	now := time.Now()

	machine.mu.Lock()
	before := machine.session
	after, effects := Apply(before, intent)
	machine.session = after
	event, ok := classify(before, after, intent, now)
	if ok {
		machine.emitLocked(event)
	}
	if intent.Kind != IntentTick {
		machine.signalLocked()
	}
	notifier := machine.notifier
	pulse := machine.pulse
	machine.mu.Unlock()

	if ok {
		machine.logEvent(event, before)
	}
	for _, effect := range effects {
		machine.runEffect(effect, notifier, pulse)
	}
	return after
}

func (machine *Machine) wakeups() <-chan struct{} {
	return machine.wake
}

func (machine *Machine) runEffect(effect Effect, notifier HapticNotifier, pulse time.Duration) {
	if effect != EffectHapticPulse || notifier == nil {
		return
	}
	if err := notifier.Pulse(pulse); err != nil {
		machine.logger.Warn("haptic pulse failed", "error", err)
	}
}

func (machine *Machine) logEvent(event Event, before Session) {
	switch event.Type {
	case EventPhaseChange:
		machine.logger.Info("phase change",
			"from", before.Phase,
			"to", event.Session.Phase,
			"remaining_seconds", event.Session.RemainingSeconds,
			"completed_cycles", event.Session.CompletedCycles,
		)
	case EventControl:
		machine.logger.Debug("control",
			"intent", event.Intent,
			"running", event.Session.Running,
			"settings_open", event.Session.SettingsOpen,
			"work_seconds", event.Session.WorkDurationSeconds,
			"break_seconds", event.Session.BreakDurationSeconds,
		)
	}
}

func (machine *Machine) signalLocked() {
	select {
	case machine.wake <- struct{}{}:
	default:
	}
}

func (machine *Machine) emitLocked(event Event) {
	for _, ch := range machine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

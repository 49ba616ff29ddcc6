package interval

import "pulsetimer/internal/core/model"

// Phase identifies which interval kind is active.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Session is the complete mutable state of one timer run.
type Session struct {
	Phase                Phase
	RemainingSeconds     int
	Running              bool
	CompletedCycles      int
	WorkDurationSeconds  int
	BreakDurationSeconds int
	SettingsOpen         bool
}

// NewSession returns a running Work session with a full countdown.
func NewSession(config model.TimerConfig) Session {
	config = config.Normalized()
	return Session{
		Phase:                PhaseWork,
		RemainingSeconds:     config.WorkDurationSeconds,
		Running:              true,
		WorkDurationSeconds:  config.WorkDurationSeconds,
		BreakDurationSeconds: config.BreakDurationSeconds,
	}
}

// PhaseDuration returns the configured length of the current phase.
func (session Session) PhaseDuration() int {
	if session.Phase == PhaseBreak {
		return session.BreakDurationSeconds
	}
	return session.WorkDurationSeconds
}

// Active reports whether ticks advance the countdown.
func (session Session) Active() bool {
	return session.Running && !session.SettingsOpen
}

// IntentKind names a user intent or the periodic tick.
type IntentKind string

const (
	IntentTick          IntentKind = "tick"
	IntentToggleRunning IntentKind = "toggle_running"
	IntentReset         IntentKind = "reset"
	IntentOpenSettings  IntentKind = "open_settings"
	IntentCloseSettings IntentKind = "close_settings"
	IntentAdjustWork    IntentKind = "adjust_work"
	IntentAdjustBreak   IntentKind = "adjust_break"
)

// Intent is a single input to the state machine. Delta is used by the adjust intents.
type Intent struct {
	Kind  IntentKind
	Delta int
}

// Effect is a side effect requested by a transition.
type Effect string

// EffectHapticPulse asks the notifier for one pulse.
const EffectHapticPulse Effect = "haptic_pulse"

// Apply computes the next session for an intent. It never mutates its input.
func Apply(session Session, intent Intent) (Session, []Effect) {
	switch intent.Kind {
	case IntentTick:
		return tick(session)
	case IntentToggleRunning:
		session.Running = !session.Running
	case IntentReset:
		session.Running = false
		session.Phase = PhaseWork
		session.RemainingSeconds = session.WorkDurationSeconds
		session.CompletedCycles = 0
	case IntentOpenSettings:
		session.SettingsOpen = true
	case IntentCloseSettings:
		session.SettingsOpen = false
		session.RemainingSeconds = session.PhaseDuration()
	case IntentAdjustWork:
		session.WorkDurationSeconds = adjust(session.WorkDurationSeconds, intent.Delta)
	case IntentAdjustBreak:
		session.BreakDurationSeconds = adjust(session.BreakDurationSeconds, intent.Delta)
	}
	return session, nil
}

func tick(session Session) (Session, []Effect) {
	if !session.Active() {
		return session, nil
	}
	if session.RemainingSeconds > 0 {
		session.RemainingSeconds--
		return session, nil
	}

	if session.Phase == PhaseWork {
		session.CompletedCycles++
		session.Phase = PhaseBreak
		session.RemainingSeconds = session.BreakDurationSeconds
		return session, []Effect{EffectHapticPulse}
	}
	session.Phase = PhaseWork
	session.RemainingSeconds = session.WorkDurationSeconds
	return session, nil
}

func adjust(current, delta int) int {
	if delta == 0 {
		return current
	}
	return model.NormalizeDuration(current + delta)
}

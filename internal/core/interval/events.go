package interval

import "time"

// EventType defines the type of Machine event.
type EventType string

const (
	EventPhaseChange EventType = "phase_change"
	EventTick        EventType = "tick"
	EventControl     EventType = "control"
)

// Event represents a Machine update for observers.
type Event struct {
	Type    EventType
	Intent  IntentKind
	Session Session
	At      time.Time
}

func classify(before, after Session, intent Intent, at time.Time) (Event, bool) {
	event := Event{Intent: intent.Kind, Session: after, At: at}
	switch {
	case before.Phase != after.Phase:
		event.Type = EventPhaseChange
	case intent.Kind == IntentTick:
		if before == after {
			return Event{}, false
		}
		event.Type = EventTick
	default:
		event.Type = EventControl
	}
	return event, true
}

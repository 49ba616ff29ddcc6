package platform

import (
	"errors"
	"time"

	"pulsetimer/internal/core/interval"
)

// ErrAudioUnavailable indicates the pulse output device could not be opened.
var ErrAudioUnavailable = errors.New("audio output unavailable")

// NopNotifier discards pulses.
type NopNotifier struct{}

// Pulse does nothing.
func (NopNotifier) Pulse(time.Duration) error {
	return nil
}

// NewHapticNotifier returns the platform pulse output, or a NopNotifier when disabled.
// Desktop hosts have no vibration motor, so the pulse is rendered as a short tone.
func NewHapticNotifier(enabled bool) interval.HapticNotifier {
	if !enabled {
		return NopNotifier{}
	}
	return NewBeepNotifier(DefaultToneConfig())
}

package model

import "time"

const (
	// MinDurationSeconds is the floor for both phase lengths.
	MinDurationSeconds = 5
	// DurationStepSeconds is the granularity of duration adjustments.
	DurationStepSeconds = 5

	DefaultWorkDurationSeconds  = 20
	DefaultBreakDurationSeconds = 5
	DefaultPulseDuration        = 500 * time.Millisecond
)

// TimerConfig contains runtime settings for the interval state machine and its driver.
type TimerConfig struct {
	WorkDurationSeconds  int
	BreakDurationSeconds int

	TickInterval  time.Duration
	PulseDuration time.Duration
}

// DefaultTimerConfig returns the stock 20s work / 5s break cycle.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		WorkDurationSeconds:  DefaultWorkDurationSeconds,
		BreakDurationSeconds: DefaultBreakDurationSeconds,
		TickInterval:         time.Second,
		PulseDuration:        DefaultPulseDuration,
	}
}

// NormalizeDuration clamps seconds to the floor and rounds up to the next step.
func NormalizeDuration(seconds int) int {
	if seconds < MinDurationSeconds {
		return MinDurationSeconds
	}
	if rem := seconds % DurationStepSeconds; rem != 0 {
		seconds += DurationStepSeconds - rem
	}
	return seconds
}

// Normalized returns a copy with durations and intervals in range.
func (config TimerConfig) Normalized() TimerConfig {
	config.WorkDurationSeconds = NormalizeDuration(config.WorkDurationSeconds)
	config.BreakDurationSeconds = NormalizeDuration(config.BreakDurationSeconds)
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	if config.PulseDuration <= 0 {
		config.PulseDuration = DefaultPulseDuration
	}
	return config
}

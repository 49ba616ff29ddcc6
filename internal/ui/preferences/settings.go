package preferences

import (
	"log/slog"
	"time"

	"pulsetimer/internal/core/model"
)

// Settings defines start-up preferences read from the config file.
type Settings struct {
	WorkDurationSeconds  int
	BreakDurationSeconds int
	PulseDuration        time.Duration
	TickInterval         time.Duration

	AudioEnabled   bool
	SplashDuration time.Duration
	LogLevel       slog.Level
}

// DefaultSettings returns default settings for the timer.
func DefaultSettings() Settings {
	return Settings{
		WorkDurationSeconds:  model.DefaultWorkDurationSeconds,
		BreakDurationSeconds: model.DefaultBreakDurationSeconds,
		PulseDuration:        model.DefaultPulseDuration,
		TickInterval:         time.Second,
		AudioEnabled:         true,
		SplashDuration:       1200 * time.Millisecond,
		LogLevel:             slog.LevelInfo,
	}
}

// TimerConfig converts settings to a normalized TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		WorkDurationSeconds:  settings.WorkDurationSeconds,
		BreakDurationSeconds: settings.BreakDurationSeconds,
		TickInterval:         settings.TickInterval,
		PulseDuration:        settings.PulseDuration,
	}.Normalized()
}

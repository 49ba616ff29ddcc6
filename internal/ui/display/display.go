// Package display holds the text every presentation surface renders for a session.
package display

import (
	"fmt"

	"pulsetimer/internal/core/interval"
)

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// PhaseLabel returns the human label for a phase.
func PhaseLabel(phase interval.Phase) string {
	if phase == interval.PhaseBreak {
		return "Break"
	}
	return "Work"
}

// ToggleLabel names the action the run/pause control performs.
func ToggleLabel(running bool) string {
	if running {
		return "Pause"
	}
	return "Start"
}

// CompletedLabel renders the completed-cycle count.
func CompletedLabel(cycles int) string {
	return fmt.Sprintf("Completed: %d", cycles)
}

// DurationLabel renders a settings row such as "Work: 20 sec".
func DurationLabel(phase interval.Phase, seconds int) string {
	return fmt.Sprintf("%s: %d sec", PhaseLabel(phase), seconds)
}

// Status is the one-line summary used by the tray.
func Status(session interval.Session) string {
	status := fmt.Sprintf("%s %s", PhaseLabel(session.Phase), FormatClock(session.RemainingSeconds))
	if session.SettingsOpen {
		return status + " (settings)"
	}
	if !session.Running {
		return status + " (paused)"
	}
	return status
}

package screen

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pulsetimer/internal/core/interval"
	"pulsetimer/internal/ui/display"
)

var (
	workColor  = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	breakColor = color.NRGBA{R: 98, G: 195, B: 121, A: 255}
	textColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	mutedColor = color.NRGBA{R: 170, G: 170, B: 170, A: 255}
)

// TimerCallbacks forwards timer screen intents.
type TimerCallbacks struct {
	OnToggleRunning func()
	OnReset         func()
	OnOpenSettings  func()
}

// Timer is the main countdown screen.
type Timer struct {
	content        fyne.CanvasObject
	callbacks      TimerCallbacks
	phaseLabel     *canvas.Text
	clockLabel     *canvas.Text
	completedLabel *canvas.Text
	toggleButton   *widget.Button
	resetButton    *widget.Button
	settingsButton *widget.Button
}

// NewTimer builds the timer screen content.
func NewTimer(callbacks TimerCallbacks) *Timer {
	timer := &Timer{callbacks: callbacks}

	timer.phaseLabel = canvas.NewText("Work", workColor)
	timer.phaseLabel.Alignment = fyne.TextAlignCenter
	timer.phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	timer.phaseLabel.TextSize = 16

	timer.clockLabel = canvas.NewText("--:--", textColor)
	timer.clockLabel.Alignment = fyne.TextAlignCenter
	timer.clockLabel.TextStyle = fyne.TextStyle{Monospace: true}
	timer.clockLabel.TextSize = 40

	timer.completedLabel = canvas.NewText("", mutedColor)
	timer.completedLabel.Alignment = fyne.TextAlignCenter
	timer.completedLabel.TextSize = 13

	timer.toggleButton = widget.NewButton("Pause", func() { call(timer.callbacks.OnToggleRunning) })
	timer.resetButton = widget.NewButton("Reset", func() { call(timer.callbacks.OnReset) })
	timer.settingsButton = widget.NewButton("Settings", func() { call(timer.callbacks.OnOpenSettings) })

	timer.content = container.New(&columnLayout{gaps: []float32{0, 16, 8, 12}},
		container.NewVBox(timer.phaseLabel, timer.clockLabel),
		container.NewHBox(timer.toggleButton, timer.resetButton),
		timer.settingsButton,
		timer.completedLabel,
	)
	return timer
}

// Content returns the canvas object to place in a window.
func (timer *Timer) Content() fyne.CanvasObject {
	return timer.content
}

// Update renders session. Must run on the UI thread.
func (timer *Timer) Update(session interval.Session) {
	timer.phaseLabel.Text = display.PhaseLabel(session.Phase)
	timer.phaseLabel.Color = workColor
	if session.Phase == interval.PhaseBreak {
		timer.phaseLabel.Color = breakColor
	}
	timer.phaseLabel.Refresh()

	timer.clockLabel.Text = display.FormatClock(session.RemainingSeconds)
	timer.clockLabel.Refresh()

	timer.completedLabel.Text = display.CompletedLabel(session.CompletedCycles)
	timer.completedLabel.Refresh()

	timer.toggleButton.SetText(display.ToggleLabel(session.Running))
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pulsetimer/internal/core/interval"
	"pulsetimer/internal/core/model"
	"pulsetimer/internal/ui/display"
)

// PanelCallbacks forwards settings intents.
type PanelCallbacks struct {
	OnAdjustWork  func(delta int)
	OnAdjustBreak func(delta int)
	OnBack        func()
}

// Panel is the duration settings screen.
type Panel struct {
	content    fyne.CanvasObject
	callbacks  PanelCallbacks
	workLabel  *widget.Label
	breakLabel *widget.Label
	workDown   *widget.Button
	workUp     *widget.Button
	breakDown  *widget.Button
	breakUp    *widget.Button
	backButton *widget.Button
}

// NewPanel builds the settings screen content.
func NewPanel(callbacks PanelCallbacks) *Panel {
	panel := &Panel{callbacks: callbacks}

	step := model.DurationStepSeconds
	panel.workLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	panel.breakLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	panel.workDown = widget.NewButton("-5", func() { panel.adjustWork(-step) })
	panel.workUp = widget.NewButton("+5", func() { panel.adjustWork(step) })
	panel.breakDown = widget.NewButton("-5", func() { panel.adjustBreak(-step) })
	panel.breakUp = widget.NewButton("+5", func() { panel.adjustBreak(step) })
	panel.backButton = widget.NewButton("Back", func() {
		if panel.callbacks.OnBack != nil {
			panel.callbacks.OnBack()
		}
	})

	title := widget.NewLabelWithStyle("Set Durations", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	panel.content = container.NewCenter(container.NewVBox(
		title,
		panel.workLabel,
		container.NewCenter(container.NewHBox(panel.workDown, panel.workUp)),
		panel.breakLabel,
		container.NewCenter(container.NewHBox(panel.breakDown, panel.breakUp)),
		container.NewCenter(panel.backButton),
	))
	return panel
}

// Content returns the canvas object to place in a window.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// Update renders the current durations. Must run on the UI thread.
func (panel *Panel) Update(session interval.Session) {
	panel.workLabel.SetText(display.DurationLabel(interval.PhaseWork, session.WorkDurationSeconds))
	panel.breakLabel.SetText(display.DurationLabel(interval.PhaseBreak, session.BreakDurationSeconds))
	if session.WorkDurationSeconds <= model.MinDurationSeconds {
		panel.workDown.Disable()
	} else {
		panel.workDown.Enable()
	}
	if session.BreakDurationSeconds <= model.MinDurationSeconds {
		panel.breakDown.Disable()
	} else {
		panel.breakDown.Enable()
	}
}

func (panel *Panel) adjustWork(delta int) {
	if panel.callbacks.OnAdjustWork != nil {
		panel.callbacks.OnAdjustWork(delta)
	}
}

func (panel *Panel) adjustBreak(delta int) {
	if panel.callbacks.OnAdjustBreak != nil {
		panel.callbacks.OnAdjustBreak(delta)
	}
}

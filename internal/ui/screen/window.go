package screen

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"pulsetimer/internal/core/interval"
	"pulsetimer/internal/ui/preferences"
)

// Controller receives the intents forwarded by the screens.
type Controller interface {
	ToggleRunning() interval.Session
	Reset() interval.Session
	OpenSettings() interval.Session
	CloseSettings() interval.Session
	SetWorkDuration(delta int) interval.Session
	SetBreakDuration(delta int) interval.Session
}

// Config defines window visuals.
type Config struct {
	Title string
	Size  fyne.Size
}

// DefaultConfig sizes the window like a small round wearable display.
func DefaultConfig() Config {
	return Config{
		Title: "Pulse Timer",
		Size:  fyne.NewSize(240, 240),
	}
}

// Window shows either the timer screen or the settings panel.
type Window struct {
	window       fyne.Window
	controller   Controller
	timer        *Timer
	panel        *preferences.Panel
	timerRoot    fyne.CanvasObject
	panelRoot    fyne.CanvasObject
	settingsOpen bool
}

// New creates the main window. Call Render before Show.
func New(app fyne.App, config Config, controller Controller) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	screen := &Window{window: window, controller: controller}
	screen.timer = NewTimer(TimerCallbacks{
		OnToggleRunning: func() { screen.Render(controller.ToggleRunning()) },
		OnReset:         func() { screen.Render(controller.Reset()) },
		OnOpenSettings:  func() { screen.Render(controller.OpenSettings()) },
	})
	screen.panel = preferences.NewPanel(preferences.PanelCallbacks{
		OnAdjustWork:  func(delta int) { screen.Render(controller.SetWorkDuration(delta)) },
		OnAdjustBreak: func(delta int) { screen.Render(controller.SetBreakDuration(delta)) },
		OnBack:        func() { screen.Render(controller.CloseSettings()) },
	})

	screen.timerRoot = withBackground(screen.timer.Content())
	screen.panelRoot = withBackground(screen.panel.Content())
	window.SetContent(screen.timerRoot)
	window.Resize(config.Size)
	window.SetFixedSize(true)
	return screen
}

// Render shows session on the active screen. Must run on the UI thread.
func (screen *Window) Render(session interval.Session) {
	if session.SettingsOpen != screen.settingsOpen {
		screen.settingsOpen = session.SettingsOpen
		if session.SettingsOpen {
			screen.window.SetContent(screen.panelRoot)
		} else {
			screen.window.SetContent(screen.timerRoot)
		}
	}
	if session.SettingsOpen {
		screen.panel.Update(session)
		return
	}
	screen.timer.Update(session)
}

// Show displays the window.
func (screen *Window) Show() {
	screen.window.Show()
	screen.window.RequestFocus()
}

// SetOnClosed registers a handler for the window being closed.
func (screen *Window) SetOnClosed(handler func()) {
	screen.window.SetOnClosed(handler)
}

// Window exposes the underlying fyne window.
func (screen *Window) Window() fyne.Window {
	return screen.window
}

func withBackground(content fyne.CanvasObject) fyne.CanvasObject {
	background := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	return container.NewStack(background, content)
}

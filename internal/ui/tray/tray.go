package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pulsetimer/internal/core/interval"
	"pulsetimer/internal/ui/display"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow          func()
	OnToggleRunning func()
	OnReset         func()
	OnSettings      func()
	OnQuit          func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	title      string
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	settings   *fyne.MenuItem
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem(display.ToggleLabel(true), func() { call(manager.callbacks.OnToggleRunning) })
	manager.resetItem = fyne.NewMenuItem("Reset", func() { call(manager.callbacks.OnReset) })
	manager.settings = fyne.NewMenuItem("Settings", func() { call(manager.callbacks.OnSettings) })

	manager.refreshMenu()
	return manager
}

// Update reflects session in the status line and toggle label.
func (manager *Manager) Update(session interval.Session) {
	manager.statusItem.Label = "Status: " + display.Status(session)
	manager.toggleItem.Label = display.ToggleLabel(session.Running)
	manager.toggleItem.Disabled = session.SettingsOpen
	manager.settings.Disabled = session.SettingsOpen
	manager.refreshMenu()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() { call(manager.callbacks.OnShow) }),
		manager.toggleItem,
		manager.resetItem,
		manager.settings,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) }),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

package terminal

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the terminal timer
type KeyMap struct {
	// Timer screen
	Toggle   key.Binding
	Reset    key.Binding
	Settings key.Binding

	// Settings screen
	WorkUp    key.Binding
	WorkDown  key.Binding
	BreakUp   key.Binding
	BreakDown key.Binding
	Back      key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		WorkUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "work +5"),
		),
		WorkDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "work -5"),
		),
		BreakUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "break +5"),
		),
		BreakDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "break -5"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// timerKeys and settingsKeys adapt KeyMap to help.KeyMap for each screen.
type timerKeys struct{ KeyMap }

func (k timerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Settings, k.Help, k.Quit}
}

func (k timerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Settings},
		{k.Help, k.Quit},
	}
}

type settingsKeys struct{ KeyMap }

func (k settingsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.WorkUp, k.WorkDown, k.BreakUp, k.BreakDown, k.Back}
}

func (k settingsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.WorkUp, k.WorkDown},
		{k.BreakUp, k.BreakDown},
		{k.Back, k.Help, k.Quit},
	}
}

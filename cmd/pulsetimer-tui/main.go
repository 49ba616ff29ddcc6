package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pulsetimer/internal/app"
	"pulsetimer/internal/ui/terminal"
)

func main() {
	options, err := app.ParseFlags("pulsetimer-tui", os.Args[1:], os.Stderr)
	if app.IsHelp(err) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pulsetimer-tui: %v\n", err)
		os.Exit(2)
	}

	// The alt screen owns stdout/stderr; logs go to -log-file or nowhere.
	runtime, err := app.Bootstrap(app.Name, options, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pulsetimer-tui: %v\n", err)
		os.Exit(1)
	}

	events := runtime.Machine.Subscribe(8)
	runtime.Driver.Start(context.Background())

	p := tea.NewProgram(
		terminal.NewModel(runtime.Machine, events),
		tea.WithAltScreen(),
	)

	_, runErr := p.Run()
	if err := runtime.Close(); err != nil {
		runtime.Logger.Warn("shutdown", "error", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"pulsetimer/internal/app"
	"pulsetimer/internal/ui/screen"
	"pulsetimer/internal/ui/splash"
	"pulsetimer/internal/ui/tray"
	"pulsetimer/resources"
)

func main() {
	options, err := app.ParseFlags("pulsetimer", os.Args[1:], os.Stderr)
	if app.IsHelp(err) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pulsetimer: %v\n", err)
		os.Exit(2)
	}

	runtime, err := app.Bootstrap(app.Name, options, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pulsetimer: %v\n", err)
		if app.IsAlreadyRunning(err) {
			return
		}
		os.Exit(1)
	}
	defer func() {
		if err := runtime.Close(); err != nil {
			runtime.Logger.Warn("shutdown", "error", err)
		}
	}()

	machine := runtime.Machine
	logger := runtime.Logger

	fyneApp := fyneapp.NewWithID("com.pulsetimer.app")
	logo := resources.MustLogo(resources.AppLogo)
	fyneApp.SetIcon(logo)

	config := screen.DefaultConfig()
	mainWindow := screen.New(fyneApp, config, machine)
	mainWindow.Render(machine.Snapshot())
	mainWindow.SetOnClosed(fyneApp.Quit)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, config.Title, tray.Callbacks{
			OnShow: mainWindow.Show,
			OnToggleRunning: func() {
				mainWindow.Render(machine.ToggleRunning())
			},
			OnReset: func() {
				mainWindow.Render(machine.Reset())
			},
			OnSettings: func() {
				mainWindow.Render(machine.OpenSettings())
				mainWindow.Show()
			},
			OnQuit: fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(logo)
	} else {
		logger.Debug("system tray unsupported on this platform")
	}

	render := func() {
		session := machine.Snapshot()
		mainWindow.Render(session)
		if trayManager != nil {
			trayManager.Update(session)
		}
	}

	render()

	events := machine.Subscribe(8)
	go func() {
		for range events {
			fyne.Do(render)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	splashScreen := splash.New(fyneApp, logo, config.Size)
	splashScreen.Show(runtime.Settings.SplashDuration, func() {
		mainWindow.Show()
		runtime.Driver.Start(ctx)
	})

	fyneApp.Run()
}

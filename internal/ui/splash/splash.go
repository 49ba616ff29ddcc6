package splash

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Screen is the start-up logo window.
type Screen struct {
	window fyne.Window
	timer  *time.Timer
}

// New creates an undecorated window showing logo.
func New(app fyne.App, logo fyne.Resource, size fyne.Size) *Screen {
	var window fyne.Window
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	} else {
		window = app.NewWindow("")
	}
	window.SetPadded(false)

	image := canvas.NewImageFromResource(logo)
	image.FillMode = canvas.ImageFillContain
	image.SetMinSize(fyne.NewSize(size.Width/2, size.Height/2))
	background := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 255})

	window.SetContent(container.NewStack(background, container.NewCenter(image)))
	window.Resize(size)
	window.CenterOnScreen()
	return &Screen{window: window}
}

// Show displays the splash for duration, then closes it and calls next on the UI thread.
// A non-positive duration skips the splash.
func (screen *Screen) Show(duration time.Duration, next func()) {
	if duration <= 0 {
		screen.window.Close()
		if next != nil {
			next()
		}
		return
	}

	screen.window.Show()
	screen.timer = time.AfterFunc(duration, func() {
		fyne.Do(func() {
			screen.window.Close()
			if next != nil {
				next()
			}
		})
	})
}

// Cancel stops a pending hand-off and closes the splash.
func (screen *Screen) Cancel() {
	if screen.timer != nil {
		screen.timer.Stop()
	}
	screen.window.Close()
}

package bar

import (
	"errors"
	"log"
	"time"

	"pomobar/internal/core/timekeeper"
	"pomobar/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Config defines bar geometry and colours.
type Config struct {
	X      int
	Y      int
	Width  int
	Height int
	Colors Colors
}

// Window manages the frameless progress bar window.
type Window struct {
	app      fyne.App
	window   fyne.Window
	config   Config
	bar      *Bar
	pause    *hotspot
	reset    *hotspot
	clicks   *ClickDetector
	now      func() time.Time
	snapshot timekeeper.Snapshot

	onReset        func()
	onTogglePause  func()
	onOpenSettings func()
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the bar window. It is not shown until Show is called.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("PomoBar")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash windows are undecorated and have no native frame.
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	barWindow := &Window{
		app:    app,
		window: window,
		config: config,
		clicks: NewClickDetector(DoubleClickWindow),
		now:    time.Now,
	}

	barWindow.bar = newBar(barWindow.handleBarTap)
	barWindow.pause = newHotspot("Pause", pauseColor, func() {
		if barWindow.onTogglePause != nil {
			barWindow.onTogglePause()
		}
	})
	barWindow.reset = newHotspot("o", resetColor, func() {
		if barWindow.onReset != nil {
			barWindow.onReset()
		}
	})

	window.SetContent(container.New(&barLayout{}, barWindow.bar, barWindow.pause, barWindow.reset))
	barWindow.applyGeometry()

	return barWindow
}

// SetOnReset sets the reset region handler.
func (barWindow *Window) SetOnReset(handler func()) {
	barWindow.onReset = handler
}

// SetOnTogglePause sets the pause region handler.
func (barWindow *Window) SetOnTogglePause(handler func()) {
	barWindow.onTogglePause = handler
}

// SetOnOpenSettings sets the double click handler.
func (barWindow *Window) SetOnOpenSettings(handler func()) {
	barWindow.onOpenSettings = handler
}

// Render repaints the bar for snapshot.
func (barWindow *Window) Render(snapshot timekeeper.Snapshot) {
	barWindow.snapshot = snapshot
	barWindow.bar.SetFrame(Compute(snapshot, barWindow.config.Width, barWindow.config.Colors))
	if snapshot.Session.Paused {
		barWindow.pause.SetLabel("Resume")
	} else {
		barWindow.pause.SetLabel("Pause")
	}
}

// UpdateConfig applies new geometry and colours immediately.
func (barWindow *Window) UpdateConfig(config Config) {
	barWindow.config = config
	barWindow.applyGeometry()
	barWindow.place()
	barWindow.Render(barWindow.snapshot)
}

// Show displays the bar and pins it above other windows.
func (barWindow *Window) Show() {
	barWindow.window.Show()
	barWindow.place()
}

// Hide hides the bar.
func (barWindow *Window) Hide() {
	barWindow.window.Hide()
}

func (barWindow *Window) handleBarTap() {
	if !barWindow.clicks.Click(barWindow.now()) {
		return
	}
	if barWindow.onOpenSettings != nil {
		barWindow.onOpenSettings()
	}
}

func (barWindow *Window) applyGeometry() {
	size := fyne.NewSize(float32(barWindow.config.Width), float32(barWindow.config.Height))
	barWindow.window.SetFixedSize(false)
	barWindow.window.Resize(size)
	barWindow.window.SetFixedSize(true)
}

func (barWindow *Window) place() {
	err := placeNative(barWindow.window, barWindow.config)
	if err == nil {
		return
	}
	if errors.Is(err, platform.ErrUnsupported) {
		log.Printf("bar placement: %v; window manager decides position", err)
		return
	}
	log.Printf("bar placement: %v", err)
}

// barLayout stretches the bar and pins two square regions to its right edge.
type barLayout struct{}

func (layout *barLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	bar := objects[0]
	pause := objects[1]
	reset := objects[2]

	bar.Move(fyne.NewPos(0, 0))
	bar.Resize(size)

	side := size.Height
	reset.Move(fyne.NewPos(size.Width-side, 0))
	reset.Resize(fyne.NewSize(side, side))
	pause.Move(fyne.NewPos(size.Width-2*side, 0))
	pause.Resize(fyne.NewSize(side, side))
}

func (layout *barLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(1, 1)
}

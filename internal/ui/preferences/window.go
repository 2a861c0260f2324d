package preferences

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the settings UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	onQuit   func()

	workTime     *widget.Entry
	breakTime    *widget.Entry
	xPos         *widget.Entry
	yPos         *widget.Entry
	width        *widget.Entry
	height       *widget.Entry
	autostart    *widget.Check
	workSwatch   *canvas.Rectangle
	breakSwatch  *canvas.Rectangle
	workColor    color.NRGBA
	breakColor   color.NRGBA
	cancelButton *widget.Button
	closeButton  *widget.Button
}

// New creates a settings window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("PomoBar Config")

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		workTime:    widget.NewEntry(),
		breakTime:   widget.NewEntry(),
		xPos:        widget.NewEntry(),
		yPos:        widget.NewEntry(),
		width:       widget.NewEntry(),
		height:      widget.NewEntry(),
		autostart:   widget.NewCheck("Launch at login", nil),
		workSwatch:  canvas.NewRectangle(settings.WorkColor),
		breakSwatch: canvas.NewRectangle(settings.BreakColor),
	}
	prefs.workSwatch.SetMinSize(fyne.NewSize(48, 24))
	prefs.breakSwatch.SetMinSize(fyne.NewSize(48, 24))

	workPick := widget.NewButton("Choose...", func() {
		prefs.pickColor("Work color", prefs.workColor, func(picked color.NRGBA) {
			prefs.workColor = picked
			prefs.workSwatch.FillColor = picked
			prefs.workSwatch.Refresh()
		})
	})
	breakPick := widget.NewButton("Choose...", func() {
		prefs.pickColor("Break color", prefs.breakColor, func(picked color.NRGBA) {
			prefs.breakColor = picked
			prefs.breakSwatch.FillColor = picked
			prefs.breakSwatch.Refresh()
		})
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("Colors", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work color:"), prefs.workSwatch, workPick),
		container.NewHBox(widget.NewLabel("Break color:"), prefs.breakSwatch, breakPick),
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(4,
			widget.NewLabel("Work Time:"), prefs.workTime,
			widget.NewLabel("Break Time:"), prefs.breakTime,
		),
		widget.NewLabelWithStyle("Geometry", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(4,
			widget.NewLabel("X pos:"), prefs.xPos,
			widget.NewLabel("Y pos:"), prefs.yPos,
			widget.NewLabel("Width:"), prefs.width,
			widget.NewLabel("Height:"), prefs.height,
		),
		prefs.autostart,
	)

	okButton := widget.NewButton("OK", prefs.handleSave)
	prefs.cancelButton = widget.NewButton("Cancel", prefs.Hide)
	prefs.closeButton = widget.NewButton("Close Bar", func() {
		if prefs.onQuit != nil {
			prefs.onQuit()
		}
	})
	buttons := container.NewVBox(
		container.NewHBox(okButton, layout.NewSpacer(), prefs.cancelButton),
		prefs.closeButton,
	)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(460, 380))
	window.SetCloseIntercept(prefs.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// SetOnQuit sets the "Close Bar" handler.
func (prefs *Window) SetOnQuit(handler func()) {
	prefs.onQuit = handler
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Hide dismisses the window and discards uncommitted edits.
// Hiding twice is harmless.
func (prefs *Window) Hide() {
	prefs.UpdateSettings(prefs.settings)
	prefs.window.Hide()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workTime.SetText(strconv.Itoa(settings.WorkMinutes))
	prefs.breakTime.SetText(strconv.Itoa(settings.BreakMinutes))
	prefs.xPos.SetText(strconv.Itoa(settings.X))
	prefs.yPos.SetText(strconv.Itoa(settings.Y))
	prefs.width.SetText(strconv.Itoa(settings.Width))
	prefs.height.SetText(strconv.Itoa(settings.Height))
	prefs.autostart.SetChecked(settings.Autostart)

	prefs.workColor = settings.WorkColor
	prefs.breakColor = settings.BreakColor
	prefs.workSwatch.FillColor = settings.WorkColor
	prefs.breakSwatch.FillColor = settings.BreakColor
	prefs.workSwatch.Refresh()
	prefs.breakSwatch.Refresh()
}

// Settings returns the last committed settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	settings.WorkMinutes = parseBounded(prefs.workTime.Text, settings.WorkMinutes, MinMinutes, MaxMinutes)
	settings.BreakMinutes = parseBounded(prefs.breakTime.Text, settings.BreakMinutes, MinMinutes, MaxMinutes)
	settings.X = parseBounded(prefs.xPos.Text, settings.X, MinPosition, MaxPosition)
	settings.Y = parseBounded(prefs.yPos.Text, settings.Y, MinPosition, MaxPosition)
	settings.Width = parseBounded(prefs.width.Text, settings.Width, MinWidth, MaxWidth)
	settings.Height = parseBounded(prefs.height.Text, settings.Height, MinHeight, MaxHeight)
	settings.WorkColor = prefs.workColor
	settings.BreakColor = prefs.breakColor
	settings.Autostart = prefs.autostart.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.Hide()
}

func (prefs *Window) pickColor(title string, current color.NRGBA, apply func(color.NRGBA)) {
	picker := dialog.NewColorPicker(title, "", func(picked color.Color) {
		apply(color.NRGBAModel.Convert(picked).(color.NRGBA))
	}, prefs.window)
	picker.Advanced = true
	picker.SetColor(current)
	picker.Show()
}

// parseBounded reads an integer field with spin-box semantics: out of
// range values snap to the nearest bound and unparsable text keeps previous.
func parseBounded(value string, previous, low, high int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return clamp(previous, low, high)
	}
	return clamp(parsed, low, high)
}

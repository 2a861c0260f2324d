package bar

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

var (
	backgroundColor = color.NRGBA{A: 255}
	readoutColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	resetColor      = color.NRGBA{R: 255, A: 255}
	pauseColor      = color.NRGBA{R: 255, G: 165, A: 255}
)

// readoutReserve is how many bar heights at the right edge stay free of text.
const readoutReserve = 2.5

// Bar draws the progress fill and readout and reports taps.
type Bar struct {
	widget.BaseWidget
	frame    Frame
	onTapped func()
}

func newBar(onTapped func()) *Bar {
	bar := &Bar{onTapped: onTapped}
	bar.ExtendBaseWidget(bar)
	return bar
}

// SetFrame replaces the drawn frame.
func (bar *Bar) SetFrame(frame Frame) {
	bar.frame = frame
	bar.Refresh()
}

// Frame returns the frame currently drawn.
func (bar *Bar) Frame() Frame {
	return bar.frame
}

// Tapped implements fyne.Tappable.
func (bar *Bar) Tapped(*fyne.PointEvent) {
	if bar.onTapped != nil {
		bar.onTapped()
	}
}

// CreateRenderer implements fyne.Widget.
func (bar *Bar) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(backgroundColor)
	fill := canvas.NewRectangle(color.Transparent)

	readout := canvas.NewText("", readoutColor)
	readout.Alignment = fyne.TextAlignTrailing
	readout.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	renderer := &barRenderer{
		bar:        bar,
		background: background,
		fill:       fill,
		readout:    readout,
		objects:    []fyne.CanvasObject{background, fill, readout},
	}
	renderer.apply()
	return renderer
}

type barRenderer struct {
	bar        *Bar
	background *canvas.Rectangle
	fill       *canvas.Rectangle
	readout    *canvas.Text
	objects    []fyne.CanvasObject
}

func (renderer *barRenderer) Layout(size fyne.Size) {
	renderer.background.Move(fyne.NewPos(0, 0))
	renderer.background.Resize(size)

	renderer.fill.Move(fyne.NewPos(0, 0))
	renderer.fill.Resize(fyne.NewSize(float32(renderer.bar.frame.FillWidth), size.Height))

	textWidth := size.Width - size.Height*readoutReserve
	if textWidth < 0 {
		textWidth = 0
	}
	renderer.readout.TextSize = FontSize(size.Height)
	renderer.readout.Move(fyne.NewPos(0, 0))
	renderer.readout.Resize(fyne.NewSize(textWidth, size.Height))
}

func (renderer *barRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (renderer *barRenderer) Refresh() {
	renderer.apply()
	renderer.Layout(renderer.bar.Size())
	for _, object := range renderer.objects {
		canvas.Refresh(object)
	}
}

func (renderer *barRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *barRenderer) Destroy() {}

func (renderer *barRenderer) apply() {
	frame := renderer.bar.frame
	renderer.fill.FillColor = frame.FillColor
	renderer.readout.Text = frame.Readout
	if frame.Readout == "" {
		renderer.readout.Hide()
	} else {
		renderer.readout.Show()
	}
}

// hotspot is a small coloured square button drawn on top of the bar.
type hotspot struct {
	widget.BaseWidget
	label    string
	color    color.NRGBA
	onTapped func()
}

func newHotspot(label string, fillColor color.NRGBA, onTapped func()) *hotspot {
	spot := &hotspot{label: label, color: fillColor, onTapped: onTapped}
	spot.ExtendBaseWidget(spot)
	return spot
}

func (spot *hotspot) SetLabel(label string) {
	if spot.label == label {
		return
	}
	spot.label = label
	spot.Refresh()
}

func (spot *hotspot) Label() string {
	return spot.label
}

// Tapped implements fyne.Tappable.
func (spot *hotspot) Tapped(*fyne.PointEvent) {
	if spot.onTapped != nil {
		spot.onTapped()
	}
}

// CreateRenderer implements fyne.Widget.
func (spot *hotspot) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(spot.color)
	text := canvas.NewText(spot.label, readoutColor)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}
	return &hotspotRenderer{
		spot:       spot,
		background: background,
		text:       text,
		objects:    []fyne.CanvasObject{background, text},
	}
}

type hotspotRenderer struct {
	spot       *hotspot
	background *canvas.Rectangle
	text       *canvas.Text
	objects    []fyne.CanvasObject
}

func (renderer *hotspotRenderer) Layout(size fyne.Size) {
	renderer.background.Resize(size)
	renderer.text.TextSize = FontSize(size.Height) * 0.8
	renderer.text.Resize(size)
}

func (renderer *hotspotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (renderer *hotspotRenderer) Refresh() {
	renderer.background.FillColor = renderer.spot.color
	renderer.text.Text = renderer.spot.label
	renderer.Layout(renderer.spot.Size())
	canvas.Refresh(renderer.background)
	canvas.Refresh(renderer.text)
}

func (renderer *hotspotRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *hotspotRenderer) Destroy() {}

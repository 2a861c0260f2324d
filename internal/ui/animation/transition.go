package animation

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// WidthDivisor scales the sweep. It is smaller than the step count,
	// so frames past step 40 wipe beyond the bar.
	WidthDivisor = 40
	// HueStep is the hue advance in degrees per frame.
	HueStep = 9
)

// Frame is one drawable step of the session transition.
type Frame struct {
	Width int
	Color color.NRGBA
}

// TransitionFrame returns the sweep rectangle width and colour for progress.
func TransitionFrame(barWidth, progress int) Frame {
	return Frame{
		Width: SweepWidth(barWidth, progress),
		Color: HueColor(progress),
	}
}

// SweepWidth returns barWidth*progress/WidthDivisor without clamping.
func SweepWidth(barWidth, progress int) int {
	if barWidth <= 0 || progress <= 0 {
		return 0
	}
	return barWidth * progress / WidthDivisor
}

// HueColor returns the fully saturated colour for the frame's hue.
func HueColor(progress int) color.NRGBA {
	hue := (progress * HueStep) % 360
	if hue < 0 {
		hue += 360
	}
	red, green, blue := colorful.Hsv(float64(hue), 1, 1).Clamped().RGB255()
	return color.NRGBA{R: red, G: green, B: blue, A: 255}
}

package animation

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepWidthOvershootsPastStepForty(t *testing.T) {
	assert.Equal(t, 0, SweepWidth(400, 0))
	assert.Equal(t, 10, SweepWidth(400, 1))
	assert.Equal(t, 400, SweepWidth(400, 40))
	assert.Equal(t, 590, SweepWidth(400, 59))
	assert.Equal(t, 0, SweepWidth(0, 30))
}

func TestSweepWidthTruncates(t *testing.T) {
	assert.Equal(t, 2, SweepWidth(100, 1))
	assert.Equal(t, 77, SweepWidth(103, 30))
}

func TestHueColorCycles(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, HueColor(0))
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, HueColor(40))
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 255, A: 255}, HueColor(20))
	assert.Equal(t, HueColor(20), HueColor(60))
}

func TestTransitionFrame(t *testing.T) {
	frame := TransitionFrame(800, 20)

	assert.Equal(t, 400, frame.Width)
	assert.Equal(t, HueColor(20), frame.Color)
}

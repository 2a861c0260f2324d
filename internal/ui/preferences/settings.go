package preferences

import (
	"image/color"
	"time"

	"pomobar/internal/core/model"
)

// Editable ranges for the settings window.
const (
	MinMinutes  = 0
	MaxMinutes  = 1440
	MinPosition = -5000
	MaxPosition = 5000
	MinWidth    = 100
	MaxWidth    = 3000
	MinHeight   = 2
	MaxHeight   = 200
)

// DefaultBarHeight is the bar thickness used when no height is stored.
const DefaultBarHeight = 30

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes  int
	BreakMinutes int
	WorkColor    color.NRGBA
	BreakColor   color.NRGBA

	X      int
	Y      int
	Width  int
	Height int

	Autostart bool
}

// DefaultSettings returns a full-width bar along the bottom of the screen.
func DefaultSettings(screenWidth, screenHeight int) Settings {
	return Settings{
		WorkMinutes:  25,
		BreakMinutes: 5,
		WorkColor:    color.NRGBA{R: 89, G: 221, B: 247, A: 255},
		BreakColor:   color.NRGBA{R: 200, G: 221, B: 247, A: 255},
		X:            0,
		Y:            screenHeight - DefaultBarHeight,
		Width:        screenWidth,
		Height:       DefaultBarHeight,
	}
}

// TimerConfig converts settings to session durations.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Work:  time.Duration(settings.WorkMinutes) * time.Minute,
		Break: time.Duration(settings.BreakMinutes) * time.Minute,
	}
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

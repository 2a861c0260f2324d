package platform

import "errors"

// ErrUnsupported indicates a native feature is not available on this system.
var ErrUnsupported = errors.New("unsupported on this platform")

const (
	fallbackScreenWidth  = 1920
	fallbackScreenHeight = 1080
)

// ScreenSize returns the primary screen size in pixels.
// When the size cannot be queried it returns 1920x1080 and the cause.
func ScreenSize() (int, int, error) {
	width, height, err := screenSize()
	if err != nil || width <= 0 || height <= 0 {
		return fallbackScreenWidth, fallbackScreenHeight, err
	}
	return width, height, nil
}

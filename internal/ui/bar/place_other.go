//go:build !linux && !windows

package bar

import (
	"pomobar/internal/platform"

	"fyne.io/fyne/v2"
)

func placeNative(fyne.Window, Config) error {
	return platform.ErrUnsupported
}

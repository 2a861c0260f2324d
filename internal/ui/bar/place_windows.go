package bar

import (
	"fmt"
	"syscall"

	"pomobar/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

const (
	swpNoActivate = 0x0010
	swpShowWindow = 0x0040
)

var (
	user32DLL        = syscall.NewLazyDLL("user32.dll")
	procSetWindowPos = user32DLL.NewProc("SetWindowPos")
)

// hwndTopmost is HWND_TOPMOST, (HWND)-1.
var hwndTopmost = ^uintptr(0)

// placeNative moves the window and marks it topmost.
func placeNative(window fyne.Window, config Config) error {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return platform.ErrUnsupported
	}

	var placeErr error = platform.ErrUnsupported
	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			return
		}
		if hwnd == 0 {
			return
		}

		result, _, err := procSetWindowPos.Call(
			hwnd,
			hwndTopmost,
			intToUintptr(config.X),
			intToUintptr(config.Y),
			intToUintptr(config.Width),
			intToUintptr(config.Height),
			uintptr(swpNoActivate|swpShowWindow),
		)
		if result == 0 {
			placeErr = fmt.Errorf("set window pos: %w", err)
			return
		}
		placeErr = nil
	})
	return placeErr
}

func intToUintptr(value int) uintptr {
	return uintptr(uint32(int32(value)))
}

package bar

import (
	"fmt"
	"os/exec"
	"strings"

	"pomobar/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// placeNative moves the X11 window and keeps it above others with wmctrl.
func placeNative(window fyne.Window, config Config) error {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return platform.ErrUnsupported
	}

	var handle uintptr
	nativeWindow.RunNative(func(context any) {
		switch value := context.(type) {
		case driver.X11WindowContext:
			handle = value.WindowHandle
		case *driver.X11WindowContext:
			handle = value.WindowHandle
		}
	})
	if handle == 0 {
		return platform.ErrUnsupported
	}

	wmctrl, err := exec.LookPath("wmctrl")
	if err != nil {
		return fmt.Errorf("%w: wmctrl not found", platform.ErrUnsupported)
	}

	windowID := fmt.Sprintf("0x%x", handle)
	geometry := fmt.Sprintf("0,%d,%d,%d,%d", config.X, config.Y, config.Width, config.Height)
	if err := runWmctrl(wmctrl, "-i", "-r", windowID, "-e", geometry); err != nil {
		return err
	}
	return runWmctrl(wmctrl, "-i", "-r", windowID, "-b", "add,above")
}

func runWmctrl(path string, args ...string) error {
	output, err := exec.Command(path, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("wmctrl %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

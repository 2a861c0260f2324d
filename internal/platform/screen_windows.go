package platform

import (
	"fmt"
	"syscall"
)

const (
	smCxScreen = 0
	smCyScreen = 1
)

func screenSize() (int, int, error) {
	user32 := syscall.NewLazyDLL("user32.dll")
	getSystemMetrics := user32.NewProc("GetSystemMetrics")
	width, _, _ := getSystemMetrics.Call(uintptr(smCxScreen))
	height, _, _ := getSystemMetrics.Call(uintptr(smCyScreen))
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("get system metrics: screen size unavailable")
	}
	return int(width), int(height), nil
}

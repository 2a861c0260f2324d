package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func screenSize() (int, int, error) {
	path, err := exec.LookPath("xdpyinfo")
	if err != nil {
		return 0, 0, ErrUnsupported
	}
	output, err := exec.Command(path).Output()
	if err != nil {
		return 0, 0, fmt.Errorf("xdpyinfo: %w", err)
	}
	return parseDimensions(string(output))
}

// parseDimensions reads the "dimensions:  WxH pixels" line of xdpyinfo.
func parseDimensions(output string) (int, int, error) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "dimensions:") {
			continue
		}
		var width, height int
		if _, err := fmt.Sscanf(strings.TrimPrefix(line, "dimensions:"), "%dx%d", &width, &height); err != nil {
			return 0, 0, fmt.Errorf("parse screen dimensions: %w", err)
		}
		return width, height, nil
	}
	return 0, 0, fmt.Errorf("parse screen dimensions: no dimensions line")
}

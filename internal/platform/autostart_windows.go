//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) installLoginItem(item loginItem) error {
	quoted := `"` + strings.Trim(item.Exec, `"`) + `"`
	return runReg("add", registryRunKey, "/v", item.Name, "/t", "REG_SZ", "/d", quoted, "/f")
}

func (service *platformService) removeLoginItem(item loginItem) error {
	return runReg("delete", registryRunKey, "/v", item.Name, "/f")
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

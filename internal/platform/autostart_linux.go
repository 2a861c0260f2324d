//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var desktopEntryTemplate = template.Must(template.New("desktop entry").
	Funcs(template.FuncMap{"execLine": desktopExecLine}).
	Parse(`[Desktop Entry]
Type=Application
Name={{.Name}}
Comment=Pomodoro progress bar
Exec={{execLine .Exec}}
X-GNOME-Autostart-enabled=true
Terminal=false
`))

func (service *platformService) installLoginItem(item loginItem) error {
	path, err := service.desktopEntryPath(item)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}

	content, err := renderLoginItem(desktopEntryTemplate, item)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func (service *platformService) removeLoginItem(item loginItem) error {
	path, err := service.desktopEntryPath(item)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}

func (service *platformService) desktopEntryPath(item loginItem) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", item.Slug+".desktop"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

// desktopExecLine quotes paths containing spaces as the Exec key requires.
func desktopExecLine(execPath string) string {
	if !strings.ContainsAny(execPath, " \t") || strings.HasPrefix(execPath, `"`) {
		return execPath
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", "$", `\$`).Replace(execPath)
	return `"` + escaped + `"`
}

//go:build darwin

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

var launchAgentTemplate = template.Must(template.New("launch agent").
	Funcs(template.FuncMap{"label": launchAgentLabel, "xml": template.HTMLEscapeString}).
	Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{xml (label .)}}</string>
	<key>ProgramArguments</key>
	<array>
		<string>{{xml .Exec}}</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`))

func (service *platformService) installLoginItem(item loginItem) error {
	path, err := launchAgentPath(item)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create LaunchAgents dir: %w", err)
	}

	content, err := renderLoginItem(launchAgentTemplate, item)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write plist: %w", err)
	}
	return nil
}

func (service *platformService) removeLoginItem(item loginItem) error {
	path, err := launchAgentPath(item)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove plist: %w", err)
	}
	return nil
}

func launchAgentPath(item loginItem) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", launchAgentLabel(item)+".plist"), nil
}

func launchAgentLabel(item loginItem) string {
	return "com.pomobar." + item.Slug
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}

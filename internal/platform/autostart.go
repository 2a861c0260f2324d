package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"
)

var errEmptyAppName = errors.New("app name is empty")

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// EnableAutostart registers execPath to run when the user logs in.
func (service *platformService) EnableAutostart(appName, execPath string) error {
	item, err := newLoginItem(appName, execPath)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if item.Exec == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}
	if err := service.installLoginItem(item); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

// DisableAutostart removes the login registration. A missing one is not an error.
func (service *platformService) DisableAutostart(appName string) error {
	item, err := newLoginItem(appName, "")
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := service.removeLoginItem(item); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

// SetAutostart registers or removes the running executable as a login item.
func SetAutostart(service Service, appName string, enabled bool) error {
	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	return service.EnableAutostart(appName, execPath)
}

// loginItem is what each OS needs to start the bar at login.
type loginItem struct {
	Name string
	Slug string
	Exec string
}

func newLoginItem(appName, execPath string) (loginItem, error) {
	name := strings.TrimSpace(appName)
	if name == "" {
		return loginItem{}, errEmptyAppName
	}
	return loginItem{
		Name: name,
		Slug: strings.ReplaceAll(strings.ToLower(name), " ", "-"),
		Exec: execPath,
	}, nil
}

func renderLoginItem(tmpl *template.Template, item loginItem) ([]byte, error) {
	var out strings.Builder
	if err := tmpl.Execute(&out, item); err != nil {
		return nil, fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return []byte(out.String()), nil
}

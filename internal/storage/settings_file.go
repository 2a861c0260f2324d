package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomobar/internal/ui/preferences"
)

// SettingsFileName is the flat settings record stored under the config dir.
const SettingsFileName = "progressbar_config.json"

// fileSettings mirrors the on-disk record. Pointers tell missing keys
// apart from explicit zero values.
type fileSettings struct {
	WorkColor  []int `yaml:"work_color" json:"work_color"`
	BreakColor []int `yaml:"break_color" json:"break_color"`
	WorkTime   *int  `yaml:"work_time" json:"work_time"`
	BreakTime  *int  `yaml:"break_time" json:"break_time"`
	X          *int  `yaml:"x" json:"x"`
	Y          *int  `yaml:"y" json:"y"`
	Width      *int  `yaml:"width" json:"width"`
	Height     *int  `yaml:"height" json:"height"`
	Autostart  *bool `yaml:"autostart" json:"autostart"`
}

// SettingsPath returns the settings file location inside configDir.
func SettingsPath(configDir, appName string) string {
	return filepath.Join(configDir, appName, SettingsFileName)
}

// LoadSettings reads user preferences from path.
// A missing file yields defaults with no error. An unreadable or
// malformed file yields defaults and the cause.
func LoadSettings(path string, defaults preferences.Settings) (preferences.Settings, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("read settings file: %w", err)
	}

	// The record is JSON; YAML is a superset, so hand-edited YAML loads too.
	var fileData fileSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return defaults, fmt.Errorf("parse settings file: %w", err)
	}

	settings := defaults
	applyFileSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings overwrites path with every settings field.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	workTime := settings.WorkMinutes
	breakTime := settings.BreakMinutes
	x, y := settings.X, settings.Y
	width, height := settings.Width, settings.Height
	autostart := settings.Autostart

	fileData := fileSettings{
		WorkColor:  colorToInts(settings.WorkColor),
		BreakColor: colorToInts(settings.BreakColor),
		WorkTime:   &workTime,
		BreakTime:  &breakTime,
		X:          &x,
		Y:          &y,
		Width:      &width,
		Height:     &height,
		Autostart:  &autostart,
	}

	serialized, err := json.MarshalIndent(fileData, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyFileSettings(settings *preferences.Settings, fileData fileSettings) {
	if value, ok := intsToColor(fileData.WorkColor); ok {
		settings.WorkColor = value
	}
	if value, ok := intsToColor(fileData.BreakColor); ok {
		settings.BreakColor = value
	}
	if fileData.WorkTime != nil && *fileData.WorkTime >= 0 {
		settings.WorkMinutes = *fileData.WorkTime
	}
	if fileData.BreakTime != nil && *fileData.BreakTime >= 0 {
		settings.BreakMinutes = *fileData.BreakTime
	}
	if fileData.X != nil {
		settings.X = *fileData.X
	}
	if fileData.Y != nil {
		settings.Y = *fileData.Y
	}
	if fileData.Width != nil && *fileData.Width > 0 {
		settings.Width = *fileData.Width
	}
	if fileData.Height != nil && *fileData.Height > 0 {
		settings.Height = *fileData.Height
	}
	if fileData.Autostart != nil {
		settings.Autostart = *fileData.Autostart
	}
}

func colorToInts(value color.NRGBA) []int {
	return []int{int(value.R), int(value.G), int(value.B), int(value.A)}
}

func intsToColor(values []int) (color.NRGBA, bool) {
	if len(values) != 4 {
		return color.NRGBA{}, false
	}
	for _, component := range values {
		if component < 0 || component > 255 {
			return color.NRGBA{}, false
		}
	}
	return color.NRGBA{
		R: uint8(values[0]),
		G: uint8(values[1]),
		B: uint8(values[2]),
		A: uint8(values[3]),
	}, true
}

//go:build !linux && !windows && !darwin

package platform

import "path/filepath"

func (service *platformService) installLoginItem(loginItem) error {
	return ErrUnsupported
}

func (service *platformService) removeLoginItem(loginItem) error {
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

package main

import (
	"errors"
	"log"

	"pomobar/internal/core/timekeeper"
	"pomobar/internal/platform"
	"pomobar/internal/storage"
	"pomobar/internal/ui/bar"
	"pomobar/internal/ui/preferences"
	"pomobar/internal/ui/tray"
	"pomobar/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "PomoBar"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	service := platform.NewService()
	settingsPath := resolveSettingsPath(service)
	settings := loadSettings(settingsPath)

	fyneApp := app.NewWithID("com.pomobar.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	keeper := timekeeper.New(settings.TimerConfig())
	driver := timekeeper.NewDriver(keeper, fyne.Do, timekeeper.DefaultDriverConfig())

	barWindow := bar.New(fyneApp, barConfig(settings))
	barWindow.SetOnReset(driver.Reset)
	barWindow.SetOnTogglePause(func() {
		driver.TogglePause()
	})

	quit := func() {
		driver.Stop()
		barWindow.Hide()
		fyneApp.Quit()
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		autostartChanged := updated.Autostart != settings.Autostart
		settings = updated
		keeper.UpdateConfig(settings.TimerConfig())
		barWindow.UpdateConfig(barConfig(settings))
		if settingsPath != "" {
			if err := storage.SaveSettings(settingsPath, settings); err != nil {
				log.Printf("save settings: %v", err)
			}
		}
		if autostartChanged {
			if err := platform.SetAutostart(service, appName, settings.Autostart); err != nil {
				log.Printf("autostart: %v", err)
			}
		}
	})
	prefsWindow.SetOnQuit(quit)
	barWindow.SetOnOpenSettings(prefsWindow.Show)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		activeIcon := resources.MustIcon(resources.IconActive)
		pausedIcon := resources.MustIcon(resources.IconPaused)
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnSettings: prefsWindow.Show,
			OnTogglePause: func() {
				driver.TogglePause()
			},
			OnReset: driver.Reset,
			OnQuit:  quit,
		})
		desktopApp.SetSystemTrayIcon(activeIcon)

		paused := false
		keeper.Subscribe(func(event timekeeper.Event) {
			snapshot := event.Snapshot
			if !snapshot.Animation.Active {
				trayManager.SetStatus(bar.Readout(snapshot))
			}
			if snapshot.Session.Paused != paused {
				paused = snapshot.Session.Paused
				trayManager.SetPaused(paused)
				if paused {
					desktopApp.SetSystemTrayIcon(pausedIcon)
				} else {
					desktopApp.SetSystemTrayIcon(activeIcon)
				}
			}
		})
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	keeper.Subscribe(func(event timekeeper.Event) {
		barWindow.Render(event.Snapshot)
	})

	barWindow.Render(keeper.Snapshot())
	if trayManager != nil {
		trayManager.SetStatus(bar.Readout(keeper.Snapshot()))
	}

	fyneApp.Lifecycle().SetOnStarted(func() {
		barWindow.Show()
		driver.Start()
	})
	fyneApp.Run()
}

func resolveSettingsPath(service platform.Service) string {
	configDir, err := service.GetConfigDir()
	if err != nil {
		log.Printf("settings path: %v", err)
		return ""
	}
	return storage.SettingsPath(configDir, appName)
}

func loadSettings(path string) preferences.Settings {
	width, height, err := platform.ScreenSize()
	if err != nil && !errors.Is(err, platform.ErrUnsupported) {
		log.Printf("screen size: %v", err)
	}
	defaults := preferences.DefaultSettings(width, height)
	if path == "" {
		return defaults
	}

	settings, err := storage.LoadSettings(path, defaults)
	if err != nil {
		log.Printf("load settings: %v; using defaults", err)
	}
	return settings
}

func barConfig(settings preferences.Settings) bar.Config {
	return bar.Config{
		X:      settings.X,
		Y:      settings.Y,
		Width:  settings.Width,
		Height: settings.Height,
		Colors: bar.Colors{
			Work:  settings.WorkColor,
			Break: settings.BreakColor,
		},
	}
}

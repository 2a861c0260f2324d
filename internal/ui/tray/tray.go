package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnSettings    func()
	OnTogglePause func()
	OnReset       func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	menu       *fyne.Menu
	paused     bool
	status     string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		status:    "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		invoke(manager.callbacks.OnTogglePause)
	})

	manager.menu = fyne.NewMenu("PomoBar",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", func() {
			invoke(manager.callbacks.OnSettings)
		}),
		manager.pauseItem,
		fyne.NewMenuItem("Reset session", func() {
			invoke(manager.callbacks.OnReset)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			invoke(manager.callbacks.OnQuit)
		}),
	)
	manager.relabel()
	if app != nil {
		app.SetSystemTrayMenu(manager.menu)
	}

	return manager
}

// SetStatus updates the status line, skipping refreshes when unchanged.
func (manager *Manager) SetStatus(status string) {
	if manager.status == status {
		return
	}
	manager.status = status
	manager.refresh()
}

// SetPaused swaps the pause item between Pause and Resume.
func (manager *Manager) SetPaused(paused bool) {
	if manager.paused == paused {
		return
	}
	manager.paused = paused
	manager.refresh()
}

// StatusLabel returns the status line as shown in the menu.
func (manager *Manager) StatusLabel() string {
	return manager.statusItem.Label
}

// PauseLabel returns the pause item label.
func (manager *Manager) PauseLabel() string {
	return manager.pauseItem.Label
}

// refresh relabels the installed menu in place instead of replacing it.
func (manager *Manager) refresh() {
	manager.relabel()
	if manager.app != nil {
		manager.menu.Refresh()
	}
}

func (manager *Manager) relabel() {
	status := manager.status
	if manager.paused {
		status += " (paused)"
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.statusItem.Label = status
}

func invoke(callback func()) {
	if callback != nil {
		callback()
	}
}

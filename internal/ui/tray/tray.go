package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnTogglePlay  func()
	OnStop        func()
	OnPreferences func()
	OnShowWindow  func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app       desktop.App
	callbacks Callbacks

	statusItem *fyne.MenuItem
	playItem   *fyne.MenuItem
	stopItem   *fyne.MenuItem

	playing     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks. Returns nil
// when the platform has no system tray.
func New(application fyne.App, callbacks Callbacks) *Manager {
	desktopApp, ok := application.(desktop.App)
	if !ok {
		return nil
	}

	manager := &Manager{
		app:         desktopApp,
		callbacks:   callbacks,
		statusLabel: "idle",
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.playItem = fyne.NewMenuItem("Play", func() {
		if manager.callbacks.OnTogglePlay != nil {
			manager.callbacks.OnTogglePlay()
		}
	})

	manager.stopItem = fyne.NewMenuItem("Stop", func() {
		if manager.callbacks.OnStop != nil {
			manager.callbacks.OnStop()
		}
	})
	manager.stopItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetPlaying switches the play item between play and pause and enables
// stop while a session exists.
func (manager *Manager) SetPlaying(playing bool) {
	manager.playing = playing
	if playing {
		manager.playItem.Label = "Pause"
	} else {
		manager.playItem.Label = "Play"
	}
	manager.stopItem.Disabled = false
	manager.refreshMenu()
}

// SetStopped resets the transport items to their idle state.
func (manager *Manager) SetStopped() {
	manager.playing = false
	manager.playItem.Label = "Play"
	manager.stopItem.Disabled = true
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Elevate",
		manager.statusItem,
		manager.playItem,
		manager.stopItem,
		fyne.NewMenuItem("Show window", func() {
			if manager.callbacks.OnShowWindow != nil {
				manager.callbacks.OnShowWindow()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

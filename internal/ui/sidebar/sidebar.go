package sidebar

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines transport action handlers.
type Callbacks struct {
	OnPlay        func()
	OnPause       func()
	OnStop        func()
	OnVolume      func(percent int)
	OnPreferences func()
}

// Sidebar is the session transport panel: play/pause/stop, the volume
// slider and the elapsed time readout.
type Sidebar struct {
	callbacks Callbacks

	playButton *widget.Button
	stopButton *widget.Button
	volume     *widget.Slider
	elapsed    *widget.Label
	status     *widget.Label

	container *fyne.Container
	playing   bool
}

// New creates a sidebar with the given initial volume percent.
func New(volumePercent int, callbacks Callbacks) *Sidebar {
	sidebar := &Sidebar{callbacks: callbacks}

	sidebar.playButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), sidebar.handlePlayPause)
	sidebar.stopButton = widget.NewButtonWithIcon("", theme.MediaStopIcon(), func() {
		if sidebar.callbacks.OnStop != nil {
			sidebar.callbacks.OnStop()
		}
	})

	sidebar.volume = widget.NewSlider(0, 100)
	sidebar.volume.Step = 1
	sidebar.volume.Value = float64(volumePercent)
	sidebar.volume.OnChanged = func(value float64) {
		if sidebar.callbacks.OnVolume != nil {
			sidebar.callbacks.OnVolume(int(value))
		}
	}

	sidebar.elapsed = widget.NewLabelWithStyle("00:00", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	sidebar.status = widget.NewLabelWithStyle("Ready", fyne.TextAlignCenter, fyne.TextStyle{})

	prefsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if sidebar.callbacks.OnPreferences != nil {
			sidebar.callbacks.OnPreferences()
		}
	})

	sidebar.container = container.NewVBox(
		sidebar.status,
		sidebar.elapsed,
		container.NewHBox(sidebar.playButton, sidebar.stopButton, prefsButton),
		widget.NewLabel("Volume"),
		sidebar.volume,
	)

	return sidebar
}

// SetPreferences installs the preferences handler after construction.
// The preferences window is built later than the sidebar because it
// needs the transport for volume sync.
func (sidebar *Sidebar) SetPreferences(handler func()) {
	sidebar.callbacks.OnPreferences = handler
}

// Content returns the panel's root container.
func (sidebar *Sidebar) Content() fyne.CanvasObject {
	return sidebar.container
}

// SetPlaying switches the play button between play and pause.
func (sidebar *Sidebar) SetPlaying(playing bool) {
	sidebar.playing = playing
	if playing {
		sidebar.playButton.SetIcon(theme.MediaPauseIcon())
		sidebar.status.SetText("Playing")
	} else {
		sidebar.playButton.SetIcon(theme.MediaPlayIcon())
		sidebar.status.SetText("Paused")
	}
}

// SetStopped resets the transport to its idle state.
func (sidebar *Sidebar) SetStopped() {
	sidebar.playing = false
	sidebar.playButton.SetIcon(theme.MediaPlayIcon())
	sidebar.status.SetText("Ready")
	sidebar.elapsed.SetText("00:00")
}

// SetElapsed updates the elapsed time readout.
func (sidebar *Sidebar) SetElapsed(elapsed time.Duration) {
	total := int(elapsed.Seconds())
	text := fmt.Sprintf("%02d:%02d", total/60, total%60)
	if total >= 3600 {
		text = fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	}
	sidebar.elapsed.SetText(text)
}

// SetVolume moves the slider without triggering the change callback.
func (sidebar *Sidebar) SetVolume(percent int) {
	changed := sidebar.volume.OnChanged
	sidebar.volume.OnChanged = nil
	sidebar.volume.SetValue(float64(percent))
	sidebar.volume.OnChanged = changed
}

func (sidebar *Sidebar) handlePlayPause() {
	if sidebar.playing {
		if sidebar.callbacks.OnPause != nil {
			sidebar.callbacks.OnPause()
		}
		return
	}
	if sidebar.callbacks.OnPlay != nil {
		sidebar.callbacks.OnPlay()
	}
}

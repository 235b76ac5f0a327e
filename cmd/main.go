package main

import (
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/ncruces/zenity"

	"elevate/internal/audio"
	"elevate/internal/core/session"
	"elevate/internal/platform"
	"elevate/internal/storage"
	"elevate/internal/ui/preferences"
	"elevate/internal/ui/sidebar"
	"elevate/internal/ui/stimuli"
	"elevate/internal/ui/tray"
)

const appName = "Elevate"

const photosensitivityNotice = "The visual stimuli contain pulsating patterns that may affect " +
	"photosensitive people. Continue?"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.elevate.app")

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	view := stimuli.NewView(settings.StimuliType)
	renderer := view.Renderer()
	renderer.SetEnabled(settings.EnableVisualStimuli)
	renderer.SetBrainState(settings.IntendedState)

	tone := settings.ToneConfig()
	stimulus := audio.NewStimulus(audio.NewSpeakerFactory(), audio.Config{})
	stimulus.SetBaseFrequency(tone.BaseFrequency)
	stimulus.SetChannelOffset(tone.ChannelOffset)
	stimulus.SetVolume(tone.Volume)

	controller := session.NewController(session.Options{
		Audio:         stimulus,
		Visual:        renderer,
		VisualEnabled: func() bool { return settings.EnableVisualStimuli },
	})

	var transport *sidebar.Sidebar
	var trayManager *tray.Manager

	syncPlaying := func(playing bool) {
		transport.SetPlaying(playing)
		if trayManager != nil {
			trayManager.SetPlaying(playing)
			if playing {
				trayManager.SetStatus("playing")
			} else {
				trayManager.SetStatus("paused")
			}
		}
	}

	warned := false
	startSession := func() {
		if settings.EpilepticWarning && settings.EnableVisualStimuli && !warned {
			if err := zenity.Question(photosensitivityNotice,
				zenity.Title(appName), zenity.OKLabel("Continue"), zenity.CancelLabel("Cancel")); err != nil {
				if !errors.Is(err, zenity.ErrCanceled) {
					log.Printf("photosensitivity notice: %v", err)
				}
				return
			}
			warned = true
		}
		if err := controller.Play(); err != nil {
			log.Printf("start session: %v", err)
			zenity.Error("Could not start audio playback.", zenity.Title(appName))
			return
		}
		syncPlaying(true)
	}

	stopSession := func() {
		controller.Stop()
		transport.SetStopped()
		if trayManager != nil {
			trayManager.SetStopped()
			trayManager.SetStatus("idle")
		}
	}

	transport = sidebar.New(settings.SavedVolume, sidebar.Callbacks{
		OnPlay: startSession,
		OnPause: func() {
			controller.Pause()
			syncPlaying(false)
		},
		OnStop: stopSession,
		OnVolume: func(percent int) {
			settings.SavedVolume = percent
			stimulus.SetVolume(float64(percent) / 100.0)
		},
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		tone := settings.ToneConfig()
		stimulus.SetBaseFrequency(tone.BaseFrequency)
		stimulus.SetChannelOffset(tone.ChannelOffset)
		renderer.SetStimuliType(settings.StimuliType)
		renderer.SetEnabled(settings.EnableVisualStimuli)
		renderer.SetBrainState(settings.IntendedState)
		transport.SetVolume(settings.SavedVolume)
		stimulus.SetVolume(float64(settings.SavedVolume) / 100.0)
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	})
	transport.SetPreferences(prefsWindow.Show)

	mainWindow := fyneApp.NewWindow(appName)
	mainWindow.SetContent(container.NewBorder(nil, nil, transport.Content(), nil, view.Content()))
	mainWindow.Resize(fyne.NewSize(760, 480))
	mainWindow.CenterOnScreen()

	trayManager = tray.New(fyneApp, tray.Callbacks{
		OnTogglePlay: func() {
			if controller.IsPlaying() {
				controller.Pause()
				syncPlaying(false)
				return
			}
			startSession()
		},
		OnStop:        stopSession,
		OnPreferences: prefsWindow.Show,
		OnShowWindow:  mainWindow.Show,
		OnQuit: func() {
			stopSession()
			fyneApp.Quit()
		},
	})

	if trayManager != nil {
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	}

	sessionLimit := func() time.Duration {
		return time.Duration(settings.SessionLength) * time.Minute
	}
	go watchSession(controller, transport, sessionLimit, stopSession)

	mainWindow.ShowAndRun()

	if err := storage.SaveSettings(appName, settings); err != nil {
		log.Printf("save settings: %v", err)
	}
}

// watchSession updates the elapsed readout and enforces the automatic
// session stop. A coarse tick is enough for a seconds display.
func watchSession(controller *session.Controller, transport *sidebar.Sidebar, limitFunc func() time.Duration, stopSession func()) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		if !controller.IsPlaying() {
			continue
		}
		elapsed := controller.Elapsed()
		fyne.Do(func() {
			transport.SetElapsed(elapsed)
		})
		if limit := limitFunc(); limit > 0 && elapsed >= limit {
			log.Printf("session: length limit reached after %s", elapsed.Round(time.Second))
			fyne.Do(stopSession)
		}
	}
}

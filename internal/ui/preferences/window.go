package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"elevate/internal/core/model"
)

var stateOptions = []string{"Delta", "Theta", "Alpha", "Beta", "Gamma"}

var stimuliOptions = []string{"Color layers", "Breathing ball", "Pulse"}

var languageOptions = []string{"English", "Русский"}

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)

	stateSelect   *widget.Select
	stateInfo     *widget.Label
	baseFreq      *widget.Entry
	offset        *widget.Entry
	sessionLength *widget.Entry
	stimuliSelect *widget.Select
	visualCheck   *widget.Check
	warningCheck  *widget.Check
	langSelect    *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Elevate Settings")

	baseFreq := widget.NewEntry()
	baseFreq.SetText(formatFrequency(settings.BaseFrequency))

	offset := widget.NewEntry()
	offset.SetText(formatFrequency(settings.ChannelOffset))

	sessionLength := widget.NewEntry()
	sessionLength.SetText(strconv.Itoa(settings.SessionLength))

	stateInfo := widget.NewLabel(settings.IntendedState.Info().Description)
	stateInfo.Wrapping = fyne.TextWrapWord

	stateSelect := widget.NewSelect(stateOptions, nil)
	stateSelect.SetSelectedIndex(int(settings.IntendedState))

	stimuliSelect := widget.NewSelect(stimuliOptions, nil)
	stimuliSelect.SetSelectedIndex(settings.StimuliType)

	visualCheck := widget.NewCheck("Show visual stimuli during sessions", nil)
	visualCheck.SetChecked(settings.EnableVisualStimuli)

	warningCheck := widget.NewCheck("Show photosensitivity warning", nil)
	warningCheck.SetChecked(settings.EpilepticWarning)

	langSelect := widget.NewSelect(languageOptions, nil)
	langSelect.SetSelectedIndex(settings.Language)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Target state", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		stateSelect,
		stateInfo,
		widget.NewLabelWithStyle("Tone", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Base frequency"), baseFreq, widget.NewLabel("Hz")),
		container.NewHBox(widget.NewLabel("Channel offset"), offset, widget.NewLabel("Hz")),
		widget.NewLabelWithStyle("Session", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Auto stop after"), sessionLength, widget.NewLabel("min (0 = never)")),
		widget.NewLabelWithStyle("Visuals", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		stimuliSelect,
		visualCheck,
		warningCheck,
		widget.NewLabelWithStyle("Language", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		langSelect,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(440, 560))

	prefs := &Window{
		window:        window,
		settings:      settings,
		onSave:        onSave,
		stateSelect:   stateSelect,
		stateInfo:     stateInfo,
		baseFreq:      baseFreq,
		offset:        offset,
		sessionLength: sessionLength,
		stimuliSelect: stimuliSelect,
		visualCheck:   visualCheck,
		warningCheck:  warningCheck,
		langSelect:    langSelect,
	}

	// Switching the target state suggests that state's default offset
	// and shows its frequency band.
	stateSelect.OnChanged = func(string) {
		state := model.BrainState(stateSelect.SelectedIndex())
		info := state.Info()
		prefs.stateInfo.SetText(info.Description)
		prefs.offset.SetText(formatFrequency(info.DefaultOffset))
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.stateSelect.SetSelectedIndex(int(settings.IntendedState))
	prefs.stateInfo.SetText(settings.IntendedState.Info().Description)
	prefs.baseFreq.SetText(formatFrequency(settings.BaseFrequency))
	prefs.offset.SetText(formatFrequency(settings.ChannelOffset))
	prefs.sessionLength.SetText(strconv.Itoa(settings.SessionLength))
	prefs.stimuliSelect.SetSelectedIndex(settings.StimuliType)
	prefs.visualCheck.SetChecked(settings.EnableVisualStimuli)
	prefs.warningCheck.SetChecked(settings.EpilepticWarning)
	prefs.langSelect.SetSelectedIndex(settings.Language)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if hz, ok := parseFrequency(prefs.baseFreq.Text); ok {
		settings.BaseFrequency = hz
	}
	if hz, ok := parseFrequency(prefs.offset.Text); ok {
		settings.ChannelOffset = hz
	}
	if minutes, err := strconv.Atoi(prefs.sessionLength.Text); err == nil && minutes >= 0 {
		settings.SessionLength = minutes
	}

	settings.IntendedState = model.BrainState(prefs.stateSelect.SelectedIndex())
	settings.StimuliType = prefs.stimuliSelect.SelectedIndex()
	settings.EnableVisualStimuli = prefs.visualCheck.Checked
	settings.EpilepticWarning = prefs.warningCheck.Checked
	settings.Language = prefs.langSelect.SelectedIndex()
	settings.Normalize()

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func formatFrequency(hz float64) string {
	return strconv.FormatFloat(hz, 'f', -1, 64)
}

func parseFrequency(value string) (float64, bool) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

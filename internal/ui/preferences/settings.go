package preferences

import (
	"log"

	"elevate/internal/core/model"
	"elevate/internal/ui/animation"
)

// Bounds for the tone parameters. Values outside are clamped, never
// rejected.
const (
	MinBaseFrequency = 20.0
	MaxBaseFrequency = 300.0
	MinChannelOffset = 1.0
	MaxChannelOffset = 100.0
)

// Settings is everything the user can configure. Fields map directly
// to the persisted YAML document.
type Settings struct {
	// BaseFrequency is the carrier tone in Hz.
	BaseFrequency float64 `yaml:"base_frequency"`
	// ChannelOffset is the left/right difference in Hz; this is the
	// entrainment frequency.
	ChannelOffset float64 `yaml:"channel_offset"`
	// SavedVolume is the playback volume in percent.
	SavedVolume int `yaml:"saved_volume"`
	// SessionLength is the automatic stop time in minutes; 0 disables
	// the limit.
	SessionLength int `yaml:"session_length"`
	// IntendedState selects the targeted brainwave band.
	IntendedState model.BrainState `yaml:"intended_state"`
	// StimuliType selects the visual animation.
	StimuliType int `yaml:"stimuli_type"`
	// EnableVisualStimuli toggles the animation window during sessions.
	EnableVisualStimuli bool `yaml:"enable_visual_stimuli"`
	// EpilepticWarning shows the photosensitivity notice before the
	// first session.
	EpilepticWarning bool `yaml:"epileptic_warning"`
	// Language is the UI language index; 0 is English.
	Language int `yaml:"language"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		BaseFrequency:       30.0,
		ChannelOffset:       6.0,
		SavedVolume:         25,
		SessionLength:       10,
		IntendedState:       model.StateTheta,
		StimuliType:         animation.StimuliBreathBall,
		EnableVisualStimuli: true,
		EpilepticWarning:    true,
		Language:            0,
	}
}

// Normalize clamps every field to its legal range, logging a
// diagnostic for each adjusted value.
func (settings *Settings) Normalize() {
	settings.BaseFrequency = clampFloat("base frequency", settings.BaseFrequency, MinBaseFrequency, MaxBaseFrequency)
	settings.ChannelOffset = clampFloat("channel offset", settings.ChannelOffset, MinChannelOffset, MaxChannelOffset)
	settings.SavedVolume = clampInt("volume", settings.SavedVolume, 0, 100)
	settings.SessionLength = clampInt("session length", settings.SessionLength, 0, 600)

	if settings.IntendedState < model.StateDelta || settings.IntendedState > model.StateGamma {
		log.Printf("preferences: intended state %d out of range, using theta", settings.IntendedState)
		settings.IntendedState = model.StateTheta
	}
	if settings.StimuliType < animation.StimuliColorLayers || settings.StimuliType > animation.StimuliPulse {
		log.Printf("preferences: stimuli type %d out of range, using breath ball", settings.StimuliType)
		settings.StimuliType = animation.StimuliBreathBall
	}
	if settings.Language < 0 {
		settings.Language = 0
	}
}

// ToneConfig converts the persisted values to the audio parameters.
func (settings Settings) ToneConfig() model.ToneConfig {
	return model.ToneConfig{
		BaseFrequency: settings.BaseFrequency,
		ChannelOffset: settings.ChannelOffset,
		Volume:        float64(settings.SavedVolume) / 100.0,
	}
}

func clampFloat(name string, value, low, high float64) float64 {
	if value < low {
		log.Printf("preferences: %s %.1f below minimum, using %.1f", name, value, low)
		return low
	}
	if value > high {
		log.Printf("preferences: %s %.1f above maximum, using %.1f", name, value, high)
		return high
	}
	return value
}

func clampInt(name string, value, low, high int) int {
	if value < low {
		log.Printf("preferences: %s %d below minimum, using %d", name, value, low)
		return low
	}
	if value > high {
		log.Printf("preferences: %s %d above maximum, using %d", name, value, high)
		return high
	}
	return value
}

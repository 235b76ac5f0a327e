package preferences

import (
	"testing"

	"github.com/stretchr/testify/require"

	"elevate/internal/core/model"
	"elevate/internal/ui/animation"
)

func TestNormalizeClampsRanges(t *testing.T) {
	settings := Settings{
		BaseFrequency: 5,
		ChannelOffset: 250,
		SavedVolume:   180,
		SessionLength: -3,
		IntendedState: model.BrainState(9),
		StimuliType:   7,
		Language:      -1,
	}
	settings.Normalize()

	require.InDelta(t, MinBaseFrequency, settings.BaseFrequency, 1e-9)
	require.InDelta(t, MaxChannelOffset, settings.ChannelOffset, 1e-9)
	require.Equal(t, 100, settings.SavedVolume)
	require.Equal(t, 0, settings.SessionLength)
	require.Equal(t, model.StateTheta, settings.IntendedState)
	require.Equal(t, animation.StimuliBreathBall, settings.StimuliType)
	require.Equal(t, 0, settings.Language)
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	settings := DefaultSettings()
	settings.BaseFrequency = 42.5
	settings.ChannelOffset = 10
	settings.SavedVolume = 60
	settings.IntendedState = model.StateGamma
	settings.StimuliType = animation.StimuliPulse

	before := settings
	settings.Normalize()
	require.Equal(t, before, settings)
}

func TestToneConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.BaseFrequency = 200
	settings.ChannelOffset = 40
	settings.SavedVolume = 25

	tone := settings.ToneConfig()
	require.InDelta(t, 200.0, tone.BaseFrequency, 1e-9)
	require.InDelta(t, 40.0, tone.ChannelOffset, 1e-9)
	require.InDelta(t, 0.25, tone.Volume, 1e-9)
}

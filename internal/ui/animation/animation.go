package animation

import (
	"elevate/internal/core/model"
)

// Animation is the contract every visual stimulus implements.
type Animation interface {
	// Reset returns the animation to its initial state.
	Reset()
	// SetBreathCycle replaces the four phase durations. Values are not
	// validated; a zero total is legal and handled at render time.
	SetBreathCycle(cycle model.BreathCycle)
	// Update advances accumulated time by dt seconds. Width and height
	// are provided for animations that track viewport changes.
	Update(dt float64, width, height int)
	// Render draws one frame for the current accumulated time.
	Render(surface Surface, width, height int, now float64)
}

// Stimuli type identifiers as persisted in settings.
const (
	StimuliColorLayers = 0
	StimuliBreathBall  = 1
	StimuliPulse       = 2
)

// ForStimuliType returns a fresh animation for the given stimuli type.
// Unknown values fall back to the color layers animation.
func ForStimuliType(stimuliType int) Animation {
	switch stimuliType {
	case StimuliBreathBall:
		return NewBreathAnimation(DefaultBreathConfig())
	case StimuliPulse:
		return NewPulseAnimation()
	case StimuliColorLayers:
		return NewColorLayersAnimation()
	default:
		return NewColorLayersAnimation()
	}
}

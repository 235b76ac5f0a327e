package animation

import (
	"math"

	"elevate/internal/core/model"
)

// Phase indices of the breath cycle.
const (
	PhaseInhale = iota
	PhaseHoldHigh
	PhaseExhale
	PhaseHoldLow
)

// phaseLabels are the canonical cue texts per phase. A configured cue is
// only drawn when it matches its canonical label exactly.
var phaseLabels = [4]string{"Inhale", "Hold", "Exhale", "Hold"}

// pulsePeriod is the oscillation period of the hold phases in seconds.
const pulsePeriod = 1.0

// BreathConfig contains the visual parameters of the breath animation.
type BreathConfig struct {
	// BreathColor is used during inhale and exhale phases.
	BreathColor model.Color
	// HoldColor is used during both hold phases.
	HoldColor model.Color
	// Background fills the viewport behind the guide circle.
	Background model.Color
	// PulseFactor is the fraction of the maximum radius used as the
	// pulsation amplitude during hold phases, in 0..1.
	PulseFactor float64
	// FadeDuration is the total cross-fade window applied symmetrically
	// around each phase boundary, in seconds.
	FadeDuration float64
}

// DefaultBreathConfig returns the Theta scheme with gentle pulsation.
func DefaultBreathConfig() BreathConfig {
	scheme := model.SchemeFor(model.StateTheta)
	return BreathConfig{
		BreathColor:  scheme.Breath,
		HoldColor:    scheme.Hold,
		Background:   scheme.Background,
		PulseFactor:  0.05,
		FadeDuration: 0.5,
	}
}

// BreathAnimation renders a pulsating circle guiding a four-phase
// breathing cycle: inhale, hold, exhale, hold.
type BreathAnimation struct {
	config    BreathConfig
	durations model.BreathCycle
	cues      [4]string

	elapsed float64

	// Cached per-cycle values, invalidated by SetBreathCycle.
	cacheValid bool
	phaseEnds  [5]float64
	totalCycle float64
	fadeHalf   float64

	lastPhase   int
	lastCueText string
}

// NewBreathAnimation creates a breath animation with the given config.
func NewBreathAnimation(config BreathConfig) *BreathAnimation {
	return &BreathAnimation{
		config:    config,
		durations: model.DefaultBreathCycle(),
		cues:      phaseLabels,
		lastPhase: -1,
	}
}

// Reset sets accumulated time back to zero and clears the cached phase
// marker so the next rendered frame is treated as a phase change.
func (breath *BreathAnimation) Reset() {
	breath.elapsed = 0
	breath.lastPhase = -1
}

// SetBreathCycle replaces the four phase durations. Durations are not
// validated; a zero total degenerates to a background-only render.
func (breath *BreathAnimation) SetBreathCycle(cycle model.BreathCycle) {
	breath.durations = cycle
	breath.cacheValid = false
}

// SetPhaseCues replaces the four cue texts. An empty string disables the
// cue for that phase.
func (breath *BreathAnimation) SetPhaseCues(cues [4]string) {
	breath.cues = cues
}

// SetBrainState switches the color roles to the scheme of a brainwave
// state.
func (breath *BreathAnimation) SetBrainState(state model.BrainState) {
	scheme := model.SchemeFor(state)
	breath.config.BreathColor = scheme.Breath
	breath.config.HoldColor = scheme.Hold
	breath.config.Background = scheme.Background
}

// Update advances accumulated time by dt seconds. Wrapping happens at
// render time, not here. Width and height are unused by this animation.
func (breath *BreathAnimation) Update(dt float64, width, height int) {
	breath.elapsed += dt
}

// IsPhaseActive reports whether time t, taken modulo the total cycle
// length, falls within [phase start, phase end) of the given phase.
// Always false for a zero-length cycle.
func (breath *BreathAnimation) IsPhaseActive(phaseIndex int, t float64) bool {
	if phaseIndex < 0 || phaseIndex > 3 {
		return false
	}
	total := breath.durations.Total()
	if total == 0 {
		return false
	}
	var phaseStart float64
	for i := 0; i < phaseIndex; i++ {
		phaseStart += breath.durations[i]
	}
	phaseEnd := phaseStart + breath.durations[phaseIndex]
	wrapped := math.Mod(t, total)
	return phaseStart <= wrapped && wrapped < phaseEnd
}

// InterpolateColor blends linearly between two colors. Alpha 0 yields
// exactly the first color, alpha 1 exactly the second.
func InterpolateColor(from, to model.Color, alpha float64) model.Color {
	return model.Color{
		R: from.R + (to.R-from.R)*alpha,
		G: from.G + (to.G-from.G)*alpha,
		B: from.B + (to.B-from.B)*alpha,
	}
}

// Render draws one frame: background, guide circle with cross-faded
// color, and the phase cue when enabled. A zero-length cycle paints the
// background only.
func (breath *BreathAnimation) Render(surface Surface, width, height int, now float64) {
	breath.refreshCache()

	surface.SetSourceRGB(breath.config.Background.R, breath.config.Background.G, breath.config.Background.B)
	surface.Paint()

	if breath.totalCycle == 0 {
		return
	}

	t := math.Mod(breath.elapsed, breath.totalCycle)
	maxRadius := float64(minInt(width, height)) / 2

	var radius float64
	var baseColor model.Color
	switch {
	case t <= breath.phaseEnds[1]:
		radius, baseColor = breath.inhaleRadius(t, maxRadius)
	case t <= breath.phaseEnds[2]:
		radius, baseColor = breath.holdHighRadius(t, maxRadius)
	case t <= breath.phaseEnds[3]:
		radius, baseColor = breath.exhaleRadius(t, maxRadius)
	default:
		radius, baseColor = breath.holdLowRadius(t, maxRadius)
	}

	color := breath.fadeColor(t, baseColor)

	surface.SetSourceRGB(color.R, color.G, color.B)
	surface.Arc(float64(width)/2, float64(height)/2, radius, 0, 2*math.Pi)
	surface.Fill()

	breath.renderCue(surface, t, width, height)
}

// inhaleRadius grows linearly from 0 to maxRadius*(1-pulseFactor).
func (breath *BreathAnimation) inhaleRadius(t, maxRadius float64) (float64, model.Color) {
	duration := breath.durations[PhaseInhale]
	if duration == 0 {
		return 0, breath.config.BreathColor
	}
	radius := (t / duration) * maxRadius * (1.0 - breath.config.PulseFactor)
	return radius, breath.config.BreathColor
}

// holdHighRadius pulses between maxRadius*(1-pulseFactor) and maxRadius.
func (breath *BreathAnimation) holdHighRadius(t, maxRadius float64) (float64, model.Color) {
	phaseTime := t - breath.phaseEnds[1]
	pulse := 0.5 * (1.0 + math.Cos(2.0*math.Pi*phaseTime/pulsePeriod+math.Pi))
	minRadius := maxRadius * (1.0 - breath.config.PulseFactor)
	radius := minRadius + (maxRadius-minRadius)*pulse
	return radius, breath.config.HoldColor
}

// exhaleRadius shrinks linearly from maxRadius*(1-pulseFactor) to 0.
func (breath *BreathAnimation) exhaleRadius(t, maxRadius float64) (float64, model.Color) {
	duration := breath.durations[PhaseExhale]
	if duration == 0 {
		return 0, breath.config.BreathColor
	}
	phaseTime := t - breath.phaseEnds[2]
	radius := (1.0 - phaseTime/duration) * maxRadius * (1.0 - breath.config.PulseFactor)
	return radius, breath.config.BreathColor
}

// holdLowRadius pulses between 0 and maxRadius*pulseFactor.
func (breath *BreathAnimation) holdLowRadius(t, maxRadius float64) (float64, model.Color) {
	phaseTime := t - breath.phaseEnds[3]
	pulse := 0.5 * (1.0 + math.Cos(2.0*math.Pi*phaseTime/pulsePeriod+math.Pi))
	radius := maxRadius * breath.config.PulseFactor * pulse
	return radius, breath.config.HoldColor
}

// fadeColor applies the cross-fade window around phase boundaries. At
// most one window governs any instant; the wrap-around window near t=0
// takes priority over a coincidental same-tick boundary window.
func (breath *BreathAnimation) fadeColor(t float64, baseColor model.Color) model.Color {
	color := baseColor
	for i := 1; i <= 4; i++ {
		end := breath.phaseEnds[i]
		if end-breath.fadeHalf < t && t < end+breath.fadeHalf {
			alpha := (t - (end - breath.fadeHalf)) / breath.config.FadeDuration
			outgoing := breath.config.BreathColor
			incoming := breath.config.HoldColor
			if i%2 == 0 {
				outgoing, incoming = incoming, outgoing
			}
			color = InterpolateColor(outgoing, incoming, alpha)
			break
		}
	}
	if t < breath.fadeHalf {
		alpha := (t + breath.fadeHalf) / breath.config.FadeDuration
		color = InterpolateColor(breath.config.HoldColor, breath.config.BreathColor, alpha)
	}
	return color
}

// renderCue draws the text cue of the active phase. The cue is skipped
// unless the configured text matches the canonical label for the slot.
func (breath *BreathAnimation) renderCue(surface Surface, t float64, width, height int) {
	currentPhase := 0
	for i := 1; i <= 4; i++ {
		if t <= breath.phaseEnds[i] {
			currentPhase = i - 1
			break
		}
	}

	cue := breath.cues[currentPhase]
	if cue == "" {
		return
	}
	// The marker records what was last considered; a cue swapped
	// mid-phase is picked up on the next frame.
	if breath.lastPhase != currentPhase || breath.lastCueText != cue {
		breath.lastPhase = currentPhase
		breath.lastCueText = cue
	}

	if cue != phaseLabels[currentPhase] {
		return
	}

	surface.SetSourceRGB(1.0, 1.0, 1.0)
	surface.SelectFontFace("Sans", FontSlantNormal, FontWeightBold)
	surface.SetFontSize(48)
	surface.TextExtents(cue)
	surface.MoveTo(12, float64(height)-20)
	surface.ShowText(cue)
}

func (breath *BreathAnimation) refreshCache() {
	if breath.cacheValid {
		return
	}
	breath.totalCycle = breath.durations.Total()
	breath.fadeHalf = breath.config.FadeDuration / 2.0
	breath.phaseEnds[0] = 0
	for i, duration := range breath.durations {
		breath.phaseEnds[i+1] = breath.phaseEnds[i] + duration
	}
	breath.cacheValid = true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

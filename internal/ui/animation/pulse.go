package animation

import (
	"math"

	"elevate/internal/core/model"
)

// PulseAnimation renders a plain breathing circle without pulsation or
// color fading: grow on inhale, full on hold, shrink on exhale.
type PulseAnimation struct {
	phase float64
	cycle model.BreathCycle
	color model.Color
}

// NewPulseAnimation creates a pulse animation with default timing.
func NewPulseAnimation() *PulseAnimation {
	return &PulseAnimation{
		cycle: model.DefaultBreathCycle(),
		color: model.Color{R: 0.2, G: 0.4, B: 0.8},
	}
}

// Reset sets accumulated time back to zero.
func (pulse *PulseAnimation) Reset() {
	pulse.phase = 0
}

// SetBreathCycle replaces the four phase durations.
func (pulse *PulseAnimation) SetBreathCycle(cycle model.BreathCycle) {
	pulse.cycle = cycle
}

// Update advances accumulated time, wrapping at the cycle length.
func (pulse *PulseAnimation) Update(dt float64, width, height int) {
	pulse.phase += dt
	if total := pulse.cycle.Total(); total > 0 {
		pulse.phase = math.Mod(pulse.phase, total)
	}
}

// Render draws the circle for the current cycle position.
func (pulse *PulseAnimation) Render(surface Surface, width, height int, now float64) {
	radius := breathFraction(pulse.cycle, pulse.phase) * float64(minInt(width, height)) / 2

	surface.SetSourceRGB(pulse.color.R, pulse.color.G, pulse.color.B)
	surface.Arc(float64(width)/2, float64(height)/2, radius, 0, 2*math.Pi)
	surface.Fill()
}

// breathFraction maps a cycle position to 0..1: rising over the inhale,
// 1 during the first hold, falling over the exhale, 0 during the second
// hold. Zero-duration phases snap to their boundary value.
func breathFraction(cycle model.BreathCycle, phase float64) float64 {
	total := math.Max(1.0, cycle.Total())
	t := math.Mod(phase, total)

	inhale, hold1, exhale := cycle[0], cycle[1], cycle[2]
	switch {
	case t < inhale:
		if inhale == 0 {
			return 1.0
		}
		return t / inhale
	case t < inhale+hold1:
		return 1.0
	case t < inhale+hold1+exhale:
		if exhale == 0 {
			return 0.0
		}
		return 1.0 - (t-inhale-hold1)/exhale
	default:
		return 0.0
	}
}

package animation

import (
	"math"

	"elevate/internal/core/model"
)

// ColorLayersAnimation washes the whole viewport with a color that
// follows the breath cycle instead of drawing a shape.
type ColorLayersAnimation struct {
	elapsed float64
	cycle   model.BreathCycle
}

// NewColorLayersAnimation creates a color layers animation with default
// timing.
func NewColorLayersAnimation() *ColorLayersAnimation {
	return &ColorLayersAnimation{cycle: model.DefaultBreathCycle()}
}

// Reset sets accumulated time back to zero.
func (layers *ColorLayersAnimation) Reset() {
	layers.elapsed = 0
}

// SetBreathCycle replaces the four phase durations.
func (layers *ColorLayersAnimation) SetBreathCycle(cycle model.BreathCycle) {
	layers.cycle = cycle
}

// Update advances accumulated time, wrapping at the cycle length.
func (layers *ColorLayersAnimation) Update(dt float64, width, height int) {
	layers.elapsed += dt
	if total := layers.cycle.Total(); total > 0 {
		layers.elapsed = math.Mod(layers.elapsed, total)
	}
}

// Render fills the viewport with the breath-position color.
func (layers *ColorLayersAnimation) Render(surface Surface, width, height int, now float64) {
	phase := breathFraction(layers.cycle, layers.elapsed)

	red := phase
	green := 1.0 - phase
	blue := 0.5 + 0.5*phase
	surface.SetSourceRGB(red, green, blue)
	surface.Rectangle(0, 0, float64(width), float64(height))
	surface.Fill()
}

package stimuli

import (
	"sync"
	"time"

	"elevate/internal/core/model"
	"elevate/internal/ui/animation"
)

// tickInterval is the animation frame pacing.
const tickInterval = 16 * time.Millisecond

// maxFrameDelta caps the per-frame time step so a stalled UI thread
// does not make the animation jump.
const maxFrameDelta = 0.1

// Renderer drives an animation at frame rate and paints it on demand.
// It owns the playing/paused lifecycle of the visual stimulus; the
// actual pixels are produced in Render, called from the display side.
type Renderer struct {
	mu sync.Mutex

	animation   animation.Animation
	stimuliType int
	cycle       model.BreathCycle
	enabled     bool
	playing     bool

	width  int
	height int

	redraw   func()
	stopTick chan struct{}
}

// NewRenderer creates a stopped renderer for the given stimuli type.
// The redraw callback is invoked from the ticker goroutine after every
// animation step.
func NewRenderer(stimuliType int, redraw func()) *Renderer {
	renderer := &Renderer{
		animation:   animation.ForStimuliType(stimuliType),
		stimuliType: stimuliType,
		cycle:       model.DefaultBreathCycle(),
		enabled:     true,
		redraw:      redraw,
	}
	renderer.animation.SetBreathCycle(renderer.cycle)
	return renderer
}

// SetEnabled toggles whether Render produces the animation or the idle
// background.
func (renderer *Renderer) SetEnabled(enabled bool) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.enabled = enabled
}

// SetStimuliType swaps the active animation. The replacement starts
// from its initial state and inherits the current breath cycle.
func (renderer *Renderer) SetStimuliType(stimuliType int) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()

	if stimuliType == renderer.stimuliType {
		return
	}
	renderer.stimuliType = stimuliType
	renderer.animation = animation.ForStimuliType(stimuliType)
	renderer.animation.SetBreathCycle(renderer.cycle)
}

// SetBreathCycle forwards the phase durations to the active animation
// and remembers them for animations created later.
func (renderer *Renderer) SetBreathCycle(cycle model.BreathCycle) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.cycle = cycle
	renderer.animation.SetBreathCycle(cycle)
}

// SetBrainState forwards the color scheme to animations that support
// per-state colors.
func (renderer *Renderer) SetBrainState(state model.BrainState) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	if breath, ok := renderer.animation.(*animation.BreathAnimation); ok {
		breath.SetBrainState(state)
	}
}

// Play starts the frame ticker. No-op when already playing.
func (renderer *Renderer) Play() {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()

	if renderer.playing {
		return
	}
	renderer.playing = true
	renderer.stopTick = make(chan struct{})
	go renderer.tickLoop(renderer.stopTick)
}

// Pause stops the frame ticker and rewinds the animation.
func (renderer *Renderer) Pause() {
	renderer.haltAndReset()
}

// Stop stops the frame ticker and rewinds the animation.
func (renderer *Renderer) Stop() {
	renderer.haltAndReset()
}

// IsPlaying reports whether the frame ticker is running.
func (renderer *Renderer) IsPlaying() bool {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	return renderer.playing
}

// Render paints the current frame. When disabled or stopped a dark
// idle background is painted instead of the animation.
func (renderer *Renderer) Render(surface animation.Surface, width, height int) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()

	renderer.width = width
	renderer.height = height

	if !renderer.enabled || !renderer.playing {
		surface.SetSourceRGB(0.1, 0.1, 0.1)
		surface.Paint()
		return
	}
	renderer.animation.Render(surface, width, height, 0)
}

func (renderer *Renderer) haltAndReset() {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()

	if renderer.stopTick != nil {
		close(renderer.stopTick)
		renderer.stopTick = nil
	}
	renderer.playing = false
	renderer.animation.Reset()
}

// tickLoop advances the animation with the measured frame delta and
// requests a redraw. It exits when the stop channel closes.
func (renderer *Renderer) tickLoop(stop chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt < 0 {
				dt = 0
			}
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}

			renderer.mu.Lock()
			if renderer.playing {
				renderer.animation.Update(dt, renderer.width, renderer.height)
			}
			redraw := renderer.redraw
			renderer.mu.Unlock()

			if redraw != nil {
				redraw()
			}
		}
	}
}

package audio

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Config contains runtime options for Stimulus.
type Config struct {
	// DebounceDelay is the quiet period collapsing rapid frequency
	// changes into a single application. Defaults to 100ms.
	DebounceDelay time.Duration
	// SampleRate of the generated tones. Defaults to 44100.
	SampleRate int
}

// Stimulus generates a binaural beat: the left channel plays the base
// frequency, the right channel the base frequency plus the channel
// offset. Frequency changes are staged and flushed to the graph after a
// debounce window so a burst of slider events causes one application.
type Stimulus struct {
	mu      sync.Mutex
	factory Factory
	config  Config

	baseFrequency float64
	channelOffset float64
	volume        float64

	pendingUpdate bool
	debounce      *time.Timer
	debounceGen   uint64

	graph       Graph
	sourceLeft  Element
	sourceRight Element
	volumeStage Element

	isPlaying bool
}

// NewStimulus creates a tone stimulus backed by the given factory.
func NewStimulus(factory Factory, config Config) *Stimulus {
	if config.DebounceDelay <= 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}
	if config.SampleRate <= 0 {
		config.SampleRate = 44100
	}
	return &Stimulus{
		factory:       factory,
		config:        config,
		baseFrequency: 30.0,
		channelOffset: 10.0,
		volume:        0.5,
	}
}

// SetBaseFrequency stores the new base frequency and schedules a
// debounced application to the graph.
func (stimulus *Stimulus) SetBaseFrequency(hz float64) {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()
	stimulus.baseFrequency = hz
	stimulus.scheduleFrequencyUpdateLocked()
}

// BaseFrequency returns the last set base frequency.
func (stimulus *Stimulus) BaseFrequency() float64 {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()
	return stimulus.baseFrequency
}

// SetChannelOffset stores the new channel offset and schedules a
// debounced application to the graph.
func (stimulus *Stimulus) SetChannelOffset(hz float64) {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()
	stimulus.channelOffset = hz
	stimulus.scheduleFrequencyUpdateLocked()
}

// ChannelOffset returns the last set channel offset.
func (stimulus *Stimulus) ChannelOffset() float64 {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()
	return stimulus.channelOffset
}

// SetVolume clamps the value to [0, 1], stores it and applies it to the
// graph immediately. Backend errors are logged, not propagated.
func (stimulus *Stimulus) SetVolume(value float64) {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()

	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	stimulus.volume = value

	if stimulus.volumeStage != nil {
		if err := stimulus.volumeStage.SetProperty(PropertyVolume, value); err != nil {
			log.Printf("audio: set volume %.2f: %v", value, err)
		}
	}
}

// Volume returns the last set (already clamped) volume.
func (stimulus *Stimulus) Volume() float64 {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()
	return stimulus.volume
}

// Play constructs the graph on first use, applies the current
// parameters and transitions to playing. Construction failure is
// returned to the caller; no-op when already playing.
func (stimulus *Stimulus) Play() error {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()

	if stimulus.isPlaying {
		return nil
	}

	if stimulus.graph == nil {
		graph, err := stimulus.factory.NewToneGraph(ToneGraphConfig{
			SampleRate:     stimulus.config.SampleRate,
			LeftFrequency:  stimulus.baseFrequency,
			RightFrequency: stimulus.baseFrequency + stimulus.channelOffset,
			Volume:         stimulus.volume,
		})
		if err != nil {
			return fmt.Errorf("create tone graph: %w", err)
		}
		stimulus.graph = graph
		stimulus.sourceLeft = graph.Element(ElementSourceLeft)
		stimulus.sourceRight = graph.Element(ElementSourceRight)
		stimulus.volumeStage = graph.Element(ElementVolume)
	}

	stimulus.applyFrequenciesLocked()

	// The current values are on the graph now; a queued debounce
	// application would be redundant.
	stimulus.cancelDebounceLocked()

	if err := stimulus.graph.SetState(StatePlaying); err != nil {
		log.Printf("audio: start playback: %v", err)
	}
	stimulus.isPlaying = true
	return nil
}

// Pause transitions the graph to paused; no-op when not playing.
func (stimulus *Stimulus) Pause() {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()

	if !stimulus.isPlaying || stimulus.graph == nil {
		stimulus.isPlaying = false
		return
	}
	if err := stimulus.graph.SetState(StatePaused); err != nil {
		log.Printf("audio: pause playback: %v", err)
	}
	stimulus.isPlaying = false
}

// Stop tears the graph down to NULL and releases it, so a subsequent
// Play reconstructs it from scratch. Any pending debounce timer is
// cancelled. Safe to call at any time.
func (stimulus *Stimulus) Stop() {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()

	stimulus.cancelDebounceLocked()

	if stimulus.graph != nil {
		if err := stimulus.graph.SetState(StateNull); err != nil {
			log.Printf("audio: stop playback: %v", err)
		}
		stimulus.graph.Release()
		stimulus.graph = nil
		stimulus.sourceLeft = nil
		stimulus.sourceRight = nil
		stimulus.volumeStage = nil
	}
	stimulus.isPlaying = false
}

// IsPlaying reports whether the stimulus is currently audible.
func (stimulus *Stimulus) IsPlaying() bool {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()
	return stimulus.isPlaying
}

// scheduleFrequencyUpdateLocked marks a pending update and restarts the
// debounce timer. Repeated calls within the window reset the timer, so
// at most one application happens per quiet period. The generation
// counter invalidates a callback whose timer fired just before the
// reschedule and is already waiting on the mutex.
func (stimulus *Stimulus) scheduleFrequencyUpdateLocked() {
	stimulus.pendingUpdate = true
	if stimulus.debounce != nil {
		stimulus.debounce.Stop()
	}
	stimulus.debounceGen++
	generation := stimulus.debounceGen
	stimulus.debounce = time.AfterFunc(stimulus.config.DebounceDelay, func() {
		stimulus.applyFrequencyUpdate(generation)
	})
}

// cancelDebounceLocked drops any pending application and invalidates
// in-flight timer callbacks. Idempotent.
func (stimulus *Stimulus) cancelDebounceLocked() {
	stimulus.debounceGen++
	if stimulus.debounce != nil {
		stimulus.debounce.Stop()
		stimulus.debounce = nil
	}
	stimulus.pendingUpdate = false
}

// applyFrequencyUpdate is the debounce timer callback. Frequencies are
// only mutated with the graph paused; playback resumes afterwards.
func (stimulus *Stimulus) applyFrequencyUpdate(generation uint64) {
	stimulus.mu.Lock()
	defer stimulus.mu.Unlock()

	// A superseded or cancelled timer must not flush; the live timer
	// carries the current generation.
	if generation != stimulus.debounceGen {
		return
	}

	if !stimulus.pendingUpdate || stimulus.sourceLeft == nil || stimulus.sourceRight == nil {
		// Values are picked up at graph construction on the next Play.
		stimulus.debounce = nil
		return
	}

	wasPlaying := stimulus.isPlaying
	if wasPlaying {
		if err := stimulus.graph.SetState(StatePaused); err != nil {
			log.Printf("audio: pause for frequency update: %v", err)
		}
	}
	stimulus.applyFrequenciesLocked()
	if wasPlaying {
		if err := stimulus.graph.SetState(StatePlaying); err != nil {
			log.Printf("audio: resume after frequency update: %v", err)
		}
	}

	stimulus.pendingUpdate = false
	stimulus.debounce = nil
}

func (stimulus *Stimulus) applyFrequenciesLocked() {
	if stimulus.sourceLeft == nil || stimulus.sourceRight == nil {
		return
	}
	left := stimulus.baseFrequency
	right := stimulus.baseFrequency + stimulus.channelOffset
	if err := stimulus.sourceLeft.SetProperty(PropertyFrequency, left); err != nil {
		log.Printf("audio: set left frequency %.2f Hz: %v", left, err)
	}
	if err := stimulus.sourceRight.SetProperty(PropertyFrequency, right); err != nil {
		log.Printf("audio: set right frequency %.2f Hz: %v", right, err)
	}
}

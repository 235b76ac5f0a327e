package session

import (
	"log"
	"sync"
	"time"
)

// AudioStimulus is the tone side of a session.
type AudioStimulus interface {
	Play() error
	Pause()
	Stop()
}

// VisualStimulus is the animation side of a session.
type VisualStimulus interface {
	Play()
	Pause()
	Stop()
}

// Options configures a Controller.
type Options struct {
	Audio AudioStimulus
	// Visual may be nil when no renderer is attached.
	Visual VisualStimulus
	// VisualEnabled is consulted on Play; when it returns false the
	// visual stimulus stays stopped. Nil means always enabled.
	VisualEnabled func() bool
	// Now supplies the clock, defaulting to time.Now.
	Now func() time.Time
}

// Controller coordinates the audio and visual stimuli as one session
// and tracks the time spent actually playing. Paused intervals do not
// count towards the elapsed time.
type Controller struct {
	mu sync.Mutex

	audio         AudioStimulus
	visual        VisualStimulus
	visualEnabled func() bool
	now           func() time.Time

	playing     bool
	ended       bool
	accumulated time.Duration
	startedAt   time.Time
}

// NewController creates a session controller over the given stimuli.
func NewController(options Options) *Controller {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.VisualEnabled == nil {
		options.VisualEnabled = func() bool { return true }
	}
	return &Controller{
		audio:         options.Audio,
		visual:        options.Visual,
		visualEnabled: options.VisualEnabled,
		now:           options.Now,
	}
}

// Play starts or resumes both stimuli. An audio start failure aborts
// the session start and is returned; the visual stimulus is not
// touched in that case.
func (controller *Controller) Play() error {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.playing {
		return nil
	}

	if controller.audio != nil {
		if err := controller.audio.Play(); err != nil {
			return err
		}
	}
	if controller.visual != nil && controller.visualEnabled() {
		controller.visual.Play()
	}

	// A play after stop begins a fresh session; a play after pause
	// resumes the running total.
	if controller.ended {
		controller.accumulated = 0
		controller.ended = false
	}
	controller.startedAt = controller.now()
	controller.playing = true
	return nil
}

// Pause suspends both stimuli and folds the running interval into the
// accumulated session time.
func (controller *Controller) Pause() {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if !controller.playing {
		return
	}

	if controller.audio != nil {
		controller.audio.Pause()
	}
	if controller.visual != nil {
		controller.visual.Pause()
	}

	controller.accumulated += controller.now().Sub(controller.startedAt)
	controller.startedAt = time.Time{}
	controller.playing = false
}

// Stop ends the session and tears both stimuli down. The running
// interval is folded into the accumulated total, which stays readable
// until the next session starts.
func (controller *Controller) Stop() {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.audio != nil {
		controller.audio.Stop()
	}
	if controller.visual != nil {
		controller.visual.Stop()
	}

	if controller.playing {
		controller.accumulated += controller.now().Sub(controller.startedAt)
	}
	if controller.playing || controller.accumulated > 0 {
		log.Printf("session: stopped after %s", controller.accumulated.Round(time.Second))
	}
	controller.startedAt = time.Time{}
	controller.playing = false
	controller.ended = true
}

// IsPlaying reports whether a session is currently running.
func (controller *Controller) IsPlaying() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.playing
}

// Elapsed returns the time spent playing, excluding paused intervals.
// Zero if playback never started; after Stop it reports the finished
// session's total until a new session begins.
func (controller *Controller) Elapsed() time.Duration {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.elapsedLocked()
}

func (controller *Controller) elapsedLocked() time.Duration {
	elapsed := controller.accumulated
	if controller.playing && !controller.startedAt.IsZero() {
		elapsed += controller.now().Sub(controller.startedAt)
	}
	return elapsed
}

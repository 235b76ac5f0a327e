package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Channel assignment of an oscillator within the stereo stream.
const (
	channelLeft = iota
	channelRight
)

// SpeakerFactory builds tone graphs on the system speaker. The speaker
// is initialized once for the lifetime of the process; subsequent
// graphs reuse it.
type SpeakerFactory struct {
	initOnce sync.Once
	initErr  error
}

// NewSpeakerFactory creates a factory for speaker-backed tone graphs.
func NewSpeakerFactory() *SpeakerFactory {
	return &SpeakerFactory{}
}

// NewToneGraph assembles two oscillators, a mixer and a volume stage on
// the speaker.
func (factory *SpeakerFactory) NewToneGraph(config ToneGraphConfig) (Graph, error) {
	sampleRate := beep.SampleRate(config.SampleRate)

	factory.initOnce.Do(func() {
		factory.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/20))
	})
	if factory.initErr != nil {
		return nil, fmt.Errorf("init speaker: %w", factory.initErr)
	}

	left := newOscillator(sampleRate, channelLeft, config.LeftFrequency)
	right := newOscillator(sampleRate, channelRight, config.RightFrequency)

	volume := &effects.Volume{
		Streamer: beep.Mix(left, right),
		Base:     2,
	}
	applyVolume(volume, config.Volume)

	ctrl := &beep.Ctrl{Streamer: volume, Paused: true}

	return &toneGraph{
		ctrl:   ctrl,
		volume: &volumeElement{stage: volume},
		left:   left,
		right:  right,
	}, nil
}

// toneGraph drives a playing/paused/null lifecycle over a beep.Ctrl.
// The streamer is handed to the speaker on the first transition to
// playing and cleared again on null.
type toneGraph struct {
	ctrl   *beep.Ctrl
	volume *volumeElement
	left   *oscillator
	right  *oscillator

	started  bool
	released bool
}

// Element returns the named element, or nil for an unknown name.
func (graph *toneGraph) Element(name string) Element {
	switch name {
	case ElementSourceLeft:
		return graph.left
	case ElementSourceRight:
		return graph.right
	case ElementVolume:
		return graph.volume
	default:
		return nil
	}
}

// SetState transitions the graph. Transitions on a released graph fail.
func (graph *toneGraph) SetState(state State) error {
	if graph.released {
		return fmt.Errorf("set state %s: %w", state, ErrElementUnavailable)
	}
	switch state {
	case StatePlaying:
		if !graph.started {
			graph.started = true
			graph.ctrl.Paused = false
			speaker.Play(graph.ctrl)
			return nil
		}
		speaker.Lock()
		graph.ctrl.Paused = false
		speaker.Unlock()
	case StatePaused:
		speaker.Lock()
		graph.ctrl.Paused = true
		speaker.Unlock()
	case StateNull:
		speaker.Clear()
		graph.started = false
	}
	return nil
}

// Release detaches the graph from the speaker.
func (graph *toneGraph) Release() {
	if graph.released {
		return
	}
	if graph.started {
		speaker.Clear()
	}
	graph.released = true
}

// oscillator is a sine generator streaming into one channel of the
// stereo output, the other channel stays silent. Frequency changes are
// applied under the stream mutex so they take effect between buffers
// without clicks from a position jump.
type oscillator struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	channel    int
	frequency  float64
	position   float64
}

func newOscillator(sampleRate beep.SampleRate, channel int, frequency float64) *oscillator {
	return &oscillator{
		sampleRate: sampleRate,
		channel:    channel,
		frequency:  frequency,
	}
}

// Stream fills samples with the sine wave. It never drains.
func (osc *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	osc.mu.Lock()
	defer osc.mu.Unlock()

	step := osc.frequency / float64(osc.sampleRate)
	for i := range samples {
		value := math.Sin(2 * math.Pi * osc.position)
		samples[i][0] = 0
		samples[i][1] = 0
		samples[i][osc.channel] = value
		osc.position += step
		if osc.position >= 1 {
			osc.position -= 1
		}
	}
	return len(samples), true
}

// Err always returns nil; the generator cannot fail.
func (osc *oscillator) Err() error {
	return nil
}

// SetProperty updates a generator parameter. Only sine waves are
// produced; requesting any other waveform is an error.
func (osc *oscillator) SetProperty(name string, value any) error {
	switch name {
	case PropertyFrequency:
		hz, ok := value.(float64)
		if !ok {
			return fmt.Errorf("property %q: expected float64, got %T", name, value)
		}
		osc.mu.Lock()
		osc.frequency = hz
		osc.mu.Unlock()
		return nil
	case PropertyWave:
		wave, ok := value.(string)
		if !ok || wave != "sine" {
			return fmt.Errorf("property %q: unsupported waveform %v", name, value)
		}
		return nil
	case PropertyIsLive:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("property %q: expected bool, got %T", name, value)
		}
		return nil
	default:
		return fmt.Errorf("oscillator has no property %q", name)
	}
}

// volumeElement adapts the effects.Volume stage to the Element
// interface. Values are linear gain in 0..1.
type volumeElement struct {
	stage *effects.Volume
}

func (element *volumeElement) SetProperty(name string, value any) error {
	if name != PropertyVolume {
		return fmt.Errorf("volume stage has no property %q", name)
	}
	gain, ok := value.(float64)
	if !ok {
		return fmt.Errorf("property %q: expected float64, got %T", name, value)
	}
	speaker.Lock()
	applyVolume(element.stage, gain)
	speaker.Unlock()
	return nil
}

// applyVolume maps linear gain to the logarithmic exponent the volume
// stage expects. Zero gain switches to full silence instead of a
// negative-infinity exponent.
func applyVolume(stage *effects.Volume, gain float64) {
	if gain <= 0 {
		stage.Silent = true
		stage.Volume = 0
		return
	}
	stage.Silent = false
	stage.Volume = math.Log2(gain)
}

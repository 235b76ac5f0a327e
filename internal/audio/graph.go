package audio

import "errors"

// ErrElementUnavailable indicates a required graph element could not be
// created by the backend.
var ErrElementUnavailable = errors.New("audio graph element unavailable")

// State models the lifecycle of an audio graph.
type State int

const (
	// StateNull is the torn-down state; the graph holds no resources.
	StateNull State = iota
	// StatePaused keeps the graph assembled but silent.
	StatePaused
	// StatePlaying produces audible output.
	StatePlaying
)

// String returns the lowercase state name.
func (state State) String() string {
	switch state {
	case StatePaused:
		return "paused"
	case StatePlaying:
		return "playing"
	default:
		return "null"
	}
}

// Element is a named node of an audio graph whose properties can be set
// at runtime. Property errors are runtime conditions, never panics.
type Element interface {
	SetProperty(name string, value any) error
}

// Names of the elements a tone graph exposes.
const (
	ElementSourceLeft  = "src_left"
	ElementSourceRight = "src_right"
	ElementVolume      = "volume"
)

// Properties understood by tone graph elements.
const (
	PropertyFrequency = "freq"
	PropertyVolume    = "volume"
	PropertyWave      = "wave"
	PropertyIsLive    = "is-live"
)

// Graph is an assembled oscillator pipeline: two tone sources into a
// mixer, format conversion, a volume stage, and an output sink.
type Graph interface {
	// Element returns the named element, or nil if the graph has none.
	Element(name string) Element
	// SetState drives the graph through NULL/PAUSED/PLAYING.
	SetState(state State) error
	// Release frees backend resources. The graph must not be used after.
	Release()
}

// ToneGraphConfig carries the initial parameters of a tone graph.
type ToneGraphConfig struct {
	SampleRate     int
	LeftFrequency  float64
	RightFrequency float64
	Volume         float64
}

// Factory constructs tone graphs against a concrete audio backend.
type Factory interface {
	NewToneGraph(config ToneGraphConfig) (Graph, error)
}

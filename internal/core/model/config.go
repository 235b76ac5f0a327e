package model

// Color is an RGB triplet with components in the 0..1 range.
type Color struct {
	R float64
	G float64
	B float64
}

// BreathCycle holds the four phase durations in seconds:
// inhale, hold, exhale, hold.
type BreathCycle [4]float64

// Total returns the length of one full cycle in seconds.
func (cycle BreathCycle) Total() float64 {
	return cycle[0] + cycle[1] + cycle[2] + cycle[3]
}

// DefaultBreathCycle returns the standard 4-4-4-4 box-breathing cycle.
func DefaultBreathCycle() BreathCycle {
	return BreathCycle{4.0, 4.0, 4.0, 4.0}
}

// ToneConfig contains the parameters of a binaural tone pair. The left
// channel plays BaseFrequency, the right channel BaseFrequency plus
// ChannelOffset.
type ToneConfig struct {
	BaseFrequency float64
	ChannelOffset float64
	Volume        float64
}

// BrainState identifies a targeted brainwave band.
type BrainState int

const (
	StateDelta BrainState = iota
	StateTheta
	StateAlpha
	StateBeta
	StateGamma
)

// Name returns the display name of the state.
func (state BrainState) Name() string {
	switch state {
	case StateDelta:
		return "Delta"
	case StateTheta:
		return "Theta"
	case StateAlpha:
		return "Alpha"
	case StateBeta:
		return "Beta"
	case StateGamma:
		return "Gamma"
	default:
		return "Unknown"
	}
}

// StateInfo describes the binaural offset range of a brainwave band.
type StateInfo struct {
	LowerBound    float64
	UpperBound    float64
	DefaultOffset float64
	Description   string
}

// Info returns the frequency range data for the state. Unknown states
// fall back to Theta.
func (state BrainState) Info() StateInfo {
	switch state {
	case StateDelta:
		return StateInfo{
			LowerBound:    0.3,
			UpperBound:    4.0,
			DefaultOffset: 2.0,
			Description:   "Promotes profound relaxation and unconscious processes like physical recovery and immune function.",
		}
	case StateAlpha:
		return StateInfo{
			LowerBound:    8.1,
			UpperBound:    13.0,
			DefaultOffset: 10.0,
			Description:   "Boosts learning, stress relief, and a bridge between conscious and subconscious mind.",
		}
	case StateBeta:
		return StateInfo{
			LowerBound:    13.1,
			UpperBound:    30.0,
			DefaultOffset: 20.0,
			Description:   "Supports logical thinking, focus, and engagement in tasks requiring mental effort or decision-making.",
		}
	case StateGamma:
		return StateInfo{
			LowerBound:    30.0,
			UpperBound:    130.0,
			DefaultOffset: 40.0,
			Description:   "Linked to advanced learning, memory consolidation, and moments of clarity or inspiration.",
		}
	default:
		return StateInfo{
			LowerBound:    4.1,
			UpperBound:    8.0,
			DefaultOffset: 6.0,
			Description:   "Enhances intuition, emotional processing, and access to subconscious insights or vivid imagery.",
		}
	}
}

// ColorScheme groups the three color roles used by breath animations.
type ColorScheme struct {
	Breath     Color
	Hold       Color
	Background Color
}

// SchemeFor returns the color scheme associated with a brainwave state.
// Unknown states fall back to the Theta scheme.
func SchemeFor(state BrainState) ColorScheme {
	switch state {
	case StateDelta:
		return ColorScheme{
			Breath:     Color{R: 0.1, G: 0.1, B: 0.4},
			Hold:       Color{R: 0.2, G: 0.0, B: 0.3},
			Background: Color{R: 0.05, G: 0.05, B: 0.2},
		}
	case StateAlpha:
		return ColorScheme{
			Breath:     Color{R: 0.4, G: 0.8, B: 0.5},
			Hold:       Color{R: 0.6, G: 0.8, B: 0.2},
			Background: Color{R: 0.2, G: 0.5, B: 0.3},
		}
	case StateBeta:
		return ColorScheme{
			Breath:     Color{R: 0.9, G: 0.3, B: 0.2},
			Hold:       Color{R: 0.8, G: 0.5, B: 0.1},
			Background: Color{R: 0.6, G: 0.2, B: 0.1},
		}
	case StateGamma:
		return ColorScheme{
			Breath:     Color{R: 0.9, G: 0.8, B: 0.2},
			Hold:       Color{R: 0.9, G: 0.7, B: 0.0},
			Background: Color{R: 0.7, G: 0.6, B: 0.1},
		}
	default:
		return ColorScheme{
			Breath:     Color{R: 0.2, G: 0.6, B: 0.9},
			Hold:       Color{R: 0.6, G: 0.4, B: 0.8},
			Background: Color{R: 0.2, G: 0.2, B: 0.6},
		}
	}
}

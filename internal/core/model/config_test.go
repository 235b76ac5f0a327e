package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBreathCycleTotal(t *testing.T) {
	require.InDelta(t, 16.0, DefaultBreathCycle().Total(), 1e-9)
	require.InDelta(t, 6.0, BreathCycle{2, 1, 2, 1}.Total(), 1e-9)
	require.InDelta(t, 0.0, BreathCycle{}.Total(), 1e-9)
}

func TestStateInfoOffsetsWithinBand(t *testing.T) {
	states := []BrainState{StateDelta, StateTheta, StateAlpha, StateBeta, StateGamma}
	for _, state := range states {
		info := state.Info()
		require.Less(t, info.LowerBound, info.UpperBound, state.Name())
		require.GreaterOrEqual(t, info.DefaultOffset, info.LowerBound, state.Name())
		require.LessOrEqual(t, info.DefaultOffset, info.UpperBound, state.Name())
		require.NotEmpty(t, info.Description, state.Name())
	}
}

func TestUnknownStateFallsBackToTheta(t *testing.T) {
	unknown := BrainState(99)
	require.Equal(t, StateTheta.Info(), unknown.Info())
	require.Equal(t, SchemeFor(StateTheta), SchemeFor(unknown))
	require.Equal(t, "Unknown", unknown.Name())
}

func TestSchemesAreDistinct(t *testing.T) {
	seen := map[ColorScheme]BrainState{}
	for _, state := range []BrainState{StateDelta, StateTheta, StateAlpha, StateBeta, StateGamma} {
		scheme := SchemeFor(state)
		other, dup := seen[scheme]
		require.False(t, dup, "%s shares a scheme with %s", state.Name(), other.Name())
		seen[scheme] = state
	}
}

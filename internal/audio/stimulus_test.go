package audio

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type propertyCall struct {
	name  string
	value any
}

type fakeElement struct {
	mu    sync.Mutex
	calls []propertyCall
	err   error
}

func (element *fakeElement) SetProperty(name string, value any) error {
	element.mu.Lock()
	defer element.mu.Unlock()
	element.calls = append(element.calls, propertyCall{name: name, value: value})
	return element.err
}

func (element *fakeElement) values(name string) []any {
	element.mu.Lock()
	defer element.mu.Unlock()
	var values []any
	for _, call := range element.calls {
		if call.name == name {
			values = append(values, call.value)
		}
	}
	return values
}

type fakeGraph struct {
	mu       sync.Mutex
	elements map[string]*fakeElement
	states   []State
	released bool
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{elements: map[string]*fakeElement{
		ElementSourceLeft:  {},
		ElementSourceRight: {},
		ElementVolume:      {},
	}}
}

func (graph *fakeGraph) Element(name string) Element {
	element, ok := graph.elements[name]
	if !ok {
		return nil
	}
	return element
}

func (graph *fakeGraph) SetState(state State) error {
	graph.mu.Lock()
	defer graph.mu.Unlock()
	graph.states = append(graph.states, state)
	return nil
}

func (graph *fakeGraph) Release() {
	graph.mu.Lock()
	defer graph.mu.Unlock()
	graph.released = true
}

func (graph *fakeGraph) stateLog() []State {
	graph.mu.Lock()
	defer graph.mu.Unlock()
	return append([]State(nil), graph.states...)
}

type fakeFactory struct {
	mu      sync.Mutex
	graphs  []*fakeGraph
	configs []ToneGraphConfig
	err     error
}

func (factory *fakeFactory) NewToneGraph(config ToneGraphConfig) (Graph, error) {
	factory.mu.Lock()
	defer factory.mu.Unlock()
	if factory.err != nil {
		return nil, factory.err
	}
	graph := newFakeGraph()
	factory.graphs = append(factory.graphs, graph)
	factory.configs = append(factory.configs, config)
	return graph, nil
}

func newTestStimulus(factory Factory) *Stimulus {
	return NewStimulus(factory, Config{DebounceDelay: 20 * time.Millisecond})
}

func TestPlayBuildsGraphWithCurrentParameters(t *testing.T) {
	factory := &fakeFactory{}
	stimulus := newTestStimulus(factory)

	stimulus.SetBaseFrequency(150)
	stimulus.SetChannelOffset(30)
	stimulus.SetVolume(0.4)

	require.NoError(t, stimulus.Play())
	require.True(t, stimulus.IsPlaying())

	require.Len(t, factory.configs, 1)
	config := factory.configs[0]
	require.InDelta(t, 150.0, config.LeftFrequency, 1e-9)
	require.InDelta(t, 180.0, config.RightFrequency, 1e-9)
	require.InDelta(t, 0.4, config.Volume, 1e-9)
	require.Equal(t, 44100, config.SampleRate)

	require.Equal(t, []State{StatePlaying}, factory.graphs[0].stateLog())
}

func TestPlayReturnsGraphConstructionError(t *testing.T) {
	boom := errors.New("no sound device")
	factory := &fakeFactory{err: boom}
	stimulus := newTestStimulus(factory)

	err := stimulus.Play()
	require.ErrorIs(t, err, boom)
	require.False(t, stimulus.IsPlaying())
}

func TestFrequencyChangesAreDebounced(t *testing.T) {
	factory := &fakeFactory{}
	stimulus := newTestStimulus(factory)
	require.NoError(t, stimulus.Play())

	graph := factory.graphs[0]
	left := graph.elements[ElementSourceLeft]
	right := graph.elements[ElementSourceRight]

	// A burst of changes within the window collapses into one
	// application of the final values.
	stimulus.SetBaseFrequency(100)
	stimulus.SetBaseFrequency(120)
	stimulus.SetBaseFrequency(150)
	stimulus.SetChannelOffset(30)

	// The resume transition is the last step of the debounce flush.
	require.Eventually(t, func() bool {
		return len(graph.stateLog()) == 3
	}, time.Second, 5*time.Millisecond)

	// One application from Play plus exactly one from the debounce.
	leftValues := left.values(PropertyFrequency)
	require.Len(t, leftValues, 2)
	require.InDelta(t, 150.0, leftValues[1].(float64), 1e-9)

	rightValues := right.values(PropertyFrequency)
	require.InDelta(t, 180.0, rightValues[len(rightValues)-1].(float64), 1e-9)

	// The mutation happened inside a pause/resume bracket.
	require.Equal(t, []State{StatePlaying, StatePaused, StatePlaying}, graph.stateLog())
}

func TestFrequencyChangeBeforePlayAppliesAtConstruction(t *testing.T) {
	factory := &fakeFactory{}
	stimulus := newTestStimulus(factory)

	stimulus.SetBaseFrequency(90)
	time.Sleep(60 * time.Millisecond)

	require.NoError(t, stimulus.Play())
	require.Len(t, factory.configs, 1)
	require.InDelta(t, 90.0, factory.configs[0].LeftFrequency, 1e-9)
}

func TestSetVolumeClampsAndAppliesImmediately(t *testing.T) {
	factory := &fakeFactory{}
	stimulus := newTestStimulus(factory)
	require.NoError(t, stimulus.Play())

	volume := factory.graphs[0].elements[ElementVolume]

	cases := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{2.0, 1},
		{0.42, 0.42},
	}
	for _, tc := range cases {
		stimulus.SetVolume(tc.in)
		require.InDelta(t, tc.want, stimulus.Volume(), 1e-9)
	}

	values := volume.values(PropertyVolume)
	require.Len(t, values, 3)
	require.InDelta(t, 0.42, values[2].(float64), 1e-9)
}

func TestPauseKeepsGraph(t *testing.T) {
	factory := &fakeFactory{}
	stimulus := newTestStimulus(factory)
	require.NoError(t, stimulus.Play())

	stimulus.Pause()
	require.False(t, stimulus.IsPlaying())
	require.Equal(t, []State{StatePlaying, StatePaused}, factory.graphs[0].stateLog())

	// Resuming reuses the existing graph.
	require.NoError(t, stimulus.Play())
	require.Len(t, factory.graphs, 1)
}

func TestStopTearsDownAndRebuildsOnNextPlay(t *testing.T) {
	factory := &fakeFactory{}
	stimulus := newTestStimulus(factory)
	require.NoError(t, stimulus.Play())

	stimulus.SetBaseFrequency(75)
	stimulus.Stop()

	graph := factory.graphs[0]
	states := graph.stateLog()
	require.Equal(t, StateNull, states[len(states)-1])
	require.True(t, graph.released)
	require.False(t, stimulus.IsPlaying())

	// The cancelled debounce never reaches the released graph.
	time.Sleep(60 * time.Millisecond)
	require.Empty(t, graph.elements[ElementSourceLeft].values(PropertyFrequency)[1:])

	require.NoError(t, stimulus.Play())
	require.Len(t, factory.graphs, 2)
	require.InDelta(t, 75.0, factory.configs[1].LeftFrequency, 1e-9)
}

func TestSupersededDebounceCallbackDoesNotFlush(t *testing.T) {
	factory := &fakeFactory{}
	stimulus := newTestStimulus(factory)
	require.NoError(t, stimulus.Play())

	left := factory.graphs[0].elements[ElementSourceLeft]
	stimulus.SetBaseFrequency(100)

	// A callback left over from a rescheduled timer carries an old
	// generation; it must neither apply values mid-burst nor detach the
	// live timer.
	stimulus.applyFrequencyUpdate(0)
	require.Len(t, left.values(PropertyFrequency), 1)

	require.Eventually(t, func() bool {
		return len(left.values(PropertyFrequency)) == 2
	}, time.Second, 5*time.Millisecond)
	require.InDelta(t, 100.0, left.values(PropertyFrequency)[1].(float64), 1e-9)
}

func TestStopInvalidatesBlockedDebounceCallback(t *testing.T) {
	factory := &fakeFactory{}
	stimulus := newTestStimulus(factory)
	require.NoError(t, stimulus.Play())

	stimulus.SetBaseFrequency(100)
	stimulus.mu.Lock()
	staleGeneration := stimulus.debounceGen
	stimulus.mu.Unlock()
	stimulus.Stop()

	// A callback that was already waiting when Stop ran sees a newer
	// generation and backs off.
	stimulus.applyFrequencyUpdate(staleGeneration)

	require.NoError(t, stimulus.Play())
	require.Len(t, factory.graphs, 2)
	left := factory.graphs[1].elements[ElementSourceLeft]
	time.Sleep(60 * time.Millisecond)
	require.Len(t, left.values(PropertyFrequency), 1)
}

func TestStopWithoutPlayIsSafe(t *testing.T) {
	stimulus := newTestStimulus(&fakeFactory{})
	stimulus.Stop()
	require.False(t, stimulus.IsPlaying())
}

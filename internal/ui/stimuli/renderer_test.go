package stimuli

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"elevate/internal/ui/animation"
)

type paintProbe struct {
	lastColor [3]float64
	painted   bool
	arcs      int
}

func (probe *paintProbe) SetSourceRGB(r, g, b float64) { probe.lastColor = [3]float64{r, g, b} }
func (probe *paintProbe) Rectangle(x, y, w, h float64) {}
func (probe *paintProbe) Arc(cx, cy, radius, a1, a2 float64) {
	probe.arcs++
}
func (probe *paintProbe) Fill()  {}
func (probe *paintProbe) Paint() { probe.painted = true }
func (probe *paintProbe) SelectFontFace(family string, slant animation.FontSlant, weight animation.FontWeight) {
}
func (probe *paintProbe) SetFontSize(size float64) {}
func (probe *paintProbe) TextExtents(text string) animation.TextMetrics {
	return animation.TextMetrics{}
}
func (probe *paintProbe) MoveTo(x, y float64) {}
func (probe *paintProbe) ShowText(text string) {}

func TestRenderIdleBackgroundWhenStopped(t *testing.T) {
	renderer := NewRenderer(animation.StimuliBreathBall, nil)

	probe := &paintProbe{}
	renderer.Render(probe, 100, 100)

	require.True(t, probe.painted)
	require.Equal(t, [3]float64{0.1, 0.1, 0.1}, probe.lastColor)
	require.Zero(t, probe.arcs)
}

func TestRenderIdleBackgroundWhenDisabled(t *testing.T) {
	renderer := NewRenderer(animation.StimuliBreathBall, nil)
	renderer.SetEnabled(false)
	renderer.Play()
	defer renderer.Stop()

	probe := &paintProbe{}
	renderer.Render(probe, 100, 100)
	require.Equal(t, [3]float64{0.1, 0.1, 0.1}, probe.lastColor)
	require.Zero(t, probe.arcs)
}

func TestPlayTicksAndRequestsRedraw(t *testing.T) {
	var redraws atomic.Int32
	renderer := NewRenderer(animation.StimuliBreathBall, func() {
		redraws.Add(1)
	})

	renderer.Play()
	defer renderer.Stop()
	require.True(t, renderer.IsPlaying())

	require.Eventually(t, func() bool {
		return redraws.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	probe := &paintProbe{}
	renderer.Render(probe, 100, 100)
	require.Equal(t, 1, probe.arcs)
}

func TestPauseStopsTickerAndRewinds(t *testing.T) {
	renderer := NewRenderer(animation.StimuliBreathBall, nil)
	renderer.Play()
	renderer.Pause()
	require.False(t, renderer.IsPlaying())

	// Pausing twice is safe.
	renderer.Pause()
	renderer.Stop()
}

func TestSetStimuliTypeSwapsAnimation(t *testing.T) {
	renderer := NewRenderer(animation.StimuliBreathBall, nil)
	renderer.SetStimuliType(animation.StimuliColorLayers)
	renderer.Play()
	defer renderer.Stop()

	// The color layers animation fills a rectangle, never an arc.
	probe := &paintProbe{}
	renderer.Render(probe, 100, 100)
	require.Zero(t, probe.arcs)
}

package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaintFloodsSurface(t *testing.T) {
	surface := NewImageSurface(8, 8)
	surface.SetSourceRGB(1, 0, 0)
	surface.Paint()

	red := color.RGBA{R: 0xff, A: 0xff}
	require.Equal(t, red, surface.Image().RGBAAt(0, 0))
	require.Equal(t, red, surface.Image().RGBAAt(7, 7))
}

func TestFillRectangleStaysInBounds(t *testing.T) {
	surface := NewImageSurface(10, 10)
	surface.SetSourceRGB(0, 0, 0)
	surface.Paint()

	surface.SetSourceRGB(0, 1, 0)
	surface.Rectangle(2, 2, 4, 4)
	surface.Fill()

	green := color.RGBA{G: 0xff, A: 0xff}
	black := color.RGBA{A: 0xff}
	require.Equal(t, green, surface.Image().RGBAAt(3, 3))
	require.Equal(t, black, surface.Image().RGBAAt(1, 1))
	require.Equal(t, black, surface.Image().RGBAAt(7, 7))

	// A second Fill without a new path is a no-op.
	surface.SetSourceRGB(1, 1, 1)
	surface.Fill()
	require.Equal(t, green, surface.Image().RGBAAt(3, 3))
}

func TestFillCircle(t *testing.T) {
	surface := NewImageSurface(20, 20)
	surface.SetSourceRGB(0, 0, 0)
	surface.Paint()

	surface.SetSourceRGB(0, 0, 1)
	surface.Arc(10, 10, 6, 0, 6.2832)
	surface.Fill()

	blue := color.RGBA{B: 0xff, A: 0xff}
	black := color.RGBA{A: 0xff}

	// Center and points well inside the disc are filled.
	require.Equal(t, blue, surface.Image().RGBAAt(10, 10))
	require.Equal(t, blue, surface.Image().RGBAAt(13, 10))
	require.Equal(t, blue, surface.Image().RGBAAt(10, 14))

	// Corners stay untouched.
	require.Equal(t, black, surface.Image().RGBAAt(0, 0))
	require.Equal(t, black, surface.Image().RGBAAt(19, 19))
}

func TestZeroRadiusCircleDrawsNothing(t *testing.T) {
	surface := NewImageSurface(6, 6)
	surface.SetSourceRGB(0, 0, 0)
	surface.Paint()

	surface.SetSourceRGB(1, 1, 1)
	surface.Arc(3, 3, 0, 0, 6.2832)
	surface.Fill()

	require.Equal(t, color.RGBA{A: 0xff}, surface.Image().RGBAAt(3, 3))
}

func TestCircleClipsToBounds(t *testing.T) {
	surface := NewImageSurface(10, 10)
	surface.SetSourceRGB(1, 0, 0)
	surface.Arc(0, 0, 50, 0, 6.2832)
	surface.Fill()

	// Everything visible is covered; no panic from out-of-range rows.
	red := color.RGBA{R: 0xff, A: 0xff}
	require.Equal(t, red, surface.Image().RGBAAt(9, 9))
}

func TestResizeReallocatesOnlyOnChange(t *testing.T) {
	surface := NewImageSurface(4, 4)
	before := surface.Image()

	surface.Resize(4, 4)
	require.Same(t, before, surface.Image())

	surface.Resize(8, 2)
	bounds := surface.Image().Bounds()
	require.Equal(t, 8, bounds.Dx())
	require.Equal(t, 2, bounds.Dy())
}

func TestTextExtentsAndShowText(t *testing.T) {
	surface := NewImageSurface(60, 20)
	surface.SetSourceRGB(0, 0, 0)
	surface.Paint()

	metrics := surface.TextExtents("Hold")
	require.Greater(t, metrics.Width, 0.0)
	require.Greater(t, metrics.Height, 0.0)

	surface.SetSourceRGB(1, 1, 1)
	surface.MoveTo(2, 14)
	surface.ShowText("Hold")

	// At least one pixel of the glyphs is white.
	found := false
	for y := 0; y < 20 && !found; y++ {
		for x := 0; x < 60; x++ {
			if surface.Image().RGBAAt(x, y).R == 0xff {
				found = true
				break
			}
		}
	}
	require.True(t, found)
}

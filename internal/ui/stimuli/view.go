package stimuli

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"elevate/internal/ui/render"
)

// View shows the visual stimulus on a fyne raster canvas. It is placed
// as the central area of the main window.
type View struct {
	raster   *canvas.Raster
	surface  *render.ImageSurface
	renderer *Renderer
}

// NewView creates a stimuli view with a renderer for the given stimuli
// type.
func NewView(stimuliType int) *View {
	view := &View{surface: render.NewImageSurface(1, 1)}
	view.renderer = NewRenderer(stimuliType, view.refresh)
	view.raster = canvas.NewRaster(view.frame)
	view.raster.SetMinSize(fyne.NewSize(480, 420))
	return view
}

// Renderer returns the renderer driving this view.
func (view *View) Renderer() *Renderer {
	return view.renderer
}

// Content returns the canvas object to place in a window.
func (view *View) Content() fyne.CanvasObject {
	return view.raster
}

// frame is the raster generator; it renders the current animation
// frame at the requested pixel size.
func (view *View) frame(width, height int) image.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	view.surface.Resize(width, height)
	view.renderer.Render(view.surface, width, height)
	return view.surface.Image()
}

// refresh requests a repaint from the fyne main loop. Called from the
// renderer's ticker goroutine.
func (view *View) refresh() {
	fyne.Do(view.raster.Refresh)
}

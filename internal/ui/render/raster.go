package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"elevate/internal/ui/animation"
)

// pathKind marks what geometry is pending between a path call and Fill.
type pathKind int

const (
	pathNone pathKind = iota
	pathRectangle
	pathCircle
)

// ImageSurface implements the animation drawing surface over an RGBA
// raster. It supports the exact subset of operations the animations
// use: solid fills of rectangles and circles, whole-surface paints and
// short text runs.
type ImageSurface struct {
	img    *image.RGBA
	source color.RGBA
	face   font.Face

	pending pathKind
	rect    image.Rectangle
	circleX float64
	circleY float64
	radius  float64

	penX float64
	penY float64
}

// NewImageSurface creates a surface of the given pixel size.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		source: color.RGBA{A: 0xff},
		face:   basicfont.Face7x13,
	}
}

// Image exposes the backing raster for display.
func (surface *ImageSurface) Image() *image.RGBA {
	return surface.img
}

// Resize reallocates the backing raster when the requested size
// differs. Contents are discarded.
func (surface *ImageSurface) Resize(width, height int) {
	bounds := surface.img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return
	}
	surface.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// SetSourceRGB sets the current color from components in 0..1.
func (surface *ImageSurface) SetSourceRGB(r, g, b float64) {
	surface.source = color.RGBA{
		R: clampComponent(r),
		G: clampComponent(g),
		B: clampComponent(b),
		A: 0xff,
	}
}

// Rectangle stages a rectangle path for the next Fill.
func (surface *ImageSurface) Rectangle(x, y, width, height float64) {
	surface.pending = pathRectangle
	surface.rect = image.Rect(int(x), int(y), int(x+width), int(y+height))
}

// Arc stages a circle path for the next Fill. Partial arcs are not
// supported; the angles are ignored and a full disc is filled.
func (surface *ImageSurface) Arc(cx, cy, radius, angle1, angle2 float64) {
	surface.pending = pathCircle
	surface.circleX = cx
	surface.circleY = cy
	surface.radius = radius
}

// Fill rasterizes the staged path with the current color.
func (surface *ImageSurface) Fill() {
	switch surface.pending {
	case pathRectangle:
		draw.Draw(surface.img, surface.rect.Intersect(surface.img.Bounds()),
			image.NewUniform(surface.source), image.Point{}, draw.Src)
	case pathCircle:
		surface.fillCircle()
	}
	surface.pending = pathNone
}

// Paint floods the whole surface with the current color.
func (surface *ImageSurface) Paint() {
	draw.Draw(surface.img, surface.img.Bounds(),
		image.NewUniform(surface.source), image.Point{}, draw.Src)
}

// SelectFontFace is accepted for interface compatibility; the raster
// backend renders all text with its single built-in face.
func (surface *ImageSurface) SelectFontFace(family string, slant animation.FontSlant, weight animation.FontWeight) {
}

// SetFontSize is accepted for interface compatibility; the built-in
// face has a fixed size.
func (surface *ImageSurface) SetFontSize(size float64) {
}

// TextExtents measures a text run with the built-in face.
func (surface *ImageSurface) TextExtents(text string) animation.TextMetrics {
	width := font.MeasureString(surface.face, text)
	metrics := surface.face.Metrics()
	return animation.TextMetrics{
		Width:  float64(width) / 64.0,
		Height: float64(metrics.Ascent+metrics.Descent) / 64.0,
	}
}

// MoveTo positions the text pen at the baseline origin.
func (surface *ImageSurface) MoveTo(x, y float64) {
	surface.penX = x
	surface.penY = y
}

// ShowText draws a text run at the pen position in the current color.
func (surface *ImageSurface) ShowText(text string) {
	drawer := &font.Drawer{
		Dst:  surface.img,
		Src:  image.NewUniform(surface.source),
		Face: surface.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(surface.penX * 64),
			Y: fixed.Int26_6(surface.penY * 64),
		},
	}
	drawer.DrawString(text)
}

// fillCircle rasterizes the staged disc one scanline at a time.
func (surface *ImageSurface) fillCircle() {
	if surface.radius <= 0 {
		return
	}
	bounds := surface.img.Bounds()
	top := int(math.Floor(surface.circleY - surface.radius))
	bottom := int(math.Ceil(surface.circleY + surface.radius))
	for y := top; y <= bottom; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		dy := float64(y) + 0.5 - surface.circleY
		span := surface.radius*surface.radius - dy*dy
		if span < 0 {
			continue
		}
		half := math.Sqrt(span)
		left := int(math.Floor(surface.circleX - half))
		right := int(math.Ceil(surface.circleX + half))
		if left < bounds.Min.X {
			left = bounds.Min.X
		}
		if right > bounds.Max.X {
			right = bounds.Max.X
		}
		for x := left; x < right; x++ {
			surface.img.SetRGBA(x, y, surface.source)
		}
	}
}

func clampComponent(value float64) uint8 {
	if value <= 0 {
		return 0
	}
	if value >= 1 {
		return 0xff
	}
	return uint8(value*255 + 0.5)
}

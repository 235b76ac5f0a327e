package animation

// FontSlant selects the slant of a rendered font face.
type FontSlant int

// FontWeight selects the weight of a rendered font face.
type FontWeight int

const (
	FontSlantNormal FontSlant = iota
	FontSlantItalic
)

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

// TextMetrics reports the measured size of a text string.
type TextMetrics struct {
	Width  float64
	Height float64
}

// Surface is the drawing capability set animations render against. It
// mirrors an immediate-mode 2D context: a source color is selected,
// a path (rectangle or arc) is built, then filled.
type Surface interface {
	// SetSourceRGB selects the current solid color; components in 0..1.
	SetSourceRGB(r, g, b float64)
	// Rectangle sets the current path to the given rectangle.
	Rectangle(x, y, w, h float64)
	// Arc sets the current path to a circular arc around (cx, cy).
	// Angles are in radians.
	Arc(cx, cy, radius, angle1, angle2 float64)
	// Fill paints the current path with the current color.
	Fill()
	// Paint floods the whole surface with the current color.
	Paint()

	SelectFontFace(family string, slant FontSlant, weight FontWeight)
	SetFontSize(size float64)
	TextExtents(text string) TextMetrics
	MoveTo(x, y float64)
	ShowText(text string)
}

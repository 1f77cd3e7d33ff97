package scene

// Given a scene, implements how to draw it on a surface.
// This requires a driver implementing the actual pixel operations,
// such as a rasterizer writing into a framebuffer, or a pdf writer.

// Color is an opaque pixel value, interpreted by the surface
// according to its pixel format.
type Color uint32

// Surface knows how to do the actual draw operations
// but doesn't need any scene knowledge.
// Regions are given in scene units: implementations resolve
// the MaximumArea sentinel and clip to their own bounds, so that
// drawing out of bounds is never an error.
type Surface interface {
	// Area returns the drawable area, in pixels.
	Area() Area

	// BitsPerPixel returns the depth of the pixel format.
	BitsPerPixel() int

	// Clear resets the region to the surface background.
	Clear(r Region)

	// FillRectangle paints the whole region.
	FillRectangle(r Region, shape Rectangle)

	// FillRoundedRectangle paints the region with rounded corners.
	FillRoundedRectangle(r Region, shape RoundedRectangle)

	// FillBarProgress paints a progress bar occupying the region.
	FillBarProgress(r Region, shape BarProgress)
}

// DrawingAttributes binds a surface to the region drawing
// operations apply to. It is a value: narrowing it with WithRegion
// returns a copy and leaves the receiver untouched.
// The surface is borrowed and never closed.
type DrawingAttributes struct {
	surface Surface
	region  Region
}

// NewDrawingAttributes returns attributes covering `r` on `s`.
func NewDrawingAttributes(s Surface, r Region) DrawingAttributes {
	return DrawingAttributes{surface: s, region: r}
}

// WithRegion returns attributes on the same surface, scoped to `r`.
func (a DrawingAttributes) WithRegion(r Region) DrawingAttributes {
	a.region = r
	return a
}

func (a DrawingAttributes) Surface() Surface { return a.surface }
func (a DrawingAttributes) Region() Region   { return a.region }

// Drawable is implemented by the primitive shapes.
// Draw has no failure mode: clipping is the surface's concern.
type Drawable interface {
	Draw(a DrawingAttributes)
}

var (
	_ Drawable = Rectangle{}
	_ Drawable = RoundedRectangle{}
	_ Drawable = BarProgress{}
)

// Rectangle fills its region with a plain color.
type Rectangle struct {
	Color Color
}

func (s Rectangle) Draw(a DrawingAttributes) { a.surface.FillRectangle(a.region, s) }

// RoundedRectangle fills its region, with corners rounded by Radius.
type RoundedRectangle struct {
	Radius uint8
	Color  Color
}

func (s RoundedRectangle) Draw(a DrawingAttributes) { a.surface.FillRoundedRectangle(a.region, s) }

// BarProgress is a horizontal gauge : a border of BorderThickness
// in Color, a BackgroundColor track, and a Color fill proportional
// to Value/Maximum.
type BarProgress struct {
	Value, Maximum  uint16
	BackgroundColor Color
	BorderThickness uint8
	Color           Color
}

// Progress returns Value/Maximum clamped to [0, 1].
// A zero Maximum yields an empty bar.
func (s BarProgress) Progress() float64 {
	if s.Maximum == 0 {
		return 0
	}
	if s.Value >= s.Maximum {
		return 1
	}
	return float64(s.Value) / float64(s.Maximum)
}

func (s BarProgress) Draw(a DrawingAttributes) { a.surface.FillBarProgress(a.region, s) }

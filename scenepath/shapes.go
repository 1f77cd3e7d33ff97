// Package scenepath implements the transformation from
// scene shapes to their path equivalent, which can then be
// consumed by any rasterx.Adder (a rasterizer or a pdf writer).
package scenepath

import (
	"image"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// AddRect adds the rectangle r, clockwise.
func AddRect(p rasterx.Adder, r image.Rectangle) {
	minX, minY := float64(r.Min.X), float64(r.Min.Y)
	maxX, maxY := float64(r.Max.X), float64(r.Max.Y)
	p.Start(toFixedP(minX, minY))
	p.Line(toFixedP(maxX, minY))
	p.Line(toFixedP(maxX, maxY))
	p.Line(toFixedP(minX, maxY))
	p.Stop(true)
}

// AddRoundRect adds the rectangle r with corners rounded by
// arcs of the given radius. The radius is reduced to half the
// smallest side when needed, and a null radius gives a plain rectangle.
func AddRoundRect(p rasterx.Adder, r image.Rectangle, radius float64) {
	if radius <= 0 {
		AddRect(p, r)
		return
	}
	minX, minY := float64(r.Min.X), float64(r.Min.Y)
	maxX, maxY := float64(r.Max.X), float64(r.Max.Y)

	if w := maxX - minX; w < radius*2 {
		radius = w / 2
	}
	if h := maxY - minY; h < radius*2 {
		radius = h / 2
	}
	rx := radius

	p.Start(toFixedP(minX+rx, minY))
	p.Line(toFixedP(maxX-rx, minY))
	rasterx.RoundGap(p, toFixedP(maxX-rx, minY+rx), toFixedP(0, -rx), toFixedP(rx, 0))
	p.Line(toFixedP(maxX, maxY-rx))
	rasterx.RoundGap(p, toFixedP(maxX-rx, maxY-rx), toFixedP(rx, 0), toFixedP(0, rx))
	p.Line(toFixedP(minX+rx, maxY))
	rasterx.RoundGap(p, toFixedP(minX+rx, maxY-rx), toFixedP(0, rx), toFixedP(-rx, 0))
	p.Line(toFixedP(minX, minY+rx))
	rasterx.RoundGap(p, toFixedP(minX+rx, minY+rx), toFixedP(-rx, 0), toFixedP(0, -rx))
	p.Stop(true)
}

// BarLayout is the decomposition of a progress bar in
// three rectangles, painted in order.
type BarLayout struct {
	Border image.Rectangle // empty without border
	Track  image.Rectangle // painted with the background color
	Fill   image.Rectangle // painted with the bar color
}

// LayoutBar splits r for a bar with the given border thickness
// and progress, which is clamped to [0, 1].
func LayoutBar(r image.Rectangle, borderThickness int, progress float64) BarLayout {
	var out BarLayout
	if borderThickness > 0 {
		out.Border = r
	}
	out.Track = r.Inset(borderThickness)
	progress = math.Max(0, math.Min(1, progress))
	out.Fill = out.Track
	out.Fill.Max.X = out.Track.Min.X + int(math.Round(float64(out.Track.Dx())*progress))
	return out
}

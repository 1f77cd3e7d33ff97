package scenepath

import (
	"fmt"
	"image"
	"strings"

	"github.com/benoitkugler/scenedraw/scene"
)

// Units is the coordinate space of scene regions.
type Units uint8

const (
	// Pixels maps one scene unit to one pixel.
	Pixels Units = iota
	// Drawing maps [0, DrawingScale) onto the whole surface, on
	// both axes, whatever its resolution.
	Drawing
)

// DrawingScale is the size of the surface in Drawing units.
const DrawingScale = 32768

// coordinates are kept well inside the fixed.Int26_6 range
const maxCoordinate = 1 << 24

func (u Units) String() string {
	switch u {
	case Pixels:
		return "pixels"
	case Drawing:
		return "drawing"
	default:
		return "<unknown Units>"
	}
}

// ParseUnits accepts the names returned by Units.String.
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pixels", "pixel", "px":
		return Pixels, nil
	case "drawing":
		return Drawing, nil
	}
	return 0, fmt.Errorf("invalid units %q", s)
}

// scale converts a scene length along an axis of `size` pixels.
func (u Units) scale(v int64, size int) int64 {
	if u == Drawing {
		v = v * int64(size) / DrawingScale
	}
	if v > maxCoordinate {
		return maxCoordinate
	}
	if v < -maxCoordinate {
		return -maxCoordinate
	}
	return v
}

// Resolve returns the pixel rectangle of `r`, on a surface with the given bounds.
// A MaxDimension extent reaches the edge of the surface.
// The result is not clipped: it may overflow the bounds.
func Resolve(r scene.Region, bounds image.Rectangle, u Units) image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	x0 := int64(bounds.Min.X) + u.scale(int64(r.Point.X), w)
	y0 := int64(bounds.Min.Y) + u.scale(int64(r.Point.Y), h)

	x1 := int64(bounds.Max.X)
	if r.Area.Width != scene.MaxDimension {
		x1 = x0 + u.scale(int64(r.Area.Width), w)
	}
	y1 := int64(bounds.Max.Y)
	if r.Area.Height != scene.MaxDimension {
		y1 = y0 + u.scale(int64(r.Area.Height), h)
	}
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return image.Rectangle{
		Min: image.Point{X: int(x0), Y: int(y0)},
		Max: image.Point{X: int(x1), Y: int(y1)},
	}
}

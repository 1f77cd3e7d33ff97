package scene

import (
	"fmt"
	"math"
)

// MaxDimension is the extent value meaning "up to the edge of the surface".
const MaxDimension = math.MaxUint32

// Point is a position, in surface units.
type Point struct{ X, Y int32 }

// Origin is the top-left corner of a surface.
var Origin = Point{}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Area is an extent, in surface units.
type Area struct{ Width, Height uint32 }

// MaximumArea fills the remaining surface, whatever its size.
var MaximumArea = Area{Width: MaxDimension, Height: MaxDimension}

// IsMaximum returns true for the "fill the remaining surface" sentinel.
func (a Area) IsMaximum() bool { return a == MaximumArea }

func (a Area) String() string {
	if a.IsMaximum() {
		return "max"
	}
	return fmt.Sprintf("%dx%d", a.Width, a.Height)
}

// Region is an origin and an extent.
// See RegionBuilder to construct one from parts.
type Region struct {
	Point Point
	Area  Area
}

// NewRegion is a shortcut for a region folded from p, then a.
func NewRegion(p Point, a Area) Region {
	return RegionBuilder{}.Point(p).Area(a).Region()
}

// FullRegion covers the whole surface.
var FullRegion = Region{Point: Origin, Area: MaximumArea}

func (r Region) String() string { return r.Point.String() + " " + r.Area.String() }

// RegionBuilder accumulates exactly one Point and one Area.
// By convention the point is folded first.
type RegionBuilder struct {
	region Region

	hasPoint, hasArea bool
}

// Point folds the origin into the builder.
func (b RegionBuilder) Point(p Point) RegionBuilder {
	b.region.Point = p
	b.hasPoint = true
	return b
}

// Area folds the extent into the builder.
func (b RegionBuilder) Area(a Area) RegionBuilder {
	b.region.Area = a
	b.hasArea = true
	return b
}

// IsComplete returns true once both the origin and the extent are set.
func (b RegionBuilder) IsComplete() bool { return b.hasPoint && b.hasArea }

// Region returns the built region.
// It panics if the origin or the extent has not been folded in.
func (b RegionBuilder) Region() Region {
	switch {
	case !b.hasPoint:
		panic("scene: region built without an origin")
	case !b.hasArea:
		panic("scene: region built without an area")
	}
	return b.region
}

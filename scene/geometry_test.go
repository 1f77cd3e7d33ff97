package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionFoldOrder(t *testing.T) {
	p, a := Point{X: -3, Y: 7}, Area{Width: 12, Height: 5}

	pointFirst := RegionBuilder{}.Point(p).Area(a).Region()
	areaFirst := RegionBuilder{}.Area(a).Point(p).Region()
	assert.Equal(t, pointFirst, areaFirst)

	var s recordingSurface
	base := NewDrawingAttributes(&s, FullRegion)
	assert.Equal(t, base.WithRegion(pointFirst), base.WithRegion(areaFirst))
}

func TestRegionBuilderIncomplete(t *testing.T) {
	assert.False(t, RegionBuilder{}.IsComplete())
	assert.False(t, RegionBuilder{}.Point(Origin).IsComplete())
	assert.True(t, RegionBuilder{}.Point(Origin).Area(Area{}).IsComplete())

	assert.PanicsWithValue(t, "scene: region built without an origin", func() {
		RegionBuilder{}.Area(Area{1, 1}).Region()
	})
	assert.PanicsWithValue(t, "scene: region built without an area", func() {
		RegionBuilder{}.Point(Origin).Region()
	})
}

func TestWithRegionIsAValue(t *testing.T) {
	var s recordingSurface
	base := NewDrawingAttributes(&s, FullRegion)
	narrowed := base.WithRegion(NewRegion(Point{1, 2}, Area{3, 4}))

	assert.Equal(t, FullRegion, base.Region())
	assert.Equal(t, NewRegion(Point{1, 2}, Area{3, 4}), narrowed.Region())
	assert.Same(t, base.Surface(), narrowed.Surface())
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "(0, 0) max", FullRegion.String())
	assert.Equal(t, "(-1, 2) 3x4", NewRegion(Point{-1, 2}, Area{3, 4}).String())
}

func TestBarProgressClamp(t *testing.T) {
	assert.Equal(t, 0., BarProgress{Value: 5}.Progress())
	assert.Equal(t, 1., BarProgress{Value: 150, Maximum: 100}.Progress())
	assert.Equal(t, 0.5, BarProgress{Value: 50, Maximum: 100}.Progress())
}

package scenepath

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

// pathRecorder is a rasterx.Adder storing the commands.
type pathRecorder struct {
	ops    []string
	points []fixed.Point26_6
}

func (p *pathRecorder) Start(a fixed.Point26_6) {
	p.ops = append(p.ops, "M")
	p.points = append(p.points, a)
}

func (p *pathRecorder) Line(b fixed.Point26_6) {
	p.ops = append(p.ops, "L")
	p.points = append(p.points, b)
}

func (p *pathRecorder) QuadBezier(b, c fixed.Point26_6) {
	p.ops = append(p.ops, "Q")
	p.points = append(p.points, b, c)
}

func (p *pathRecorder) CubeBezier(b, c, d fixed.Point26_6) {
	p.ops = append(p.ops, "C")
	p.points = append(p.points, b, c, d)
}

func (p *pathRecorder) Stop(closeLoop bool) {
	if closeLoop {
		p.ops = append(p.ops, "Z")
	}
}

// bounds returns the bounding box of the recorded points, in pixels.
func (p *pathRecorder) bounds() (minX, minY, maxX, maxY int) {
	minX, minY = p.points[0].X.Round(), p.points[0].Y.Round()
	maxX, maxY = minX, minY
	for _, pt := range p.points[1:] {
		minX, maxX = min(minX, pt.X.Round()), max(maxX, pt.X.Round())
		minY, maxY = min(minY, pt.Y.Round()), max(maxY, pt.Y.Round())
	}
	return
}

func TestAddRect(t *testing.T) {
	var p pathRecorder
	AddRect(&p, image.Rect(1, 2, 11, 7))
	assert.Equal(t, []string{"M", "L", "L", "L", "Z"}, p.ops)
	assert.Equal(t, toFixedP(1, 2), p.points[0])
	assert.Equal(t, toFixedP(11, 7), p.points[2])
}

func TestAddRoundRect(t *testing.T) {
	var p pathRecorder
	AddRoundRect(&p, image.Rect(0, 0, 40, 20), 5)
	assert.Contains(t, p.ops, "C")
	assert.Equal(t, "Z", p.ops[len(p.ops)-1])

	minX, minY, maxX, maxY := p.bounds()
	assert.Equal(t, [4]int{0, 0, 40, 20}, [4]int{minX, minY, maxX, maxY})
	// the path starts after the top left corner
	assert.Equal(t, toFixedP(5, 0), p.points[0])
}

func TestAddRoundRectRadius(t *testing.T) {
	var plain pathRecorder
	AddRoundRect(&plain, image.Rect(0, 0, 4, 4), 0)
	assert.Equal(t, []string{"M", "L", "L", "L", "Z"}, plain.ops)

	// radius larger than the shape is reduced
	var p pathRecorder
	AddRoundRect(&p, image.Rect(0, 0, 10, 4), 50)
	assert.Equal(t, toFixedP(2, 0), p.points[0])
	minX, minY, maxX, maxY := p.bounds()
	assert.Equal(t, [4]int{0, 0, 10, 4}, [4]int{minX, minY, maxX, maxY})
}

func TestLayoutBar(t *testing.T) {
	r := image.Rect(0, 0, 50, 8)

	l := LayoutBar(r, 1, 0.3)
	assert.Equal(t, r, l.Border)
	assert.Equal(t, image.Rect(1, 1, 49, 7), l.Track)
	assert.Equal(t, image.Rect(1, 1, 15, 7), l.Fill) // 48 * 0.3 = 14.4

	l = LayoutBar(r, 0, 2)
	assert.True(t, l.Border.Empty())
	assert.Equal(t, r, l.Track)
	assert.Equal(t, r, l.Fill)

	l = LayoutBar(r, 0, 0)
	assert.Equal(t, 0, l.Fill.Dx())
}

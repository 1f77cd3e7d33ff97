package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorDefaults(t *testing.T) {
	d := Descriptor{"x": NewInt(4)}

	assert.True(t, d.Has("x"))
	assert.False(t, d.Has("y"))
	assert.Equal(t, int32(0), d.Int32("y"))
	assert.Equal(t, "", d.Text("class"))
	assert.Equal(t, NewInt(9), d.GetOrDefault("y", NewInt(9)))
	assert.Equal(t, NewInt(4), d.GetOrDefault("x", NewInt(9)))
	assert.Equal(t, NoValue, d["missing"].Kind())
}

func TestDescriptorTruncation(t *testing.T) {
	d := Descriptor{
		"radius": NewInt(300),
		"value":  NewInt(70000),
		"x":      NewInt(-1),
	}
	assert.Equal(t, uint8(44), d.Uint8("radius"))
	assert.Equal(t, uint16(4464), d.Uint16("value"))
	assert.Equal(t, uint32(0xFFFFFFFF), d.Uint32("x"))
	assert.Equal(t, int32(-1), d.Int32("x"))
}

func TestDescriptorCoercion(t *testing.T) {
	d := Descriptor{
		"width": NewString(" 12 "),
		"class": NewString("Rectangle"),
		"color": NewInt(255),
	}
	assert.Equal(t, uint32(12), d.Uint32("width"))
	assert.Equal(t, uint32(0), d.Uint32("class"))
	assert.Equal(t, "255", d.Text("color"))
	assert.Equal(t, Color(255), d.Color("color"))
}

func TestParseClass(t *testing.T) {
	for _, c := range []Class{RectangleClass, RoundedRectangleClass, BarProgressClass} {
		assert.Equal(t, c, ParseClass(c.String()))
	}
	for _, name := range []string{"", "rectangle", "RECTANGLE", " Rectangle", "Polygon"} {
		assert.Equal(t, Unknown, ParseClass(name), name)
	}
	assert.Equal(t, "<unknown Class>", Unknown.String())
}

func TestShape(t *testing.T) {
	class, region, shape := Shape(Descriptor{
		"class": NewString("Rectangle"), "x": NewInt(2), "y": NewInt(3),
		"width": NewInt(4), "height": NewInt(5), "color": NewInt(6),
	})
	assert.Equal(t, RectangleClass, class)
	assert.Equal(t, NewRegion(Point{2, 3}, Area{4, 5}), region)
	assert.Equal(t, Rectangle{Color: 6}, shape)

	class, _, shape = Shape(Descriptor{"class": NewString("Star")})
	assert.Equal(t, Unknown, class)
	assert.Nil(t, shape)
}

func TestDescriptorNegativeExtent(t *testing.T) {
	d := Descriptor{
		"x":      NewInt(10),
		"width":  NewInt(-1),
		"height": NewString("-5"),
	}
	assert.Equal(t, uint32(0), d.Extent("width"))
	assert.Equal(t, uint32(0), d.Extent("height"))
	assert.Equal(t, uint32(0), d.Extent("missing"))

	r := d.Region()
	assert.Equal(t, Area{}, r.Area)
	assert.False(t, r.Area.IsMaximum())

	// the sentinel is still reachable explicitly
	d["width"] = NewInt(MaxDimension)
	assert.Equal(t, uint32(MaxDimension), d.Region().Area.Width)
}

package scene

import (
	"strconv"
	"strings"
)

// ValueKind is the type of a scalar field.
type ValueKind uint8

const (
	NoValue ValueKind = iota // absent field
	IntValue
	StringValue
)

// Value is a scalar scene field: either an integer or a string.
// The zero Value is the absent field.
type Value struct {
	kind ValueKind
	i    int64
	s    string
}

func NewInt(v int64) Value     { return Value{kind: IntValue, i: v} }
func NewString(v string) Value { return Value{kind: StringValue, s: v} }

func (v Value) Kind() ValueKind { return v.kind }

// Int64 returns the integer content. Strings holding a decimal
// integer are converted, any other string reads as 0.
func (v Value) Int64() int64 {
	switch v.kind {
	case IntValue:
		return v.i
	case StringValue:
		i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// Text returns the string content. Integers are formatted in base 10.
func (v Value) Text() string {
	switch v.kind {
	case StringValue:
		return v.s
	case IntValue:
		return strconv.FormatInt(v.i, 10)
	default:
		return ""
	}
}

// Descriptor is one scene object: a set of named scalar fields.
// No schema is enforced: the fields present depend on the object class.
//
// Field access is lenient: an absent field reads as the zero value of
// the requested type (0 or ""), so that a malformed object renders a
// degenerate shape instead of aborting the whole scene. Use Has,
// or a FieldPolicy in Draw, when stricter checks are wanted.
//
// Integer accessors convert like a C cast: the value is truncated
// to the requested width.
type Descriptor map[string]Value

// Has returns true if the field is present.
func (d Descriptor) Has(key string) bool {
	return d[key].kind != NoValue
}

// GetOrDefault returns the field, or `def` if absent.
func (d Descriptor) GetOrDefault(key string, def Value) Value {
	if v, ok := d[key]; ok && v.kind != NoValue {
		return v
	}
	return def
}

// get returns the field, or the absent Value, which reads as 0 or "".
func (d Descriptor) get(key string) Value { return d.GetOrDefault(key, Value{}) }

func (d Descriptor) Int32(key string) int32   { return int32(d.get(key).Int64()) }
func (d Descriptor) Uint32(key string) uint32 { return uint32(d.get(key).Int64()) }
func (d Descriptor) Uint16(key string) uint16 { return uint16(d.get(key).Int64()) }
func (d Descriptor) Uint8(key string) uint8   { return uint8(d.get(key).Int64()) }
func (d Descriptor) Text(key string) string   { return d.get(key).Text() }
func (d Descriptor) Color(key string) Color   { return Color(d.get(key).Int64()) }

// Extent reads a width or height. Unlike Uint32, negative values
// read as 0, so that -1 is not mistaken for MaxDimension.
// Only an explicit 4294967295 selects the edge of the surface.
func (d Descriptor) Extent(key string) uint32 {
	v := d.get(key).Int64()
	if v < 0 {
		return 0
	}
	return uint32(v)
}

// Region reads the x, y, width and height fields.
func (d Descriptor) Region() Region {
	return RegionBuilder{}.
		Point(Point{X: d.Int32(fieldX), Y: d.Int32(fieldY)}).
		Area(Area{Width: d.Extent(fieldWidth), Height: d.Extent(fieldHeight)}).
		Region()
}

// field names
const (
	fieldClass           = "class"
	fieldX               = "x"
	fieldY               = "y"
	fieldWidth           = "width"
	fieldHeight          = "height"
	fieldColor           = "color"
	fieldRadius          = "radius"
	fieldValue           = "value"
	fieldMaximum         = "maximum"
	fieldBackgroundColor = "backgroundColor"
	fieldBorderThickness = "borderThickness"
)

// Scene is an ordered list of objects. The order is the paint order.
type Scene []Descriptor

package scene

import (
	"fmt"
	"log/slog"
	"time"
)

// Param is a class specific parameter of a drawn object.
type Param struct {
	Key   string
	Value int64
}

// ObjectRecord describes how one scene object was handled.
type ObjectRecord struct {
	Index  int
	Class  string // as found in the scene, even when not recognized
	Region Region
	Color  Color
	Params []Param // class specific, in reading order

	Drawn      bool
	RenderTime time.Duration // time spent in the surface, field reads excluded
}

func (o *ObjectRecord) addParam(key string, value int64) {
	o.Params = append(o.Params, Param{Key: key, Value: value})
}

// RenderMicroseconds returns the render time in microseconds.
func (o ObjectRecord) RenderMicroseconds() int64 { return o.RenderTime.Microseconds() }

// Report collects the diagnostics of a Draw call.
// It has exactly one record per scene object, drawn or not.
type Report struct {
	Region  Region // the region cleared before drawing
	Objects []ObjectRecord
}

// Field is a flattened Report entry.
type Field struct {
	Key   string
	Value interface{}
}

// Fields flattens the report into keys such as
// "scene.region", "scene.[0].class" or "scene.[0].renderMicroseconds".
func (r *Report) Fields() []Field {
	out := []Field{{Key: "scene.region", Value: r.Region}}
	for _, obj := range r.Objects {
		prefix := fmt.Sprintf("scene.[%d].", obj.Index)
		out = append(out,
			Field{Key: prefix + "class", Value: obj.Class},
			Field{Key: prefix + "region", Value: obj.Region},
			Field{Key: prefix + "color", Value: obj.Color},
		)
		for _, p := range obj.Params {
			out = append(out, Field{Key: prefix + p.Key, Value: p.Value})
		}
		out = append(out, Field{Key: prefix + "renderMicroseconds", Value: obj.RenderMicroseconds()})
	}
	return out
}

// LogValue implements slog.LogValuer, nesting objects
// in groups named after their index.
func (r *Report) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(r.Objects)+1)
	attrs = append(attrs, slog.String("region", r.Region.String()))
	for _, obj := range r.Objects {
		objAttrs := []slog.Attr{
			slog.String("class", obj.Class),
			slog.String("region", obj.Region.String()),
			slog.Uint64("color", uint64(obj.Color)),
		}
		for _, p := range obj.Params {
			objAttrs = append(objAttrs, slog.Int64(p.Key, p.Value))
		}
		objAttrs = append(objAttrs, slog.Int64("renderMicroseconds", obj.RenderMicroseconds()))
		attrs = append(attrs, slog.Attr{Key: fmt.Sprintf("[%d]", obj.Index), Value: slog.GroupValue(objAttrs...)})
	}
	return slog.GroupValue(attrs...)
}

package scene

// objectFunc reads the class specific fields of `d`, records them
// and returns the configured shape, or nil if nothing is to be drawn.
type objectFunc func(d Descriptor, color Color, rec *ObjectRecord) Drawable

var drawFuncs = [...]objectFunc{
	Unknown:               skipF,
	RectangleClass:        rectangleF,
	RoundedRectangleClass: roundedRectangleF,
	BarProgressClass:      barProgressF,
}

func skipF(Descriptor, Color, *ObjectRecord) Drawable { return nil } // logged, not drawn

func rectangleF(_ Descriptor, color Color, _ *ObjectRecord) Drawable {
	return Rectangle{Color: color}
}

func roundedRectangleF(d Descriptor, color Color, rec *ObjectRecord) Drawable {
	radius := d.Uint8(fieldRadius)
	rec.addParam(fieldRadius, int64(radius))
	return RoundedRectangle{Radius: radius, Color: color}
}

func barProgressF(d Descriptor, color Color, rec *ObjectRecord) Drawable {
	bar := BarProgress{
		Value:           d.Uint16(fieldValue),
		Maximum:         d.Uint16(fieldMaximum),
		BackgroundColor: d.Color(fieldBackgroundColor),
		BorderThickness: d.Uint8(fieldBorderThickness),
		Color:           color,
	}
	rec.addParam(fieldValue, int64(bar.Value))
	rec.addParam(fieldMaximum, int64(bar.Maximum))
	rec.addParam(fieldBackgroundColor, int64(bar.BackgroundColor))
	rec.addParam(fieldBorderThickness, int64(bar.BorderThickness))
	return bar
}

// Shape reads the object `d` and returns its class, its region and its
// configured shape. The shape is nil for an Unknown class.
func Shape(d Descriptor) (Class, Region, Drawable) {
	var rec ObjectRecord
	return readObject(d, &rec)
}

// readObject performs the field reads common to every class, then
// dispatches on the class for the specific ones.
func readObject(d Descriptor, rec *ObjectRecord) (Class, Region, Drawable) {
	region := d.Region()
	color := d.Color(fieldColor)
	name := d.Text(fieldClass)
	class := ParseClass(name)

	rec.Class = name
	rec.Region = region
	rec.Color = color

	return class, region, drawFuncs[class](d, color, rec)
}

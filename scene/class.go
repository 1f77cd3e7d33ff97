package scene

// Class is the type of a scene object, read from its `class` field.
type Class uint8

const (
	Unknown Class = iota // not drawn, but not an error
	RectangleClass
	RoundedRectangleClass
	BarProgressClass
)

var classNames = [...]string{
	RectangleClass:        "Rectangle",
	RoundedRectangleClass: "RoundedRectangle",
	BarProgressClass:      "BarProgress",
}

// ParseClass maps a class name to its Class. The match is exact
// and case sensitive; anything else is Unknown.
func ParseClass(name string) Class {
	for c, n := range classNames {
		if n != "" && n == name {
			return Class(c)
		}
	}
	return Unknown
}

func (c Class) String() string {
	if int(c) < len(classNames) && classNames[c] != "" {
		return classNames[c]
	}
	return "<unknown Class>"
}

// requiredFields lists the fields a well formed object of the class
// must carry, besides `class`.
func (c Class) requiredFields() []string {
	common := []string{fieldX, fieldY, fieldWidth, fieldHeight, fieldColor}
	switch c {
	case RoundedRectangleClass:
		return append(common, fieldRadius)
	case BarProgressClass:
		return append(common, fieldValue, fieldMaximum, fieldBackgroundColor, fieldBorderThickness)
	default:
		return common
	}
}

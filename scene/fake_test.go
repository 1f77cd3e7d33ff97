package scene

// call is one operation received by a recordingSurface.
type call struct {
	op     string
	region Region
	shape  interface{}
}

// recordingSurface records the operations instead of drawing.
type recordingSurface struct {
	calls []call
}

func (s *recordingSurface) Area() Area        { return Area{Width: 320, Height: 240} }
func (s *recordingSurface) BitsPerPixel() int { return 16 }

func (s *recordingSurface) Clear(r Region) {
	s.calls = append(s.calls, call{op: "clear", region: r})
}

func (s *recordingSurface) FillRectangle(r Region, shape Rectangle) {
	s.calls = append(s.calls, call{op: "rectangle", region: r, shape: shape})
}

func (s *recordingSurface) FillRoundedRectangle(r Region, shape RoundedRectangle) {
	s.calls = append(s.calls, call{op: "roundedRectangle", region: r, shape: shape})
}

func (s *recordingSurface) FillBarProgress(r Region, shape BarProgress) {
	s.calls = append(s.calls, call{op: "barProgress", region: r, shape: shape})
}

// draws returns the calls, without the clears.
func (s *recordingSurface) draws() []call {
	var out []call
	for _, c := range s.calls {
		if c.op != "clear" {
			out = append(out, c)
		}
	}
	return out
}

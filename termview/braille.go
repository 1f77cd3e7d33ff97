// Package termview prints a rendered image on a terminal,
// using braille patterns: each character cell shows 2x4 pixels.
package termview

import (
	"image"
	"image/color"
	"strings"
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bits, indexed by [column][row] inside a cell
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

// isLit returns true if c is far enough from the background.
func isLit(c, background color.Color, threshold uint8) bool {
	y := color.GrayModel.Convert(c).(color.Gray).Y
	bg := color.GrayModel.Convert(background).(color.Gray).Y
	d := int(y) - int(bg)
	if d < 0 {
		d = -d
	}
	return d >= int(threshold)
}

// Braille samples `img` on a grid of `columns` cells wide, keeping
// the aspect ratio, and returns the lines of braille characters.
// A pixel is lit when its luminance differs from the one of the
// top-left pixel by at least `threshold`.
func Braille(img image.Image, columns int, threshold uint8) []string {
	bounds := img.Bounds()
	if bounds.Empty() || columns <= 0 {
		return nil
	}
	microW := 2 * columns
	if microW > bounds.Dx() {
		microW = bounds.Dx() + bounds.Dx()%2
	}
	step := float64(bounds.Dx()) / float64(microW)
	microH := int(float64(bounds.Dy()) / step)
	if microH == 0 {
		microH = 1
	}
	buf := newBrailleBuf((microW+1)/2, (microH+3)/4)
	background := img.At(bounds.Min.X, bounds.Min.Y)
	for my := 0; my < microH; my++ {
		y := bounds.Min.Y + int(float64(my)*step)
		for mx := 0; mx < microW; mx++ {
			x := bounds.Min.X + int(float64(mx)*step)
			if x >= bounds.Max.X || y >= bounds.Max.Y {
				continue
			}
			if isLit(img.At(x, y), background, threshold) {
				buf.setPixel(mx, my)
			}
		}
	}
	return buf.toLines()
}

// trimRight removes the trailing spaces of each line.
func trimRight(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, " ")
	}
	return out
}

package framebuffer

import (
	"image"
	"image/color"
	"image/draw"
)

var _ draw.Image = (*Image)(nil) // assert interface conformance

// Image is an in memory framebuffer. Its layout is the one of
// the device: it may be copied as is with Device.Write.
type Image struct {
	Pix    []byte
	Stride int // bytes between two rows
	Rect   image.Rectangle
	Format Format
}

// NewImage allocates a w x h image, with rows padded to a whole byte.
func NewImage(w, h int, f Format) *Image {
	stride := (w*f.BitsPerPixel() + 7) / 8
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
		Format: f,
	}
}

// MemorySize returns the memory needed for a w x h image in format f.
func MemorySize(w, h int, f Format) int {
	return (w*f.BitsPerPixel() + 7) / 8 * h
}

func (m *Image) ColorModel() color.Model { return m.Format.Model() }
func (m *Image) Bounds() image.Rectangle { return m.Rect }

// Size returns the size of the pixel buffer, in bytes.
func (m *Image) Size() int { return len(m.Pix) }

func (m *Image) At(x, y int) color.Color {
	return m.Format.Decode(m.PixelAt(x, y))
}

func (m *Image) Set(x, y int, c color.Color) {
	m.SetPixel(x, y, m.Format.Encode(c))
}

// PixelAt returns the raw pixel value at (x, y), or 0 out of bounds.
func (m *Image) PixelAt(x, y int) uint32 {
	if !(image.Point{X: x, Y: y}.In(m.Rect)) {
		return 0
	}
	bpp := m.Format.BitsPerPixel()
	row := (y - m.Rect.Min.Y) * m.Stride
	col := x - m.Rect.Min.X
	switch bpp {
	case 1, 4:
		bit := col * bpp
		shift := 8 - bpp - bit%8
		return uint32(m.Pix[row+bit/8]>>shift) & (1<<bpp - 1)
	case 8:
		return uint32(m.Pix[row+col])
	case 16:
		i := row + col*2
		return uint32(m.Pix[i]) | uint32(m.Pix[i+1])<<8
	case 24:
		i := row + col*3
		return uint32(m.Pix[i]) | uint32(m.Pix[i+1])<<8 | uint32(m.Pix[i+2])<<16
	case 32:
		i := row + col*4
		return uint32(m.Pix[i]) | uint32(m.Pix[i+1])<<8 | uint32(m.Pix[i+2])<<16 | uint32(m.Pix[i+3])<<24
	}
	return 0
}

// SetPixel stores the raw pixel value `v` at (x, y).
// Out of bounds writes are ignored.
func (m *Image) SetPixel(x, y int, v uint32) {
	if !(image.Point{X: x, Y: y}.In(m.Rect)) {
		return
	}
	bpp := m.Format.BitsPerPixel()
	row := (y - m.Rect.Min.Y) * m.Stride
	col := x - m.Rect.Min.X
	switch bpp {
	case 1, 4:
		bit := col * bpp
		shift := 8 - bpp - bit%8
		mask := byte(1<<bpp-1) << shift
		i := row + bit/8
		m.Pix[i] = m.Pix[i]&^mask | byte(v)<<shift&mask
	case 8:
		m.Pix[row+col] = byte(v)
	case 16:
		i := row + col*2
		m.Pix[i], m.Pix[i+1] = byte(v), byte(v>>8)
	case 24:
		i := row + col*3
		m.Pix[i], m.Pix[i+1], m.Pix[i+2] = byte(v), byte(v>>8), byte(v>>16)
	case 32:
		i := row + col*4
		m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	}
}

// Fill stores the raw pixel value `v` in the rectangle r, clipped to the image.
func (m *Image) Fill(r image.Rectangle, v uint32) {
	r = r.Intersect(m.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetPixel(x, y, v)
		}
	}
}

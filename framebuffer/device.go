package framebuffer

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when framebuffer devices are not
// available on the platform.
var ErrUnsupported = errors.New("framebuffer devices are not supported on this platform")

// Info describes an opened device.
type Info struct {
	ID            string
	Width, Height int
	Stride        int // bytes per row, may include padding
	Format        Format
	MemorySize    int // size of the device memory, in bytes
}

// BitsPerPixel returns the depth of the device pixel format.
func (i Info) BitsPerPixel() int { return i.Format.BitsPerPixel() }

// ImageSize returns the memory needed by an Image with the device
// resolution and pixel format.
func (i Info) ImageSize() int { return MemorySize(i.Width, i.Height, i.Format) }

func (i Info) String() string {
	return fmt.Sprintf("%s %dx%d %dbpp", i.ID, i.Width, i.Height, i.BitsPerPixel())
}

// NewImage allocates an in memory image matching the device.
func (i Info) NewImage() *Image { return NewImage(i.Width, i.Height, i.Format) }

// copyRows copies `img` into the device memory `mem`, laid out
// with `stride` bytes per row. Extra rows or columns are dropped.
func copyRows(mem []byte, stride int, img *Image) int {
	n := 0
	rowLen := img.Stride
	if rowLen > stride {
		rowLen = stride
	}
	for y := 0; y < img.Rect.Dy(); y++ {
		dst := y * stride
		if dst+rowLen > len(mem) {
			break
		}
		src := y * img.Stride
		n += copy(mem[dst:dst+rowLen], img.Pix[src:src+rowLen])
	}
	return n
}

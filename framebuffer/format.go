// Package framebuffer provides access to the Linux framebuffer devices
// (/dev/fbN), and an in memory image type sharing their pixel layouts.
//
// Pixels narrower than a byte are packed most significant bits first;
// wider pixels are stored little endian.
package framebuffer

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnsupportedFormat is returned for a pixel layout with no Format.
var ErrUnsupportedFormat = errors.New("unsupported pixel format")

// Format is a pixel layout.
type Format uint8

const (
	Mono1    Format = iota + 1 // 1 bit, 1 is white
	Gray4                      // 4 bits gray levels, 0 to 15
	Gray8                      // 8 bits gray levels
	RGB565                     // 16 bits, 0bRRRRRGGGGGGBBBBB
	RGB888                     // 24 bits, 0xRRGGBB
	XRGB8888                   // 32 bits, 0x00RRGGBB
)

var formatNames = [...]string{
	Mono1:    "mono1",
	Gray4:    "gray4",
	Gray8:    "gray8",
	RGB565:   "rgb565",
	RGB888:   "rgb888",
	XRGB8888: "xrgb8888",
}

func (f Format) String() string {
	if int(f) < len(formatNames) && formatNames[f] != "" {
		return formatNames[f]
	}
	return "<unknown Format>"
}

// ParseFormat accepts the names returned by Format.String.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name != "" && name == s {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatForDepth returns the format used for the given bits per pixel.
func FormatForDepth(bpp int) (Format, error) {
	switch bpp {
	case 1:
		return Mono1, nil
	case 4:
		return Gray4, nil
	case 8:
		return Gray8, nil
	case 16:
		return RGB565, nil
	case 24:
		return RGB888, nil
	case 32:
		return XRGB8888, nil
	}
	return 0, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, bpp)
}

// BitsPerPixel returns the pixel depth.
func (f Format) BitsPerPixel() int {
	switch f {
	case Mono1:
		return 1
	case Gray4:
		return 4
	case Gray8:
		return 8
	case RGB565:
		return 16
	case RGB888:
		return 24
	case XRGB8888:
		return 32
	default:
		return 0
	}
}

// Decode returns the color of the raw pixel value `v`.
// Bits beyond the pixel depth are ignored.
func (f Format) Decode(v uint32) color.Color {
	switch f {
	case Mono1:
		if v&1 != 0 {
			return color.Gray{Y: 0xff}
		}
		return color.Gray{}
	case Gray4:
		return color.Gray{Y: uint8(v&0xf) * 17}
	case Gray8:
		return color.Gray{Y: uint8(v)}
	case RGB565:
		r, g, b := uint8(v>>11&0x1f), uint8(v>>5&0x3f), uint8(v&0x1f)
		return color.RGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xff}
	default: // RGB888, XRGB8888
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
}

// Encode returns the raw pixel value closest to `c`.
func (f Format) Encode(c color.Color) uint32 {
	switch f {
	case Mono1:
		if color.GrayModel.Convert(c).(color.Gray).Y >= 0x80 {
			return 1
		}
		return 0
	case Gray4:
		y := uint32(color.GrayModel.Convert(c).(color.Gray).Y)
		return (y + 8) / 17
	case Gray8:
		return uint32(color.GrayModel.Convert(c).(color.Gray).Y)
	}
	r, g, b, _ := c.RGBA()
	r, g, b = r>>8, g>>8, b>>8
	if f == RGB565 {
		return r>>3<<11 | g>>2<<5 | b>>3
	}
	return r<<16 | g<<8 | b
}

// Model returns the color.Model of the format.
func (f Format) Model() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return f.Decode(f.Encode(c))
	})
}

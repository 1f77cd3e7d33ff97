// Implements a raster backend to render scenes,
// by wrapping rasterx.
package sceneraster

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/benoitkugler/scenedraw/framebuffer"
	"github.com/benoitkugler/scenedraw/scene"
	"github.com/benoitkugler/scenedraw/scenepath"
	"github.com/srwiley/rasterx"
)

var _ scene.Surface = (*Renderer)(nil) // assert interface conformance

// Palette resolves scene colors.
type Palette func(c scene.Color) color.Color

// Options parametrize a Renderer. The zero value is valid.
type Options struct {
	Units      scenepath.Units
	Background scene.Color // used by Clear

	// Palette defaults to the pixel format decoding when the destination
	// is a *framebuffer.Image, and to 0xRRGGBB colors otherwise.
	Palette Palette
}

type Renderer struct {
	dest    draw.Image
	filler  *rasterx.Filler
	opts    Options
	bpp     int
	palette Palette
}

// NewRenderer returns a renderer drawing into `dest`.
// Shapes are filled with a rasterx.Filler over a ScannerGV,
// so that rounded corners are anti-aliased.
func NewRenderer(dest draw.Image, opts Options) *Renderer {
	b := dest.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dest, b)
	rd := &Renderer{
		dest:   dest,
		filler: rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
		opts:   opts,
		bpp:    32,
	}
	rd.palette = opts.Palette
	if fb, ok := dest.(*framebuffer.Image); ok {
		rd.bpp = fb.Format.BitsPerPixel()
		if rd.palette == nil {
			rd.palette = FormatPalette(fb.Format)
		}
	}
	if rd.palette == nil {
		rd.palette = RGB
	}
	return rd
}

// FormatPalette reads colors as raw pixel values of the format f.
func FormatPalette(f framebuffer.Format) Palette {
	return func(c scene.Color) color.Color { return f.Decode(uint32(c)) }
}

// RGB reads colors as 0xRRGGBB.
var RGB = FormatPalette(framebuffer.XRGB8888)

// RasterSceneToImage reads the scene from `source` and renders
// it into a new w x h image with the given pixel format.
func RasterSceneToImage(source io.Reader, w, h int, format framebuffer.Format, policy scene.FieldPolicy) (*framebuffer.Image, *scene.Report, error) {
	sc, err := scene.ReadSceneStream(source)
	if err != nil {
		return nil, nil, err
	}
	img := framebuffer.NewImage(w, h, format)
	report, err := scene.Draw(sc, NewRenderer(img, Options{}), policy)
	return img, report, err
}

func (rd *Renderer) Area() scene.Area {
	b := rd.dest.Bounds()
	return scene.Area{Width: uint32(b.Dx()), Height: uint32(b.Dy())}
}

func (rd *Renderer) BitsPerPixel() int { return rd.bpp }

// resolve returns the pixel rectangle of r, and false if nothing is visible.
func (rd *Renderer) resolve(r scene.Region) (image.Rectangle, bool) {
	rect := scenepath.Resolve(r, rd.dest.Bounds(), rd.opts.Units)
	return rect, !rect.Intersect(rd.dest.Bounds()).Empty()
}

func (rd *Renderer) Clear(r scene.Region) {
	rect, ok := rd.resolve(r)
	if !ok {
		return
	}
	rect = rect.Intersect(rd.dest.Bounds())
	if fb, ok := rd.dest.(*framebuffer.Image); ok && rd.opts.Palette == nil {
		fb.Fill(rect, uint32(rd.opts.Background))
		return
	}
	draw.Draw(rd.dest, rect, image.NewUniform(rd.palette(rd.opts.Background)), image.Point{}, draw.Src)
}

// fill paints the path added by `build` with the color `c`.
func (rd *Renderer) fill(c scene.Color, build func(p rasterx.Adder)) {
	rd.filler.Clear()
	build(rd.filler)
	rd.filler.SetColor(rd.palette(c))
	rd.filler.Draw()
}

// fillClipped paints the part of `rect` inside the destination.
func (rd *Renderer) fillClipped(rect image.Rectangle, c scene.Color) {
	rect = rect.Intersect(rd.dest.Bounds())
	if rect.Empty() {
		return
	}
	rd.fill(c, func(p rasterx.Adder) { scenepath.AddRect(p, rect) })
}

func (rd *Renderer) FillRectangle(r scene.Region, shape scene.Rectangle) {
	rd.fillClipped(scenepath.Resolve(r, rd.dest.Bounds(), rd.opts.Units), shape.Color)
}

func (rd *Renderer) FillRoundedRectangle(r scene.Region, shape scene.RoundedRectangle) {
	rect, ok := rd.resolve(r)
	if !ok {
		return
	}
	rd.fill(shape.Color, func(p rasterx.Adder) { scenepath.AddRoundRect(p, rect, float64(shape.Radius)) })
}

func (rd *Renderer) FillBarProgress(r scene.Region, shape scene.BarProgress) {
	rect, ok := rd.resolve(r)
	if !ok {
		return
	}
	layout := scenepath.LayoutBar(rect, int(shape.BorderThickness), shape.Progress())
	rd.fillClipped(layout.Border, shape.Color)
	rd.fillClipped(layout.Track, shape.BackgroundColor)
	rd.fillClipped(layout.Fill, shape.Color)
	scene.Logger().Debug("bar progress", "rect", rect.String(), "progress", shape.Progress())
}

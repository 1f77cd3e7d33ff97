// Implements a PDF backend to render scenes,
// by wrapping codeberg.org/go-pdf/fpdf.
package scenepdf

import (
	"image"
	"image/color"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"github.com/benoitkugler/scenedraw/scene"
	"github.com/benoitkugler/scenedraw/scenepath"
	"github.com/srwiley/rasterx"
)

// assert interface conformance
var (
	_ scene.Surface = (*Renderer)(nil)
	_ rasterx.Adder = pather{}
)

// Options parametrize a Renderer. The zero value is valid.
type Options struct {
	Units      scenepath.Units
	Background scene.Color

	// Palette resolves scene colors. It defaults to 0xRRGGBB colors.
	Palette func(scene.Color) color.Color
}

// Renderer draws a scene on a single page, one pixel
// being mapped to one point.
type Renderer struct {
	pdf     *fpdf.Fpdf
	bounds  image.Rectangle
	opts    Options
	palette func(scene.Color) color.Color
}

// NewRenderer starts a new document, with one page of w x h points.
func NewRenderer(w, h int, opts Options) *Renderer {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	scene.Logger().Debug("pdf page added", "width", w, "height", h)

	rd := &Renderer{
		pdf:     pdf,
		bounds:  image.Rect(0, 0, w, h),
		opts:    opts,
		palette: opts.Palette,
	}
	if rd.palette == nil {
		rd.palette = rgb
	}
	return rd
}

func rgb(c scene.Color) color.Color {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

// RenderSceneToPDF reads the scene from `source`, renders it on
// a w x h page, and writes the document to `out`.
func RenderSceneToPDF(source io.Reader, w, h int, policy scene.FieldPolicy, out io.Writer) (*scene.Report, error) {
	sc, err := scene.ReadSceneStream(source)
	if err != nil {
		return nil, err
	}
	rd := NewRenderer(w, h, Options{})
	report, err := scene.Draw(sc, rd, policy)
	if err != nil {
		return report, err
	}
	return report, rd.Output(out)
}

// Output writes the document and closes it.
func (rd *Renderer) Output(w io.Writer) error { return rd.pdf.Output(w) }

// Save writes the document to the given file.
func (rd *Renderer) Save(filename string) error { return rd.pdf.OutputFileAndClose(filename) }

func (rd *Renderer) Area() scene.Area {
	return scene.Area{Width: uint32(rd.bounds.Dx()), Height: uint32(rd.bounds.Dy())}
}

// BitsPerPixel returns 24: PDF colors are RGB triplets.
func (rd *Renderer) BitsPerPixel() int { return 24 }

// fill paints the path added by `build`, with non zero winding.
func (rd *Renderer) fill(c scene.Color, build func(p pather)) {
	r, g, b, _ := rd.palette(c).RGBA()
	rd.pdf.SetFillColor(int(r>>8), int(g>>8), int(b>>8))
	build(pather{pdf: rd.pdf})
	rd.pdf.DrawPath("f")
}

func (rd *Renderer) resolve(r scene.Region) (image.Rectangle, bool) {
	rect := scenepath.Resolve(r, rd.bounds, rd.opts.Units).Intersect(rd.bounds)
	return rect, !rect.Empty()
}

func (rd *Renderer) Clear(r scene.Region) {
	rect, ok := rd.resolve(r)
	if !ok {
		return
	}
	rd.fill(rd.opts.Background, func(p pather) { scenepath.AddRect(p, rect) })
}

func (rd *Renderer) FillRectangle(r scene.Region, shape scene.Rectangle) {
	rect, ok := rd.resolve(r)
	if !ok {
		return
	}
	rd.fill(shape.Color, func(p pather) { scenepath.AddRect(p, rect) })
}

// FillRoundedRectangle is not clipped to the page, so that
// the corners keep their radius.
func (rd *Renderer) FillRoundedRectangle(r scene.Region, shape scene.RoundedRectangle) {
	rect := scenepath.Resolve(r, rd.bounds, rd.opts.Units)
	if rect.Intersect(rd.bounds).Empty() {
		return
	}
	rd.fill(shape.Color, func(p pather) { scenepath.AddRoundRect(p, rect, float64(shape.Radius)) })
}

func (rd *Renderer) FillBarProgress(r scene.Region, shape scene.BarProgress) {
	rect := scenepath.Resolve(r, rd.bounds, rd.opts.Units)
	if rect.Intersect(rd.bounds).Empty() {
		return
	}
	layout := scenepath.LayoutBar(rect, int(shape.BorderThickness), shape.Progress())
	for _, part := range [...]struct {
		rect  image.Rectangle
		color scene.Color
	}{
		{layout.Border, shape.Color},
		{layout.Track, shape.BackgroundColor},
		{layout.Fill, shape.Color},
	} {
		rect := part.rect.Intersect(rd.bounds)
		if rect.Empty() {
			continue
		}
		rd.fill(part.color, func(p pather) { scenepath.AddRect(p, rect) })
	}
}

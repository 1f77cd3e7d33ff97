package sceneraster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/benoitkugler/scenedraw/framebuffer"
	"github.com/benoitkugler/scenedraw/scene"
	"github.com/benoitkugler/scenedraw/scenepath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func renderJSON(t *testing.T, source string, w, h int, format framebuffer.Format, opts Options) (*framebuffer.Image, *scene.Report) {
	t.Helper()
	sc, err := scene.ReadSceneStream(strings.NewReader(source))
	require.NoError(t, err)
	img := framebuffer.NewImage(w, h, format)
	report, err := scene.Draw(sc, NewRenderer(img, opts), scene.LenientPolicy)
	require.NoError(t, err)
	return img, report
}

func TestRectangle(t *testing.T) {
	img, _ := renderJSON(t, `[{"class":"Rectangle","x":0,"y":0,"width":10,"height":10,"color":15}]`,
		20, 20, framebuffer.Gray4, Options{})

	assert.Equal(t, uint32(15), img.PixelAt(0, 0))
	assert.Equal(t, uint32(15), img.PixelAt(9, 9))
	assert.Equal(t, uint32(0), img.PixelAt(10, 9))
	assert.Equal(t, uint32(0), img.PixelAt(9, 10))
}

func TestClear(t *testing.T) {
	img := framebuffer.NewImage(8, 8, framebuffer.Gray8)
	img.Fill(img.Rect, 0x55)

	rd := NewRenderer(img, Options{Background: 0x10})
	rd.Clear(scene.FullRegion)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, uint32(0x10), img.PixelAt(x, y))
		}
	}
}

func TestRoundedRectangle(t *testing.T) {
	img, _ := renderJSON(t, `[{"class":"RoundedRectangle","x":0,"y":0,"width":20,"height":20,"color":255,"radius":8}]`,
		20, 20, framebuffer.Gray8, Options{})

	assert.Equal(t, uint32(255), img.PixelAt(10, 10))
	assert.Equal(t, uint32(255), img.PixelAt(10, 0))
	assert.Equal(t, uint32(255), img.PixelAt(0, 10))
	// corners are cut
	assert.Equal(t, uint32(0), img.PixelAt(0, 0))
	assert.Equal(t, uint32(0), img.PixelAt(19, 19))
}

func TestBarProgress(t *testing.T) {
	img, report := renderJSON(t, `[{"class":"BarProgress","x":0,"y":0,"width":50,"height":8,"color":3,
		"value":30,"maximum":100,"backgroundColor":1,"borderThickness":1}]`,
		50, 8, framebuffer.Gray4, Options{})

	assert.True(t, report.Objects[0].Drawn)
	assert.Equal(t, uint32(3), img.PixelAt(0, 0), "border")
	assert.Equal(t, uint32(3), img.PixelAt(49, 7), "border")
	assert.Equal(t, uint32(3), img.PixelAt(1, 3), "fill")
	assert.Equal(t, uint32(3), img.PixelAt(14, 3), "fill")
	assert.Equal(t, uint32(1), img.PixelAt(15, 3), "track")
	assert.Equal(t, uint32(1), img.PixelAt(48, 6), "track")
}

func TestPaintOrderAndClipping(t *testing.T) {
	img, _ := renderJSON(t, `[
		{"class":"Rectangle","x":-10,"y":-10,"width":20,"height":20,"color":1},
		{"class":"Rectangle","x":5,"y":5,"width":100,"height":100,"color":2},
		{"class":"Polygon","x":0,"y":0,"width":16,"height":16,"color":3}
	]`, 16, 16, framebuffer.Gray8, Options{})

	assert.Equal(t, uint32(1), img.PixelAt(0, 0))
	assert.Equal(t, uint32(1), img.PixelAt(9, 4))
	assert.Equal(t, uint32(2), img.PixelAt(7, 7))
	assert.Equal(t, uint32(2), img.PixelAt(15, 15))
}

func TestDrawingUnits(t *testing.T) {
	half := scenepath.DrawingScale / 2
	source := fmt.Sprintf(`[{"class":"Rectangle","x":%d,"y":0,"width":%d,"height":%d,"color":1}]`, half, half, half)
	img, _ := renderJSON(t, source,
		16, 8, framebuffer.Mono1, Options{Units: scenepath.Drawing})

	assert.Equal(t, uint32(0), img.PixelAt(7, 0))
	assert.Equal(t, uint32(1), img.PixelAt(8, 0))
	assert.Equal(t, uint32(1), img.PixelAt(15, 3))
	assert.Equal(t, uint32(0), img.PixelAt(15, 4))
}

func TestGenericImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	rd := NewRenderer(img, Options{})
	assert.Equal(t, 32, rd.BitsPerPixel())
	assert.Equal(t, scene.Area{Width: 4, Height: 4}, rd.Area())

	rd.FillRectangle(scene.NewRegion(scene.Origin, scene.Area{Width: 2, Height: 2}), scene.Rectangle{Color: 0x00ff00})
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(3, 3))
}

func TestPalette(t *testing.T) {
	palette := func(c scene.Color) color.Color {
		if c == 1 {
			return color.RGBA{R: 0xff, A: 0xff}
		}
		return color.Black
	}
	img, _ := renderJSON(t, `[{"class":"Rectangle","width":2,"height":2,"color":1}]`,
		2, 2, framebuffer.RGB565, Options{Palette: palette})
	assert.Equal(t, uint32(0xf800), img.PixelAt(0, 0))
}

func TestRasterSceneToImage(t *testing.T) {
	f, err := os.Open("../scene/testdata/home.json")
	require.NoError(t, err)
	defer f.Close()

	img, report, err := RasterSceneToImage(f, 320, 240, framebuffer.RGB565, scene.LenientPolicy)
	require.NoError(t, err)
	assert.Len(t, report.Objects, 4)
	assert.Equal(t, 16, img.Format.BitsPerPixel())

	b, err := toPngBytes(img)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestNegativeExtent(t *testing.T) {
	img, _ := renderJSON(t, `[{"class":"Rectangle","x":10,"y":0,"width":-1,"height":4,"color":1}]`,
		40, 4, framebuffer.Gray8, Options{})
	for x := 0; x < 40; x++ {
		assert.Equal(t, uint32(0), img.PixelAt(x, 0), "column %d", x)
	}
}

func TestFormatPalette(t *testing.T) {
	for _, f := range []framebuffer.Format{framebuffer.Mono1, framebuffer.Gray4, framebuffer.RGB565, framebuffer.XRGB8888} {
		img := framebuffer.NewImage(2, 2, f)
		rd := NewRenderer(img, Options{})
		assert.Equal(t, f.BitsPerPixel(), rd.BitsPerPixel())

		rd.FillRectangle(scene.FullRegion, scene.Rectangle{Color: 1})
		assert.Equal(t, uint32(1), img.PixelAt(1, 1), f.String())
	}
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, RGB(0x123456))
	assert.Equal(t, color.Gray{Y: 0xff}, FormatPalette(framebuffer.Gray4)(15))
}

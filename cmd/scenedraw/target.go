package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/scenedraw/framebuffer"
	"github.com/benoitkugler/scenedraw/scene"
	"github.com/benoitkugler/scenedraw/scenepdf"
	"github.com/benoitkugler/scenedraw/sceneraster"
)

// target is where the scene is rendered.
type target interface {
	Name() string
	Area() scene.Area
	// MemorySize returns the size of the back buffer, or 0 if
	// the target does not hold one.
	MemorySize() int
	// Surface returns the surface for the next rendering.
	Surface() scene.Surface
	// Image returns the rendered pixels, or nil.
	Image() image.Image
	// Flush writes the rendering and returns the number of bytes written.
	Flush() (int, error)
	// Close may be called more than once.
	Close() error
}

func openTarget(opts options) (target, error) {
	units, err := opts.ParsedUnits()
	if err != nil {
		return nil, err
	}
	if opts.output == "" {
		return openDevice(opts.Device, sceneraster.Options{Units: units, Background: scene.Color(opts.Background)})
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", errUsage, opts.Width, opts.Height)
	}
	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case ".png":
		format, err := opts.ParsedFormat()
		if err != nil {
			return nil, err
		}
		img := framebuffer.NewImage(opts.Width, opts.Height, format)
		return &pngTarget{
			path:     opts.output,
			img:      img,
			renderer: sceneraster.NewRenderer(img, sceneraster.Options{Units: units, Background: scene.Color(opts.Background)}),
		}, nil
	case ".pdf":
		return &pdfTarget{
			path: opts.output,
			w:    opts.Width,
			h:    opts.Height,
			opts: scenepdf.Options{Units: units, Background: scene.Color(opts.Background)},
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported output extension %q", errUsage, ext)
	}
}

type deviceTarget struct {
	path     string
	dev      *framebuffer.Device
	img      *framebuffer.Image
	renderer *sceneraster.Renderer
}

func openDevice(path string, opts sceneraster.Options) (*deviceTarget, error) {
	dev, err := framebuffer.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open display %s: %w", path, err)
	}
	img := dev.Info().NewImage()
	return &deviceTarget{
		path:     path,
		dev:      dev,
		img:      img,
		renderer: sceneraster.NewRenderer(img, opts),
	}, nil
}

func (t *deviceTarget) Name() string           { return t.path }
func (t *deviceTarget) Area() scene.Area       { return t.renderer.Area() }
func (t *deviceTarget) MemorySize() int        { return t.img.Size() }
func (t *deviceTarget) Surface() scene.Surface { return t.renderer }
func (t *deviceTarget) Image() image.Image     { return t.img }
func (t *deviceTarget) Flush() (int, error)    { return t.dev.Write(t.img) }

func (t *deviceTarget) Close() error {
	if t.dev == nil {
		return nil
	}
	err := t.dev.Close()
	t.dev = nil
	return err
}

type pngTarget struct {
	path     string
	img      *framebuffer.Image
	renderer *sceneraster.Renderer
}

func (t *pngTarget) Name() string           { return t.path }
func (t *pngTarget) Area() scene.Area       { return t.renderer.Area() }
func (t *pngTarget) MemorySize() int        { return t.img.Size() }
func (t *pngTarget) Surface() scene.Surface { return t.renderer }
func (t *pngTarget) Image() image.Image     { return t.img }
func (t *pngTarget) Close() error           { return nil }

func (t *pngTarget) Flush() (int, error) {
	f, err := os.Create(t.path)
	if err != nil {
		return 0, err
	}
	w := &countingWriter{w: f}
	if err = png.Encode(w, t.img); err != nil {
		f.Close()
		return w.n, err
	}
	return w.n, f.Close()
}

type pdfTarget struct {
	path     string
	w, h     int
	opts     scenepdf.Options
	renderer *scenepdf.Renderer
}

func (t *pdfTarget) Name() string       { return t.path }
func (t *pdfTarget) MemorySize() int    { return 0 }
func (t *pdfTarget) Image() image.Image { return nil }
func (t *pdfTarget) Close() error       { return nil }

func (t *pdfTarget) Area() scene.Area {
	return scene.Area{Width: uint32(t.w), Height: uint32(t.h)}
}

// Surface starts a new document, since a written one is closed.
func (t *pdfTarget) Surface() scene.Surface {
	t.renderer = scenepdf.NewRenderer(t.w, t.h, t.opts)
	return t.renderer
}

func (t *pdfTarget) Flush() (int, error) {
	f, err := os.Create(t.path)
	if err != nil {
		return 0, err
	}
	w := &countingWriter{w: f}
	if err = t.renderer.Output(w); err != nil {
		f.Close()
		return w.n, err
	}
	return w.n, f.Close()
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

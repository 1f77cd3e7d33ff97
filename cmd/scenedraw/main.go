// Command scenedraw renders a scene file on a framebuffer device,
// or into a PNG or PDF file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/benoitkugler/scenedraw/config"
	"github.com/benoitkugler/scenedraw/framebuffer"
	"github.com/benoitkugler/scenedraw/scene"
	"github.com/benoitkugler/scenedraw/termview"
)

var version = "dev"

// errUsage signals that the usage should be shown.
var errUsage = errors.New("invalid usage")

type options struct {
	config.Config

	output  string // file instead of the device
	stdout  bool
	watch   bool
	verbose bool
}

func main() {
	var (
		configFile = flag.String("config", "", "TOML configuration file")
		source     = flag.String("source", "", "path to the JSON or XML scene")
		device     = flag.String("device", config.DefaultDevice, "display device")
		output     = flag.String("output", "", "render into a .png or .pdf file instead of the device")
		width      = flag.Int("width", 0, "image width, with -output")
		height     = flag.Int("height", 0, "image height, with -output")
		format     = flag.String("format", "", "pixel format, with -output (mono1, gray4, gray8, rgb565, rgb888, xrgb8888)")
		units      = flag.String("units", "", "scene units: pixels or drawing")
		policy     = flag.String("policy", "", "missing fields policy: lenient, warn or strict")
		stdout     = flag.Bool("stdout", false, "show the output on the standard output")
		watch      = flag.Bool("watch", false, "render again when the source changes")
		verbose    = flag.Bool("verbose", false, "log every object")
		help       = flag.Bool("help", false, "show usage")
		showVer    = flag.Bool("version", false, "print the version")
	)
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return
	}
	if *showVer {
		fmt.Println("scenedraw", version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	scene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fatal(err, 1)
		}
	}
	// flags explicitly set override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = *source
		case "device":
			cfg.Device = *device
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "format":
			cfg.Format = *format
		case "units":
			cfg.Units = *units
		case "policy":
			cfg.Policy = *policy
		}
	})

	opts := options{Config: cfg, output: *output, stdout: *stdout, watch: *watch, verbose: *verbose}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, newPrinter(os.Stdout)); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, scene.ErrSceneLoad) {
			printError(err)
			usage()
			os.Exit(2)
		}
		fatal(err, 1)
	}
}

func usage() {
	fmt.Fprintln(flag.CommandLine.Output(), titleStyle.Render("scenedraw"), dimStyle.Render(version))
	fmt.Fprintln(flag.CommandLine.Output(), "Usage: scenedraw -source scene.json [options]")
	flag.PrintDefaults()
}

func fatal(err error, code int) {
	printError(err)
	os.Exit(code)
}

func run(ctx context.Context, opts options, p *printer) error {
	if opts.Source == "" {
		return fmt.Errorf("%w: missing -source", errUsage)
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	t, err := openTarget(opts)
	if err != nil {
		return err
	}
	defer t.Close()

	if required := t.MemorySize(); required > 0 {
		if err := checkMemory(opts.Config, uint64(required)); err != nil {
			return err
		}
	}

	p.key("display", map[string]interface{}{
		"region": scene.FullRegion.String(),
		"area":   t.Area().String(),
		"target": t.Name(),
	})

	if err := renderOnce(opts, t, p); err != nil {
		return err
	}

	if opts.watch {
		if err := watch(ctx, opts.Source, func() {
			if err := renderOnce(opts, t, p); err != nil {
				printError(err)
			}
		}); err != nil {
			return err
		}
	}

	if err := t.Close(); err != nil {
		return err
	}
	printInfo("done")
	return nil
}

func checkMemory(cfg config.Config, required uint64) error {
	available := cfg.MemoryLimit
	if available == 0 {
		var err error
		available, err = framebuffer.AvailableMemory()
		if err != nil {
			// no way to know: assume the image fits
			scene.Logger().Debug("memory check skipped", "err", err)
			return nil
		}
	}
	return framebuffer.CheckMemory(required, available, cfg.MemoryHeadroom)
}

// renderOnce loads the scene, draws it and writes the result.
func renderOnce(opts options, t target, p *printer) error {
	sc, err := scene.ReadScene(opts.Source)
	if err != nil {
		return err
	}
	policy, _ := opts.ParsedPolicy()

	s := t.Surface()
	start := time.Now()
	report, err := scene.Draw(sc, s, policy)
	elapsed := time.Since(start)
	if report != nil {
		p.report(report)
	}
	if err != nil {
		return err
	}
	p.key("render time", elapsed.Microseconds())
	p.key("size", t.MemorySize())
	p.key("bpp", s.BitsPerPixel())

	start = time.Now()
	n, err := t.Flush()
	if err != nil {
		return err
	}
	p.key("write time", time.Since(start).Microseconds())
	p.key("written", n)

	if opts.stdout {
		if img := t.Image(); img != nil {
			fmt.Println(termview.Render(img, termview.Options{Title: filepath.Base(opts.Source)}))
		} else {
			printInfo(fmt.Sprintf("no preview for %s", strings.TrimPrefix(filepath.Ext(t.Name()), ".")))
		}
	}
	return nil
}

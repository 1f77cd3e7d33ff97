// Package config loads the settings of the scenedraw command,
// from a TOML file and command line overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/scenedraw/framebuffer"
	"github.com/benoitkugler/scenedraw/scene"
	"github.com/benoitkugler/scenedraw/scenepath"
	"github.com/pelletier/go-toml/v2"
)

// DefaultDevice is the Linux framebuffer device.
const DefaultDevice = "/dev/fb0"

// Config is the content of a configuration file. Every field is optional.
type Config struct {
	Device string `toml:"device"`
	Source string `toml:"source"`

	Units  string `toml:"units"`  // "pixels" or "drawing"
	Policy string `toml:"policy"` // "lenient", "warn" or "strict"

	// Background is the color used to clear the display.
	Background uint32 `toml:"background"`

	// MemoryLimit replaces the available memory reported by the
	// system, when non zero.
	MemoryLimit    uint64 `toml:"memory_limit"`
	MemoryHeadroom uint64 `toml:"memory_headroom"`

	// Off screen rendering, used when no device is opened.
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Format string `toml:"format"`
}

// Default returns the settings used without configuration file.
func Default() Config {
	return Config{
		Device:         DefaultDevice,
		Units:          scenepath.Pixels.String(),
		Policy:         scene.LenientPolicy.String(),
		MemoryHeadroom: framebuffer.DefaultHeadroom,
		Width:          320,
		Height:         240,
		Format:         framebuffer.RGB565.String(),
	}
}

// Load reads the file and applies it on top of Default.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML content on top of Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, errors.New(strict.String())
		}
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := c.ParsedUnits(); err != nil {
		return err
	}
	if _, err := c.ParsedPolicy(); err != nil {
		return err
	}
	if _, err := c.ParsedFormat(); err != nil {
		return err
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	return nil
}

func (c Config) ParsedUnits() (scenepath.Units, error) { return scenepath.ParseUnits(c.Units) }

func (c Config) ParsedPolicy() (scene.FieldPolicy, error) { return scene.ParseFieldPolicy(c.Policy) }

func (c Config) ParsedFormat() (framebuffer.Format, error) { return framebuffer.ParseFormat(c.Format) }

// Encode writes the configuration as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

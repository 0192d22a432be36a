// Package config is the YAML start-up configuration. It only parameterizes
// how the star and its pattern tree are built; nothing is re-read at
// runtime.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-ledstar/streak"
)

var ErrInvalid = errors.New("config: invalid")

type SPI struct {
	Port     string `yaml:"port"`     // spireg name, "" picks the first port
	FreqKHz  int    `yaml:"freq_khz"` // NRZ bit rate, e.g. 800
	Channels int    `yaml:"channels"` // 3 for RGB strips, 4 for RGBW
}

type Layout struct {
	Spines   int `yaml:"spines"`
	Arcs     int `yaml:"arcs"`
	SpineLen int `yaml:"spine_len"`
	TipLen   int `yaml:"tip_len"`
	ArcLen   int `yaml:"arc_len"`
}

// LEDs is the number of LEDs the layout wires: every spine twice plus its
// tip, and every arc once.
func (l Layout) LEDs() int {
	return l.Spines*(2*l.SpineLen+l.TipLen) + l.Arcs*l.ArcLen
}

type Streaks struct {
	Capacity    int `yaml:"capacity"`     // per spine, 1..8
	ArcLength   int `yaml:"arc_length"`   // signal, -128..127
	ArcVelocity int `yaml:"arc_velocity"` // signal, -128..127
}

type Color struct {
	H uint8 `yaml:"h"`
	S uint8 `yaml:"s"`
	V uint8 `yaml:"v"`
}

type Preview struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type Config struct {
	Driver     string `yaml:"driver"` // "spi" | "screen"
	Preset     string `yaml:"preset"` // "classic" | "rainbow" | "solid"
	FPS        int    `yaml:"fps"`
	Brightness int    `yaml:"brightness"`
	Seed       uint16 `yaml:"seed"`

	SPI     SPI     `yaml:"spi,omitempty"`
	Layout  Layout  `yaml:"layout"`
	Streaks Streaks `yaml:"streaks"`
	Solid   Color   `yaml:"solid,omitempty"`
	Preview Preview `yaml:"preview"`
}

// Default is the twelve-spine star the animation was designed for.
func Default() *Config {
	return &Config{
		Driver:     "spi",
		Preset:     "classic",
		FPS:        40,
		Brightness: 84,
		Seed:       1,
		SPI:        SPI{FreqKHz: 800, Channels: 3},
		Layout:     Layout{Spines: 12, Arcs: 12, SpineLen: 35, TipLen: 0, ArcLen: 5},
		Streaks:    Streaks{Capacity: 8, ArcLength: 64, ArcVelocity: 0},
		Solid:      Color{H: 0, S: 0, V: 255},
		Preview:    Preview{Enabled: false, Addr: ":8080"},
	}
}

// Load reads path over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOrDefault is Load, except that a missing file yields Default and
// found false. Every other failure is returned.
func LoadOrDefault(path string) (c *Config, found bool, err error) {
	c, err = Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Default(), false, nil
	case err != nil:
		return nil, false, err
	}
	return c, true, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate rejects anything the star cannot be built from.
func (c *Config) Validate() error {
	switch {
	case c.Driver != "spi" && c.Driver != "screen":
		return invalid("driver %q", c.Driver)
	case c.FPS < 1 || c.FPS > 1000:
		return invalid("fps %d", c.FPS)
	case c.Brightness < 0 || c.Brightness > 255:
		return invalid("brightness %d", c.Brightness)
	case c.Layout.Spines < 1 || c.Layout.Spines > 255:
		return invalid("spines %d", c.Layout.Spines)
	case c.Layout.Arcs < 0 || c.Layout.Arcs > 255:
		return invalid("arcs %d", c.Layout.Arcs)
	case c.Layout.SpineLen < 0 || c.Layout.SpineLen > streak.MaxRun:
		return invalid("spine_len %d", c.Layout.SpineLen)
	case c.Layout.TipLen < 0 || c.Layout.TipLen > 255:
		return invalid("tip_len %d", c.Layout.TipLen)
	case c.Layout.ArcLen < 0 || c.Layout.ArcLen > 255:
		return invalid("arc_len %d", c.Layout.ArcLen)
	case c.Layout.LEDs() > math.MaxUint16:
		return invalid("layout holds %d LEDs", c.Layout.LEDs())
	case c.Streaks.Capacity < 1 || c.Streaks.Capacity > 8:
		return invalid("streak capacity %d", c.Streaks.Capacity)
	case outOfSignal(c.Streaks.ArcLength):
		return invalid("arc_length %d", c.Streaks.ArcLength)
	case outOfSignal(c.Streaks.ArcVelocity):
		return invalid("arc_velocity %d", c.Streaks.ArcVelocity)
	}
	if c.Driver == "spi" && (c.SPI.FreqKHz <= 0 || (c.SPI.Channels != 3 && c.SPI.Channels != 4)) {
		return invalid("spi freq_khz %d channels %d", c.SPI.FreqKHz, c.SPI.Channels)
	}
	if c.Preview.Enabled && c.Preview.Addr == "" {
		return invalid("preview enabled without addr")
	}
	return nil
}

func outOfSignal(v int) bool { return v < -128 || v > 127 }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

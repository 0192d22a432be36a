package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-ledstar/config"
)

func TestDefaultIsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 84, c.Brightness)
	assert.Equal(t, 40, c.FPS)
	assert.Equal(t, "classic", c.Preset)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
driver: screen
brightness: 200
layout:
  spines: 6
  arcs: 6
  spine_len: 10
  arc_len: 3
`), 0644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "screen", c.Driver)
	assert.Equal(t, 200, c.Brightness)
	assert.Equal(t, config.Layout{Spines: 6, Arcs: 6, SpineLen: 10, ArcLen: 3}, c.Layout)
	assert.Equal(t, 8, c.Streaks.Capacity, "untouched sections keep defaults")
	assert.Equal(t, ":8080", c.Preview.Addr)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("streaks:\n  capacity: 9\n"), 0644))

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *config.Config)
	}{
		{"unknown driver", func(c *config.Config) { c.Driver = "pwm" }},
		{"zero fps", func(c *config.Config) { c.FPS = 0 }},
		{"brightness above byte", func(c *config.Config) { c.Brightness = 256 }},
		{"no spines", func(c *config.Config) { c.Layout.Spines = 0 }},
		{"spine past fixed point", func(c *config.Config) { c.Layout.SpineLen = 128 }},
		{"comets cannot leave spine", func(c *config.Config) { c.Layout.SpineLen = 97 }},
		{"more leds than a frame holds", func(c *config.Config) {
			c.Preset = "solid"
			c.Layout = config.Layout{Spines: 255, Arcs: 255, SpineLen: 96, TipLen: 255, ArcLen: 10}
		}},
		{"empty streak storage", func(c *config.Config) { c.Streaks.Capacity = 0 }},
		{"arc length off signal", func(c *config.Config) { c.Streaks.ArcLength = 128 }},
		{"arc velocity off signal", func(c *config.Config) { c.Streaks.ArcVelocity = -129 }},
		{"rgbw only", func(c *config.Config) { c.SPI.Channels = 5 }},
		{"preview without addr", func(c *config.Config) { c.Preview = config.Preview{Enabled: true} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			tt.modify(c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	c, found, err := config.LoadOrDefault(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, config.Default(), c)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("layout:\n  spines: 300\n"), 0644))
	_, _, err = config.LoadOrDefault(bad)
	assert.ErrorIs(t, err, config.ErrInvalid)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("fps: [oops\n"), 0644))
	_, _, err = config.LoadOrDefault(broken)
	assert.Error(t, err)

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("fps: 60\n"), 0644))
	c, found, err = config.LoadOrDefault(good)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 60, c.FPS)
}

func TestLayoutLEDs(t *testing.T) {
	assert.Equal(t, 900, config.Default().Layout.LEDs())
	l := config.Layout{Spines: 4, Arcs: 4, SpineLen: 3, TipLen: 1, ArcLen: 2}
	assert.Equal(t, 36, l.LEDs())
}

func TestLargestSpineIsValid(t *testing.T) {
	c := config.Default()
	c.Layout.SpineLen = 96
	assert.NoError(t, c.Validate())
}

func TestScreenSkipsSPIChecks(t *testing.T) {
	c := config.Default()
	c.Driver = "screen"
	c.SPI = config.SPI{}
	assert.NoError(t, c.Validate())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := config.Default()
	c.Seed = 4242
	c.Preset = "rainbow"
	require.NoError(t, config.Save(path, c))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

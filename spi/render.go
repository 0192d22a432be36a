package spi

import (
	"fmt"
	"image"
	"io"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	connspi "periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-ledstar/model"
)

const DFLT_FREQ = 800 * physic.KiloHertz

// Driver consumes one finished frame, in wiring order, per call.
type Driver interface {
	Show(frame []model.HSV, brightness uint8) error
	Halt() error
}

type Options struct {
	Port     string
	LEDs     int
	Channels int
	Freq     physic.Frequency
}

// LedRenderer paints frames onto a periph display. Strips that accept raw
// RGB bytes skip the image and are written directly.
type LedRenderer struct {
	drawer display.Drawer
	raw    io.Writer
	img    *image.NRGBA
	buf    []byte
	Spi    bool
}

// NewLedRenderer wraps any drawer; raw may be nil.
func NewLedRenderer(d display.Drawer, leds int, raw io.Writer) *LedRenderer {
	return &LedRenderer{
		drawer: d,
		raw:    raw,
		img:    image.NewNRGBA(image.Rect(0, 0, leds, 1)),
		buf:    make([]byte, 0, leds*3),
	}
}

func (r *LedRenderer) String() string { return r.drawer.String() }

func (r *LedRenderer) Show(frame []model.HSV, brightness uint8) error {
	if len(frame) != r.img.Rect.Dx() {
		return fmt.Errorf("frame holds %d colors, renderer expects %d", len(frame), r.img.Rect.Dx())
	}
	if r.raw != nil {
		r.buf = r.buf[:0]
		for _, c := range frame {
			r.buf = c.RGB(brightness).Serialize(r.buf)
		}
		_, err := r.raw.Write(r.buf)
		return err
	}
	for i, c := range frame {
		r.img.SetNRGBA(i, 0, c.NRGBA(brightness))
	}
	return r.drawer.Draw(r.drawer.Bounds(), r.img, image.Point{})
}

func (r *LedRenderer) Halt() error { return r.drawer.Halt() }

// NewNRZ drives a WS2812-style strip on an already opened SPI port.
func NewNRZ(p connspi.Port, o Options) (*LedRenderer, error) {
	freq := o.Freq
	if freq == 0 {
		freq = DFLT_FREQ
	}
	d, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: o.LEDs,
		Channels:  o.Channels,
		Freq:      freq,
	})
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	if err := d.Halt(); err != nil {
		return nil, fmt.Errorf("nrzled halt: %w", err)
	}
	var raw io.Writer
	if o.Channels == 3 {
		raw = d
	}
	r := NewLedRenderer(d, o.LEDs, raw)
	r.Spi = true
	return r, nil
}

// NewScreen prints frames to the terminal.
func NewScreen(leds int) *LedRenderer {
	return NewLedRenderer(screen.New(leds), leds, nil)
}

// InitLedRenderer opens the strip on the host's SPI port. It returns the
// terminal renderer with the reason when no port can be found or driven.
func InitLedRenderer(o Options) (*LedRenderer, error) {
	if _, err := host.Init(); err != nil {
		return NewScreen(o.LEDs), fmt.Errorf("host init: %w", err)
	}
	p, err := spireg.Open(o.Port)
	if err != nil {
		return NewScreen(o.LEDs), fmt.Errorf("open spi port %q: %w", o.Port, err)
	}
	r, err := NewNRZ(p, o)
	if err != nil {
		p.Close()
		return NewScreen(o.LEDs), err
	}
	return r, nil
}

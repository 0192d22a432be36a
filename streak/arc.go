package streak

import (
	"errors"
	"fmt"

	"github.com/coreman2200/funtimes-ledstar/model"
	"github.com/coreman2200/funtimes-ledstar/osc"
	"github.com/coreman2200/funtimes-ledstar/pattern"
)

// MaxArcLEDs is the largest ring whose doubled length still fits a 7.1
// position.
const MaxArcLEDs = 127

var ErrArcGeometry = errors.New("streak: arc ring must hold 1..127 LEDs")

// Arc is a single comet circling every arc of the star in turn. It only
// lights arcs; spine and tip queries are black.
type Arc struct {
	pos      Fixed
	length   osc.Oscillator
	velocity osc.Oscillator
	inner    pattern.Pattern
	arcLen   uint8
	leds     uint8
}

// NewArc returns an arc comet over arcs runs of arcLen LEDs each.
func NewArc(length, velocity osc.Oscillator, inner pattern.Pattern, arcLen, arcs uint8) (*Arc, error) {
	leds := uint16(arcLen) * uint16(arcs)
	if leds == 0 || leds > MaxArcLEDs {
		return nil, fmt.Errorf("%w: %d arcs of %d", ErrArcGeometry, arcs, arcLen)
	}
	return &Arc{
		length:   length,
		velocity: velocity,
		inner:    inner,
		arcLen:   arcLen,
		leds:     uint8(leds),
	}, nil
}

// Position is the head in 7.1 fixed point over the whole ring.
func (a *Arc) Position() Fixed { return a.pos }

func (a *Arc) Tick() {
	a.length.Tick()
	a.velocity.Tick()
	a.inner.Tick()

	step := uint16(Step(QuantizeVelocity(a.velocity.Get())))
	a.pos = Fixed((uint16(a.pos) + step) % (uint16(a.leds) * 2))
}

func (a *Arc) SpineColorAt(_, _ pattern.Index) model.HSV { return model.Black }

func (a *Arc) TipColorAt(_, _ pattern.Index) model.HSV { return model.Black }

func (a *Arc) ArcColorAt(arc, led pattern.Index) model.HSV {
	c := a.inner.ArcColorAt(arc, led)
	length := QuantizeLength(a.length.Get())
	if length == 0 {
		c.V = 0
		return c
	}
	at := uint16(arc.Index)*uint16(a.arcLen) + uint16(led.Index)
	distance := ringDistance(uint16(a.pos.Int()), at, uint16(a.leds))
	if distance > uint16(length) {
		c.V = 0
		return c
	}
	c.V = falloff(length, uint8(distance))
	return c
}

// ringDistance is how far behind head led sits, walking backwards around a
// ring of total LEDs.
func ringDistance(head, led, total uint16) uint16 {
	if head >= led {
		return head - led
	}
	return total - led + head
}

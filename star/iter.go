package star

import (
	"github.com/coreman2200/funtimes-ledstar/internal/check"
	"github.com/coreman2200/funtimes-ledstar/model"
	"github.com/coreman2200/funtimes-ledstar/pattern"
)

type phase uint8

const (
	phaseOut phase = iota
	phaseTip
	phaseBack
	phaseArc
)

// Iter walks one frame. It is never rewound; call Star.Iter again for the
// next frame.
type Iter struct {
	star    *Star
	spine   uint8
	phase   phase
	offset  uint8
	emitted uint16
}

// Remaining is the number of colors Next has yet to return.
func (it *Iter) Remaining() int {
	return int(it.star.layout.LEDs()) - int(it.emitted)
}

func (it *Iter) done() bool { return it.spine >= it.star.layout.Spines() }

func (it *Iter) phaseLen() uint8 {
	l := it.star.layout
	switch it.phase {
	case phaseOut, phaseBack:
		return l.SpineLenAt(it.spine)
	case phaseTip:
		return l.TipLenAt(it.spine)
	default:
		return l.ArcLenAt(it.spine)
	}
}

// settle moves past exhausted and empty phases so the cursor always rests
// on an LED or past the last spine.
func (it *Iter) settle() {
	for !it.done() && it.offset >= it.phaseLen() {
		it.offset = 0
		if it.phase == phaseArc {
			it.phase = phaseOut
			it.spine++
			continue
		}
		it.phase++
	}
}

// Next returns the color of the next LED in wiring order.
func (it *Iter) Next() (model.HSV, bool) {
	if it.done() {
		return model.HSV{}, false
	}
	l, p := it.star.layout, it.star.pattern
	n := it.phaseLen()
	spine := pattern.Index{Index: it.spine, Total: l.Spines()}
	led := pattern.Index{Index: it.offset, Total: n}

	var c model.HSV
	switch it.phase {
	case phaseOut:
		c = p.SpineColorAt(spine, led)
	case phaseTip:
		c = p.TipColorAt(spine, led)
	case phaseBack:
		led.Index = n - 1 - it.offset
		c = p.SpineColorAt(spine, led)
	case phaseArc:
		c = p.ArcColorAt(spine, led)
	}

	it.offset++
	it.emitted++
	check.That(it.emitted <= l.LEDs(), "star: traversal overran the layout")
	it.settle()
	return c, true
}

// Package pattern composes color-producing nodes into the tree the star
// traversal queries. A node is ticked once per frame and then queried for
// every LED; queries between ticks must be pure.
package pattern

import (
	"errors"

	"github.com/coreman2200/funtimes-ledstar/internal/check"
	"github.com/coreman2200/funtimes-ledstar/model"
	"github.com/coreman2200/funtimes-ledstar/osc"
)

// Index locates an entity (spine or arc) or an LED within one.
type Index struct {
	Index uint8
	Total uint8
}

// Pattern is a node of the color tree.
type Pattern interface {
	Tick()
	SpineColorAt(spine, led Index) model.HSV
	TipColorAt(spine, led Index) model.HSV
	ArcColorAt(arc, led Index) model.HSV
}

var ErrEmpty = errors.New("pattern: per-spine storage is empty")

// Solid is a constant color for every LED.
type Solid model.HSV

func NewSolid(h, s, v uint8) Solid { return Solid(model.NewHSV(h, s, v)) }

func (p Solid) Tick() {}

func (p Solid) SpineColorAt(_, _ Index) model.HSV { return model.HSV(p) }

func (p Solid) TipColorAt(_, _ Index) model.HSV { return model.HSV(p) }

func (p Solid) ArcColorAt(_, _ Index) model.HSV { return model.HSV(p) }

// Compound routes each region of the star to its own sub-pattern.
type Compound struct {
	Spine Pattern
	Tip   Pattern
	Arc   Pattern
}

func (p *Compound) Tick() {
	p.Spine.Tick()
	p.Tip.Tick()
	p.Arc.Tick()
}

func (p *Compound) SpineColorAt(spine, led Index) model.HSV {
	return p.Spine.SpineColorAt(spine, led)
}

func (p *Compound) TipColorAt(spine, led Index) model.HSV {
	return p.Tip.TipColorAt(spine, led)
}

func (p *Compound) ArcColorAt(arc, led Index) model.HSV {
	return p.Arc.ArcColorAt(arc, led)
}

// PerSpine holds one sub-pattern per spine and dispatches on the entity
// index. Arc queries use the same children, so a PerSpine used for arcs
// requires as many arcs as spines.
type PerSpine struct {
	children []Pattern
}

func NewPerSpine(children ...Pattern) (*PerSpine, error) {
	if len(children) == 0 {
		return nil, ErrEmpty
	}
	return &PerSpine{children: children}, nil
}

func (p *PerSpine) Len() int { return len(p.children) }

func (p *PerSpine) Tick() {
	for _, c := range p.children {
		c.Tick()
	}
}

func (p *PerSpine) at(i uint8) Pattern {
	check.That(int(i) < len(p.children), "pattern: per-spine index out of range")
	return p.children[i]
}

func (p *PerSpine) SpineColorAt(spine, led Index) model.HSV {
	return p.at(spine.Index).SpineColorAt(spine, led)
}

func (p *PerSpine) TipColorAt(spine, led Index) model.HSV {
	return p.at(spine.Index).TipColorAt(spine, led)
}

func (p *PerSpine) ArcColorAt(arc, led Index) model.HSV {
	return p.at(arc.Index).ArcColorAt(arc, led)
}

// HSVOscillator builds a color live from three oscillators, one per
// channel, ignoring position. Each signed sample maps to value+128.
type HSVOscillator struct {
	H, S, V osc.Oscillator
}

func (p *HSVOscillator) Tick() {
	p.H.Tick()
	p.S.Tick()
	p.V.Tick()
}

func (p *HSVOscillator) color() model.HSV {
	return model.HSV{H: toChannel(p.H.Get()), S: toChannel(p.S.Get()), V: toChannel(p.V.Get())}
}

func (p *HSVOscillator) SpineColorAt(_, _ Index) model.HSV { return p.color() }

func (p *HSVOscillator) TipColorAt(_, _ Index) model.HSV { return p.color() }

func (p *HSVOscillator) ArcColorAt(_, _ Index) model.HSV { return p.color() }

func toChannel(v osc.Value) uint8 { return uint8(v) + 128 }

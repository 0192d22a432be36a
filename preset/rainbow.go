package preset

import (
	"github.com/tanema/gween/ease"

	"github.com/coreman2200/funtimes-ledstar/osc"
	"github.com/coreman2200/funtimes-ledstar/pattern"
)

// Rainbow gives each spine and its arc a hue offset around the wheel. The
// wheel turns at a speed that itself swings on a slow sine, and brightness
// breathes per spine on an eased swell.
func Rainbow(p Params, _ osc.Random) (pattern.Pattern, error) {
	l := p.Layout
	if err := checkPerSpine(l); err != nil {
		return nil, err
	}
	breath := swell(ease.InOutQuad)
	step := 256 / int(l.NumSpines)
	spines := make([]pattern.Pattern, l.NumSpines)
	for i := range spines {
		phase := uint8(i * step)
		spines[i] = &pattern.HSVOscillator{
			H: osc.NewWithFrequency(osc.SawtoothAt(osc.Value(int8(phase))), osc.NewSine()),
			S: osc.Constant(osc.MaxValue),
			V: osc.SaturatingAdd(osc.NewTable(breath, phase), osc.Constant(64)),
		}
	}
	ps, err := pattern.NewPerSpine(spines...)
	if err != nil {
		return nil, err
	}
	return ps, nil
}

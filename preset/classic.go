package preset

import (
	"github.com/coreman2200/funtimes-ledstar/model"
	"github.com/coreman2200/funtimes-ledstar/osc"
	"github.com/coreman2200/funtimes-ledstar/pattern"
	"github.com/coreman2200/funtimes-ledstar/streak"
)

const (
	spawnInterval = 5 // ticks between random spawns, at most
	minStreakLen  = 2 // signal floor for random lengths
)

// Classic fires comets of random length and speed up every spine over a
// hue wheel that is rotated per spine, while a single comet circles the
// arcs. Tips stay dark.
func Classic(p Params, rng osc.Random) (pattern.Pattern, error) {
	l := p.Layout
	if err := checkPerSpine(l); err != nil {
		return nil, err
	}

	spines := make([]pattern.Pattern, l.NumSpines)
	for i := range spines {
		// Start the rotation half way round so the first spine wired is
		// not the first hue.
		v := (i + int(l.NumSpines)/2 - 1) % int(l.NumSpines)
		s, err := classicSpine(p, rng, uint8(v))
		if err != nil {
			return nil, err
		}
		spines[i] = s
	}
	spineTree, err := pattern.NewPerSpine(spines...)
	if err != nil {
		return nil, err
	}

	c := &pattern.Compound{
		Spine: spineTree,
		Tip:   pattern.Solid(model.Black),
		Arc:   pattern.Solid(model.Black),
	}
	if l.ArcLen > 0 && l.NumArcs > 0 {
		hue := &pattern.HSVOscillator{
			H: osc.NewSawtooth(),
			S: osc.Constant(osc.MaxValue),
			V: osc.Constant(osc.MaxValue),
		}
		arc, err := streak.NewArc(osc.Constant(p.ArcLength), osc.Constant(p.ArcVelocity), hue, l.ArcLen, l.NumArcs)
		if err != nil {
			return nil, err
		}
		c.Arc = arc
	}
	return c, nil
}

func classicSpine(p Params, rng osc.Random, spine uint8) (*streak.Spawner, error) {
	l := p.Layout
	phase := osc.Value(int8(spine * (255 / l.NumSpines)))
	hue := &pattern.HSVOscillator{
		H: osc.Add(osc.NewSawtooth(), osc.Constant(phase)),
		S: osc.NewTriangle(),
		V: osc.Constant(osc.MaxValue),
	}
	return streak.NewSpawner(
		osc.NewRandomPulse(rng, osc.Constant(spawnInterval), osc.Constant(osc.MinValue)),
		osc.Max(osc.NewRng(rng), osc.Constant(minStreakLen)),
		osc.NewRng(rng),
		osc.Constant(osc.Value(l.SpineLen)),
		hue,
		p.Capacity,
	)
}

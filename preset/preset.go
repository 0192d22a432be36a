// Package preset builds the pattern trees the star can run. Trees are
// assembled once at start-up from a Params and an injected random source.
package preset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/coreman2200/funtimes-ledstar/config"
	"github.com/coreman2200/funtimes-ledstar/model"
	"github.com/coreman2200/funtimes-ledstar/osc"
	"github.com/coreman2200/funtimes-ledstar/pattern"
	"github.com/coreman2200/funtimes-ledstar/star"
)

var (
	ErrUnknown       = errors.New("preset: unknown name")
	ErrSpineArcCount = errors.New("preset: per-spine arcs need as many arcs as spines")
)

// Params is everything a preset may draw on.
type Params struct {
	Layout      star.FixedLayout
	Capacity    int
	ArcLength   osc.Value
	ArcVelocity osc.Value
	Color       model.HSV
}

// FromConfig converts a validated configuration.
func FromConfig(c *config.Config) Params {
	l := c.Layout
	return Params{
		Layout: star.NewFixedLayout(uint8(l.Spines), uint8(l.Arcs),
			uint8(l.SpineLen), uint8(l.TipLen), uint8(l.ArcLen)),
		Capacity:    c.Streaks.Capacity,
		ArcLength:   osc.Value(c.Streaks.ArcLength),
		ArcVelocity: osc.Value(c.Streaks.ArcVelocity),
		Color:       model.NewHSV(c.Solid.H, c.Solid.S, c.Solid.V),
	}
}

// Builder assembles a pattern tree.
type Builder func(p Params, rng osc.Random) (pattern.Pattern, error)

var builders = map[string]Builder{
	"classic": Classic,
	"rainbow": Rainbow,
	"solid":   Solid,
}

// ByName looks up a builder.
func ByName(name string) (Builder, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return b, nil
}

func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build creates the star for a named preset.
func Build(name string, p Params, rng osc.Random) (*star.Star, error) {
	b, err := ByName(name)
	if err != nil {
		return nil, err
	}
	tree, err := b(p, rng)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return star.New(p.Layout, tree)
}

// checkPerSpine reports whether a tree with one child per spine can serve the
// layout, arcs included.
func checkPerSpine(l star.FixedLayout) error {
	if l.NumSpines == 0 {
		return star.ErrNoSpines
	}
	if l.ArcLen > 0 && l.NumArcs != l.NumSpines {
		return fmt.Errorf("%w: %d spines, %d arcs", ErrSpineArcCount, l.NumSpines, l.NumArcs)
	}
	return nil
}

// Solid lights every LED with one color.
func Solid(p Params, _ osc.Random) (pattern.Pattern, error) {
	return pattern.Solid(p.Color), nil
}

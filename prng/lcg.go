// Package prng provides the small deterministic generator used by the
// random oscillators. It is a 16-bit linear congruential generator so the
// same sequence replays on the microcontroller and in tests.
package prng

const (
	lcgA uint16 = 25173
	lcgC uint16 = 13849
)

// LCG is a 16-bit linear congruential generator. The zero value is not
// seeded; use New.
type LCG struct {
	state uint16
}

// New returns a generator seeded with seed.
func New(seed uint16) *LCG {
	return &LCG{state: seed}
}

// Seed resets the generator state.
func (g *LCG) Seed(seed uint16) {
	g.state = seed
}

func (g *LCG) next() uint16 {
	g.state = lcgA*g.state + lcgC
	return g.state
}

// Int8 returns a uniformly distributed signed byte taken from the high
// byte of the next state.
func (g *LCG) Int8() int8 {
	return int8(g.next() >> 8)
}

// RangeUint8 returns a value in [min, max]. When min >= max the result is
// min and the generator does not advance.
func (g *LCG) RangeUint8(min, max uint8) uint8 {
	if min >= max {
		return min
	}
	span := uint16(max-min) + 1
	v := uint16(g.next() >> 8)
	return min + uint8(v%span)
}

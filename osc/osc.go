// Package osc implements the signal algebra the star's colors are built
// from. Every oscillator produces a signed 8-bit Value; Tick advances it one
// step and Get reads the current sample without side effects, so repeated
// reads between ticks agree. The one exception is Rng, which draws a fresh
// sample on every Get.
//
// Oscillators are composed once at start-up into a fixed tree. Nothing in
// this package allocates after construction.
package osc

import "math"

// Value is a single signal sample in -128..127.
type Value int8

const (
	MinValue Value = math.MinInt8
	MaxValue Value = math.MaxInt8
)

// Oscillator is a stateful single-channel signal generator.
type Oscillator interface {
	Tick()
	Get() Value
}

// Random is the pseudorandom capability used by Rng and RandomPulse.
// *prng.LCG satisfies it.
type Random interface {
	Int8() int8
	RangeUint8(min, max uint8) uint8
}

// Constant always yields the same value and ignores ticks.
type Constant Value

func (c Constant) Tick() {}

func (c Constant) Get() Value { return Value(c) }

// Raw passes through whatever value was last Set. It ignores ticks, which
// makes it the hook for feeding an externally computed value into a tree.
type Raw struct {
	v Value
}

func NewRaw(v Value) *Raw { return &Raw{v: v} }

func (r *Raw) Set(v Value) { r.v = v }

func (r *Raw) Tick() {}

func (r *Raw) Get() Value { return r.v }

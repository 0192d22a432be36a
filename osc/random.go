package osc

// Rng yields a fresh pseudorandom value on every Get. Ticking does nothing.
type Rng struct {
	src Random
}

func NewRng(src Random) *Rng { return &Rng{src: src} }

func (r *Rng) Tick() {}

func (r *Rng) Get() Value { return Value(r.src.Int8()) }

// RandomPulse counts down an interval drawn uniformly from
// [uint8(min), uint8(max)] and reads MaxValue exactly while the counter sits
// at zero, MinValue otherwise. A fresh interval is drawn on the tick after
// the pulse.
type RandomPulse struct {
	src      Random
	counter  uint8
	min, max Oscillator
}

// NewRandomPulse builds the pulse and primes it with one tick, so the first
// interval is already drawn when it is returned.
func NewRandomPulse(src Random, min, max Oscillator) *RandomPulse {
	p := &RandomPulse{src: src, min: min, max: max}
	p.Tick()
	return p
}

func (p *RandomPulse) Tick() {
	p.min.Tick()
	p.max.Tick()
	if p.counter > 0 {
		p.counter--
		return
	}
	p.counter = p.src.RangeUint8(uint8(p.min.Get()), uint8(p.max.Get()))
}

func (p *RandomPulse) Get() Value {
	if p.counter == 0 {
		return MaxValue
	}
	return MinValue
}

package osc

// WithFrequency ticks its inner oscillator at a rate set by a control
// oscillator: 0 is the base rate, positive control speeds up linearly to 4x
// at 127 and negative control slows down linearly to 0.25x at -128.
// Fractional ticks accumulate in a 4.4 fixed-point phase.
type WithFrequency struct {
	inner   Oscillator
	control Oscillator
	clock   frequencyClock
}

func NewWithFrequency(inner, control Oscillator) *WithFrequency {
	return &WithFrequency{inner: inner, control: control}
}

func (w *WithFrequency) Tick() {
	w.control.Tick()
	for n := w.clock.tick(w.control.Get()); n > 0; n-- {
		w.inner.Tick()
	}
}

func (w *WithFrequency) Get() Value { return w.inner.Get() }

// frequencyClock converts a rate control into whole inner ticks. frac keeps
// the sub-tick remainder in sixteenths.
type frequencyClock struct {
	frac uint8
}

const (
	clockOne      = 16 // 1.0 in 4.4
	clockFastSpan = 48 // 16 -> 64 (4x)
	clockSlowSpan = 12 // 16 -> 4 (0.25x)
)

func (c *frequencyClock) tick(control Value) uint8 {
	if control == 0 {
		return 1
	}

	var inc uint8
	if control > 0 {
		inc = clockOne + uint8(uint16(control)*clockFastSpan/uint16(MaxValue))
	} else {
		// -MinValue does not fit in a Value; widen first so -128 becomes 128.
		mag := uint16(-int16(control))
		inc = clockOne - uint8(mag*clockSlowSpan/128)
	}

	acc := c.frac + inc
	c.frac = acc & 0x0f
	return acc >> 4
}

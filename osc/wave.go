package osc

// Triangle ping-pongs across the full range one step per tick, reversing
// exactly when it lands on MaxValue or MinValue. It starts at 0 rising.
type Triangle struct {
	counter Value
	falling bool
}

func NewTriangle() *Triangle { return &Triangle{} }

func (t *Triangle) Tick() {
	if !t.falling {
		t.counter++
		if t.counter == MaxValue {
			t.falling = true
		}
		return
	}
	t.counter--
	if t.counter == MinValue {
		t.falling = false
	}
}

func (t *Triangle) Get() Value { return t.counter }

// Sawtooth increments by one per tick and wraps from 127 to -128.
type Sawtooth struct {
	counter Value
}

func NewSawtooth() *Sawtooth { return &Sawtooth{} }

// SawtoothAt starts the ramp at phase instead of 0.
func SawtoothAt(phase Value) *Sawtooth { return &Sawtooth{counter: phase} }

func (s *Sawtooth) Tick() { s.counter++ }

func (s *Sawtooth) Get() Value { return s.counter }

// Square is MinValue while its wrapping counter is below the duty cycle
// oscillator and MaxValue otherwise.
type Square struct {
	counter Value
	duty    Oscillator
}

func NewSquare(duty Oscillator) *Square { return &Square{duty: duty} }

func (s *Square) Tick() {
	s.counter++
	s.duty.Tick()
}

func (s *Square) Get() Value {
	if s.counter < s.duty.Get() {
		return MinValue
	}
	return MaxValue
}

// Sine walks a 256-step period built from a 64-entry quarter-wave table.
type Sine struct {
	counter uint8
}

func NewSine() *Sine { return &Sine{} }

// SineAt starts the wave at the given step of its 256-step period.
func SineAt(phase uint8) *Sine { return &Sine{counter: phase} }

func (s *Sine) Tick() { s.counter++ }

func (s *Sine) Get() Value {
	c := s.counter
	switch {
	case c < 64:
		return sineQuarter[c]
	case c < 128:
		return sineQuarter[127-c]
	case c < 192:
		return -sineQuarter[c-128]
	default:
		return -sineQuarter[255-c]
	}
}

// Table plays back a precomputed 256-step period, one entry per tick. The
// table is shared and never written after construction.
type Table struct {
	values  *[256]Value
	counter uint8
}

func NewTable(values *[256]Value, phase uint8) *Table {
	return &Table{values: values, counter: phase}
}

func (t *Table) Tick() { t.counter++ }

func (t *Table) Get() Value { return t.values[t.counter] }

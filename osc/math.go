package osc

import "math"

// Op selects the arithmetic a Binary combinator applies to its operands.
type Op uint8

const (
	OpAdd Op = iota
	OpSaturatingAdd
	OpSub
	OpSaturatingSub
	OpMul
	OpSaturatingMul
	OpDiv
	OpSaturatingDiv
	OpRem
	OpSaturatingRem
	OpMax
	OpMin
)

var opNames = [...]string{
	OpAdd:           "add",
	OpSaturatingAdd: "saturating_add",
	OpSub:           "sub",
	OpSaturatingSub: "saturating_sub",
	OpMul:           "mul",
	OpSaturatingMul: "saturating_mul",
	OpDiv:           "div",
	OpSaturatingDiv: "saturating_div",
	OpRem:           "rem",
	OpSaturatingRem: "saturating_rem",
	OpMax:           "max",
	OpMin:           "min",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Apply evaluates the operator. Wrapping variants use two's complement
// overflow; saturating variants clamp to the Value range. Division and
// remainder by zero yield 0.
func (o Op) Apply(a, b Value) Value {
	switch o {
	case OpAdd:
		return a + b
	case OpSaturatingAdd:
		return saturate(int16(a) + int16(b))
	case OpSub:
		return a - b
	case OpSaturatingSub:
		return saturate(int16(a) - int16(b))
	case OpMul:
		return a * b
	case OpSaturatingMul:
		return saturate(int16(a) * int16(b))
	case OpDiv:
		if b == 0 {
			return 0
		}
		// MinValue / -1 wraps back to MinValue.
		return a / b
	case OpSaturatingDiv:
		if b == 0 {
			return 0
		}
		return saturate(int16(a) / int16(b))
	case OpRem, OpSaturatingRem:
		if b == 0 {
			return 0
		}
		return a % b
	case OpMax:
		if a > b {
			return a
		}
		return b
	case OpMin:
		if a < b {
			return a
		}
		return b
	}
	return 0
}

func saturate(v int16) Value {
	if v > math.MaxInt8 {
		return MaxValue
	}
	if v < math.MinInt8 {
		return MinValue
	}
	return Value(v)
}

// Binary combines two oscillators. It has no state of its own: both
// operands tick on every outer tick and Get is derived from their current
// values.
type Binary struct {
	op   Op
	a, b Oscillator
}

func NewBinary(op Op, a, b Oscillator) *Binary { return &Binary{op: op, a: a, b: b} }

func (c *Binary) Tick() {
	c.a.Tick()
	c.b.Tick()
}

func (c *Binary) Get() Value { return c.op.Apply(c.a.Get(), c.b.Get()) }

func Add(a, b Oscillator) *Binary           { return NewBinary(OpAdd, a, b) }
func SaturatingAdd(a, b Oscillator) *Binary { return NewBinary(OpSaturatingAdd, a, b) }
func Sub(a, b Oscillator) *Binary           { return NewBinary(OpSub, a, b) }
func SaturatingSub(a, b Oscillator) *Binary { return NewBinary(OpSaturatingSub, a, b) }
func Mul(a, b Oscillator) *Binary           { return NewBinary(OpMul, a, b) }
func SaturatingMul(a, b Oscillator) *Binary { return NewBinary(OpSaturatingMul, a, b) }
func Div(a, b Oscillator) *Binary           { return NewBinary(OpDiv, a, b) }
func SaturatingDiv(a, b Oscillator) *Binary { return NewBinary(OpSaturatingDiv, a, b) }
func Rem(a, b Oscillator) *Binary           { return NewBinary(OpRem, a, b) }
func SaturatingRem(a, b Oscillator) *Binary { return NewBinary(OpSaturatingRem, a, b) }
func Max(a, b Oscillator) *Binary           { return NewBinary(OpMax, a, b) }
func Min(a, b Oscillator) *Binary           { return NewBinary(OpMin, a, b) }

// Neg negates its operand. Negating MinValue yields MaxValue.
type Neg struct {
	inner Oscillator
}

func NewNeg(inner Oscillator) *Neg { return &Neg{inner: inner} }

func (n *Neg) Tick() { n.inner.Tick() }

func (n *Neg) Get() Value {
	v := n.inner.Get()
	if v == MinValue {
		return MaxValue
	}
	return -v
}

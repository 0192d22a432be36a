package star

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrLayoutMismatch = errors.New("star: layout LED count does not match its runs")
	ErrTooManyLEDs    = errors.New("star: layout holds more than 65535 LEDs")
	ErrTooManySpines  = errors.New("star: layout holds more than 255 spines")
)

// Layout describes how the strip is wired: every spine runs out, through an
// optional tip, back along the same LEDs in reverse, and then along the arc
// that carries its index.
type Layout interface {
	Spines() uint8
	Arcs() uint8
	LEDs() uint16

	SpineLenAt(spine uint8) uint8
	TipLenAt(spine uint8) uint8
	ArcLenAt(spine uint8) uint8
}

// Count sums the runs the traversal will actually walk. The sum may exceed
// what LEDs can declare.
func Count(l Layout) int {
	n := 0
	for i := uint8(0); i < l.Spines(); i++ {
		n += 2*int(l.SpineLenAt(i)) + int(l.TipLenAt(i)) + int(l.ArcLenAt(i))
	}
	return n
}

// Validate reports whether the declared LED count agrees with the runs.
func Validate(l Layout) error {
	got := Count(l)
	if got > math.MaxUint16 {
		return fmt.Errorf("%w: runs hold %d", ErrTooManyLEDs, got)
	}
	if got != int(l.LEDs()) {
		return fmt.Errorf("%w: declared %d, runs hold %d", ErrLayoutMismatch, l.LEDs(), got)
	}
	return nil
}

// FixedLayout gives every spine the same run lengths.
type FixedLayout struct {
	NumSpines uint8
	NumArcs   uint8
	NumLEDs   uint16
	SpineLen  uint8
	TipLen    uint8
	ArcLen    uint8
}

// NewFixedLayout returns a layout with its LED count already derived.
func NewFixedLayout(spines, arcs, spineLen, tipLen, arcLen uint8) FixedLayout {
	l := FixedLayout{
		NumSpines: spines,
		NumArcs:   arcs,
		SpineLen:  spineLen,
		TipLen:    tipLen,
		ArcLen:    arcLen,
	}
	l.UpdateLEDCount()
	return l
}

// UpdateLEDCount recomputes NumLEDs from the run lengths, clamped to 65535.
// Validate rejects a clamped layout.
func (l *FixedLayout) UpdateLEDCount() {
	spines := int(l.NumSpines) * int(l.SpineLen) * 2
	arcs := int(l.NumArcs) * int(l.ArcLen)
	tips := int(l.NumSpines) * int(l.TipLen)
	l.NumLEDs = clampLEDs(spines + arcs + tips)
}

func clampLEDs(n int) uint16 { return uint16(min(n, math.MaxUint16)) }

func (l FixedLayout) Spines() uint8          { return l.NumSpines }
func (l FixedLayout) Arcs() uint8            { return l.NumArcs }
func (l FixedLayout) LEDs() uint16           { return l.NumLEDs }
func (l FixedLayout) SpineLenAt(uint8) uint8 { return l.SpineLen }
func (l FixedLayout) TipLenAt(uint8) uint8   { return l.TipLen }
func (l FixedLayout) ArcLenAt(uint8) uint8   { return l.ArcLen }

// VariableLayout lets each spine carry its own run lengths. The three
// slices are indexed by spine and must be the same length.
type VariableLayout struct {
	SpineLens []uint8
	TipLens   []uint8
	ArcLens   []uint8
}

func (l VariableLayout) Spines() uint8 { return uint8(len(l.SpineLens)) }

func (l VariableLayout) Arcs() uint8 { return uint8(len(l.ArcLens)) }

func (l VariableLayout) LEDs() uint16 { return clampLEDs(Count(l)) }

func (l VariableLayout) SpineLenAt(i uint8) uint8 { return l.SpineLens[i] }

func (l VariableLayout) TipLenAt(i uint8) uint8 { return l.TipLens[i] }

func (l VariableLayout) ArcLenAt(i uint8) uint8 { return l.ArcLens[i] }

// Check reports mismatched slice lengths and more spines than an index can
// address.
func (l VariableLayout) Check() error {
	if len(l.SpineLens) > math.MaxUint8 {
		return fmt.Errorf("%w: %d", ErrTooManySpines, len(l.SpineLens))
	}
	if len(l.TipLens) != len(l.SpineLens) || len(l.ArcLens) != len(l.SpineLens) {
		return fmt.Errorf("%w: %d spines, %d tips, %d arcs",
			ErrLayoutMismatch, len(l.SpineLens), len(l.TipLens), len(l.ArcLens))
	}
	return nil
}

// Package streak overlays traveling comets on an inner pattern. A comet is
// two bytes of state: a 7.1 fixed-point head and a packed length and
// velocity code.
package streak

import (
	"fmt"

	"github.com/coreman2200/funtimes-ledstar/internal/check"
	"github.com/coreman2200/funtimes-ledstar/osc"
)

const (
	MaxLength   = 31
	MaxVelocity = 7

	lengthShift  = 3
	velocityMask = 0x07
)

// Fixed is an unsigned 7.1 fixed-point position: seven integer bits and one
// half-step bit.
type Fixed uint8

// Int drops the half-step bit.
func (f Fixed) Int() uint8 { return uint8(f) >> 1 }

// SaturatingAdd advances f by d half-steps, stopping at 255.
func (f Fixed) SaturatingAdd(d uint8) Fixed {
	s := uint16(f) + uint16(d)
	if s > 0xff {
		return 0xff
	}
	return Fixed(s)
}

func (f Fixed) String() string {
	if f&1 != 0 {
		return fmt.Sprintf("%d.5", f.Int())
	}
	return fmt.Sprintf("%d.0", f.Int())
}

// State is one live comet.
//
//	byte 0: pppppppf  head position, 7.1 fixed point
//	byte 1: lllllvvv  length (0..31), velocity code (0..7)
type State [2]byte

// NewState returns a comet at position 0.
func NewState(length, velocity uint8) State {
	check.That(length <= MaxLength, "streak: length exceeds 5 bits")
	check.That(velocity <= MaxVelocity, "streak: velocity exceeds 3 bits")
	return State{0, length<<lengthShift | velocity&velocityMask}
}

func (s State) Position() Fixed { return Fixed(s[0]) }

func (s *State) SetPosition(p Fixed) { s[0] = byte(p) }

// Head is the integer LED position of the comet head.
func (s State) Head() uint8 { return s.Position().Int() }

func (s State) Length() uint8 { return s[1] >> lengthShift }

func (s State) Velocity() uint8 { return s[1] & velocityMask }

// Advance moves the head by its velocity, saturating at the last position.
func (s *State) Advance() {
	s.SetPosition(s.Position().SaturatingAdd(Step(s.Velocity())))
}

func (s State) String() string {
	return fmt.Sprintf("{pos %s len %d vel %d}", s.Position(), s.Length(), s.Velocity())
}

// QuantizeLength maps a signal onto 0..31.
func QuantizeLength(v osc.Value) uint8 {
	return min((uint8(v)+128)>>3, MaxLength)
}

// QuantizeVelocity maps a signal onto 0..7.
func QuantizeVelocity(v osc.Value) uint8 {
	return min((uint8(v)+128)>>5, MaxVelocity)
}

// Step is the per-tick head increment, in half-steps, for a velocity code:
// 1 (half speed) through 4 (double speed).
func Step(velocity uint8) uint8 {
	check.That(velocity <= MaxVelocity, "streak: velocity exceeds 3 bits")
	return 1 + velocity*3/7
}

// falloff scales 255 down linearly over the length of the tail.
func falloff(length, distance uint8) uint8 {
	return uint8(uint16(length-distance) * 255 / uint16(length))
}

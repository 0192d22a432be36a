// Package star walks an LED star in wiring order and asks a pattern for the
// color of every LED it passes.
package star

import (
	"errors"
	"fmt"
	"iter"

	"github.com/coreman2200/funtimes-ledstar/model"
	"github.com/coreman2200/funtimes-ledstar/pattern"
)

var (
	ErrBufferTooSmall = errors.New("star: buffer too small for frame")
	ErrNoSpines       = errors.New("star: layout has no spines")
)

// Star pairs a layout with the pattern tree that colors it.
type Star struct {
	layout  Layout
	pattern pattern.Pattern
}

func New(layout Layout, p pattern.Pattern) (*Star, error) {
	if v, ok := layout.(VariableLayout); ok {
		if err := v.Check(); err != nil {
			return nil, err
		}
	}
	if layout.Spines() == 0 {
		return nil, ErrNoSpines
	}
	if err := Validate(layout); err != nil {
		return nil, err
	}
	return &Star{layout: layout, pattern: p}, nil
}

func (s *Star) Layout() Layout { return s.layout }

func (s *Star) LEDs() int { return int(s.layout.LEDs()) }

// Tick advances the pattern tree one frame. It must not run while a
// traversal of the same frame is in progress.
func (s *Star) Tick() { s.pattern.Tick() }

// Iter starts a fresh traversal of the current frame.
func (s *Star) Iter() Iter {
	it := Iter{star: s}
	it.settle()
	return it
}

// All yields every LED color of the current frame in wiring order.
func (s *Star) All() iter.Seq[model.HSV] {
	return func(yield func(model.HSV) bool) {
		it := s.Iter()
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// Fill writes the current frame into buf and returns the number of colors
// written, which is always LEDs().
func (s *Star) Fill(buf []model.HSV) (int, error) {
	if len(buf) < s.LEDs() {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrBufferTooSmall, s.LEDs(), len(buf))
	}
	it := s.Iter()
	n := 0
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		buf[n] = c
		n++
	}
	return n, nil
}

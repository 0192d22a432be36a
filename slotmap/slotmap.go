// Package slotmap is a fixed-capacity set of at most eight slots whose
// occupancy is tracked in a single byte.
package slotmap

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"

	"github.com/coreman2200/funtimes-ledstar/internal/check"
)

// MaxSlots is the largest capacity an 8-bit occupancy map can track.
const MaxSlots = 8

var ErrCapacity = errors.New("slotmap: capacity must be 1..8")

// SlotMap stores up to Cap values. Bit i of the occupancy byte is set
// exactly when slot i holds a live value. Free slots are reused lowest index
// first.
type SlotMap[V any] struct {
	slots    [MaxSlots]V
	occupied uint8
	full     uint8
}

// New returns an empty map with the given capacity.
func New[V any](capacity int) (SlotMap[V], error) {
	if capacity < 1 || capacity > MaxSlots {
		return SlotMap[V]{}, fmt.Errorf("%w: got %d", ErrCapacity, capacity)
	}
	return SlotMap[V]{full: uint8(1<<capacity - 1)}, nil
}

// MustNew is New for capacities known at compile time.
func MustNew[V any](capacity int) SlotMap[V] {
	m, err := New[V](capacity)
	if err != nil {
		panic(err)
	}
	return m
}

// Insert stores v in the lowest free slot and returns its index. It reports
// false and changes nothing when the map is full.
func (m *SlotMap[V]) Insert(v V) (uint8, bool) {
	if m.IsFull() {
		return 0, false
	}
	i := uint8(bits.TrailingZeros8(^m.occupied))
	m.occupied |= 1 << i
	m.slots[i] = v
	return i, true
}

// Remove frees slot i. Removing a free slot is a no-op.
func (m *SlotMap[V]) Remove(i uint8) {
	check.That(i < m.Cap(), "slotmap: remove index out of range")
	m.occupied &^= 1 << i
}

// Occupied reports whether slot i holds a value.
func (m *SlotMap[V]) Occupied(i uint8) bool {
	return i < MaxSlots && m.occupied&(1<<i) != 0
}

// Get returns the value in slot i and whether the slot is occupied.
func (m *SlotMap[V]) Get(i uint8) (V, bool) {
	if !m.Occupied(i) {
		var zero V
		return zero, false
	}
	return m.slots[i], true
}

func (m *SlotMap[V]) Len() uint8 { return uint8(bits.OnesCount8(m.occupied)) }

func (m *SlotMap[V]) Cap() uint8 { return uint8(bits.OnesCount8(m.full)) }

func (m *SlotMap[V]) IsEmpty() bool { return m.occupied == 0 }

func (m *SlotMap[V]) IsFull() bool { return m.occupied == m.full }

// Bitmap exposes the raw occupancy byte.
func (m *SlotMap[V]) Bitmap() uint8 { return m.occupied }

// All yields occupied slots in ascending index order.
func (m *SlotMap[V]) All() iter.Seq2[uint8, V] {
	return func(yield func(uint8, V) bool) {
		occ := m.occupied
		for occ != 0 {
			i := uint8(bits.TrailingZeros8(occ))
			occ &^= 1 << i
			if !yield(i, m.slots[i]) {
				return
			}
		}
	}
}

// Retain calls keep once for every slot occupied when Retain starts, in
// ascending order, and frees the slot when keep returns false. keep may
// modify the value in place.
func (m *SlotMap[V]) Retain(keep func(*V) bool) {
	remaining := m.Len()
	for i := uint8(0); i < MaxSlots && remaining > 0; i++ {
		if m.occupied&(1<<i) == 0 {
			continue
		}
		if !keep(&m.slots[i]) {
			m.Remove(i)
		}
		remaining--
	}
}

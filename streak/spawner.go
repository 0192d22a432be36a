package streak

import (
	"errors"
	"fmt"
	"iter"

	"github.com/coreman2200/funtimes-ledstar/internal/check"
	"github.com/coreman2200/funtimes-ledstar/model"
	"github.com/coreman2200/funtimes-ledstar/osc"
	"github.com/coreman2200/funtimes-ledstar/pattern"
	"github.com/coreman2200/funtimes-ledstar/slotmap"
)

// MaxRun is the longest run a comet of MaxLength can still leave: heads
// saturate at 127, so the tail never gets further than 127-MaxLength.
const MaxRun = 127 - MaxLength

var ErrSpineGeometry = errors.New("streak: spine run must hold at most 96 LEDs")

// Spawner launches comets along a linear run and lights the inner
// pattern's colors with their brightness. Comets start at position 0, move
// outward and are freed once their tail passes the total-length signal.
type Spawner struct {
	spawn    osc.Oscillator
	length   osc.Oscillator
	velocity osc.Oscillator
	total    osc.Oscillator
	inner    pattern.Pattern
	streaks  slotmap.SlotMap[State]
}

// NewSpawner returns a spawner holding at most capacity comets at once.
// A new comet is launched on every tick where spawn is positive.
func NewSpawner(spawn, length, velocity, total osc.Oscillator, inner pattern.Pattern, capacity int) (*Spawner, error) {
	streaks, err := slotmap.New[State](capacity)
	if err != nil {
		return nil, err
	}
	if c, ok := total.(osc.Constant); ok && uint8(c) > MaxRun {
		return nil, fmt.Errorf("%w: %d", ErrSpineGeometry, uint8(c))
	}
	return &Spawner{
		spawn:    spawn,
		length:   length,
		velocity: velocity,
		total:    total,
		inner:    inner,
		streaks:  streaks,
	}, nil
}

// Len is the number of live comets.
func (s *Spawner) Len() int { return int(s.streaks.Len()) }

// Streaks yields the live comets by slot.
func (s *Spawner) Streaks() iter.Seq2[uint8, State] { return s.streaks.All() }

func (s *Spawner) Tick() {
	s.spawn.Tick()
	s.length.Tick()
	s.velocity.Tick()
	s.total.Tick()
	s.inner.Tick()

	if s.spawn.Get() > 0 && !s.streaks.IsFull() {
		if length := QuantizeLength(s.length.Get()); length > 0 {
			s.streaks.Insert(NewState(length, QuantizeVelocity(s.velocity.Get())))
		}
	}

	total := uint8(s.total.Get())
	s.streaks.Retain(func(st *State) bool {
		st.Advance()
		tail := st.Head() - min(st.Head(), st.Length())
		return tail < total
	})
}

func (s *Spawner) SpineColorAt(spine, led pattern.Index) model.HSV {
	return s.light(s.inner.SpineColorAt(spine, led), led)
}

func (s *Spawner) TipColorAt(spine, led pattern.Index) model.HSV {
	return s.light(s.inner.TipColorAt(spine, led), led)
}

func (s *Spawner) ArcColorAt(arc, led pattern.Index) model.HSV {
	return s.light(s.inner.ArcColorAt(arc, led), led)
}

func (s *Spawner) light(c model.HSV, led pattern.Index) model.HSV {
	c.V = s.Brightness(led.Index)
	return c
}

// Brightness is 255 at any comet head, otherwise the brightest tail
// covering led, otherwise 0.
func (s *Spawner) Brightness(led uint8) uint8 {
	var best uint8
	for _, st := range s.streaks.All() {
		head, length := st.Head(), st.Length()
		check.That(length > 0, "streak: live comet with zero length")
		if head == led {
			return 255
		}
		if led > head {
			continue
		}
		distance := head - led
		if distance > length {
			continue
		}
		best = max(best, falloff(length, distance))
	}
	return best
}

package streak_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-ledstar/osc"
	"github.com/coreman2200/funtimes-ledstar/pattern"
	"github.com/coreman2200/funtimes-ledstar/slotmap"
	"github.com/coreman2200/funtimes-ledstar/streak"
)

func TestSpawnerLifecycle(t *testing.T) {
	const (
		length = 4 // (-96+128)>>3
		total  = 6
	)
	trigger := osc.NewRaw(1)
	s, err := streak.NewSpawner(trigger, osc.Constant(-96), osc.Constant(osc.MinValue), osc.Constant(total),
		pattern.NewSolid(0, 0, 255), 8)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	s.Tick()
	require.Equal(t, 1, s.Len(), "comet appears on the triggering tick")
	trigger.Set(0)

	var head uint8
	for _, st := range s.Streaks() {
		assert.Equal(t, uint8(length), st.Length())
		assert.Equal(t, streak.Fixed(1), st.Position())
		head = st.Head()
	}
	assert.Equal(t, uint8(0), head)

	// Half a LED per tick: after tick n the head sits at n/2.
	for n := 2; n < 64; n++ {
		s.Tick()
		head := uint8(n / 2)
		if head-min(head, length) >= total {
			assert.Equal(t, 0, s.Len(), "tick %d", n)
			assert.Equal(t, 20, n, "freed once the tail passes the end")
			return
		}
		assert.Equal(t, 1, s.Len(), "tick %d", n)
	}
	t.Fatal("comet never freed")
}

func TestSpawnerDiscardsZeroLength(t *testing.T) {
	s, err := streak.NewSpawner(osc.Constant(1), osc.Constant(osc.MinValue), osc.Constant(0), osc.Constant(90),
		pattern.NewSolid(0, 0, 255), 2)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	assert.Equal(t, 0, s.Len())
}

func TestSpawnerCapacity(t *testing.T) {
	s, err := streak.NewSpawner(osc.Constant(1), osc.Constant(0), osc.Constant(0), osc.Constant(90),
		pattern.NewSolid(0, 0, 255), 3)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		s.Tick()
		assert.LessOrEqual(t, s.Len(), 3)
	}
	assert.Equal(t, 3, s.Len())

	_, err = streak.NewSpawner(osc.Constant(1), osc.Constant(0), osc.Constant(0), osc.Constant(90),
		pattern.NewSolid(0, 0, 255), 9)
	assert.ErrorIs(t, err, slotmap.ErrCapacity)
}

func TestSpawnerFollowsTotal(t *testing.T) {
	total := osc.NewRaw(100)
	s, err := streak.NewSpawner(osc.Constant(1), osc.Constant(-120), osc.Constant(osc.MaxValue), total,
		pattern.NewSolid(0, 0, 255), 1)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	require.Equal(t, 1, s.Len())

	// Shrinking the run culls on the very next tick.
	total.Set(0)
	s.Tick()
	assert.Equal(t, 0, s.Len())
}

func TestSpawnerLongestRunStillFrees(t *testing.T) {
	trigger := osc.NewRaw(1)
	s, err := streak.NewSpawner(trigger, osc.Constant(osc.MaxValue), osc.Constant(osc.MaxValue),
		osc.Constant(streak.MaxRun), pattern.NewSolid(0, 0, 255), 1)
	require.NoError(t, err)
	s.Tick()
	require.Equal(t, 1, s.Len())
	trigger.Set(0)

	for i := 0; i < 200 && s.Len() > 0; i++ {
		s.Tick()
	}
	assert.Equal(t, 0, s.Len(), "a full-length comet leaves a run of MaxRun LEDs")
}

func TestSpawnerRejectsRunPastSaturation(t *testing.T) {
	_, err := streak.NewSpawner(osc.Constant(1), osc.Constant(0), osc.Constant(0), osc.Constant(streak.MaxRun+1),
		pattern.NewSolid(0, 0, 255), 8)
	assert.ErrorIs(t, err, streak.ErrSpineGeometry)

	_, err = streak.NewSpawner(osc.Constant(1), osc.Constant(0), osc.Constant(0), osc.Constant(-1),
		pattern.NewSolid(0, 0, 255), 8)
	assert.ErrorIs(t, err, streak.ErrSpineGeometry, "negative totals read as runs past 127")
}

func TestArcWrapsAroundRing(t *testing.T) {
	a, err := streak.NewArc(osc.Constant(0), osc.Constant(osc.MinValue), pattern.NewSolid(0, 0, 255), 1, 2)
	require.NoError(t, err)

	var got []streak.Fixed
	for i := 0; i < 6; i++ {
		a.Tick()
		got = append(got, a.Position())
	}
	assert.Equal(t, []streak.Fixed{1, 2, 3, 0, 1, 2}, got)
}

func TestArcRejectsGeometry(t *testing.T) {
	cases := []struct{ arcLen, arcs uint8 }{{0, 12}, {5, 0}, {11, 12}, {128, 1}}
	for _, c := range cases {
		_, err := streak.NewArc(osc.Constant(0), osc.Constant(0), pattern.NewSolid(0, 0, 0), c.arcLen, c.arcs)
		assert.ErrorIs(t, err, streak.ErrArcGeometry, "%d x %d", c.arcs, c.arcLen)
	}
	_, err := streak.NewArc(osc.Constant(0), osc.Constant(0), pattern.NewSolid(0, 0, 0), 127, 1)
	assert.NoError(t, err)
}

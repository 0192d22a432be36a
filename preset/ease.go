package preset

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/coreman2200/funtimes-ledstar/osc"
)

// swell renders one period that eases from MinValue up to MaxValue over the
// first half and mirrors back down over the second. It runs once at
// start-up; playback is integer only.
func swell(fn ease.TweenFunc) *[256]osc.Value {
	var t [256]osc.Value
	up := gween.New(float32(osc.MinValue), float32(osc.MaxValue), 127, fn)
	for i := 0; i < 128; i++ {
		v, _ := up.Set(float32(i))
		r := math.Round(float64(v))
		r = math.Max(math.MinInt8, math.Min(math.MaxInt8, r))
		t[i] = osc.Value(r)
		t[255-i] = t[i]
	}
	return &t
}

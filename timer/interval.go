package timer

import (
	"math/rand/v2"
	"time"
)

// IntervalGenerator draws bell intervals.
type IntervalGenerator struct {
	rng *rand.Rand
}

// NewIntervalGenerator returns a generator backed by src. A nil src seeds a
// PCG source from the current time.
func NewIntervalGenerator(src rand.Source) *IntervalGenerator {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}

	return &IntervalGenerator{
		rng: rand.New(src),
	}
}

// Next returns a number of seconds drawn uniformly from [lo, hi]. Negative
// bounds are treated as zero and hi is raised to lo when it is smaller.
func (g *IntervalGenerator) Next(lo, hi int) int {
	lo = max(lo, 0)
	hi = max(hi, lo)

	return lo + g.rng.IntN(hi-lo+1)
}

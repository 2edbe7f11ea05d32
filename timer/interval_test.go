package timer

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIntervalGeneratorDistribution(t *testing.T) {
	g := NewIntervalGenerator(rand.NewPCG(42, 7))

	counts := make(map[int]int)

	for range 10000 {
		counts[g.Next(2, 5)]++
	}

	assert.Len(t, counts, 4)

	for v := 2; v <= 5; v++ {
		assert.InDelta(t, 2500, counts[v], 300, "value %d", v)
	}
}

func TestIntervalGeneratorClamps(t *testing.T) {
	g := NewIntervalGenerator(rand.NewPCG(1, 1))

	testCases := []struct {
		name   string
		lo, hi int
		want   int
	}{
		{"max below min", 30, 10, 30},
		{"empty range", 7, 7, 7},
		{"negative bounds", -10, -5, 0},
		{"zero range", 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Next(tc.lo, tc.hi))
		})
	}
}

func TestIntervalGeneratorStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.IntRange(-100, 3600).Draw(t, "lo")
		hi := rapid.IntRange(-100, 3600).Draw(t, "hi")
		seed := rapid.Uint64().Draw(t, "seed")

		g := NewIntervalGenerator(rand.NewPCG(seed, seed))
		got := g.Next(lo, hi)

		wantLo := max(lo, 0)
		wantHi := max(hi, wantLo)

		if got < wantLo || got > wantHi {
			t.Fatalf("Next(%d, %d) = %d, want [%d, %d]", lo, hi, got, wantLo, wantHi)
		}
	})
}

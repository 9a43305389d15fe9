package skipstore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomLevelDistribution(t *testing.T) {
	numSamples := 1000000
	counts := make(map[int]int)
	gen := newLevelGen(0x123456789abcdef, MaxLevel)
	for range numSamples {
		counts[gen.next()]++
	}

	// Check if the distribution is roughly geometric.
	// With P = 1/2, we expect the number of nodes at level i+1 to be
	// roughly half the number of nodes at level i.
	for i := 1; i < MaxLevel; i++ {
		count1 := counts[i]
		if count1 == 0 {
			continue
		}

		count2 := counts[i+1]

		ratio := float64(count2) / float64(count1)

		// The number of nodes promoted from level i to i+1 follows a
		// Binomial(count1, P) distribution, so the ratio count2/count1
		// has mean P and variance P(1-P)/count1. Allow five standard
		// deviations so sparse upper levels don't fail spuriously.
		stdDev := math.Sqrt(P * (1 - P) / float64(count1))
		tolerance := 5 * stdDev

		if math.Abs(ratio-P) > tolerance {
			t.Errorf("Expected ratio between level %d and %d to be around %.2f ± %.4f, but got %.2f", i, i+1, P, tolerance, ratio)
		}
	}

	// Roughly half of all nodes should have height 1.
	share := float64(counts[1]) / float64(numSamples)
	require.InDelta(t, P, share, 0.01)
}

func TestRandomLevelStaysInRange(t *testing.T) {
	for _, limit := range []int{1, 2, 4, 8} {
		gen := newLevelGen(uint64(limit), limit)
		hitLimit := false
		for range 100000 {
			level := gen.next()
			require.GreaterOrEqual(t, level, 1)
			require.LessOrEqual(t, level, limit)
			hitLimit = hitLimit || level == limit
		}
		require.Truef(t, hitLimit, "max level %d never drawn", limit)
	}
}

func TestRandomLevelSeeded(t *testing.T) {
	a := newLevelGen(77, DefaultMaxLevel)
	b := newLevelGen(77, DefaultMaxLevel)
	for range 1000 {
		require.Equal(t, a.next(), b.next())
	}
}

func BenchmarkRandomLevel(b *testing.B) {
	gen := newLevelGen(newRandomSeed(), MaxLevel)
	for i := 0; i < b.N; i++ {
		gen.next()
	}
}

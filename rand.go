package skipstore

import (
	"math/bits"

	"github.com/zeebo/pcg"
)

// levelGen draws node heights. It is not safe for concurrent use; the list
// only calls it with its write lock held.
type levelGen struct {
	rng pcg.T
	max int
}

func newLevelGen(seed uint64, max int) *levelGen {
	return &levelGen{rng: pcg.New(seed), max: max}
}

func newRandomSeed() uint64 {
	return pcg.Uint64()
}

// next returns a height in [1, max]. Every trailing zero bit of a random word
// is one "continue" flip of a fair coin, so P(height = h) = 2^-h below max and
// the remaining tail folds into max.
func (g *levelGen) next() int {
	level := bits.TrailingZeros64(g.rng.Uint64()) + 1
	if level > g.max {
		return g.max
	}
	return level
}

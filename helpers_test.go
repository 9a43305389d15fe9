package skipstore

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func newIntList(t testing.TB, opts ...Option) *SkipList[int, string] {
	t.Helper()
	l, err := New[int, string](opts...)
	require.NoError(t, err)
	return l
}

// checkInvariants verifies the structural guarantees of l: every level is
// strictly increasing, every level is a subsequence of the one below, levels
// above the current level are empty and the count matches level 0.
func checkInvariants[K cmp.Ordered, V any](t testing.TB, l *SkipList[K, V]) {
	t.Helper()

	l.mu.RLock()
	defer l.mu.RUnlock()

	require.GreaterOrEqual(t, l.level, 0)
	require.Less(t, l.level, l.maxLevel)

	var below []K
	for i := 0; i < l.maxLevel; i++ {
		keys := l.keysAt(i)
		for j := 1; j < len(keys); j++ {
			require.Truef(t, keys[j-1] < keys[j], "level %d out of order: %v before %v", i, keys[j-1], keys[j])
		}

		switch {
		case i == 0:
			require.Len(t, keys, l.length)
			require.Equal(t, l.length, l.nodes.live())
		case i > l.level:
			require.Emptyf(t, keys, "level %d above current level %d is populated", i, l.level)
		default:
			require.Truef(t, isSubsequence(keys, below), "level %d is not a subsequence of level %d", i, i-1)
		}
		if i == l.level && l.length > 0 {
			require.NotEmptyf(t, keys, "current level %d is empty", i)
		}
		below = keys
	}
}

func isSubsequence[K comparable](sub, seq []K) bool {
	j := 0
	for _, k := range seq {
		if j < len(sub) && sub[j] == k {
			j++
		}
	}
	return j == len(sub)
}

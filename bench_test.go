package skipstore

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

// keyStream produces benchmark keys following one distribution.
type keyStream struct {
	kind    distributionKind
	r       *rand.Rand
	zipf    *rand.Zipf
	counter *uint64
	keys    int
}

func newKeyStream(kind distributionKind, worker, keyRange int, counter *uint64) *keyStream {
	seed := int64(worker+1) * 1_000_003
	r := rand.New(rand.NewSource(seed))
	ks := &keyStream{kind: kind, r: r, counter: counter, keys: keyRange}
	if kind == distZipf {
		ks.zipf = rand.NewZipf(r, 1.2, 1, uint64(keyRange-1))
	}
	return ks
}

func (ks *keyStream) next() int {
	switch ks.kind {
	case distAscending:
		return int(atomic.AddUint64(ks.counter, 1)-1) % ks.keys
	case distZipf:
		return int(ks.zipf.Uint64())
	default:
		return ks.r.Intn(ks.keys)
	}
}

var benchDistributions = []struct {
	name string
	kind distributionKind
}{
	{name: "Uniform", kind: distUniform},
	{name: "Ascending", kind: distAscending},
	{name: "Zipfian", kind: distZipf},
}

var benchWorkloads = []struct {
	name         string
	writePercent int
}{
	{name: "ReadMostly", writePercent: 5},
	{name: "WriteHeavy", writePercent: 90},
	{name: "Mixed", writePercent: 50},
}

// kv is the surface shared by the list and the baseline it is compared with.
type kv interface {
	Insert(key, value int) InsertResult
	Delete(key int)
	Search(key int) (int, bool)
}

func runWorkload(b *testing.B, m kv, kind distributionKind, writePercent, threads, keyRange int) {
	for i := 0; i < keyRange/2; i++ {
		m.Insert(i, i)
	}

	var ascendingCounter uint64
	var ops int64

	b.ResetTimer()

	var wg sync.WaitGroup
	wg.Add(threads)
	for tIdx := 0; tIdx < threads; tIdx++ {
		go func(worker int) {
			defer wg.Done()
			keys := newKeyStream(kind, worker, keyRange, &ascendingCounter)
			r := keys.r
			for atomic.AddInt64(&ops, 1) <= int64(b.N) {
				key := keys.next()
				if r.Intn(100) < writePercent {
					if r.Intn(2) == 0 {
						m.Insert(key, r.Intn(1<<16))
					} else {
						m.Delete(key)
					}
				} else {
					m.Search(key)
				}
			}
		}(tIdx)
	}

	wg.Wait()
	b.StopTimer()
}

func BenchmarkSkipListWorkloads(b *testing.B) {
	threadCounts := []int{1, 2, 4, 8, 16}
	const keyRange = 1 << 12

	for _, dist := range benchDistributions {
		b.Run(dist.name, func(b *testing.B) {
			for _, workload := range benchWorkloads {
				b.Run(workload.name, func(b *testing.B) {
					for _, threads := range threadCounts {
						b.Run(fmt.Sprintf("P%d", threads), func(b *testing.B) {
							l, err := New[int, int]()
							if err != nil {
								b.Fatal(err)
							}
							runWorkload(b, l, dist.kind, workload.writePercent, threads, keyRange)

							stats := l.Stats()
							attempts := stats.Inserts + stats.Conflicts
							if attempts > 0 {
								b.ReportMetric(float64(stats.Conflicts)/float64(attempts), "conflicts_per_insert")
							}
						})
					}
				})
			}
		})
	}
}

func BenchmarkInsertSequential(b *testing.B) {
	l, err := New[int, int](WithMaxLevel(MaxLevel))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Insert(i, i)
	}
}

func BenchmarkSearchHit(b *testing.B) {
	const n = 1 << 16
	l, err := New[int, int]()
	if err != nil {
		b.Fatal(err)
	}
	for i := range n {
		l.Insert(i, i)
	}
	r := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Search(r.Intn(n))
	}
}

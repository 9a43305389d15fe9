// Command skipstress times concurrent inserts followed by concurrent searches
// against a single store.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/zeebo/pcg"

	"github.com/metailurini/skipstore"
)

func main() {
	var (
		threads  int
		count    int
		maxLevel int
		seed     uint64
	)
	flag.IntVar(&threads, "threads", 1, "number of worker goroutines")
	flag.IntVar(&count, "count", 100000, "total operations per phase")
	flag.IntVar(&maxLevel, "max-level", 18, "maximum node height")
	flag.Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "seed for key draws and node heights")
	flag.Parse()

	if threads < 1 || count < 1 {
		log.Fatal("threads and count must be positive")
	}

	list, err := skipstore.New[int, string](skipstore.WithMaxLevel(maxLevel), skipstore.WithSeed(seed))
	if err != nil {
		log.Fatalf("new store: %v", err)
	}

	insert := timePhase(threads, count, seed, func(key int) {
		list.Insert(key, "a")
	})
	search := timePhase(threads, count, seed+1, func(key int) {
		list.Search(key)
	})

	s := list.Stats()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Phase", "Threads", "Ops", "Elapsed", "Ops/s", "Hits"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk([][]string{
		row("insert", threads, count, insert, s.Inserts),
		row("search", threads, count, search, s.SearchHits),
	})
	table.Render()
	fmt.Printf("size: %d level: %d\n", list.Size(), list.Level())
}

// timePhase splits count operations across threads goroutines, each drawing
// keys in [0, count) from its own generator.
func timePhase(threads, count int, seed uint64, op func(key int)) time.Duration {
	per := count / threads

	var wg sync.WaitGroup
	start := time.Now()
	for t := 0; t < threads; t++ {
		n := per
		if t == threads-1 {
			n = count - per*(threads-1)
		}
		wg.Add(1)
		go func(rng pcg.T, n int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				op(int(rng.Uint32n(uint32(count))))
			}
		}(pcg.New(seed+uint64(t)), n)
	}
	wg.Wait()
	return time.Since(start)
}

func row(phase string, threads, ops int, elapsed time.Duration, hits int64) []string {
	return []string{
		phase,
		strconv.Itoa(threads),
		strconv.Itoa(ops),
		elapsed.Round(time.Microsecond).String(),
		fmt.Sprintf("%.0f", float64(ops)/elapsed.Seconds()),
		strconv.FormatInt(hits, 10),
	}
}

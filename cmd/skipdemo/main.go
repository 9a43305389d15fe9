// Command skipdemo builds a small store, prints its levels, snapshots it to
// disk and reads the snapshot back into a fresh store.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/metailurini/skipstore"
	"github.com/metailurini/skipstore/persist"
)

var sonnet = []struct {
	key  int
	line string
}{
	{1, "Shall I compare thee to a summer's day?"},
	{3, "Thou art more lovely and more temperate:"},
	{7, "Rough winds do shake the darling buds of May,"},
	{8, "And summer's lease hath all too short a date;"},
	{9, "Sometime too hot the eye of heaven shines,"},
	{19, "And often is his gold complexion dimmed;"},
	{19, "And every fair from fair sometime declines,"},
}

func main() {
	var (
		path     string
		maxLevel int
		seed     uint64
		verbose  bool
	)
	flag.StringVar(&path, "path", persist.DefaultConfig().Path, "snapshot file")
	flag.IntVar(&maxLevel, "max-level", 6, "maximum node height")
	flag.Uint64Var(&seed, "seed", 0, "level generator seed (0 picks one at random)")
	flag.BoolVar(&verbose, "v", false, "log debug records")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, path, maxLevel, seed); err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, path string, maxLevel int, seed uint64) error {
	opts := []skipstore.Option{skipstore.WithMaxLevel(maxLevel)}
	if seed != 0 {
		opts = append(opts, skipstore.WithSeed(seed))
	}

	list, err := skipstore.New[int, string](opts...)
	if err != nil {
		return err
	}
	for _, rec := range sonnet {
		if res := list.Insert(rec.key, rec.line); res != skipstore.Inserted {
			logger.Info("insert rejected", "key", rec.key, "result", res)
		}
	}
	fmt.Println("size:", list.Size())

	for _, key := range []int{9, 18} {
		if v, ok := list.Search(key); ok {
			fmt.Printf("search %d: %q\n", key, v)
		} else {
			fmt.Printf("search %d: not found\n", key)
		}
	}

	if err := list.Dump(os.Stdout); err != nil {
		return err
	}

	list.Delete(3)
	list.Delete(7)
	fmt.Println("after deleting 3 and 7:")
	if err := list.Dump(os.Stdout); err != nil {
		return err
	}

	adapter, err := persist.New(persist.Config{Path: path, Logger: logger}, persist.Int, persist.String)
	if err != nil {
		return err
	}
	if err := adapter.Save(list); err != nil {
		return err
	}
	logger.Info("snapshot saved", "path", path, "records", list.Size())

	restored, err := skipstore.New[int, string](opts...)
	if err != nil {
		return err
	}
	stats, err := adapter.Load(restored)
	if err != nil {
		return err
	}
	logger.Info("snapshot loaded",
		"inserted", stats.Inserted,
		"duplicates", stats.Duplicates,
		"skipped", stats.Skipped)

	fmt.Println("restored:")
	if err := restored.Dump(os.Stdout); err != nil {
		return err
	}

	s := list.Stats()
	fmt.Printf("inserts=%d conflicts=%d deletes=%d searches=%d hits=%d\n",
		s.Inserts, s.Conflicts, s.Deletes, s.Searches, s.SearchHits)
	return nil
}

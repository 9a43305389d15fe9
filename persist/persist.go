// Package persist saves a skip list to a flat text file and restores it.
//
// A snapshot holds one record per line, key and value separated by a single
// delimiter byte:
//
//	<key><delimiter><value>\n
//
// There is no header, escaping, checksum or version field. On load the key is
// the text before the first delimiter, so a key whose text contains the
// delimiter does not survive a round trip.
package persist

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/errs"

	"github.com/metailurini/skipstore"
)

// Error is the class of every I/O failure returned by this package.
var Error = errs.Class("persist")

// Config selects where and how snapshots are written.
type Config struct {
	// Path is the snapshot file used by Save and Load.
	Path string

	// Delimiter separates key from value. Zero means ':'.
	Delimiter byte

	// Logger receives debug records about skipped lines and completed
	// snapshots. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the conventional snapshot location and delimiter.
func DefaultConfig() Config {
	return Config{
		Path:      filepath.Join("store", "dumpFile"),
		Delimiter: ':',
	}
}

// Source is anything that can walk its pairs in key order.
type Source[K, V any] interface {
	Range(fn func(key K, value V) bool)
}

// Sink is anything that accepts pairs one at a time.
type Sink[K, V any] interface {
	Insert(key K, value V) skipstore.InsertResult
}

// LoadStats summarizes a Load or Decode.
type LoadStats struct {
	Inserted   int // records inserted
	Duplicates int // records whose key was already present
	Skipped    int // malformed lines
}

// Adapter moves pairs between a list and snapshot text.
type Adapter[K, V any] struct {
	cfg  Config
	keys Codec[K]
	vals Codec[V]
	log  *slog.Logger
}

// New returns an Adapter using keys and vals to render records.
func New[K, V any](cfg Config, keys Codec[K], vals Codec[V]) (*Adapter[K, V], error) {
	if cfg.Delimiter == 0 {
		cfg.Delimiter = ':'
	}
	if cfg.Delimiter == '\n' || cfg.Delimiter == '\r' {
		return nil, Error.New("invalid delimiter %q", cfg.Delimiter)
	}
	if keys == nil || vals == nil {
		return nil, Error.New("nil codec")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Adapter[K, V]{
		cfg:  cfg,
		keys: keys,
		vals: vals,
		log:  log.With("component", "persist"),
	}, nil
}

// Save truncates the configured file, creating it and its directory if
// needed, and writes every pair of src to it.
func (a *Adapter[K, V]) Save(src Source[K, V]) (err error) {
	if a.cfg.Path == "" {
		return Error.New("no snapshot path configured")
	}

	if dir := filepath.Dir(a.cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Error.Wrap(err)
		}
	}

	fh, err := os.Create(a.cfg.Path)
	if err != nil {
		return Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, Error.Wrap(fh.Close())) }()

	return a.Encode(fh, src)
}

// Encode writes every pair of src to w, one record per line.
func (a *Adapter[K, V]) Encode(w io.Writer, src Source[K, V]) error {
	bw := bufio.NewWriter(w)

	var err error
	records := 0
	src.Range(func(key K, value V) bool {
		if _, err = bw.WriteString(a.keys.Format(key)); err != nil {
			return false
		}
		if err = bw.WriteByte(a.cfg.Delimiter); err != nil {
			return false
		}
		if _, err = bw.WriteString(a.vals.Format(value)); err != nil {
			return false
		}
		if err = bw.WriteByte('\n'); err != nil {
			return false
		}
		records++
		return true
	})
	if err != nil {
		return Error.Wrap(err)
	}
	if err := bw.Flush(); err != nil {
		return Error.Wrap(err)
	}

	a.log.Debug("snapshot written", "records", records)
	return nil
}

// Load reads the configured file into dst. A missing or unreadable file is
// an error; malformed lines are not.
func (a *Adapter[K, V]) Load(dst Sink[K, V]) (stats LoadStats, err error) {
	if a.cfg.Path == "" {
		return stats, Error.New("no snapshot path configured")
	}

	fh, err := os.Open(a.cfg.Path)
	if err != nil {
		return stats, Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, Error.Wrap(fh.Close())) }()

	return a.Decode(fh, dst)
}

// Decode inserts every well-formed record read from r into dst. Lines that
// are empty, lack the delimiter, have an empty key or value, or do not parse
// are skipped. Keys already in dst keep their value; the first record wins.
func (a *Adapter[K, V]) Decode(r io.Reader, dst Sink[K, V]) (LoadStats, error) {
	var stats LoadStats

	br := bufio.NewReader(r)
	for lineno := 1; ; lineno++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return stats, Error.Wrap(err)
		}
		if line == "" && err == io.EOF {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		key, value, reason := a.parse(line)
		if reason != "" {
			stats.Skipped++
			a.log.Debug("skipping snapshot line", "line", lineno, "reason", reason)
		} else if dst.Insert(key, value) == skipstore.Inserted {
			stats.Inserted++
		} else {
			stats.Duplicates++
		}

		if err == io.EOF {
			break
		}
	}

	a.log.Debug("snapshot loaded",
		"inserted", stats.Inserted,
		"duplicates", stats.Duplicates,
		"skipped", stats.Skipped)
	return stats, nil
}

// parse splits one record. A non-empty reason means the line is malformed.
func (a *Adapter[K, V]) parse(line string) (key K, value V, reason string) {
	if line == "" {
		return key, value, "empty line"
	}
	i := strings.IndexByte(line, a.cfg.Delimiter)
	if i < 0 {
		return key, value, "missing delimiter"
	}
	ktext, vtext := line[:i], line[i+1:]
	if ktext == "" || vtext == "" {
		return key, value, "empty key or value"
	}

	key, err := a.keys.Parse(ktext)
	if err != nil {
		return key, value, "bad key: " + err.Error()
	}
	value, err = a.vals.Parse(vtext)
	if err != nil {
		return key, value, "bad value: " + err.Error()
	}
	return key, value, ""
}

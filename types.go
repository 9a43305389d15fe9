package skipstore

import (
	"errors"
	"fmt"
)

const (
	// MaxLevel is the largest height a list may be configured with.
	MaxLevel = 32

	// DefaultMaxLevel is used when WithMaxLevel is not given.
	DefaultMaxLevel = 16

	// P is the probability that a node is promoted one more level.
	P = 1.0 / 2.0
)

// Less reports whether a sorts before b. It must be a strict total order:
// two keys are the same key exactly when neither is less than the other.
type Less[K any] func(a, b K) bool

// InsertResult is the outcome of an Insert.
type InsertResult int

const (
	// Inserted means a new node was linked into the list.
	Inserted InsertResult = iota
	// AlreadyExists means the key was present; the stored value is untouched.
	AlreadyExists
)

func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "Inserted"
	case AlreadyExists:
		return "AlreadyExists"
	default:
		return fmt.Sprintf("InsertResult(%d)", int(r))
	}
}

// Config holds construction-time settings of a SkipList.
type Config struct {
	// maxLevel is the upper bound on any node's height.
	maxLevel int

	// seed feeds the level generator. Ignored unless seeded is set.
	seed   uint64
	seeded bool
}

// Option configures a SkipList.
type Option func(*Config)

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{maxLevel: DefaultMaxLevel}
}

// WithMaxLevel sets the maximum height of the list. It must be in [1, MaxLevel].
func WithMaxLevel(level int) Option {
	return func(c *Config) { c.maxLevel = level }
}

// WithSeed fixes the level generator's seed so node heights are reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.seed = seed
		c.seeded = true
	}
}

// Errors
var (
	// ErrInvalidMaxLevel is returned when the configured max level is outside [1, MaxLevel].
	ErrInvalidMaxLevel = errors.New("skipstore: max level out of range")
	// ErrNilLess is returned by NewFunc when no ordering function is given.
	ErrNilLess = errors.New("skipstore: nil less function")
	// ErrInvalidLevel is returned by Keys for a level index outside the list's height.
	ErrInvalidLevel = errors.New("skipstore: level out of range")
)

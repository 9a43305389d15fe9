// Package skipstore implements an in-memory ordered key-value store on top of a
// skip list: parallel sorted chains where each higher level skips over more
// nodes, giving expected O(log n) insert, search and delete.
//
// Nodes live in an arena and link to each other by slot index. Insert and
// Delete hold an exclusive lock for the whole traversal and splice; Search and
// the traversal helpers hold a shared lock.
package skipstore

import (
	"cmp"
	"sync"
)

// SkipList is an ordered map with unique keys. The zero value is not usable;
// construct one with New or NewFunc.
type SkipList[K, V any] struct {
	mu sync.RWMutex

	less     Less[K]
	nodes    *arena[K, V]
	levels   *levelGen
	maxLevel int

	// level is the highest level index occupied by a real node, 0 when empty.
	level  int
	length int

	// update is the scratch update vector, only touched under the write lock.
	update []ref

	metrics Metrics
}

// New returns an empty list for keys with a natural order.
func New[K cmp.Ordered, V any](opts ...Option) (*SkipList[K, V], error) {
	return NewFunc[K, V](cmp.Less[K], opts...)
}

// NewFunc returns an empty list ordered by less.
func NewFunc[K, V any](less Less[K], opts ...Option) (*SkipList[K, V], error) {
	if less == nil {
		return nil, ErrNilLess
	}

	config := NewConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.maxLevel < 1 || config.maxLevel > MaxLevel {
		return nil, ErrInvalidMaxLevel
	}

	seed := config.seed
	if !config.seeded {
		seed = newRandomSeed()
	}

	return &SkipList[K, V]{
		less:     less,
		nodes:    newArena[K, V](config.maxLevel),
		levels:   newLevelGen(seed, config.maxLevel),
		maxLevel: config.maxLevel,
		update:   make([]ref, config.maxLevel),
	}, nil
}

// findPredecessors walks from the header down to level 0, recording in
// update (when non-nil) the last node before key on every active level. It
// returns the level-0 successor of that path: the node holding key, the node
// key would be inserted before, or null.
func (l *SkipList[K, V]) findPredecessors(key K, update []ref) ref {
	x := head
	for i := l.level; i >= 0; i-- {
		for {
			next := l.nodes.at(x).next[i]
			if next == null || !l.less(l.nodes.at(next).key, key) {
				break
			}
			x = next
		}
		if update != nil {
			update[i] = x
		}
	}
	return l.nodes.at(x).next[0]
}

// holds reports whether r is a real node whose key equals key. The candidate
// from findPredecessors is never less than key, so one comparison suffices.
func (l *SkipList[K, V]) holds(r ref, key K) bool {
	return r != null && !l.less(key, l.nodes.at(r).key)
}

// Insert links a new node for key. If key is already present nothing changes
// and AlreadyExists is returned; Insert never overwrites a stored value.
func (l *SkipList[K, V]) Insert(key K, value V) InsertResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	update := l.update
	candidate := l.findPredecessors(key, update)
	if l.holds(candidate, key) {
		l.metrics.IncConflict()
		return AlreadyExists
	}

	height := l.levels.next()
	if top := height - 1; top > l.level {
		for i := l.level + 1; i <= top; i++ {
			update[i] = head
		}
		l.level = top
	}

	x := l.nodes.alloc(key, value, height)
	n := l.nodes.at(x)
	for i := 0; i < height; i++ {
		pred := l.nodes.at(update[i])
		n.next[i] = pred.next[i]
		pred.next[i] = x

		if spliceHook != nil {
			spliceHook(i)
		}
	}

	l.length++
	l.metrics.IncInsert()
	return Inserted
}

// Delete removes key if present. Deleting an absent key is a no-op.
func (l *SkipList[K, V]) Delete(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()

	update := l.update
	target := l.findPredecessors(key, update)
	if !l.holds(target, key) {
		l.metrics.IncDelete(false)
		return
	}

	t := l.nodes.at(target)
	for i := 0; i <= l.level; i++ {
		pred := l.nodes.at(update[i])
		// Above the target's own height the predecessor no longer points at it.
		if pred.next[i] != target {
			break
		}
		pred.next[i] = t.next[i]

		if unlinkHook != nil {
			unlinkHook(i)
		}
	}

	top := l.nodes.at(head)
	for l.level > 0 && top.next[l.level] == null {
		l.level--
	}

	l.nodes.release(target)
	l.length--
	l.metrics.IncDelete(true)
}

// Search returns the value stored for key.
// The boolean is true if the key exists, false otherwise.
func (l *SkipList[K, V]) Search(key K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	candidate := l.findPredecessors(key, nil)
	if !l.holds(candidate, key) {
		l.metrics.IncSearch(false)
		var zero V
		return zero, false
	}
	l.metrics.IncSearch(true)
	return l.nodes.at(candidate).val, true
}

// Contains reports whether key is present.
func (l *SkipList[K, V]) Contains(key K) bool {
	_, ok := l.Search(key)
	return ok
}

// Size returns the number of stored keys.
func (l *SkipList[K, V]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.length
}

// Level returns the highest level index currently occupied, 0 when empty.
func (l *SkipList[K, V]) Level() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// MaxLevel returns the configured upper bound on node height.
func (l *SkipList[K, V]) MaxLevel() int {
	return l.maxLevel
}

// Stats returns the operation counters observed so far.
func (l *SkipList[K, V]) Stats() Stats {
	return l.metrics.Snapshot()
}

package skipstore

// Range calls fn for every key/value pair in ascending key order until fn
// returns false. The shared lock is held for the whole walk, so fn must not
// call Insert or Delete on the same list.
func (l *SkipList[K, V]) Range(fn func(key K, value V) bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for x := l.nodes.at(head).next[0]; x != null; {
		n := l.nodes.at(x)
		if !fn(n.key, n.val) {
			return
		}
		x = n.next[0]
	}
}

// Keys returns the keys linked at the given level, in chain order. Level 0
// holds every key; levels above Level() are empty.
func (l *SkipList[K, V]) Keys(level int) ([]K, error) {
	if level < 0 || level >= l.maxLevel {
		return nil, ErrInvalidLevel
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.keysAt(level), nil
}

// keysAt walks one level's chain. Callers hold the lock.
func (l *SkipList[K, V]) keysAt(level int) []K {
	var keys []K
	for x := l.nodes.at(head).next[level]; x != null; {
		n := l.nodes.at(x)
		keys = append(keys, n.key)
		x = n.next[level]
	}
	return keys
}

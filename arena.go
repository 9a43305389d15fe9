package skipstore

// arena owns every node of a list. Links between nodes are slot indices, so
// unlinking a node can never leave a dangling pointer behind.
type arena[K, V any] struct {
	nodes []node[K, V]
	free  []ref
}

func newArena[K, V any](maxLevel int) *arena[K, V] {
	a := &arena[K, V]{nodes: make([]node[K, V], 1, 64)}
	a.nodes[head].next = make([]ref, maxLevel)
	return a
}

// at returns the node stored in slot r. The pointer is only valid until the
// next alloc, which may grow the backing slice.
func (a *arena[K, V]) at(r ref) *node[K, V] {
	return &a.nodes[r]
}

// alloc stores a node of the given height, reusing a released slot when one
// is available. All forward references of the new node are null.
func (a *arena[K, V]) alloc(key K, val V, height int) ref {
	if n := len(a.free); n > 0 {
		r := a.free[n-1]
		a.free = a.free[:n-1]

		nd := &a.nodes[r]
		if cap(nd.next) < height {
			nd.next = make([]ref, height)
		} else {
			nd.next = nd.next[:height]
			clear(nd.next)
		}
		nd.key = key
		nd.val = val
		return r
	}

	a.nodes = append(a.nodes, node[K, V]{
		key:  key,
		val:  val,
		next: make([]ref, height),
	})
	return ref(len(a.nodes) - 1)
}

// release clears slot r and puts it on the free list. The forward slice keeps
// its capacity for the next alloc.
func (a *arena[K, V]) release(r ref) {
	if r == head {
		return
	}

	nd := &a.nodes[r]
	var zeroK K
	var zeroV V
	nd.key = zeroK
	nd.val = zeroV
	nd.next = nd.next[:0]

	a.free = append(a.free, r)
}

// live returns the number of occupied non-header slots.
func (a *arena[K, V]) live() int {
	return len(a.nodes) - 1 - len(a.free)
}

// slots returns the number of allocated slots, header included.
func (a *arena[K, V]) slots() int {
	return len(a.nodes)
}

package skipstore

// ref addresses a node slot in the arena. Slot 0 holds the header, which is
// never anyone's successor, so the zero ref also means "no successor".
type ref uint32

const (
	head ref = 0
	null ref = 0
)

// node holds a key/value and one forward reference per level it occupies.
type node[K, V any] struct {
	key  K
	val  V
	next []ref
}

func (n *node[K, V]) height() int {
	return len(n.next)
}

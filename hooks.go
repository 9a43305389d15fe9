package skipstore

// Test hooks (kept separate so instrumentation doesn't clutter logic).
// They run with the write lock held and must not call back into the list.
var (
	// spliceHook is invoked after a new node is linked at a given level.
	spliceHook func(level int)

	// unlinkHook is invoked after a deleted node is bypassed at a given level.
	unlinkHook func(level int)
)

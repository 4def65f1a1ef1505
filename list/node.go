package list

// handle addresses a slot in a List's arena. Slot i lives at nodes[i-1], so
// the zero handle means "no node".
type handle uint64

const none handle = 0

// Node is one element of a List: a value and the handle of its successor.
//
// Nodes live in the list's arena and are never moved by list operations;
// insertion and deletion only rewrite next handles.
type Node[T comparable] struct {
	value T
	next  handle

	// live is false while the slot sits on the free list. gen counts how
	// many times the slot has been released, so that a Ref taken before a
	// release can be recognized as stale.
	live bool
	gen  uint64
}

// Ref is a read-only reference to a node, as returned by Find. It stays
// valid until that node is deleted; see List.Value.
type Ref struct {
	h   handle
	gen uint64
}

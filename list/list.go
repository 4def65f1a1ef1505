package list

import (
	"fmt"
	"strings"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// List is a singly-linked list with O(1) append.
//
// Nodes are stored in an arena owned by the list and linked by handle. The
// tail is just the handle of the last node, so it can never outlive the node
// it names: every operation that unlinks or displaces the last node updates
// tail in the same call.
//
// The zero List is an empty list ready to use. A List is not safe for
// concurrent use.
type List[T comparable] struct {
	nodes []Node[T]
	free  []handle
	head  handle
	tail  handle
	size  uint64
}

func New[T comparable]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) node(h handle) *Node[T] {
	return &l.nodes[h-1]
}

// alloc places value in a free slot, or grows the arena if there is none.
// Pointers from node() are invalidated by alloc.
func (l *List[T]) alloc(value T, next handle) handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		nd := l.node(h)
		nd.value = value
		nd.next = next
		nd.live = true
		l.size = std.SumAssumeNoOverflow(l.size, 1)
		return h
	}
	l.nodes = append(l.nodes, Node[T]{value: value, next: next, live: true})
	l.size = std.SumAssumeNoOverflow(l.size, 1)
	return handle(len(l.nodes))
}

// release returns an unlinked slot to the free list. The caller must already
// have fixed up head, tail and the predecessor's next.
func (l *List[T]) release(h handle) {
	nd := l.node(h)
	primitive.Assert(nd.live)
	var zero T
	nd.value = zero
	nd.next = none
	nd.live = false
	nd.gen++
	l.free = append(l.free, h)
	l.size--
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() uint64 {
	return l.size
}

// Prepend adds value at the front of the list.
func (l *List[T]) Prepend(value T) {
	h := l.alloc(value, l.head)
	if l.tail == none {
		l.tail = h
	}
	l.head = h
}

// Append adds value at the back of the list in constant time.
func (l *List[T]) Append(value T) {
	h := l.alloc(value, none)
	if l.tail != none {
		last := l.node(l.tail)
		primitive.Assert(last.next == none)
		last.next = h
	} else {
		l.head = h
	}
	l.tail = h
}

// Insert places value so that it ends up at position index (0-based). An
// index at or past the end of the list appends.
func (l *List[T]) Insert(value T, index uint64) {
	if index == 0 {
		l.Prepend(value)
		return
	}
	var cur = l.head
	var pos = uint64(1)
	for cur != none {
		if pos == index {
			h := l.alloc(value, l.node(cur).next)
			l.node(cur).next = h
			if cur == l.tail {
				l.tail = h
			}
			return
		}
		cur = l.node(cur).next
		pos++
	}
	l.Append(value)
}

// Find returns a reference to the first node holding value.
func (l *List[T]) Find(value T) (Ref, bool) {
	for h := l.head; h != none; h = l.node(h).next {
		nd := l.node(h)
		if nd.value == value {
			return Ref{h: h, gen: nd.gen}, true
		}
	}
	return Ref{}, false
}

func (l *List[T]) Contains(value T) bool {
	_, ok := l.Find(value)
	return ok
}

// Value resolves a Ref returned by Find. It reports false for the zero Ref
// and for a Ref whose node has since been deleted, even if the slot was reused
// for a new element.
func (l *List[T]) Value(r Ref) (T, bool) {
	var zero T
	if r.h == none || uint64(r.h) > uint64(len(l.nodes)) {
		return zero, false
	}
	nd := l.node(r.h)
	if !nd.live || nd.gen != r.gen {
		return zero, false
	}
	return nd.value, true
}

// Delete removes value from the list.
//
// Every copy of value at the front of the list is removed. After that, only
// the first remaining copy (if any) is removed.
func (l *List[T]) Delete(value T) {
	for l.head != none && l.node(l.head).value == value {
		old := l.head
		l.head = l.node(old).next
		l.release(old)
	}
	if l.head == none {
		l.tail = none
		return
	}

	for cur := l.head; l.node(cur).next != none; cur = l.node(cur).next {
		next := l.node(cur).next
		if l.node(next).value != value {
			continue
		}
		l.node(cur).next = l.node(next).next
		if next == l.tail {
			l.tail = cur
		}
		l.release(next)
		return
	}
}

// PopFront removes and returns the first element. The boolean is false if the
// list was empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	old := l.head
	value := l.node(old).value
	l.head = l.node(old).next
	if l.head == none {
		l.tail = none
	}
	l.release(old)
	return value, true
}

func (l *List[T]) Front() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	return l.node(l.head).value, true
}

func (l *List[T]) Back() (T, bool) {
	if l.tail == none {
		var zero T
		return zero, false
	}
	return l.node(l.tail).value, true
}

// Values returns the elements from front to back.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for h := l.head; h != none; h = l.node(h).next {
		values = append(values, l.node(h).value)
	}
	return values
}

// String renders the list as "a -> b -> None".
func (l *List[T]) String() string {
	var b strings.Builder
	for h := l.head; h != none; h = l.node(h).next {
		fmt.Fprintf(&b, "%v -> ", l.node(h).value)
	}
	b.WriteString("None")
	return b.String()
}

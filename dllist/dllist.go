// Package dllist provides an intrusive, non-owning doubly-linked list built
// around a sentinel head node. Link fields live inside the payload-bearing
// node itself, so an element can migrate between lists (or between a list and
// a priority queue bucket) without any copying or allocation. All insert and
// remove operations are branch-free O(1) pointer rewrites: the sentinel
// guarantees every list has at least one node, which removes all empty-list
// special cases.
package dllist

import "iter"

// Link is a node in an intrusive doubly-linked list. The zero value is not
// ready for use; obtain nodes from NewLink, or rely on an insert operation to
// overwrite both link fields.
//
// A Link is in exactly one List at a time, or isolated (self-linked), or
// locked. Locking reuses the self-referential next pointer as an out-of-band
// flag: algorithms freeze a node's participation without removing it from
// external bookkeeping that still references it. The flag is cooperative,
// not a concurrency primitive.
type Link[T any] struct {
	next, prev *Link[T]

	// Data is the caller-owned payload. The list never touches it.
	Data T
}

// NewLink returns a self-linked (isolated) node carrying data.
func NewLink[T any](data T) *Link[T] {
	l := &Link[T]{Data: data}
	l.next = l
	l.prev = l
	return l
}

// Lock marks the node as unusable in list operations until it is inserted
// again. A locked node is skipped by key-modification paths that honor the
// flag and must not be detached.
func (l *Link[T]) Lock() { l.next = l }

// IsLocked reports whether the node is locked.
func (l *Link[T]) IsLocked() bool { return l.next == l }

// Detach splices the node out of whatever list it is in by connecting its
// neighbors directly. The node's own links are left untouched, so an
// iterator positioned on the node can still advance past it; the node must
// not be reused until it is inserted again or locked.
//
// Detach panics if the node is locked.
func (l *Link[T]) Detach() {
	if l.IsLocked() {
		panic("dllist: detach of locked node")
	}
	n := l.next
	p := l.prev
	p.next = n
	n.prev = p
}

// Next returns the node after l in its list. Stepping off the last element
// yields the list's sentinel (see List.End).
func (l *Link[T]) Next() *Link[T] { return l.next }

// Prev returns the node before l in its list.
func (l *Link[T]) Prev() *Link[T] { return l.prev }

// attach inserts node immediately after l in the circular chain.
func (l *Link[T]) attach(node *Link[T]) {
	node.next = l.next
	l.next.prev = node
	l.next = node
	node.prev = l
}

// List is a sentinel-headed circular doubly-linked list of Links. It owns no
// nodes: callers allocate Links (typically embedded in larger records) and
// hand them to the list, which only manages their link fields.
//
// The zero value must be initialized with Init before use; NewList does both.
// A List must not be copied after initialization, since the sentinel links
// point into the List itself.
type List[T any] struct {
	head Link[T]
}

// NewList returns an initialized empty list.
func NewList[T any]() *List[T] {
	l := &List[T]{}
	l.Init()
	return l
}

// Init self-links the sentinel, making the list empty and ready for use.
// It is intended for lists created in place, e.g. inside a slice.
func (l *List[T]) Init() {
	l.head.next = &l.head
	l.head.prev = &l.head
}

// IsEmpty reports whether the list holds no content nodes.
func (l *List[T]) IsEmpty() bool { return l.head.next == &l.head }

// Clear detaches all nodes at once by resetting the sentinel. The nodes
// themselves are untouched and remain owned by the caller.
func (l *List[T]) Clear() {
	l.head.next = &l.head
	l.head.prev = &l.head
}

// AppendLeft inserts node at the front of the list.
func (l *List[T]) AppendLeft(node *Link[T]) { l.head.attach(node) }

// Append inserts node at the back of the list.
func (l *List[T]) Append(node *Link[T]) { l.head.prev.attach(node) }

// PopLeft removes and returns the front node. It panics on an empty list.
func (l *List[T]) PopLeft() *Link[T] {
	if l.IsEmpty() {
		panic("dllist: pop from empty list")
	}
	res := l.head.next
	res.Detach()
	return res
}

// Pop removes and returns the back node. It panics on an empty list.
func (l *List[T]) Pop() *Link[T] {
	if l.IsEmpty() {
		panic("dllist: pop from empty list")
	}
	res := l.head.prev
	res.Detach()
	return res
}

// Front returns the first node, or the sentinel terminator when the list is
// empty.
func (l *List[T]) Front() *Link[T] { return l.head.next }

// Back returns the last node, or the sentinel terminator when the list is
// empty.
func (l *List[T]) Back() *Link[T] { return l.head.prev }

// End returns the sentinel terminator. The manual traversal pattern is
//
//	for it := l.Front(); it != l.End(); it = it.Next() { ... }
//
// Detaching the node just visited is safe; detaching a node the traversal
// has not reached yet is not.
func (l *List[T]) End() *Link[T] { return &l.head }

// All returns an iterator over the list's nodes from front to back. The loop
// body may detach the node it was just handed.
func (l *List[T]) All() iter.Seq[*Link[T]] {
	return func(yield func(*Link[T]) bool) {
		for cur := l.head.next; cur != &l.head; cur = cur.next {
			if !yield(cur) {
				return
			}
		}
	}
}

// Package robin provides a round-robin cycle over the parts 0..n-1 with an
// exclusion view: iterating Exclude(k) visits every other part once,
// starting after k and wrapping around. Multi-way partitioning passes use it
// to consider all destination parts except the one a vertex currently
// occupies.
package robin

import (
	"iter"

	"golang.org/x/exp/constraints"
)

type slNode[T constraints.Integer] struct {
	next *slNode[T]
	key  T
}

// Robin is a circular singly-linked cycle of part keys, laid out in one
// contiguous arena so construction is a single allocation. It is immutable
// after New and must not be copied, since the nodes link into the arena.
type Robin[T constraints.Integer] struct {
	cycle []slNode[T]
}

// New builds a cycle over the parts 0..numParts-1. It panics if numParts is
// not positive.
func New[T constraints.Integer](numParts T) *Robin[T] {
	if numParts < 1 {
		panic("robin: need at least one part")
	}
	r := &Robin[T]{cycle: make([]slNode[T], numParts)}
	prev := &r.cycle[numParts-1]
	for i := range r.cycle {
		r.cycle[i].key = T(i)
		prev.next = &r.cycle[i]
		prev = &r.cycle[i]
	}
	return r
}

// Exclude iterates the numParts-1 parts other than fromPart, in cycle order
// starting at fromPart+1.
func (r *Robin[T]) Exclude(fromPart T) iter.Seq[T] {
	stop := &r.cycle[fromPart]
	return func(yield func(T) bool) {
		for cur := stop.next; cur != stop; cur = cur.next {
			if !yield(cur.key) {
				return
			}
		}
	}
}

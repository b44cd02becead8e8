package bpqueue

import "iter"

// Iterator walks the queue from the current maximum bucket downwards,
// flattening the per-bucket lists into one descending-key sequence. Within a
// bucket, items are visited front to back.
//
// The iterator snapshots the maximum bucket index when created, so it is not
// stable under arbitrary concurrent mutation of the queue. The one supported
// mutation pattern is consuming the item just visited: Detach leaves the
// removed node's own links intact, so advancing from it still works.
type Iterator[T any] struct {
	q      *Queue[T]
	curkey uint32
	cur    *Item[T]
}

// Iter returns an iterator positioned before the first (highest-key) item.
func (q *Queue[T]) Iter() Iterator[T] {
	return Iterator[T]{q: q, curkey: q.max}
}

// Next advances to the next item in descending key order and reports whether
// one exists. Iteration terminates upon reaching the permanent sentinel item
// housed in bucket 0.
func (it *Iterator[T]) Next() bool {
	if it.cur == nil {
		it.cur = it.q.bucket[it.curkey].Front()
	} else {
		it.cur = it.cur.Next()
		for it.cur == it.q.bucket[it.curkey].End() {
			for {
				it.curkey--
				if !it.q.bucket[it.curkey].IsEmpty() {
					break
				}
			}
			it.cur = it.q.bucket[it.curkey].Front()
		}
	}
	return it.cur != &it.q.sentinel
}

// Item returns the item Next advanced to. It is valid only after Next has
// returned true.
func (it *Iterator[T]) Item() *Item[T] { return it.cur }

// All returns a range-over-func view of the queue in descending key order.
// The loop body may detach or pop the item it was just handed; any other
// mutation invalidates the traversal.
func (q *Queue[T]) All() iter.Seq[*Item[T]] {
	return func(yield func(*Item[T]) bool) {
		it := q.Iter()
		for it.Next() {
			if !yield(it.cur) {
				return
			}
		}
	}
}

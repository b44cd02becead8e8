// Package bpqueue implements a bounded priority queue with integer keys in a
// closed range [a, b]. One intrusive doubly-linked bucket list per key value
// gives O(1) insert, O(1) removal of the maximum, and amortized O(1) key
// adjustment, which is what iterative gain-bucket algorithms in the
// Fiduccia-Mattheyses family need: many items repeatedly change priority and
// migrate between the queue and other linked structures without copying.
//
// The queue does not own its items. Callers allocate Items (usually embedded
// in larger per-vertex records) and the queue only ever attaches and detaches
// them; Clear drops all membership without touching item storage. A permanent
// sentinel item occupies bucket 0, so the downward scan that maintains the
// running maximum never needs a bounds check, and GetMax on an empty queue
// reports a-1, a value guaranteed to lie outside the valid range.
//
// The queue is single-threaded by design: no internal synchronization, no
// blocking, every operation runs to completion. Precondition violations
// (out-of-range key, pop on an empty queue, detaching a locked item) are
// programmer errors and panic; the one designed exception is ModifyKey on a
// locked item, which is a silent no-op so algorithms can freeze an item's
// participation for a pass.
package bpqueue

import "github.com/fmpart/gainbucket/dllist"

// Entry is the payload carried by every queued item: the caller's value plus
// the queue-internal translated key. The key is meaningless outside the queue
// that set it.
type Entry[T any] struct {
	// Value is the caller's payload.
	Value T

	key uint32
}

// Item is the intrusive node type accepted by Queue. The same node may be
// referenced by the owning algorithm's other bookkeeping while it is queued;
// the queue claims exclusive list membership only, never ownership.
type Item[T any] = dllist.Link[Entry[T]]

// NewItem returns an isolated item carrying value, ready to be appended.
func NewItem[T any](value T) *Item[T] {
	return dllist.NewLink(Entry[T]{Value: value})
}

// Queue is a bounded priority queue over keys in [a, b]. It must be created
// with New and must not be copied afterwards, since the bucket sentinels link
// into the queue itself.
type Queue[T any] struct {
	sentinel Item[T]
	bucket   []dllist.List[Entry[T]]
	max      uint32
	offset   int32
	high     uint32
}

// New constructs a queue for keys in the closed range [a, b]. It allocates
// b-a+2 buckets; bucket 0 is reserved and permanently holds the built-in
// sentinel item, so from the structural standpoint it is never empty.
//
// New panics if a > b. The bucket array size is fixed for the queue's
// lifetime.
func New[T any](a, b int32) *Queue[T] {
	if a > b {
		panic("bpqueue: invalid key range")
	}
	q := &Queue[T]{
		bucket: make([]dllist.List[Entry[T]], uint32(b-a)+2),
		offset: a - 1,
	}
	q.high = uint32(b - q.offset)
	for i := range q.bucket {
		q.bucket[i].Init()
	}
	q.bucket[0].AppendLeft(&q.sentinel)
	return q
}

// IsEmpty reports whether no item is queued.
func (q *Queue[T]) IsEmpty() bool { return q.max == 0 }

// GetMax returns the highest key currently present. On an empty queue it
// returns a-1, which is outside [a, b] and therefore a safe sentinel value.
func (q *Queue[T]) GetMax() int32 { return q.offset + int32(q.max) }

// Clear detaches every item without destroying item storage. The key range
// is retained.
func (q *Queue[T]) Clear() {
	for q.max > 0 {
		q.bucket[q.max].Clear()
		q.max--
	}
}

// SetKey stores the translated key k-(a-1) into the item without touching
// bucket membership. It pre-stages a key for AppendLeftDirect.
func (q *Queue[T]) SetKey(it *Item[T], gain int32) {
	it.Data.key = uint32(gain - q.offset)
}

// AppendLeftDirect inserts the item using the key previously staged with
// SetKey. It panics if no valid key is staged.
func (q *Queue[T]) AppendLeftDirect(it *Item[T]) {
	key := it.Data.key
	if key == 0 || key > q.high {
		panic("bpqueue: staged key out of range")
	}
	if q.max < key {
		q.max = key
	}
	q.bucket[key].AppendLeft(it)
}

// AppendLeft inserts the item at the front of the bucket for key k. Ties on
// k pop in LIFO order. It panics if k lies outside [a, b].
func (q *Queue[T]) AppendLeft(it *Item[T], k int32) {
	q.bucket[q.setKeyChecked(it, k)].AppendLeft(it)
}

// Append inserts the item at the back of the bucket for key k. Ties on k pop
// in FIFO order. It panics if k lies outside [a, b].
func (q *Queue[T]) Append(it *Item[T], k int32) {
	q.bucket[q.setKeyChecked(it, k)].Append(it)
}

func (q *Queue[T]) setKeyChecked(it *Item[T], k int32) uint32 {
	if k <= q.offset {
		panic("bpqueue: key below range")
	}
	key := uint32(k - q.offset)
	if key > q.high {
		panic("bpqueue: key above range")
	}
	it.Data.key = key
	if q.max < key {
		q.max = key
	}
	return key
}

// PopLeft removes and returns the front item of the highest non-empty
// bucket. It panics on an empty queue.
//
// If the bucket becomes empty, the running maximum is moved down until it
// lands on a non-empty bucket; the permanent sentinel in bucket 0 terminates
// the scan. Each decrement is paid for by an earlier insert into that
// bucket, so the scan is amortized O(1).
func (q *Queue[T]) PopLeft() *Item[T] {
	if q.max == 0 {
		panic("bpqueue: pop from empty queue")
	}
	res := q.bucket[q.max].PopLeft()
	for q.bucket[q.max].IsEmpty() {
		q.max--
	}
	return res
}

// DecreaseKey moves a queued item down by delta and reinserts it at the back
// of its new bucket, so ties resolve FIFO. It panics if delta is zero, if
// the item would drop to or below the reserved bucket 0, or if the item is
// locked.
//
// A decrease cannot create a bucket above the running maximum, so the
// downward scan starts from the current maximum, not from the item's bucket.
func (q *Queue[T]) DecreaseKey(it *Item[T], delta uint32) {
	if delta == 0 {
		panic("bpqueue: zero delta")
	}
	it.Detach()
	it.Data.key -= delta
	key := it.Data.key
	if key == 0 || key > q.high {
		panic("bpqueue: key out of range after decrease")
	}
	q.bucket[key].Append(it) // FIFO
	if q.max < key {
		q.max = key
		return
	}
	for q.bucket[q.max].IsEmpty() {
		q.max--
	}
}

// IncreaseKey moves a queued item up by delta and reinserts it at the front
// of its new bucket, so ties resolve LIFO: the most recently increased item
// pops first. It panics if delta is zero, if the new key exceeds the range,
// or if the item is locked.
func (q *Queue[T]) IncreaseKey(it *Item[T], delta uint32) {
	if delta == 0 {
		panic("bpqueue: zero delta")
	}
	it.Detach()
	it.Data.key += delta
	key := it.Data.key
	if key == 0 || key > q.high {
		panic("bpqueue: key out of range after increase")
	}
	q.bucket[key].AppendLeft(it) // LIFO
	if q.max < key {
		q.max = key
	}
}

// ModifyKey adjusts a queued item's key by a signed delta, dispatching to
// IncreaseKey or DecreaseKey. A locked item is ignored: this is the
// documented path by which algorithms freeze an item's participation. A zero
// delta does nothing.
func (q *Queue[T]) ModifyKey(it *Item[T], delta int32) {
	if it.IsLocked() {
		return
	}
	switch {
	case delta > 0:
		q.IncreaseKey(it, uint32(delta))
	case delta < 0:
		q.DecreaseKey(it, uint32(-delta))
	}
}

// Detach removes a queued item without returning it, then restores the
// running maximum with the usual downward scan. It panics if the item is
// locked.
func (q *Queue[T]) Detach(it *Item[T]) {
	it.Detach()
	for q.bucket[q.max].IsEmpty() {
		q.max--
	}
}

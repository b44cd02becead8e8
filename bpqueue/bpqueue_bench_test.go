// bpqueue_bench_test.go — micro-benchmarks for the bounded priority queue
// ======================================================================
// Isolates the cost of each core operation in tight loops. All benchmarks
// are allocation-free after setup: items are preallocated and only their
// intrusive links move.

package bpqueue

import (
	"math/rand"
	"testing"
)

// seededQueue returns a queue over [-128, 127] preloaded with n items at
// random keys.
func seededQueue(n int) (*Queue[int], []*Item[int]) {
	q := New[int](-128, 127)
	rng := rand.New(rand.NewSource(1))
	items := make([]*Item[int], n)
	for i := range items {
		items[i] = NewItem(i)
		q.Append(items[i], int32(rng.Intn(256)-128))
	}
	return q, items
}

// BenchmarkAppendPopCycle measures a full insert+remove round trip at the
// running maximum.
func BenchmarkAppendPopCycle(b *testing.B) {
	q, _ := seededQueue(1024)
	it := NewItem(-1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.AppendLeft(it, 127)
		q.PopLeft()
	}
}

// BenchmarkModifyKey measures detach+reinsert for small signed deltas, the
// hot operation of gain-update loops.
func BenchmarkModifyKey(b *testing.B) {
	q, items := seededQueue(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := items[i&1023]
		// Step toward zero so keys never leave the range.
		if int32(it.Data.key)+q.offset > 0 {
			q.ModifyKey(it, -1)
		} else {
			q.ModifyKey(it, 1)
		}
	}
}

// BenchmarkDetachAppend measures removal from an arbitrary bucket followed
// by reinsertion at the same key.
func BenchmarkDetachAppend(b *testing.B) {
	q, items := seededQueue(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := items[i&1023]
		k := int32(it.Data.key) + q.offset
		q.Detach(it)
		q.Append(it, k)
	}
}

// BenchmarkGetMax measures the O(1) maximum probe.
func BenchmarkGetMax(b *testing.B) {
	q, _ := seededQueue(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.GetMax()
	}
}

// BenchmarkIterate measures a full descending traversal of 1024 items.
func BenchmarkIterate(b *testing.B) {
	q, _ := seededQueue(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range q.All() {
			n++
		}
		if n != 1024 {
			b.Fatalf("traversal saw %d items", n)
		}
	}
}

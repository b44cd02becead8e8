// Package mapadapter exposes a caller-owned slice through a map-shaped
// interface without taking ownership: writes go through to the original
// slice. It differs from lict only in ownership; pick lict when the view
// should own its backing storage.
package mapadapter

import "iter"

// MapAdapter is a shallow dict-like view over a slice. The zero value is an
// empty view.
type MapAdapter[T any] struct {
	lst []T
}

// New wraps lst. The adapter shares lst's backing array with the caller.
func New[T any](lst []T) MapAdapter[T] {
	return MapAdapter[T]{lst: lst}
}

// Get returns the value stored under key; out-of-range keys panic.
func (m MapAdapter[T]) Get(key int) T { return m.lst[key] }

// Set stores value under key, writing through to the caller's slice.
func (m MapAdapter[T]) Set(key int, value T) { m.lst[key] = value }

// At is Get with an explicit membership check.
func (m MapAdapter[T]) At(key int) T {
	if !m.Contains(key) {
		panic("mapadapter: key out of range")
	}
	return m.lst[key]
}

// Contains reports whether key is a valid index.
func (m MapAdapter[T]) Contains(key int) bool { return key >= 0 && key < len(m.lst) }

// Len returns the number of keys.
func (m MapAdapter[T]) Len() int { return len(m.lst) }

// All iterates (key, value) pairs in ascending key order.
func (m MapAdapter[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for key, value := range m.lst {
			if !yield(key, value) {
				return
			}
		}
	}
}

// Package lict offers a dict-like view over a dense vector: keys are the
// indices 0..len-1 and lookups are plain slice indexing. It serves algorithms
// that speak a mapping protocol (contains, items, keys) against data that is
// really contiguous, e.g. per-vertex tables keyed by vertex id.
package lict

import "iter"

// Lict adapts a slice to behave like an integer-keyed map. It takes
// ownership of the slice passed to New.
type Lict[T any] struct {
	lst []T
}

// New wraps lst in a dict-like view.
func New[T any](lst []T) *Lict[T] {
	return &Lict[T]{lst: lst}
}

// Get returns the value stored under key. Like a map index expression, the
// key must be present; out-of-range keys panic.
func (l *Lict[T]) Get(key int) T { return l.lst[key] }

// Set stores value under key.
func (l *Lict[T]) Set(key int, value T) { l.lst[key] = value }

// At is Get with an explicit membership check.
func (l *Lict[T]) At(key int) T {
	if !l.Contains(key) {
		panic("lict: key out of range")
	}
	return l.lst[key]
}

// Contains reports whether key is a valid index.
func (l *Lict[T]) Contains(key int) bool { return key >= 0 && key < len(l.lst) }

// Len returns the number of keys.
func (l *Lict[T]) Len() int { return len(l.lst) }

// Values returns the underlying slice. Mutations are visible through the
// view.
func (l *Lict[T]) Values() []T { return l.lst }

// Keys iterates the keys in ascending order.
func (l *Lict[T]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for key := range l.lst {
			if !yield(key) {
				return
			}
		}
	}
}

// Items iterates (key, value) pairs in ascending key order.
func (l *Lict[T]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for key, value := range l.lst {
			if !yield(key, value) {
				return
			}
		}
	}
}

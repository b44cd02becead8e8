package mapadapter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasics(t *testing.T) {
	v := []float64{0.6, 0.7, 0.8}
	s := New(v)
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(1))
	require.False(t, s.Contains(3))

	count := 0
	for range s.All() {
		count++
	}
	require.Equal(t, 3, count)
}

func TestWriteThrough(t *testing.T) {
	v := []int{10, 20, 30}
	s := New(v)
	s.Set(1, 99)
	require.Equal(t, 99, v[1]) // the caller's slice sees the write
	require.Equal(t, 99, s.Get(1))
	require.Equal(t, 99, s.At(1))
	require.Panics(t, func() { s.At(3) })
}

func TestAllEnumerates(t *testing.T) {
	s := New([]string{"a", "b", "c"})
	var keys []int
	var vals []string
	for k, v := range s.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	require.Equal(t, []int{0, 1, 2}, keys)
	require.Equal(t, []string{"a", "b", "c"}, vals)
}

func TestZeroValue(t *testing.T) {
	var s MapAdapter[int]
	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains(0))
	for range s.All() {
		t.Fatal("empty view yielded a pair")
	}
}

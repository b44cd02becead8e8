package robin

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExcludeCount(t *testing.T) {
	rr := New[uint8](6)
	count := 0
	for range rr.Exclude(2) {
		count++
	}
	require.Equal(t, 5, count)
}

func TestExcludeSkipsPart(t *testing.T) {
	rr := New[uint8](6)
	count := 0
	sum := 0
	for i := range rr.Exclude(2) {
		count++
		sum += int(i)
	}
	require.Equal(t, 5, count)
	require.Equal(t, 0+1+3+4+5, sum)
}

func TestExcludeCycleOrder(t *testing.T) {
	rr := New[int](6)
	var got []int
	for i := range rr.Exclude(2) {
		got = append(got, i)
	}
	require.Equal(t, []int{3, 4, 5, 0, 1}, got)
}

func TestSinglePart(t *testing.T) {
	rr := New[int](1)
	for range rr.Exclude(0) {
		t.Fatal("one-part cycle must exclude everything")
	}
}

func TestInvalidPartCount(t *testing.T) {
	require.Panics(t, func() { New[int](0) })
}

func TestExcludeStress(t *testing.T) {
	const numParts = 1000
	rr := New[int](numParts)
	rng := rand.New(rand.NewSource(1))

	for iter := 0; iter < 100; iter++ {
		excluded := rng.Intn(numParts)

		expected := make([]int, 0, numParts-1)
		for i := 0; i < numParts; i++ {
			if i != excluded {
				expected = append(expected, i)
			}
		}

		actual := make([]int, 0, numParts-1)
		for i := range rr.Exclude(excluded) {
			actual = append(actual, i)
		}
		sort.Ints(actual)

		require.Len(t, actual, numParts-1)
		require.Equal(t, expected, actual)
	}
}

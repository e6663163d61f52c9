package qsort

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	seq := []int{5, 3, 1, 4, 2}
	Slice(seq, cmp.Compare)
	require.Equal(t, []int{1, 2, 3, 4, 5}, seq)
}

func TestSlice_EmptyAndSingle(t *testing.T) {
	var empty []int
	Slice(empty, cmp.Compare)
	require.Empty(t, empty)

	single := []string{"x"}
	Slice(single, cmp.Compare)
	require.Equal(t, []string{"x"}, single)
}

func TestSlice_DuplicatesPreserved(t *testing.T) {
	seq := []int{2, 2, 1}
	Slice(seq, cmp.Compare)
	require.Equal(t, []int{1, 2, 2}, seq)
}

func TestSlice_AlreadySorted(t *testing.T) {
	// Worst case for the rightmost pivot, still correct
	seq := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Slice(seq, cmp.Compare)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, seq)
}

func TestSlice_ReverseComparator(t *testing.T) {
	seq := []int{3, 1, 2}
	Slice(seq, func(a, b int) int {
		return cmp.Compare(b, a)
	})
	require.Equal(t, []int{3, 2, 1}, seq)
}

func TestSlice_StructsByField(t *testing.T) {
	type row struct {
		name string
		rank int
	}
	seq := []row{{"c", 3}, {"a", 1}, {"b", 2}}
	Slice(seq, func(a, b row) int {
		return cmp.Compare(a.rank, b.rank)
	})
	require.Equal(t, []row{{"a", 1}, {"b", 2}, {"c", 3}}, seq)
}

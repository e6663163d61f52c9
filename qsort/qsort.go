// Package qsort implements the in-place comparator sort backing
// stream.CollectSorted, exposed standalone.
//
// The algorithm is a recursive 2-way-partition quicksort: the pivot is
// always the rightmost element of the current partition and partitioning is
// Lomuto-style. Average cost is O(n log n); the worst case is O(n^2) and is
// hit by already-sorted input, since there is no randomization or
// median-of-three pivot selection. Callers sorting attacker-influenced data
// should account for the quadratic worst case. The sort is not stable.
package qsort

// Slice sorts seq in place. cmp must return a negative value when a orders
// before b, zero when they are equivalent, and a positive value otherwise.
func Slice[T any](seq []T, cmp func(a, b T) int) {
	sortRange(seq, 0, len(seq)-1, cmp)
}

func sortRange[T any](seq []T, a, b int, cmp func(a, b T) int) {
	if a >= b {
		return
	}
	p := partition(seq, a, b, cmp)
	sortRange(seq, a, p-1, cmp)
	sortRange(seq, p+1, b, cmp)
}

// partition places seq[b] at its final sorted position within [a, b] and
// returns that position. Elements ordering <= pivot end up left of it.
func partition[T any](seq []T, a, b int, cmp func(a, b T) int) int {
	pivot := seq[b]
	wall := a - 1
	for i := a; i < b; i++ {
		if cmp(seq[i], pivot) <= 0 {
			wall++
			seq[i], seq[wall] = seq[wall], seq[i]
		}
	}
	wall++
	seq[wall], seq[b] = seq[b], seq[wall]
	return wall
}

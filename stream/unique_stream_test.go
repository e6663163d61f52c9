package stream

import (
	"context"
	"testing"

	"github.com/KevinTyrrell/fadestream"
	"github.com/stretchr/testify/require"
)

func TestStream_UniqueByValue(t *testing.T) {
	// Duplicates are dropped; first occurrence order is kept
	require.Equal(
		t,
		[]int{1, 2, 3},
		UniqueByValue(Indexed(1, 2, 2, 3, 1)).MustCollectValues(),
	)
}

func TestStream_UniqueByValueIgnoresKeys(t *testing.T) {
	require.Equal(
		t,
		[]fadestream.Entry[string, int]{
			fadestream.EntryOf("a", 1),
			fadestream.EntryOf("b", 2),
		},
		UniqueByValue(Just(
			fadestream.EntryOf("a", 1),
			fadestream.EntryOf("b", 2),
			fadestream.EntryOf("c", 1),
		)).MustCollectEntries(),
	)
}

func TestStream_UniqueWithKeyer(t *testing.T) {
	// Dedupe by value parity: one odd, one even survive
	require.Equal(
		t,
		[]int{7, 10},
		Unique(Indexed(7, 9, 10, 12, 13), func(_ int, v int) int {
			return v % 2
		}).MustCollectValues(),
	)
}

func TestStream_UniqueNilKeyer(t *testing.T) {
	_, err := Unique[int, int, int](Indexed(1, 2), nil).Collect(context.Background())
	require.ErrorIs(t, err, fadestream.ErrTypeMismatch)
}

func TestStream_UniqueSeenSetResetsBetweenCollections(t *testing.T) {
	s := UniqueByValue(Indexed(1, 1, 2))

	// The seen-set is allocated at open and released at close, so a fresh
	// consumption of the same static stream starts clean
	require.Equal(t, []int{1, 2}, s.MustCollectValues())
	require.Equal(t, []int{1, 2}, s.MustCollectValues())
}

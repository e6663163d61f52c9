package stream

import (
	"context"
	"testing"

	"github.com/KevinTyrrell/fadestream"
	"github.com/stretchr/testify/require"
)

func TestStream_NumRangeAscending(t *testing.T) {
	require.Equal(
		t,
		[]fadestream.Entry[int, int]{
			fadestream.EntryOf(1, 1),
			fadestream.EntryOf(2, 2),
			fadestream.EntryOf(3, 3),
			fadestream.EntryOf(4, 4),
			fadestream.EntryOf(5, 5),
		},
		NumRange(1, 5).MustCollectEntries(),
	)
}

func TestStream_NumRangeDescending(t *testing.T) {
	// Step sign is inferred from the direction of the bounds
	require.Equal(
		t,
		[]int{5, 4, 3, 2, 1},
		NumRange(5, 1).MustCollectValues(),
	)
}

func TestStream_NumRangeSingleElement(t *testing.T) {
	require.Equal(t, []int{3}, NumRange(3, 3).MustCollectValues())
}

func TestStream_NumRangeStep(t *testing.T) {
	require.Equal(t, []int{1, 3, 5}, NumRangeStep(1, 5, 2).MustCollectValues())
	require.Equal(t, []int{1, 3, 5}, NumRangeStep(1, 6, 2).MustCollectValues())
	require.Equal(t, []int{10, 7, 4, 1}, NumRangeStep(10, 0, -3).MustCollectValues())
}

func TestStream_NumRangeFloatStep(t *testing.T) {
	require.Equal(
		t,
		[]float64{0, 0.5, 1, 1.5, 2},
		NumRangeStep(0.0, 2.0, 0.5).MustCollectValues(),
	)
}

func TestStream_NumRangeZeroStep(t *testing.T) {
	_, err := NumRangeStep(1, 5, 0).Collect(context.Background())
	require.ErrorIs(t, err, fadestream.ErrIllegalArgument)
}

func TestStream_NumRangeNonTerminatingStep(t *testing.T) {
	_, err := NumRangeStep(1, 5, -1).Collect(context.Background())
	require.ErrorIs(t, err, fadestream.ErrIllegalArgument)

	_, err = NumRangeStep(5, 1, 1).Collect(context.Background())
	require.ErrorIs(t, err, fadestream.ErrIllegalArgument)
}

func TestStream_NumRangeIsReusable(t *testing.T) {
	s := NumRange(1, 3)

	require.Equal(t, []int{1, 2, 3}, s.MustCollectValues())
	require.Equal(t, []int{1, 2, 3}, s.MustCollectValues())
}

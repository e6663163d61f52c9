package stream

import (
	"context"
	"testing"

	"github.com/KevinTyrrell/fadestream"
	"github.com/stretchr/testify/require"
)

func TestCollectGroupedBy(t *testing.T) {
	// Accumulator order within a group reflects pull order
	require.Equal(
		t,
		map[string][]string{
			"a": {"a", "a"},
			"b": {"b"},
		},
		MustCollectGroupedBy(
			Just(
				fadestream.EntryOf(1, "a"),
				fadestream.EntryOf(2, "b"),
				fadestream.EntryOf(3, "a"),
			),
			func(_ int, v string) string {
				return v
			},
		),
	)
}

func TestCollectGrouped_CustomAccumulator(t *testing.T) {
	// Sum values per parity group
	result, err := CollectGrouped(
		context.Background(),
		NumRange(1, 6),
		func(_ int, v int) string {
			if v%2 == 0 {
				return "even"
			}
			return "odd"
		},
		func() int {
			return 0
		},
		func(_ int, v int, acc int) int {
			return acc + v
		},
	)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"even": 12, "odd": 9}, result)
}

func TestCollectGrouped_NilCallbacks(t *testing.T) {
	ctx := context.Background()

	_, err := CollectGroupedBy[int, int, int](ctx, Indexed(1), nil)
	require.ErrorIs(t, err, fadestream.ErrTypeMismatch)

	_, err = CollectGrouped(
		ctx,
		Indexed(1),
		func(int, int) int { return 0 },
		nil,
		func(_ int, _ int, acc []int) []int { return acc },
	)
	require.ErrorIs(t, err, fadestream.ErrTypeMismatch)
}

func TestCollectCountGroupedBy(t *testing.T) {
	result, err := CollectCountGroupedBy(
		context.Background(),
		Indexed("ant", "bee", "axolotl"),
		func(_ int, v string) byte {
			return v[0]
		},
	)
	require.NoError(t, err)
	require.Equal(t, map[byte]uint64{'a': 2, 'b': 1}, result)
}

func TestCollectToMapStrict(t *testing.T) {
	result, err := CollectToMapStrict(context.Background(), Indexed("a", "b"))
	require.NoError(t, err)
	require.Equal(t, map[int]string{1: "a", 2: "b"}, result)

	_, err = CollectToMapStrict(
		context.Background(),
		Just(fadestream.EntryOf("k", 1), fadestream.EntryOf("k", 2)),
	)
	require.Error(t, err)
}

func TestCollectReadOnly(t *testing.T) {
	view, err := CollectReadOnly(context.Background(), Indexed("a", "b", "c"))
	require.NoError(t, err)

	require.Equal(t, 3, view.Len())
	v, ok := view.Get(2)
	require.True(t, ok)
	require.Equal(t, "b", v)

	// The view rejects writes
	require.ErrorIs(t, view.Set(4, "d"), fadestream.ErrUnsupportedOperation)
	require.Equal(t, 3, view.Len())
}

func TestCollectSorted(t *testing.T) {
	require.Equal(
		t,
		[]int{1, 2, 3, 4, 5},
		MustCollectSorted(Indexed(5, 3, 1, 4, 2), fadestream.ComparatorForOrdered[int]()),
	)

	require.Empty(
		t,
		MustCollectSorted(Empty[int, int](), fadestream.ComparatorForOrdered[int]()),
	)
}

func TestCollectSorted_NilComparator(t *testing.T) {
	_, err := CollectSorted(context.Background(), Indexed(1), nil)
	require.ErrorIs(t, err, fadestream.ErrTypeMismatch)
}

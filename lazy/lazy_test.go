package lazy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLazy_GetAndOptional(t *testing.T) {
	require.Equal(t, 42, Just(42).MustGet())
	require.Nil(t, Empty[int]().MustGetOptional())

	_, err := Empty[int]().Get(context.Background())
	require.Error(t, err)
}

func TestLazy_OrElse(t *testing.T) {
	require.Equal(t, 7, Empty[int]().MustOrElse(7))
	require.Equal(t, 1, Just(1).MustOrElse(7))
}

func TestLazy_Error(t *testing.T) {
	boom := fmt.Errorf("fetch failed")

	_, err := Error[int](boom).Get(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestLazy_FilterAndMap(t *testing.T) {
	even := func(v int) bool {
		return v%2 == 0
	}

	require.Nil(t, Just(3).Filter(even).MustGetOptional())
	require.Equal(t, 4, Just(4).Filter(even).MustGet())
	require.Equal(t, "4!", Map(Just(4), func(v int) string {
		return fmt.Sprintf("%d!", v)
	}).MustGet())
}

func TestLazy_IsEmpty(t *testing.T) {
	empty, err := Empty[int]().IsEmpty(context.Background())
	require.NoError(t, err)
	require.True(t, empty)

	empty, err = Just(1).IsEmpty(context.Background())
	require.NoError(t, err)
	require.False(t, empty)
}

func TestLazy_FetcherRunsPerGet(t *testing.T) {
	calls := 0
	l := New(func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	})

	require.Equal(t, 1, l.MustGet())
	require.Equal(t, 2, l.MustGet())
}

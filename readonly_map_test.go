package fadestream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadOnlyMap(t *testing.T) {
	view := NewReadOnlyMap(map[string]int{"a": 1, "b": 2})

	require.Equal(t, 2, view.Len())
	require.True(t, view.Has("a"))
	require.False(t, view.Has("z"))

	v, ok := view.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)

	require.ElementsMatch(t, []string{"a", "b"}, view.Keys())
	require.ElementsMatch(t, []int{1, 2}, view.Values())

	collected := map[string]int{}
	for k, v := range view.Seq2() {
		collected[k] = v
	}
	require.Equal(t, map[string]int{"a": 1, "b": 2}, collected)
}

func TestReadOnlyMap_SetRefused(t *testing.T) {
	view := NewReadOnlyMap(map[string]int{"a": 1})

	require.ErrorIs(t, view.Set("b", 2), ErrUnsupportedOperation)
	require.Equal(t, 1, view.Len())
}

package stream

import (
	"context"
	"io"
	"slices"

	"github.com/KevinTyrrell/fadestream"
	"github.com/KevinTyrrell/fadestream/internal/util"
)

// Just creates a stream over the given entries, in the given order.
func Just[K comparable, V any](entries ...fadestream.Entry[K, V]) Stream[K, V] {
	return NewStream(&justStream[K, V]{slcOrig: entries})
}

// Indexed creates a stream over the given values, keyed by their 1-based
// ordinal position.
func Indexed[V any](values ...V) Stream[int, V] {
	entries := make([]fadestream.Entry[int, V], len(values))
	for i, v := range values {
		entries[i] = fadestream.Entry[int, V]{Key: i + 1, Value: v}
	}
	return NewStream(&justStream[int, V]{slcOrig: entries})
}

type justStream[K comparable, V any] struct {
	slcOrig []fadestream.Entry[K, V]
	slc     []fadestream.Entry[K, V]
}

func (j *justStream[K, V]) Open(_ context.Context) error {
	if j.slcOrig != nil {
		j.slc = slices.Clone(j.slcOrig)
	}
	return nil
}

func (j *justStream[K, V]) Close() {
	j.slc = nil
}

func (j *justStream[K, V]) Emit(ctx context.Context) (K, V, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[K](), util.DefaultValue[V](), ctx.Err()
	}
	if len(j.slc) == 0 {
		return util.DefaultValue[K](), util.DefaultValue[V](), io.EOF
	}
	e := j.slc[0]
	j.slc = j.slc[1:]
	return e.Key, e.Value, nil
}

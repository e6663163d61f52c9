package stream

import (
	"context"
	"io"

	"github.com/KevinTyrrell/fadestream"
	"github.com/KevinTyrrell/fadestream/internal/util"
)

// FromMap creates a stream over the entries of the provided map. The entry
// set is snapshotted when the stream is opened (i.e. at first pull); pairs
// are produced in the map's native, unspecified iteration order. Mutating
// the map while the snapshot is being taken is undefined behavior.
func FromMap[K comparable, V any](mp map[K]V) Stream[K, V] {
	return NewStream(&mapSourcedStream[K, V]{src: mp})
}

type mapSourcedStream[K comparable, V any] struct {
	src     map[K]V
	entries []fadestream.Entry[K, V]
}

func (m *mapSourcedStream[K, V]) Open(_ context.Context) error {
	m.entries = make([]fadestream.Entry[K, V], 0, len(m.src))
	for k, v := range m.src {
		m.entries = append(m.entries, fadestream.Entry[K, V]{Key: k, Value: v})
	}
	return nil
}

func (m *mapSourcedStream[K, V]) Close() {
	m.entries = nil
}

func (m *mapSourcedStream[K, V]) Emit(ctx context.Context) (K, V, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[K](), util.DefaultValue[V](), ctx.Err()
	}
	if len(m.entries) == 0 {
		return util.DefaultValue[K](), util.DefaultValue[V](), io.EOF
	}
	e := m.entries[0]
	m.entries = m.entries[1:]
	return e.Key, e.Value, nil
}

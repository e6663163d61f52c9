package fadestream

import "iter"

// ReadOnlyMap is an accessor-only view over a key/value mapping. It is the
// capability-split counterpart of a plain map: holders of the view can look
// up and enumerate, never write. Set exists only to refuse, mirroring the
// write-rejection contract of the engine's immutable results.
type ReadOnlyMap[K comparable, V any] struct {
	m map[K]V
}

// NewReadOnlyMap wraps the given map. The view borrows the map; the caller
// must not mutate it afterwards.
func NewReadOnlyMap[K comparable, V any](m map[K]V) *ReadOnlyMap[K, V] {
	return &ReadOnlyMap[K, V]{m: m}
}

func (r *ReadOnlyMap[K, V]) Get(k K) (V, bool) {
	v, ok := r.m[k]
	return v, ok
}

func (r *ReadOnlyMap[K, V]) Has(k K) bool {
	_, ok := r.m[k]
	return ok
}

func (r *ReadOnlyMap[K, V]) Len() int {
	return len(r.m)
}

func (r *ReadOnlyMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(r.m))
	for k := range r.m {
		keys = append(keys, k)
	}
	return keys
}

func (r *ReadOnlyMap[K, V]) Values() []V {
	values := make([]V, 0, len(r.m))
	for _, v := range r.m {
		values = append(values, v)
	}
	return values
}

// Seq2 enumerates the view in the backing map's (unspecified) order.
func (r *ReadOnlyMap[K, V]) Seq2() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range r.m {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Set always fails with ErrUnsupportedOperation.
func (r *ReadOnlyMap[K, V]) Set(K, V) error {
	return UnsupportedOperationf("map view is read-only")
}

package stream

import (
	"context"

	"github.com/KevinTyrrell/fadestream"
)

type uniqueStreamProvider[K comparable, V any, T comparable] struct {
	src   ProviderFunc[K, V]
	keyer func(k K, v V) T
	seen  map[T]struct{}
}

// Unique filters out pairs whose uniqueness token has been seen before. The
// token is computed by keyer once per pulled pair; pairs with an
// already-recorded token are discarded without being forwarded. The seen-set
// holds strong references and lives for the stream's lifecycle; it is
// released when the stream is closed.
func Unique[K comparable, V any, T comparable](src Stream[K, V], keyer func(k K, v V) T) Stream[K, V] {
	if keyer == nil {
		return Error[K, V](fadestream.TypeMismatchf("unique keyer must be non-nil"))
	}
	up := &uniqueStreamProvider[K, V, T]{src: src.provider, keyer: keyer}
	lifecycles := make([]Lifecycle, 0, len(src.allLifecycleElement)+1)
	lifecycles = append(lifecycles, src.allLifecycleElement...)
	lifecycles = append(lifecycles, NewLifecycle(up.open, up.close))
	return newStream(up.emit, lifecycles)
}

// UniqueByValue dedupes by the value component regardless of key.
func UniqueByValue[K comparable, V comparable](src Stream[K, V]) Stream[K, V] {
	return Unique(src, func(_ K, v V) V {
		return v
	})
}

func (up *uniqueStreamProvider[K, V, T]) open(_ context.Context) error {
	up.seen = make(map[T]struct{})
	return nil
}

func (up *uniqueStreamProvider[K, V, T]) close() {
	up.seen = nil
}

func (up *uniqueStreamProvider[K, V, T]) emit(ctx context.Context) (K, V, error) {
	for {
		k, v, err := up.src(ctx)
		if err != nil {
			return k, v, err
		}
		token := up.keyer(k, v)
		if _, ok := up.seen[token]; ok {
			continue
		}
		up.seen[token] = struct{}{}
		return k, v, nil
	}
}

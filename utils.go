package fadestream

import (
	"cmp"
	"context"
)

// Entry defines a key/value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// EntryOf is a convenience constructor for Entry literals.
func EntryOf[K comparable, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{Key: k, Value: v}
}

type Comparator[T any] func(one, other T) int

type Comparable[T any] interface {
	Compare(other T) int
}

func ComparatorForComparable[T Comparable[T]]() Comparator[T] {
	return func(one, other T) int {
		return one.Compare(other)
	}
}

func ComparatorForOrdered[T cmp.Ordered]() Comparator[T] {
	return func(one, other T) int {
		return cmp.Compare(one, other)
	}
}

type Mapper[K1 comparable, V1 any, K2 comparable, V2 any] func(k K1, v V1) (K2, V2)
type MapperWithErr[K1 comparable, V1 any, K2 comparable, V2 any] func(k K1, v V1) (K2, V2, error)
type MapperWithErrAndCtx[K1 comparable, V1 any, K2 comparable, V2 any] func(ctx context.Context, k K1, v V1) (K2, V2, error)

type Predicate[K comparable, V any] func(k K, v V) bool
type PredicateWithErr[K comparable, V any] func(k K, v V) (bool, error)
type PredicateWithErrAndCtx[K comparable, V any] func(ctx context.Context, k K, v V) (bool, error)

// Observer is a side-effect-only callback, used by Peek and Consume.
type Observer[K comparable, V any] func(k K, v V)

// Combiner folds one pair from each of two streams into a single output pair.
// Slots belonging to an exhausted side arrive as zero values.
type Combiner[KA comparable, VA any, KB comparable, VB any, KC comparable, VC any] func(ka KA, va VA, kb KB, vb VB) (KC, VC)

func (m Mapper[K1, V1, K2, V2]) ToErrCtx() MapperWithErrAndCtx[K1, V1, K2, V2] {
	return func(_ context.Context, k K1, v V1) (K2, V2, error) {
		nk, nv := m(k, v)
		return nk, nv, nil
	}
}

func (m MapperWithErr[K1, V1, K2, V2]) ToErrCtx() MapperWithErrAndCtx[K1, V1, K2, V2] {
	return func(_ context.Context, k K1, v V1) (K2, V2, error) {
		return m(k, v)
	}
}

func (p Predicate[K, V]) ToErrCtx() PredicateWithErrAndCtx[K, V] {
	return func(_ context.Context, k K, v V) (bool, error) {
		return p(k, v), nil
	}
}

func (p PredicateWithErr[K, V]) ToErrCtx() PredicateWithErrAndCtx[K, V] {
	return func(_ context.Context, k K, v V) (bool, error) {
		return p(k, v)
	}
}

// Number covers the numeric kinds NumRange can step over.
type Number interface {
	~int | ~int64 | ~float32 | ~float64
}

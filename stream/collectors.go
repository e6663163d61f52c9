package stream

import (
	"context"
	"fmt"

	"github.com/KevinTyrrell/fadestream"
	"github.com/KevinTyrrell/fadestream/qsort"
)

// CollectGrouped drains the stream and reduces it into per-group
// accumulators. For each pair, classifier chooses the group; the group's
// accumulator is created lazily by factory on first use and replaced by the
// result of combine for every pair routed to it. Group order in the result
// is unspecified; combine sees pairs in pull order.
func CollectGrouped[K comparable, V any, G comparable, A any](
	ctx context.Context,
	s Stream[K, V],
	classifier func(k K, v V) G,
	factory func() A,
	combine func(k K, v V, acc A) A,
) (map[G]A, error) {
	if classifier == nil {
		return nil, fadestream.TypeMismatchf("grouping classifier must be non-nil")
	}
	if factory == nil {
		return nil, fadestream.TypeMismatchf("grouping accumulator factory must be non-nil")
	}
	if combine == nil {
		return nil, fadestream.TypeMismatchf("grouping combine step must be non-nil")
	}
	result := make(map[G]A)
	err := s.Consume(ctx, func(k K, v V) {
		g := classifier(k, v)
		acc, ok := result[g]
		if !ok {
			acc = factory()
		}
		result[g] = combine(k, v, acc)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CollectGroupedBy groups the stream's values into per-group slices, the
// default group-by reduction. Slice order within a group equals pull order.
func CollectGroupedBy[K comparable, V any, G comparable](
	ctx context.Context,
	s Stream[K, V],
	classifier func(k K, v V) G,
) (map[G][]V, error) {
	return CollectGrouped(
		ctx,
		s,
		classifier,
		func() []V {
			return nil
		},
		func(_ K, v V, acc []V) []V {
			return append(acc, v)
		},
	)
}

// MustCollectGroupedBy is a convenience function that panics if the stream errors.
func MustCollectGroupedBy[K comparable, V any, G comparable](
	s Stream[K, V],
	classifier func(k K, v V) G,
) map[G][]V {
	result, err := CollectGroupedBy(context.Background(), s, classifier)
	if err != nil {
		panic(err)
	}
	return result
}

// CollectCountGroupedBy counts the stream's pairs per group.
func CollectCountGroupedBy[K comparable, V any, G comparable](
	ctx context.Context,
	s Stream[K, V],
	classifier func(k K, v V) G,
) (map[G]uint64, error) {
	if classifier == nil {
		return nil, fadestream.TypeMismatchf("grouping classifier must be non-nil")
	}
	result := make(map[G]uint64)
	err := s.Consume(ctx, func(k K, v V) {
		result[classifier(k, v)]++
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CollectToMapStrict collects the stream into a map, failing on duplicate
// keys. Use Stream.Collect for last-write-wins coalescing instead.
func CollectToMapStrict[K comparable, V any](ctx context.Context, s Stream[K, V]) (map[K]V, error) {
	result := make(map[K]V)
	err := s.ConsumeWithErr(ctx, func(k K, v V) error {
		if existing, ok := result[k]; ok {
			return fmt.Errorf("duplicate key %v for values %v and %v", k, v, existing)
		}
		result[k] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CollectReadOnly collects the stream (last-write-wins) into an
// accessor-only map view.
func CollectReadOnly[K comparable, V any](ctx context.Context, s Stream[K, V]) (*fadestream.ReadOnlyMap[K, V], error) {
	result, err := s.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return fadestream.NewReadOnlyMap(result), nil
}

// CollectSorted collects the stream's values in pull order and sorts them in
// place with qsort. The sort is not stable; see the qsort package for the
// worst-case caveats.
func CollectSorted[K comparable, V any](
	ctx context.Context,
	s Stream[K, V],
	comparator fadestream.Comparator[V],
) ([]V, error) {
	if comparator == nil {
		return nil, fadestream.TypeMismatchf("sorted comparator must be non-nil")
	}
	values, err := s.CollectValues(ctx)
	if err != nil {
		return nil, err
	}
	qsort.Slice(values, comparator)
	return values, nil
}

// MustCollectSorted is a convenience function that panics if the stream errors.
func MustCollectSorted[K comparable, V any](s Stream[K, V], comparator fadestream.Comparator[V]) []V {
	result, err := CollectSorted(context.Background(), s, comparator)
	if err != nil {
		panic(err)
	}
	return result
}

package stream

import (
	"context"

	"github.com/KevinTyrrell/fadestream"
	"github.com/KevinTyrrell/fadestream/internal/util"
)

// Map maps the source stream to a target stream using the provided mapper.
// The mapper runs once per pulled pair, after the pull; when the source ends,
// the mapped stream ends without invoking the mapper. A mapper-produced pair
// is final: there is no skip-by-returning-absent, use MapWhileFiltering to
// fuse mapping and filtering.
func Map[K1 comparable, V1 any, K2 comparable, V2 any](
	src Stream[K1, V1],
	mapper fadestream.Mapper[K1, V1, K2, V2],
) Stream[K2, V2] {
	if mapper == nil {
		return Error[K2, V2](fadestream.TypeMismatchf("map mapper must be non-nil"))
	}
	return MapWithErrAndCtx(src, mapper.ToErrCtx())
}

// MapWithErr maps the source stream to a target stream using the provided mapper.
func MapWithErr[K1 comparable, V1 any, K2 comparable, V2 any](
	src Stream[K1, V1],
	mapper fadestream.MapperWithErr[K1, V1, K2, V2],
) Stream[K2, V2] {
	if mapper == nil {
		return Error[K2, V2](fadestream.TypeMismatchf("map mapper must be non-nil"))
	}
	return MapWithErrAndCtx(src, mapper.ToErrCtx())
}

// MapWithErrAndCtx maps the source stream to a target stream using the provided mapper.
func MapWithErrAndCtx[K1 comparable, V1 any, K2 comparable, V2 any](
	src Stream[K1, V1],
	mapper fadestream.MapperWithErrAndCtx[K1, V1, K2, V2],
) Stream[K2, V2] {
	if mapper == nil {
		return Error[K2, V2](fadestream.TypeMismatchf("map mapper must be non-nil"))
	}
	return newStream[K2, V2](
		func(ctx context.Context) (K2, V2, error) {
			k, v, err := src.provider(ctx)
			if err != nil {
				return util.DefaultValue[K2](), util.DefaultValue[V2](), err
			}
			return mapper(ctx, k, v)
		}, src.allLifecycleElement,
	)
}

// MapWhileFiltering maps a stream while allowing the mapper to drop pairs by
// returning a nil entry. This is a convenience to avoid chaining Map and
// Filter and do it in one go.
func MapWhileFiltering[K1 comparable, V1 any, K2 comparable, V2 any](
	src Stream[K1, V1],
	mapper func(k K1, v V1) *fadestream.Entry[K2, V2],
) Stream[K2, V2] {
	if mapper == nil {
		return Error[K2, V2](fadestream.TypeMismatchf("map mapper must be non-nil"))
	}
	return newStream[K2, V2](
		func(ctx context.Context) (K2, V2, error) {
			for {
				k, v, err := src.provider(ctx)
				if err != nil {
					return util.DefaultValue[K2](), util.DefaultValue[V2](), err
				}
				if e := mapper(k, v); e != nil {
					return e.Key, e.Value, nil
				}
			}
		}, src.allLifecycleElement,
	)
}

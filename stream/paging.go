package stream

import (
	"context"
	"io"

	"github.com/KevinTyrrell/fadestream/internal/util"
)

func (s Stream[K, V]) Limit(limit int) Stream[K, V] {
	if limit <= 0 {
		return Empty[K, V]()
	}
	alreadyConsumed := 1
	return newStream[K, V](func(ctx context.Context) (K, V, error) {
		if alreadyConsumed > limit {
			return util.DefaultValue[K](), util.DefaultValue[V](), io.EOF
		}

		k, v, err := s.provider(ctx)
		if err != nil {
			// this covers for both EOF and any other error
			return util.DefaultValue[K](), util.DefaultValue[V](), err
		}
		alreadyConsumed++
		return k, v, nil
	}, s.allLifecycleElement)
}

func (s Stream[K, V]) Skip(skip int) Stream[K, V] {
	alreadySkipped := false
	return newStream[K, V](func(ctx context.Context) (K, V, error) {
		if ctx.Err() != nil {
			return util.DefaultValue[K](), util.DefaultValue[V](), ctx.Err()
		}
		if !alreadySkipped {
			alreadySkipped = true
			for i := 0; i < skip; i++ {
				k, v, err := s.provider(ctx)
				if err != nil {
					return k, v, err
				}
			}
		}
		return s.provider(ctx)
	}, s.allLifecycleElement)
}

func (s Stream[K, V]) Page(pageNum int, pageSize int) Stream[K, V] {
	if pageNum < 0 || pageSize <= 0 {
		return Empty[K, V]()
	}
	skipped := pageNum * pageSize
	return s.Skip(skipped).Limit(pageSize)
}

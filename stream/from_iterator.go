package stream

import (
	"context"
	"errors"
	"io"
	"iter"

	"github.com/KevinTyrrell/fadestream/internal/util"
)

// FromSeq2 creates a stream over a standard key/value iterator.
func FromSeq2[K comparable, V any](seq iter.Seq2[K, V]) Stream[K, V] {
	var next func() (K, V, bool)
	var stop func()
	return NewSimpleStream(func(ctx context.Context) (K, V, error) {
		if ctx.Err() != nil {
			return util.DefaultValue[K](), util.DefaultValue[V](), ctx.Err()
		}
		k, v, ok := next()
		if !ok {
			return util.DefaultValue[K](), util.DefaultValue[V](), io.EOF
		}
		return k, v, nil
	}, WithOpenFuncOption(func(_ context.Context) error {
		next, stop = iter.Pull2(seq)
		return nil
	}), WithCloseFuncOption(func() {
		if stop != nil {
			stop()
		}
	}))
}

var errStopIteration = errors.New("stop iteration")

// Seq2 adapts the stream to a standard key/value iterator, materializing it
// as the caller ranges. A stream error surfaces as a panic since the iterator
// protocol has no error channel; prefer the Consume family when errors are
// expected.
func (s Stream[K, V]) Seq2() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		err := s.ConsumeWithErr(context.Background(), func(k K, v V) error {
			if !yield(k, v) {
				return errStopIteration
			}
			return nil
		})
		if err != nil && err != errStopIteration {
			panic(err)
		}
	}
}

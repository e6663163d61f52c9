package stream

import (
	"context"
	"fmt"
	"io"

	"github.com/KevinTyrrell/fadestream"
	"github.com/KevinTyrrell/fadestream/internal/util"
	"github.com/KevinTyrrell/fadestream/lazy"
)

// Stream is a lazy, single-pass cursor over key/value pairs. A Stream does
// nothing until a terminal operation pulls it; no combinator buffers more
// than the current pair. Exactly one owner may pull a given stream;
// copying the handle does not fork the iteration.
type Stream[K comparable, V any] struct {
	provider            ProviderFunc[K, V]
	allLifecycleElement []Lifecycle
}

// ProviderFunc yields the next pair, or io.EOF when the stream is done.
type ProviderFunc[K comparable, V any] func(ctx context.Context) (K, V, error)

func NewStream[K comparable, V any](provider Provider[K, V]) Stream[K, V] {
	return newStream(provider.Emit, []Lifecycle{provider})
}

func newStream[K comparable, V any](providerFunc ProviderFunc[K, V], allLifecycleElement []Lifecycle) Stream[K, V] {
	return Stream[K, V]{provider: providerFunc, allLifecycleElement: allLifecycleElement}
}

type CreateStreamOption struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

func WithOpenFuncOption(openFunc func(ctx context.Context) error) CreateStreamOption {
	return CreateStreamOption{openFunc: openFunc}
}

func WithCloseFuncOption(closeFunc func()) CreateStreamOption {
	return CreateStreamOption{closeFunc: closeFunc}
}

// NewSimpleStream creates a Stream from a bare provider func. A nil provider
// func fails with fadestream.ErrTypeMismatch when the stream is consumed.
func NewSimpleStream[K comparable, V any](providerFunc ProviderFunc[K, V], options ...CreateStreamOption) Stream[K, V] {
	if providerFunc == nil {
		return Error[K, V](fadestream.TypeMismatchf("stream provider func must be non-nil"))
	}
	var openFunc func(ctx context.Context) error
	var closeFunc func()

	for _, option := range options {
		if option.openFunc != nil {
			openFunc = option.openFunc
		}
		if option.closeFunc != nil {
			closeFunc = option.closeFunc
		}
	}

	var lifeCycleElements []Lifecycle
	if openFunc != nil || closeFunc != nil {
		lifeCycleElements = []Lifecycle{
			NewLifecycle(openFunc, closeFunc),
		}
	}
	return Stream[K, V]{provider: providerFunc, allLifecycleElement: lifeCycleElements}
}

// Consume consumes the entire stream and applies the provided function to each pair (sometimes named ForEach).
// It returns an error if the stream materialization fails in any stage of the pipeline.
// For empty streams, it returns immediately with no error.
func (s Stream[K, V]) Consume(ctx context.Context, f fadestream.Observer[K, V]) error {
	return s.ConsumeWithErr(ctx, func(k K, v V) error {
		f(k, v)
		return nil
	})
}

// MustConsume is a convenience method that panics if the stream errors.
func (s Stream[K, V]) MustConsume(f fadestream.Observer[K, V]) {
	err := s.Consume(context.Background(), f)
	if err != nil {
		panic(err)
	}
}

// ConsumeWithErr consumes the entire stream and applies the provided function to each pair.
// Allows returning an error from the function to stop the pipeline.
func (s Stream[K, V]) ConsumeWithErr(ctx context.Context, f func(k K, v V) error) error {
	return s.ConsumeWithErrAndCtx(ctx, func(_ context.Context, k K, v V) error {
		return f(k, v)
	})
}

// ConsumeWithErrAndCtx consumes the entire stream and applies the provided function to each pair,
// passing through the context allowing the function to gracefully cancel.
func (s Stream[K, V]) ConsumeWithErrAndCtx(ctx context.Context, f func(ctx context.Context, k K, v V) error) error {
	if f == nil {
		return fadestream.TypeMismatchf("consume callback must be non-nil")
	}
	if s.provider == nil {
		return fadestream.NilPointerf("stream has no provider")
	}

	cancelFunc, err := doOpenStream(ctx, s)
	if err != nil {
		return err
	}

	// If we reach here, all lifecycle elements have been opened successfully
	// We can defer closing them until the end of the function
	defer func() {
		doCloseSubStream(s)
		cancelFunc()
	}()

	for {
		// Make sure to check if the context is done before trying to get the next pair
		if ctx.Err() != nil {
			return ctx.Err()
		}
		k, v, err := s.provider(ctx)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		err = f(ctx, k, v)
		if err != nil {
			return err
		}
	}
}

// Collect materializes the stream into a map. If two pulled pairs share a
// key, the later pull overwrites the earlier (last-write-wins).
func (s Stream[K, V]) Collect(ctx context.Context) (map[K]V, error) {
	result := make(map[K]V)
	err := s.Consume(ctx, func(k K, v V) {
		result[k] = v
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MustCollect is a convenience method that panics if the stream errors.
// Should be used for testing purposes or when streams are static.
func (s Stream[K, V]) MustCollect() map[K]V {
	result, err := s.Collect(context.Background())
	if err != nil {
		panic(err)
	}
	return result
}

// CollectValues materializes the stream's values into a slice, in pull order.
func (s Stream[K, V]) CollectValues(ctx context.Context) ([]V, error) {
	var result []V
	err := s.Consume(ctx, func(_ K, v V) {
		result = append(result, v)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MustCollectValues is a convenience method that panics if the stream errors.
func (s Stream[K, V]) MustCollectValues() []V {
	result, err := s.CollectValues(context.Background())
	if err != nil {
		panic(err)
	}
	return result
}

// CollectEntries materializes the stream into an entry slice, in pull order.
// Unlike Collect, duplicate keys are preserved.
func (s Stream[K, V]) CollectEntries(ctx context.Context) ([]fadestream.Entry[K, V], error) {
	var result []fadestream.Entry[K, V]
	err := s.Consume(ctx, func(k K, v V) {
		result = append(result, fadestream.Entry[K, V]{Key: k, Value: v})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MustCollectEntries is a convenience method that panics if the stream errors.
func (s Stream[K, V]) MustCollectEntries() []fadestream.Entry[K, V] {
	result, err := s.CollectEntries(context.Background())
	if err != nil {
		panic(err)
	}
	return result
}

func (s Stream[K, V]) Filter(predicate fadestream.Predicate[K, V]) Stream[K, V] {
	if predicate == nil {
		return Error[K, V](fadestream.TypeMismatchf("filter predicate must be non-nil"))
	}
	return s.FilterWithErrAndCtx(predicate.ToErrCtx())
}

func (s Stream[K, V]) FilterWithErr(predicate fadestream.PredicateWithErr[K, V]) Stream[K, V] {
	if predicate == nil {
		return Error[K, V](fadestream.TypeMismatchf("filter predicate must be non-nil"))
	}
	return s.FilterWithErrAndCtx(predicate.ToErrCtx())
}

func (s Stream[K, V]) FilterWithErrAndCtx(predicate fadestream.PredicateWithErrAndCtx[K, V]) Stream[K, V] {
	if predicate == nil {
		return Error[K, V](fadestream.TypeMismatchf("filter predicate must be non-nil"))
	}
	return newStream[K, V](func(ctx context.Context) (K, V, error) {
		for {
			k, v, err := s.provider(ctx)
			if err != nil {
				return k, v, err
			}
			shouldKeep, err := predicate(ctx, k, v)
			if err != nil {
				// Wrapping errors, e.g. we don't want EOF accidentally returned from here
				return util.DefaultValue[K](), util.DefaultValue[V](), fmt.Errorf("filter failed for stream: %w", err)
			}
			if shouldKeep {
				return k, v, nil
			}
		}
	}, s.allLifecycleElement)
}

// Peek allows observing the pairs of the stream without consuming them.
// The observer is invoked only (and if) the stream is materialized, once per
// forwarded pair, and must not alter the pair.
func (s Stream[K, V]) Peek(observer fadestream.Observer[K, V]) Stream[K, V] {
	if observer == nil {
		return Error[K, V](fadestream.TypeMismatchf("peek observer must be non-nil"))
	}
	return newStream[K, V](func(ctx context.Context) (K, V, error) {
		k, v, err := s.provider(ctx)
		if err != nil {
			return k, v, err
		}
		observer(k, v)
		return k, v, nil
	}, s.allLifecycleElement)
}

// Count counts the number of pairs in the stream (materializes the stream).
func (s Stream[K, V]) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.Consume(ctx, func(K, V) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MustCount is a convenience method that panics if the stream errors.
func (s Stream[K, V]) MustCount() int {
	count, err := s.Count(context.Background())
	if err != nil {
		panic(err)
	}
	return count
}

// FindFirst lazily fetches the first pair of the stream, if any.
func (s Stream[K, V]) FindFirst() lazy.Lazy[fadestream.Entry[K, V]] {
	return lazy.NewOptional(func(ctx context.Context) (*fadestream.Entry[K, V], error) {
		entries, err := s.Limit(1).CollectEntries(ctx)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			return &entries[0], nil
		}
		return nil, nil
	})
}

func (s Stream[K, V]) IsEmpty(ctx context.Context) (bool, error) {
	return s.FindFirst().IsEmpty(ctx)
}

func (s Stream[K, V]) WithAdditionalLifecycle(lch Lifecycle) Stream[K, V] {
	return newStream(s.provider, append(s.allLifecycleElement, lch))
}

func doOpenStream[K comparable, V any](ctx context.Context, s Stream[K, V]) (context.CancelFunc, error) {
	ctxWithCancel, cancelFunc := context.WithCancel(ctx)
	// Running all lifecycle elements
	for lcIdx, l := range s.allLifecycleElement {
		err := l.Open(ctxWithCancel)
		if err != nil {
			// Close only the successfully opened lifecycle elements
			for i := 0; i < lcIdx; i++ {
				s.allLifecycleElement[i].Close()
			}
			// Cancel the context to stop any ongoing operations
			cancelFunc()

			return nil, fmt.Errorf("failed to open stream lifecycle element %d: %w", lcIdx, err)
		}
	}
	return cancelFunc, nil
}

func doCloseSubStream[K comparable, V any](s Stream[K, V]) {
	for _, l := range s.allLifecycleElement {
		l.Close()
	}
}

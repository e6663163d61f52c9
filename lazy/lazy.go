package lazy

import (
	"context"
	"fmt"

	"github.com/KevinTyrrell/fadestream/internal/util"
)

// Lazy is a deferred computation of an optional value. The fetcher runs on
// every Get; a Lazy holds no cached state of its own.
type Lazy[T any] struct {
	fetcher func(ctx context.Context) (*T, error)
}

// NewOptional creates a Lazy whose fetcher may legitimately produce no value.
func NewOptional[T any](fetcher func(ctx context.Context) (*T, error)) Lazy[T] {
	return Lazy[T]{fetcher: fetcher}
}

// New creates a Lazy whose fetcher always produces a value (or an error).
func New[T any](fetcher func(ctx context.Context) (T, error)) Lazy[T] {
	return Lazy[T]{fetcher: func(ctx context.Context) (*T, error) {
		v, err := fetcher(ctx)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}}
}

// Just creates a Lazy already holding a value.
func Just[T any](v T) Lazy[T] {
	return Lazy[T]{fetcher: func(_ context.Context) (*T, error) {
		return &v, nil
	}}
}

// Empty gets a Lazy holding no value.
func Empty[T any]() Lazy[T] {
	return Lazy[T]{fetcher: func(_ context.Context) (*T, error) {
		return nil, nil
	}}
}

// Error creates a Lazy that fails with err.
func Error[T any](err error) Lazy[T] {
	return Lazy[T]{fetcher: func(_ context.Context) (*T, error) {
		return nil, err
	}}
}

// Get returns the value, or an error if the value is absent. Use GetOptional
// when absence is an acceptable outcome.
func (o Lazy[T]) Get(ctx context.Context) (T, error) {
	v, err := o.fetcher(ctx)
	if err != nil {
		return util.DefaultValue[T](), err
	}
	if v == nil {
		return util.DefaultValue[T](), fmt.Errorf("lazy value is empty")
	}
	return *v, nil
}

// GetOptional returns the value, or nil if the lazy value is empty.
func (o Lazy[T]) GetOptional(ctx context.Context) (*T, error) {
	return o.fetcher(ctx)
}

// MustGet panics on error or absence; use for testing or static values.
func (o Lazy[T]) MustGet() T {
	v, err := o.Get(context.Background())
	if err != nil {
		panic(err)
	}
	return v
}

// MustGetOptional panics on error; use for testing or static values.
func (o Lazy[T]) MustGetOptional() *T {
	v, err := o.GetOptional(context.Background())
	if err != nil {
		panic(err)
	}
	return v
}

// OrElse returns the value, or v if the value is absent.
func (o Lazy[T]) OrElse(ctx context.Context, v T) (T, error) {
	d, err := o.fetcher(ctx)
	if err != nil {
		return util.DefaultValue[T](), err
	}
	if d == nil {
		return v, nil
	}
	return *d, nil
}

// MustOrElse panics on error; use for testing or static values.
func (o Lazy[T]) MustOrElse(v T) T {
	d, err := o.fetcher(context.Background())
	if err != nil {
		panic(err)
	}
	if d == nil {
		return v
	}
	return *d
}

// IsEmpty reports whether the lazy value is absent.
func (o Lazy[T]) IsEmpty(ctx context.Context) (bool, error) {
	d, err := o.fetcher(ctx)
	if err != nil {
		return false, err
	}
	return d == nil, nil
}

// Filter keeps the value only if the predicate accepts it.
func (o Lazy[T]) Filter(predicate func(T) bool) Lazy[T] {
	return NewOptional(func(ctx context.Context) (*T, error) {
		d, err := o.fetcher(ctx)
		if err != nil || d == nil {
			return nil, err
		}
		if !predicate(*d) {
			return nil, nil
		}
		return d, nil
	})
}

// Map transforms the value of a Lazy, preserving absence.
func Map[S any, T any](src Lazy[S], mapper func(S) T) Lazy[T] {
	return NewOptional(func(ctx context.Context) (*T, error) {
		d, err := src.fetcher(ctx)
		if err != nil || d == nil {
			return nil, err
		}
		return util.Pointer(mapper(*d)), nil
	})
}

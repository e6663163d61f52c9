package stream

import "context"

// Provider is what needs to be implemented to expose a stream.
// It includes the lifecycle methods Open and Close,
// and a "generator method" Emit that returns the next pair in the stream.
type Provider[K comparable, V any] interface {
	Lifecycle

	// Emit returns the next key/value pair in the stream, or an error.
	// When the stream is done, it should return io.EOF; once done it must
	// keep returning io.EOF on every further call.
	// Emit is never called concurrently from multiple goroutines.
	// It is the provider's responsibility to respect context cancellation if
	// supported; the package checks for cancellation between calls to Emit.
	Emit(ctx context.Context) (K, V, error)
}

// Lifecycle is an interface that is used to add functionality to the stream lifecycle.
type Lifecycle interface {
	Open(ctx context.Context) error
	Close()
}

type lifecycleWrapper struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

func NewLifecycle(openFunc func(ctx context.Context) error, closeFunc func()) Lifecycle {
	return &lifecycleWrapper{openFunc: openFunc, closeFunc: closeFunc}
}

func (s *lifecycleWrapper) Open(ctx context.Context) error {
	if s.openFunc != nil {
		return s.openFunc(ctx)
	}
	return nil
}

func (s *lifecycleWrapper) Close() {
	if s.closeFunc != nil {
		s.closeFunc()
	}
}

package stream

import (
	"context"

	"github.com/KevinTyrrell/fadestream/internal/util"
)

// Error creates a stream that fails with err before producing any pair.
// It is the vehicle for construction-time validation failures: the error is
// raised when the stream is opened, so it reaches the terminal operation's
// caller ahead of the first element.
func Error[K comparable, V any](err error) Stream[K, V] {
	return newStream[K, V](func(ctx context.Context) (K, V, error) {
		return util.DefaultValue[K](), util.DefaultValue[V](), err
	}, []Lifecycle{NewLifecycle(func(_ context.Context) error {
		return err
	}, func() {
		// NOP
	})})
}

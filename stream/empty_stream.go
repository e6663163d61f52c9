package stream

import (
	"context"
	"io"

	"github.com/KevinTyrrell/fadestream/internal/util"
)

func Empty[K comparable, V any]() Stream[K, V] {
	return newStream(func(ctx context.Context) (K, V, error) {
		return util.DefaultValue[K](), util.DefaultValue[V](), io.EOF
	}, nil)
}

package stream

import (
	"context"
	"io"

	"github.com/KevinTyrrell/fadestream"
	"github.com/KevinTyrrell/fadestream/internal/util"
)

type flatMapProvider[K1 comparable, V1 any, K2 comparable, V2 any] struct {
	outer         ProviderFunc[K1, V1]
	expander      func(k K1, v V1) Stream[K2, V2]
	innerProvider ProviderFunc[K2, V2]
	innerClose    func()
}

// FlatMap maps each pair of the source stream to a stream of pairs and
// flattens the result into a single stream. Each inner stream is drained
// fully before the next outer pair is requested; empty inner streams yield
// nothing and are skipped. The expander is never invoked for an empty outer
// stream. Output order is outer-major, inner-minor.
func FlatMap[K1 comparable, V1 any, K2 comparable, V2 any](
	src Stream[K1, V1],
	expander func(k K1, v V1) Stream[K2, V2],
) Stream[K2, V2] {
	if expander == nil {
		return Error[K2, V2](fadestream.TypeMismatchf("flat map expander must be non-nil"))
	}
	fp := &flatMapProvider[K1, V1, K2, V2]{
		outer:    src.provider,
		expander: expander,
	}
	// The trailing lifecycle closes whatever inner stream is still open when
	// the consumer stops pulling.
	lifecycles := make([]Lifecycle, 0, len(src.allLifecycleElement)+1)
	lifecycles = append(lifecycles, src.allLifecycleElement...)
	lifecycles = append(lifecycles, NewLifecycle(nil, fp.closeInner))
	return newStream(fp.emit, lifecycles)
}

func (fp *flatMapProvider[K1, V1, K2, V2]) emit(ctx context.Context) (K2, V2, error) {
	for {
		if ctx.Err() != nil {
			return util.DefaultValue[K2](), util.DefaultValue[V2](), ctx.Err()
		}

		if fp.innerProvider == nil {
			k, v, err := fp.outer(ctx)
			if err != nil {
				// Covers both EOF and any other error
				return util.DefaultValue[K2](), util.DefaultValue[V2](), err
			}
			inner := fp.expander(k, v)
			if inner.provider == nil {
				return util.DefaultValue[K2](), util.DefaultValue[V2](),
					fadestream.NilPointerf("flat map expander returned an uninitialized stream for key %v", k)
			}
			cancel, err := doOpenStream(ctx, inner)
			if err != nil {
				return util.DefaultValue[K2](), util.DefaultValue[V2](), err
			}
			fp.innerProvider = inner.provider
			fp.innerClose = func() {
				doCloseSubStream(inner)
				cancel()
			}
		}

		k2, v2, err := fp.innerProvider(ctx)
		if err == io.EOF {
			// Current inner stream is done; move on to the next outer pair
			fp.closeInner()
			continue
		}
		if err != nil {
			return util.DefaultValue[K2](), util.DefaultValue[V2](), err
		}
		return k2, v2, nil
	}
}

func (fp *flatMapProvider[K1, V1, K2, V2]) closeInner() {
	if fp.innerClose != nil {
		fp.innerClose()
		fp.innerClose = nil
	}
	fp.innerProvider = nil
}

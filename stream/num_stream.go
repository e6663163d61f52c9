package stream

import (
	"context"
	"io"

	"github.com/KevinTyrrell/fadestream"
	"github.com/KevinTyrrell/fadestream/internal/util"
)

// NumRange produces the inclusive arithmetic progression from start to stop
// with a step of +1 or -1, inferred from the direction of the bounds. Each
// pair is (v, v).
func NumRange[N fadestream.Number](start, stop N) Stream[N, N] {
	var step N
	if start <= stop {
		step = 1
	} else {
		step = -1
	}
	return NumRangeStep(start, stop, step)
}

// NumRangeStep produces the inclusive arithmetic progression from start to
// stop advancing by step. A zero step, or a step that walks away from stop,
// fails with fadestream.ErrIllegalArgument before any pair is produced.
func NumRangeStep[N fadestream.Number](start, stop, step N) Stream[N, N] {
	if step == 0 {
		return Error[N, N](fadestream.IllegalArgumentf("num stream step must be nonzero"))
	}
	if (start < stop && step < 0) || (start > stop && step > 0) {
		return Error[N, N](fadestream.IllegalArgumentf(
			"num stream from %v to %v cannot terminate with step %v", start, stop, step))
	}
	return NewStream(&numStreamProvider[N]{start: start, stop: stop, step: step})
}

type numStreamProvider[N fadestream.Number] struct {
	start, stop, step N
	cur               N
	done              bool
}

func (np *numStreamProvider[N]) Open(_ context.Context) error {
	np.cur = np.start
	np.done = false
	return nil
}

func (np *numStreamProvider[N]) Close() {
}

func (np *numStreamProvider[N]) Emit(ctx context.Context) (N, N, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[N](), util.DefaultValue[N](), ctx.Err()
	}
	if np.done || np.pastBound() {
		np.done = true
		return util.DefaultValue[N](), util.DefaultValue[N](), io.EOF
	}
	v := np.cur
	np.cur += np.step
	return v, v, nil
}

func (np *numStreamProvider[N]) pastBound() bool {
	if np.step > 0 {
		return np.cur > np.stop
	}
	return np.cur < np.stop
}

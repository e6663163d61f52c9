package stream

import (
	"context"
	"io"

	"github.com/KevinTyrrell/fadestream"
	"github.com/KevinTyrrell/fadestream/internal/util"
)

type mergePhase int

const (
	mergePhaseBothAlive mergePhase = iota
	mergePhaseLeftOnly
	mergePhaseRightOnly
	mergePhaseDone
)

type mergeStreamsProvider[KA comparable, VA any, KB comparable, VB any, KC comparable, VC any] struct {
	left     ProviderFunc[KA, VA]
	right    ProviderFunc[KB, VB]
	combiner fadestream.Combiner[KA, VA, KB, VB, KC, VC]
	phase    mergePhase
}

// Merge combines two streams in lockstep: each pull of the merged stream
// pulls every still-alive source once and hands the four slots to the
// combiner. Once a side is exhausted its key/value slots stay at their zero
// values; the phase transitions are one-way. The merged stream's length is
// max(len(a), len(b)).
func Merge[KA comparable, VA any, KB comparable, VB any, KC comparable, VC any](
	a Stream[KA, VA],
	b Stream[KB, VB],
	combiner fadestream.Combiner[KA, VA, KB, VB, KC, VC],
) Stream[KC, VC] {
	if combiner == nil {
		return Error[KC, VC](fadestream.TypeMismatchf("merge combiner must be non-nil"))
	}
	mp := &mergeStreamsProvider[KA, VA, KB, VB, KC, VC]{
		left:     a.provider,
		right:    b.provider,
		combiner: combiner,
	}
	lifecycles := make([]Lifecycle, 0, len(a.allLifecycleElement)+len(b.allLifecycleElement))
	lifecycles = append(lifecycles, a.allLifecycleElement...)
	lifecycles = append(lifecycles, b.allLifecycleElement...)
	return newStream(mp.emit, lifecycles)
}

func (mp *mergeStreamsProvider[KA, VA, KB, VB, KC, VC]) emit(ctx context.Context) (KC, VC, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[KC](), util.DefaultValue[VC](), ctx.Err()
	}

	switch mp.phase {
	case mergePhaseBothAlive:
		ka, va, errA := mp.left(ctx)
		if errA != nil && errA != io.EOF {
			return util.DefaultValue[KC](), util.DefaultValue[VC](), errA
		}
		kb, vb, errB := mp.right(ctx)
		if errB != nil && errB != io.EOF {
			return util.DefaultValue[KC](), util.DefaultValue[VC](), errB
		}
		switch {
		case errA == io.EOF && errB == io.EOF:
			mp.phase = mergePhaseDone
			return util.DefaultValue[KC](), util.DefaultValue[VC](), io.EOF
		case errA == io.EOF:
			mp.phase = mergePhaseRightOnly
			kc, vc := mp.combiner(util.DefaultValue[KA](), util.DefaultValue[VA](), kb, vb)
			return kc, vc, nil
		case errB == io.EOF:
			mp.phase = mergePhaseLeftOnly
			kc, vc := mp.combiner(ka, va, util.DefaultValue[KB](), util.DefaultValue[VB]())
			return kc, vc, nil
		default:
			kc, vc := mp.combiner(ka, va, kb, vb)
			return kc, vc, nil
		}

	case mergePhaseLeftOnly:
		ka, va, err := mp.left(ctx)
		if err != nil {
			if err == io.EOF {
				mp.phase = mergePhaseDone
			}
			return util.DefaultValue[KC](), util.DefaultValue[VC](), err
		}
		kc, vc := mp.combiner(ka, va, util.DefaultValue[KB](), util.DefaultValue[VB]())
		return kc, vc, nil

	case mergePhaseRightOnly:
		kb, vb, err := mp.right(ctx)
		if err != nil {
			if err == io.EOF {
				mp.phase = mergePhaseDone
			}
			return util.DefaultValue[KC](), util.DefaultValue[VC](), err
		}
		kc, vc := mp.combiner(util.DefaultValue[KA](), util.DefaultValue[VA](), kb, vb)
		return kc, vc, nil

	case mergePhaseDone:
		return util.DefaultValue[KC](), util.DefaultValue[VC](), io.EOF

	default:
		return util.DefaultValue[KC](), util.DefaultValue[VC](),
			fadestream.IllegalStatef("merge stream in unknown phase %d", mp.phase)
	}
}

package lift

import (
	"time"

	"github.com/chronodb/chronos/temporal"
)

// CrossingFunc locates the instant within (t0, t1) at which two linear
// segments (a0,a1) and (b0,b1) become equal, or ok=false if they don't
// cross strictly inside the interval. Pass nil to skip turning-point
// insertion (appropriate whenever fn is itself piecewise-linear on any
// interval where both operands are, e.g. addition/subtraction).
type CrossingFunc[A, B any] func(a0, a1 A, b0, b1 B, t0, t1 time.Time) (time.Time, bool)

// BinarySequence synchronizes a and b onto their overlapping time domain
// and evaluates fn at every merged instant (plus, if crossing is
// supplied, at the exact turning point between each pair of consecutive
// merged instants). ok is false when a and b do not overlap in time or
// the synchronized result has no valid sample.
func BinarySequence[A, B, C any](
	a temporal.Sequence[A], b temporal.Sequence[B],
	fn func(A, B) C,
	resultInterp temporal.Interpolation,
	resultTraits temporal.ValueTraits[C],
	crossing CrossingFunc[A, B],
) (temporal.Sequence[C], bool, error) {
	lo, hi, loInc, hiInc, ok := SyncSequences(a, b)
	if !ok {
		return temporal.Sequence[C]{}, false, nil
	}

	aClip, okA := a.RestrictAtTimeSpan(lo, hi, loInc, hiInc)
	bClip, okB := b.RestrictAtTimeSpan(lo, hi, loInc, hiInc)
	if !okA || !okB {
		return temporal.Sequence[C]{}, false, nil
	}

	times := mergeTimes(instantTimes(aClip), instantTimes(bClip), lo, hi)
	if crossing != nil {
		times = insertCrossings(times, aClip, bClip, crossing)
	}

	instants := make([]temporal.Instant[C], 0, len(times))
	for _, t := range times {
		av, aok := aClip.ValueAt(t)
		bv, bok := bClip.ValueAt(t)
		if !aok || !bok {
			continue
		}
		instants = append(instants, temporal.NewInstant(fn(av, bv), t))
	}
	if len(instants) == 0 {
		return temporal.Sequence[C]{}, false, nil
	}

	seq, err := temporal.NewSequence(instants, loInc, hiInc, resultInterp, resultTraits)
	if err != nil {
		return temporal.Sequence[C]{}, false, err
	}

	return seq, true, nil
}

func insertCrossings[A, B any](times []time.Time, a temporal.Sequence[A], b temporal.Sequence[B], crossing CrossingFunc[A, B]) []time.Time {
	if len(times) < 2 {
		return times
	}

	out := make([]time.Time, 0, len(times)*2)
	for i := 0; i < len(times); i++ {
		out = append(out, times[i])
		if i+1 >= len(times) {
			continue
		}
		t0, t1 := times[i], times[i+1]
		a0, ok1 := a.ValueAt(t0)
		a1, ok2 := a.ValueAt(t1)
		b0, ok3 := b.ValueAt(t0)
		b1, ok4 := b.ValueAt(t1)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		if ct, ok := crossing(a0, a1, b0, b1, t0, t1); ok && ct.After(t0) && ct.Before(t1) {
			out = append(out, ct)
		}
	}

	return out
}

// BinarySequenceSet synchronizes every overlapping pair of component
// sequences between as and bs via a merge walk over their time ranges,
// collecting the resulting fragments (the caller assembles them into a
// SequenceSet via temporal.NewSequenceSet or stitches them with
// temporal.MergeSequences).
func BinarySequenceSet[A, B, C any](
	as temporal.SequenceSet[A], bs temporal.SequenceSet[B],
	fn func(A, B) C,
	resultInterp temporal.Interpolation,
	resultTraits temporal.ValueTraits[C],
	crossing CrossingFunc[A, B],
) ([]temporal.Sequence[C], error) {
	var out []temporal.Sequence[C]

	i, j := 0, 0
	for i < as.NumSequences() && j < bs.NumSequences() {
		sa, sb := as.SequenceN(i), bs.SequenceN(j)

		frag, ok, err := BinarySequence(sa, sb, fn, resultInterp, resultTraits, crossing)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, frag)
		}

		switch {
		case sa.EndTime().Before(sb.EndTime()):
			i++
		case sb.EndTime().Before(sa.EndTime()):
			j++
		default:
			i++
			j++
		}
	}

	return out, nil
}

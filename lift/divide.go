package lift

import (
	"time"

	"github.com/chronodb/chronos/temporal"
)

// Divide lifts a/b over their overlapping time domain, splitting the
// result at every instant where b crosses zero (FloatCrossing against a
// constant zero curve). The crossing instant itself is never evaluated —
// division is undefined there — so it belongs to neither fragment; the
// two fragments it separates simply leave a gap at that instant, the way
// any SequenceSet gap already reads as ValueAt ok=false.
//
// ok is false when a and b do not overlap in time, or every candidate
// fragment is swallowed by crossings (e.g. b is zero everywhere on the
// overlap).
func Divide(a, b temporal.Sequence[float64], resultInterp temporal.Interpolation, resultTraits temporal.ValueTraits[float64]) (temporal.SequenceSet[float64], bool, error) {
	lo, hi, loInc, hiInc, ok := SyncSequences(a, b)
	if !ok {
		return temporal.SequenceSet[float64]{}, false, nil
	}

	aClip, okA := a.RestrictAtTimeSpan(lo, hi, loInc, hiInc)
	bClip, okB := b.RestrictAtTimeSpan(lo, hi, loInc, hiInc)
	if !okA || !okB {
		return temporal.SequenceSet[float64]{}, false, nil
	}

	times := mergeTimes(instantTimes(aClip), instantTimes(bClip), lo, hi)
	times = insertCrossings(times, aClip, bClip, zeroCrossingOf)

	var fragments []temporal.Sequence[float64]
	var cur []temporal.Instant[float64]
	curLowerInc := loInc

	flush := func(upperInc bool) error {
		if len(cur) == 0 {
			return nil
		}
		lowerInc := curLowerInc
		if len(cur) == 1 {
			lowerInc, upperInc = true, true
		}
		seq, err := temporal.NewSequence(cur, lowerInc, upperInc, resultInterp, resultTraits)
		if err != nil {
			return err
		}
		fragments = append(fragments, seq)
		cur = nil

		return nil
	}

	for _, t := range times {
		bv, bok := bClip.ValueAt(t)
		if !bok {
			continue
		}
		if ApproxEqual(bv, 0) {
			if err := flush(true); err != nil {
				return temporal.SequenceSet[float64]{}, false, err
			}
			curLowerInc = true

			continue
		}

		av, aok := aClip.ValueAt(t)
		if !aok {
			continue
		}
		cur = append(cur, temporal.NewInstant(av/bv, t))
	}
	if err := flush(hiInc); err != nil {
		return temporal.SequenceSet[float64]{}, false, err
	}

	if len(fragments) == 0 {
		return temporal.SequenceSet[float64]{}, false, nil
	}

	set, err := temporal.NewSequenceSet(fragments, resultInterp, resultTraits)
	if err != nil {
		return temporal.SequenceSet[float64]{}, false, err
	}

	return set, true, nil
}

// zeroCrossingOf adapts FloatCrossing to locate where b alone crosses
// zero, ignoring a entirely (a constant zero curve crosses b wherever b
// changes sign).
func zeroCrossingOf(_, _, b0, b1 float64, t0, t1 time.Time) (time.Time, bool) {
	return FloatCrossing(0, 0, b0, b1, t0, t1)
}

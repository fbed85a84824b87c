// Package lift implements the lifting/synchronization engine that turns
// a pointwise function over base values into a function over temporal
// values, grounded in original_source's tfunc/tnumber_arithm family
// (meos/general/temporal_tile.c, temporal_compops.c,
// general/lifting.c): synchronize the two arguments' time domains onto a
// shared set of instants, evaluate the scalar function at each, and — for
// continuous-result operations between two Linear operands — insert the
// exact crossing instant where the operands' difference changes sign so
// the lifted result's own piecewise-linear (or step) structure is exact
// rather than a coarse resample.
package lift

import (
	"sort"
	"time"

	"github.com/chronodb/chronos/temporal"
)

// mergeTimes returns the sorted, deduplicated union of two instant-time
// slices restricted to [lo, hi].
func mergeTimes(a, b []time.Time, lo, hi time.Time) []time.Time {
	seen := make(map[int64]bool, len(a)+len(b))
	var out []time.Time
	add := func(t time.Time) {
		if t.Before(lo) || t.After(hi) {
			return
		}
		k := t.UnixNano()
		if !seen[k] {
			seen[k] = true
			out = append(out, t)
		}
	}
	for _, t := range a {
		add(t)
	}
	for _, t := range b {
		add(t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })

	return out
}

func instantTimes[T any](s temporal.Sequence[T]) []time.Time {
	times := make([]time.Time, s.NumInstants())
	for i := 0; i < s.NumInstants(); i++ {
		times[i] = s.InstantN(i).Time
	}

	return times
}

// SyncSequences computes the overlapping time domain of a and b and
// returns that domain's bounds; ok is false when they do not overlap.
// a and b themselves are not clipped.
func SyncSequences[A, B any](a temporal.Sequence[A], b temporal.Sequence[B]) (lo, hi time.Time, loInc, hiInc bool, ok bool) {
	lo, loInc = a.StartTime(), a.LowerInc
	if b.StartTime().After(lo) || (b.StartTime().Equal(lo) && !b.LowerInc) {
		lo, loInc = b.StartTime(), b.LowerInc
	}
	hi, hiInc = a.EndTime(), a.UpperInc
	if b.EndTime().Before(hi) || (b.EndTime().Equal(hi) && !b.UpperInc) {
		hi, hiInc = b.EndTime(), b.UpperInc
	}
	if lo.After(hi) || (lo.Equal(hi) && !(loInc && hiInc)) {
		return lo, hi, loInc, hiInc, false
	}

	return lo, hi, loInc, hiInc, true
}

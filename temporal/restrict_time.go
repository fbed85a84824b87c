package temporal

import (
	"sort"
	"time"

	"github.com/chronodb/chronos/spanset"
)

// microsOf and timeOfMicros convert between time.Time and the
// microsecond-since-epoch representation the span/spanset/box packages
// use for time spans (see box.TBox.TSpan, wkb's on-wire timestamp
// encoding).
func microsOf(t time.Time) int64        { return t.UnixMicro() }
func timeOfMicros(us int64) time.Time   { return time.UnixMicro(us).UTC() }

// clipTime restricts s to the time window [lo, hi] (honoring loInc/hiInc)
// intersected with s's own domain, synthesizing boundary instants for
// Step/Linear interpolation where the window doesn't land on an existing
// instant.
func (s Sequence[T]) clipTime(lo, hi time.Time, loInc, hiInc bool) (Sequence[T], bool) {
	effLo, effLoInc := s.StartTime(), s.LowerInc
	if lo.After(effLo) || (lo.Equal(effLo) && !loInc && effLoInc) {
		effLo, effLoInc = lo, loInc
	}
	effHi, effHiInc := s.EndTime(), s.UpperInc
	if hi.Before(effHi) || (hi.Equal(effHi) && !hiInc && effHiInc) {
		effHi, effHiInc = hi, hiInc
	}
	if effLo.After(effHi) || (effLo.Equal(effHi) && !(effLoInc && effHiInc)) {
		return Sequence[T]{}, false
	}

	seen := make(map[int64]bool)
	var ordered []time.Time
	add := func(t time.Time) {
		k := t.UnixNano()
		if !seen[k] {
			seen[k] = true
			ordered = append(ordered, t)
		}
	}
	add(effLo)
	for _, inst := range s.Instants {
		if !inst.Time.Before(effLo) && !inst.Time.After(effHi) {
			add(inst.Time)
		}
	}
	add(effHi)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	instants := make([]Instant[T], 0, len(ordered))
	for _, t := range ordered {
		if v, ok := s.ValueAt(t); ok {
			instants = append(instants, Instant[T]{Value: v, Time: t})
		}
	}
	if len(instants) == 0 {
		return Sequence[T]{}, false
	}

	out, err := NewSequence(instants, effLoInc, effHiInc, s.Interp, s.Traits)
	if err != nil {
		return Sequence[T]{}, false
	}

	return out, true
}

// RestrictAtInstant returns s's value at t, the restrict_at
// over a single timestamp.
func (s Sequence[T]) RestrictAtInstant(t time.Time) (Instant[T], bool) {
	v, ok := s.ValueAt(t)
	return Instant[T]{Value: v, Time: t}, ok
}

// RestrictAtTimeSpan returns the portion of s within [lo, hi].
func (s Sequence[T]) RestrictAtTimeSpan(lo, hi time.Time, loInc, hiInc bool) (Sequence[T], bool) {
	return s.clipTime(lo, hi, loInc, hiInc)
}

// RestrictMinusTimeSpan writes 0, 1, or 2 fragments of s outside
// [lo, hi] into out (length >= 2 required), matching the span package's
// out-array convention for Difference.
func (s Sequence[T]) RestrictMinusTimeSpan(lo, hi time.Time, loInc, hiInc bool, out []Sequence[T]) int {
	if len(out) < 2 {
		panic("temporal: RestrictMinusTimeSpan requires an out slice of length >= 2")
	}

	n := 0
	if left, ok := s.clipTime(s.StartTime(), lo, s.LowerInc, !loInc); ok {
		out[n] = left
		n++
	}
	if right, ok := s.clipTime(hi, s.EndTime(), !hiInc, s.UpperInc); ok {
		out[n] = right
		n++
	}

	return n
}

// RestrictMinusInstant writes the fragments of s outside {t} into out.
func (s Sequence[T]) RestrictMinusInstant(t time.Time, out []Sequence[T]) int {
	return s.RestrictMinusTimeSpan(t, t, true, true, out)
}

// RestrictAtTimestampSet returns the instants of s at any of times.
func (s Sequence[T]) RestrictAtTimestampSet(times []time.Time) []Instant[T] {
	var out []Instant[T]
	for _, t := range times {
		if v, ok := s.ValueAt(t); ok {
			out = append(out, Instant[T]{Value: v, Time: t})
		}
	}

	return out
}

// RestrictMinusTimestampSet removes each timestamp of times from s,
// returning the resulting run of fragments (possibly more than one, as
// punching a hole at an interior instant splits the sequence).
func (s Sequence[T]) RestrictMinusTimestampSet(times []time.Time) []Sequence[T] {
	frags := []Sequence[T]{s}
	for _, t := range times {
		var next []Sequence[T]
		for _, f := range frags {
			buf := make([]Sequence[T], 2)
			n := f.RestrictMinusInstant(t, buf)
			next = append(next, buf[:n]...)
		}
		frags = next
	}

	return frags
}

// RestrictAtTimeSpanSet returns the portions of s covered by any span of
// ts (whose bounds are microseconds since epoch; see microsOf).
func (s Sequence[T]) RestrictAtTimeSpanSet(ts spanset.SpanSet[int64]) []Sequence[T] {
	var out []Sequence[T]
	for i := 0; i < ts.NumSpans(); i++ {
		sp, _ := ts.SpanN(i)
		if frag, ok := s.clipTime(timeOfMicros(sp.Lower), timeOfMicros(sp.Upper), sp.LowerInc, sp.UpperInc); ok {
			out = append(out, frag)
		}
	}

	return out
}

// RestrictMinusTimeSpanSet removes every span of ts from s.
func (s Sequence[T]) RestrictMinusTimeSpanSet(ts spanset.SpanSet[int64]) []Sequence[T] {
	frags := []Sequence[T]{s}
	for i := 0; i < ts.NumSpans(); i++ {
		sp, _ := ts.SpanN(i)
		var next []Sequence[T]
		for _, f := range frags {
			buf := make([]Sequence[T], 2)
			n := f.RestrictMinusTimeSpan(timeOfMicros(sp.Lower), timeOfMicros(sp.Upper), sp.LowerInc, sp.UpperInc, buf)
			next = append(next, buf[:n]...)
		}
		frags = next
	}

	return frags
}

// RestrictAtInstant, RestrictAtTimeSpan etc. above operate per-Sequence;
// SequenceSet versions fan out across component sequences and flatten.

// RestrictAtTimeSpan returns the portions of ss within [lo, hi].
func (ss SequenceSet[T]) RestrictAtTimeSpan(lo, hi time.Time, loInc, hiInc bool) []Sequence[T] {
	var out []Sequence[T]
	for _, seq := range ss.Sequences {
		if frag, ok := seq.RestrictAtTimeSpan(lo, hi, loInc, hiInc); ok {
			out = append(out, frag)
		}
	}

	return out
}

// RestrictMinusTimeSpan removes [lo, hi] from every component sequence.
func (ss SequenceSet[T]) RestrictMinusTimeSpan(lo, hi time.Time, loInc, hiInc bool) []Sequence[T] {
	var out []Sequence[T]
	for _, seq := range ss.Sequences {
		buf := make([]Sequence[T], 2)
		n := seq.RestrictMinusTimeSpan(lo, hi, loInc, hiInc, buf)
		out = append(out, buf[:n]...)
	}

	return out
}

// RestrictAtTimestampSet returns the instants of ss at any of times.
func (ss SequenceSet[T]) RestrictAtTimestampSet(times []time.Time) []Instant[T] {
	var out []Instant[T]
	for _, seq := range ss.Sequences {
		out = append(out, seq.RestrictAtTimestampSet(times)...)
	}

	return out
}

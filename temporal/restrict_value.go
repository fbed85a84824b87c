package temporal

import (
	"sort"
	"time"

	"github.com/chronodb/chronos/span"
	"github.com/chronodb/chronos/spanset"
)

// RestrictAtValue returns the fragments of s where its value equals v
// restricting a sequence to the instants equal to a base value, dispatching per interpolation
// the way original_source's tsequence_restrict_value does
// (meos/general/temporal_restrict.c): Discrete only matches sampled
// instants, Step matches held runs, Linear also synthesizes the crossing
// instant where the segment passes through v without stopping there.
func (s Sequence[T]) RestrictAtValue(v T) []Sequence[T] {
	switch s.Interp {
	case Step:
		return s.restrictStepAtValue(v)
	case Linear:
		return s.restrictLinearAtValue(v)
	default:
		return s.restrictDiscreteAtValue(v)
	}
}

func (s Sequence[T]) restrictDiscreteAtValue(v T) []Sequence[T] {
	var out []Sequence[T]
	for _, inst := range s.Instants {
		if !s.Traits.Equal(inst.Value, v) {
			continue
		}
		if seq, err := NewSequence([]Instant[T]{inst}, true, true, s.Interp, s.Traits); err == nil {
			out = append(out, seq)
		}
	}

	return out
}

func (s Sequence[T]) restrictStepAtValue(v T) []Sequence[T] {
	n := len(s.Instants)
	var out []Sequence[T]
	for i := 0; i < n; {
		if !s.Traits.Equal(s.Instants[i].Value, v) {
			i++
			continue
		}

		start := i
		for i+1 < n && s.Traits.Equal(s.Instants[i+1].Value, v) {
			i++
		}
		end := i

		lo := s.Instants[start].Time
		loInc := start > 0 || s.LowerInc

		var hi time.Time
		var hiInc bool
		if end == n-1 {
			hi, hiInc = s.EndTime(), s.UpperInc
		} else {
			hi, hiInc = s.Instants[end+1].Time, false
		}

		if frag, ok := s.clipTime(lo, hi, loInc, hiInc); ok {
			out = append(out, frag)
		}
		i++
	}

	return out
}

func (s Sequence[T]) restrictLinearAtValue(v T) []Sequence[T] {
	n := len(s.Instants)
	if n == 1 {
		if s.Traits.Equal(s.Instants[0].Value, v) && s.LowerInc && s.UpperInc {
			if seq, err := NewSequence(s.Instants, true, true, Linear, s.Traits); err == nil {
				return []Sequence[T]{seq}
			}
		}

		return nil
	}

	var out []Sequence[T]
	atPoint := func(t time.Time) {
		if inst, ok := s.RestrictAtInstant(t); ok {
			if seq, err := NewSequence([]Instant[T]{inst}, true, true, Linear, s.Traits); err == nil {
				out = append(out, seq)
			}
		}
	}

	for i := 0; i < n-1; i++ {
		a, b := s.Instants[i], s.Instants[i+1]
		aEq, bEq := s.Traits.Equal(a.Value, v), s.Traits.Equal(b.Value, v)

		switch {
		case aEq && bEq:
			loInc := i > 0 || s.LowerInc
			hiInc := i < n-2 || s.UpperInc
			if frag, ok := s.clipTime(a.Time, b.Time, loInc, hiInc); ok {
				out = append(out, frag)
			}
		case aEq:
			if i > 0 || s.LowerInc {
				atPoint(a.Time)
			}
		case bEq:
			if i == n-2 && s.UpperInc {
				atPoint(b.Time)
			}
		default:
			if frac, ok := s.Traits.Fraction(a.Value, b.Value, v); ok && frac > 0 && frac < 1 {
				total := b.Time.Sub(a.Time)
				atPoint(a.Time.Add(time.Duration(float64(total) * frac)))
			}
		}
	}

	return out
}

// RestrictMinusValue returns s minus its restriction to v, computed as the
// time-domain complement of RestrictAtValue's fragments (restrict_minus is
// the set complement of restrict_at over the same predicate).
func (s Sequence[T]) RestrictMinusValue(v T) []Sequence[T] {
	frags := []Sequence[T]{s}
	for _, at := range s.RestrictAtValue(v) {
		var next []Sequence[T]
		for _, f := range frags {
			buf := make([]Sequence[T], 2)
			n := f.RestrictMinusTimeSpan(at.StartTime(), at.EndTime(), at.LowerInc, at.UpperInc, buf)
			next = append(next, buf[:n]...)
		}
		frags = next
	}

	return frags
}

// RestrictAtValueSet returns the union of RestrictAtValue over values,
// sorted by start time.
func (s Sequence[T]) RestrictAtValueSet(values []T) []Sequence[T] {
	var out []Sequence[T]
	for _, v := range values {
		out = append(out, s.RestrictAtValue(v)...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime().Before(out[j].StartTime()) })

	return out
}

// RestrictMinusValueSet removes every value of values from s.
func (s Sequence[T]) RestrictMinusValueSet(values []T) []Sequence[T] {
	frags := []Sequence[T]{s}
	for _, v := range values {
		var next []Sequence[T]
		for _, f := range frags {
			next = append(next, f.RestrictMinusValue(v)...)
		}
		frags = next
	}

	return frags
}

func inSpan[T span.Numeric](sp span.Span[T], v T) bool {
	lowerOK := v > sp.Lower || (v == sp.Lower && sp.LowerInc)
	upperOK := v < sp.Upper || (v == sp.Upper && sp.UpperInc)

	return lowerOK && upperOK
}

// RestrictAtValueSpan returns the fragments of s whose value falls within
// sp, supplementing the simple
// value-equality case above for tint/tfloat by finding every boundary
// crossing of a Linear segment and merging the resulting in-span runs.
func RestrictAtValueSpan[T span.Numeric](s Sequence[T], sp span.Span[T]) []Sequence[T] {
	bpoints := []time.Time{s.StartTime()}
	for i := 0; i+1 < len(s.Instants); i++ {
		a, b := s.Instants[i], s.Instants[i+1]
		if s.Interp == Linear {
			for _, bound := range [2]T{sp.Lower, sp.Upper} {
				if frac, ok := s.Traits.Fraction(a.Value, b.Value, bound); ok && frac > 0 && frac < 1 {
					total := b.Time.Sub(a.Time)
					bpoints = append(bpoints, a.Time.Add(time.Duration(float64(total)*frac)))
				}
			}
		}
		bpoints = append(bpoints, b.Time)
	}
	sort.Slice(bpoints, func(i, j int) bool { return bpoints[i].Before(bpoints[j]) })

	var out []Sequence[T]
	for i := 0; i < len(bpoints); {
		val, ok := s.ValueAt(bpoints[i])
		if !ok || !inSpan(sp, val) {
			i++
			continue
		}

		start := i
		for i+1 < len(bpoints) {
			probe := bpoints[i].Add(bpoints[i+1].Sub(bpoints[i]) / 2)
			v2, ok2 := s.ValueAt(probe)
			if !ok2 || !inSpan(sp, v2) {
				break
			}
			i++
		}

		lo, hi := bpoints[start], bpoints[i]
		loInc := !(start == 0 && !s.LowerInc)
		hiInc := !(i == len(bpoints)-1 && !s.UpperInc)
		if frag, ok3 := s.clipTime(lo, hi, loInc, hiInc); ok3 {
			out = append(out, frag)
		}
		i++
	}

	return out
}

// RestrictMinusValueSpan removes the portion of s whose value falls
// within sp.
func RestrictMinusValueSpan[T span.Numeric](s Sequence[T], sp span.Span[T]) []Sequence[T] {
	frags := []Sequence[T]{s}
	for _, at := range RestrictAtValueSpan(s, sp) {
		var next []Sequence[T]
		for _, f := range frags {
			buf := make([]Sequence[T], 2)
			n := f.RestrictMinusTimeSpan(at.StartTime(), at.EndTime(), at.LowerInc, at.UpperInc, buf)
			next = append(next, buf[:n]...)
		}
		frags = next
	}

	return frags
}

// RestrictAtValueSpanSet returns the union of RestrictAtValueSpan over
// every span of ss.
func RestrictAtValueSpanSet[T span.Numeric](s Sequence[T], ss spanset.SpanSet[T]) []Sequence[T] {
	var out []Sequence[T]
	for i := 0; i < ss.NumSpans(); i++ {
		sp, _ := ss.SpanN(i)
		out = append(out, RestrictAtValueSpan(s, sp)...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime().Before(out[j].StartTime()) })

	return out
}

// RestrictMinusValueSpanSet removes every span of ss from s.
func RestrictMinusValueSpanSet[T span.Numeric](s Sequence[T], ss spanset.SpanSet[T]) []Sequence[T] {
	frags := []Sequence[T]{s}
	for i := 0; i < ss.NumSpans(); i++ {
		sp, _ := ss.SpanN(i)
		var next []Sequence[T]
		for _, f := range frags {
			next = append(next, RestrictMinusValueSpan(f, sp)...)
		}
		frags = next
	}

	return frags
}

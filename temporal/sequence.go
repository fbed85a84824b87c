package temporal

import (
	"sort"
	"time"

	"github.com/chronodb/chronos/errs"
)

// Sequence is a finite, strictly time-ordered run of instants sharing one
// Interpolation. Its time span is [Instants[0].Time,
// Instants[len-1].Time] with LowerInc/UpperInc controlling whether the
// endpoints themselves belong to the sequence.
type Sequence[T any] struct {
	Instants           []Instant[T]
	LowerInc, UpperInc bool
	Interp             Interpolation
	Traits             ValueTraits[T]
}

// NewSequence validates and normalizes instants into a Sequence.
//
// Validation:
//   - at least one instant
//   - strictly increasing timestamps
//   - Discrete requires both bounds inclusive (a discrete sequence is
//     exactly its instant set, it has no "just before/after" members)
//   - Linear requires traits.Continuous()
//   - a single-instant sequence requires both bounds inclusive
//
// Normalization (MobilityDB's `tsequence_make` family in
// original_source/meos/general/tsequence.c):
//   - Linear: interior instants that are exact linear interpolations of
//     their neighbors are redundant and dropped
//   - Step: an instant whose value equals its predecessor's is redundant
//     (the predecessor already holds that value until the next change)
//     except the final instant, which anchors the upper bound
func NewSequence[T any](instants []Instant[T], lowerInc, upperInc bool, interp Interpolation, traits ValueTraits[T]) (Sequence[T], error) {
	if len(instants) == 0 {
		return Sequence[T]{}, errs.ErrEmptyContainer
	}
	for i := 1; i < len(instants); i++ {
		if !instants[i].Time.After(instants[i-1].Time) {
			return Sequence[T]{}, errs.ErrNonMonotonicSequence
		}
	}
	if len(instants) == 1 && !(lowerInc && upperInc) {
		return Sequence[T]{}, errs.ErrInvalidBounds
	}
	if interp == Discrete && !(lowerInc && upperInc) {
		return Sequence[T]{}, errs.ErrInvalidBounds
	}
	if interp == Linear && !traits.Continuous() {
		return Sequence[T]{}, errs.ErrNotContinuous
	}

	normalized := instants
	switch interp {
	case Linear:
		normalized = normalizeLinear(instants, traits)
	case Step:
		normalized = normalizeStep(instants, traits)
	}

	return Sequence[T]{
		Instants: normalized,
		LowerInc: lowerInc, UpperInc: upperInc,
		Interp: interp,
		Traits: traits,
	}, nil
}

func normalizeLinear[T any](instants []Instant[T], traits ValueTraits[T]) []Instant[T] {
	if len(instants) < 3 {
		return instants
	}

	out := make([]Instant[T], 0, len(instants))
	out = append(out, instants[0])
	for i := 1; i < len(instants)-1; i++ {
		prev := out[len(out)-1]
		cur := instants[i]
		next := instants[i+1]

		total := next.Time.Sub(prev.Time)
		if total <= 0 {
			out = append(out, cur)
			continue
		}
		frac := float64(cur.Time.Sub(prev.Time)) / float64(total)
		expected := traits.Interpolate(prev.Value, next.Value, frac)
		if traits.Equal(expected, cur.Value) {
			continue // collinear, redundant
		}
		out = append(out, cur)
	}
	out = append(out, instants[len(instants)-1])

	return out
}

func normalizeStep[T any](instants []Instant[T], traits ValueTraits[T]) []Instant[T] {
	if len(instants) < 2 {
		return instants
	}

	out := make([]Instant[T], 0, len(instants))
	out = append(out, instants[0])
	for i := 1; i < len(instants); i++ {
		last := out[len(out)-1]
		if i != len(instants)-1 && traits.Equal(instants[i].Value, last.Value) {
			continue
		}
		out = append(out, instants[i])
	}

	return out
}

// Kind reports this value's position in the temporal hierarchy.
func (Sequence[T]) Kind() Kind { return KindSequence }

// StartTime and EndTime return the sequence's time bounds.
func (s Sequence[T]) StartTime() time.Time { return s.Instants[0].Time }
func (s Sequence[T]) EndTime() time.Time   { return s.Instants[len(s.Instants)-1].Time }

// Duration returns EndTime - StartTime.
func (s Sequence[T]) Duration() time.Duration { return s.EndTime().Sub(s.StartTime()) }

// NumInstants returns the number of (post-normalization) instants.
func (s Sequence[T]) NumInstants() int { return len(s.Instants) }

// InstantN returns the n'th instant (0-based).
func (s Sequence[T]) InstantN(n int) Instant[T] { return s.Instants[n] }

// instantIndex returns the index of the last instant whose Time <= t, and
// whether t falls exactly on an instant.
func (s Sequence[T]) instantIndex(t time.Time) (idx int, exact bool) {
	n := len(s.Instants)
	idx = sort.Search(n, func(i int) bool { return s.Instants[i].Time.After(t) }) - 1
	if idx >= 0 && s.Instants[idx].Time.Equal(t) {
		exact = true
	}

	return idx, exact
}

// ValueAt returns the value at timestamp t, or ok=false if t falls
// outside the sequence's time span or on an excluded boundary
// value-at-timestamp operation).
func (s Sequence[T]) ValueAt(t time.Time) (value T, ok bool) {
	if t.Before(s.StartTime()) || t.After(s.EndTime()) {
		return value, false
	}
	if t.Equal(s.StartTime()) && !s.LowerInc {
		return value, false
	}
	if t.Equal(s.EndTime()) && !s.UpperInc {
		return value, false
	}

	idx, exact := s.instantIndex(t)
	if exact {
		return s.Instants[idx].Value, true
	}
	if s.Interp == Discrete {
		return value, false
	}
	if idx < 0 || idx >= len(s.Instants)-1 {
		return value, false
	}

	left, right := s.Instants[idx], s.Instants[idx+1]
	if s.Interp == Step {
		return left.Value, true
	}

	total := right.Time.Sub(left.Time)
	frac := float64(t.Sub(left.Time)) / float64(total)

	return s.Traits.Interpolate(left.Value, right.Value, frac), true
}

// MinValue and MaxValue return the extreme instant values per Traits'
// order. For Step and Linear these reflect only the sampled instants, not
// values synthesized between them (monotonic interpolation means the
// instants already bound the range; non-monotonic spatial
// interpolation's true extrema as a lift-time concern, not a core-type
// one).
func (s Sequence[T]) MinValue() T {
	m := s.Instants[0].Value
	for _, inst := range s.Instants[1:] {
		if s.Traits.Compare(inst.Value, m) < 0 {
			m = inst.Value
		}
	}

	return m
}

func (s Sequence[T]) MaxValue() T {
	m := s.Instants[0].Value
	for _, inst := range s.Instants[1:] {
		if s.Traits.Compare(inst.Value, m) > 0 {
			m = inst.Value
		}
	}

	return m
}

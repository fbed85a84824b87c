package temporal

import (
	"sort"
	"time"

	"github.com/chronodb/chronos/errs"
)

// SequenceSet is an ordered, non-overlapping run of Sequences sharing one
// Interpolation. Gaps between sequences are holes in the time
// domain: ValueAt returns ok=false there.
type SequenceSet[T any] struct {
	Sequences []Sequence[T]
	Interp    Interpolation
	Traits    ValueTraits[T]
}

// NewSequenceSet validates and sorts sequences into a SequenceSet.
//
// Validation:
//   - at least one sequence
//   - every sequence shares Interp
//   - sequences do not overlap in time (touching at a shared instant is
//     allowed only if at most one side includes that boundary instant)
func NewSequenceSet[T any](sequences []Sequence[T], interp Interpolation, traits ValueTraits[T]) (SequenceSet[T], error) {
	if len(sequences) == 0 {
		return SequenceSet[T]{}, errs.ErrEmptyContainer
	}

	sorted := make([]Sequence[T], len(sequences))
	copy(sorted, sequences)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartTime().Before(sorted[j].StartTime()) })

	for i, seq := range sorted {
		if seq.Interp != interp {
			return SequenceSet[T]{}, errs.ErrMixedInterpolation
		}
		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		if seq.StartTime().Before(prev.EndTime()) {
			return SequenceSet[T]{}, errs.ErrOverlappingSequences
		}
		if seq.StartTime().Equal(prev.EndTime()) && prev.UpperInc && seq.LowerInc {
			return SequenceSet[T]{}, errs.ErrInstantTimestampCollision
		}
	}

	return SequenceSet[T]{Sequences: sorted, Interp: interp, Traits: traits}, nil
}

// Kind reports this value's position in the temporal hierarchy.
func (SequenceSet[T]) Kind() Kind { return KindSequenceSet }

// StartTime and EndTime return the overall time bounds.
func (ss SequenceSet[T]) StartTime() time.Time { return ss.Sequences[0].StartTime() }
func (ss SequenceSet[T]) EndTime() time.Time {
	return ss.Sequences[len(ss.Sequences)-1].EndTime()
}

// NumSequences returns the number of component sequences.
func (ss SequenceSet[T]) NumSequences() int { return len(ss.Sequences) }

// SequenceN returns the n'th sequence (0-based).
func (ss SequenceSet[T]) SequenceN(n int) Sequence[T] { return ss.Sequences[n] }

// ValueAt returns the value at t, searching for the containing sequence
// via binary search on start times.
func (ss SequenceSet[T]) ValueAt(t time.Time) (value T, ok bool) {
	idx := sort.Search(len(ss.Sequences), func(i int) bool { return ss.Sequences[i].StartTime().After(t) }) - 1
	if idx < 0 {
		return value, false
	}

	return ss.Sequences[idx].ValueAt(t)
}

// MinValue and MaxValue scan every component sequence.
func (ss SequenceSet[T]) MinValue() T {
	m := ss.Sequences[0].MinValue()
	for _, seq := range ss.Sequences[1:] {
		if c := seq.MinValue(); ss.Traits.Compare(c, m) < 0 {
			m = c
		}
	}

	return m
}

func (ss SequenceSet[T]) MaxValue() T {
	m := ss.Sequences[0].MaxValue()
	for _, seq := range ss.Sequences[1:] {
		if c := seq.MaxValue(); ss.Traits.Compare(c, m) > 0 {
			m = c
		}
	}

	return m
}

package temporal

import (
	"sort"

	"github.com/chronodb/chronos/errs"
)

// MergeSequences combines an unordered array of same-interpolation
// sequences into a SequenceSet, stitching together any pair that touches
// at a shared boundary instant with equal values into a single continuous
// sequence (original_source's tsequence_merge_array,
// meos/general/tsequence.c), and otherwise leaving them as distinct
// SequenceSet members. It errors if two sequences touch at a boundary
// with differing values, or overlap outright.
func MergeSequences[T any](seqs []Sequence[T], traits ValueTraits[T]) (SequenceSet[T], error) {
	if len(seqs) == 0 {
		return SequenceSet[T]{}, errs.ErrEmptyContainer
	}

	interp := seqs[0].Interp
	sorted := make([]Sequence[T], len(seqs))
	copy(sorted, seqs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartTime().Before(sorted[j].StartTime()) })

	var stitched []Sequence[T]
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if next.Interp != interp {
			return SequenceSet[T]{}, errs.ErrMixedInterpolation
		}

		if next.StartTime().Equal(cur.EndTime()) && cur.UpperInc && next.LowerInc {
			curVal, _ := cur.ValueAt(cur.EndTime())
			nextVal, _ := next.ValueAt(next.StartTime())
			if !traits.Equal(curVal, nextVal) {
				return SequenceSet[T]{}, errs.ErrInstantTimestampCollision
			}

			merged := make([]Instant[T], 0, len(cur.Instants)+len(next.Instants)-1)
			merged = append(merged, cur.Instants...)
			merged = append(merged, next.Instants[1:]...)

			seq, err := NewSequence(merged, cur.LowerInc, next.UpperInc, interp, traits)
			if err != nil {
				return SequenceSet[T]{}, err
			}
			cur = seq

			continue
		}

		stitched = append(stitched, cur)
		cur = next
	}
	stitched = append(stitched, cur)

	return NewSequenceSet(stitched, interp, traits)
}

package temporal

import (
	"time"

	"github.com/chronodb/chronos/errs"
)

// builderState tracks the lifecycle of a Builder: Building accepts
// Append calls, Frozen rejects them (the sequence has already been
// handed out via Freeze).
type builderState uint8

const (
	stateBuilding builderState = iota
	stateFrozen
)

// Builder incrementally assembles a Sequence one instant at a time,
// grounded in original_source's incremental append machinery
// (meos/general/temporal_append.c's tsequence_append_tinstant) which
// enforces a maximum allowed gap and/or value jump between consecutive
// instants so a live feed can reject out-of-policy readings before they
// corrupt a sequence, rather than building one and validating after the
// fact.
type Builder[T any] struct {
	instants []Instant[T]
	lowerInc bool
	interp   Interpolation
	traits   ValueTraits[T]
	state    builderState
}

// NewBuilder starts a Builder for a sequence whose first instant is
// included (lowerInc) or excluded.
func NewBuilder[T any](interp Interpolation, traits ValueTraits[T], lowerInc bool) *Builder[T] {
	return &Builder[T]{lowerInc: lowerInc, interp: interp, traits: traits}
}

// Append adds inst to the builder. maxGap, if nonzero, rejects an
// instant whose time gap from the last appended instant exceeds it.
// maxDist, if nonzero, rejects an instant whose distFn result from the
// last appended instant's value exceeds it; distFn may be nil if maxDist
// is 0.
func (b *Builder[T]) Append(inst Instant[T], maxGap time.Duration, maxDist float64, distFn func(a, b T) float64) error {
	if b.state == stateFrozen {
		return errs.ErrUnsupported
	}
	if len(b.instants) > 0 {
		last := b.instants[len(b.instants)-1]
		if !inst.Time.After(last.Time) {
			return errs.ErrNonMonotonicSequence
		}
		if maxGap > 0 && inst.Time.Sub(last.Time) > maxGap {
			return errs.ErrOutOfRange
		}
		if maxDist > 0 && distFn != nil && distFn(last.Value, inst.Value) > maxDist {
			return errs.ErrOutOfRange
		}
	}

	b.instants = append(b.instants, inst)

	return nil
}

// Len reports the number of instants appended so far.
func (b *Builder[T]) Len() int { return len(b.instants) }

// Freeze finalizes the builder into a Sequence, running the same
// normalization NewSequence applies, and transitions the builder to the
// Frozen state so further Append calls fail.
func (b *Builder[T]) Freeze(upperInc bool) (Sequence[T], error) {
	seq, err := NewSequence(b.instants, b.lowerInc, upperInc, b.interp, b.traits)
	if err != nil {
		return Sequence[T]{}, err
	}
	b.state = stateFrozen

	return seq, nil
}

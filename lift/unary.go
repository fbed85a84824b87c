package lift

import (
	"github.com/chronodb/chronos/temporal"
)

// Instant lifts fn over a single Instant[A].
func Instant[A, B any](inst temporal.Instant[A], fn func(A) B) temporal.Instant[B] {
	return temporal.NewInstant(fn(inst.Value), inst.Time)
}

// Sequence lifts fn over a Sequence[A]. A Discrete s stays Discrete. When
// continuous is true, s is Linear and traits is continuous, the result
// stays Linear (fn is assumed linear-preserving, e.g. an affine
// transform); otherwise the result degrades to Step, since
// nothing guarantees fn commutes with interpolation between sampled
// points (original_source's MOBDB_FLAGS continuity bit drives the same
// decision in general/lifting.c).
func Sequence[A, B any](s temporal.Sequence[A], fn func(A) B, continuous bool, traits temporal.ValueTraits[B]) (temporal.Sequence[B], error) {
	instants := make([]temporal.Instant[B], s.NumInstants())
	for i := 0; i < s.NumInstants(); i++ {
		instants[i] = Instant(s.InstantN(i), fn)
	}

	resultInterp := temporal.Step
	switch {
	case s.Interp == temporal.Discrete:
		resultInterp = temporal.Discrete
	case continuous && s.Interp == temporal.Linear && traits.Continuous():
		resultInterp = temporal.Linear
	}

	return temporal.NewSequence(instants, s.LowerInc, s.UpperInc, resultInterp, traits)
}

// SequenceSet lifts fn over every component sequence of a SequenceSet[A].
func SequenceSet[A, B any](ss temporal.SequenceSet[A], fn func(A) B, continuous bool, traits temporal.ValueTraits[B]) (temporal.SequenceSet[B], error) {
	seqs := make([]temporal.Sequence[B], len(ss.Sequences))
	for i, seq := range ss.Sequences {
		lifted, err := Sequence(seq, fn, continuous, traits)
		if err != nil {
			return temporal.SequenceSet[B]{}, err
		}
		seqs[i] = lifted
	}

	resultInterp := temporal.Step
	switch {
	case ss.Interp == temporal.Discrete:
		resultInterp = temporal.Discrete
	case continuous && ss.Interp == temporal.Linear && traits.Continuous():
		resultInterp = temporal.Linear
	}

	return temporal.NewSequenceSet(seqs, resultInterp, traits)
}

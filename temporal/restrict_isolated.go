package temporal

import (
	"sort"
	"time"

	"github.com/chronodb/chronos/errs"
)

// RestrictAtTimestampSetResult returns s restricted to an isolated set of
// timestamps as a single Temporal value rather than a bare instant slice.
// A Discrete receiver stays Discrete: its restriction is exactly the
// instant set, itself a valid Discrete Sequence. A Step or Linear
// receiver cannot represent an isolated timestamp set as one of its own
// sequences (each matched point is disconnected from its neighbors), so
// the result is a SequenceSet of single-instant Sequences, one per
// matched timestamp, each still tagged with the receiver's Interp.
func (s Sequence[T]) RestrictAtTimestampSetResult(times []time.Time) (Temporal[T], error) {
	instants := s.RestrictAtTimestampSet(times)
	if len(instants) == 0 {
		return nil, errs.ErrEmptyContainer
	}
	sort.Slice(instants, func(i, j int) bool { return instants[i].Time.Before(instants[j].Time) })

	if s.Interp == Discrete {
		seq, err := NewSequence(instants, true, true, Discrete, s.Traits)
		if err != nil {
			return nil, err
		}

		return seq, nil
	}

	seqs := make([]Sequence[T], len(instants))
	for i, inst := range instants {
		seq, err := NewSequence([]Instant[T]{inst}, true, true, s.Interp, s.Traits)
		if err != nil {
			return nil, err
		}
		seqs[i] = seq
	}

	set, err := NewSequenceSet(seqs, s.Interp, s.Traits)
	if err != nil {
		return nil, err
	}

	return set, nil
}

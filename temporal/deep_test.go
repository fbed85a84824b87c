package temporal_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"github.com/chronodb/chronos/temporal"
)

// TestMergeSequencesStructuralShape uses a deep structural diff instead
// of a field-by-field assertion, so a mismatch anywhere in the merged
// SequenceSet's component list prints exactly where it diverges.
func TestMergeSequencesStructuralShape(t *testing.T) {
	a := mkLinear(t, [][2]float64{{0, 0}, {10, 10}})
	b := mkLinear(t, [][2]float64{{20, 20}, {30, 30}})

	got, err := temporal.MergeSequences([]temporal.Sequence[float64]{a, b}, temporal.FloatTraits{})
	require.NoError(t, err)

	want := temporal.SequenceSet[float64]{
		Sequences: []temporal.Sequence[float64]{a, b},
		Interp:    temporal.Linear,
		Traits:    temporal.FloatTraits{},
	}

	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("merged SequenceSet diverged from expected shape:\n%v", diff)
	}
}

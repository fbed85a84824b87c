package lift_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronodb/chronos/lift"
	"github.com/chronodb/chronos/temporal"
)

func ts(sec int) time.Time { return time.Unix(int64(sec), 0).UTC() }

func linear(t *testing.T, pts [][2]float64) temporal.Sequence[float64] {
	t.Helper()
	instants := make([]temporal.Instant[float64], len(pts))
	for i, p := range pts {
		instants[i] = temporal.NewInstant(p[1], ts(int(p[0])))
	}
	seq, err := temporal.NewSequence(instants, true, true, temporal.Linear, temporal.FloatTraits{})
	require.NoError(t, err)

	return seq
}

func TestUnarySequenceKeepsLinearForContinuousFn(t *testing.T) {
	seq := linear(t, [][2]float64{{0, 0}, {10, 20}})
	out, err := lift.Sequence(seq, func(v float64) float64 { return v + 1 }, true, temporal.FloatTraits{})
	require.NoError(t, err)
	assert.Equal(t, temporal.Linear, out.Interp)
	v, _ := out.ValueAt(ts(5))
	assert.InDelta(t, 11.0, v, 1e-9)
}

func TestUnarySequenceDegradesToStepForDiscontinuousFn(t *testing.T) {
	seq := linear(t, [][2]float64{{0, 0}, {10, 20}})
	out, err := lift.Sequence(seq, func(v float64) bool { return v > 10 }, false, temporal.BoolTraits{})
	require.NoError(t, err)
	assert.Equal(t, temporal.Step, out.Interp)
}

func TestBinarySequenceAddNeedsNoCrossing(t *testing.T) {
	a := linear(t, [][2]float64{{0, 0}, {10, 100}})
	b := linear(t, [][2]float64{{0, 10}, {10, 10}})

	sum, ok, err := lift.BinarySequence(a, b, func(x, y float64) float64 { return x + y },
		temporal.Linear, temporal.FloatTraits{}, nil)
	require.NoError(t, err)
	require.True(t, ok)

	v, _ := sum.ValueAt(ts(5))
	assert.InDelta(t, 60.0, v, 1e-9)
}

func TestBinarySequenceLessThanInsertsCrossing(t *testing.T) {
	a := linear(t, [][2]float64{{0, 0}, {10, 100}})
	b := linear(t, [][2]float64{{0, 100}, {10, 0}})

	lt, ok, err := lift.BinarySequence(a, b, func(x, y float64) bool { return x < y },
		temporal.Step, temporal.BoolTraits{}, lift.FloatCrossing)
	require.NoError(t, err)
	require.True(t, ok)

	before, _ := lt.ValueAt(ts(2))
	after, _ := lt.ValueAt(ts(8))
	assert.True(t, before)
	assert.False(t, after)
}

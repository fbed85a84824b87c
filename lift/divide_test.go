package lift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronodb/chronos/lift"
	"github.com/chronodb/chronos/temporal"
)

func TestDivideSplitsAtZeroCrossing(t *testing.T) {
	x := linear(t, [][2]float64{{0, 2}, {2, 2}})
	y := linear(t, [][2]float64{{0, -1}, {2, 1}})

	set, ok, err := lift.Divide(x, y, temporal.Linear, temporal.FloatTraits{})
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, 2, set.NumSequences())

	before := set.SequenceN(0)
	after := set.SequenceN(1)

	assert.True(t, before.EndTime().Before(after.StartTime()), "fragments must not include the crossing instant")

	v0, ok0 := before.ValueAt(ts(0))
	require.True(t, ok0)
	assert.InDelta(t, -2.0, v0, 1e-9)

	v1, ok1 := after.ValueAt(ts(2))
	require.True(t, ok1)
	assert.InDelta(t, 2.0, v1, 1e-9)

	// The crossing instant itself (t=1) falls in neither fragment.
	_, crossOK := set.ValueAt(ts(1))
	assert.False(t, crossOK)
}

func TestDivideNoOverlapReturnsNotOK(t *testing.T) {
	x := linear(t, [][2]float64{{0, 2}, {2, 2}})
	y := linear(t, [][2]float64{{10, 1}, {20, 1}})

	_, ok, err := lift.Divide(x, y, temporal.Linear, temporal.FloatTraits{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDivideAllZeroDenominatorDropsEverything(t *testing.T) {
	x := linear(t, [][2]float64{{0, 2}, {2, 2}})
	y := linear(t, [][2]float64{{0, 0}, {2, 0}})

	_, ok, err := lift.Divide(x, y, temporal.Linear, temporal.FloatTraits{})
	require.NoError(t, err)
	assert.False(t, ok)
}

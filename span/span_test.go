package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/span"
)

func TestMakeNormalizesCanonicalTypes(t *testing.T) {
	s, err := span.Make[int64](1, 5, true, true, catalog.TagInt4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Lower)
	assert.Equal(t, int64(6), s.Upper)
	assert.True(t, s.LowerInc)
	assert.False(t, s.UpperInc)
}

func TestMakePreservesFloatBounds(t *testing.T) {
	s, err := span.Make[float64](1.0, 3.0, true, false, catalog.TagFloat8)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Lower)
	assert.Equal(t, 3.0, s.Upper)
}

func TestMakeRejectsInvalidBounds(t *testing.T) {
	_, err := span.Make[int64](5, 1, true, true, catalog.TagInt4)
	assert.ErrorIs(t, err, errs.ErrInvalidBounds)
}

func TestMakeRejectsEmptySpan(t *testing.T) {
	_, err := span.Make[float64](1.0, 1.0, true, false, catalog.TagFloat8)
	assert.Error(t, err)
}

func TestFloatIntersection(t *testing.T) {
	a := span.MustMake[float64](1.0, 3.0, true, false, catalog.TagFloat8)
	b := span.MustMake[float64](2.5, 4.0, true, false, catalog.TagFloat8)

	got, ok, err := a.Intersection(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2.5, got.Lower)
	assert.Equal(t, 3.0, got.Upper)

	dist, err := a.Distance(b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
}

func TestAdjacentAndUnion(t *testing.T) {
	a := span.MustMake[int64](1, 5, true, true, catalog.TagInt4) // -> [1,6)
	b := span.MustMake[int64](6, 10, true, true, catalog.TagInt4) // -> [6,11)

	adj, err := a.Adjacent(b)
	require.NoError(t, err)
	assert.True(t, adj)

	u, ok, err := a.Union(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), u.Lower)
	assert.Equal(t, int64(11), u.Upper)
}

func TestDifference(t *testing.T) {
	a := span.MustMake[int64](0, 20, true, true, catalog.TagInt4)
	b := span.MustMake[int64](5, 10, true, true, catalog.TagInt4)

	out := make([]span.Span[int64], 2)
	n, err := a.Difference(b, out)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, int64(0), out[0].Lower)
	assert.Equal(t, int64(11), out[1].Lower)
}

func TestMixedBaseTypeError(t *testing.T) {
	a := span.MustMake[int64](1, 5, true, true, catalog.TagInt4)
	b := span.MustMake[int64](1, 5, true, true, catalog.TagInt8)

	_, err := a.Overlaps(b)
	assert.ErrorIs(t, err, errs.ErrMixedBaseType)
}

func TestDistanceNonOverlapping(t *testing.T) {
	a := span.MustMake[float64](0.0, 1.0, true, false, catalog.TagFloat8)
	b := span.MustMake[float64](2.0, 3.0, true, false, catalog.TagFloat8)

	d, err := a.Distance(b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9)
}

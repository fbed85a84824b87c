package spanset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/span"
	"github.com/chronodb/chronos/spanset"
)

func mkInt(lo, hi int64) span.Span[int64] {
	return span.MustMake[int64](lo, hi, true, true, catalog.TagInt4)
}

func TestNewMergesAdjacentAndOverlapping(t *testing.T) {
	ss, err := spanset.New([]span.Span[int64]{
		mkInt(10, 20),
		mkInt(0, 5),
		mkInt(6, 9), // adjacent to [10,20) after normalization -> merges
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ss.NumSpans())
}

func TestRejectsEmpty(t *testing.T) {
	_, err := spanset.New([]span.Span[int64]{})
	assert.Error(t, err)
}

func TestBoundingSpan(t *testing.T) {
	ss, err := spanset.New([]span.Span[int64]{mkInt(0, 5), mkInt(100, 110)})
	require.NoError(t, err)
	bs := ss.BoundingSpan()
	assert.Equal(t, int64(0), bs.Lower)
	assert.Equal(t, int64(111), bs.Upper)
}

func TestUnionIntersectionDifference(t *testing.T) {
	a, _ := spanset.New([]span.Span[int64]{mkInt(0, 10), mkInt(20, 30)})
	b, _ := spanset.New([]span.Span[int64]{mkInt(5, 25)})

	u, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, 1, u.NumSpans())

	inter, ok, err := a.Intersection(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, inter.NumSpans())

	diff, ok, err := a.Difference(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, diff.NumSpans())
}

func TestOverlapsMergeWalk(t *testing.T) {
	a, _ := spanset.New([]span.Span[int64]{mkInt(0, 10), mkInt(100, 110)})
	b, _ := spanset.New([]span.Span[int64]{mkInt(200, 210)})

	ok, err := a.Overlaps(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

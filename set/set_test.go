package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/set"
)

func TestNewDeduplicatesAndSorts(t *testing.T) {
	s, err := set.New(catalog.TagInt8, []int64{5, 1, 3, 1, 5})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 5}, s.Values)
}

func TestRejectsEmpty(t *testing.T) {
	_, err := set.New[int64](catalog.TagInt8, nil)
	assert.Error(t, err)
}

func TestSetOperations(t *testing.T) {
	a, _ := set.New(catalog.TagInt8, []int64{1, 2, 3, 4})
	b, _ := set.New(catalog.TagInt8, []int64{3, 4, 5, 6})

	u, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, u.Values)

	inter, ok, err := a.Intersection(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int64{3, 4}, inter.Values)

	diff, ok, err := a.Difference(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2}, diff.Values)
}

func TestBoundingSpan(t *testing.T) {
	s, _ := set.New(catalog.TagFloat8, []float64{3.5, 1.0, 9.2})
	bs := set.BoundingSpan(s)
	assert.Equal(t, 1.0, bs.Lower)
	assert.Equal(t, 9.2, bs.Upper)
}

func TestHashStableAcrossEqualSets(t *testing.T) {
	a, _ := set.New(catalog.TagTextSet, []string{"b", "a", "c"})
	b, _ := set.New(catalog.TagTextSet, []string{"a", "b", "c"})
	assert.Equal(t, a.Hash(), b.Hash())
}

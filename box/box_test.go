package box_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronodb/chronos/box"
	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/span"
)

func TestTBoxIntersection(t *testing.T) {
	a := box.TBox{
		HasX: true, HasT: true,
		XSpan: span.MustMake[float64](0, 10, true, false, catalog.TagFloat8),
		TSpan: span.MustMake[int64](0, 100, true, false, catalog.TagTimestamptz),
	}
	b := box.TBox{
		HasX: true, HasT: true,
		XSpan: span.MustMake[float64](5, 15, true, false, catalog.TagFloat8),
		TSpan: span.MustMake[int64](50, 150, true, false, catalog.TagTimestamptz),
	}

	inter, ok, err := a.Intersection(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5.0, inter.XSpan.Lower)
	assert.Equal(t, 10.0, inter.XSpan.Upper)
}

func TestTBoxDimensionMismatch(t *testing.T) {
	a := box.TBox{HasX: true, XSpan: span.MustMake[float64](0, 10, true, false, catalog.TagFloat8)}
	b := box.TBox{HasX: true, HasT: true,
		XSpan: span.MustMake[float64](0, 10, true, false, catalog.TagFloat8),
		TSpan: span.MustMake[int64](0, 10, true, false, catalog.TagTimestamptz),
	}

	_, err := a.Contains(b)
	assert.Error(t, err)
}

func TestSTBoxQuadSplit(t *testing.T) {
	b := box.STBox{HasX: true, Xmin: 0, Xmax: 10, Ymin: 0, Ymax: 10}
	quads := b.QuadSplit()
	require.Len(t, quads, 4)
	assert.Equal(t, 0.0, quads[0].Xmin)
	assert.Equal(t, 5.0, quads[0].Xmax)
}

func TestSTBoxSRIDMismatch(t *testing.T) {
	a := box.STBox{HasX: true, SRID: 4326, Xmax: 1, Ymax: 1}
	b := box.STBox{HasX: true, SRID: 3857, Xmax: 1, Ymax: 1}

	_, err := a.Union(b)
	assert.Error(t, err)
}

func TestSTBoxUnionPropagatesSRID(t *testing.T) {
	a := box.STBox{HasX: true, SRID: 0, Xmax: 1, Ymax: 1}
	b := box.STBox{HasX: true, SRID: 4326, Xmax: 2, Ymax: 2}

	u, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, int32(4326), u.SRID)
}

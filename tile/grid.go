// Package tile implements the bucketing/tiling subsystem: a uniform grid
// over the value and time dimensions used to partition a temporal value
// into fixed-size tiles for downstream storage or parallel processing,
// grounded in original_source's tbox tile grid
// (meos/general/temporal_tile.c's `tbox_tile_list`/`tintbox_tile` family)
// and in arloliu-mebo's per-blob identification style
// (encoding/tag.go's per-metric identifier), generalized from "one ID per
// metric blob" to "one ID per grid definition" via google/uuid so tiles
// produced by the same grid can be correlated downstream.
package tile

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Grid is a uniform partition of the value and time axes into
// fixed-width bins anchored at (ValueOrigin, TimeOrigin).
type Grid struct {
	ID uuid.UUID

	TimeWidth  time.Duration
	TimeOrigin time.Time

	ValueWidth  float64
	ValueOrigin float64
}

// NewGrid builds a Grid and assigns it a fresh correlation ID.
func NewGrid(timeWidth time.Duration, timeOrigin time.Time, valueWidth, valueOrigin float64) Grid {
	return Grid{
		ID:          uuid.New(),
		TimeWidth:   timeWidth,
		TimeOrigin:  timeOrigin,
		ValueWidth:  valueWidth,
		ValueOrigin: valueOrigin,
	}
}

// TimeCoord returns the index of the time bin containing t.
func (g Grid) TimeCoord(t time.Time) int64 {
	return int64(math.Floor(float64(t.Sub(g.TimeOrigin)) / float64(g.TimeWidth)))
}

// TimeBin returns the half-open [lo, hi) window of the coord'th time bin.
func (g Grid) TimeBin(coord int64) (lo, hi time.Time) {
	lo = g.TimeOrigin.Add(time.Duration(coord) * g.TimeWidth)
	hi = lo.Add(g.TimeWidth)

	return lo, hi
}

// ValueCoord returns the index of the value bin containing v.
func (g Grid) ValueCoord(v float64) int64 {
	return int64(math.Floor((v - g.ValueOrigin) / g.ValueWidth))
}

// ValueBin returns the half-open [lo, hi) range of the coord'th value bin.
func (g Grid) ValueBin(coord int64) (lo, hi float64) {
	lo = g.ValueOrigin + float64(coord)*g.ValueWidth
	hi = lo + g.ValueWidth

	return lo, hi
}

// MaxCoords returns the number of time bins and value bins spanned by
// the half-open time window [tLo, tHi) and value window [vLo, vHi),
// mirroring original_source's tile-count accessors used to preallocate a
// tile list before generating it.
func (g Grid) MaxCoords(tLo, tHi time.Time, vLo, vHi float64) (timeCount, valueCount int64) {
	timeCount = g.TimeCoord(tHi.Add(-time.Nanosecond)) - g.TimeCoord(tLo) + 1
	valueCount = g.ValueCoord(vHi-1e-9) - g.ValueCoord(vLo) + 1

	return timeCount, valueCount
}

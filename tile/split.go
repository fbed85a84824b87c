package tile

import (
	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/span"
	"github.com/chronodb/chronos/temporal"
)

// Fragment is one tile-aligned piece of a split sequence, tagged with the
// grid coordinates of the tile it falls in.
type Fragment[T span.Numeric] struct {
	TimeCoord  int64
	ValueCoord int64
	Sequence   temporal.Sequence[T]
}

// Split partitions seq into tile-aligned fragments, iterating time-major
// then value-minor: for each time bin overlapping seq's domain, the
// portion of seq within that bin is further split at its value-bin
// boundaries (inserting crossing instants for Linear interpolation via
// temporal.RestrictAtValueSpan), matching original_source's
// `tnumberseq_tile_list` traversal order (meos/general/temporal_tile.c).
func Split[T span.Numeric](seq temporal.Sequence[T], base catalog.Tag, grid Grid) ([]Fragment[T], error) {
	var out []Fragment[T]

	startCoord := grid.TimeCoord(seq.StartTime())
	endCoord := grid.TimeCoord(seq.EndTime())
	if lo, _ := grid.TimeBin(endCoord); seq.EndTime().Equal(lo) && !seq.UpperInc {
		endCoord--
	}

	for tc := startCoord; tc <= endCoord; tc++ {
		lo, hi := grid.TimeBin(tc)
		timeFrag, ok := seq.RestrictAtTimeSpan(lo, hi, true, false)
		if !ok {
			continue
		}

		valueFrags, err := splitByValue(timeFrag, base, grid)
		if err != nil {
			return nil, err
		}
		for _, vf := range valueFrags {
			out = append(out, Fragment[T]{TimeCoord: tc, ValueCoord: vf.coord, Sequence: vf.seq})
		}
	}

	return out, nil
}

type valueFragment[T span.Numeric] struct {
	coord int64
	seq   temporal.Sequence[T]
}

func splitByValue[T span.Numeric](seq temporal.Sequence[T], base catalog.Tag, grid Grid) ([]valueFragment[T], error) {
	vMin := grid.ValueCoord(float64(seq.MinValue()))
	vMax := grid.ValueCoord(float64(seq.MaxValue()))

	var out []valueFragment[T]
	for vc := vMin; vc <= vMax; vc++ {
		lo, hi := grid.ValueBin(vc)
		sp, err := span.Make(T(lo), T(hi), true, false, base)
		if err != nil {
			continue
		}
		for _, frag := range temporal.RestrictAtValueSpan(seq, sp) {
			out = append(out, valueFragment[T]{coord: vc, seq: frag})
		}
	}

	return out, nil
}

// Coords returns the coordinate range a Sequence's domain spans on grid,
// without performing the split: tLo/tHi are the time bins of its start
// and end times and vLo/vHi the value bins of its minimum and maximum
// sampled values, all bounds inclusive.
func Coords[T span.Numeric](seq temporal.Sequence[T], grid Grid) (tLo, tHi, vLo, vHi int64) {
	tLo = grid.TimeCoord(seq.StartTime())
	tHi = grid.TimeCoord(seq.EndTime())
	vLo = grid.ValueCoord(float64(seq.MinValue()))
	vHi = grid.ValueCoord(float64(seq.MaxValue()))

	return tLo, tHi, vLo, vHi
}

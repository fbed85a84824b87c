package tile

import (
	"math"
	"time"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/span"
)

// BinsOverSpan generates the consecutive, width-wide bins of base that
// cover sp, anchored at origin, matching original_source's numeric tile
// generator (meos/general/temporal_tile.c `value_bins`): bin k covers
// [origin + k*width, origin + (k+1)*width).
func BinsOverSpan[T span.Numeric](sp span.Span[T], width T, origin T, base catalog.Tag) ([]span.Span[T], error) {
	if width <= 0 {
		return nil, errs.ErrInvalidWidth
	}

	startK := int64(math.Floor(float64(sp.Lower-origin) / float64(width)))
	endK := int64(math.Floor(float64(sp.Upper-origin) / float64(width)))
	if sp.Upper > origin && float64(sp.Upper-origin) == float64(endK)*float64(width) {
		endK--
	}

	bins := make([]span.Span[T], 0, endK-startK+1)
	for k := startK; k <= endK; k++ {
		lo := origin + T(float64(k)*float64(width))
		hi := lo + width
		b, err := span.Make(lo, hi, true, false, base)
		if err != nil {
			continue
		}
		bins = append(bins, b)
	}

	return bins, nil
}

// BinsOverTime generates the consecutive time bins (as microsecond spans,
// matching box.TBox's representation) covering [lo, hi), anchored at
// origin.
func BinsOverTime(lo, hi time.Time, width time.Duration, origin time.Time, base catalog.Tag) ([]span.Span[int64], error) {
	if width <= 0 {
		return nil, errs.ErrInvalidWidth
	}

	g := Grid{TimeWidth: width, TimeOrigin: origin}
	startK := g.TimeCoord(lo)
	endK := g.TimeCoord(hi.Add(-time.Nanosecond))

	bins := make([]span.Span[int64], 0, endK-startK+1)
	for k := startK; k <= endK; k++ {
		binLo, binHi := g.TimeBin(k)
		b, err := span.Make(microsOf(binLo), microsOf(binHi), true, false, base)
		if err != nil {
			continue
		}
		bins = append(bins, b)
	}

	return bins, nil
}

func microsOf(t time.Time) int64 { return t.UnixMicro() }

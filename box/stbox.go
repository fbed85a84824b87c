package box

import (
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/span"
)

// STBox is a bounding box over X/Y[/Z] space, optionally with a time
// span, a geodetic flag, and an SRID. SRID 0 means unknown.
type STBox struct {
	HasX, HasZ, HasT, Geodetic bool
	SRID                       int32
	Xmin, Xmax, Ymin, Ymax     float64
	Zmin, Zmax                 float64
	TSpan                      span.Span[int64]
}

func (b STBox) checkCompatible(o STBox) error {
	if b.HasX != o.HasX || b.HasZ != o.HasZ || b.HasT != o.HasT {
		return errs.ErrMixedDimensionality
	}
	if b.HasX {
		if b.Geodetic != o.Geodetic {
			return errs.ErrMixedGeodetic
		}
		if b.SRID != 0 && o.SRID != 0 && b.SRID != o.SRID {
			return errs.ErrMixedSRID
		}
	}

	return nil
}

// GetSpace returns b with the time dimension stripped.
func (b STBox) GetSpace() STBox {
	out := b
	out.HasT = false
	out.TSpan = span.Span[int64]{}

	return out
}

// SetSRID returns a copy of b with its SRID replaced.
func (b STBox) SetSRID(srid int32) STBox {
	out := b
	out.SRID = srid

	return out
}

// Union returns the box covering both b and o. The result's SRID is the
// non-zero SRID of either operand when compatible (original_source's
// stbox_union propagates the known SRID of a non-empty operand into the
// result).
func (b STBox) Union(o STBox) (STBox, error) {
	if err := b.checkCompatible(o); err != nil {
		return STBox{}, err
	}

	out := STBox{HasX: b.HasX, HasZ: b.HasZ, HasT: b.HasT, Geodetic: b.Geodetic, SRID: b.SRID}
	if out.SRID == 0 {
		out.SRID = o.SRID
	}

	if b.HasX {
		out.Xmin, out.Xmax = min(b.Xmin, o.Xmin), max(b.Xmax, o.Xmax)
		out.Ymin, out.Ymax = min(b.Ymin, o.Ymin), max(b.Ymax, o.Ymax)
		if b.HasZ {
			out.Zmin, out.Zmax = min(b.Zmin, o.Zmin), max(b.Zmax, o.Zmax)
		}
	}
	if b.HasT {
		u, ok, _ := b.TSpan.Union(o.TSpan)
		if !ok {
			u = span.Span[int64]{
				Lower: min(b.TSpan.Lower, o.TSpan.Lower), LowerInc: true,
				Upper: max(b.TSpan.Upper, o.TSpan.Upper), UpperInc: false,
				Base: b.TSpan.Base,
			}
		}
		out.TSpan = u
	}

	return out, nil
}

// Intersection returns the overlap of b and o, or ok=false on no overlap.
func (b STBox) Intersection(o STBox) (STBox, bool, error) {
	if err := b.checkCompatible(o); err != nil {
		return STBox{}, false, err
	}

	out := STBox{HasX: b.HasX, HasZ: b.HasZ, HasT: b.HasT, Geodetic: b.Geodetic, SRID: b.SRID}
	if out.SRID == 0 {
		out.SRID = o.SRID
	}

	if b.HasX {
		out.Xmin, out.Xmax = max(b.Xmin, o.Xmin), min(b.Xmax, o.Xmax)
		out.Ymin, out.Ymax = max(b.Ymin, o.Ymin), min(b.Ymax, o.Ymax)
		if out.Xmin > out.Xmax || out.Ymin > out.Ymax {
			return STBox{}, false, nil
		}
		if b.HasZ {
			out.Zmin, out.Zmax = max(b.Zmin, o.Zmin), min(b.Zmax, o.Zmax)
			if out.Zmin > out.Zmax {
				return STBox{}, false, nil
			}
		}
	}
	if b.HasT {
		inter, ok, _ := b.TSpan.Intersection(o.TSpan)
		if !ok {
			return STBox{}, false, nil
		}
		out.TSpan = inter
	}

	return out, true, nil
}

// Overlaps reports whether b and o intersect on every present dimension.
func (b STBox) Overlaps(o STBox) (bool, error) {
	_, ok, err := b.Intersection(o)
	return ok, err
}

// Contains reports whether b fully contains o.
func (b STBox) Contains(o STBox) (bool, error) {
	if err := b.checkCompatible(o); err != nil {
		return false, err
	}
	if b.HasX {
		if o.Xmin < b.Xmin || o.Xmax > b.Xmax || o.Ymin < b.Ymin || o.Ymax > b.Ymax {
			return false, nil
		}
		if b.HasZ && (o.Zmin < b.Zmin || o.Zmax > b.Zmax) {
			return false, nil
		}
	}
	if b.HasT {
		ok, _ := b.TSpan.Contains(o.TSpan)
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports exact equality over all present dimensions, SRID and the
// geodetic flag.
func (b STBox) Equal(o STBox) bool {
	if b.HasX != o.HasX || b.HasZ != o.HasZ || b.HasT != o.HasT || b.Geodetic != o.Geodetic || b.SRID != o.SRID {
		return false
	}
	if b.HasX && (b.Xmin != o.Xmin || b.Xmax != o.Xmax || b.Ymin != o.Ymin || b.Ymax != o.Ymax) {
		return false
	}
	if b.HasZ && (b.Zmin != o.Zmin || b.Zmax != o.Zmax) {
		return false
	}
	if b.HasT && !b.TSpan.Equal(o.TSpan) {
		return false
	}

	return true
}

// Expand grows the spatial dimensions of b by delta on every side.
func (b STBox) Expand(delta float64) STBox {
	if !b.HasX {
		return b
	}
	out := b
	out.Xmin -= delta
	out.Xmax += delta
	out.Ymin -= delta
	out.Ymax += delta
	if out.HasZ {
		out.Zmin -= delta
		out.Zmax += delta
	}

	return out
}

// ShiftTime translates TSpan by deltaMicros.
func (b STBox) ShiftTime(deltaMicros int64) STBox {
	if !b.HasT {
		return b
	}
	out := b
	out.TSpan.Lower += deltaMicros
	out.TSpan.Upper += deltaMicros

	return out
}

// QuadSplit splits b at the midpoint of each present spatial dimension,
// producing 4 quadrants in 2D or 8 octants in 3D.
func (b STBox) QuadSplit() []STBox {
	if !b.HasX {
		return nil
	}

	midX := (b.Xmin + b.Xmax) / 2
	midY := (b.Ymin + b.Ymax) / 2

	type xyRange struct{ xlo, xhi, ylo, yhi float64 }
	quads := []xyRange{
		{b.Xmin, midX, b.Ymin, midY},
		{midX, b.Xmax, b.Ymin, midY},
		{b.Xmin, midX, midY, b.Ymax},
		{midX, b.Xmax, midY, b.Ymax},
	}

	zRanges := []struct{ zlo, zhi float64 }{{0, 0}}
	if b.HasZ {
		midZ := (b.Zmin + b.Zmax) / 2
		zRanges = []struct{ zlo, zhi float64 }{
			{b.Zmin, midZ},
			{midZ, b.Zmax},
		}
	}

	out := make([]STBox, 0, len(quads)*len(zRanges))
	for _, z := range zRanges {
		for _, q := range quads {
			part := b
			part.Xmin, part.Xmax, part.Ymin, part.Ymax = q.xlo, q.xhi, q.ylo, q.yhi
			if b.HasZ {
				part.Zmin, part.Zmax = z.zlo, z.zhi
			}
			out = append(out, part)
		}
	}

	return out
}

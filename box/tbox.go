// Package box implements the TBox and STBox bounding-box types,
// grounded in arloliu-mebo's packed-flags-byte header style
// (section.NumericFlag / section.TextFlag) generalized from "which
// codec/endianness is this blob" to "which dimension is present in this
// box".
package box

import (
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/span"
)

// TBox is a bounding box over a numeric value span and/or a time span.
// A dimension that is absent must not be read; callers
// should check HasX/HasT first.
type TBox struct {
	HasX, HasT bool
	IsInt      bool // true disambiguates TBOXINT from TBOXFLOAT when HasX
	XSpan      span.Span[float64]
	TSpan      span.Span[int64] // microseconds since epoch, see wkb package
}

func (b TBox) checkCompatible(o TBox) error {
	if b.HasX != o.HasX || b.HasT != o.HasT {
		return errs.ErrMixedDimensionality
	}
	if b.HasX && b.IsInt != o.IsInt {
		return errs.ErrMixedBaseType
	}

	return nil
}

// Union returns the box covering both b and o. Missing dimensions in one
// operand exclude that dimension from the result only if absent in both;
// if present in either, both must have it (checkCompatible requires the
// dimension sets to match exactly).
func (b TBox) Union(o TBox) (TBox, error) {
	if err := b.checkCompatible(o); err != nil {
		return TBox{}, err
	}

	out := TBox{HasX: b.HasX, HasT: b.HasT, IsInt: b.IsInt}
	if b.HasX {
		u, ok, _ := b.XSpan.Union(o.XSpan)
		if !ok {
			lower, lowerInc := b.XSpan.Lower, b.XSpan.LowerInc
			if o.XSpan.Lower < lower {
				lower, lowerInc = o.XSpan.Lower, o.XSpan.LowerInc
			}
			upper, upperInc := b.XSpan.Upper, b.XSpan.UpperInc
			if o.XSpan.Upper > upper {
				upper, upperInc = o.XSpan.Upper, o.XSpan.UpperInc
			}
			u = span.Span[float64]{Lower: lower, LowerInc: lowerInc, Upper: upper, UpperInc: upperInc, Base: b.XSpan.Base}
		}
		out.XSpan = u
	}
	if b.HasT {
		u, ok, _ := b.TSpan.Union(o.TSpan)
		if !ok {
			lower, lowerInc := b.TSpan.Lower, b.TSpan.LowerInc
			if o.TSpan.Lower < lower {
				lower, lowerInc = o.TSpan.Lower, o.TSpan.LowerInc
			}
			upper, upperInc := b.TSpan.Upper, b.TSpan.UpperInc
			if o.TSpan.Upper > upper {
				upper, upperInc = o.TSpan.Upper, o.TSpan.UpperInc
			}
			u = span.Span[int64]{Lower: lower, LowerInc: lowerInc, Upper: upper, UpperInc: upperInc, Base: b.TSpan.Base}
		}
		out.TSpan = u
	}

	return out, nil
}

// Intersection returns the box covering the overlap of b and o, or
// ok=false if they do not overlap on every present dimension.
func (b TBox) Intersection(o TBox) (TBox, bool, error) {
	if err := b.checkCompatible(o); err != nil {
		return TBox{}, false, err
	}

	out := TBox{HasX: b.HasX, HasT: b.HasT, IsInt: b.IsInt}
	if b.HasX {
		inter, ok, _ := b.XSpan.Intersection(o.XSpan)
		if !ok {
			return TBox{}, false, nil
		}
		out.XSpan = inter
	}
	if b.HasT {
		inter, ok, _ := b.TSpan.Intersection(o.TSpan)
		if !ok {
			return TBox{}, false, nil
		}
		out.TSpan = inter
	}

	return out, true, nil
}

// Equal reports exact equality over all present dimensions.
func (b TBox) Equal(o TBox) bool {
	if b.HasX != o.HasX || b.HasT != o.HasT {
		return false
	}
	if b.HasX && (b.IsInt != o.IsInt || !b.XSpan.Equal(o.XSpan)) {
		return false
	}
	if b.HasT && !b.TSpan.Equal(o.TSpan) {
		return false
	}

	return true
}

// Contains reports whether b fully contains o on every dimension present
// in b.
func (b TBox) Contains(o TBox) (bool, error) {
	if err := b.checkCompatible(o); err != nil {
		return false, err
	}
	if b.HasX {
		ok, _ := b.XSpan.Contains(o.XSpan)
		if !ok {
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

// Overlaps reports whether b and o intersect on every present dimension.
func (b TBox) Overlaps(o TBox) (bool, error) {
	if err := b.checkCompatible(o); err != nil {
		return false, err
	}
	if b.HasX {
		ok, _ := b.XSpan.Overlaps(o.XSpan)
		if !ok {
			return false, nil
		}
	}
	if b.HasT {
		ok, _ := b.TSpan.Overlaps(o.TSpan)
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// ExpandValue grows XSpan on both sides by delta.
func (b TBox) ExpandValue(delta float64) TBox {
	if !b.HasX {
		return b
	}
	out := b
	out.XSpan.Lower -= delta
	out.XSpan.Upper += delta

	return out
}

// ExpandTime grows TSpan on both sides by deltaMicros.
func (b TBox) ExpandTime(deltaMicros int64) TBox {
	if !b.HasT {
		return b
	}
	out := b
	out.TSpan.Lower -= deltaMicros
	out.TSpan.Upper += deltaMicros

	return out
}

// ShiftTime translates TSpan by deltaMicros.
func (b TBox) ShiftTime(deltaMicros int64) TBox {
	if !b.HasT {
		return b
	}
	out := b
	out.TSpan.Lower += deltaMicros
	out.TSpan.Upper += deltaMicros

	return out
}

// ScaleTime scales TSpan's width by factor, anchored at its lower bound.
func (b TBox) ScaleTime(factor float64) TBox {
	if !b.HasT {
		return b
	}
	out := b
	width := float64(out.TSpan.Upper - out.TSpan.Lower)
	out.TSpan.Upper = out.TSpan.Lower + int64(width*factor)

	return out
}

// ShiftScaleTime applies ShiftTime then ScaleTime.
func (b TBox) ShiftScaleTime(deltaMicros int64, factor float64) TBox {
	return b.ShiftTime(deltaMicros).ScaleTime(factor)
}

// ShiftValue translates XSpan by delta.
func (b TBox) ShiftValue(delta float64) TBox {
	if !b.HasX {
		return b
	}
	out := b
	out.XSpan.Lower += delta
	out.XSpan.Upper += delta

	return out
}

// ScaleValue scales XSpan's width by factor, anchored at its lower bound.
func (b TBox) ScaleValue(factor float64) TBox {
	if !b.HasX {
		return b
	}
	out := b
	width := out.XSpan.Upper - out.XSpan.Lower
	out.XSpan.Upper = out.XSpan.Lower + width*factor

	return out
}

// Compare provides a B-tree-style lexicographic ordering on present
// dimensions (value span first, then time span); a box missing a
// dimension sorts before one that has it.
func (b TBox) Compare(o TBox) int {
	if b.HasX != o.HasX {
		if !b.HasX {
			return -1
		}

		return 1
	}
	if b.HasX {
		if c := b.XSpan.Compare(o.XSpan); c != 0 {
			return c
		}
	}
	if b.HasT != o.HasT {
		if !b.HasT {
			return -1
		}

		return 1
	}
	if b.HasT {
		return b.TSpan.Compare(o.TSpan)
	}

	return 0
}

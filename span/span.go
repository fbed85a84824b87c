// Package span implements the half-open interval algebra
// over ordered base types (int4, int8, float8, date, timestamptz).
//
// Grounded in arloliu-mebo's generic-over-value-type style (its
// encoding.ColumnarEncoder[T comparable] in encoding/columnar.go): a Span
// is parameterized by its Go representation (int64 for int4/int8/date,
// float64 for float8) and carries a catalog.Tag recording which base type
// it actually denotes, since int64 alone can't distinguish int4/int8/date
// and the three have different normalization rules.
package span

import (
	"math"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
)

// Numeric is the set of Go representations spans can be built over.
// Dates are represented as int64 day counts and timestamptz as int64
// microsecond counts; both share the int64 instantiation with int4/int8
// but differ in canonicality (see isCanonical).
type Numeric interface {
	~int64 | ~float64
}

// Span is a half-open interval [Lower, Upper) (or, for non-canonical base
// types, whatever bounds the caller supplied) over an ordered base type.
type Span[T Numeric] struct {
	Lower, Upper         T
	LowerInc, UpperInc   bool
	Base                 catalog.Tag
}

// isCanonical reports whether base is normalized to half-open form on
// construction (int4, int8, date). float8 and timestamptz bounds are
// preserved as given.
func isCanonical(base catalog.Tag) bool {
	switch base {
	case catalog.TagInt4, catalog.TagInt8, catalog.TagDate:
		return true
	default:
		return false
	}
}

// step returns the canonical unit step used to convert an exclusive bound
// to an inclusive one (or vice versa) for canonical base types.
func step[T Numeric](base catalog.Tag) T {
	return T(1)
}

func validateBounds[T Numeric](lower, upper T, lowerInc, upperInc bool) error {
	if lower > upper {
		return errs.ErrInvalidBounds
	}
	if lower == upper && !(lowerInc && upperInc) {
		return errs.ErrEmptySpan
	}

	return nil
}

// Make constructs a Span, normalizing canonical base types to half-open
// [lower, upper) form. It returns ErrInvalidBounds for
// lower > upper and ErrEmptySpan for a degenerate exclusive point.
func Make[T Numeric](lower, upper T, lowerInc, upperInc bool, base catalog.Tag) (Span[T], error) {
	if err := validateBounds(lower, upper, lowerInc, upperInc); err != nil {
		return Span[T]{}, err
	}

	s := Span[T]{Lower: lower, Upper: upper, LowerInc: lowerInc, UpperInc: upperInc, Base: base}
	if isCanonical(base) {
		st := step[T](base)
		if !s.LowerInc {
			s.Lower += st
			s.LowerInc = true
		}
		if s.UpperInc {
			s.Upper += st
			s.UpperInc = false
		}
	}

	return s, nil
}

// MustMake is Make but panics on error; intended for tests and literals.
func MustMake[T Numeric](lower, upper T, lowerInc, upperInc bool, base catalog.Tag) Span[T] {
	s, err := Make(lower, upper, lowerInc, upperInc, base)
	if err != nil {
		panic(err)
	}

	return s
}

// IsCanonical reports whether s's base type normalizes bounds on
// construction.
func (s Span[T]) IsCanonical() bool { return isCanonical(s.Base) }

func checkSameBase[T Numeric](a, b Span[T]) error {
	if a.Base != b.Base {
		return errs.ErrMixedBaseType
	}

	return nil
}

// lowerLess reports whether lower bound (v1,inc1) sorts before (v2,inc2):
// an inclusive lower sorts before an exclusive lower at the same value.
func lowerLess[T Numeric](v1 T, inc1 bool, v2 T, inc2 bool) bool {
	if v1 != v2 {
		return v1 < v2
	}

	return inc1 && !inc2
}

// upperLess reports whether upper bound (v1,inc1) sorts before (v2,inc2):
// an exclusive upper sorts before an inclusive upper at the same value.
func upperLess[T Numeric](v1 T, inc1 bool, v2 T, inc2 bool) bool {
	if v1 != v2 {
		return v1 < v2
	}

	return !inc1 && inc2
}

// Compare implements the lexicographic ordering: first by
// (lower, lower_inc) then by (upper, upper_inc).
func (s Span[T]) Compare(o Span[T]) int {
	if lowerLess(s.Lower, s.LowerInc, o.Lower, o.LowerInc) {
		return -1
	}
	if lowerLess(o.Lower, o.LowerInc, s.Lower, s.LowerInc) {
		return 1
	}
	if upperLess(s.Upper, s.UpperInc, o.Upper, o.UpperInc) {
		return -1
	}
	if upperLess(o.Upper, o.UpperInc, s.Upper, s.UpperInc) {
		return 1
	}

	return 0
}

// Equal reports value-and-inclusivity equality after canonicalization.
func (s Span[T]) Equal(o Span[T]) bool {
	return s.Base == o.Base && s.Compare(o) == 0
}

// Contains reports whether s fully contains o (o's bounds fall within s's).
func (s Span[T]) Contains(o Span[T]) (bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return false, err
	}

	lowerOK := !lowerLess(o.Lower, o.LowerInc, s.Lower, s.LowerInc)
	upperOK := !upperLess(s.Upper, s.UpperInc, o.Upper, o.UpperInc)

	return lowerOK && upperOK, nil
}

// Contained reports whether s is fully contained in o.
func (s Span[T]) Contained(o Span[T]) (bool, error) {
	return o.Contains(s)
}

// Overlaps reports whether s and o share at least one value.
func (s Span[T]) Overlaps(o Span[T]) (bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return false, err
	}

	// Not overlapping iff one lies entirely to the left of the other.
	sLeftOfO := upperLess(s.Upper, s.UpperInc, o.Lower, o.LowerInc) ||
		(s.Upper == o.Lower && !(s.UpperInc && o.LowerInc))
	oLeftOfS := upperLess(o.Upper, o.UpperInc, s.Lower, s.LowerInc) ||
		(o.Upper == s.Lower && !(o.UpperInc && s.LowerInc))

	return !sLeftOfO && !oLeftOfS, nil
}

// Adjacent reports whether s and o share a boundary with complementary
// inclusivity (one's upper equals the other's lower, exactly one of the
// two bounds at that value is inclusive).
func (s Span[T]) Adjacent(o Span[T]) (bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return false, err
	}

	sBeforeO := s.Upper == o.Lower && s.UpperInc != o.LowerInc
	oBeforeS := o.Upper == s.Lower && o.UpperInc != s.LowerInc

	return sBeforeO || oBeforeS, nil
}

// Left reports whether s lies entirely to the left of o (no overlap, no
// adjacency requirement).
func (s Span[T]) Left(o Span[T]) (bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return false, err
	}

	return upperLess(s.Upper, s.UpperInc, o.Lower, o.LowerInc) ||
		(s.Upper == o.Lower && !(s.UpperInc && o.LowerInc)), nil
}

// Right reports whether s lies entirely to the right of o.
func (s Span[T]) Right(o Span[T]) (bool, error) {
	ok, err := o.Left(s)
	return ok, err
}

// OverLeft reports whether s extends to the left of or up to o (s's upper
// bound does not exceed o's upper bound) — i.e. s does not extend to the
// right of o.
func (s Span[T]) OverLeft(o Span[T]) (bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return false, err
	}

	return !upperLess(o.Upper, o.UpperInc, s.Upper, s.UpperInc), nil
}

// OverRight reports whether s does not extend to the left of o.
func (s Span[T]) OverRight(o Span[T]) (bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return false, err
	}

	return !lowerLess(s.Lower, s.LowerInc, o.Lower, o.LowerInc), nil
}

// Intersection returns the overlapping sub-span of s and o. The second
// return value is false (no error) when s and o do not overlap.
func (s Span[T]) Intersection(o Span[T]) (Span[T], bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return Span[T]{}, false, err
	}

	overlaps, _ := s.Overlaps(o)
	if !overlaps {
		return Span[T]{}, false, nil
	}

	lower, lowerInc := s.Lower, s.LowerInc
	if lowerLess(s.Lower, s.LowerInc, o.Lower, o.LowerInc) {
		lower, lowerInc = o.Lower, o.LowerInc
	}

	upper, upperInc := s.Upper, s.UpperInc
	if upperLess(o.Upper, o.UpperInc, s.Upper, s.UpperInc) {
		upper, upperInc = o.Upper, o.UpperInc
	}

	return Span[T]{Lower: lower, Upper: upper, LowerInc: lowerInc, UpperInc: upperInc, Base: s.Base}, true, nil
}

// Union returns the span covering s and o when they overlap or are
// adjacent. The second return value is false when a single span cannot
// represent the union (the caller — spanset — must build a two-element
// span-set in that case).
func (s Span[T]) Union(o Span[T]) (Span[T], bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return Span[T]{}, false, err
	}

	overlaps, _ := s.Overlaps(o)
	adjacent, _ := s.Adjacent(o)
	if !overlaps && !adjacent {
		return Span[T]{}, false, nil
	}

	lower, lowerInc := s.Lower, s.LowerInc
	if lowerLess(o.Lower, o.LowerInc, s.Lower, s.LowerInc) {
		lower, lowerInc = o.Lower, o.LowerInc
	}

	upper, upperInc := s.Upper, s.UpperInc
	if upperLess(s.Upper, s.UpperInc, o.Upper, o.UpperInc) {
		upper, upperInc = o.Upper, o.UpperInc
	}

	return Span[T]{Lower: lower, Upper: upper, LowerInc: lowerInc, UpperInc: upperInc, Base: s.Base}, true, nil
}

// Difference computes s minus o, writing 0, 1, or 2 resulting spans into
// out (which must have length >= 2) and returning the count, matching
// the out-array convention shared with the temporal package's restrict_minus family.
func (s Span[T]) Difference(o Span[T], out []Span[T]) (int, error) {
	if len(out) < 2 {
		panic("span: Difference requires an out slice of length >= 2")
	}
	if err := checkSameBase(s, o); err != nil {
		return 0, err
	}

	overlaps, _ := s.Overlaps(o)
	if !overlaps {
		out[0] = s
		return 1, nil
	}

	contains, _ := o.Contains(s)
	if contains {
		return 0, nil
	}

	n := 0
	// Left remainder: s.Lower..o.Lower
	if lowerLess(s.Lower, s.LowerInc, o.Lower, o.LowerInc) {
		left, err := Make(s.Lower, o.Lower, s.LowerInc, !o.LowerInc, s.Base)
		if err == nil {
			out[n] = left
			n++
		}
	}
	// Right remainder: o.Upper..s.Upper
	if upperLess(o.Upper, o.UpperInc, s.Upper, s.UpperInc) {
		right, err := Make(o.Upper, s.Upper, !o.UpperInc, s.UpperInc, s.Base)
		if err == nil {
			out[n] = right
			n++
		}
	}

	return n, nil
}

// Distance returns 0 when s and o overlap; otherwise the gap size between
// them in base-type units: float64 units for float8, integer step
// count for int4/int8/date (still returned as float64), elapsed
// microseconds for timestamptz.
func (s Span[T]) Distance(o Span[T]) (float64, error) {
	if err := checkSameBase(s, o); err != nil {
		return 0, err
	}

	if overlaps, _ := s.Overlaps(o); overlaps {
		return 0, nil
	}

	left, _ := s.Left(o)
	if left {
		return math.Abs(float64(o.Lower) - float64(s.Upper)), nil
	}

	return math.Abs(float64(s.Lower) - float64(o.Upper)), nil
}

// Width returns the extent of the span in base-type units (Upper-Lower),
// grounded in original_source's span width accessors
// (meos/include/general/span.h span width family).
func (s Span[T]) Width() float64 {
	return float64(s.Upper) - float64(s.Lower)
}

// Package set implements the sorted, duplicate-free set algebra over
// base values, grounded in arloliu-mebo's generic columnar container
// style (encoding.ColumnarEncoder[T comparable]).
package set

import (
	"cmp"
	"slices"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/internal/hash"
	"github.com/chronodb/chronos/span"
)

// Set is a sorted, duplicate-free sequence of base values sharing Base.
// cmp.Ordered covers the int64/float64/string representations used for
// int, float, date, timestamptz, and text base types; spatial (point)
// sets are a distinct type (see PointSet) since geometry values have no
// natural total order.
type Set[T cmp.Ordered] struct {
	Base   catalog.Tag
	Values []T
}

// New builds a Set from values, sorting and de-duplicating them so the
// strictly-increasing invariant holds.
func New[T cmp.Ordered](base catalog.Tag, values []T) (Set[T], error) {
	if len(values) == 0 {
		return Set[T]{}, errs.ErrEmptyContainer
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	return Set[T]{Base: base, Values: sorted}, nil
}

// Len returns the number of distinct values.
func (s Set[T]) Len() int { return len(s.Values) }

// Contains reports whether v is a member of s.
func (s Set[T]) Contains(v T) bool {
	_, ok := slices.BinarySearch(s.Values, v)
	return ok
}

func checkSameBase[T cmp.Ordered](a, b Set[T]) error {
	if a.Base != b.Base {
		return errs.ErrMixedBaseType
	}

	return nil
}

// ContainsSet reports whether every value of o is present in s.
func (s Set[T]) ContainsSet(o Set[T]) (bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return false, err
	}
	for _, v := range o.Values {
		if !s.Contains(v) {
			return false, nil
		}
	}

	return true, nil
}

// Overlaps reports whether s and o share at least one value.
func (s Set[T]) Overlaps(o Set[T]) (bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return false, err
	}
	i, j := 0, 0
	for i < len(s.Values) && j < len(o.Values) {
		switch {
		case s.Values[i] == o.Values[j]:
			return true, nil
		case s.Values[i] < o.Values[j]:
			i++
		default:
			j++
		}
	}

	return false, nil
}

// Union returns the sorted union of s and o.
func (s Set[T]) Union(o Set[T]) (Set[T], error) {
	if err := checkSameBase(s, o); err != nil {
		return Set[T]{}, err
	}
	all := make([]T, 0, len(s.Values)+len(o.Values))
	all = append(all, s.Values...)
	all = append(all, o.Values...)

	return New(s.Base, all)
}

// Intersection returns the sorted intersection of s and o, or ok=false if
// empty.
func (s Set[T]) Intersection(o Set[T]) (Set[T], bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return Set[T]{}, false, err
	}

	var out []T
	i, j := 0, 0
	for i < len(s.Values) && j < len(o.Values) {
		switch {
		case s.Values[i] == o.Values[j]:
			out = append(out, s.Values[i])
			i++
			j++
		case s.Values[i] < o.Values[j]:
			i++
		default:
			j++
		}
	}
	if len(out) == 0 {
		return Set[T]{}, false, nil
	}

	result, err := New(s.Base, out)

	return result, true, err
}

// Difference returns s minus o, or ok=false if empty.
func (s Set[T]) Difference(o Set[T]) (Set[T], bool, error) {
	if err := checkSameBase(s, o); err != nil {
		return Set[T]{}, false, err
	}

	var out []T
	j := 0
	for _, v := range s.Values {
		for j < len(o.Values) && o.Values[j] < v {
			j++
		}
		if j < len(o.Values) && o.Values[j] == v {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return Set[T]{}, false, nil
	}

	result, err := New(s.Base, out)

	return result, true, err
}

// Equal reports whether s and o contain exactly the same values.
func (s Set[T]) Equal(o Set[T]) bool {
	if s.Base != o.Base || len(s.Values) != len(o.Values) {
		return false
	}

	return slices.Equal(s.Values, o.Values)
}

// Hash returns a fast structural hash suitable for an Equal fast-path
// (internal/hash, adapted from arloliu-mebo's metric-identification
// hashing).
func (s Set[T]) Hash() uint64 {
	d := hash.NewDigest()
	d.WriteUint64(uint64(s.Base))
	for _, v := range s.Values {
		switch x := any(v).(type) {
		case int64:
			d.WriteUint64(uint64(x))
		case float64:
			d.WriteUint64(uint64(x))
		case string:
			d.WriteString(x)
		}
	}

	return d.Sum64()
}

// BoundingSpan returns the span from the minimum to maximum value, valid
// for the numeric/time instantiations (int64, float64) of Set. Text sets
// have no span representation, matching the "value-spans (as
// span-set for numeric types)" restriction.
func BoundingSpan[T span.Numeric](s Set[T]) span.Span[T] {
	return span.Span[T]{
		Lower: s.Values[0], LowerInc: true,
		Upper: s.Values[len(s.Values)-1], UpperInc: true,
		Base: s.Base,
	}
}

package set

import (
	"slices"
	"sort"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/geom"
)

// PointSet is the spatial instantiation of the ordered-set algebra:
// geometry/geography values have no natural numeric order, so they are
// kept sorted under geom.Point.Compare (a lexicographic (X,Y,Z) order)
// instead of Go's built-in <.
type PointSet struct {
	Base   catalog.Tag // TagGeomSet or TagGeogSet
	Values []geom.Point
}

// NewPointSet builds a PointSet, sorting and de-duplicating points.
func NewPointSet(base catalog.Tag, values []geom.Point) (PointSet, error) {
	if len(values) == 0 {
		return PointSet{}, errs.ErrEmptyContainer
	}

	sorted := slices.Clone(values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })

	out := sorted[:1]
	for _, p := range sorted[1:] {
		if !p.Equal(out[len(out)-1]) {
			out = append(out, p)
		}
	}

	return PointSet{Base: base, Values: out}, nil
}

// Len returns the number of distinct points.
func (s PointSet) Len() int { return len(s.Values) }

// Contains reports whether v is a member of s.
func (s PointSet) Contains(v geom.Point) bool {
	i := sort.Search(len(s.Values), func(i int) bool { return s.Values[i].Compare(v) >= 0 })
	return i < len(s.Values) && s.Values[i].Equal(v)
}

func (s PointSet) checkSameBase(o PointSet) error {
	if s.Base != o.Base {
		return errs.ErrMixedBaseType
	}

	return nil
}

// Union returns the sorted union of s and o.
func (s PointSet) Union(o PointSet) (PointSet, error) {
	if err := s.checkSameBase(o); err != nil {
		return PointSet{}, err
	}
	all := make([]geom.Point, 0, len(s.Values)+len(o.Values))
	all = append(all, s.Values...)
	all = append(all, o.Values...)

	return NewPointSet(s.Base, all)
}

// Intersection returns the sorted intersection of s and o, or ok=false if
// empty.
func (s PointSet) Intersection(o PointSet) (PointSet, bool, error) {
	if err := s.checkSameBase(o); err != nil {
		return PointSet{}, false, err
	}
	var out []geom.Point
	for _, v := range s.Values {
		if o.Contains(v) {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return PointSet{}, false, nil
	}
	result, err := NewPointSet(s.Base, out)

	return result, true, err
}

// Equal reports whether s and o contain exactly the same points.
func (s PointSet) Equal(o PointSet) bool {
	if s.Base != o.Base || len(s.Values) != len(o.Values) {
		return false
	}
	for i := range s.Values {
		if !s.Values[i].Equal(o.Values[i]) {
			return false
		}
	}

	return true
}

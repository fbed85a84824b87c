// Package spanset implements the disjoint-ordered-sequence-of-spans
// algebra over ordered base types, lifting span.Span's predicates and set
// operations to sequences via an O(n+m) merge walk, grounded in the same
// generic-over-representation style as span.Span.
package spanset

import (
	"sort"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/span"
)

// SpanSet is an ordered sequence of disjoint, non-mergeable spans sharing
// a base type; BoundingSpan computes its bounding span on demand. Empty
// span-sets are not representable.
type SpanSet[T span.Numeric] struct {
	Spans []span.Span[T]
	Base  catalog.Tag
}

// New builds a SpanSet from spans, sorting them and merging any
// overlapping or adjacent runs so the invariant "no two spans are
// mergeable" holds on return. Returns ErrEmptyContainer for an empty
// input.
func New[T span.Numeric](spans []span.Span[T]) (SpanSet[T], error) {
	if len(spans) == 0 {
		return SpanSet[T]{}, errs.ErrEmptyContainer
	}

	base := spans[0].Base
	for _, s := range spans {
		if s.Base != base {
			return SpanSet[T]{}, errs.ErrMixedBaseType
		}
	}

	sorted := make([]span.Span[T], len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })

	merged := make([]span.Span[T], 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if u, ok, _ := cur.Union(next); ok {
			cur = u
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	merged = append(merged, cur)

	return SpanSet[T]{Spans: merged, Base: base}, nil
}

// NumSpans returns the number of disjoint spans (original_source's
// spanset_num_spans, supplementing the core algebra which never names the
// accessor explicitly).
func (ss SpanSet[T]) NumSpans() int { return len(ss.Spans) }

// SpanN returns the n-th span (0-indexed), mirroring original_source's
// spanset_span_n.
func (ss SpanSet[T]) SpanN(n int) (span.Span[T], bool) {
	if n < 0 || n >= len(ss.Spans) {
		return span.Span[T]{}, false
	}

	return ss.Spans[n], true
}

// BoundingSpan returns the span from the first span's lower bound to the
// last span's upper bound.
func (ss SpanSet[T]) BoundingSpan() span.Span[T] {
	first, last := ss.Spans[0], ss.Spans[len(ss.Spans)-1]

	return span.Span[T]{
		Lower: first.Lower, LowerInc: first.LowerInc,
		Upper: last.Upper, UpperInc: last.UpperInc,
		Base: ss.Base,
	}
}

func checkSameBase[T span.Numeric](a, b SpanSet[T]) error {
	if a.Base != b.Base {
		return errs.ErrMixedBaseType
	}

	return nil
}

// Contains reports whether every value in o is covered by some span of
// ss.
func (ss SpanSet[T]) Contains(o SpanSet[T]) (bool, error) {
	if err := checkSameBase(ss, o); err != nil {
		return false, err
	}

	i := 0
	for _, os := range o.Spans {
		covered := false
		for i < len(ss.Spans) {
			if ok, _ := ss.Spans[i].Contains(os); ok {
				covered = true
				break
			}
			left, _ := ss.Spans[i].Left(os)
			if left {
				i++
				continue
			}
			break
		}
		if !covered {
			return false, nil
		}
	}

	return true, nil
}

// Overlaps reports whether ss and o share at least one value, using an
// O(n+m) merge walk over the two sorted sequences.
func (ss SpanSet[T]) Overlaps(o SpanSet[T]) (bool, error) {
	if err := checkSameBase(ss, o); err != nil {
		return false, err
	}

	i, j := 0, 0
	for i < len(ss.Spans) && j < len(o.Spans) {
		a, b := ss.Spans[i], o.Spans[j]
		if ok, _ := a.Overlaps(b); ok {
			return true, nil
		}
		if left, _ := a.Left(b); left {
			i++
		} else {
			j++
		}
	}

	return false, nil
}

// Union merges ss and o into the span-set covering every value in either.
func (ss SpanSet[T]) Union(o SpanSet[T]) (SpanSet[T], error) {
	if err := checkSameBase(ss, o); err != nil {
		return SpanSet[T]{}, err
	}

	all := make([]span.Span[T], 0, len(ss.Spans)+len(o.Spans))
	all = append(all, ss.Spans...)
	all = append(all, o.Spans...)

	return New(all)
}

// Intersection returns the span-set of values present in both ss and o,
// or ok=false if they do not overlap.
func (ss SpanSet[T]) Intersection(o SpanSet[T]) (SpanSet[T], bool, error) {
	if err := checkSameBase(ss, o); err != nil {
		return SpanSet[T]{}, false, err
	}

	var out []span.Span[T]
	i, j := 0, 0
	for i < len(ss.Spans) && j < len(o.Spans) {
		a, b := ss.Spans[i], o.Spans[j]
		if inter, ok, _ := a.Intersection(b); ok {
			out = append(out, inter)
		}
		if upperLess := lessUpper(a, b); upperLess {
			i++
		} else {
			j++
		}
	}

	if len(out) == 0 {
		return SpanSet[T]{}, false, nil
	}

	result, err := New(out)

	return result, true, err
}

func lessUpper[T span.Numeric](a, b span.Span[T]) bool {
	if a.Upper != b.Upper {
		return a.Upper < b.Upper
	}

	return !a.UpperInc && b.UpperInc
}

// Difference returns ss minus o, or ok=false if the result is empty.
func (ss SpanSet[T]) Difference(o SpanSet[T]) (SpanSet[T], bool, error) {
	if err := checkSameBase(ss, o); err != nil {
		return SpanSet[T]{}, false, err
	}

	var out []span.Span[T]
	buf := make([]span.Span[T], 2)
	for _, a := range ss.Spans {
		remaining := []span.Span[T]{a}
		for _, b := range o.Spans {
			var next []span.Span[T]
			for _, r := range remaining {
				n, _ := r.Difference(b, buf)
				next = append(next, buf[:n]...)
			}
			remaining = next
			if len(remaining) == 0 {
				break
			}
		}
		out = append(out, remaining...)
	}

	if len(out) == 0 {
		return SpanSet[T]{}, false, nil
	}

	result, err := New(out)

	return result, true, err
}

// Equal reports whether ss and o contain exactly the same spans.
func (ss SpanSet[T]) Equal(o SpanSet[T]) bool {
	if ss.Base != o.Base || len(ss.Spans) != len(o.Spans) {
		return false
	}
	for i := range ss.Spans {
		if !ss.Spans[i].Equal(o.Spans[i]) {
			return false
		}
	}

	return true
}

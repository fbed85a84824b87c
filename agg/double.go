// Package agg implements temporal aggregation over tfloat-valued inputs:
// incremental accumulators that combine several temporal values sampled
// at the same instants into one aggregated temporal value, following the
// transfn/combinefn/finalfn shape of original_source's aggregate function
// families (meos_catalog.c's double2/double3 accumulator types) without
// reproducing their SQL aggregate wiring.
package agg

// Double2 is a running (sum, count) pair, the width-2 internal
// accumulator original_source uses for temporal average.
type Double2 struct {
	Sum   float64
	Count float64
}

// Add folds one more sample into d.
func (d Double2) Add(v float64) Double2 {
	return Double2{Sum: d.Sum + v, Count: d.Count + 1}
}

// Combine merges two partial accumulators (the combinefn step, letting
// Transfn run independently over disjoint input subsets before a final
// merge).
func (d Double2) Combine(o Double2) Double2 {
	return Double2{Sum: d.Sum + o.Sum, Count: d.Count + o.Count}
}

// Avg is the finalfn for temporal average; zero on an empty accumulator.
func (d Double2) Avg() float64 {
	if d.Count == 0 {
		return 0
	}

	return d.Sum / d.Count
}

// Double3 additionally tracks the sum of squares, the width-3 internal
// accumulator original_source uses wherever a temporal aggregate needs a
// second moment (e.g. variance).
type Double3 struct {
	Sum   float64
	SumSq float64
	Count float64
}

// Add folds one more sample into d.
func (d Double3) Add(v float64) Double3 {
	return Double3{Sum: d.Sum + v, SumSq: d.SumSq + v*v, Count: d.Count + 1}
}

// Combine merges two partial accumulators.
func (d Double3) Combine(o Double3) Double3 {
	return Double3{Sum: d.Sum + o.Sum, SumSq: d.SumSq + o.SumSq, Count: d.Count + o.Count}
}

// Mean is the finalfn for temporal average computed from a Double3.
func (d Double3) Mean() float64 {
	if d.Count == 0 {
		return 0
	}

	return d.Sum / d.Count
}

// Variance is the finalfn for temporal population variance.
func (d Double3) Variance() float64 {
	if d.Count == 0 {
		return 0
	}

	mean := d.Mean()

	return d.SumSq/d.Count - mean*mean
}

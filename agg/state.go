package agg

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/chronodb/chronos/temporal"
)

// State accumulates samples contributed by successive calls to Transfn,
// keyed by the instant at which each sample was taken. It aggregates at
// the union of instants its inputs actually carry (a point-sample
// aggregation), rather than reconstructing continuous interval coverage
// between them — a deliberately narrower scope than original_source's
// full aggregate machinery, matching the transfn/combinefn/finalfn shape
// without the interval bookkeeping.
type State struct {
	times   []time.Time
	samples [][]float64
}

// NewState returns an empty accumulator.
func NewState() *State {
	return &State{}
}

func (s *State) indexOf(t time.Time) int {
	i := sort.Search(len(s.times), func(i int) bool { return !s.times[i].Before(t) })
	if i < len(s.times) && s.times[i].Equal(t) {
		return i
	}

	s.times = append(s.times, time.Time{})
	copy(s.times[i+1:], s.times[i:])
	s.times[i] = t

	s.samples = append(s.samples, nil)
	copy(s.samples[i+1:], s.samples[i:])
	s.samples[i] = nil

	return i
}

// Transfn folds every instant of seq into the accumulator.
func (s *State) Transfn(seq temporal.Sequence[float64]) {
	for i := 0; i < seq.NumInstants(); i++ {
		inst := seq.InstantN(i)
		idx := s.indexOf(inst.Time)
		s.samples[idx] = append(s.samples[idx], inst.Value)
	}
}

// Combine merges another independently accumulated State into s (the
// combinefn step for parallel aggregation over disjoint input subsets).
func (s *State) Combine(o *State) {
	for i, t := range o.times {
		idx := s.indexOf(t)
		s.samples[idx] = append(s.samples[idx], o.samples[i]...)
	}
}

// finalize builds a Step sequence from per-instant values produced by f,
// skipping timestamps with no contributing samples.
func (s *State) finalize(f func(samples []float64) float64) (temporal.Sequence[float64], error) {
	instants := make([]temporal.Instant[float64], 0, len(s.times))
	for i, t := range s.times {
		if len(s.samples[i]) == 0 {
			continue
		}
		instants = append(instants, temporal.NewInstant(f(s.samples[i]), t))
	}

	return temporal.NewSequence(instants, true, true, temporal.Step, temporal.FloatTraits{})
}

// Count is the finalfn for temporal count: the number of samples
// contributed at each instant.
func (s *State) Count() (temporal.Sequence[float64], error) {
	return s.finalize(func(samples []float64) float64 { return float64(len(samples)) })
}

// Sum is the finalfn for temporal sum.
func (s *State) Sum() (temporal.Sequence[float64], error) {
	return s.finalize(func(samples []float64) float64 {
		total := 0.0
		for _, v := range samples {
			total += v
		}

		return total
	})
}

// Avg is the finalfn for temporal average, computed via gonum/stat.Mean.
func (s *State) Avg() (temporal.Sequence[float64], error) {
	return s.finalize(func(samples []float64) float64 { return stat.Mean(samples, nil) })
}

// Variance is the finalfn for temporal variance, computed via
// gonum/stat.Variance (unbiased sample variance, dividing by n-1;
// instants with a single contributing sample report zero).
func (s *State) Variance() (temporal.Sequence[float64], error) {
	return s.finalize(func(samples []float64) float64 {
		if len(samples) < 2 {
			return 0
		}

		return stat.Variance(samples, nil)
	})
}

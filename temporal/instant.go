package temporal

import "time"

// Instant is a single (value, timestamp) pair, the base case of the
// temporal value hierarchy. A bare Instant is always Discrete.
type Instant[T any] struct {
	Value T
	Time  time.Time
}

// NewInstant constructs an Instant. There is no invalid construction: any
// value at any timestamp is a well-formed instant.
func NewInstant[T any](value T, t time.Time) Instant[T] {
	return Instant[T]{Value: value, Time: t}
}

// Kind reports this value's position in the temporal hierarchy.
func (Instant[T]) Kind() Kind { return KindInstant }

// TimeSpan returns the degenerate [Time, Time] instant span.
func (i Instant[T]) TimeSpan() (time.Time, time.Time) { return i.Time, i.Time }

// Equal reports value-and-timestamp equality using traits for the value
// comparison.
func (i Instant[T]) Equal(o Instant[T], traits ValueTraits[T]) bool {
	return i.Time.Equal(o.Time) && traits.Equal(i.Value, o.Value)
}

// Package temporal implements the tagged union {Instant, Sequence,
// SequenceSet} x {Discrete, Step, Linear} core of the temporal value
// hierarchy.
//
// The source's tag-driven pointer casts are
// replaced here by a closed Go sum type: Temporal[T] is implemented by
// exactly Instant[T], Sequence[T], and SequenceSet[T] (value receivers),
// and Kind() reports which of the three a value is. The base value
// type remains a type parameter (not a further runtime tag) because Go
// generics let the compiler, not a switch, specialize per base type; the
// handful of base-type-specific behaviors assigned to a
// classification predicate (continuity, ordering, spatial interpolation)
// are captured in the small ValueTraits[T] interface below, grounded in
// arloliu-mebo's per-type encoder interfaces
// (encoding.ColumnarEncoder[T comparable]).
package temporal

import "github.com/chronodb/chronos/geom"

// Interpolation is the policy for values between instants (the
// GLOSSARY).
type Interpolation uint8

const (
	Discrete Interpolation = iota
	Step
	Linear
)

func (i Interpolation) String() string {
	switch i {
	case Discrete:
		return "Discrete"
	case Step:
		return "Step"
	case Linear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// ValueTraits supplies the operations a generic temporal routine needs
// over T without a runtime type switch: equality, a total order (used for
// min/max and for detecting collinearity), and — for continuous base
// types only — linear interpolation between two values at a fraction in
// [0,1].
type ValueTraits[T any] interface {
	// Equal reports value equality.
	Equal(a, b T) bool
	// Compare returns -1/0/1; implementations for base types with no
	// natural order (bool) may impose an arbitrary total order, used only
	// for deterministic Set construction, never for domain semantics.
	Compare(a, b T) int
	// Continuous reports whether Interpolate is meaningful for T. Linear
	// sequences require this to be true.
	Continuous() bool
	// Interpolate returns the value at fraction frac (0..1) of the way
	// from a to b. Only called when Continuous() is true.
	Interpolate(a, b T, frac float64) T
	// Fraction returns the fraction in [0,1] at which the linear segment
	// from a to b equals v, and ok=false if v does not lie on that
	// segment. Used by restrict_at(value) to synthesize a crossing
	// instant for Linear sequences (original_source's
	// tsequence_value_at_timestamp / tfloatseq crossing logic in
	// meos/general/temporal_restrict.c). Types with no natural order
	// (bool, text) always return ok=false.
	Fraction(a, b, v T) (frac float64, ok bool)
}

// BoolTraits implements ValueTraits[bool] for tbool.
type BoolTraits struct{}

func (BoolTraits) Equal(a, b bool) bool { return a == b }
func (BoolTraits) Compare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}

	return 1
}
func (BoolTraits) Continuous() bool                        { return false }
func (BoolTraits) Interpolate(a, b bool, frac float64) bool { return a }
func (BoolTraits) Fraction(a, b, v bool) (float64, bool)    { return 0, false }

// IntTraits implements ValueTraits[int64] for tint. tint is not
// continuous in the base type sense (int4/int8 are not in the
// continuous base type set), so Continuous reports false and
// NewSequence rejects a Linear tint sequence. Interpolate is therefore
// not reached through a Sequence; called directly, it rounds half-up
// (floor(v+0.5)) to the nearest integer.
type IntTraits struct{}

func (IntTraits) Equal(a, b int64) bool  { return a == b }
func (IntTraits) Compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
func (IntTraits) Continuous() bool { return false }
func (IntTraits) Interpolate(a, b int64, frac float64) int64 {
	v := float64(a) + (float64(b)-float64(a))*frac
	r := int64(v + 0.5)
	if float64(r) > v+0.5 {
		r-- // int64() truncates toward zero; step down to the floor for negatives
	}

	return r
}

func (IntTraits) Fraction(a, b, v int64) (float64, bool) {
	if a == b {
		if v == a {
			return 0, true
		}

		return 0, false
	}
	frac := float64(v-a) / float64(b-a)
	if frac < 0 || frac > 1 {
		return 0, false
	}

	return frac, true
}

// FloatTraits implements ValueTraits[float64] for tfloat.
type FloatTraits struct{}

func (FloatTraits) Equal(a, b float64) bool { return a == b }
func (FloatTraits) Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
func (FloatTraits) Continuous() bool { return true }
func (FloatTraits) Interpolate(a, b float64, frac float64) float64 {
	return a + (b-a)*frac
}

func (FloatTraits) Fraction(a, b, v float64) (float64, bool) {
	if a == b {
		if v == a {
			return 0, true
		}

		return 0, false
	}
	frac := (v - a) / (b - a)
	if frac < 0 || frac > 1 {
		return 0, false
	}

	return frac, true
}

// TextTraits implements ValueTraits[string] for ttext. ttext is never
// continuous.
type TextTraits struct{}

func (TextTraits) Equal(a, b string) bool { return a == b }
func (TextTraits) Compare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
func (TextTraits) Continuous() bool                             { return false }
func (TextTraits) Interpolate(a, b string, frac float64) string { return a }
func (TextTraits) Fraction(a, b, v string) (float64, bool)       { return 0, false }

// PointTraits implements ValueTraits[geom.Point] for tgeompoint/tgeogpoint,
// grounded in original_source's tpoint interpolation (meos/point,
// point_tpoint.c) and chronos's geom package Euclidean fallback. Geodesic
// interpolation/distance is left to a host-supplied geom.Provider (the
// geometry/geography library is an opaque boundary, a
// carried-over Non-goal); PointTraits itself always takes the Euclidean
// path.
type PointTraits struct{}

func (PointTraits) Equal(a, b geom.Point) bool   { return a.Equal(b) }
func (PointTraits) Compare(a, b geom.Point) int  { return a.Compare(b) }
func (PointTraits) Continuous() bool             { return true }
func (PointTraits) Interpolate(a, b geom.Point, frac float64) geom.Point {
	return geom.Interpolate(a, b, frac)
}

// Fraction solves for the fraction along a-b at which the Euclidean
// interpolation equals v (within eps), using whichever coordinate axis
// has the largest span to avoid division by a near-zero delta.
func (PointTraits) Fraction(a, b, v geom.Point) (float64, bool) {
	const eps = 1e-9

	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	axis, d, av, vv := dx, dx, a.X, v.X
	if abs(dy) > abs(axis) {
		axis, d, av, vv = dy, dy, a.Y, v.Y
	}
	if a.HasZ && b.HasZ && v.HasZ && abs(dz) > abs(axis) {
		axis, d, av, vv = dz, dz, a.Z, v.Z
	}

	if abs(d) < eps {
		if a.Equal(v) {
			return 0, true
		}

		return 0, false
	}

	frac := (vv - av) / d
	if frac < -eps || frac > 1+eps {
		return 0, false
	}
	frac = clamp01(frac)

	if !v.EqualWithinAbs(geom.Interpolate(a, b, frac), 1e-6) {
		return 0, false
	}

	return frac, true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

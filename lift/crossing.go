package lift

import (
	"time"

	"gonum.org/v1/gonum/floats"
)

// tolerance is the epsilon used when comparing floating point lifted
// results (e.g. deciding whether a crossing lands exactly on an existing
// instant), following the numeric-analysis convention gonum/floats
// itself ships with (EqualWithinAbs).
const tolerance = 1e-6

// ApproxEqual reports whether a and b are within tolerance.
func ApproxEqual(a, b float64) bool { return floats.EqualWithinAbs(a, b, tolerance) }

// FloatCrossing finds the instant within [t0, t1] at which two Linear
// segments a(t) (through (t0,a0)-(t1,a1)) and b(t) (through
// (t0,b0)-(t1,b1)) are equal, i.e. where their difference changes sign.
// Both segments are linear on [t0,t1], so their difference is linear too
// and its root is exact. If the difference is zero (within tolerance) at
// t0 or t1, that endpoint is returned with ok=true; otherwise ok is false
// if there is no sign change (the segments don't cross inside the
// interval).
func FloatCrossing(a0, a1, b0, b1 float64, t0, t1 time.Time) (time.Time, bool) {
	d0, d1 := a0-b0, a1-b1
	if ApproxEqual(d0, 0) {
		return t0, true
	}
	if ApproxEqual(d1, 0) {
		return t1, true
	}
	if (d0 > 0) == (d1 > 0) {
		return time.Time{}, false
	}

	frac := d0 / (d0 - d1)
	total := t1.Sub(t0)

	return t0.Add(time.Duration(float64(total) * frac)), true
}

// IntCrossing is FloatCrossing over int64-valued linear segments.
func IntCrossing(a0, a1, b0, b1 int64, t0, t1 time.Time) (time.Time, bool) {
	return FloatCrossing(float64(a0), float64(a1), float64(b0), float64(b1), t0, t1)
}

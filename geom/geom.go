// Package geom defines the minimal spatial value and the boundary
// interface the engine consumes from the host geometry/geography library.
// The geometry/geography library itself (intersection,
// distance, length, interpolation, SRID, WKB I/O for arbitrary shapes) is
// OUT OF SCOPE — treated as a black-box geometry provider. chronos only
// needs a Point value (the payload of tgeompoint/tgeogpoint and of
// STBox's X/Y/Z dimensions) plus the handful of operations the temporal
// and lifting layers call through Provider.
package geom

import "math"

// Point is a 2D or 3D coordinate. HasZ distinguishes a genuinely 3D point
// from a 2D one with an unused Z field (mirrors how STBox tracks HasZ
// separately from its numeric fields).
type Point struct {
	X, Y, Z float64
	HasZ    bool
}

// Equal reports coordinate equality (bit-exact; callers needing the
// ε=1e-6 tolerance should use EqualWithinAbs instead).
func (p Point) Equal(o Point) bool {
	if p.HasZ != o.HasZ {
		return false
	}

	return p.X == o.X && p.Y == o.Y && (!p.HasZ || p.Z == o.Z)
}

// EqualWithinAbs reports coordinate equality within absolute tolerance
// eps, the engine's epsilon-comparison numeric semantics.
func (p Point) EqualWithinAbs(o Point, eps float64) bool {
	if p.HasZ != o.HasZ {
		return false
	}
	close := math.Abs(p.X-o.X) <= eps && math.Abs(p.Y-o.Y) <= eps
	if p.HasZ {
		close = close && math.Abs(p.Z-o.Z) <= eps
	}

	return close
}

// Compare imposes a total lexicographic (X,Y,Z) order over points so they
// can form a Set (the ordered-set algebra generalized to a base type
// with no natural numeric order).
func (p Point) Compare(o Point) int {
	if p.X != o.X {
		return cmpFloat(p.X, o.X)
	}
	if p.Y != o.Y {
		return cmpFloat(p.Y, o.Y)
	}

	return cmpFloat(p.Z, o.Z)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// DistanceEuclidean returns the straight-line distance between two
// points, used as the default Provider.Distance implementation for plain
// (non-geodetic) geometry. A geography Provider implementing geodesic
// (great-circle) distance should be substituted by the host.
func DistanceEuclidean(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	if a.HasZ || b.HasZ {
		dz := a.Z - b.Z
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}

	return math.Sqrt(dx*dx + dy*dy)
}

// Interpolate returns the point at fraction frac (0..1) along the
// straight line from a to b, used by Linear interpolation of
// tgeompoint/tgeogpoint (the Linear value-between-instants rule). A
// geodetic Provider should override this with great-circle
// interpolation; the straight-line approximation here is adequate for
// non-geodetic geometry.
func Interpolate(a, b Point, frac float64) Point {
	p := Point{
		X:    a.X + (b.X-a.X)*frac,
		Y:    a.Y + (b.Y-a.Y)*frac,
		HasZ: a.HasZ || b.HasZ,
	}
	if p.HasZ {
		p.Z = a.Z + (b.Z-a.Z)*frac
	}

	return p
}

// Provider is the interface the engine consumes from the host geometry
// library, kept intentionally small: the core never parses WKB shapes,
// computes real intersections, or projects SRIDs itself — it delegates.
type Provider interface {
	// Intersects reports whether two geometries intersect.
	Intersects(a, b []byte) (bool, error)
	// Distance returns the shortest distance between two geometries.
	Distance(a, b []byte) (float64, error)
	// Length returns the length of a linear geometry.
	Length(g []byte) (float64, error)
	// SRID returns the spatial reference identifier embedded in g.
	SRID(g []byte) (int32, error)
	// AsWKB serializes a Point to the host library's WKB point encoding.
	AsWKB(p Point, srid int32) ([]byte, error)
	// PointFromWKB parses the host library's WKB point encoding.
	PointFromWKB(data []byte) (Point, int32, error)
}

// Package errs defines the sentinel error taxonomy shared by every chronos
// package. Callers should match with errors.Is against the sentinels below;
// call sites wrap them with fmt.Errorf("%w: ...") to attach detail.
package errs

import "errors"

var (
	// ErrInvalidType is returned when a tag does not satisfy an operation's
	// precondition (e.g. calling a span predicate on a non-span tag).
	ErrInvalidType = errors.New("chronos: invalid type")

	// ErrInvalidBounds is returned by a span/box constructor that received
	// non-monotone bounds (lower > upper).
	ErrInvalidBounds = errors.New("chronos: invalid bounds")

	// ErrEmptySpan is returned when lower == upper with at least one
	// exclusive bound, which denotes an empty (unrepresentable) span.
	ErrEmptySpan = errors.New("chronos: empty span")

	// ErrMixedBaseType is returned when two arguments have incompatible
	// base types.
	ErrMixedBaseType = errors.New("chronos: mixed base type")

	// ErrMixedInterpolation is returned when two temporal values with
	// incompatible interpolation (discrete vs continuous) are combined
	// without an explicit conversion.
	ErrMixedInterpolation = errors.New("chronos: mixed interpolation")

	// ErrMixedGeodetic is returned when spatial arguments disagree on the
	// geodetic flag.
	ErrMixedGeodetic = errors.New("chronos: mixed geodetic flag")

	// ErrMixedSRID is returned when spatial arguments disagree on SRID.
	ErrMixedSRID = errors.New("chronos: mixed SRID")

	// ErrMixedDimensionality is returned when spatial arguments disagree
	// on which dimensions (X/Z/T) are present.
	ErrMixedDimensionality = errors.New("chronos: mixed dimensionality")

	// ErrNotContinuous is returned when a Linear-only operation is invoked
	// on Step/Discrete input.
	ErrNotContinuous = errors.New("chronos: not continuous")

	// ErrOutOfRange is returned on numeric overflow or an epoch-range
	// violation.
	ErrOutOfRange = errors.New("chronos: out of range")

	// ErrBadWKB is a WKB parser error.
	ErrBadWKB = errors.New("chronos: bad WKB")

	// ErrBadHexWKB is a HexWKB parser error.
	ErrBadHexWKB = errors.New("chronos: bad hex WKB")

	// ErrBadMFJSON is an MF-JSON parser error.
	ErrBadMFJSON = errors.New("chronos: bad MF-JSON")

	// ErrUnsupported is returned when the type catalog does not yet
	// implement the requested combination.
	ErrUnsupported = errors.New("chronos: unsupported")

	// ErrEmptyContainer is returned by constructors that refuse an empty
	// set/span-set (neither is representable).
	ErrEmptyContainer = errors.New("chronos: empty container not representable")

	// ErrNonMonotonicSequence is returned when a Sequence constructor is
	// given instants whose timestamps do not strictly increase.
	ErrNonMonotonicSequence = errors.New("chronos: sequence timestamps not strictly increasing")

	// ErrOverlappingSequences is returned when a SequenceSet constructor
	// is given sequences that overlap in time.
	ErrOverlappingSequences = errors.New("chronos: overlapping sequences")

	// ErrInstantTimestampCollision is returned by append_instant when the
	// new instant's timestamp equals the sequence's last and the values
	// differ.
	ErrInstantTimestampCollision = errors.New("chronos: instant timestamp collision")

	// ErrInvalidInterpolation is returned when an interpolation tag is
	// incompatible with the base type (e.g. Linear on a non-continuous
	// base type) or otherwise malformed.
	ErrInvalidInterpolation = errors.New("chronos: invalid interpolation")

	// ErrInvalidWidth is returned when a tile bin width is zero or
	// negative.
	ErrInvalidWidth = errors.New("chronos: invalid bin width")
)

// Package catalog identifies every chronos value by a tag drawn from a
// closed enumeration and answers O(1) classification questions about those
// tags, grounded in arloliu-mebo's format.EncodingType/CompressionType
// closed-enum-with-String() pattern (format/types.go) and generalized from
// one packed byte to the full type lattice this module describes.
//
// The table is initialized once at package init and never mutated
// thereafter: the table is process-wide, read-only state.
package catalog

import "github.com/chronodb/chronos/errs"

// Tag identifies the precise type of a chronos value.
type Tag uint8

const (
	TagInvalid Tag = iota

	// Base types.
	TagBool
	TagInt4
	TagInt8
	TagFloat8
	TagText
	TagDate
	TagTimestamptz
	TagGeometry
	TagGeography
	TagDouble2 // internal, aggregation accumulator
	TagDouble3 // internal, aggregation accumulator
	TagDouble4 // internal, aggregation accumulator

	// Set types, one per alphanumeric/temporal/spatial base type.
	TagIntSet
	TagFloatSet
	TagTextSet
	TagDateSet
	TagTimestamptzSet
	TagGeomSet
	TagGeogSet

	// Span types, over ordered base types.
	TagIntSpan
	TagFloatSpan
	TagDateSpan
	TagTimestamptzSpan

	// Span-set types.
	TagIntSpanSet
	TagFloatSpanSet
	TagDateSpanSet
	TagTimestamptzSpanSet

	// Temporal types.
	TagTBool
	TagTInt
	TagTFloat
	TagTText
	TagTGeomPoint
	TagTGeogPoint
	TagTDouble2 // internal
	TagTDouble3 // internal

	// Box types.
	TagTBox
	TagSTBox
)

type props struct {
	name       string
	byteWidth  int // -1 = variable length
	byValue    bool
	continuous bool
	spatial    bool
	numeric    bool
	isTime     bool
	kind       kind
	base       Tag // for set/span/spanset/temporal: the underlying base type
}

type kind uint8

const (
	kindBase kind = iota
	kindSet
	kindSpan
	kindSpanSet
	kindTemporal
	kindBox
)

// table is the process-wide tag->metadata map, built once at init and never
// mutated afterward.
var table = map[Tag]props{
	TagBool:        {"bool", 1, true, false, false, false, false, kindBase, TagInvalid},
	TagInt4:        {"int4", 4, true, false, false, true, false, kindBase, TagInvalid},
	TagInt8:        {"int8", 8, true, false, false, true, false, kindBase, TagInvalid},
	TagFloat8:      {"float8", 8, true, true, false, true, false, kindBase, TagInvalid},
	TagText:        {"text", -1, false, false, false, false, false, kindBase, TagInvalid},
	TagDate:        {"date", 4, true, false, false, false, true, kindBase, TagInvalid},
	TagTimestamptz: {"timestamptz", 8, true, true, false, false, true, kindBase, TagInvalid},
	TagGeometry:    {"geometry", -1, false, true, true, false, false, kindBase, TagInvalid},
	TagGeography:   {"geography", -1, false, true, true, false, false, kindBase, TagInvalid},
	TagDouble2:     {"double2", 16, true, true, false, true, false, kindBase, TagInvalid},
	TagDouble3:     {"double3", 24, true, true, false, true, false, kindBase, TagInvalid},
	TagDouble4:     {"double4", 32, true, true, false, true, false, kindBase, TagInvalid},

	TagIntSet:        {"intset", -1, false, false, false, true, false, kindSet, TagInt8},
	TagFloatSet:      {"floatset", -1, false, false, false, true, false, kindSet, TagFloat8},
	TagTextSet:       {"textset", -1, false, false, false, false, false, kindSet, TagText},
	TagDateSet:       {"dateset", -1, false, false, false, false, true, kindSet, TagDate},
	TagTimestamptzSet: {"tstzset", -1, false, false, false, false, true, kindSet, TagTimestamptz},
	TagGeomSet:       {"geomset", -1, false, false, true, false, false, kindSet, TagGeometry},
	TagGeogSet:       {"geogset", -1, false, false, true, false, false, kindSet, TagGeography},

	TagIntSpan:        {"intspan", 17, true, false, false, true, false, kindSpan, TagInt8},
	TagFloatSpan:       {"floatspan", 17, true, true, false, true, false, kindSpan, TagFloat8},
	TagDateSpan:        {"datespan", 9, true, false, false, false, true, kindSpan, TagDate},
	TagTimestamptzSpan: {"tstzspan", 17, true, true, false, false, true, kindSpan, TagTimestamptz},

	TagIntSpanSet:        {"intspanset", -1, false, false, false, true, false, kindSpanSet, TagIntSpan},
	TagFloatSpanSet:       {"floatspanset", -1, false, false, false, true, false, kindSpanSet, TagFloatSpan},
	TagDateSpanSet:        {"datespanset", -1, false, false, false, false, true, kindSpanSet, TagDateSpan},
	TagTimestamptzSpanSet: {"tstzspanset", -1, false, false, false, false, true, kindSpanSet, TagTimestamptzSpan},

	TagTBool:      {"tbool", -1, false, false, false, false, false, kindTemporal, TagBool},
	TagTInt:       {"tint", -1, false, false, false, true, false, kindTemporal, TagInt8},
	TagTFloat:     {"tfloat", -1, false, true, false, true, false, kindTemporal, TagFloat8},
	TagTText:      {"ttext", -1, false, false, false, false, false, kindTemporal, TagText},
	TagTGeomPoint: {"tgeompoint", -1, false, true, true, false, false, kindTemporal, TagGeometry},
	TagTGeogPoint: {"tgeogpoint", -1, false, true, true, false, false, kindTemporal, TagGeography},
	TagTDouble2:   {"tdouble2", -1, false, true, false, true, false, kindTemporal, TagDouble2},
	TagTDouble3:   {"tdouble3", -1, false, true, false, true, false, kindTemporal, TagDouble3},

	TagTBox:  {"tbox", -1, false, false, false, true, false, kindBox, TagInvalid},
	TagSTBox: {"stbox", -1, false, false, true, false, false, kindBox, TagInvalid},
}

func lookup(t Tag) (props, error) {
	p, ok := table[t]
	if !ok {
		return props{}, errs.ErrInvalidType
	}

	return p, nil
}

// Name returns the catalog name of tag (e.g. "tfloat", "intspan").
func Name(t Tag) string {
	p, err := lookup(t)
	if err != nil {
		return "invalid"
	}

	return p.name
}

func (t Tag) String() string { return Name(t) }

// IsContinuous reports whether values of this base type interpolate
// (float8, timestamptz, geometry, geography, and the internal doubleN
// accumulator types).
func IsContinuous(t Tag) bool {
	p, err := lookup(t)
	if err != nil {
		return false
	}

	return p.continuous
}

// IsByValue reports whether the base type is passed by value (fixed-size,
// no heap indirection needed for storage).
func IsByValue(t Tag) bool {
	p, err := lookup(t)
	if err != nil {
		return false
	}

	return p.byValue
}

// IsVariableLength reports whether the base type has no fixed byte width.
func IsVariableLength(t Tag) bool {
	p, err := lookup(t)
	if err != nil {
		return false
	}

	return p.byteWidth < 0
}

// ByteWidth returns the fixed byte width of t's base encoding, or -1 for
// variable-length types.
func ByteWidth(t Tag) int {
	p, err := lookup(t)
	if err != nil {
		return -1
	}

	return p.byteWidth
}

// IsSpatial reports whether t is a geometry/geography-backed type.
func IsSpatial(t Tag) bool {
	p, err := lookup(t)
	if err != nil {
		return false
	}

	return p.spatial
}

// IsNumeric reports whether t is backed by a numeric base type that
// supports span construction (int4, int8, float8, and the internal
// doubleN types).
func IsNumeric(t Tag) bool {
	p, err := lookup(t)
	if err != nil {
		return false
	}

	return p.numeric
}

// IsTime reports whether t is backed by date or timestamptz.
func IsTime(t Tag) bool {
	p, err := lookup(t)
	if err != nil {
		return false
	}

	return p.isTime
}

func isKind(t Tag, k kind) bool {
	p, err := lookup(t)
	if err != nil {
		return false
	}

	return p.kind == k
}

// IsSet reports whether t is a set type.
func IsSet(t Tag) bool { return isKind(t, kindSet) }

// IsSpan reports whether t is a span type.
func IsSpan(t Tag) bool { return isKind(t, kindSpan) }

// IsSpanSet reports whether t is a span-set type.
func IsSpanSet(t Tag) bool { return isKind(t, kindSpanSet) }

// IsTemporal reports whether t is a temporal type.
func IsTemporal(t Tag) bool { return isKind(t, kindTemporal) }

// IsBox reports whether t is a box type (TBox/STBox).
func IsBox(t Tag) bool { return isKind(t, kindBox) }

// BaseTypeOf returns the underlying base type of a set/span/span-set/
// temporal tag, or ErrInvalidType if t has no base type (e.g. t is itself
// a base type, or a box type).
func BaseTypeOf(t Tag) (Tag, error) {
	p, err := lookup(t)
	if err != nil {
		return TagInvalid, err
	}
	if p.base == TagInvalid {
		return TagInvalid, errs.ErrInvalidType
	}

	return p.base, nil
}

// reverse indexes, built once from table at init time.
var (
	spanTypeOf    = map[Tag]Tag{}
	setTypeOf     = map[Tag]Tag{}
	spanSetTypeOf = map[Tag]Tag{}
)

func init() {
	for tag, p := range table {
		switch p.kind {
		case kindSpan:
			spanTypeOf[p.base] = tag
		case kindSet:
			setTypeOf[p.base] = tag
		case kindSpanSet:
			spanSetTypeOf[p.base] = tag
		}
	}
}

// SpanTypeOf returns the span tag whose base type is basetype.
func SpanTypeOf(basetype Tag) (Tag, error) {
	t, ok := spanTypeOf[basetype]
	if !ok {
		return TagInvalid, errs.ErrInvalidType
	}

	return t, nil
}

// SetTypeOf returns the set tag whose base type is basetype.
func SetTypeOf(basetype Tag) (Tag, error) {
	t, ok := setTypeOf[basetype]
	if !ok {
		return TagInvalid, errs.ErrInvalidType
	}

	return t, nil
}

// SpanSetTypeOf returns the span-set tag whose element span type is
// spantype.
func SpanSetTypeOf(spantype Tag) (Tag, error) {
	t, ok := spanSetTypeOf[spantype]
	if !ok {
		return TagInvalid, errs.ErrInvalidType
	}

	return t, nil
}

package wkb

import (
	"math"

	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/geom"
	"github.com/chronodb/chronos/internal/endian"
)

// writeScalar appends the wire encoding of v (bool, int64, float64,
// string, or geom.Point — the five Go representations base values take
// in this engine) to buf. int64 doubles as int4/int8/date (the day-count
// vs. microsecond-count distinction is carried by the surrounding
// type-tag, not by this encoding) and as timestamptz microseconds.
func writeScalar[T any](buf []byte, v T, e endian.EndianEngine) []byte {
	switch x := any(v).(type) {
	case bool:
		if x {
			return append(buf, 1)
		}
		return append(buf, 0)
	case int64:
		return e.AppendUint64(buf, uint64(x))
	case float64:
		return e.AppendUint64(buf, math.Float64bits(x))
	case string:
		buf = e.AppendUint32(buf, uint32(len(x)))
		return append(buf, x...)
	case geom.Point:
		return writePoint(buf, x, e)
	default:
		panic("wkb: unsupported scalar representation")
	}
}

func writePoint(buf []byte, p geom.Point, e endian.EndianEngine) []byte {
	if p.HasZ {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = e.AppendUint64(buf, math.Float64bits(p.X))
	buf = e.AppendUint64(buf, math.Float64bits(p.Y))
	if p.HasZ {
		buf = e.AppendUint64(buf, math.Float64bits(p.Z))
	}

	return buf
}

// readScalar reads one value of T's wire representation from data,
// returning the value and the number of bytes consumed.
func readScalar[T any](data []byte, e endian.EndianEngine) (T, int, error) {
	var zero T

	switch any(zero).(type) {
	case bool:
		if len(data) < 1 {
			return zero, 0, errs.ErrBadWKB
		}

		return any(data[0] != 0).(T), 1, nil
	case int64:
		if len(data) < 8 {
			return zero, 0, errs.ErrBadWKB
		}

		return any(int64(e.Uint64(data))).(T), 8, nil
	case float64:
		if len(data) < 8 {
			return zero, 0, errs.ErrBadWKB
		}

		return any(math.Float64frombits(e.Uint64(data))).(T), 8, nil
	case string:
		if len(data) < 4 {
			return zero, 0, errs.ErrBadWKB
		}
		n := int(e.Uint32(data))
		if len(data) < 4+n {
			return zero, 0, errs.ErrBadWKB
		}

		return any(string(data[4 : 4+n])).(T), 4 + n, nil
	case geom.Point:
		p, n, err := readPoint(data, e)
		if err != nil {
			return zero, 0, err
		}

		return any(p).(T), n, nil
	default:
		return zero, 0, errs.ErrUnsupported
	}
}

func readPoint(data []byte, e endian.EndianEngine) (geom.Point, int, error) {
	if len(data) < 1 {
		return geom.Point{}, 0, errs.ErrBadWKB
	}
	hasZ := data[0] != 0
	n := 1 + 16
	if hasZ {
		n += 8
	}
	if len(data) < n {
		return geom.Point{}, 0, errs.ErrBadWKB
	}

	p := geom.Point{
		X:    math.Float64frombits(e.Uint64(data[1:9])),
		Y:    math.Float64frombits(e.Uint64(data[9:17])),
		HasZ: hasZ,
	}
	if hasZ {
		p.Z = math.Float64frombits(e.Uint64(data[17:25]))
	}

	return p, n, nil
}

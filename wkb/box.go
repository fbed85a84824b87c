package wkb

import (
	"math"

	"github.com/chronodb/chronos/box"
	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/span"
)

// WriteTBox encodes b as header + presence-flags + (X span if present) +
// (T span, as microseconds since epoch, if present). IsInt is folded
// into the flags byte's SRID bit position (unused for TBox) to avoid a
// second byte, since TBox has no SRID of its own.
func WriteTBox(b box.TBox, littleEndian bool) []byte {
	e, header := pickEndian(littleEndian)

	var flags byte
	if b.HasX {
		flags |= flagX
	}
	if b.HasT {
		flags |= flagT
	}
	if b.IsInt {
		flags |= flagSRID
	}

	buf := []byte{header, flags}
	if b.HasX {
		buf = e.AppendUint64(buf, math.Float64bits(b.XSpan.Lower))
		buf = e.AppendUint64(buf, math.Float64bits(b.XSpan.Upper))
		buf = append(buf, inclByte(b.XSpan.LowerInc, b.XSpan.UpperInc))
	}
	if b.HasT {
		buf = e.AppendUint64(buf, uint64(b.TSpan.Lower))
		buf = e.AppendUint64(buf, uint64(b.TSpan.Upper))
		buf = append(buf, inclByte(b.TSpan.LowerInc, b.TSpan.UpperInc))
	}

	return buf
}

// ReadTBox decodes a TBox encoded by WriteTBox. The wire form carries no
// span base tags: XSpan is tagged TagFloat8 and TSpan TagTimestamptz.
func ReadTBox(data []byte) (box.TBox, error) {
	if len(data) < 2 {
		return box.TBox{}, errs.ErrBadWKB
	}

	e, err := engineFor(data[0])
	if err != nil {
		return box.TBox{}, err
	}
	flags := data[1]
	body := data[2:]

	out := box.TBox{
		HasX:  flags&flagX != 0,
		HasT:  flags&flagT != 0,
		IsInt: flags&flagSRID != 0,
	}

	if out.HasX {
		if len(body) < 17 {
			return box.TBox{}, errs.ErrBadWKB
		}
		lo := math.Float64frombits(e.Uint64(body))
		hi := math.Float64frombits(e.Uint64(body[8:]))
		loInc, hiInc := inclBits(body[16])
		out.XSpan = span.Span[float64]{Lower: lo, Upper: hi, LowerInc: loInc, UpperInc: hiInc, Base: catalog.TagFloat8}
		body = body[17:]
	}
	if out.HasT {
		if len(body) < 17 {
			return box.TBox{}, errs.ErrBadWKB
		}
		lo := int64(e.Uint64(body))
		hi := int64(e.Uint64(body[8:]))
		loInc, hiInc := inclBits(body[16])
		out.TSpan = span.Span[int64]{Lower: lo, Upper: hi, LowerInc: loInc, UpperInc: hiInc, Base: catalog.TagTimestamptz}
	}

	return out, nil
}

// WriteSTBox encodes b as header + presence-flags + SRID(if HasX) +
// X/Y[/Z] bounds (if HasX) + T span (if HasT).
func WriteSTBox(b box.STBox, littleEndian bool) []byte {
	e, header := pickEndian(littleEndian)

	var flags byte
	if b.HasX {
		flags |= flagX
	}
	if b.HasT {
		flags |= flagT
	}
	if b.HasZ {
		flags |= flagZ
	}
	if b.Geodetic {
		flags |= flagGeodetic
	}
	if b.HasX && b.SRID != 0 {
		flags |= flagSRID
	}

	buf := []byte{header, flags}
	if b.HasX && b.SRID != 0 {
		buf = e.AppendUint32(buf, uint32(b.SRID))
	}
	if b.HasX {
		for _, v := range []float64{b.Xmin, b.Xmax, b.Ymin, b.Ymax} {
			buf = e.AppendUint64(buf, math.Float64bits(v))
		}
		if b.HasZ {
			buf = e.AppendUint64(buf, math.Float64bits(b.Zmin))
			buf = e.AppendUint64(buf, math.Float64bits(b.Zmax))
		}
	}
	if b.HasT {
		buf = e.AppendUint64(buf, uint64(b.TSpan.Lower))
		buf = e.AppendUint64(buf, uint64(b.TSpan.Upper))
		buf = append(buf, inclByte(b.TSpan.LowerInc, b.TSpan.UpperInc))
	}

	return buf
}

// ReadSTBox decodes an STBox encoded by WriteSTBox.
func ReadSTBox(data []byte) (box.STBox, error) {
	if len(data) < 2 {
		return box.STBox{}, errs.ErrBadWKB
	}

	e, err := engineFor(data[0])
	if err != nil {
		return box.STBox{}, err
	}
	flags := data[1]
	body := data[2:]

	out := box.STBox{
		HasX:     flags&flagX != 0,
		HasT:     flags&flagT != 0,
		HasZ:     flags&flagZ != 0,
		Geodetic: flags&flagGeodetic != 0,
	}

	if flags&flagSRID != 0 {
		if len(body) < 4 {
			return box.STBox{}, errs.ErrBadWKB
		}
		out.SRID = int32(e.Uint32(body))
		body = body[4:]
	}

	if out.HasX {
		need := 32
		if out.HasZ {
			need += 16
		}
		if len(body) < need {
			return box.STBox{}, errs.ErrBadWKB
		}
		out.Xmin = math.Float64frombits(e.Uint64(body))
		out.Xmax = math.Float64frombits(e.Uint64(body[8:]))
		out.Ymin = math.Float64frombits(e.Uint64(body[16:]))
		out.Ymax = math.Float64frombits(e.Uint64(body[24:]))
		body = body[32:]
		if out.HasZ {
			out.Zmin = math.Float64frombits(e.Uint64(body))
			out.Zmax = math.Float64frombits(e.Uint64(body[8:]))
			body = body[16:]
		}
	}

	if out.HasT {
		if len(body) < 17 {
			return box.STBox{}, errs.ErrBadWKB
		}
		lo := int64(e.Uint64(body))
		hi := int64(e.Uint64(body[8:]))
		loInc, hiInc := inclBits(body[16])
		out.TSpan = span.Span[int64]{Lower: lo, Upper: hi, LowerInc: loInc, UpperInc: hiInc, Base: catalog.TagTimestamptz}
	}

	return out, nil
}

func inclByte(lowerInc, upperInc bool) byte {
	var b byte
	if lowerInc {
		b |= flagLowerInc
	}
	if upperInc {
		b |= flagUpperInc
	}

	return b
}

func inclBits(b byte) (lowerInc, upperInc bool) {
	return b&flagLowerInc != 0, b&flagUpperInc != 0
}

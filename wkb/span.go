package wkb

import (
	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/internal/endian"
	"github.com/chronodb/chronos/span"
)

// WriteSpan encodes sp as header + flags(unused, reserved 0) + type-tag
// (sp.Base) + lower + upper + inclusivity byte.
func WriteSpan[T span.Numeric](sp span.Span[T], littleEndian bool) []byte {
	e, header := pickEndian(littleEndian)
	buf := []byte{header, 0}
	buf = e.AppendUint16(buf, uint16(sp.Base))
	buf = writeScalar(buf, sp.Lower, e)
	buf = writeScalar(buf, sp.Upper, e)

	var incl byte
	if sp.LowerInc {
		incl |= flagLowerInc
	}
	if sp.UpperInc {
		incl |= flagUpperInc
	}
	buf = append(buf, incl)

	return buf
}

// ReadSpan decodes a span encoded by WriteSpan.
func ReadSpan[T span.Numeric](data []byte) (span.Span[T], error) {
	if len(data) < 2 {
		return span.Span[T]{}, errs.ErrBadWKB
	}

	e, err := engineFor(data[0])
	if err != nil {
		return span.Span[T]{}, err
	}
	body := data[2:]

	if len(body) < 2 {
		return span.Span[T]{}, errs.ErrBadWKB
	}
	tag := catalog.Tag(e.Uint16(body))
	body = body[2:]

	lower, n, err := readScalar[T](body, e)
	if err != nil {
		return span.Span[T]{}, err
	}
	body = body[n:]

	upper, n, err := readScalar[T](body, e)
	if err != nil {
		return span.Span[T]{}, err
	}
	body = body[n:]

	if len(body) < 1 {
		return span.Span[T]{}, errs.ErrBadWKB
	}
	incl := body[0]

	return span.Span[T]{
		Lower:    lower,
		Upper:    upper,
		LowerInc: incl&flagLowerInc != 0,
		UpperInc: incl&flagUpperInc != 0,
		Base:     tag,
	}, nil
}

func pickEndian(littleEndian bool) (endian.EndianEngine, byte) {
	if littleEndian {
		return endian.GetLittleEndianEngine(), headerLittleEndian
	}

	return endian.GetBigEndianEngine(), headerBigEndian
}

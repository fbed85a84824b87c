package wkb

import (
	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/span"
	"github.com/chronodb/chronos/spanset"
)

// WriteSpanSet encodes ss as header + flags(0, reserved) + type-tag +
// count(uint4) + count spans, each written sans its own header byte
// (lower, upper, inclusivity byte only).
func WriteSpanSet[T span.Numeric](ss spanset.SpanSet[T], littleEndian bool) []byte {
	e, header := pickEndian(littleEndian)
	buf := []byte{header, 0}
	buf = e.AppendUint16(buf, uint16(ss.Base))
	buf = e.AppendUint32(buf, uint32(len(ss.Spans)))
	for _, sp := range ss.Spans {
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
	}

	return buf
}

// ReadSpanSet decodes a span-set encoded by WriteSpanSet.
func ReadSpanSet[T span.Numeric](data []byte) (spanset.SpanSet[T], error) {
	if len(data) < 2 {
		return spanset.SpanSet[T]{}, errs.ErrBadWKB
	}

	e, err := engineFor(data[0])
	if err != nil {
		return spanset.SpanSet[T]{}, err
	}
	body := data[2:]

	if len(body) < 6 {
		return spanset.SpanSet[T]{}, errs.ErrBadWKB
	}
	tag := catalog.Tag(e.Uint16(body))
	count := int(e.Uint32(body[2:]))
	body = body[6:]

	spans := make([]span.Span[T], count)
	for i := 0; i < count; i++ {
		lower, n, err := readScalar[T](body, e)
		if err != nil {
			return spanset.SpanSet[T]{}, err
		}
		body = body[n:]

		upper, n, err := readScalar[T](body, e)
		if err != nil {
			return spanset.SpanSet[T]{}, err
		}
		body = body[n:]

		if len(body) < 1 {
			return spanset.SpanSet[T]{}, errs.ErrBadWKB
		}
		incl := body[0]
		body = body[1:]

		spans[i] = span.Span[T]{
			Lower: lower, Upper: upper,
			LowerInc: incl&flagLowerInc != 0,
			UpperInc: incl&flagUpperInc != 0,
			Base:     tag,
		}
	}

	return spanset.SpanSet[T]{Base: tag, Spans: spans}, nil
}

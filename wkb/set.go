package wkb

import (
	"cmp"

	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/set"
)

// WriteSet encodes s as header + flags(ORDERED) + type-tag + count(uint4)
// + count encoded base values.
func WriteSet[T cmp.Ordered](s set.Set[T], littleEndian bool) []byte {
	e, header := pickEndian(littleEndian)
	buf := []byte{header, flagOrdered}
	buf = e.AppendUint16(buf, uint16(s.Base))
	buf = e.AppendUint32(buf, uint32(len(s.Values)))
	for _, v := range s.Values {
		buf = writeScalar(buf, v, e)
	}

	return buf
}

// ReadSet decodes a set encoded by WriteSet.
func ReadSet[T cmp.Ordered](data []byte) (set.Set[T], error) {
	if len(data) < 2 {
		return set.Set[T]{}, errs.ErrBadWKB
	}

	e, err := engineFor(data[0])
	if err != nil {
		return set.Set[T]{}, err
	}
	body := data[2:]

	if len(body) < 6 {
		return set.Set[T]{}, errs.ErrBadWKB
	}
	tag := catalog.Tag(e.Uint16(body))
	count := int(e.Uint32(body[2:]))
	body = body[6:]

	values := make([]T, count)
	for i := 0; i < count; i++ {
		v, n, err := readScalar[T](body, e)
		if err != nil {
			return set.Set[T]{}, err
		}
		values[i] = v
		body = body[n:]
	}

	return set.Set[T]{Base: tag, Values: values}, nil
}

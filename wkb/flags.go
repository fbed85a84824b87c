package wkb

import (
	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/internal/endian"
	"github.com/chronodb/chronos/temporal"
)

// Header byte values.
const (
	headerBigEndian    byte = 0
	headerLittleEndian byte = 1
)

// Variation-flags bits, meaning depends on the value kind being encoded
// (set, box, or temporal); spans emit LOWER_INC/UPPER_INC in-line at the
// point bounds are written rather than in this shared byte.
const (
	flagOrdered  byte = 1 << 0 // set-typed values
	flagX        byte = 1 << 0 // box-typed values
	flagT        byte = 1 << 1 // box-typed values
	flagZ        byte = 1 << 4
	flagGeodetic byte = 1 << 5
	flagSRID     byte = 1 << 6
	flagLowerInc byte = 1 << 0 // span bounds inclusivity byte
	flagUpperInc byte = 1 << 1

	interpShift = 2
	interpMask  = 0x3
)

func engineFor(b byte) (endian.EndianEngine, error) {
	switch b {
	case headerLittleEndian:
		return endian.GetLittleEndianEngine(), nil
	case headerBigEndian:
		return endian.GetBigEndianEngine(), nil
	default:
		return nil, errs.ErrBadWKB
	}
}

func encodeInterp(i temporal.Interpolation) byte {
	switch i {
	case temporal.Discrete:
		return 1 << interpShift
	case temporal.Step:
		return 2 << interpShift
	case temporal.Linear:
		return 3 << interpShift
	default:
		return 0
	}
}

func decodeInterp(flags byte) (temporal.Interpolation, error) {
	switch (flags >> interpShift) & interpMask {
	case 0:
		return 0, errs.ErrBadWKB
	case 1:
		return temporal.Discrete, nil
	case 2:
		return temporal.Step, nil
	case 3:
		return temporal.Linear, nil
	default:
		return 0, errs.ErrBadWKB
	}
}

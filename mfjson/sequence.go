package mfjson

import (
	"time"

	"github.com/chronodb/chronos/errs"
	"github.com/chronodb/chronos/geom"
	"github.com/chronodb/chronos/temporal"
)

// typeNameFor maps a chronos base value's Go representation to its MF-JSON
// `type` tag; the bool result is true only for geom.Point.
func typeNameFor[T any]() (string, bool) {
	var zero T
	switch any(zero).(type) {
	case bool:
		return "MovingBoolean", false
	case int64:
		return "MovingInteger", false
	case float64:
		return "MovingFloat", false
	case string:
		return "MovingText", false
	case geom.Point:
		return "MovingPoint", true
	default:
		return "", false
	}
}

func interpName(i temporal.Interpolation) string {
	switch i {
	case temporal.Discrete:
		return "Discrete"
	case temporal.Step:
		return "Step"
	case temporal.Linear:
		return "Linear"
	default:
		return ""
	}
}

func interpFromName(s string) (temporal.Interpolation, error) {
	switch s {
	case "Discrete":
		return temporal.Discrete, nil
	case "Step", "":
		return temporal.Step, nil
	case "Linear":
		return temporal.Linear, nil
	default:
		return 0, errs.ErrBadMFJSON
	}
}

// FromSequence builds the MF-JSON Document for s.
func FromSequence[T any](s temporal.Sequence[T]) (Document, error) {
	typeName, spatial := typeNameFor[T]()
	if typeName == "" {
		return Document{}, errs.ErrUnsupported
	}

	doc := Document{
		Type:          typeName,
		Interpolation: interpName(s.Interp),
		Datetimes:     make([]string, s.NumInstants()),
	}
	lo, hi := s.LowerInc, s.UpperInc
	doc.LowerInc, doc.UpperInc = &lo, &hi

	if spatial {
		doc.Coordinates = make([][]float64, s.NumInstants())
	} else {
		doc.Values = make([]any, s.NumInstants())
	}

	for i := 0; i < s.NumInstants(); i++ {
		inst := s.InstantN(i)
		doc.Datetimes[i] = inst.Time.UTC().Format(time.RFC3339Nano)

		if spatial {
			p := any(inst.Value).(geom.Point)
			if p.HasZ {
				doc.Coordinates[i] = []float64{p.X, p.Y, p.Z}
			} else {
				doc.Coordinates[i] = []float64{p.X, p.Y}
			}
		} else {
			doc.Values[i] = inst.Value
		}
	}

	return doc, nil
}

// ToSequence reconstructs a Sequence[T] from a Document.
func ToSequence[T any](doc Document, traits temporal.ValueTraits[T]) (temporal.Sequence[T], error) {
	interp, err := interpFromName(doc.Interpolation)
	if err != nil {
		return temporal.Sequence[T]{}, err
	}

	n := len(doc.Datetimes)
	if doc.Values != nil && len(doc.Values) != n {
		return temporal.Sequence[T]{}, errs.ErrBadMFJSON
	}
	if doc.Coordinates != nil && len(doc.Coordinates) != n {
		return temporal.Sequence[T]{}, errs.ErrBadMFJSON
	}

	instants := make([]temporal.Instant[T], n)
	for i := 0; i < n; i++ {
		t, perr := time.Parse(time.RFC3339Nano, doc.Datetimes[i])
		if perr != nil {
			return temporal.Sequence[T]{}, errs.ErrBadMFJSON
		}

		v, err := decodeValue[T](doc, i)
		if err != nil {
			return temporal.Sequence[T]{}, err
		}

		instants[i] = temporal.NewInstant(v, t.UTC())
	}

	lowerInc, upperInc := true, true
	if doc.LowerInc != nil {
		lowerInc = *doc.LowerInc
	}
	if doc.UpperInc != nil {
		upperInc = *doc.UpperInc
	}

	return temporal.NewSequence(instants, lowerInc, upperInc, interp, traits)
}

func decodeValue[T any](doc Document, i int) (T, error) {
	var zero T
	switch any(zero).(type) {
	case geom.Point:
		if doc.Coordinates == nil || i >= len(doc.Coordinates) {
			return zero, errs.ErrBadMFJSON
		}
		c := doc.Coordinates[i]
		if len(c) < 2 {
			return zero, errs.ErrBadMFJSON
		}
		p := geom.Point{X: c[0], Y: c[1]}
		if len(c) >= 3 {
			p.Z, p.HasZ = c[2], true
		}

		return any(p).(T), nil
	default:
		if doc.Values == nil || i >= len(doc.Values) {
			return zero, errs.ErrBadMFJSON
		}

		return decodeScalar[T](doc.Values[i])
	}
}

func decodeScalar[T any](raw any) (T, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		b, ok := raw.(bool)
		if !ok {
			return zero, errs.ErrBadMFJSON
		}

		return any(b).(T), nil
	case int64:
		f, ok := raw.(float64)
		if !ok {
			return zero, errs.ErrBadMFJSON
		}

		return any(int64(f)).(T), nil
	case float64:
		f, ok := raw.(float64)
		if !ok {
			return zero, errs.ErrBadMFJSON
		}

		return any(f).(T), nil
	case string:
		s, ok := raw.(string)
		if !ok {
			return zero, errs.ErrBadMFJSON
		}

		return any(s).(T), nil
	default:
		return zero, errs.ErrUnsupported
	}
}

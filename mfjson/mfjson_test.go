package mfjson_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronodb/chronos/geom"
	"github.com/chronodb/chronos/mfjson"
	"github.com/chronodb/chronos/temporal"
)

func TestFloatSequenceRoundTrip(t *testing.T) {
	instants := []temporal.Instant[float64]{
		temporal.NewInstant(1.5, time.Unix(0, 0).UTC()),
		temporal.NewInstant(2.5, time.Unix(60, 0).UTC()),
	}
	seq, err := temporal.NewSequence(instants, true, true, temporal.Linear, temporal.FloatTraits{})
	require.NoError(t, err)

	doc, err := mfjson.FromSequence(seq)
	require.NoError(t, err)
	assert.Equal(t, "MovingFloat", doc.Type)
	assert.Equal(t, "Linear", doc.Interpolation)
	assert.Len(t, doc.Values, 2)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var roundTripped mfjson.Document
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	out, err := mfjson.ToSequence(roundTripped, temporal.FloatTraits{})
	require.NoError(t, err)
	assert.Equal(t, seq.NumInstants(), out.NumInstants())
	assert.Equal(t, seq.Interp, out.Interp)
	for i := 0; i < seq.NumInstants(); i++ {
		assert.InDelta(t, seq.InstantN(i).Value, out.InstantN(i).Value, 1e-9)
		assert.True(t, seq.InstantN(i).Time.Equal(out.InstantN(i).Time))
	}
}

func TestPointSequenceRoundTripWithCRS(t *testing.T) {
	instants := []temporal.Instant[geom.Point]{
		temporal.NewInstant(geom.Point{X: 1, Y: 2}, time.Unix(0, 0).UTC()),
		temporal.NewInstant(geom.Point{X: 3, Y: 4}, time.Unix(30, 0).UTC()),
	}
	seq, err := temporal.NewSequence(instants, true, true, temporal.Linear, temporal.PointTraits{})
	require.NoError(t, err)

	doc, err := mfjson.FromSequence(seq)
	require.NoError(t, err)
	doc.CRS = mfjson.NamedCRS(4326)
	assert.Equal(t, "MovingPoint", doc.Type)
	require.Len(t, doc.Coordinates, 2)
	assert.Equal(t, []float64{1, 2}, doc.Coordinates[0])

	out, err := mfjson.ToSequence(doc, temporal.PointTraits{})
	require.NoError(t, err)
	assert.Equal(t, seq.NumInstants(), out.NumInstants())
	assert.True(t, seq.InstantN(1).Value.Equal(out.InstantN(1).Value))
	assert.Equal(t, "urn:ogc:def:crs:EPSG::4326", doc.CRS.Properties["name"])
}

func TestBoolSequenceRoundTrip(t *testing.T) {
	instants := []temporal.Instant[bool]{
		temporal.NewInstant(true, time.Unix(0, 0).UTC()),
		temporal.NewInstant(false, time.Unix(5, 0).UTC()),
	}
	seq, err := temporal.NewSequence(instants, true, true, temporal.Step, temporal.BoolTraits{})
	require.NoError(t, err)

	doc, err := mfjson.FromSequence(seq)
	require.NoError(t, err)
	assert.Equal(t, "MovingBoolean", doc.Type)

	out, err := mfjson.ToSequence(doc, temporal.BoolTraits{})
	require.NoError(t, err)
	assert.Equal(t, seq.InstantN(0).Value, out.InstantN(0).Value)
	assert.Equal(t, seq.InstantN(1).Value, out.InstantN(1).Value)
}

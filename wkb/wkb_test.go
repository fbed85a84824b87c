package wkb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronodb/chronos/box"
	"github.com/chronodb/chronos/catalog"
	"github.com/chronodb/chronos/format"
	"github.com/chronodb/chronos/set"
	"github.com/chronodb/chronos/span"
	"github.com/chronodb/chronos/spanset"
	"github.com/chronodb/chronos/temporal"
	"github.com/chronodb/chronos/wkb"
)

func TestSpanRoundTrip(t *testing.T) {
	sp := span.MustMake(int64(2), int64(11), true, false, catalog.TagInt4)
	buf := wkb.WriteSpan(sp, true)

	out, err := wkb.ReadSpan[int64](buf)
	require.NoError(t, err)
	assert.True(t, sp.Equal(out))
}

func TestSpanHexRoundTrip(t *testing.T) {
	sp := span.MustMake(1.5, 9.5, true, false, catalog.TagFloat8)
	buf := wkb.WriteSpan(sp, false)
	hexStr := wkb.ToHex(buf)

	decoded, err := wkb.FromHex(hexStr)
	require.NoError(t, err)

	out, err := wkb.ReadSpan[float64](decoded)
	require.NoError(t, err)
	assert.True(t, sp.Equal(out))
}

func TestSetRoundTrip(t *testing.T) {
	s, err := set.New(catalog.TagIntSet, []int64{3, 1, 2})
	require.NoError(t, err)

	buf := wkb.WriteSet(s, true)
	out, err := wkb.ReadSet[int64](buf)
	require.NoError(t, err)
	assert.Equal(t, s.Values, out.Values)
	assert.Equal(t, s.Base, out.Base)
}

func TestSpanSetRoundTrip(t *testing.T) {
	a := span.MustMake(int64(0), int64(5), true, false, catalog.TagInt4)
	b := span.MustMake(int64(10), int64(15), true, false, catalog.TagInt4)
	ss, err := spanset.New([]span.Span[int64]{a, b})
	require.NoError(t, err)

	buf := wkb.WriteSpanSet(ss, true)
	out, err := wkb.ReadSpanSet[int64](buf)
	require.NoError(t, err)
	require.Equal(t, len(ss.Spans), len(out.Spans))
	for i := range ss.Spans {
		assert.True(t, ss.Spans[i].Equal(out.Spans[i]))
	}
}

func TestTBoxRoundTrip(t *testing.T) {
	b := box.TBox{
		HasX: true, HasT: true,
		XSpan: span.MustMake(1.0, 10.0, true, false, catalog.TagFloat8),
		TSpan: span.MustMake(int64(1000), int64(2000), true, false, catalog.TagTimestamptz),
	}

	buf := wkb.WriteTBox(b, true)
	out, err := wkb.ReadTBox(buf)
	require.NoError(t, err)
	assert.Equal(t, b.HasX, out.HasX)
	assert.Equal(t, b.HasT, out.HasT)
	assert.True(t, b.XSpan.Equal(out.XSpan))
	assert.True(t, b.TSpan.Equal(out.TSpan))
}

func TestSTBoxRoundTrip(t *testing.T) {
	b := box.STBox{
		HasX: true, HasZ: false, HasT: true,
		SRID:  4326,
		Xmin:  1, Xmax: 2, Ymin: 3, Ymax: 4,
		TSpan: span.MustMake(int64(0), int64(100), true, false, catalog.TagTimestamptz),
	}

	buf := wkb.WriteSTBox(b, false)
	out, err := wkb.ReadSTBox(buf)
	require.NoError(t, err)
	assert.Equal(t, b.SRID, out.SRID)
	assert.InDelta(t, b.Xmax, out.Xmax, 1e-9)
	assert.True(t, b.TSpan.Equal(out.TSpan))
}

func TestSequenceRoundTrip(t *testing.T) {
	instants := []temporal.Instant[float64]{
		temporal.NewInstant(1.0, time.Unix(0, 0).UTC()),
		temporal.NewInstant(2.0, time.Unix(10, 0).UTC()),
	}
	seq, err := temporal.NewSequence(instants, true, true, temporal.Linear, temporal.FloatTraits{})
	require.NoError(t, err)

	buf := wkb.WriteSequence(seq, catalog.TagTFloat, true)
	out, err := wkb.ReadSequence[float64](buf, temporal.FloatTraits{})
	require.NoError(t, err)

	assert.Equal(t, seq.NumInstants(), out.NumInstants())
	assert.Equal(t, seq.Interp, out.Interp)
	v, ok := out.ValueAt(time.Unix(5, 0).UTC())
	require.True(t, ok)
	assert.InDelta(t, 1.5, v, 1e-9)
}

func TestCompressEnvelopeRoundTrip(t *testing.T) {
	sp := span.MustMake(int64(2), int64(11), true, false, catalog.TagInt4)
	buf := wkb.WriteSpan(sp, true)

	for _, alg := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd,
		format.CompressionS2, format.CompressionLZ4,
	} {
		compressed, err := wkb.CompressEnvelope(buf, alg)
		require.NoError(t, err)

		restored, err := wkb.DecompressEnvelope(compressed, alg)
		require.NoError(t, err)
		assert.Equal(t, buf, restored)
	}
}

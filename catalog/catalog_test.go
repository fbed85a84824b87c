package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chronodb/chronos/catalog"
)

func TestClassificationPredicates(t *testing.T) {
	assert.True(t, catalog.IsContinuous(catalog.TagFloat8))
	assert.False(t, catalog.IsContinuous(catalog.TagInt4))
	assert.True(t, catalog.IsContinuous(catalog.TagTimestamptz))
	assert.True(t, catalog.IsContinuous(catalog.TagGeometry))

	assert.True(t, catalog.IsSpatial(catalog.TagGeometry))
	assert.True(t, catalog.IsSpatial(catalog.TagGeography))
	assert.False(t, catalog.IsSpatial(catalog.TagFloat8))

	assert.True(t, catalog.IsNumeric(catalog.TagInt4))
	assert.True(t, catalog.IsNumeric(catalog.TagFloat8))
	assert.False(t, catalog.IsNumeric(catalog.TagText))

	assert.True(t, catalog.IsVariableLength(catalog.TagText))
	assert.False(t, catalog.IsVariableLength(catalog.TagFloat8))
	assert.Equal(t, 8, catalog.ByteWidth(catalog.TagFloat8))
	assert.Equal(t, -1, catalog.ByteWidth(catalog.TagText))
}

func TestBaseTypeOf(t *testing.T) {
	base, err := catalog.BaseTypeOf(catalog.TagFloatSpan)
	assert.NoError(t, err)
	assert.Equal(t, catalog.TagFloat8, base)

	_, err = catalog.BaseTypeOf(catalog.TagFloat8)
	assert.Error(t, err)
}

func TestReverseIndexes(t *testing.T) {
	spanTag, err := catalog.SpanTypeOf(catalog.TagFloat8)
	assert.NoError(t, err)
	assert.Equal(t, catalog.TagFloatSpan, spanTag)

	setTag, err := catalog.SetTypeOf(catalog.TagTimestamptz)
	assert.NoError(t, err)
	assert.Equal(t, catalog.TagTimestamptzSet, setTag)

	spanSetTag, err := catalog.SpanSetTypeOf(catalog.TagIntSpan)
	assert.NoError(t, err)
	assert.Equal(t, catalog.TagIntSpanSet, spanSetTag)
}

func TestInvalidTag(t *testing.T) {
	assert.Equal(t, "invalid", catalog.Name(catalog.Tag(255)))
	assert.False(t, catalog.IsContinuous(catalog.Tag(255)))
}

package coltype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-db/tessera/schema/coltype"
)

func TestIntegerBuilders(t *testing.T) {
	for _, tt := range []struct {
		desc *coltype.Descriptor
		typ  coltype.Type
	}{
		{coltype.TinyInt().Descriptor(), coltype.TypeTinyInt},
		{coltype.SmallInt().Descriptor(), coltype.TypeSmallInt},
		{coltype.MediumInt().Descriptor(), coltype.TypeMediumInt},
		{coltype.Integer().Descriptor(), coltype.TypeInteger},
		{coltype.BigInt().Descriptor(), coltype.TypeBigInt},
	} {
		assert.Equal(t, tt.typ, tt.desc.Type)
		assert.True(t, tt.desc.Type.Integer())
		assert.NoError(t, tt.desc.Err)
	}
}

func TestIntegerOptions(t *testing.T) {
	fd := coltype.Integer().Size(11).Descriptor()
	assert.Equal(t, 11, fd.Size)
	assert.False(t, fd.Unsigned)
	assert.False(t, fd.Zerofill)

	fd = coltype.BigInt().Unsigned().Zerofill().Descriptor()
	assert.True(t, fd.Unsigned)
	assert.True(t, fd.Zerofill)
	assert.Zero(t, fd.Size)

	// Builders record options as requested; clearing what a dialect
	// cannot express happens when the descriptor is bound to it.
	fd = coltype.TinyInt().Unsigned().Descriptor()
	assert.True(t, fd.Unsigned)
}

func TestFloatBuilders(t *testing.T) {
	for _, tt := range []struct {
		desc *coltype.Descriptor
		typ  coltype.Type
	}{
		{coltype.Float().Descriptor(), coltype.TypeFloat},
		{coltype.Double().Descriptor(), coltype.TypeDouble},
		{coltype.Real().Descriptor(), coltype.TypeReal},
	} {
		assert.Equal(t, tt.typ, tt.desc.Type)
		assert.True(t, tt.desc.Type.Float())
		assert.NoError(t, tt.desc.Err)
	}
}

func TestFloatOptions(t *testing.T) {
	fd := coltype.Float().Size(11).Decimals(2).Descriptor()
	assert.Equal(t, 11, fd.Size)
	require.NotNil(t, fd.Decimals)
	assert.Equal(t, 2, *fd.Decimals)

	fd = coltype.Double().Unsigned().Descriptor()
	assert.True(t, fd.Unsigned)
	assert.Nil(t, fd.Decimals)

	// Zero decimals is an explicit option, distinct from unset.
	fd = coltype.Real().Size(10).Decimals(0).Descriptor()
	require.NotNil(t, fd.Decimals)
	assert.Equal(t, 0, *fd.Decimals)
}

package coltype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-db/tessera"
	"github.com/tessera-db/tessera/schema/coltype"
)

func TestString(t *testing.T) {
	fd := coltype.String(10).Descriptor()
	assert.Equal(t, coltype.TypeString, fd.Type)
	assert.Equal(t, 10, fd.Size)
	assert.False(t, fd.Binary)
	assert.NoError(t, fd.Err)

	fd = coltype.String(10).Binary().Descriptor()
	assert.True(t, fd.Binary)

	// Non-positive sizes fall back to the default length.
	fd = coltype.String(0).Descriptor()
	assert.Equal(t, coltype.DefaultStringSize, fd.Size)
	fd = coltype.String(-1).Descriptor()
	assert.Equal(t, coltype.DefaultStringSize, fd.Size)
}

func TestChar(t *testing.T) {
	fd := coltype.Char(30).Descriptor()
	assert.Equal(t, coltype.TypeChar, fd.Type)
	assert.Equal(t, 30, fd.Size)

	fd = coltype.Char(0).Binary().Descriptor()
	assert.Equal(t, coltype.DefaultStringSize, fd.Size)
	assert.True(t, fd.Binary)
}

func TestText(t *testing.T) {
	fd := coltype.Text().Descriptor()
	assert.Equal(t, coltype.TypeText, fd.Type)
	assert.Zero(t, fd.Size)

	fd = coltype.Text().Size(4096).Descriptor()
	assert.Equal(t, 4096, fd.Size)
}

func TestCiText(t *testing.T) {
	fd := coltype.CiText().Descriptor()
	assert.Equal(t, coltype.TypeCiText, fd.Type)
	assert.NoError(t, fd.Err)
}

func TestEnum(t *testing.T) {
	fd := coltype.Enum("on", "off").Descriptor()
	assert.Equal(t, coltype.TypeEnum, fd.Type)
	assert.Equal(t, []string{"on", "off"}, fd.Values)
	assert.NoError(t, fd.Err)

	fd = coltype.Enum().Descriptor()
	require.Error(t, fd.Err)
	assert.True(t, tessera.IsValidationError(fd.Err))

	fd = coltype.Enum().Values("a", "b").Descriptor()
	assert.Equal(t, []string{"a", "b"}, fd.Values)
	// The construction error sticks; callers should declare values up front.
	assert.Error(t, fd.Err)
}

func TestDecimal(t *testing.T) {
	fd := coltype.Decimal().Descriptor()
	assert.Equal(t, coltype.TypeDecimal, fd.Type)
	assert.Zero(t, fd.Size)
	assert.Nil(t, fd.Decimals)

	fd = coltype.Decimal().Precision(10).Scale(2).Descriptor()
	assert.Equal(t, 10, fd.Size)
	require.NotNil(t, fd.Decimals)
	assert.Equal(t, 2, *fd.Decimals)

	fd = coltype.Decimal().Precision(-1).Descriptor()
	assert.True(t, tessera.IsValidationError(fd.Err))
	fd = coltype.Decimal().Scale(-2).Descriptor()
	assert.True(t, tessera.IsValidationError(fd.Err))
}

func TestSimpleTypes(t *testing.T) {
	for _, tt := range []struct {
		desc *coltype.Descriptor
		typ  coltype.Type
	}{
		{coltype.Boolean().Descriptor(), coltype.TypeBoolean},
		{coltype.Date().Descriptor(), coltype.TypeDate},
		{coltype.DateOnly().Descriptor(), coltype.TypeDateOnly},
		{coltype.Time().Descriptor(), coltype.TypeTime},
		{coltype.JSON().Descriptor(), coltype.TypeJSON},
		{coltype.UUID().Descriptor(), coltype.TypeUUID},
		{coltype.Blob().Descriptor(), coltype.TypeBlob},
		{coltype.Geometry().Descriptor(), coltype.TypeGeometry},
	} {
		assert.Equal(t, tt.typ, tt.desc.Type)
		assert.NoError(t, tt.desc.Err)
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "STRING", coltype.TypeString.String())
	assert.Equal(t, "DOUBLE PRECISION", coltype.TypeDouble.String())
	assert.Equal(t, "DATEONLY", coltype.TypeDateOnly.String())
	assert.Equal(t, "invalid", coltype.TypeInvalid.String())
	assert.Equal(t, "invalid", coltype.Type(200).String())

	for _, typ := range coltype.Types() {
		assert.True(t, typ.Valid())
		assert.NotEmpty(t, typ.String(), "every exported type has a non-empty key")
	}
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, coltype.TypeTinyInt.Integer())
	assert.True(t, coltype.TypeBigInt.Integer())
	assert.False(t, coltype.TypeFloat.Integer())
	assert.False(t, coltype.TypeDecimal.Integer())

	assert.True(t, coltype.TypeFloat.Float())
	assert.True(t, coltype.TypeDouble.Float())
	assert.True(t, coltype.TypeReal.Float())
	assert.False(t, coltype.TypeInteger.Float())

	assert.True(t, coltype.TypeInteger.Numeric())
	assert.True(t, coltype.TypeReal.Numeric())
	assert.False(t, coltype.TypeDecimal.Numeric())
	assert.False(t, coltype.TypeString.Numeric())
}

func TestDescriptorClone(t *testing.T) {
	scale := 2
	fd := &coltype.Descriptor{
		Type:     coltype.TypeEnum,
		Size:     10,
		Decimals: &scale,
		Unsigned: true,
		Values:   []string{"a", "b"},
	}
	clone := fd.Clone()
	require.Equal(t, fd, clone)

	// Mutating the clone must not leak into the original.
	*clone.Decimals = 4
	clone.Values[0] = "z"
	assert.Equal(t, 2, *fd.Decimals)
	assert.Equal(t, "a", fd.Values[0])
}

func TestDescriptorKey(t *testing.T) {
	assert.Equal(t, "ENUM", coltype.Enum("a").Descriptor().Key())
	assert.Equal(t, "TINYINT", coltype.TinyInt().Descriptor().Key())
}

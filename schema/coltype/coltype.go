package coltype

import (
	"errors"
	"fmt"

	"github.com/tessera-db/tessera"
)

// DefaultStringSize is the display length used by STRING and CHAR types
// when no explicit size is configured.
const DefaultStringSize = 255

// A Descriptor holds the configuration of an abstract column type
// instance. Descriptors are created through the builders in this package
// and treated as immutable once handed to a dialect; dialects that need
// to adjust options work on a Clone.
type Descriptor struct {
	Type     Type     // abstract type identifier
	Size     int      // display length/precision; zero means unset
	Decimals *int     // fractional digits; nil means unset
	Unsigned bool     // numeric UNSIGNED modifier
	Zerofill bool     // numeric ZEROFILL modifier
	Binary   bool     // string BINARY modifier
	Values   []string // enum values
	Err      error    // construction error, reported on first use
}

// Key returns the abstract key identifier of the descriptor's type.
func (d *Descriptor) Key() string {
	return d.Type.String()
}

// Clone returns a deep copy of the descriptor carrying the same
// configured options.
func (d *Descriptor) Clone() *Descriptor {
	nd := *d
	if d.Decimals != nil {
		decimals := *d.Decimals
		nd.Decimals = &decimals
	}
	if d.Values != nil {
		nd.Values = append([]string(nil), d.Values...)
	}
	return &nd
}

// String returns a new descriptor builder for a STRING column type
// with the given display length. A non-positive size falls back to
// DefaultStringSize.
func String(size int) *stringBuilder {
	if size <= 0 {
		size = DefaultStringSize
	}
	return &stringBuilder{&Descriptor{Type: TypeString, Size: size}}
}

// stringBuilder configures a STRING column type.
type stringBuilder struct {
	desc *Descriptor
}

// Binary marks the column type with the BINARY modifier.
func (b *stringBuilder) Binary() *stringBuilder {
	b.desc.Binary = true
	return b
}

// Descriptor returns the column type descriptor.
func (b *stringBuilder) Descriptor() *Descriptor {
	return b.desc
}

// Char returns a new descriptor builder for a CHAR column type
// with the given display length. A non-positive size falls back to
// DefaultStringSize.
func Char(size int) *charBuilder {
	if size <= 0 {
		size = DefaultStringSize
	}
	return &charBuilder{&Descriptor{Type: TypeChar, Size: size}}
}

// charBuilder configures a CHAR column type.
type charBuilder struct {
	desc *Descriptor
}

// Binary marks the column type with the BINARY modifier.
func (b *charBuilder) Binary() *charBuilder {
	b.desc.Binary = true
	return b
}

// Descriptor returns the column type descriptor.
func (b *charBuilder) Descriptor() *Descriptor {
	return b.desc
}

// Text returns a new descriptor builder for a TEXT column type.
func Text() *textBuilder {
	return &textBuilder{&Descriptor{Type: TypeText}}
}

// textBuilder configures a TEXT column type.
type textBuilder struct {
	desc *Descriptor
}

// Size sets a length option on the TEXT type. Dialects without sized
// text columns drop it with a warning.
func (b *textBuilder) Size(size int) *textBuilder {
	b.desc.Size = size
	return b
}

// Descriptor returns the column type descriptor.
func (b *textBuilder) Descriptor() *Descriptor {
	return b.desc
}

// CiText returns a descriptor for a case-insensitive text column type.
func CiText() *typeBuilder {
	return &typeBuilder{&Descriptor{Type: TypeCiText}}
}

// Enum returns a new descriptor builder for an ENUM column type with the
// given allowed values. Declaring an enum without values is a construction
// error, carried on the descriptor and reported on first use.
func Enum(values ...string) *enumBuilder {
	desc := &Descriptor{Type: TypeEnum, Values: values}
	if len(values) == 0 {
		desc.Err = tessera.NewValidationError(TypeEnum.String(), errors.New("values are required"))
	}
	return &enumBuilder{desc}
}

// enumBuilder configures an ENUM column type.
type enumBuilder struct {
	desc *Descriptor
}

// Values replaces the allowed values of the enum.
func (b *enumBuilder) Values(values ...string) *enumBuilder {
	b.desc.Values = values
	if len(values) == 0 && b.desc.Err == nil {
		b.desc.Err = tessera.NewValidationError(TypeEnum.String(), errors.New("values are required"))
	}
	return b
}

// Descriptor returns the column type descriptor.
func (b *enumBuilder) Descriptor() *Descriptor {
	return b.desc
}

// Decimal returns a new descriptor builder for a DECIMAL column type.
// Without an explicit precision the type renders without arguments.
func Decimal() *decimalBuilder {
	return &decimalBuilder{&Descriptor{Type: TypeDecimal}}
}

// decimalBuilder configures a DECIMAL column type.
type decimalBuilder struct {
	desc *Descriptor
}

// Precision sets the total number of digits.
func (b *decimalBuilder) Precision(precision int) *decimalBuilder {
	if precision < 0 {
		b.setErr(fmt.Errorf("negative precision %d", precision))
		return b
	}
	b.desc.Size = precision
	return b
}

// Scale sets the number of fractional digits.
func (b *decimalBuilder) Scale(scale int) *decimalBuilder {
	if scale < 0 {
		b.setErr(fmt.Errorf("negative scale %d", scale))
		return b
	}
	b.desc.Decimals = &scale
	return b
}

func (b *decimalBuilder) setErr(err error) {
	if b.desc.Err == nil {
		b.desc.Err = tessera.NewValidationError(TypeDecimal.String(), err)
	}
}

// Descriptor returns the column type descriptor.
func (b *decimalBuilder) Descriptor() *Descriptor {
	return b.desc
}

// typeBuilder configures column types that carry no dialect options.
type typeBuilder struct {
	desc *Descriptor
}

// Descriptor returns the column type descriptor.
func (b *typeBuilder) Descriptor() *Descriptor {
	return b.desc
}

// Boolean returns a descriptor builder for a BOOLEAN column type.
func Boolean() *typeBuilder {
	return &typeBuilder{&Descriptor{Type: TypeBoolean}}
}

// Date returns a descriptor builder for a DATE (timestamp) column type.
func Date() *typeBuilder {
	return &typeBuilder{&Descriptor{Type: TypeDate}}
}

// DateOnly returns a descriptor builder for a DATEONLY (calendar date,
// no time component) column type.
func DateOnly() *typeBuilder {
	return &typeBuilder{&Descriptor{Type: TypeDateOnly}}
}

// Time returns a descriptor builder for a TIME column type.
func Time() *typeBuilder {
	return &typeBuilder{&Descriptor{Type: TypeTime}}
}

// JSON returns a descriptor builder for a JSON column type.
func JSON() *typeBuilder {
	return &typeBuilder{&Descriptor{Type: TypeJSON}}
}

// UUID returns a descriptor builder for a UUID column type.
func UUID() *typeBuilder {
	return &typeBuilder{&Descriptor{Type: TypeUUID}}
}

// Blob returns a descriptor builder for a BLOB column type.
func Blob() *typeBuilder {
	return &typeBuilder{&Descriptor{Type: TypeBlob}}
}

// Geometry returns a descriptor builder for a GEOMETRY column type.
func Geometry() *typeBuilder {
	return &typeBuilder{&Descriptor{Type: TypeGeometry}}
}

package coltype

//go:generate go run ./internal

// A Type is an abstract column type identifier. It names what a column
// stores, independently of how any particular dialect spells it in DDL.
type Type uint8

// List of abstract column types.
const (
	TypeInvalid Type = iota
	TypeString
	TypeChar
	TypeText
	TypeCiText
	TypeTinyInt
	TypeSmallInt
	TypeMediumInt
	TypeInteger
	TypeBigInt
	TypeFloat
	TypeDouble
	TypeReal
	TypeDecimal
	TypeBoolean
	TypeDate
	TypeDateOnly
	TypeTime
	TypeJSON
	TypeEnum
	TypeUUID
	TypeBlob
	TypeGeometry
	endTypes
)

// keys holds the abstract key identifier of each type. Every valid type
// has a non-empty key.
var keys = [...]string{
	TypeInvalid:   "",
	TypeString:    "STRING",
	TypeChar:      "CHAR",
	TypeText:      "TEXT",
	TypeCiText:    "CITEXT",
	TypeTinyInt:   "TINYINT",
	TypeSmallInt:  "SMALLINT",
	TypeMediumInt: "MEDIUMINT",
	TypeInteger:   "INTEGER",
	TypeBigInt:    "BIGINT",
	TypeFloat:     "FLOAT",
	TypeDouble:    "DOUBLE PRECISION",
	TypeReal:      "REAL",
	TypeDecimal:   "DECIMAL",
	TypeBoolean:   "BOOLEAN",
	TypeDate:      "DATE",
	TypeDateOnly:  "DATEONLY",
	TypeTime:      "TIME",
	TypeJSON:      "JSON",
	TypeEnum:      "ENUM",
	TypeUUID:      "UUID",
	TypeBlob:      "BLOB",
	TypeGeometry:  "GEOMETRY",
}

// String returns the abstract key identifier of the type,
// e.g. "STRING" or "DOUBLE PRECISION".
func (t Type) String() string {
	if t.Valid() {
		return keys[t]
	}
	return "invalid"
}

// Valid reports if the given type is a known column type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Integer reports if the given type is a member of the integer family
// (TINYINT through BIGINT).
func (t Type) Integer() bool {
	return t >= TypeTinyInt && t <= TypeBigInt
}

// Float reports if the given type is a floating-point type
// (FLOAT, DOUBLE PRECISION or REAL).
func (t Type) Float() bool {
	return t >= TypeFloat && t <= TypeReal
}

// Numeric reports if the given type belongs to the numeric family,
// i.e. integers and floating-point types. DECIMAL carries its own
// precision/scale rendering and is not part of this family.
func (t Type) Numeric() bool {
	return t.Integer() || t.Float()
}

// Types returns all valid column types in declaration order.
func Types() []Type {
	ts := make([]Type, 0, int(endTypes)-1)
	for t := TypeInvalid + 1; t < endTypes; t++ {
		ts = append(ts, t)
	}
	return ts
}

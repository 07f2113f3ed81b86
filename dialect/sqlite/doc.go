// Package sqlite maps Tessera's abstract column types onto SQLite.
//
// The package is a dialect type table: for every abstract type it
// records how the DDL type clause is rendered, which native type names
// identify it when reading an existing schema, and — where the driver
// hands values back in a lossy textual form — how to parse them into
// their native representation. The table is built once and read-only
// afterwards; every operation is a pure function over its inputs.
//
// # Binding and rendering
//
//	col, err := sqlite.Default().Column(coltype.String(10).Binary().Descriptor())
//	// col.SQL() == "VARCHAR BINARY(10)"
//
// Options SQLite cannot express are corrected on binding, never
// rejected: UNSIGNED/ZEROFILL on integers and a length on TEXT are
// cleared on a copy of the descriptor, and a warning naming the type is
// sent through the registry's WarnFunc.
//
// # Value parsing
//
//	col, _ := sqlite.Default().Column(coltype.Date().Descriptor())
//	v, err := col.Parse("2020-01-01 00:00:00", sqlite.ParseOptions{Timezone: "+02:00"})
//
// Timestamps stored without a UTC offset predate timezone-aware storage
// and are interpreted in the supplied timezone; strings carrying their
// own offset parse as-is. Float columns fold the literals "NaN",
// "Infinity" and "-Infinity" into their native values, and JSON columns
// decode the stored text.
//
// # Reverse lookup
//
//	sqlite.Default().TypesOf("TINYINT") // [TINYINT BOOLEAN]
//
// A native name may identify several abstract types; all candidates are
// returned and the caller resolves the ambiguity from context. ENUM and
// GEOMETRY have no native representation and are excluded from reverse
// lookup.
package sqlite

// Package coltype provides fluent builders for abstract column-type
// descriptors in Tessera.
//
// A descriptor names what a column stores — string, integer, enum, JSON —
// together with its configured options (display length, fractional digits,
// UNSIGNED/ZEROFILL/BINARY modifiers, enum values). Descriptors carry no
// dialect knowledge; a dialect type table such as dialect/sqlite turns them
// into DDL fragments and value parsers.
//
// # Building descriptors
//
//	coltype.String(10)                    // VARCHAR-style string, length 10
//	coltype.String(10).Binary()           // with the BINARY modifier
//	coltype.Text()                        // unbounded text
//	coltype.CiText()                      // case-insensitive text
//	coltype.Integer().Unsigned()          // numeric modifiers
//	coltype.Float().Size(11).Decimals(2)  // FLOAT(11,2)
//	coltype.Decimal().Precision(10).Scale(2)
//	coltype.Enum("pending", "active")
//	coltype.JSON()
//	coltype.Date()
//
// Each builder's Descriptor method returns the finished *Descriptor.
//
// # Deferred errors
//
// Invalid constructions (an enum without values, a negative DECIMAL
// precision) do not panic; the error is recorded on Descriptor.Err and
// surfaces when the descriptor is first handed to a dialect.
//
// # Dialect options
//
// Some options are not universally supported. Builders accept them
// regardless; it is the dialect's job to drop what it cannot express and
// report the correction through its warning hook.
package coltype

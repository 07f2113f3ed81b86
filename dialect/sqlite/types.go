package sqlite

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tessera-db/tessera"
	"github.com/tessera-db/tessera/schema/coltype"
)

// newEntries builds the table rows in registration order. Aliases are
// the native names SQLite schema introspection reports for columns of
// each type; ENUM and GEOMETRY have none since the dialect cannot
// natively express them.
func newEntries() []*TypeEntry {
	return []*TypeEntry{
		{typ: coltype.TypeString, aliases: []string{"VARCHAR", "VARCHAR BINARY"}, render: renderSized("VARCHAR")},
		{typ: coltype.TypeChar, aliases: []string{"CHAR", "CHAR BINARY"}, render: renderSized("CHAR")},
		{typ: coltype.TypeText, aliases: []string{"TEXT"}, render: fixed("TEXT")},
		{typ: coltype.TypeCiText, aliases: []string{"TEXT COLLATE NOCASE"}, render: fixed("TEXT COLLATE NOCASE")},
		{typ: coltype.TypeTinyInt, aliases: []string{"TINYINT"}, render: renderNumber},
		{typ: coltype.TypeSmallInt, aliases: []string{"SMALLINT"}, render: renderNumber},
		{typ: coltype.TypeMediumInt, aliases: []string{"MEDIUMINT"}, render: renderNumber},
		{typ: coltype.TypeInteger, aliases: []string{"INTEGER"}, render: renderNumber},
		{typ: coltype.TypeBigInt, aliases: []string{"BIGINT"}, render: renderNumber},
		{typ: coltype.TypeFloat, aliases: []string{"FLOAT"}, render: renderNumber, parse: parseFloat},
		{typ: coltype.TypeDouble, aliases: []string{"DOUBLE PRECISION"}, render: renderNumber, parse: parseFloat},
		{typ: coltype.TypeReal, aliases: []string{"REAL"}, render: renderNumber, parse: parseFloat},
		{typ: coltype.TypeDecimal, aliases: []string{"DECIMAL"}, render: renderDecimal},
		// BOOLEAN columns are stored as TINYINT(1); reading a TINYINT back is
		// ambiguous between the two on purpose.
		{typ: coltype.TypeBoolean, aliases: []string{"TINYINT"}, render: fixed("TINYINT(1)")},
		{typ: coltype.TypeDate, aliases: []string{"DATETIME"}, render: fixed("DATETIME"), parse: parseDate},
		{typ: coltype.TypeDateOnly, aliases: []string{"DATE"}, render: fixed("DATE"), parse: parseDateOnly},
		{typ: coltype.TypeTime, aliases: []string{"TIME"}, render: fixed("TIME")},
		{typ: coltype.TypeJSON, aliases: []string{"JSON", "JSONB"}, render: renderKey, parse: parseJSON},
		// SQLite has no native enum type; constraint enforcement, if any, is
		// the caller's responsibility.
		{typ: coltype.TypeEnum, unsupported: true, render: fixed("TEXT")},
		{typ: coltype.TypeUUID, aliases: []string{"UUID"}, render: renderKey, parse: parseUUID},
		{typ: coltype.TypeBlob, aliases: []string{"TINYBLOB", "BLOB", "LONGBLOB"}, render: renderKey},
		{typ: coltype.TypeGeometry, unsupported: true, render: renderKey},
	}
}

// renderKey renders the abstract key as-is.
func renderKey(d *coltype.Descriptor) string {
	return d.Key()
}

// fixed renders a constant clause regardless of options.
func fixed(sql string) func(*coltype.Descriptor) string {
	return func(*coltype.Descriptor) string {
		return sql
	}
}

// renderSized renders string types as KEY[ BINARY](length).
func renderSized(key string) func(*coltype.Descriptor) string {
	return func(d *coltype.Descriptor) string {
		size := d.Size
		if size <= 0 {
			size = coltype.DefaultStringSize
		}
		if d.Binary {
			return fmt.Sprintf("%s BINARY(%d)", key, size)
		}
		return fmt.Sprintf("%s(%d)", key, size)
	}
}

// renderNumber renders the numeric family as
// KEY[ UNSIGNED][ ZEROFILL][(length[,decimals])]. Integer descriptors
// never reach this with UNSIGNED or ZEROFILL still set; binding clears
// them first.
func renderNumber(d *coltype.Descriptor) string {
	var b strings.Builder
	b.WriteString(d.Key())
	if d.Unsigned {
		b.WriteString(" UNSIGNED")
	}
	if d.Zerofill {
		b.WriteString(" ZEROFILL")
	}
	if d.Size > 0 {
		fmt.Fprintf(&b, "(%d", d.Size)
		if d.Decimals != nil {
			fmt.Fprintf(&b, ",%d", *d.Decimals)
		}
		b.WriteString(")")
	}
	return b.String()
}

// renderDecimal renders DECIMAL(precision,scale), or bare DECIMAL when
// no precision is configured.
func renderDecimal(d *coltype.Descriptor) string {
	if d.Size > 0 {
		scale := 0
		if d.Decimals != nil {
			scale = *d.Decimals
		}
		return fmt.Sprintf("DECIMAL(%d,%d)", d.Size, scale)
	}
	return "DECIMAL"
}

// dateLayouts are the accepted timestamp shapes, with and without
// fractional seconds, in both space- and T-separated forms.
var dateLayouts = []string{
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
}

// parseDate converts a stored timestamp string into a time.Time. Rows
// written before timezone-aware storage carry no offset; those are
// interpreted in the caller-supplied timezone by appending it. Strings
// already carrying an offset parse as-is.
func parseDate(raw any, opts ParseOptions) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return raw, nil
	}
	in := s
	if !strings.Contains(in, "+") {
		tz := opts.Timezone
		if tz == "" {
			tz = DefaultTimezone
		}
		in += tz
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return t, nil
		}
	}
	return nil, tessera.NewParseError(coltype.TypeDate.String(),
		fmt.Errorf("cannot parse %q as timestamp", s))
}

// parseDateOnly passes the stored calendar date through unchanged.
func parseDateOnly(raw any, _ ParseOptions) (any, error) {
	return raw, nil
}

// parseFloat maps the special float literals SQLite hands back as text
// onto their native values. Everything else passes through unchanged.
func parseFloat(raw any, _ ParseOptions) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return raw, nil
	}
	switch s {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	return raw, nil
}

// parseJSON decodes the stored JSON text. Malformed text propagates the
// decode error to the caller.
func parseJSON(raw any, _ ParseOptions) (any, error) {
	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return nil, tessera.NewParseError(coltype.TypeJSON.String(),
			fmt.Errorf("expected JSON text, got %T", raw))
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, tessera.NewParseError(coltype.TypeJSON.String(), err)
	}
	return out, nil
}

// parseUUID converts the stored text into a uuid.UUID. Non-string
// values pass through unchanged.
func parseUUID(raw any, _ ParseOptions) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return raw, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, tessera.NewParseError(coltype.TypeUUID.String(), err)
	}
	return id, nil
}

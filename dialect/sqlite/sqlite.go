package sqlite

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tessera-db/tessera"
	"github.com/tessera-db/tessera/schema/coltype"
)

// docsURL points at the SQLite datatype documentation and accompanies
// every compatibility warning.
const docsURL = "https://www.sqlite.org/datatype3.html"

// DefaultTimezone is the offset assumed for timestamp strings stored
// without one.
const DefaultTimezone = "+00:00"

// WarnFunc receives non-fatal dialect compatibility warnings, such as an
// UNSIGNED modifier on an integer column being dropped. url links to the
// relevant documentation.
type WarnFunc func(url, msg string)

func defaultWarn(url, msg string) {
	slog.Warn(msg, "url", url)
}

// ParseOptions configures value parsing for a single read.
type ParseOptions struct {
	// Timezone is the UTC offset (e.g. "+02:00") assumed for timestamp
	// strings stored without one. Empty means DefaultTimezone.
	Timezone string
}

// A TypeEntry describes how one abstract column type maps to SQLite:
// the DDL rendering, the optional value parser, and the native type
// names that identify it when reading an existing schema. Entries are
// built once per Registry and never mutated.
type TypeEntry struct {
	typ         coltype.Type
	aliases     []string
	unsupported bool
	render      func(*coltype.Descriptor) string
	parse       func(raw any, opts ParseOptions) (any, error)
}

// Type returns the abstract column type of the entry.
func (e *TypeEntry) Type() coltype.Type {
	return e.typ
}

// Aliases returns the native SQL type names that identify this entry
// when reading an existing schema. The slice is a copy; it is empty for
// types the dialect cannot natively represent (see Unsupported).
func (e *TypeEntry) Aliases() []string {
	return append([]string(nil), e.aliases...)
}

// Unsupported reports if the dialect has no native representation to
// reverse-map for this type (ENUM and GEOMETRY).
func (e *TypeEntry) Unsupported() bool {
	return e.unsupported
}

// HasParse reports if the entry converts raw driver values into a
// native representation.
func (e *TypeEntry) HasParse() bool {
	return e.parse != nil
}

// Extend constructs a new descriptor of this entry's type carrying the
// configured options of d. Callers use it to derive a customized copy
// of a shared default.
func (e *TypeEntry) Extend(d *coltype.Descriptor) *coltype.Descriptor {
	nd := d.Clone()
	nd.Type = e.typ
	return nd
}

// A Registry is the SQLite dialect type table. It is built once and is
// read-only afterwards; all methods are safe for concurrent use.
type Registry struct {
	warn    WarnFunc
	entries map[coltype.Type]*TypeEntry
	aliases map[string][]coltype.Type
	order   []coltype.Type
}

// Option configures a Registry.
type Option func(*Registry)

// WithWarnFunc sets the destination for compatibility warnings.
// The default logs through log/slog.
func WithWarnFunc(f WarnFunc) Option {
	return func(r *Registry) {
		r.warn = f
	}
}

// NewRegistry builds the SQLite type table.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		warn:    defaultWarn,
		entries: make(map[coltype.Type]*TypeEntry),
		aliases: make(map[string][]coltype.Type),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, e := range newEntries() {
		r.entries[e.typ] = e
		r.order = append(r.order, e.typ)
		for _, alias := range e.aliases {
			// An alias may identify several abstract types (TINYINT names
			// both TINYINT and BOOLEAN); candidates keep registration order
			// and the ambiguity is resolved by caller context.
			r.aliases[alias] = append(r.aliases[alias], e.typ)
		}
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the shared type table built at package load.
func Default() *Registry {
	return defaultRegistry
}

// Entry returns the table entry for the given abstract type.
func (r *Registry) Entry(t coltype.Type) (*TypeEntry, bool) {
	e, ok := r.entries[t]
	return e, ok
}

// Types returns all abstract types the table maps, in registration order.
func (r *Registry) Types() []coltype.Type {
	return append([]coltype.Type(nil), r.order...)
}

// Supports reports if native SQL type names reverse-map to the given
// abstract type when reading an existing schema.
func (r *Registry) Supports(t coltype.Type) bool {
	e, ok := r.entries[t]
	return ok && !e.unsupported
}

// TypesOf returns the abstract types identified by a native SQL type
// name read from an existing schema, e.g. "VARCHAR(30)" or "DATETIME".
// A name can identify several types (TINYINT is both TINYINT and
// BOOLEAN); all candidates are returned and the caller picks by context.
func (r *Registry) TypesOf(native string) []coltype.Type {
	return append([]coltype.Type(nil), r.aliases[normalizeNative(native)]...)
}

// normalizeNative canonicalizes a native type name for reverse lookup:
// upper-cases it, strips the parenthesized length and the display
// modifiers that carry no type information.
func normalizeNative(s string) string {
	s = strings.ToUpper(s)
	if i := strings.IndexByte(s, '('); i != -1 {
		if j := strings.IndexByte(s[i:], ')'); j != -1 {
			s = s[:i] + s[i+j+1:]
		} else {
			s = s[:i]
		}
	}
	fields := make([]string, 0, 3)
	for _, f := range strings.Fields(s) {
		if f == "UNSIGNED" || f == "ZEROFILL" {
			continue
		}
		fields = append(fields, f)
	}
	return strings.Join(fields, " ")
}

// Column binds an abstract descriptor to the dialect. Options the
// dialect cannot express (UNSIGNED/ZEROFILL on integers, a length on
// TEXT) are cleared on a copy with a single warning; binding never
// fails for those. It does fail for descriptors carrying a construction
// error and for types the table does not map.
func (r *Registry) Column(d *coltype.Descriptor) (*Column, error) {
	if d == nil {
		return nil, errors.New("sqlite: nil column type descriptor")
	}
	if d.Err != nil {
		return nil, d.Err
	}
	e, ok := r.entries[d.Type]
	if !ok {
		return nil, tessera.NewUnsupportedTypeError(d.Type.String())
	}
	return &Column{desc: r.normalize(d), entry: e}, nil
}

// normalize clears unsupported modifiers on a copy of d, warning once
// per call. The caller's descriptor is never mutated.
func (r *Registry) normalize(d *coltype.Descriptor) *coltype.Descriptor {
	switch {
	case d.Type.Integer() && (d.Unsigned || d.Zerofill):
		d = d.Clone()
		d.Unsigned, d.Zerofill = false, false
		r.warn(docsURL, fmt.Sprintf(
			"SQLite does not support '%s' with UNSIGNED or ZEROFILL. Plain '%s' will be used instead.",
			d.Key(), d.Key(),
		))
	case d.Type == coltype.TypeText && d.Size != 0:
		d = d.Clone()
		d.Size = 0
		r.warn(docsURL,
			"SQLite does not support 'TEXT' with the length option. Plain 'TEXT' will be used instead.")
	}
	return d
}

// A Column is a descriptor bound to the SQLite dialect, carrying its
// normalized options together with the table entry for its type.
type Column struct {
	desc  *coltype.Descriptor
	entry *TypeEntry
}

// Type returns the abstract column type.
func (c *Column) Type() coltype.Type {
	return c.entry.typ
}

// Descriptor returns a copy of the normalized descriptor.
func (c *Column) Descriptor() *coltype.Descriptor {
	return c.desc.Clone()
}

// SQL renders the column-type clause, e.g. "VARCHAR BINARY(10)" or
// "TEXT COLLATE NOCASE".
func (c *Column) SQL() string {
	return c.entry.render(c.desc)
}

// Parse converts a raw driver-returned value into its native
// representation. Types without a parse hook pass the value through
// unchanged.
func (c *Column) Parse(raw any, opts ParseOptions) (any, error) {
	if c.entry.parse == nil {
		return raw, nil
	}
	return c.entry.parse(raw, opts)
}

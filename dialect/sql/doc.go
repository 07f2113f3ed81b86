// Package sql is a thin wrapper around database/sql implementing the
// dialect.Driver interface. It carries the plumbing the type layer's
// integration points need: opening a connection for a named dialect,
// running statements, transactions, and a debug driver that logs every
// statement through log/slog.
package sql

// Package dialect provides database dialect abstraction for Tessera.
//
// This package defines the interfaces and constants used for
// database-specific behavior. Tessera's primary target is SQLite; the
// MySQL and Postgres constants exist so drivers and callers can name the
// dialect they run against.
//
// # Dialect Constants
//
// Each dialect is identified by a constant string:
//
//	dialect.SQLite   = "sqlite"
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//
// # Driver Interface
//
// The package defines the Driver interface for database operations:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The Tx interface extends ExecQuerier with Commit and Rollback, and the
// ExecQuerier interface is implemented by both Driver and Tx.
//
// # Sub-packages
//
// The dialect package contains two sub-packages:
//
//   - dialect/sql: thin database/sql wrapper implementing Driver
//   - dialect/sqlite: the SQLite type table mapping abstract column
//     types to SQLite DDL fragments and value parsers
package dialect

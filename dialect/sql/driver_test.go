package sql_test

import (
	"context"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-db/tessera/dialect"
	"github.com/tessera-db/tessera/dialect/sql"
)

func TestDriver_Dialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	drv := sql.OpenDB(dialect.SQLite, db)
	assert.Equal(t, dialect.SQLite, drv.Dialect())

	// Telemetry-wrapped driver names resolve to the base dialect.
	drv = sql.OpenDB("sqlite-otel", db)
	assert.Equal(t, dialect.SQLite, drv.Dialect())

	drv = sql.OpenDB("unknown", db)
	assert.Equal(t, "unknown", drv.Dialect())
}

func TestDriver_Exec(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := sql.OpenDB(dialect.SQLite, db)

	mock.ExpectExec("CREATE TABLE users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err = drv.Exec(context.Background(), "CREATE TABLE users (id INTEGER)", []any{}, nil)
	require.NoError(t, err)

	// Invalid args type is rejected before touching the database.
	err = drv.Exec(context.Background(), "CREATE TABLE users (id INTEGER)", "not-a-slice", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expect []any for args")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDriver_Query(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := sql.OpenDB(dialect.SQLite, db)

	mock.ExpectQuery("SELECT name FROM sqlite_master").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("users"))

	var rows sql.Rows
	err = drv.Query(context.Background(), "SELECT name FROM sqlite_master", []any{}, &rows)
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	var name string
	require.NoError(t, rows.Scan(&name))
	assert.Equal(t, "users", name)

	// Invalid destination type.
	err = drv.Query(context.Background(), "SELECT 1", []any{}, "not-rows")
	require.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDriver_Tx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := sql.OpenDB(dialect.SQLite, db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "INSERT INTO users (id) VALUES (?)", []any{1}, nil))
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDebugDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var logged strings.Builder
	drv := sql.NewDebugDriver(
		sql.OpenDB(dialect.SQLite, db),
		sql.DebugWithLog(func(_ context.Context, v ...any) {
			for _, s := range v {
				logged.WriteString(s.(string))
			}
		}),
	)

	mock.ExpectExec("DROP TABLE users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, drv.Exec(context.Background(), "DROP TABLE users", []any{}, nil))
	assert.Contains(t, logged.String(), "exec: DROP TABLE users")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNullScanner(t *testing.T) {
	var dst sql.NullString
	n := &sql.NullScanner{S: &dst}
	require.NoError(t, n.Scan(nil))
	assert.False(t, n.Valid)

	require.NoError(t, n.Scan("hello"))
	assert.True(t, n.Valid)
	assert.Equal(t, "hello", dst.String)
}

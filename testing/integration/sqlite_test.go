package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/config"
	"github.com/zoobzio/fastersql/executor"
)

var sqliteDDL = []string{
	`DROP TABLE IF EXISTS orders`,
	`DROP TABLE IF EXISTS posts`,
	`DROP TABLE IF EXISTS users`,
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		age INTEGER,
		active BOOLEAN DEFAULT 1
	)`,
	`CREATE TABLE posts (
		id INTEGER PRIMARY KEY,
		user_id INTEGER,
		title TEXT NOT NULL,
		views INTEGER DEFAULT 0,
		published BOOLEAN DEFAULT 0
	)`,
	`CREATE TABLE orders (
		id INTEGER PRIMARY KEY,
		user_id INTEGER,
		total REAL NOT NULL,
		status TEXT DEFAULT 'pending'
	)`,
}

func sqliteExecutor(t *testing.T) *executor.Executor {
	t.Helper()
	cfg := &config.Config{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "integration.db")}
	e, err := executor.Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestSQLiteIntegration(t *testing.T) {
	e := sqliteExecutor(t)
	assert.Equal(t, "SQLite", e.Dialect().Name())

	runScenarios(t, backend{exec: e, ddl: sqliteDDL})
}

func TestSQLiteIntegration_OffsetWithoutLimit(t *testing.T) {
	ctx := context.Background()
	e := sqliteExecutor(t)
	for _, stmt := range sqliteDDL {
		_, err := e.DB().ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
	catalog := createCatalog(t)
	users := catalog.Table("users")
	seed(ctx, t, e, users, catalog.Table("posts"), catalog.Table("orders"))

	rows, err := e.Query(ctx, fastersql.Select(users.Column("username")).
		From(users).
		OrderBy(users.Column("id").Asc()).
		Offset(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"charlie", "diana"}, scanStrings(t, rows))
}

func TestSQLiteIntegration_TruncateUnsupported(t *testing.T) {
	e := sqliteExecutor(t)
	catalog := createCatalog(t)

	_, err := e.Exec(context.Background(), fastersql.Truncate().Table(catalog.Table("orders")))
	assert.ErrorIs(t, err, fastersql.ErrUnsupported)
}

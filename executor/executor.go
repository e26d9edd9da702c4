// Package executor runs rendered fastersql statements through database/sql.
package executor

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"

	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/config"
	"github.com/zoobzio/fastersql/resolve"
)

// Executor binds statements to a connection pool for one dialect.
type Executor struct {
	db      *sql.DB
	dialect fastersql.Dialect
	bind    Bind
	logger  *slog.Logger
}

// New creates an executor. A nil logger discards output.
func New(db *sql.DB, d fastersql.Dialect, bind Bind, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{
		db:      db,
		dialect: d,
		bind:    bind,
		logger:  logger.With("dialect", d.Name()),
	}
}

// Open validates cfg, connects and resolves the dialect. The configured
// dialect wins; otherwise it is detected from the connection.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Executor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.Driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	var d fastersql.Dialect
	if cfg.Dialect != "" {
		d, err = resolve.ByName(cfg.Dialect)
	} else {
		d, err = resolve.FromDB(ctx, db)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to resolve dialect: %w", err)
	}

	e := New(db, d, BindFor(cfg.Driver), logger)
	e.logger.Debug("connection opened", "driver", cfg.Driver)
	return e, nil
}

// Dialect returns the executor's dialect.
func (e *Executor) Dialect() fastersql.Dialect {
	return e.dialect
}

// DB returns the underlying pool.
func (e *Executor) DB() *sql.DB {
	return e.db
}

// Close closes the underlying pool.
func (e *Executor) Close() error {
	e.logger.Debug("closing database connection")
	return e.db.Close()
}

// Render renders stmt and rebinds its placeholders for the driver.
func (e *Executor) Render(stmt fastersql.Statement) (string, []any, error) {
	result, err := fastersql.Render(stmt, e.dialect)
	if err != nil {
		return "", nil, err
	}
	return Rebind(e.bind, result.SQL), result.Params, nil
}

// Exec executes a statement that returns no rows.
func (e *Executor) Exec(ctx context.Context, stmt fastersql.Statement) (sql.Result, error) {
	query, args, err := e.prepare(stmt)
	if err != nil {
		return nil, err
	}
	res, err := e.db.ExecContext(ctx, query, args...)
	if err != nil {
		e.logger.Error("exec failed", "sql", query, "error", err)
		return nil, fmt.Errorf("failed to execute SQL: %w", err)
	}
	return res, nil
}

// Query executes a statement that returns rows. The caller closes them.
func (e *Executor) Query(ctx context.Context, stmt fastersql.Statement) (*sql.Rows, error) {
	query, args, err := e.prepare(stmt)
	if err != nil {
		return nil, err
	}
	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		e.logger.Error("query failed", "sql", query, "error", err)
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return rows, nil
}

// QueryRow executes a statement expected to return at most one row.
// Query errors are deferred to Scan.
func (e *Executor) QueryRow(ctx context.Context, stmt fastersql.Statement) (*sql.Row, error) {
	query, args, err := e.prepare(stmt)
	if err != nil {
		return nil, err
	}
	return e.db.QueryRowContext(ctx, query, args...), nil
}

func (e *Executor) prepare(stmt fastersql.Statement) (string, []any, error) {
	query, args, err := e.Render(stmt)
	if err != nil {
		e.logger.Error("render failed", "error", err)
		return "", nil, fmt.Errorf("failed to render statement: %w", err)
	}
	e.logger.Debug("executing", "sql", query, "params", len(args))
	return query, args, nil
}

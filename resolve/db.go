package resolve

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/stdlib"
	mssqldriver "github.com/microsoft/go-mssqldb"
	sqlitedriver "modernc.org/sqlite"

	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/mariadb"
	"github.com/zoobzio/fastersql/mssql"
	"github.com/zoobzio/fastersql/mysql"
	"github.com/zoobzio/fastersql/postgres"
	"github.com/zoobzio/fastersql/sqlite"
)

// Probes are tried in order. Each one fails on every product except the
// ones that understand it.
var probes = []string{
	"select banner from v$version where rownum = 1",
	"select 'SQLite ' || sqlite_version()",
	"select 'H2 ' || h2version()",
	"select @@version_comment",
	"select @@version",
	"select version()",
}

// FromDB resolves the dialect of a live connection. Known driver types
// answer directly; MySQL connections are probed to tell MariaDB apart, and
// anything else is probed for a product banner.
func FromDB(ctx context.Context, db *sql.DB) (fastersql.Dialect, error) {
	switch db.Driver().(type) {
	case *stdlib.Driver:
		return postgres.New(), nil
	case *mssqldriver.Driver:
		return mssql.New(), nil
	case *sqlitedriver.Driver:
		return sqlite.New(), nil
	case *mysqldriver.MySQLDriver:
		for _, q := range probes[3:5] {
			if banner, err := query(ctx, db, q); err == nil && strings.Contains(strings.ToLower(banner), "mariadb") {
				return mariadb.New(), nil
			}
		}
		return mysql.New(), nil
	}

	var last string
	for _, q := range probes {
		banner, err := query(ctx, db, q)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("probing database product: %w", ctx.Err())
			}
			continue
		}
		last = banner
		if d, err := FromProductName(banner); err == nil {
			return d, nil
		}
	}
	return nil, &ResolutionError{Product: last}
}

// ProductName returns the first banner any probe query yields.
func ProductName(ctx context.Context, db *sql.DB) (string, error) {
	var errs []error
	for _, q := range probes {
		banner, err := query(ctx, db, q)
		if err == nil {
			return banner, nil
		}
		errs = append(errs, err)
	}
	return "", fmt.Errorf("no probe query succeeded: %w", errors.Join(errs...))
}

func query(ctx context.Context, db *sql.DB, q string) (string, error) {
	var banner sql.NullString
	if err := db.QueryRowContext(ctx, q).Scan(&banner); err != nil {
		return "", err
	}
	if !banner.Valid || banner.String == "" {
		return "", fmt.Errorf("%s: empty result", q)
	}
	return banner.String, nil
}

// Package resolve selects a fastersql dialect by configured name, by the
// product name a database reports, or by probing a live connection.
package resolve

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/zoobzio/fastersql"
	"github.com/zoobzio/fastersql/access"
	"github.com/zoobzio/fastersql/ansi"
	"github.com/zoobzio/fastersql/h2"
	"github.com/zoobzio/fastersql/mariadb"
	"github.com/zoobzio/fastersql/mssql"
	"github.com/zoobzio/fastersql/mysql"
	"github.com/zoobzio/fastersql/oracle"
	"github.com/zoobzio/fastersql/postgres"
	"github.com/zoobzio/fastersql/sqlite"
)

// ErrUnsupportedProduct is wrapped by ResolutionError.
var ErrUnsupportedProduct = errors.New("unsupported database product")

// ResolutionError reports a name or product that maps to no dialect.
type ResolutionError struct {
	Product string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no dialect for database product %q", e.Product)
}

func (e *ResolutionError) Unwrap() error {
	return ErrUnsupportedProduct
}

type factory func() fastersql.Dialect

var byName = map[string]factory{
	"access":     func() fastersql.Dialect { return access.New() },
	"ansi":       func() fastersql.Dialect { return ansi.New() },
	"h2":         func() fastersql.Dialect { return h2.New() },
	"mariadb":    func() fastersql.Dialect { return mariadb.New() },
	"mssql":      func() fastersql.Dialect { return mssql.New() },
	"mysql":      func() fastersql.Dialect { return mysql.New() },
	"oracle":     func() fastersql.Dialect { return oracle.New() },
	"postgres":   func() fastersql.Dialect { return postgres.New() },
	"postgresql": func() fastersql.Dialect { return postgres.New() },
	"sqlite":     func() fastersql.Dialect { return sqlite.New() },
	"sqlserver":  func() fastersql.Dialect { return mssql.New() },
}

// Product fragments in match order. MariaDB reports itself alongside MySQL
// and "h2" is short enough to occur inside other banners, so order matters.
var byProduct = []struct {
	fragment string
	dialect  factory
}{
	{"oracle", byName["oracle"]},
	{"postgres", byName["postgres"]},
	{"mariadb", byName["mariadb"]},
	{"mysql", byName["mysql"]},
	{"sql server", byName["mssql"]},
	{"sqlite", byName["sqlite"]},
	{"access", byName["access"]},
	{"h2", byName["h2"]},
}

// Canonical lists one name per dialect, in display order.
var Canonical = []string{"ansi", "postgres", "mysql", "mariadb", "sqlite", "mssql", "oracle", "h2", "access"}

// All returns one instance of every built-in dialect, in Canonical order.
func All() []fastersql.Dialect {
	dialects := make([]fastersql.Dialect, len(Canonical))
	for i, name := range Canonical {
		dialects[i] = byName[name]()
	}
	return dialects
}

// Names returns the accepted dialect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ByName returns the dialect registered under name, ignoring case.
func ByName(name string) (fastersql.Dialect, error) {
	if f, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f(), nil
	}
	return nil, &ResolutionError{Product: name}
}

// FromProductName maps a reported product name or version banner, such as
// "PostgreSQL 16.2 on x86_64", to a dialect.
func FromProductName(product string) (fastersql.Dialect, error) {
	lower := strings.ToLower(product)
	for _, p := range byProduct {
		if strings.Contains(lower, p.fragment) {
			return p.dialect(), nil
		}
	}
	return nil, &ResolutionError{Product: product}
}

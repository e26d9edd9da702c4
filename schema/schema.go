// Package schema declares fastersql tables from a DBML project, so column
// references are checked against the documented schema at construction.
package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/fastersql"
)

// ErrUnknownTable is returned when a catalog has no table of the given name.
var ErrUnknownTable = errors.New("table not found in schema")

// Catalog indexes the tables of a DBML project.
type Catalog struct {
	tables map[string]fastersql.Table
}

// FromDBML builds a catalog from a DBML project. Every table and column
// name must be a plain SQL identifier.
func FromDBML(project *dbml.Project) (*Catalog, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	c := &Catalog{tables: make(map[string]fastersql.Table)}
	for _, table := range project.Tables {
		if !isIdentifier(table.Name) {
			return nil, fmt.Errorf("table %q: not a valid identifier", table.Name)
		}
		if _, dup := c.tables[table.Name]; dup {
			return nil, fmt.Errorf("table %q: declared twice", table.Name)
		}

		columns := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			if !isIdentifier(col.Name) {
				return nil, fmt.Errorf("column %s.%s: not a valid identifier", table.Name, col.Name)
			}
			columns = append(columns, col.Name)
		}

		t, err := fastersql.TryTable(table.Name, columns...)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", table.Name, err)
		}
		c.tables[table.Name] = t
	}
	return c, nil
}

// TryTable returns the declared table, or an error wrapping ErrUnknownTable.
func (c *Catalog) TryTable(name string) (fastersql.Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return fastersql.Table{}, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return t, nil
}

// Table returns the declared table and panics when it is unknown.
func (c *Catalog) Table(name string) fastersql.Table {
	t, err := c.TryTable(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Tables returns the declared table names in sorted order.
func (c *Catalog) Tables() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '_', ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

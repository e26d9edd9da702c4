package fastersql

import (
	"slices"
	"strings"
)

// Table is a named relation with a display alias. The alias defaults to
// the table name. Tables are values; As returns an aliased copy.
type Table struct {
	name    string
	alias   string
	columns []string
	derived *SelectStatement
}

// TryTable creates a table. When columns are given, Column only accepts
// those names.
func TryTable(name string, columns ...string) (Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Table{}, constructionError("table", "name is blank")
	}
	for _, col := range columns {
		if strings.TrimSpace(col) == "" {
			return Table{}, constructionError("table", "table %s declares a blank column name", name)
		}
	}
	return Table{name: name, alias: name, columns: slices.Clone(columns)}, nil
}

// NewTable creates a table, panicking on a blank name.
func NewTable(name string, columns ...string) Table {
	t, err := TryTable(name, columns...)
	if err != nil {
		panic(err)
	}
	return t
}

// Derived creates a table backed by a subquery, rendered as
// (select ...) alias in FROM and JOIN clauses.
func Derived(stmt SelectStatement, alias string) Table {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		panic(constructionError("derived table", "alias is blank"))
	}
	return Table{name: alias, alias: alias, derived: &stmt}
}

// Name returns the table name.
func (t Table) Name() string {
	return t.name
}

// Alias returns the display alias.
func (t Table) Alias() string {
	return t.alias
}

// As returns a copy of the table with a different alias.
func (t Table) As(alias string) Table {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		panic(constructionError("table", "alias for %s is blank", t.name))
	}
	t.alias = alias
	return t
}

// TryColumn returns the named column of the table.
func (t Table) TryColumn(name string) (Column, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Column{}, constructionError("column", "name is blank")
	}
	if t.name == "" {
		return Column{}, constructionError("column", "column %s has no table", name)
	}
	if len(t.columns) > 0 && !slices.Contains(t.columns, name) {
		return Column{}, constructionError("column", "table %s has no column %s", t.name, name)
	}
	return Column{table: t, name: name}, nil
}

// Column returns the named column of the table, panicking if it is not
// declared.
func (t Table) Column(name string) Column {
	c, err := t.TryColumn(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Columns returns the declared columns in declaration order.
func (t Table) Columns() []Column {
	cols := make([]Column, len(t.columns))
	for i, name := range t.columns {
		cols[i] = Column{table: t, name: name}
	}
	return cols
}

func (t Table) same(o Table) bool {
	return t.name == o.name && t.alias == o.alias
}

func (t Table) String() string {
	if t.alias != t.name {
		return t.name + " " + t.alias
	}
	return t.name
}

// relationSQL renders the table as a FROM or JOIN item.
func (t Table) relationSQL(ctx Context) (string, error) {
	if t.derived != nil {
		sql, err := t.derived.SQL(ctx.detached())
		if err != nil {
			return "", err
		}
		return "(" + sql + ") " + t.alias, nil
	}
	if ctx.Command() != CmdSelect {
		return t.name, nil
	}
	return t.String(), nil
}

func (t Table) relationParams(ctx Context) []any {
	if t.derived == nil {
		return nil
	}
	params, err := t.derived.Params(ctx.detached())
	if err != nil {
		return nil
	}
	return params
}

// ColumnAlias is the projected name of a SELECT-list item.
type ColumnAlias string

// Column is a column of a table. Its default alias is
// <TABLE ALIAS>_<NAME> in upper case.
type Column struct {
	table Table
	name  string
	alias ColumnAlias
}

// Name returns the column name.
func (c Column) Name() string {
	return c.name
}

// Table returns the table the column belongs to.
func (c Column) Table() Table {
	return c.table
}

// Alias returns the projected alias.
func (c Column) Alias() ColumnAlias {
	if c.alias != "" {
		return c.alias
	}
	return ColumnAlias(strings.ToUpper(c.table.alias + "_" + c.name))
}

// As returns a copy of the column projected under alias.
func (c Column) As(alias string) Column {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		panic(constructionError("column", "alias for %s is blank", c.name))
	}
	c.alias = ColumnAlias(alias)
	return c
}

// SQL renders ALIAS.NAME in queries and the bare name in data
// modification statements.
func (c Column) SQL(ctx Context) (string, error) {
	switch ctx.Command() {
	case CmdInsert, CmdUpdate, CmdDelete:
		return c.name, nil
	}
	return c.table.alias + "." + c.name, nil
}

func (c Column) Params(Context) []any { return nil }

func (c Column) ColumnRefs() []Column { return []Column{c} }

func (c Column) AliasRefs() []ColumnAlias { return nil }

func (c Column) aggregate() bool { return false }

func (c Column) same(o Column) bool {
	return c.name == o.name && c.table.same(o.table)
}

// Eq creates c = v.
func (c Column) Eq(v any) Predicate { return Eq(c, v) }

// Ne creates c <> v.
func (c Column) Ne(v any) Predicate { return Ne(c, v) }

// Lt creates c < v.
func (c Column) Lt(v any) Predicate { return Lt(c, v) }

// Le creates c <= v.
func (c Column) Le(v any) Predicate { return Le(c, v) }

// Gt creates c > v.
func (c Column) Gt(v any) Predicate { return Gt(c, v) }

// Ge creates c >= v.
func (c Column) Ge(v any) Predicate { return Ge(c, v) }

// Between creates c between low and high.
func (c Column) Between(low, high any) Predicate { return Between(c, low, high) }

// Like creates c like pattern.
func (c Column) Like(pattern string) Predicate { return Like(c, pattern) }

// In creates c in (values...).
func (c Column) In(values ...any) Predicate { return In(c, values...) }

// IsNull creates c is null.
func (c Column) IsNull() Predicate { return IsNull(c) }

// IsNotNull creates c is not null.
func (c Column) IsNotNull() Predicate { return Not(IsNull(c)) }

// Asc orders ascending by c.
func (c Column) Asc() Order { return Asc(c) }

// Desc orders descending by c.
func (c Column) Desc() Order { return Desc(c) }

// On joins c to other.
func (c Column) On(other Column) Join { return On(c, other) }

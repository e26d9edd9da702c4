package fastersql

import "slices"

type assignment struct {
	column Column
	value  Expression
}

func assignmentColumns(as []assignment) []Column {
	cols := make([]Column, len(as))
	for i, a := range as {
		cols[i] = a.column
	}
	return cols
}

func checkAssignments(stmt Command, table Table, as []assignment) error {
	for i, a := range as {
		if !a.column.table.same(table) {
			return invalid(stmt, "column %s belongs to %s, not %s", a.column.name, a.column.table, table)
		}
		for _, prev := range as[:i] {
			if prev.column.same(a.column) {
				return invalid(stmt, "column %s is assigned twice", a.column.name)
			}
		}
	}
	return nil
}

// InsertStatement is an immutable single-row INSERT.
type InsertStatement struct {
	table  Table
	values []assignment
	err    error
}

// InsertInto starts an INSERT into t.
func InsertInto(t Table) InsertStatement {
	s := InsertStatement{table: t}
	if t.name == "" {
		return s.fail(constructionError("insert", "table is blank"))
	}
	return s
}

func (s InsertStatement) fail(err error) InsertStatement {
	if s.err == nil {
		s.err = err
	}
	return s
}

// Value sets col to v. Nil values insert null.
func (s InsertStatement) Value(col Column, v any) InsertStatement {
	s.values = append(slices.Clip(s.values), assignment{column: col, value: operand(v)})
	return s
}

// ValueIf sets col to the supplied value when cond is true.
func (s InsertStatement) ValueIf(cond bool, col Column, v func() any) InsertStatement {
	if !cond {
		return s
	}
	return s.Value(col, v())
}

func (s InsertStatement) validate() error {
	if s.err != nil {
		return s.err
	}
	if len(s.values) == 0 {
		return invalid(CmdInsert, "missing values")
	}
	if err := checkAssignments(CmdInsert, s.table, s.values); err != nil {
		return err
	}
	for _, a := range s.values {
		for _, c := range a.value.ColumnRefs() {
			if !c.table.same(s.table) {
				return invalid(CmdInsert, "value for %s refers to table %s", a.column.name, c.table)
			}
		}
	}
	return nil
}

// SQL validates the statement and renders it.
func (s InsertStatement) SQL(ctx Context) (string, error) {
	sql, _, err := s.build(ctx.WithCommand(CmdInsert))
	return sql, err
}

// Params returns the bound values in placeholder order.
func (s InsertStatement) Params(ctx Context) ([]any, error) {
	_, params, err := s.build(ctx.WithCommand(CmdInsert))
	return params, err
}

// Render renders the statement for d.
func (s InsertStatement) Render(d Dialect) (*Result, error) {
	return Render(s, d)
}

func (s InsertStatement) build(ctx Context) (string, []any, error) {
	if err := s.validate(); err != nil {
		return "", nil, err
	}
	cols, err := joinSQL(ctx, assignmentColumns(s.values), ", ")
	if err != nil {
		return "", nil, err
	}
	values := make([]Expression, len(s.values))
	for i, a := range s.values {
		values[i] = a.value
	}
	vals, err := joinSQL(ctx, values, ", ")
	if err != nil {
		return "", nil, err
	}
	return "insert into " + s.table.name + " (" + cols + ") values (" + vals + ")", paramsOf(ctx, values), nil
}

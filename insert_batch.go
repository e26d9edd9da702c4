package fastersql

import (
	"slices"
	"strings"
)

// oracleProduct is the dialect name that selects INSERT ALL batches.
const oracleProduct = "Oracle"

type extractor[E any] struct {
	column  Column
	extract func(E) any
}

// InsertBatchStatement inserts one row per entity. Column values are
// extracted from each entity by caller supplied functions.
type InsertBatchStatement[E any] struct {
	rows    []E
	table   Table
	columns []extractor[E]
	err     error
}

// InsertBatch starts a batch insert of rows.
func InsertBatch[E any](rows []E) InsertBatchStatement[E] {
	return InsertBatchStatement[E]{rows: slices.Clone(rows)}
}

// Into sets the target table.
func (s InsertBatchStatement[E]) Into(t Table) InsertBatchStatement[E] {
	if t.name == "" {
		s = s.fail(constructionError("insert", "table is blank"))
	}
	s.table = t
	return s
}

// Value extracts the value of col from each entity. An extracted nil
// inserts null.
func (s InsertBatchStatement[E]) Value(col Column, extract func(E) any) InsertBatchStatement[E] {
	if extract == nil {
		s = s.fail(constructionError("insert", "extractor for %s is nil", col.name))
	}
	s.columns = append(slices.Clip(s.columns), extractor[E]{column: col, extract: extract})
	return s
}

func (s InsertBatchStatement[E]) fail(err error) InsertBatchStatement[E] {
	if s.err == nil {
		s.err = err
	}
	return s
}

func (s InsertBatchStatement[E]) validate() error {
	if s.err != nil {
		return s.err
	}
	if s.table.name == "" {
		return invalid(CmdInsert, "missing into table")
	}
	if len(s.rows) == 0 {
		return invalid(CmdInsert, "no rows to insert")
	}
	if len(s.columns) == 0 {
		return invalid(CmdInsert, "missing values")
	}
	as := make([]assignment, len(s.columns))
	for i, c := range s.columns {
		as[i] = assignment{column: c.column}
	}
	return checkAssignments(CmdInsert, s.table, as)
}

// SQL validates the statement and renders it.
func (s InsertBatchStatement[E]) SQL(ctx Context) (string, error) {
	sql, _, err := s.build(ctx.WithCommand(CmdInsert))
	return sql, err
}

// Params returns the extracted values of every row in placeholder order.
func (s InsertBatchStatement[E]) Params(ctx Context) ([]any, error) {
	_, params, err := s.build(ctx.WithCommand(CmdInsert))
	return params, err
}

// Render renders the statement for d.
func (s InsertBatchStatement[E]) Render(d Dialect) (*Result, error) {
	return Render(s, d)
}

func (s InsertBatchStatement[E]) build(ctx Context) (string, []any, error) {
	if err := s.validate(); err != nil {
		return "", nil, err
	}
	names := make([]string, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.column.name
	}
	target := s.table.name + " (" + strings.Join(names, ", ") + ")"

	var params []any
	rows := make([]string, len(s.rows))
	for i, row := range s.rows {
		values := make([]Expression, len(s.columns))
		for j, c := range s.columns {
			values[j] = operand(c.extract(row))
		}
		sql, err := joinSQL(ctx, values, ", ")
		if err != nil {
			return "", nil, err
		}
		rows[i] = "(" + sql + ")"
		params = append(params, paramsOf(ctx, values)...)
	}

	if ctx.Dialect().Name() == oracleProduct {
		var b strings.Builder
		b.WriteString("insert all")
		for _, r := range rows {
			b.WriteString(" into " + target + " values " + r)
		}
		b.WriteString(" select 1 from dual")
		return b.String(), params, nil
	}
	return "insert into " + target + " values " + strings.Join(rows, ", "), params, nil
}

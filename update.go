package fastersql

import (
	"slices"
	"strings"
)

// UpdateStatement is an immutable UPDATE.
type UpdateStatement struct {
	table Table
	sets  []assignment
	where []Predicate
	err   error
}

// Update starts an UPDATE of t.
func Update(t Table) UpdateStatement {
	s := UpdateStatement{table: t}
	if t.name == "" {
		return s.fail(constructionError("update", "table is blank"))
	}
	return s
}

// Set assigns v to col. Nil values set null.
func (s UpdateStatement) Set(col Column, v any) UpdateStatement {
	s.sets = append(slices.Clip(s.sets), assignment{column: col, value: operand(v)})
	return s
}

// SetIf assigns the supplied value to col when cond is true.
func (s UpdateStatement) SetIf(cond bool, col Column, v func() any) UpdateStatement {
	if !cond {
		return s
	}
	return s.Set(col, v())
}

// Where adds predicates, joined with and.
func (s UpdateStatement) Where(preds ...Predicate) UpdateStatement {
	if slices.Contains(preds, nil) {
		return s.fail(constructionError("where", "predicate is nil"))
	}
	s.where = append(slices.Clip(s.where), preds...)
	return s
}

// WhereIf adds the supplied predicates when cond is true.
func (s UpdateStatement) WhereIf(cond bool, preds ...func() Predicate) UpdateStatement {
	if !cond {
		return s
	}
	return s.Where(supplied(preds)...)
}

// WhereOptional adds the present predicates.
func (s UpdateStatement) WhereOptional(opts ...OptionalPredicate) UpdateStatement {
	return s.Where(present(opts)...)
}

func (s UpdateStatement) fail(err error) UpdateStatement {
	if s.err == nil {
		s.err = err
	}
	return s
}

func (s UpdateStatement) visibleTables() []Table {
	return []Table{s.table}
}

func (s UpdateStatement) scope(ctx Context) Context {
	return ctx.WithCommand(CmdUpdate).WithOuterStatement(s)
}

func (s UpdateStatement) validate(ctx Context) error {
	if s.err != nil {
		return s.err
	}
	if err := checkTarget(CmdUpdate, s.table); err != nil {
		return err
	}
	if len(s.sets) == 0 {
		return invalid(CmdUpdate, "missing set clause")
	}
	if err := checkAssignments(CmdUpdate, s.table, s.sets); err != nil {
		return err
	}
	refs := columnRefsOf(assignmentValues(s.sets))
	refs = append(refs, columnRefsOf(s.where)...)
	return checkColumns(ctx, CmdUpdate, refs)
}

func assignmentValues(as []assignment) []Expression {
	values := make([]Expression, len(as))
	for i, a := range as {
		values[i] = a.value
	}
	return values
}

// SQL validates the statement and renders it.
func (s UpdateStatement) SQL(ctx Context) (string, error) {
	sql, _, err := s.build(s.scope(ctx))
	return sql, err
}

// Params returns the bound values in placeholder order.
func (s UpdateStatement) Params(ctx Context) ([]any, error) {
	_, params, err := s.build(s.scope(ctx))
	return params, err
}

// Render renders the statement for d.
func (s UpdateStatement) Render(d Dialect) (*Result, error) {
	return Render(s, d)
}

func (s UpdateStatement) build(ctx Context) (string, []any, error) {
	if err := s.validate(ctx); err != nil {
		return "", nil, err
	}
	var b strings.Builder
	var params []any

	b.WriteString("update " + s.table.name + " set ")
	sctx := ctx.WithClause(ClauseSet)
	for i, a := range s.sets {
		col, err := a.column.SQL(sctx)
		if err != nil {
			return "", nil, err
		}
		val, err := a.value.SQL(sctx)
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col + " = " + val)
		params = append(params, a.value.Params(sctx)...)
	}

	sql, wparams, err := restriction(ctx, s.where)
	if err != nil {
		return "", nil, err
	}
	b.WriteString(sql)
	return b.String(), append(params, wparams...), nil
}

// restriction renders a WHERE clause, or nothing for no predicates.
func restriction(ctx Context, preds []Predicate) (string, []any, error) {
	if len(preds) == 0 {
		return "", nil, nil
	}
	wctx := ctx.WithClause(ClauseRestriction)
	sql, err := joinSQL(wctx, preds, " and ")
	if err != nil {
		return "", nil, err
	}
	return " where " + sql, paramsOf(wctx, preds), nil
}

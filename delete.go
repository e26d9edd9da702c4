package fastersql

import "slices"

// DeleteStatement is an immutable DELETE.
type DeleteStatement struct {
	table Table
	where []Predicate
	err   error
}

// Delete starts a DELETE. The table is given with From.
func Delete() DeleteStatement {
	return DeleteStatement{}
}

// From sets the table rows are deleted from.
func (s DeleteStatement) From(t Table) DeleteStatement {
	if t.name == "" {
		s = s.fail(constructionError("delete", "table is blank"))
	}
	s.table = t
	return s
}

// Where adds predicates, joined with and.
func (s DeleteStatement) Where(preds ...Predicate) DeleteStatement {
	if slices.Contains(preds, nil) {
		return s.fail(constructionError("where", "predicate is nil"))
	}
	s.where = append(slices.Clip(s.where), preds...)
	return s
}

// WhereIf adds the supplied predicates when cond is true.
func (s DeleteStatement) WhereIf(cond bool, preds ...func() Predicate) DeleteStatement {
	if !cond {
		return s
	}
	return s.Where(supplied(preds)...)
}

// WhereOptional adds the present predicates.
func (s DeleteStatement) WhereOptional(opts ...OptionalPredicate) DeleteStatement {
	return s.Where(present(opts)...)
}

func (s DeleteStatement) fail(err error) DeleteStatement {
	if s.err == nil {
		s.err = err
	}
	return s
}

func (s DeleteStatement) visibleTables() []Table {
	return []Table{s.table}
}

func (s DeleteStatement) scope(ctx Context) Context {
	return ctx.WithCommand(CmdDelete).WithOuterStatement(s)
}

func (s DeleteStatement) validate(ctx Context) error {
	if s.err != nil {
		return s.err
	}
	if s.table.name == "" {
		return invalid(CmdDelete, "missing from clause")
	}
	if err := checkTarget(CmdDelete, s.table); err != nil {
		return err
	}
	return checkColumns(ctx, CmdDelete, columnRefsOf(s.where))
}

// SQL validates the statement and renders it.
func (s DeleteStatement) SQL(ctx Context) (string, error) {
	sql, _, err := s.build(s.scope(ctx))
	return sql, err
}

// Params returns the bound values in placeholder order.
func (s DeleteStatement) Params(ctx Context) ([]any, error) {
	_, params, err := s.build(s.scope(ctx))
	return params, err
}

// Render renders the statement for d.
func (s DeleteStatement) Render(d Dialect) (*Result, error) {
	return Render(s, d)
}

func (s DeleteStatement) build(ctx Context) (string, []any, error) {
	if err := s.validate(ctx); err != nil {
		return "", nil, err
	}
	where, params, err := restriction(ctx, s.where)
	if err != nil {
		return "", nil, err
	}
	return "delete from " + s.table.name + where, params, nil
}

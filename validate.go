package fastersql

import "slices"

// validate checks the statement before anything is rendered.
func (s SelectStatement) validate(ctx Context) error {
	if s.err != nil {
		return s.err
	}
	if len(s.projections) == 0 {
		return invalid(CmdSelect, "no projections")
	}
	if len(s.relations) == 0 {
		return invalid(CmdSelect, "missing from clause")
	}
	for _, j := range s.joins {
		if err := j.validate(CmdSelect); err != nil {
			return err
		}
	}

	refs := columnRefsOf(s.projections)
	refs = append(refs, columnRefsOf(s.joins)...)
	refs = append(refs, columnRefsOf(s.where)...)
	refs = append(refs, columnRefsOf(s.groups)...)
	refs = append(refs, columnRefsOf(s.having)...)
	refs = append(refs, columnRefsOf(s.orders)...)
	if err := checkColumns(ctx, CmdSelect, refs); err != nil {
		return err
	}

	aliases := s.aliases()
	for _, a := range aliasRefsOf(s.orders) {
		if !slices.Contains(aliases, a) {
			return invalid(CmdSelect, "order by alias %s is not a projection alias", a)
		}
	}
	for _, o := range s.orders {
		if o.position > len(s.projections) {
			return invalid(CmdSelect, "order by position %d exceeds %d projections", o.position, len(s.projections))
		}
	}

	d := ctx.Dialect()
	if (s.hasLimit || s.hasOffset) && len(s.orders) == 0 && d.Supports(LimitRequiresOrderBy) {
		return invalid(CmdSelect, "%s requires order by with limit or offset", d.Name())
	}
	if s.forUpdate {
		return s.validateForUpdate(d)
	}
	return nil
}

func (s SelectStatement) validateForUpdate(d Dialect) error {
	if !d.Supports(SelectForUpdate) {
		return unsupported(d, "select for update")
	}
	if s.distinct {
		return invalid(CmdSelect, "for update cannot be combined with distinct")
	}
	if len(s.groups) > 0 {
		return invalid(CmdSelect, "for update cannot be combined with group by")
	}
	for _, p := range s.projections {
		if p.aggregate() {
			return invalid(CmdSelect, "for update cannot be combined with aggregate %s", p.Alias())
		}
	}
	var tables []Table
	for _, c := range columnRefsOf(s.projections) {
		if !slices.ContainsFunc(tables, c.table.same) {
			tables = append(tables, c.table)
		}
	}
	if len(tables) != 1 {
		return invalid(CmdSelect, "for update must select columns of exactly one table, got %d", len(tables))
	}
	if !d.Supports(LimitOffset) && (s.hasLimit || s.hasOffset) {
		return invalid(CmdSelect, "%s cannot combine for update with limit or offset", d.Name())
	}
	return nil
}

func (s SelectStatement) aliases() []ColumnAlias {
	aliases := make([]ColumnAlias, len(s.projections))
	for i, p := range s.projections {
		aliases[i] = p.Alias()
	}
	return aliases
}

// checkColumns reports the first column whose table is not visible from
// the statement or an enclosing one.
// checkTarget rejects an aliased UPDATE or DELETE target. Those statements
// render only the table name, so nothing could refer to the alias.
func checkTarget(stmt Command, t Table) error {
	if t.alias != t.name {
		return invalid(stmt, "target table %s cannot be aliased", t)
	}
	return nil
}

func checkColumns(ctx Context, stmt Command, refs []Column) error {
	for _, c := range refs {
		if !ctx.visible(c.table) {
			return invalid(stmt, "column %s.%s refers to table %s which is not in scope", c.table.alias, c.name, c.table)
		}
	}
	return nil
}

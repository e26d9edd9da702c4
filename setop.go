package fastersql

import (
	"slices"
	"strings"
)

type setLeg struct {
	op    SetOperator
	query SelectStatement
}

// SetOperationStatement chains SELECTs with UNION, INTERSECT and EXCEPT.
// A trailing ORDER BY applies to the combined result and may only name the
// first SELECT's aliases, positions or projected columns.
type SetOperationStatement struct {
	first  SelectStatement
	legs   []setLeg
	orders []Order
}

func newSetOperation(first SelectStatement, op SetOperator, next SelectStatement) SetOperationStatement {
	return SetOperationStatement{first: first, legs: []setLeg{{op: op, query: next}}}
}

func (s SetOperationStatement) add(op SetOperator, next SelectStatement) SetOperationStatement {
	s.legs = append(slices.Clip(s.legs), setLeg{op: op, query: next})
	return s
}

// Union appends other, removing duplicates.
func (s SetOperationStatement) Union(other SelectStatement) SetOperationStatement {
	return s.add(SetUnion, other)
}

// UnionAll appends other, keeping duplicates.
func (s SetOperationStatement) UnionAll(other SelectStatement) SetOperationStatement {
	return s.add(SetUnionAll, other)
}

// Intersect keeps the rows also returned by other.
func (s SetOperationStatement) Intersect(other SelectStatement) SetOperationStatement {
	return s.add(SetIntersect, other)
}

// IntersectAll is Intersect keeping duplicates.
func (s SetOperationStatement) IntersectAll(other SelectStatement) SetOperationStatement {
	return s.add(SetIntersectAll, other)
}

// Except removes the rows returned by other.
func (s SetOperationStatement) Except(other SelectStatement) SetOperationStatement {
	return s.add(SetExcept, other)
}

// ExceptAll is Except keeping duplicates.
func (s SetOperationStatement) ExceptAll(other SelectStatement) SetOperationStatement {
	return s.add(SetExceptAll, other)
}

// OrderBy orders the combined result.
func (s SetOperationStatement) OrderBy(orders ...Order) SetOperationStatement {
	s.orders = append(slices.Clip(s.orders), orders...)
	return s
}

// SQL validates the statement and renders it.
func (s SetOperationStatement) SQL(ctx Context) (string, error) {
	sql, _, err := s.build(ctx)
	return sql, err
}

// Params returns the bound values of every leg in placeholder order.
func (s SetOperationStatement) Params(ctx Context) ([]any, error) {
	_, params, err := s.build(ctx)
	return params, err
}

// Render renders the statement for d.
func (s SetOperationStatement) Render(d Dialect) (*Result, error) {
	return Render(s, d)
}

func (s SetOperationStatement) queries() []SelectStatement {
	queries := []SelectStatement{s.first}
	for _, l := range s.legs {
		queries = append(queries, l.query)
	}
	return queries
}

func (s SetOperationStatement) validate(ctx Context) error {
	d := ctx.Dialect()
	want := len(s.first.projections)
	for i, q := range s.queries() {
		if got := len(q.projections); got != want {
			return invalid(CmdSelect, "set operation leg %d projects %d columns, first leg projects %d", i+1, got, want)
		}
		if !d.Supports(ParenthesizedSetOperands) && (len(q.orders) > 0 || q.hasLimit || q.hasOffset) {
			return invalid(CmdSelect, "%s cannot order or limit set operation leg %d", d.Name(), i+1)
		}
	}
	return nil
}

func (s SetOperationStatement) build(ctx Context) (string, []any, error) {
	if err := s.validate(ctx); err != nil {
		return "", nil, err
	}
	d := ctx.Dialect()
	wrap := d.Supports(ParenthesizedSetOperands)

	var b strings.Builder
	var params []any
	for i, q := range s.queries() {
		if i > 0 {
			keyword, err := d.SetOperator(s.legs[i-1].op)
			if err != nil {
				return "", nil, err
			}
			b.WriteString(" " + keyword + " ")
		}
		sql, qparams, err := q.build(q.scope(ctx))
		if err != nil {
			return "", nil, err
		}
		if wrap {
			sql = "(" + sql + ")"
		}
		b.WriteString(sql)
		params = append(params, qparams...)
	}

	if len(s.orders) > 0 {
		octx := ctx.WithCommand(CmdSelect).WithClause(ClauseOrdering)
		orders := make([]Order, len(s.orders))
		for i, o := range s.orders {
			resolved, err := s.resolveOrder(o)
			if err != nil {
				return "", nil, err
			}
			orders[i] = resolved
		}
		sql, err := joinSQL(octx, orders, ", ")
		if err != nil {
			return "", nil, err
		}
		b.WriteString(" order by " + sql)
		params = append(params, paramsOf(octx, orders)...)
	}
	return b.String(), params, nil
}

// resolveOrder maps a trailing order item onto the first leg's projection
// aliases.
func (s SetOperationStatement) resolveOrder(o Order) (Order, error) {
	first := s.first.projections
	switch {
	case o.alias != "":
		if !slices.Contains(s.first.aliases(), o.alias) {
			return Order{}, invalid(CmdSelect, "set operation order by alias %s is not an alias of the first leg", o.alias)
		}
		return o, nil
	case o.expr == nil:
		if o.position > len(first) {
			return Order{}, invalid(CmdSelect, "set operation order by position %d exceeds %d projections", o.position, len(first))
		}
		return o, nil
	}
	if col, ok := o.expr.(Column); ok {
		for _, p := range first {
			if pc, ok := p.(Column); ok && pc.same(col) {
				o.alias, o.expr = p.Alias(), nil
				return o, nil
			}
		}
	}
	return Order{}, invalid(CmdSelect, "set operation order by must name an alias, position or column of the first leg")
}

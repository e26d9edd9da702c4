package fastersql

import (
	"math"
	"slices"
	"strings"
)

// SelectStatement is an immutable SELECT. Every method returns a new
// statement with one more clause item recorded.
type SelectStatement struct {
	projections []Projection
	distinct    bool
	relations   []Table
	joins       []Join
	where       []Predicate
	groups      []Expression
	having      []Predicate
	orders      []Order
	limit       int64
	offset      int64
	hasLimit    bool
	hasOffset   bool
	forUpdate   bool
	err         error
}

// Select starts a SELECT of the given expressions. Expressions without an
// alias are projected under a generated one.
func Select(projections ...Expression) SelectStatement {
	s := SelectStatement{}
	for _, e := range projections {
		if e == nil {
			return s.fail(constructionError("select", "projection is nil"))
		}
		s.projections = append(s.projections, project(e))
	}
	return s
}

// SelectDistinct starts a SELECT DISTINCT.
func SelectDistinct(projections ...Expression) SelectStatement {
	s := Select(projections...)
	s.distinct = true
	return s
}

// From adds relations to the FROM clause.
func (s SelectStatement) From(tables ...Table) SelectStatement {
	for _, t := range tables {
		if t.name == "" {
			return s.fail(constructionError("select", "from table is blank"))
		}
	}
	s.relations = append(slices.Clip(s.relations), tables...)
	return s
}

// Join adds joins.
func (s SelectStatement) Join(joins ...Join) SelectStatement {
	s.joins = append(slices.Clip(s.joins), joins...)
	return s
}

// JoinIf adds the supplied joins when cond is true. The suppliers are only
// called when they are needed.
func (s SelectStatement) JoinIf(cond bool, joins ...func() Join) SelectStatement {
	if !cond {
		return s
	}
	return s.Join(supplied(joins)...)
}

// Where adds predicates, joined with and.
func (s SelectStatement) Where(preds ...Predicate) SelectStatement {
	if slices.Contains(preds, nil) {
		return s.fail(constructionError("where", "predicate is nil"))
	}
	s.where = append(slices.Clip(s.where), preds...)
	return s
}

// WhereIf adds the supplied predicates when cond is true.
func (s SelectStatement) WhereIf(cond bool, preds ...func() Predicate) SelectStatement {
	if !cond {
		return s
	}
	return s.Where(supplied(preds)...)
}

// WhereOptional adds the present predicates.
func (s SelectStatement) WhereOptional(opts ...OptionalPredicate) SelectStatement {
	return s.Where(present(opts)...)
}

// GroupBy adds grouping expressions.
func (s SelectStatement) GroupBy(exprs ...Expression) SelectStatement {
	if slices.Contains(exprs, nil) {
		return s.fail(constructionError("group by", "expression is nil"))
	}
	s.groups = append(slices.Clip(s.groups), exprs...)
	return s
}

// Having adds HAVING predicates, joined with and.
func (s SelectStatement) Having(preds ...Predicate) SelectStatement {
	if slices.Contains(preds, nil) {
		return s.fail(constructionError("having", "predicate is nil"))
	}
	s.having = append(slices.Clip(s.having), preds...)
	return s
}

// HavingIf adds the supplied HAVING predicates when cond is true.
func (s SelectStatement) HavingIf(cond bool, preds ...func() Predicate) SelectStatement {
	if !cond {
		return s
	}
	return s.Having(supplied(preds)...)
}

// HavingOptional adds the present HAVING predicates.
func (s SelectStatement) HavingOptional(opts ...OptionalPredicate) SelectStatement {
	return s.Having(present(opts)...)
}

// OrderBy adds ORDER BY items.
func (s SelectStatement) OrderBy(orders ...Order) SelectStatement {
	s.orders = append(slices.Clip(s.orders), orders...)
	return s
}

// Limit caps the number of rows returned.
func (s SelectStatement) Limit(n int64) SelectStatement {
	if n < 0 {
		return s.fail(constructionError("limit", "%d is negative", n))
	}
	s.limit, s.hasLimit = n, true
	return s
}

// Offset skips the first n rows.
func (s SelectStatement) Offset(n int64) SelectStatement {
	if n < 0 {
		return s.fail(constructionError("offset", "%d is negative", n))
	}
	s.offset, s.hasOffset = n, true
	return s
}

// ForUpdate locks the selected rows.
func (s SelectStatement) ForUpdate() SelectStatement {
	s.forUpdate = true
	return s
}

// orderItems keys alias orders by the projected expression where null
// placement is emulated.
func (s SelectStatement) orderItems(d Dialect) []Order {
	if d.Supports(NullOrdering) {
		return s.orders
	}
	orders := slices.Clone(s.orders)
	for i, o := range orders {
		if o.alias != "" && o.nulls != NullsDefault {
			orders[i] = o.unaliased(s.projections)
		}
	}
	return orders
}

func (s SelectStatement) fail(err error) SelectStatement {
	if s.err == nil {
		s.err = err
	}
	return s
}

// Projections returns the projected items in order.
func (s SelectStatement) Projections() []Projection {
	return slices.Clone(s.projections)
}

// Union combines s with other, removing duplicates.
func (s SelectStatement) Union(other SelectStatement) SetOperationStatement {
	return newSetOperation(s, SetUnion, other)
}

// UnionAll combines s with other, keeping duplicates.
func (s SelectStatement) UnionAll(other SelectStatement) SetOperationStatement {
	return newSetOperation(s, SetUnionAll, other)
}

// Intersect keeps the rows of s also returned by other.
func (s SelectStatement) Intersect(other SelectStatement) SetOperationStatement {
	return newSetOperation(s, SetIntersect, other)
}

// IntersectAll is Intersect keeping duplicates.
func (s SelectStatement) IntersectAll(other SelectStatement) SetOperationStatement {
	return newSetOperation(s, SetIntersectAll, other)
}

// Except keeps the rows of s not returned by other.
func (s SelectStatement) Except(other SelectStatement) SetOperationStatement {
	return newSetOperation(s, SetExcept, other)
}

// ExceptAll is Except keeping duplicates.
func (s SelectStatement) ExceptAll(other SelectStatement) SetOperationStatement {
	return newSetOperation(s, SetExceptAll, other)
}

func (s SelectStatement) visibleTables() []Table {
	tables := slices.Clone(s.relations)
	for _, j := range s.joins {
		if len(j.pairs) > 0 {
			tables = append(tables, j.Table())
		}
	}
	return tables
}

func (s SelectStatement) scope(ctx Context) Context {
	return ctx.WithCommand(CmdSelect).WithOuterStatement(s)
}

// SQL validates the statement and renders it.
func (s SelectStatement) SQL(ctx Context) (string, error) {
	sql, _, err := s.build(s.scope(ctx))
	return sql, err
}

// Params validates the statement and returns its bound values in
// placeholder order.
func (s SelectStatement) Params(ctx Context) ([]any, error) {
	_, params, err := s.build(s.scope(ctx))
	return params, err
}

// Render renders the statement for d.
func (s SelectStatement) Render(d Dialect) (*Result, error) {
	return Render(s, d)
}

func (s SelectStatement) build(ctx Context) (string, []any, error) {
	if err := s.validate(ctx); err != nil {
		return "", nil, err
	}
	sql, params, err := s.body(ctx)
	if err != nil {
		return "", nil, err
	}
	sql, params, err = s.limitOffset(ctx, sql, params)
	if err != nil {
		return "", nil, err
	}
	if s.forUpdate {
		sql += " for update"
	}
	return sql, params, nil
}

// body renders everything up to and including ORDER BY.
func (s SelectStatement) body(ctx Context) (string, []any, error) {
	var b strings.Builder
	var params []any

	b.WriteString("select ")
	if s.distinct {
		b.WriteString("distinct ")
	}
	pctx := ctx.WithClause(ClauseProjection)
	for i, p := range s.projections {
		sql, err := p.SQL(pctx)
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sql + " " + string(p.Alias()))
		params = append(params, p.Params(pctx)...)
	}

	b.WriteString(" from ")
	fctx := ctx.WithClause(ClauseSelection)
	for i, t := range s.relations {
		sql, err := t.relationSQL(fctx)
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sql)
		params = append(params, t.relationParams(fctx)...)
	}

	jctx := ctx.WithClause(ClauseJoin)
	for _, j := range s.joins {
		sql, err := j.SQL(jctx)
		if err != nil {
			return "", nil, err
		}
		b.WriteString(" " + sql)
		params = append(params, j.Params(jctx)...)
	}

	clauses := []struct {
		keyword string
		clause  Clause
		nodes   []Node
	}{
		{" where ", ClauseRestriction, nodes(s.where)},
		{" group by ", ClauseGrouping, nodes(s.groups)},
		{" having ", ClauseHaving, nodes(s.having)},
		{" order by ", ClauseOrdering, nodes(s.orderItems(ctx.Dialect()))},
	}
	for _, c := range clauses {
		if len(c.nodes) == 0 {
			continue
		}
		sep := ", "
		if c.clause == ClauseRestriction || c.clause == ClauseHaving {
			sep = " and "
		}
		cctx := ctx.WithClause(c.clause)
		sql, err := joinSQL(cctx, c.nodes, sep)
		if err != nil {
			return "", nil, err
		}
		b.WriteString(c.keyword + sql)
		params = append(params, paramsOf(cctx, c.nodes)...)
	}
	return b.String(), params, nil
}

func nodes[T Node](items []T) []Node {
	out := make([]Node, len(items))
	for i, n := range items {
		out[i] = n
	}
	return out
}

// limitOffset appends the row limit. Dialects with native clauses get them
// in their required order; row number dialects get the query wrapped in
// select * from (...) layers filtering on the row number.
func (s SelectStatement) limitOffset(ctx Context, sql string, params []any) (string, []any, error) {
	if !s.hasLimit && !s.hasOffset {
		return sql, params, nil
	}
	d := ctx.Dialect()
	if d.Supports(LimitOffset) {
		return s.nativeLimitOffset(d, sql, params)
	}

	rownum, ok := d.RowNumLiteral()
	if !ok {
		return "", nil, unsupported(d, "limit/offset")
	}
	if !s.hasOffset {
		return "select * from (" + sql + ") where " + rownum + " <= ?", append(params, s.limit), nil
	}
	wrapped := "select * from (select ORIGINAL.*, " + rownum + " ROW_NO from (" + sql + ") ORIGINAL"
	if s.hasLimit {
		wrapped += " where " + rownum + " <= ?"
		params = append(params, rowTo(s.offset, s.limit))
	}
	return wrapped + ") where ROW_NO >= ?", append(params, s.offset+1), nil
}

func (s SelectStatement) nativeLimitOffset(d Dialect, sql string, params []any) (string, []any, error) {
	limit, hasLimit := s.limit, s.hasLimit
	offset, hasOffset := s.offset, s.hasOffset
	if hasLimit && !hasOffset && d.Supports(LimitRequiresOffset) {
		offset, hasOffset = 0, true
	}
	if hasOffset && !hasLimit && d.Supports(OffsetRequiresLimit) {
		limit, hasLimit = math.MaxInt64, true
	}

	limitClause, okLimit := d.RowLimitClause()
	offsetClause, okOffset := d.RowOffsetClause()
	if (hasLimit && !okLimit) || (hasOffset && !okOffset) {
		return "", nil, unsupported(d, "limit/offset")
	}

	type part struct {
		clause string
		value  int64
	}
	var parts []part
	if hasLimit {
		parts = append(parts, part{limitClause, limit})
	}
	if hasOffset {
		if d.OffsetBeforeLimit() {
			parts = append([]part{{offsetClause, offset}}, parts...)
		} else {
			parts = append(parts, part{offsetClause, offset})
		}
	}
	for _, p := range parts {
		sql += " " + p.clause
		params = append(params, p.value)
	}
	return sql, params, nil
}

func rowTo(offset, limit int64) int64 {
	if limit > math.MaxInt64-offset {
		return math.MaxInt64
	}
	return offset + limit
}


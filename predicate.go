package fastersql

import "strings"

type comparison struct {
	left  Expression
	op    Operator
	right Expression
}

func compare(left Expression, op Operator, right any) Predicate {
	return comparison{left: required("comparison", left), op: op, right: operand(right)}
}

// Eq creates left = right.
func Eq(left Expression, right any) Predicate { return compare(left, EQ, right) }

// Ne creates left <> right.
func Ne(left Expression, right any) Predicate { return compare(left, NE, right) }

// Lt creates left < right.
func Lt(left Expression, right any) Predicate { return compare(left, LT, right) }

// Le creates left <= right.
func Le(left Expression, right any) Predicate { return compare(left, LE, right) }

// Gt creates left > right.
func Gt(left Expression, right any) Predicate { return compare(left, GT, right) }

// Ge creates left >= right.
func Ge(left Expression, right any) Predicate { return compare(left, GE, right) }

func (c comparison) SQL(ctx Context) (string, error) {
	return c.render(ctx, c.op)
}

func (c comparison) NegatedSQL(ctx Context) (string, error) {
	return c.render(ctx, c.op.Negate())
}

func (c comparison) render(ctx Context, op Operator) (string, error) {
	left, err := c.left.SQL(ctx)
	if err != nil {
		return "", err
	}
	right, err := c.right.SQL(ctx)
	if err != nil {
		return "", err
	}
	return left + " " + string(op) + " " + right, nil
}

func (c comparison) Params(ctx Context) []any {
	return append(c.left.Params(ctx), c.right.Params(ctx)...)
}

func (c comparison) ColumnRefs() []Column {
	return append(c.left.ColumnRefs(), c.right.ColumnRefs()...)
}

func (c comparison) AliasRefs() []ColumnAlias {
	return append(c.left.AliasRefs(), c.right.AliasRefs()...)
}

type between struct {
	operand   Expression
	low, high Expression
}

// Between creates e between low and high.
func Between(e Expression, low, high any) Predicate {
	return between{operand: required("between", e), low: operand(low), high: operand(high)}
}

func (b between) SQL(ctx Context) (string, error)        { return b.render(ctx, " between ") }
func (b between) NegatedSQL(ctx Context) (string, error) { return b.render(ctx, " not between ") }

func (b between) render(ctx Context, keyword string) (string, error) {
	sqls, err := renderEach(ctx, b.operand, b.low, b.high)
	if err != nil {
		return "", err
	}
	return sqls[0] + keyword + sqls[1] + " and " + sqls[2], nil
}

func (b between) Params(ctx Context) []any {
	return paramsOf(ctx, []Expression{b.operand, b.low, b.high})
}

func (b between) ColumnRefs() []Column {
	return columnRefsOf([]Expression{b.operand, b.low, b.high})
}

func (b between) AliasRefs() []ColumnAlias {
	return aliasRefsOf([]Expression{b.operand, b.low, b.high})
}

type like struct {
	operand Expression
	pattern string
}

// Like creates e like pattern. A pattern with neither a % nor a _ wildcard
// is wrapped in % and matches anywhere in the value. The pattern is always
// bound.
func Like(e Expression, pattern string) Predicate {
	if !strings.ContainsAny(pattern, "%_") {
		pattern = "%" + pattern + "%"
	}
	return like{operand: required("like", e), pattern: pattern}
}

func (l like) SQL(ctx Context) (string, error)        { return l.render(ctx, " like ?") }
func (l like) NegatedSQL(ctx Context) (string, error) { return l.render(ctx, " not like ?") }

func (l like) render(ctx Context, suffix string) (string, error) {
	sql, err := l.operand.SQL(ctx)
	if err != nil {
		return "", err
	}
	return sql + suffix, nil
}

func (l like) Params(ctx Context) []any {
	return append(l.operand.Params(ctx), l.pattern)
}

func (l like) ColumnRefs() []Column     { return l.operand.ColumnRefs() }
func (l like) AliasRefs() []ColumnAlias { return l.operand.AliasRefs() }

type in struct {
	operand Expression
	values  []Expression
	query   *SelectStatement
}

// In creates e in (values...). At least one value is required.
func In(e Expression, values ...any) Predicate {
	if len(values) == 0 {
		panic(constructionError("in", "value list is empty"))
	}
	return in{operand: required("in", e), values: operands(values)}
}

// InQuery creates e in (select ...).
func InQuery(e Expression, query SelectStatement) Predicate {
	return in{operand: required("in", e), query: &query}
}

func (p in) SQL(ctx Context) (string, error)        { return p.render(ctx, " in ") }
func (p in) NegatedSQL(ctx Context) (string, error) { return p.render(ctx, " not in ") }

func (p in) render(ctx Context, keyword string) (string, error) {
	left, err := p.operand.SQL(ctx)
	if err != nil {
		return "", err
	}
	var list string
	if p.query != nil {
		list, err = p.query.SQL(ctx)
	} else {
		list, err = joinSQL(ctx, p.values, ", ")
	}
	if err != nil {
		return "", err
	}
	return left + keyword + "(" + list + ")", nil
}

func (p in) Params(ctx Context) []any {
	params := p.operand.Params(ctx)
	if p.query != nil {
		inner, _ := p.query.Params(ctx)
		return append(params, inner...)
	}
	return append(params, paramsOf(ctx, p.values)...)
}

func (p in) ColumnRefs() []Column {
	return append(p.operand.ColumnRefs(), columnRefsOf(p.values)...)
}

func (p in) AliasRefs() []ColumnAlias {
	return append(p.operand.AliasRefs(), aliasRefsOf(p.values)...)
}

type isNull struct {
	operand Expression
}

// IsNull creates e is null.
func IsNull(e Expression) Predicate {
	return isNull{operand: required("is null", e)}
}

func (p isNull) SQL(ctx Context) (string, error)        { return p.render(ctx, " is null") }
func (p isNull) NegatedSQL(ctx Context) (string, error) { return p.render(ctx, " is not null") }

func (p isNull) render(ctx Context, suffix string) (string, error) {
	sql, err := p.operand.SQL(ctx)
	if err != nil {
		return "", err
	}
	return sql + suffix, nil
}

func (p isNull) Params(ctx Context) []any { return p.operand.Params(ctx) }
func (p isNull) ColumnRefs() []Column     { return p.operand.ColumnRefs() }
func (p isNull) AliasRefs() []ColumnAlias { return p.operand.AliasRefs() }

type exists struct {
	query SelectStatement
}

// Exists creates exists (select ...).
func Exists(query SelectStatement) Predicate {
	return exists{query: query}
}

func (p exists) SQL(ctx Context) (string, error)        { return p.render(ctx, "exists (") }
func (p exists) NegatedSQL(ctx Context) (string, error) { return p.render(ctx, "not exists (") }

func (p exists) render(ctx Context, prefix string) (string, error) {
	sql, err := p.query.SQL(ctx)
	if err != nil {
		return "", err
	}
	return prefix + sql + ")", nil
}

func (p exists) Params(ctx Context) []any {
	params, _ := p.query.Params(ctx)
	return params
}

// Columns of a subquery are validated when it renders against the
// enclosing statements, so they are not reported here.
func (p exists) ColumnRefs() []Column     { return nil }
func (p exists) AliasRefs() []ColumnAlias { return nil }

type junction struct {
	or    bool
	terms []Predicate
}

// And joins predicates with and.
func And(first Predicate, rest ...Predicate) Predicate {
	return junction{terms: terms("and", first, rest)}
}

// Or joins predicates with or. The result is always parenthesized.
func Or(first Predicate, rest ...Predicate) Predicate {
	return junction{or: true, terms: terms("or", first, rest)}
}

func terms(what string, first Predicate, rest []Predicate) []Predicate {
	all := append([]Predicate{first}, rest...)
	for _, p := range all {
		if p == nil {
			panic(constructionError(what, "predicate is nil"))
		}
	}
	return all
}

func (j junction) SQL(ctx Context) (string, error) {
	if j.or {
		sql, err := joinSQL(ctx, j.terms, " or ")
		if err != nil {
			return "", err
		}
		return "(" + sql + ")", nil
	}
	return joinSQL(ctx, j.terms, " and ")
}

func (j junction) NegatedSQL(ctx Context) (string, error) {
	sql, err := j.SQL(ctx)
	if err != nil {
		return "", err
	}
	if j.or {
		return "not " + sql, nil
	}
	return "not (" + sql + ")", nil
}

func (j junction) Params(ctx Context) []any { return paramsOf(ctx, j.terms) }
func (j junction) ColumnRefs() []Column     { return columnRefsOf(j.terms) }
func (j junction) AliasRefs() []ColumnAlias { return aliasRefsOf(j.terms) }

type negated struct {
	inner Predicate
}

// Not negates p by swapping its affirmative and negated rendering.
func Not(p Predicate) Predicate {
	if p == nil {
		panic(constructionError("not", "predicate is nil"))
	}
	if n, ok := p.(negated); ok {
		return n.inner
	}
	return negated{inner: p}
}

func (n negated) SQL(ctx Context) (string, error)        { return n.inner.NegatedSQL(ctx) }
func (n negated) NegatedSQL(ctx Context) (string, error) { return n.inner.SQL(ctx) }
func (n negated) Params(ctx Context) []any               { return n.inner.Params(ctx) }
func (n negated) ColumnRefs() []Column                   { return n.inner.ColumnRefs() }
func (n negated) AliasRefs() []ColumnAlias               { return n.inner.AliasRefs() }

func renderEach(ctx Context, nodes ...Node) ([]string, error) {
	sqls := make([]string, len(nodes))
	for i, n := range nodes {
		sql, err := n.SQL(ctx)
		if err != nil {
			return nil, err
		}
		sqls[i] = sql
	}
	return sqls, nil
}

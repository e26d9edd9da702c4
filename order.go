package fastersql

import "strconv"

// Order is an ORDER BY item: an expression, a projection alias or a
// 1-based projection position, with a direction and optional null
// placement.
type Order struct {
	expr     Expression
	alias    ColumnAlias
	position int
	dir      Direction
	nulls    NullOrder
}

// Asc orders ascending by e.
func Asc(e Expression) Order {
	return Order{expr: required("order by", e), dir: ASC}
}

// Desc orders descending by e.
func Desc(e Expression) Order {
	return Order{expr: required("order by", e), dir: DESC}
}

// AscAlias orders ascending by a projection alias.
func AscAlias(alias ColumnAlias) Order {
	return aliasOrder(alias, ASC)
}

// DescAlias orders descending by a projection alias.
func DescAlias(alias ColumnAlias) Order {
	return aliasOrder(alias, DESC)
}

func aliasOrder(alias ColumnAlias, dir Direction) Order {
	if alias == "" {
		panic(constructionError("order by", "alias is blank"))
	}
	return Order{alias: alias, dir: dir}
}

// AscPosition orders ascending by the projection at 1-based position n.
func AscPosition(n int) Order {
	return positionOrder(n, ASC)
}

// DescPosition orders descending by the projection at 1-based position n.
func DescPosition(n int) Order {
	return positionOrder(n, DESC)
}

func positionOrder(n int, dir Direction) Order {
	if n < 1 {
		panic(constructionError("order by", "position %d is not positive", n))
	}
	return Order{position: n, dir: dir}
}

// NullsFirst places nulls before other values.
func (o Order) NullsFirst() Order {
	o.nulls = NullsFirst
	return o
}

// NullsLast places nulls after other values.
func (o Order) NullsLast() Order {
	o.nulls = NullsLast
	return o
}

// Direction returns the sort direction.
func (o Order) Direction() Direction {
	return o.dir
}

func (o Order) key(ctx Context) (string, error) {
	switch {
	case o.expr != nil:
		return o.expr.SQL(ctx)
	case o.alias != "":
		return string(o.alias), nil
	default:
		return strconv.Itoa(o.position), nil
	}
}

// unaliased replaces an alias key with the projection it names.
func (o Order) unaliased(projections []Projection) Order {
	for _, p := range projections {
		if p.Alias() == o.alias {
			o.expr, o.alias = p, ""
			return o
		}
	}
	return o
}

// SQL renders the order item. Dialects without NULLS FIRST/LAST get an
// extra case key that sorts nulls into place.
func (o Order) SQL(ctx Context) (string, error) {
	key, err := o.key(ctx)
	if err != nil {
		return "", err
	}
	sql := key + " " + string(o.dir)
	if o.nulls == NullsDefault {
		return sql, nil
	}
	d := ctx.Dialect()
	if d.Supports(NullOrdering) {
		return sql + " " + string(o.nulls), nil
	}
	if o.expr == nil {
		by := "position"
		if o.alias != "" {
			by = "alias"
		}
		return "", unsupported(d, string(o.nulls)+" by "+by)
	}
	first, rest := "0", "1"
	if o.nulls == NullsLast {
		first, rest = rest, first
	}
	return "case when " + key + " is null then " + first + " else " + rest + " end, " + sql, nil
}

func (o Order) Params(ctx Context) []any {
	if o.expr == nil {
		return nil
	}
	params := o.expr.Params(ctx)
	if o.nulls != NullsDefault && !ctx.Dialect().Supports(NullOrdering) {
		return append(params, params...)
	}
	return params
}

func (o Order) ColumnRefs() []Column {
	if o.expr == nil {
		return nil
	}
	return o.expr.ColumnRefs()
}

func (o Order) AliasRefs() []ColumnAlias {
	if o.alias != "" {
		return []ColumnAlias{o.alias}
	}
	if o.expr == nil {
		return nil
	}
	return o.expr.AliasRefs()
}

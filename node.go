package fastersql

import (
	"reflect"
	"strings"
)

// Node is any construct that renders itself against a Context. SQL and
// Params visit children in the same order, so parameters line up with
// their placeholders.
type Node interface {
	SQL(ctx Context) (string, error)
	Params(ctx Context) []any
	ColumnRefs() []Column
	AliasRefs() []ColumnAlias
}

// Expression is a value-producing node.
type Expression interface {
	Node
	aggregate() bool
}

// Predicate is a boolean node with an affirmative and a negated rendering.
type Predicate interface {
	Node
	NegatedSQL(ctx Context) (string, error)
}

// Projection is a SELECT-list item with an alias.
type Projection interface {
	Expression
	Alias() ColumnAlias
}

// operand converts a Go value to an expression: nil and nil pointers
// become null, expressions pass through and anything else is bound.
func operand(v any) Expression {
	switch x := v.(type) {
	case nil:
		return Null()
	case Expression:
		return x
	case SelectStatement:
		return Sub(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
	}
	return Value(v)
}

func operands(vs []any) []Expression {
	exprs := make([]Expression, len(vs))
	for i, v := range vs {
		exprs[i] = operand(v)
	}
	return exprs
}

func joinSQL[T Node](ctx Context, nodes []T, sep string) (string, error) {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		sql, err := n.SQL(ctx)
		if err != nil {
			return "", err
		}
		parts[i] = sql
	}
	return strings.Join(parts, sep), nil
}

func paramsOf[T Node](ctx Context, nodes []T) []any {
	var params []any
	for _, n := range nodes {
		params = append(params, n.Params(ctx)...)
	}
	return params
}

func columnRefsOf[T Node](nodes []T) []Column {
	var refs []Column
	for _, n := range nodes {
		refs = append(refs, n.ColumnRefs()...)
	}
	return refs
}

func aliasRefsOf[T Node](nodes []T) []ColumnAlias {
	var refs []ColumnAlias
	for _, n := range nodes {
		refs = append(refs, n.AliasRefs()...)
	}
	return refs
}

func anyAggregate(exprs []Expression) bool {
	for _, e := range exprs {
		if e.aggregate() {
			return true
		}
	}
	return false
}

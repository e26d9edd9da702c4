package fastersql

import (
	"slices"
	"strings"
)

type caseWhen struct {
	when Node
	then Expression
}

// CaseExpression renders case [subject] when X then Y ... [else Z] end.
// When and Else return copies.
type CaseExpression struct {
	subject   Expression
	whens     []caseWhen
	otherwise Expression
}

// Case starts a searched CASE whose branches are predicates.
func Case() CaseExpression {
	return CaseExpression{}
}

// CaseOf starts a simple CASE comparing subject with each branch value.
func CaseOf(subject Expression) CaseExpression {
	return CaseExpression{subject: required("case", subject)}
}

// When adds a branch. In a searched CASE cond must be a Predicate.
func (c CaseExpression) When(cond, then any) CaseExpression {
	var when Node
	if p, ok := cond.(Predicate); ok {
		if c.subject != nil {
			panic(constructionError("case", "simple case branches take values, not predicates"))
		}
		when = p
	} else {
		if c.subject == nil {
			panic(constructionError("case", "searched case branches take predicates"))
		}
		when = operand(cond)
	}
	c.whens = append(slices.Clip(c.whens), caseWhen{when: when, then: operand(then)})
	return c
}

// Else sets the value returned when no branch matches.
func (c CaseExpression) Else(v any) CaseExpression {
	c.otherwise = operand(v)
	return c
}

func (c CaseExpression) SQL(ctx Context) (string, error) {
	if len(c.whens) == 0 {
		return "", constructionError("case", "no when branches")
	}
	var b strings.Builder
	b.WriteString("case")
	if c.subject != nil {
		sql, err := c.subject.SQL(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(" " + sql)
	}
	for _, w := range c.whens {
		when, err := w.when.SQL(ctx)
		if err != nil {
			return "", err
		}
		then, err := w.then.SQL(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(" when " + when + " then " + then)
	}
	if c.otherwise != nil {
		sql, err := c.otherwise.SQL(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(" else " + sql)
	}
	b.WriteString(" end")
	return b.String(), nil
}

func (c CaseExpression) Params(ctx Context) []any {
	var params []any
	for _, n := range c.nodes() {
		params = append(params, n.Params(ctx)...)
	}
	return params
}

func (c CaseExpression) ColumnRefs() []Column {
	return columnRefsOf(c.nodes())
}

func (c CaseExpression) AliasRefs() []ColumnAlias {
	return aliasRefsOf(c.nodes())
}

func (c CaseExpression) aggregate() bool {
	for _, n := range c.nodes() {
		if e, ok := n.(Expression); ok && e.aggregate() {
			return true
		}
	}
	return false
}

// nodes lists the children in rendering order.
func (c CaseExpression) nodes() []Node {
	var nodes []Node
	if c.subject != nil {
		nodes = append(nodes, c.subject)
	}
	for _, w := range c.whens {
		nodes = append(nodes, w.when, w.then)
	}
	if c.otherwise != nil {
		nodes = append(nodes, c.otherwise)
	}
	return nodes
}

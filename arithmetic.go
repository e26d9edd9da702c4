package fastersql

import "strings"

type arithOp string

const (
	opAdd arithOp = "+"
	opSub arithOp = "-"
	opMul arithOp = "*"
	opDiv arithOp = "/"
	opMod arithOp = "%"
	opPow arithOp = "^"
)

func (op arithOp) precedence() int {
	switch op {
	case opAdd, opSub:
		return 1
	case opMul, opDiv, opMod:
		return 2
	default:
		return 3
	}
}

// leftAssociative operators need a parenthesized right operand of equal
// precedence: a - (b - c) is not (a - b) - c.
func (op arithOp) leftAssociative() bool {
	return op == opSub || op == opDiv || op == opMod
}

type arithmetic struct {
	op    arithOp
	left  Expression
	right Expression
}

// Plus creates left + right.
func Plus(left, right any) Expression {
	return arithmetic{op: opAdd, left: operand(left), right: operand(right)}
}

// Minus creates left - right.
func Minus(left, right any) Expression {
	return arithmetic{op: opSub, left: operand(left), right: operand(right)}
}

// Times creates left * right.
func Times(left, right any) Expression {
	return arithmetic{op: opMul, left: operand(left), right: operand(right)}
}

// Divide creates left / right.
func Divide(left, right any) Expression {
	return arithmetic{op: opDiv, left: operand(left), right: operand(right)}
}

// Mod creates the remainder of left divided by right, as the % operator or
// the dialect's modulo function.
func Mod(left, right any) Expression {
	return arithmetic{op: opMod, left: operand(left), right: operand(right)}
}

// Power raises base to exponent, as the ^ operator or the dialect's power
// function.
func Power(base, exponent any) Expression {
	return arithmetic{op: opPow, left: operand(base), right: operand(exponent)}
}

func (a arithmetic) infix(d Dialect) bool {
	switch a.op {
	case opMod:
		return d.Supports(ModuloOperator)
	case opPow:
		return d.Supports(ExponentiationOperator)
	default:
		return true
	}
}

func (a arithmetic) SQL(ctx Context) (string, error) {
	left, err := a.left.SQL(ctx)
	if err != nil {
		return "", err
	}
	right, err := a.right.SQL(ctx)
	if err != nil {
		return "", err
	}

	d := ctx.Dialect()
	if !a.infix(d) {
		if a.op == opMod {
			return d.Modulo(left, right)
		}
		return d.Power(left, right)
	}

	if a.needsParens(a.left, false) {
		left = "(" + left + ")"
	}
	if a.needsParens(a.right, true) || strings.HasPrefix(right, "-") {
		right = "(" + right + ")"
	}
	return left + " " + string(a.op) + " " + right, nil
}

func (a arithmetic) needsParens(child Expression, right bool) bool {
	c, ok := child.(arithmetic)
	if !ok {
		return false
	}
	if a.op == opPow {
		return true
	}
	if c.op.precedence() < a.op.precedence() {
		return true
	}
	return right && c.op.precedence() == a.op.precedence() && a.op.leftAssociative()
}

func (a arithmetic) Params(ctx Context) []any {
	return append(a.left.Params(ctx), a.right.Params(ctx)...)
}

func (a arithmetic) ColumnRefs() []Column {
	return append(a.left.ColumnRefs(), a.right.ColumnRefs()...)
}

func (a arithmetic) AliasRefs() []ColumnAlias {
	return append(a.left.AliasRefs(), a.right.AliasRefs()...)
}

func (a arithmetic) aggregate() bool {
	return a.left.aggregate() || a.right.aggregate()
}

type negation struct {
	operand Expression
}

// Negate creates -operand.
func Negate(v any) Expression {
	return negation{operand: operand(v)}
}

func (n negation) SQL(ctx Context) (string, error) {
	sql, err := n.operand.SQL(ctx)
	if err != nil {
		return "", err
	}
	switch n.operand.(type) {
	case arithmetic, negation:
		return "-(" + sql + ")", nil
	}
	if strings.HasPrefix(sql, "-") {
		return "-(" + sql + ")", nil
	}
	return "-" + sql, nil
}

func (n negation) Params(ctx Context) []any { return n.operand.Params(ctx) }
func (n negation) ColumnRefs() []Column     { return n.operand.ColumnRefs() }
func (n negation) AliasRefs() []ColumnAlias { return n.operand.AliasRefs() }
func (n negation) aggregate() bool          { return n.operand.aggregate() }

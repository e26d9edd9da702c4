package fastersql

import "strings"

// function is a single-row or aggregate function call. The format callback
// receives the rendered arguments in declaration order.
type function struct {
	args   []Expression
	format func(d Dialect, args []string) (string, error)
	aggr   bool
}

func call(name string, args ...Expression) function {
	return function{
		args: args,
		format: func(_ Dialect, args []string) (string, error) {
			return name + "(" + strings.Join(args, ", ") + ")", nil
		},
	}
}

func unary(arg Expression, format func(d Dialect, arg string) (string, error)) function {
	return function{
		args: []Expression{arg},
		format: func(d Dialect, args []string) (string, error) {
			return format(d, args[0])
		},
	}
}

func required(fn string, e Expression) Expression {
	if e == nil {
		panic(constructionError(fn, "operand is nil"))
	}
	return e
}

func (f function) SQL(ctx Context) (string, error) {
	args := make([]string, len(f.args))
	for i, a := range f.args {
		sql, err := a.SQL(ctx)
		if err != nil {
			return "", err
		}
		args[i] = sql
	}
	return f.format(ctx.Dialect(), args)
}

func (f function) Params(ctx Context) []any { return paramsOf(ctx, f.args) }
func (f function) ColumnRefs() []Column     { return columnRefsOf(f.args) }
func (f function) AliasRefs() []ColumnAlias { return aliasRefsOf(f.args) }
func (f function) aggregate() bool          { return f.aggr || anyAggregate(f.args) }

// Upper converts e to upper case.
func Upper(e Expression) Expression {
	return call("upper", required("upper", e))
}

// Lower converts e to lower case.
func Lower(e Expression) Expression {
	return call("lower", required("lower", e))
}

// Trim removes leading and trailing blanks from e.
func Trim(e Expression) Expression {
	return call("trim", required("trim", e))
}

// Substring extracts length characters of e starting at the 1-based
// position start.
func Substring(e Expression, start, length int) Expression {
	return unary(required("substring", e), func(d Dialect, arg string) (string, error) {
		return d.Substring(arg, start, length)
	})
}

// Concat joins the string values of the operands, using the || operator
// when the dialect has one.
func Concat(first, second any, rest ...any) Expression {
	return concat{args: append([]Expression{operand(first), operand(second)}, operands(rest)...)}
}

type concat struct {
	args []Expression
}

func (c concat) SQL(ctx Context) (string, error) {
	args := make([]string, len(c.args))
	for i, a := range c.args {
		sql, err := a.SQL(ctx)
		if err != nil {
			return "", err
		}
		args[i] = sql
	}
	d := ctx.Dialect()
	if !d.Supports(ConcatOperator) {
		return d.Concat(args...)
	}
	for i, a := range c.args {
		switch a.(type) {
		case arithmetic, concat:
			args[i] = "(" + args[i] + ")"
		}
	}
	return strings.Join(args, " || "), nil
}

func (c concat) Params(ctx Context) []any { return paramsOf(ctx, c.args) }
func (c concat) ColumnRefs() []Column     { return columnRefsOf(c.args) }
func (c concat) AliasRefs() []ColumnAlias { return aliasRefsOf(c.args) }
func (c concat) aggregate() bool          { return anyAggregate(c.args) }

// Cast converts e to the dialect's name for t.
func Cast(e Expression, t DataType) Expression {
	return unary(required("cast", e), func(d Dialect, arg string) (string, error) {
		name, err := d.DataType(t)
		if err != nil {
			return "", err
		}
		return "cast(" + arg + " as " + name + ")", nil
	})
}

// ToNumber converts a string to a number with the given precision and scale.
func ToNumber(e Expression, precision, scale int) Expression {
	return unary(required("to_number", e), func(d Dialect, arg string) (string, error) {
		return d.ToNumber(arg, precision, scale)
	})
}

// ToChar formats e using a vendor format string.
func ToChar(e Expression, format string) Expression {
	return unary(required("to_char", e), func(d Dialect, arg string) (string, error) {
		return d.ToChar(arg, format)
	})
}

// Length returns the number of characters in e.
func Length(e Expression) Expression {
	return unary(required("length", e), Dialect.Length)
}

// Ceil rounds e up to the nearest integer.
func Ceil(e Expression) Expression {
	return unary(required("ceil", e), Dialect.Ceil)
}

// Floor rounds e down to the nearest integer.
func Floor(e Expression) Expression {
	return call("floor", required("floor", e))
}

// Ln returns the natural logarithm of e.
func Ln(e Expression) Expression {
	return unary(required("ln", e), Dialect.Ln)
}

// Exp returns e raised to the base of natural logarithms.
func Exp(e Expression) Expression {
	return call("exp", required("exp", e))
}

// Sqrt returns the square root of e.
func Sqrt(e Expression) Expression {
	return call("sqrt", required("sqrt", e))
}

// Round rounds e to the nearest integer.
func Round(e Expression) Expression {
	return unary(required("round", e), Dialect.Round)
}

// Abs returns the absolute value of e.
func Abs(e Expression) Expression {
	return call("abs", required("abs", e))
}

// CurrentDate returns the current date of the database server.
func CurrentDate() Expression {
	return function{
		format: func(d Dialect, _ []string) (string, error) {
			return d.CurrentDate()
		},
	}
}

// Coalesce returns the first non-null operand.
func Coalesce(first, second any, rest ...any) Expression {
	return call("coalesce", append([]Expression{operand(first), operand(second)}, operands(rest)...)...)
}

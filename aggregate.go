package fastersql

import "strings"

func aggregateCall(name string, distinct bool, e Expression) Expression {
	e = required(name, e)
	prefix := name + "("
	if distinct {
		prefix += "distinct "
	}
	return function{
		args: []Expression{e},
		format: func(_ Dialect, args []string) (string, error) {
			return prefix + strings.Join(args, ", ") + ")", nil
		},
		aggr: true,
	}
}

// Count counts the non-null values of e.
func Count(e Expression) Expression { return aggregateCall("count", false, e) }

// CountDistinct counts the distinct non-null values of e.
func CountDistinct(e Expression) Expression { return aggregateCall("count", true, e) }

// CountAll counts rows.
func CountAll() Expression {
	return function{
		format: func(Dialect, []string) (string, error) { return "count(*)", nil },
		aggr:   true,
	}
}

// Sum adds the values of e.
func Sum(e Expression) Expression { return aggregateCall("sum", false, e) }

// SumDistinct adds the distinct values of e.
func SumDistinct(e Expression) Expression { return aggregateCall("sum", true, e) }

// Avg averages the values of e.
func Avg(e Expression) Expression { return aggregateCall("avg", false, e) }

// AvgDistinct averages the distinct values of e.
func AvgDistinct(e Expression) Expression { return aggregateCall("avg", true, e) }

// Min returns the smallest value of e.
func Min(e Expression) Expression { return aggregateCall("min", false, e) }

// Max returns the largest value of e.
func Max(e Expression) Expression { return aggregateCall("max", false, e) }

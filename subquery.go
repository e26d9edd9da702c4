package fastersql

type subquery struct {
	query SelectStatement
}

// Sub wraps a SELECT as a scalar expression, rendered as (select ...).
// Its columns may refer to tables of the enclosing statements.
func Sub(query SelectStatement) Expression {
	return subquery{query: query}
}

func (s subquery) SQL(ctx Context) (string, error) {
	sql, err := s.query.SQL(ctx)
	if err != nil {
		return "", err
	}
	return "(" + sql + ")", nil
}

func (s subquery) Params(ctx Context) []any {
	params, _ := s.query.Params(ctx)
	return params
}

func (s subquery) ColumnRefs() []Column     { return nil }
func (s subquery) AliasRefs() []ColumnAlias { return nil }
func (s subquery) aggregate() bool          { return false }

package fastersql

// Statement is a renderable SQL statement.
type Statement interface {
	SQL(ctx Context) (string, error)
	Params(ctx Context) ([]any, error)
}

// Result is a rendered statement.
type Result struct {
	SQL    string
	Params []any
}

// Render validates stmt and renders it for d.
func Render(stmt Statement, d Dialect) (*Result, error) {
	ctx := NewContext(d)
	sql, err := stmt.SQL(ctx)
	if err != nil {
		return nil, err
	}
	params, err := stmt.Params(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{SQL: sql, Params: params}, nil
}

// MustRender renders stmt or panics.
func MustRender(stmt Statement, d Dialect) *Result {
	result, err := Render(stmt, d)
	if err != nil {
		panic(err)
	}
	return result
}

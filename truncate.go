package fastersql

// TruncateStatement removes every row of a table.
type TruncateStatement struct {
	table Table
}

// Truncate starts a TRUNCATE. The table is given with Table.
func Truncate() TruncateStatement {
	return TruncateStatement{}
}

// Table sets the table to truncate.
func (s TruncateStatement) Table(t Table) TruncateStatement {
	s.table = t
	return s
}

// SQL renders truncate table T.
func (s TruncateStatement) SQL(ctx Context) (string, error) {
	if s.table.name == "" {
		return "", invalid(CmdTruncate, "missing table")
	}
	d := ctx.Dialect()
	if !d.Supports(TruncateTable) {
		return "", unsupported(d, "truncate table")
	}
	return "truncate table " + s.table.name, nil
}

// Params returns no values; TRUNCATE binds nothing.
func (s TruncateStatement) Params(ctx Context) ([]any, error) {
	if _, err := s.SQL(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

// Render renders the statement for d.
func (s TruncateStatement) Render(d Dialect) (*Result, error) {
	return Render(s, d)
}

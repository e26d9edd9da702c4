// Package mssql provides the Microsoft SQL Server dialect.
package mssql

import (
	"github.com/zoobzio/fastersql/internal/render"
	"github.com/zoobzio/fastersql/internal/types"
)

// Dialect implements the SQL Server dialect.
//
// Row limits use OFFSET ... FETCH, which SQL Server only accepts after an
// ORDER BY and with an explicit offset.
type Dialect struct {
	render.Base
}

// New creates a new SQL Server dialect.
func New() *Dialect {
	return &Dialect{Base: render.Base{
		Product: "Microsoft SQL Server",
		Capabilities: render.CapabilitiesOf(
			render.LimitOffset,
			render.ModuloOperator,
			render.RightOuterJoin,
			render.FullOuterJoin,
			render.TruncateTable,
			render.ParenthesizedSetOperands,
			render.LimitRequiresOffset,
			render.LimitRequiresOrderBy,
		),
		OffsetFirst:  true,
		OffsetClause: "offset ? rows",
		LimitClause:  "fetch next ? rows only",
		Types: map[types.DataType]string{
			types.TypeInteger:   "int",
			types.TypeLong:      "bigint",
			types.TypeDecimal:   "decimal",
			types.TypeDouble:    "float",
			types.TypeString:    "nvarchar(max)",
			types.TypeDate:      "date",
			types.TypeTimestamp: "datetime2",
			types.TypeBoolean:   "bit",
		},
	}}
}

// ToChar uses FORMAT.
func (d *Dialect) ToChar(operand, format string) (string, error) {
	return "format(" + operand + ", " + render.QuoteString(format) + ")", nil
}

// Length uses LEN.
func (d *Dialect) Length(operand string) (string, error) {
	return "len(" + operand + ")", nil
}

// Ceil uses CEILING.
func (d *Dialect) Ceil(operand string) (string, error) {
	return "ceiling(" + operand + ")", nil
}

// Ln uses LOG, which is the natural logarithm on SQL Server.
func (d *Dialect) Ln(operand string) (string, error) {
	return "log(" + operand + ")", nil
}

// Round passes the mandatory length argument.
func (d *Dialect) Round(operand string) (string, error) {
	return "round(" + operand + ", 0)", nil
}

// CurrentDate truncates GETDATE to a date.
func (d *Dialect) CurrentDate() (string, error) {
	return "cast(getdate() as date)", nil
}

func (d *Dialect) SetOperator(op types.SetOperator) (string, error) {
	switch op {
	case types.SetIntersectAll, types.SetExceptAll:
		return "", render.Unsupported(d.Product, string(op))
	default:
		return string(op), nil
	}
}

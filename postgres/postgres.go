// Package postgres provides the PostgreSQL dialect.
package postgres

import "github.com/zoobzio/fastersql/internal/render"

// Dialect implements the PostgreSQL dialect.
type Dialect struct {
	render.Base
}

// New creates a new PostgreSQL dialect.
func New() *Dialect {
	return &Dialect{Base: render.Base{
		Product: "PostgreSQL",
		Capabilities: render.CapabilitiesOf(
			render.LimitOffset,
			render.ConcatOperator,
			render.ModuloOperator,
			render.ExponentiationOperator,
			render.SelectForUpdate,
			render.RightOuterJoin,
			render.FullOuterJoin,
			render.TruncateTable,
			render.NullOrdering,
			render.ParenthesizedSetOperands,
		),
		LimitClause:  "limit ?",
		OffsetClause: "offset ?",
	}}
}

// ToNumber uses TO_NUMBER with a numeric mask.
func (d *Dialect) ToNumber(operand string, precision, scale int) (string, error) {
	return "to_number(" + operand + ", " + render.QuoteString(render.NumberMask(precision, scale)) + ")", nil
}

// ToChar uses TO_CHAR.
func (d *Dialect) ToChar(operand, format string) (string, error) {
	return "to_char(" + operand + ", " + render.QuoteString(format) + ")", nil
}

// Package h2 provides the H2 database dialect.
package h2

import "github.com/zoobzio/fastersql/internal/render"

// Dialect implements the H2 dialect.
type Dialect struct {
	render.Base
}

// New creates a new H2 dialect.
func New() *Dialect {
	return &Dialect{Base: render.Base{
		Product: "H2",
		Capabilities: render.CapabilitiesOf(
			render.LimitOffset,
			render.ConcatOperator,
			render.ModuloOperator,
			render.SelectForUpdate,
			render.RightOuterJoin,
			render.TruncateTable,
			render.NullOrdering,
			render.ParenthesizedSetOperands,
		),
		LimitClause:  "limit ?",
		OffsetClause: "offset ?",
	}}
}

// ToChar uses TO_CHAR.
func (d *Dialect) ToChar(operand, format string) (string, error) {
	return "to_char(" + operand + ", " + render.QuoteString(format) + ")", nil
}

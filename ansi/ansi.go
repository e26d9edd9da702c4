// Package ansi provides a dialect that follows the SQL:2008 standard.
package ansi

import (
	"fmt"

	"github.com/zoobzio/fastersql/internal/render"
)

// Dialect is the vendor-neutral SQL standard dialect.
type Dialect struct {
	render.Base
}

// New creates a new ANSI dialect.
func New() *Dialect {
	return &Dialect{Base: render.Base{
		Product: "ANSI",
		Capabilities: render.CapabilitiesOf(
			render.LimitOffset,
			render.ConcatOperator,
			render.SelectForUpdate,
			render.RightOuterJoin,
			render.FullOuterJoin,
			render.TruncateTable,
			render.NullOrdering,
			render.ParenthesizedSetOperands,
		),
		OffsetFirst:  true,
		OffsetClause: "offset ? rows",
		LimitClause:  "fetch first ? rows only",
	}}
}

// Substring uses the standard FROM/FOR form.
func (d *Dialect) Substring(operand string, start, length int) (string, error) {
	return fmt.Sprintf("substring(%s from %d for %d)", operand, start, length), nil
}

// Length uses CHAR_LENGTH.
func (d *Dialect) Length(operand string) (string, error) {
	return "char_length(" + operand + ")", nil
}

// Ceil uses CEILING.
func (d *Dialect) Ceil(operand string) (string, error) {
	return "ceiling(" + operand + ")", nil
}

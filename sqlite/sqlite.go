// Package sqlite provides the SQLite dialect.
package sqlite

import (
	"fmt"

	"github.com/zoobzio/fastersql/internal/render"
	"github.com/zoobzio/fastersql/internal/types"
)

// Dialect implements the SQLite dialect. Full outer joins need SQLite 3.39
// and NULLS FIRST/LAST needs 3.30.
type Dialect struct {
	render.Base
}

// New creates a new SQLite dialect.
func New() *Dialect {
	return &Dialect{Base: render.Base{
		Product: "SQLite",
		Capabilities: render.CapabilitiesOf(
			render.LimitOffset,
			render.ConcatOperator,
			render.ModuloOperator,
			render.RightOuterJoin,
			render.FullOuterJoin,
			render.NullOrdering,
			render.OffsetRequiresLimit,
		),
		LimitClause:  "limit ?",
		OffsetClause: "offset ?",
		Types: map[types.DataType]string{
			types.TypeInteger:   "integer",
			types.TypeLong:      "integer",
			types.TypeDecimal:   "numeric",
			types.TypeDouble:    "real",
			types.TypeString:    "text",
			types.TypeDate:      "text",
			types.TypeTimestamp: "text",
			types.TypeBoolean:   "integer",
		},
	}}
}

// ToChar uses STRFTIME.
func (d *Dialect) ToChar(operand, format string) (string, error) {
	return "strftime(" + render.QuoteString(format) + ", " + operand + ")", nil
}

// Substring uses SUBSTR.
func (d *Dialect) Substring(operand string, start, length int) (string, error) {
	return fmt.Sprintf("substr(%s, %d, %d)", operand, start, length), nil
}

func (d *Dialect) SetOperator(op types.SetOperator) (string, error) {
	switch op {
	case types.SetIntersectAll, types.SetExceptAll:
		return "", render.Unsupported(d.Product, string(op))
	default:
		return string(op), nil
	}
}

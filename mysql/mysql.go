// Package mysql provides the MySQL dialect.
package mysql

import (
	"github.com/zoobzio/fastersql/internal/render"
	"github.com/zoobzio/fastersql/internal/types"
)

// Dialect implements the MySQL dialect.
type Dialect struct {
	render.Base
}

// New creates a new MySQL dialect.
func New() *Dialect {
	return &Dialect{Base: render.Base{
		Product: "MySQL",
		Capabilities: render.CapabilitiesOf(
			render.LimitOffset,
			render.ModuloOperator,
			render.SelectForUpdate,
			render.RightOuterJoin,
			render.TruncateTable,
			render.ParenthesizedSetOperands,
			render.OffsetRequiresLimit,
		),
		LimitClause:  "limit ?",
		OffsetClause: "offset ?",
		Types: map[types.DataType]string{
			types.TypeInteger:   "signed",
			types.TypeLong:      "signed",
			types.TypeDecimal:   "decimal",
			types.TypeDouble:    "double",
			types.TypeString:    "char",
			types.TypeDate:      "date",
			types.TypeTimestamp: "datetime",
		},
	}}
}

// ToChar uses DATE_FORMAT.
func (d *Dialect) ToChar(operand, format string) (string, error) {
	return "date_format(" + operand + ", " + render.QuoteString(format) + ")", nil
}

// Package oracle provides the Oracle Database dialect.
package oracle

import (
	"fmt"

	"github.com/zoobzio/fastersql/internal/render"
	"github.com/zoobzio/fastersql/internal/types"
)

// Name is the product name reported by the dialect.
const Name = "Oracle"

// Dialect implements the Oracle dialect. Oracle has no native limit/offset
// clause before 12c, so row limits are emulated through ROWNUM.
type Dialect struct {
	render.Base
}

// New creates a new Oracle dialect.
func New() *Dialect {
	return &Dialect{Base: render.Base{
		Product: Name,
		Capabilities: render.CapabilitiesOf(
			render.ConcatOperator,
			render.SelectForUpdate,
			render.RightOuterJoin,
			render.FullOuterJoin,
			render.TruncateTable,
			render.NullOrdering,
			render.ParenthesizedSetOperands,
		),
		RowNum: "rownum",
		Types: map[types.DataType]string{
			types.TypeInteger:   "number(10)",
			types.TypeLong:      "number(19)",
			types.TypeDecimal:   "number",
			types.TypeDouble:    "binary_double",
			types.TypeString:    "varchar2(4000)",
			types.TypeDate:      "date",
			types.TypeTimestamp: "timestamp",
		},
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

// Substring uses SUBSTR.
func (d *Dialect) Substring(operand string, start, length int) (string, error) {
	return fmt.Sprintf("substr(%s, %d, %d)", operand, start, length), nil
}

// SetOperator renders EXCEPT as MINUS. The ALL variants of INTERSECT and
// EXCEPT are not available.
func (d *Dialect) SetOperator(op types.SetOperator) (string, error) {
	switch op {
	case types.SetExcept:
		return "minus", nil
	case types.SetIntersectAll, types.SetExceptAll:
		return "", render.Unsupported(d.Product, string(op))
	default:
		return string(op), nil
	}
}

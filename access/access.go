// Package access provides the Microsoft Access (Jet/ACE) dialect.
package access

import (
	"fmt"
	"strings"

	"github.com/zoobzio/fastersql/internal/render"
	"github.com/zoobzio/fastersql/internal/types"
)

// Dialect implements the Access dialect. Access has neither a row limit
// clause nor a row number pseudo column, so limit/offset cannot be rendered.
type Dialect struct {
	render.Base
}

// New creates a new Access dialect.
func New() *Dialect {
	return &Dialect{Base: render.Base{
		Product: "Access",
		Capabilities: render.CapabilitiesOf(
			render.ExponentiationOperator,
			render.RightOuterJoin,
		),
	}}
}

func (d *Dialect) ToNumber(operand string, _, _ int) (string, error) {
	return "cdbl(" + operand + ")", nil
}

// ToChar uses FORMAT.
func (d *Dialect) ToChar(operand, format string) (string, error) {
	return "format(" + operand + ", " + render.QuoteString(format) + ")", nil
}

// Substring uses MID.
func (d *Dialect) Substring(operand string, start, length int) (string, error) {
	return fmt.Sprintf("mid(%s, %d, %d)", operand, start, length), nil
}

func (d *Dialect) Concat(_ ...string) (string, error) {
	return "", render.Unsupported(d.Product, "concat()", "use & in a raw query")
}

// Length uses LEN.
func (d *Dialect) Length(operand string) (string, error) {
	return "len(" + operand + ")", nil
}

func (d *Dialect) Ceil(_ string) (string, error) {
	return "", render.Unsupported(d.Product, "ceil()")
}

// Ln uses LOG, which is the natural logarithm on Access.
func (d *Dialect) Ln(operand string) (string, error) {
	return "log(" + operand + ")", nil
}

func (d *Dialect) Power(base, exponent string) (string, error) {
	return base + " ^ " + exponent, nil
}

// Modulo uses the MOD operator, which binds looser than * and / on Access.
func (d *Dialect) Modulo(dividend, divisor string) (string, error) {
	return "(" + group(dividend) + " mod " + group(divisor) + ")", nil
}

func group(operand string) string {
	if strings.ContainsRune(operand, ' ') {
		return "(" + operand + ")"
	}
	return operand
}

func (d *Dialect) CurrentDate() (string, error) {
	return "date()", nil
}

func (d *Dialect) DataType(t types.DataType) (string, error) {
	return "", render.Unsupported(d.Product, "cast to "+string(t))
}

// SetOperator allows only UNION and UNION ALL.
func (d *Dialect) SetOperator(op types.SetOperator) (string, error) {
	switch op {
	case types.SetUnion, types.SetUnionAll:
		return string(op), nil
	default:
		return "", render.Unsupported(d.Product, string(op))
	}
}

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/fastersql/internal/types"
)

// Dialect describes the capabilities and formatting rules of one RDBMS.
//
// Formatting methods receive argument text that has already been rendered
// (and may contain ? placeholders). Implementations must emit the arguments
// in the order received, since bound parameters are collected in that order.
type Dialect interface {
	// Name returns the product name, e.g. "PostgreSQL".
	Name() string

	// Supports reports whether the dialect supports a capability.
	Supports(c Capability) bool

	// OffsetBeforeLimit reports whether the offset clause precedes the limit clause.
	OffsetBeforeLimit() bool

	// RowOffsetClause returns the native offset clause, e.g. "offset ?".
	RowOffsetClause() (string, bool)

	// RowLimitClause returns the native limit clause, e.g. "limit ?".
	RowLimitClause() (string, bool)

	// RowNumLiteral returns the pseudo column used to emulate limit/offset, e.g. "rownum".
	RowNumLiteral() (string, bool)

	ToNumber(operand string, precision, scale int) (string, error)
	ToChar(operand, format string) (string, error)
	Substring(operand string, start, length int) (string, error)
	Concat(operands ...string) (string, error)
	Length(operand string) (string, error)
	Ceil(operand string) (string, error)
	Ln(operand string) (string, error)
	Power(base, exponent string) (string, error)
	Round(operand string) (string, error)
	Modulo(dividend, divisor string) (string, error)
	CurrentDate() (string, error)

	// DataType returns the vendor type name used by CAST.
	DataType(t types.DataType) (string, error)

	// SetOperator returns the keyword for a set operation.
	SetOperator(op types.SetOperator) (string, error)
}

// StandardTypes maps data types to SQL standard type names.
var StandardTypes = map[types.DataType]string{
	types.TypeInteger:   "integer",
	types.TypeLong:      "bigint",
	types.TypeDecimal:   "decimal",
	types.TypeDouble:    "double precision",
	types.TypeString:    "varchar",
	types.TypeDate:      "date",
	types.TypeTimestamp: "timestamp",
	types.TypeBoolean:   "boolean",
}

// Base implements Dialect with vendor-neutral formatting. Concrete dialects
// embed it, fill in the fields and override the methods that differ.
type Base struct {
	Product      string
	Capabilities Capabilities
	OffsetFirst  bool
	OffsetClause string
	LimitClause  string
	RowNum       string
	Types        map[types.DataType]string
}

func (b Base) Name() string {
	return b.Product
}

func (b Base) Supports(c Capability) bool {
	return b.Capabilities.Has(c)
}

func (b Base) OffsetBeforeLimit() bool {
	return b.OffsetFirst
}

func (b Base) RowOffsetClause() (string, bool) {
	return b.OffsetClause, b.OffsetClause != ""
}

func (b Base) RowLimitClause() (string, bool) {
	return b.LimitClause, b.LimitClause != ""
}

func (b Base) RowNumLiteral() (string, bool) {
	return b.RowNum, b.RowNum != ""
}

func (b Base) ToNumber(operand string, precision, scale int) (string, error) {
	return fmt.Sprintf("cast(%s as decimal(%d, %d))", operand, precision, scale), nil
}

func (b Base) ToChar(_, _ string) (string, error) {
	return "", Unsupported(b.Product, "to_char()")
}

func (b Base) Substring(operand string, start, length int) (string, error) {
	return fmt.Sprintf("substring(%s, %d, %d)", operand, start, length), nil
}

func (b Base) Concat(operands ...string) (string, error) {
	return "concat(" + strings.Join(operands, ", ") + ")", nil
}

func (b Base) Length(operand string) (string, error) {
	return "length(" + operand + ")", nil
}

func (b Base) Ceil(operand string) (string, error) {
	return "ceil(" + operand + ")", nil
}

func (b Base) Ln(operand string) (string, error) {
	return "ln(" + operand + ")", nil
}

func (b Base) Power(base, exponent string) (string, error) {
	return "power(" + base + ", " + exponent + ")", nil
}

func (b Base) Round(operand string) (string, error) {
	return "round(" + operand + ")", nil
}

func (b Base) Modulo(dividend, divisor string) (string, error) {
	return "mod(" + dividend + ", " + divisor + ")", nil
}

func (b Base) CurrentDate() (string, error) {
	return "current_date", nil
}

func (b Base) DataType(t types.DataType) (string, error) {
	names := b.Types
	if names == nil {
		names = StandardTypes
	}
	if name, ok := names[t]; ok {
		return name, nil
	}
	return "", Unsupported(b.Product, "cast to "+string(t))
}

func (b Base) SetOperator(op types.SetOperator) (string, error) {
	return string(op), nil
}

// QuoteString renders s as a single-quoted SQL string literal.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// NumberMask builds a numeric format mask such as 999D99 for to_number.
func NumberMask(precision, scale int) string {
	integral := precision - scale
	if integral < 1 {
		integral = 1
	}
	mask := strings.Repeat("9", integral)
	if scale > 0 {
		mask += "D" + strings.Repeat("9", scale)
	}
	return mask
}

// FormatInt renders an integer literal.
func FormatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

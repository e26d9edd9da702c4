package fastersql

import (
	"fmt"

	"github.com/zoobzio/fastersql/internal/render"
)

type boundValue struct {
	value any
}

// Value binds v as a parameter.
func Value(v any) Expression {
	return boundValue{value: v}
}

func (b boundValue) SQL(Context) (string, error) { return "?", nil }
func (b boundValue) Params(Context) []any        { return []any{b.value} }
func (b boundValue) ColumnRefs() []Column        { return nil }
func (b boundValue) AliasRefs() []ColumnAlias    { return nil }
func (b boundValue) aggregate() bool             { return false }

type literal struct {
	text string
}

// InlineString renders s as a quoted string literal instead of a parameter.
func InlineString(s string) Expression {
	return literal{text: render.QuoteString(s)}
}

// Number is any numeric type accepted by InlineNumber.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// InlineNumber renders n as a numeric literal instead of a parameter.
func InlineNumber[N Number](n N) Expression {
	return literal{text: fmt.Sprint(n)}
}

// Null renders the null keyword.
func Null() Expression {
	return literal{text: "null"}
}

func (l literal) SQL(Context) (string, error) { return l.text, nil }
func (l literal) Params(Context) []any        { return nil }
func (l literal) ColumnRefs() []Column        { return nil }
func (l literal) AliasRefs() []ColumnAlias    { return nil }
func (l literal) aggregate() bool             { return false }

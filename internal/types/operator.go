package types

// Operator represents a binary comparison operator.
type Operator string

const (
	EQ Operator = "="
	NE Operator = "<>"
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="
)

// Negate returns the operator with the opposite truth value.
func (o Operator) Negate() Operator {
	switch o {
	case EQ:
		return NE
	case NE:
		return EQ
	case GT:
		return LE
	case GE:
		return LT
	case LT:
		return GE
	case LE:
		return GT
	default:
		return o
	}
}

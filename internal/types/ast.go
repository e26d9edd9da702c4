package types

// Command identifies the statement kind being rendered.
type Command string

const (
	CmdNone     Command = ""
	CmdSelect   Command = "select"
	CmdInsert   Command = "insert"
	CmdUpdate   Command = "update"
	CmdDelete   Command = "delete"
	CmdTruncate Command = "truncate"
)

// DefaultClause returns the clause a statement starts rendering in.
func (c Command) DefaultClause() Clause {
	switch c {
	case CmdSelect:
		return ClauseProjection
	case CmdInsert:
		return ClauseValues
	case CmdUpdate:
		return ClauseSet
	case CmdDelete:
		return ClauseRestriction
	default:
		return ClauseNone
	}
}

// Clause identifies the part of a statement being rendered.
type Clause string

const (
	ClauseNone        Clause = ""
	ClauseProjection  Clause = "projection"
	ClauseSelection   Clause = "selection"
	ClauseJoin        Clause = "join"
	ClauseRestriction Clause = "restriction"
	ClauseGrouping    Clause = "grouping"
	ClauseHaving      Clause = "having"
	ClauseOrdering    Clause = "ordering"
	ClauseValues      Clause = "values"
	ClauseSet         Clause = "set"
)

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "asc"
	DESC Direction = "desc"
)

// NullOrder represents NULL placement in ORDER BY.
type NullOrder string

const (
	NullsDefault NullOrder = ""
	NullsFirst   NullOrder = "nulls first"
	NullsLast    NullOrder = "nulls last"
)

// JoinMode represents the type of SQL join.
type JoinMode string

const (
	InnerJoin      JoinMode = "inner join"
	LeftOuterJoin  JoinMode = "left outer join"
	RightOuterJoin JoinMode = "right outer join"
	FullOuterJoin  JoinMode = "full outer join"
)

// SetOperator represents SQL set operations over SELECT statements.
type SetOperator string

const (
	SetUnion        SetOperator = "union"
	SetUnionAll     SetOperator = "union all"
	SetIntersect    SetOperator = "intersect"
	SetIntersectAll SetOperator = "intersect all"
	SetExcept       SetOperator = "except"
	SetExceptAll    SetOperator = "except all"
)

// DataType is a vendor-neutral type used by CAST. Each dialect maps it to its
// own type name.
type DataType string

const (
	TypeInteger   DataType = "integer"
	TypeLong      DataType = "long"
	TypeDecimal   DataType = "decimal"
	TypeDouble    DataType = "double"
	TypeString    DataType = "string"
	TypeDate      DataType = "date"
	TypeTimestamp DataType = "timestamp"
	TypeBoolean   DataType = "boolean"
)

// Package fastersql provides a type-safe, dialect-aware SQL statement builder.
//
// Statements are composed from typed building blocks (tables, columns,
// expressions, predicates and projections) through immutable builders.
// Every builder call returns a new value, so statements can be shared and
// rendered concurrently.
//
// # Basic Usage
//
//	person := fastersql.NewTable("PERSON", "SSN", "NAME")
//	ssn, name := person.Column("SSN"), person.Column("NAME")
//
//	stmt := fastersql.Delete().
//		From(person).
//		Where(ssn.Eq("17016812345"), name.IsNull())
//
//	result, err := stmt.Render(postgres.New())
//	// result.SQL: delete from PERSON where SSN = ? and NAME is null
//	// result.Params: []any{"17016812345"}
//
// # Dialects
//
// A Dialect carries capability flags and vendor formatting rules. Built-in
// dialects live in their own packages: ansi, h2, mysql, mariadb, oracle,
// postgres, mssql, sqlite and access. The resolve package selects one from a
// configured name or a live connection.
//
// # Output Format
//
// Every bound value renders as a ? placeholder. Params returns the values in
// the order their placeholders appear in the rendered text. Inline constants
// render as literals and contribute no parameter.
package fastersql

import (
	"github.com/zoobzio/fastersql/internal/render"
	"github.com/zoobzio/fastersql/internal/types"
)

// Dialect describes the capabilities and formatting rules of one RDBMS.
type Dialect = render.Dialect

// Capability is a single SQL feature a dialect may or may not support.
type Capability = render.Capability

// Capabilities is a set of capability flags.
type Capabilities = render.Capabilities

// UnsupportedConstructError indicates a construct the dialect cannot express.
type UnsupportedConstructError = render.UnsupportedConstructError

// ErrUnsupported is wrapped by every UnsupportedConstructError.
var ErrUnsupported = render.ErrUnsupported

// Capability flags.
const (
	LimitOffset              = render.LimitOffset
	ConcatOperator           = render.ConcatOperator
	ModuloOperator           = render.ModuloOperator
	ExponentiationOperator   = render.ExponentiationOperator
	SelectForUpdate          = render.SelectForUpdate
	RightOuterJoin           = render.RightOuterJoin
	FullOuterJoin            = render.FullOuterJoin
	TruncateTable            = render.TruncateTable
	NullOrdering             = render.NullOrdering
	ParenthesizedSetOperands = render.ParenthesizedSetOperands
	LimitRequiresOffset      = render.LimitRequiresOffset
	OffsetRequiresLimit      = render.OffsetRequiresLimit
	LimitRequiresOrderBy     = render.LimitRequiresOrderBy
)

// AllCapabilities lists every known capability.
func AllCapabilities() []Capability {
	return render.AllCapabilities()
}

// Command identifies the statement kind being rendered.
type Command = types.Command

// Command values.
const (
	CmdNone     = types.CmdNone
	CmdSelect   = types.CmdSelect
	CmdInsert   = types.CmdInsert
	CmdUpdate   = types.CmdUpdate
	CmdDelete   = types.CmdDelete
	CmdTruncate = types.CmdTruncate
)

// Clause identifies the part of a statement being rendered.
type Clause = types.Clause

// Clause values.
const (
	ClauseNone        = types.ClauseNone
	ClauseProjection  = types.ClauseProjection
	ClauseSelection   = types.ClauseSelection
	ClauseJoin        = types.ClauseJoin
	ClauseRestriction = types.ClauseRestriction
	ClauseGrouping    = types.ClauseGrouping
	ClauseHaving      = types.ClauseHaving
	ClauseOrdering    = types.ClauseOrdering
	ClauseValues      = types.ClauseValues
	ClauseSet         = types.ClauseSet
)

// Direction represents sort direction.
type Direction = types.Direction

// Direction values.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// NullOrder represents NULL placement in ORDER BY.
type NullOrder = types.NullOrder

// NullOrder values.
const (
	NullsDefault = types.NullsDefault
	NullsFirst   = types.NullsFirst
	NullsLast    = types.NullsLast
)

// JoinMode represents the type of SQL join.
type JoinMode = types.JoinMode

// JoinMode values.
const (
	JoinInner      = types.InnerJoin
	JoinLeftOuter  = types.LeftOuterJoin
	JoinRightOuter = types.RightOuterJoin
	JoinFullOuter  = types.FullOuterJoin
)

// SetOperator represents a set operation over SELECT statements.
type SetOperator = types.SetOperator

// SetOperator values.
const (
	SetUnion        = types.SetUnion
	SetUnionAll     = types.SetUnionAll
	SetIntersect    = types.SetIntersect
	SetIntersectAll = types.SetIntersectAll
	SetExcept       = types.SetExcept
	SetExceptAll    = types.SetExceptAll
)

// DataType is a vendor-neutral type used by Cast.
type DataType = types.DataType

// DataType values.
const (
	TypeInteger   = types.TypeInteger
	TypeLong      = types.TypeLong
	TypeDecimal   = types.TypeDecimal
	TypeDouble    = types.TypeDouble
	TypeString    = types.TypeString
	TypeDate      = types.TypeDate
	TypeTimestamp = types.TypeTimestamp
	TypeBoolean   = types.TypeBoolean
)

// Operator is a binary comparison operator.
type Operator = types.Operator

// Operator values.
const (
	EQ = types.EQ
	NE = types.NE
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE
)

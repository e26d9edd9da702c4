package render

import "strings"

// Capability is a single SQL feature a dialect may or may not support.
type Capability uint32

const (
	LimitOffset            Capability = 1 << iota // native LIMIT/OFFSET (or OFFSET/FETCH) clauses
	ConcatOperator                                // infix || for string concatenation
	ModuloOperator                                // infix % for modulo
	ExponentiationOperator                        // infix ^ for power
	SelectForUpdate                               // SELECT ... FOR UPDATE
	RightOuterJoin                                // RIGHT OUTER JOIN
	FullOuterJoin                                 // FULL OUTER JOIN
	TruncateTable                                 // TRUNCATE TABLE
	NullOrdering                                  // NULLS FIRST / NULLS LAST
	ParenthesizedSetOperands                      // (select ...) union (select ...)
	LimitRequiresOffset                           // FETCH is only valid after OFFSET
	OffsetRequiresLimit                           // OFFSET is only valid after LIMIT
	LimitRequiresOrderBy                          // OFFSET/FETCH is only valid after ORDER BY
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{LimitOffset, "limit/offset"},
	{ConcatOperator, "concat operator"},
	{ModuloOperator, "modulo operator"},
	{ExponentiationOperator, "exponentiation operator"},
	{SelectForUpdate, "select for update"},
	{RightOuterJoin, "right outer join"},
	{FullOuterJoin, "full outer join"},
	{TruncateTable, "truncate table"},
	{NullOrdering, "null ordering"},
	{ParenthesizedSetOperands, "parenthesized set operands"},
	{LimitRequiresOffset, "limit requires offset"},
	{OffsetRequiresLimit, "offset requires limit"},
	{LimitRequiresOrderBy, "limit requires order by"},
}

// String returns a human readable name for a single capability.
func (c Capability) String() string {
	var names []string
	for _, cn := range capabilityNames {
		if c&cn.c != 0 {
			names = append(names, cn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// AllCapabilities lists every known capability in declaration order.
func AllCapabilities() []Capability {
	all := make([]Capability, len(capabilityNames))
	for i, cn := range capabilityNames {
		all[i] = cn.c
	}
	return all
}

// Capabilities is a set of supported features.
type Capabilities uint32

// CapabilitiesOf builds a capability set.
func CapabilitiesOf(caps ...Capability) Capabilities {
	var set Capabilities
	for _, c := range caps {
		set |= Capabilities(c)
	}
	return set
}

// Has reports whether every flag in c is present in the set.
func (s Capabilities) Has(c Capability) bool {
	return c != 0 && uint32(s)&uint32(c) == uint32(c)
}

// With returns a copy of the set with c added.
func (s Capabilities) With(c Capability) Capabilities {
	return s | Capabilities(c)
}

// Without returns a copy of the set with c removed.
func (s Capabilities) Without(c Capability) Capabilities {
	return s &^ Capabilities(c)
}

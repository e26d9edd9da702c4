package fastersql

import "slices"

// Scope is an enclosing statement whose tables are visible to the
// column references of nested subqueries.
type Scope interface {
	visibleTables() []Table
}

// Context carries the dialect and transient rendering state through
// recursive rendering. It is an immutable value: every With method returns
// a copy.
type Context struct {
	dialect Dialect
	command Command
	clause  Clause
	outer   []Scope
}

// NewContext creates a root context with no command, clause or enclosing
// statements.
func NewContext(d Dialect) Context {
	return Context{dialect: d}
}

// Dialect returns the dialect being rendered for.
func (c Context) Dialect() Dialect {
	return c.dialect
}

// Command returns the statement kind being rendered.
func (c Context) Command() Command {
	return c.command
}

// Clause returns the clause being rendered.
func (c Context) Clause() Clause {
	return c.clause
}

// OuterStatements returns the enclosing statements, outermost first.
func (c Context) OuterStatements() []Scope {
	return slices.Clone(c.outer)
}

// WithCommand returns a copy rendering cmd, with the clause reset to the
// command's default.
func (c Context) WithCommand(cmd Command) Context {
	c.command = cmd
	c.clause = cmd.DefaultClause()
	return c
}

// WithClause returns a copy rendering clause cl.
func (c Context) WithClause(cl Clause) Context {
	c.clause = cl
	return c
}

// WithOuterStatement returns a copy with s pushed onto the enclosing
// statement stack.
func (c Context) WithOuterStatement(s Scope) Context {
	c.outer = append(slices.Clip(c.outer), s)
	return c
}

// detached drops the enclosing statements, for subqueries that cannot
// correlate such as derived tables.
func (c Context) detached() Context {
	c.outer = nil
	return c
}

// visible reports whether t is reachable from any enclosing statement.
func (c Context) visible(t Table) bool {
	for _, s := range c.outer {
		for _, v := range s.visibleTables() {
			if v.same(t) {
				return true
			}
		}
	}
	return false
}

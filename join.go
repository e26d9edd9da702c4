package fastersql

import (
	"slices"
	"strings"
)

type joinPair struct {
	left, right Column
}

// Join joins the table of the right-hand columns on one or more column
// pairs. The zero mode is an inner join.
type Join struct {
	pairs []joinPair
	mode  JoinMode
}

// On creates an inner join on left = right.
func On(left, right Column) Join {
	return Join{pairs: []joinPair{{left: left, right: right}}, mode: JoinInner}
}

// And adds another join condition. The right column must belong to the
// joined table.
func (j Join) And(left, right Column) Join {
	j.pairs = append(slices.Clip(j.pairs), joinPair{left: left, right: right})
	return j
}

// Inner returns the join as an inner join.
func (j Join) Inner() Join { return j.as(JoinInner) }

// LeftOuter returns the join as a left outer join.
func (j Join) LeftOuter() Join { return j.as(JoinLeftOuter) }

// RightOuter returns the join as a right outer join.
func (j Join) RightOuter() Join { return j.as(JoinRightOuter) }

// FullOuter returns the join as a full outer join.
func (j Join) FullOuter() Join { return j.as(JoinFullOuter) }

func (j Join) as(mode JoinMode) Join {
	j.mode = mode
	return j
}

// Mode returns the join mode.
func (j Join) Mode() JoinMode {
	return j.mode
}

// Table returns the joined table.
func (j Join) Table() Table {
	if len(j.pairs) == 0 {
		return Table{}
	}
	return j.pairs[0].right.table
}

func (j Join) SQL(ctx Context) (string, error) {
	if len(j.pairs) == 0 {
		return "", constructionError("join", "no join columns")
	}
	d := ctx.Dialect()
	switch j.mode {
	case JoinRightOuter:
		if !d.Supports(RightOuterJoin) {
			return "", unsupported(d, string(j.mode))
		}
	case JoinFullOuter:
		if !d.Supports(FullOuterJoin) {
			return "", unsupported(d, string(j.mode))
		}
	}

	table, err := j.Table().relationSQL(ctx)
	if err != nil {
		return "", err
	}
	conds := make([]string, len(j.pairs))
	for i, p := range j.pairs {
		left, err := p.left.SQL(ctx)
		if err != nil {
			return "", err
		}
		right, err := p.right.SQL(ctx)
		if err != nil {
			return "", err
		}
		conds[i] = left + " = " + right
	}
	return string(j.mode) + " " + table + " on " + strings.Join(conds, " and "), nil
}

func (j Join) Params(ctx Context) []any {
	return j.Table().relationParams(ctx)
}

func (j Join) ColumnRefs() []Column {
	refs := make([]Column, 0, 2*len(j.pairs))
	for _, p := range j.pairs {
		refs = append(refs, p.left, p.right)
	}
	return refs
}

func (j Join) AliasRefs() []ColumnAlias { return nil }

func (j Join) validate(stmt Command) error {
	if len(j.pairs) == 0 {
		return constructionError("join", "no join columns")
	}
	table := j.Table()
	for _, p := range j.pairs[1:] {
		if !p.right.table.same(table) {
			return invalid(stmt, "join on %s mixes columns of %s and %s", table, table, p.right.table)
		}
	}
	return nil
}
